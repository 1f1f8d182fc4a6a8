package scanner

import (
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/karinto/litscan/internal/model"
)

func newTestScanner() *Scanner {
	return New(zerolog.Nop())
}

func TestDetectEndToEndTypeScript(t *testing.T) {
	s := newTestScanner()
	out := s.Detect(`const greeting = "Hello, world!";`, "typescript")
	if len(out) != 1 {
		t.Fatalf("expected 1 detection, got %d: %+v", len(out), out)
	}
	d := out[0]
	if d.Text != "Hello, world!" {
		t.Fatalf("text mismatch: got %q want %q", d.Text, "Hello, world!")
	}
	if d.QuoteKind != model.QuoteDouble {
		t.Fatalf("quote kind mismatch: got %s want double", d.QuoteKind)
	}
	if d.Line != 0 {
		t.Fatalf("line mismatch: got %d want 0", d.Line)
	}
	line := `const greeting = "Hello, world!";`
	want := strings.Index(line, `"`)
	if d.StartChar != want {
		t.Fatalf("start mismatch: got %d want %d", d.StartChar, want)
	}
	if d.EndChar != want+len(`"Hello, world!"`) {
		t.Fatalf("end mismatch: got %d want %d", d.EndChar, want+len(`"Hello, world!"`))
	}
	if d.LanguageID != "typescript" {
		t.Fatalf("language id not carried through: %q", d.LanguageID)
	}
}

func TestDetectRejectsCodeLikeContent(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{name: "digits only", line: `x = "42"`},
		{name: "single identifier", line: `y = "x"`},
		{name: "bare identifier", line: `kind = "counter"`},
		{name: "filename", line: `open("notes.txt")`},
		{name: "css selector", line: `q("#main-nav")`},
		{name: "punctuation", line: `tpl = "{a: 1}"`},
		{name: "comma token", line: `csv = "a,b,c"`},
		{name: "whitespace only", line: `pad = "   "`},
		{name: "key value", line: `h = "Accept: gzip"`},
		{name: "call shaped", line: `code = "foo(bar)"`},
		{name: "operator", line: `cond = "a == b"`},
		{name: "too short", line: `ch = "a"`},
	}
	s := newTestScanner()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if out := s.Detect(tc.line, "plaintext"); len(out) != 0 {
				t.Fatalf("expected rejection, got %+v", out)
			}
		})
	}
}

func TestDetectAcceptsProse(t *testing.T) {
	s := newTestScanner()
	out := s.Detect(`"hello world"`, "plaintext")
	if len(out) != 1 {
		t.Fatalf("expected 1 detection, got %d", len(out))
	}
	if out[0].Text != "hello world" {
		t.Fatalf("text mismatch: got %q", out[0].Text)
	}
	if out[0].QuoteKind != model.QuoteDouble {
		t.Fatalf("quote kind mismatch: got %s", out[0].QuoteKind)
	}
	// comma followed by a space is natural prose, not code
	out = s.Detect(`"Hello, world!"`, "plaintext")
	if len(out) != 1 {
		t.Fatalf("expected prose with comma to survive, got %d", len(out))
	}
}

func TestDetectDialectGatingTemplate(t *testing.T) {
	line := "greet(`hi there`)"
	s := newTestScanner()
	out := s.Detect(line, "typescript")
	if len(out) != 1 {
		t.Fatalf("expected 1 template detection, got %d", len(out))
	}
	if out[0].QuoteKind != model.QuoteTemplate {
		t.Fatalf("quote kind mismatch: got %s want template", out[0].QuoteKind)
	}
	if out := s.Detect(line, "plaintext"); len(out) != 0 {
		t.Fatalf("generic dialect must not match backticks, got %+v", out)
	}
}

func TestDetectVerbatimDoubledQuotes(t *testing.T) {
	s := newTestScanner()
	out := s.Detect(`var s = @"a ""quoted"" word";`, "csharp")
	if len(out) != 1 {
		t.Fatalf("expected 1 detection, got %d: %+v", len(out), out)
	}
	if out[0].QuoteKind != model.QuoteVerbatim {
		t.Fatalf("quote kind mismatch: got %s want verbatim", out[0].QuoteKind)
	}
	if out[0].Text != `a ""quoted"" word` {
		t.Fatalf("doubled quotes must stay literal: got %q", out[0].Text)
	}
}

func TestDetectTripleQuoteSingleLine(t *testing.T) {
	s := newTestScanner()
	out := s.Detect(`doc = """hi there"""`, "python")
	var kinds []model.QuoteKind
	for _, d := range out {
		kinds = append(kinds, d.QuoteKind)
	}
	// the double-quote base pattern also matches inside; overlaps are
	// emitted, not de-duplicated
	foundTriple := false
	for _, d := range out {
		if d.QuoteKind == model.QuoteTripleDouble {
			foundTriple = true
			if d.Text != "hi there" {
				t.Fatalf("triple text mismatch: got %q", d.Text)
			}
		}
	}
	if !foundTriple {
		t.Fatalf("expected a triple-double detection, got kinds %v", kinds)
	}
}

func TestDetectTripleQuoteNeverCrossesLines(t *testing.T) {
	s := newTestScanner()
	out := s.Detect("doc = \"\"\"\nspread over lines\n\"\"\"", "python")
	for _, d := range out {
		if d.QuoteKind == model.QuoteTripleDouble {
			t.Fatalf("triple quote must not match across lines: %+v", d)
		}
	}
}

func TestDetectOrderingAndInvariants(t *testing.T) {
	doc := strings.Join([]string{
		`print("second line first")`,
		`a = 'and then this'; b = "after that"`,
		`last = "bottom of file"`,
	}, "\n")
	s := newTestScanner()
	out := s.Detect(doc, "python")
	if len(out) < 4 {
		t.Fatalf("expected at least 4 detections, got %d", len(out))
	}
	lines := strings.Split(doc, "\n")
	for i, d := range out {
		if i > 0 {
			prev := out[i-1]
			if d.Line < prev.Line {
				t.Fatalf("line order violated at %d: %+v after %+v", i, d, prev)
			}
			if d.Line == prev.Line && d.StartChar < prev.StartChar {
				t.Fatalf("column order violated at %d: %+v after %+v", i, d, prev)
			}
		}
		if d.StartChar < 0 || d.StartChar >= d.EndChar || d.EndChar > len(lines[d.Line]) {
			t.Fatalf("span invariant violated: %+v (line length %d)", d, len(lines[d.Line]))
		}
		if len(strings.TrimSpace(d.Text)) < 2 {
			t.Fatalf("short text emitted: %+v", d)
		}
	}
}

func TestDetectIdempotent(t *testing.T) {
	doc := `msg := "try again later" // note: 'one more'` + "\n" + `id := "x9"`
	s := newTestScanner()
	first := s.Detect(doc, "go")
	second := s.Detect(doc, "go")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("detect is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestDetectRepeatedMatchesOnOneLine(t *testing.T) {
	s := newTestScanner()
	out := s.Detect(`say("good morning"); say("good night")`, "javascript")
	if len(out) != 2 {
		t.Fatalf("expected 2 detections, got %d: %+v", len(out), out)
	}
	if out[0].Text != "good morning" || out[1].Text != "good night" {
		t.Fatalf("unexpected texts: %q, %q", out[0].Text, out[1].Text)
	}
	if out[0].EndChar > out[1].StartChar {
		t.Fatalf("matches overlap: %+v", out)
	}
}

func TestDetectCarriageReturnStaysInLine(t *testing.T) {
	s := newTestScanner()
	out := s.Detect("a = \"hello there\"\r\nb = 2", "plaintext")
	if len(out) != 1 {
		t.Fatalf("expected 1 detection, got %d", len(out))
	}
	line := "a = \"hello there\"\r"
	if out[0].EndChar > len(line) {
		t.Fatalf("end char exceeds raw line length: %d > %d", out[0].EndChar, len(line))
	}
}

func TestDetectEscapedQuotesInsideBody(t *testing.T) {
	s := newTestScanner()
	out := s.Detect(`m = "he said \"hi there\" twice"`, "go")
	if len(out) != 1 {
		t.Fatalf("expected 1 detection, got %d: %+v", len(out), out)
	}
	if out[0].Text != `he said \"hi there\" twice` {
		t.Fatalf("escapes must not be unescaped: got %q", out[0].Text)
	}
}

func TestLastHoldsMostRecentResult(t *testing.T) {
	s := newTestScanner()
	s.Detect(`x = "first scan here"`, "go")
	s.Detect(`y = "second scan here"`, "go")
	last := s.Last()
	if len(last) != 1 || last[0].Text != "second scan here" {
		t.Fatalf("last result not replaced: %+v", last)
	}
	last[0].Text = "mutated"
	if s.Last()[0].Text != "second scan here" {
		t.Fatalf("Last must return a copy")
	}
}

func TestPatternsForLanguageFallback(t *testing.T) {
	if got := len(patternsForLanguage("brainfuck")); got != len(basePatterns) {
		t.Fatalf("unknown dialect should get base patterns, got %d", got)
	}
	if got := len(patternsForLanguage("typescript")); got != len(basePatterns)+1 {
		t.Fatalf("typescript should add template pattern, got %d", got)
	}
}
