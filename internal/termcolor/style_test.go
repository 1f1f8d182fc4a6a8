package termcolor

import (
	"strings"
	"testing"

	"github.com/karinto/litscan/internal/model"
)

func TestApply(t *testing.T) {
	boldRed := Style{Bold: true}
	color := 1
	boldRed.FGBasic = &color
	got := Apply(boldRed, "Hello", true)
	want := "\x1b[1;31mHello\x1b[0m"
	if got != want {
		t.Fatalf("Apply produced %q, want %q", got, want)
	}

	if got := Apply(Style{}, "Hello", true); got != "Hello" {
		t.Fatalf("empty style should return original text, got %q", got)
	}
	if got := Apply(boldRed, "Hello", false); got != "Hello" {
		t.Fatalf("disabled Apply should return original text, got %q", got)
	}
}

func TestQuoteStyle(t *testing.T) {
	kinds := []model.QuoteKind{
		model.QuoteDouble,
		model.QuoteSingle,
		model.QuoteTemplate,
		model.QuoteTripleDouble,
		model.QuoteTripleSingle,
		model.QuoteVerbatim,
	}
	for _, k := range kinds {
		s := QuoteStyle(k)
		out := Apply(s, "x", true)
		if !strings.HasPrefix(out, "\x1b[") {
			t.Fatalf("QuoteStyle(%s) should colorize, got %q", k, out)
		}
	}
	if got := Apply(QuoteStyle(model.QuoteKind("mystery")), "x", true); got != "x" {
		t.Fatalf("unknown kind should render unstyled, got %q", got)
	}
}
