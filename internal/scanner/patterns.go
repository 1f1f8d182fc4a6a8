package scanner

import (
	"regexp"

	"github.com/karinto/litscan/internal/model"
)

// quotePattern は 1 種類の引用符スタイルに対応する行内マッチャ。
type quotePattern struct {
	kind model.QuoteKind
	re   *regexp.Regexp
}

var (
	patternDouble = quotePattern{
		kind: model.QuoteDouble,
		re:   regexp.MustCompile(`"((?:[^"\\]|\\.)*)"`),
	}
	patternSingle = quotePattern{
		kind: model.QuoteSingle,
		re:   regexp.MustCompile(`'((?:[^'\\]|\\.)*)'`),
	}
	patternTemplate = quotePattern{
		kind: model.QuoteTemplate,
		re:   regexp.MustCompile("`((?:[^`\\\\]|\\\\.)*)`"),
	}
	patternTripleDouble = quotePattern{
		kind: model.QuoteTripleDouble,
		re:   regexp.MustCompile(`"""(.*?)"""`),
	}
	patternTripleSingle = quotePattern{
		kind: model.QuoteTripleSingle,
		re:   regexp.MustCompile(`'''(.*?)'''`),
	}
	patternVerbatim = quotePattern{
		kind: model.QuoteVerbatim,
		re:   regexp.MustCompile(`@"((?:""|[^"])*)"`),
	}
)

// basePatterns は言語を問わず常に適用されるパターン。必ず
// ダイアレクト固有パターンより先に評価される。
var basePatterns = []quotePattern{patternDouble, patternSingle}

var dialectPatterns = map[string][]quotePattern{
	"javascript":      {patternTemplate},
	"javascriptreact": {patternTemplate},
	"typescript":      {patternTemplate},
	"typescriptreact": {patternTemplate},
	"vue":             {patternTemplate},
	"svelte":          {patternTemplate},
	"python":          {patternTripleDouble, patternTripleSingle},
	"cython":          {patternTripleDouble, patternTripleSingle},
	"starlark":        {patternTripleDouble, patternTripleSingle},
	"csharp":          {patternVerbatim},
	"fsharp":          {patternVerbatim},
}

// patternsForLanguage returns the ordered pattern set for a dialect tag.
// Unrecognized tags fall back to the base patterns only.
func patternsForLanguage(languageID string) []quotePattern {
	extra, ok := dialectPatterns[languageID]
	if !ok {
		return basePatterns
	}
	out := make([]quotePattern, 0, len(basePatterns)+len(extra))
	out = append(out, basePatterns...)
	out = append(out, extra...)
	return out
}
