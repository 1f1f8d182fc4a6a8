package termcolor

import (
	"fmt"
	"strings"

	"github.com/karinto/litscan/internal/model"
)

type Style struct {
	Bold      bool
	Underline bool
	Dim       bool
	FGBasic   *int
}

func Apply(s Style, text string, enabled bool) string {
	if !enabled || text == "" {
		return text
	}
	codes := sgrCodes(s)
	if len(codes) == 0 {
		return text
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + text + "\x1b[0m"
}

func sgrCodes(s Style) []string {
	codes := make([]string, 0, 4)
	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Dim {
		codes = append(codes, "2")
	}
	if s.Underline {
		codes = append(codes, "4")
	}
	if s.FGBasic != nil {
		codes = append(codes, fmt.Sprintf("3%d", *s.FGBasic))
	}
	return codes
}

func fg(n int) *int { return &n }

// 引用符の種類ごとの配色。基本 8 色に収める。
var quoteStyles = map[model.QuoteKind]Style{
	model.QuoteDouble:       {FGBasic: fg(2)},
	model.QuoteSingle:       {FGBasic: fg(6)},
	model.QuoteTemplate:     {FGBasic: fg(3)},
	model.QuoteTripleDouble: {FGBasic: fg(2), Bold: true},
	model.QuoteTripleSingle: {FGBasic: fg(6), Bold: true},
	model.QuoteVerbatim:     {FGBasic: fg(5)},
}

// QuoteStyle returns the display style for a quote kind. Unknown kinds
// render unstyled.
func QuoteStyle(kind model.QuoteKind) Style {
	return quoteStyles[kind]
}

// LocationStyle is used for the line:col column.
var LocationStyle = Style{Dim: true}
