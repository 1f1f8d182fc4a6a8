package model

// QuoteKind はどの引用符パターンがマッチしたかを表すタグ。
type QuoteKind string

const (
	QuoteDouble       QuoteKind = "double"
	QuoteSingle       QuoteKind = "single"
	QuoteTemplate     QuoteKind = "template"
	QuoteTripleDouble QuoteKind = "triple-double"
	QuoteTripleSingle QuoteKind = "triple-single"
	QuoteVerbatim     QuoteKind = "verbatim"
)

// Detection は検出された文字列リテラル 1 件を表す不変の値レコード。
// StartChar/EndChar は行内のバイト桁（0 始まり）で、デリミタを含む
// マッチ全体の範囲を指す。Text はデリミタの内側の内容そのまま
// （エスケープは解決しない）。
type Detection struct {
	Text       string    `json:"text"`
	Line       int       `json:"line"`
	StartChar  int       `json:"start_char"`
	EndChar    int       `json:"end_char"`
	QuoteKind  QuoteKind `json:"quote_kind"`
	LanguageID string    `json:"language_id"`
}

// Location returns a human-readable 1-based "line:col" reference.
func (d Detection) Location() (line, col int) {
	return d.Line + 1, d.StartChar + 1
}
