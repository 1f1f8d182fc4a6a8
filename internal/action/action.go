// Package action は変換結果の出力先を扱います。replace は文書内の
// スパンを書き換え、annotate はコメントを挿入し、copy はクリップボード、
// scratch は比較用の一時ファイルに書き出します。
package action

import (
	"fmt"
	"strings"
)

// Kind は出力アクションの識別子。
type Kind string

const (
	Replace  Kind = "replace"
	Annotate Kind = "annotate"
	Copy     Kind = "copy"
	Scratch  Kind = "scratch"
)

// Kinds returns the selectable actions in display order.
func Kinds() []Kind {
	return []Kind{Replace, Annotate, Copy, Scratch}
}

// Normalize parses a user-supplied action name.
func Normalize(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "replace":
		return Replace, nil
	case "annotate":
		return Annotate, nil
	case "copy", "clipboard":
		return Copy, nil
	case "scratch":
		return Scratch, nil
	default:
		return "", fmt.Errorf("unknown action: %s (expected replace|annotate|copy|scratch)", s)
	}
}
