package transform

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
)

// DefaultStyles は設定で上書きされない場合の強調スタイル一覧。
var DefaultStyles = []string{"formal", "casual", "emphatic", "compact"}

var spaceRuns = regexp.MustCompile(`\s+`)

// Enhancer はスタイルごとに固定の文字列変換を適用する疑似エンハンサ。
type Enhancer struct {
	delay time.Duration
}

// NewEnhancer returns an enhancer with the default mock delay.
func NewEnhancer() *Enhancer {
	return &Enhancer{delay: DefaultDelay}
}

// WithDelay overrides the artificial delay (0 disables it; used in tests).
func (e *Enhancer) WithDelay(d time.Duration) *Enhancer {
	e.delay = d
	return e
}

// Enhance applies the named style to text. Unknown styles are an error.
func (e *Enhancer) Enhance(ctx context.Context, text, style string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("nothing to enhance")
	}
	fn, ok := styleTransforms[strings.ToLower(strings.TrimSpace(style))]
	if !ok {
		return "", fmt.Errorf("unknown style: %s", style)
	}
	if err := sleep(ctx, e.delay); err != nil {
		return "", err
	}
	return fn(text), nil
}

// KnownStyle reports whether the enhancer has a transform for style.
func KnownStyle(style string) bool {
	_, ok := styleTransforms[strings.ToLower(strings.TrimSpace(style))]
	return ok
}

var styleTransforms = map[string]func(string) string{
	"formal":   styleFormal,
	"casual":   styleCasual,
	"emphatic": styleEmphatic,
	"compact":  styleCompact,
}

func styleFormal(s string) string {
	out := []rune(strings.TrimSpace(s))
	if len(out) == 0 {
		return s
	}
	out[0] = unicode.ToUpper(out[0])
	last := out[len(out)-1]
	if unicode.IsLetter(last) || unicode.IsDigit(last) {
		out = append(out, '.')
	}
	return string(out)
}

func styleCasual(s string) string {
	out := strings.ToLower(strings.TrimSpace(s))
	return strings.TrimRight(out, ".")
}

func styleEmphatic(s string) string {
	return strings.ToUpper(strings.TrimSpace(s)) + "!"
}

func styleCompact(s string) string {
	return spaceRuns.ReplaceAllString(strings.TrimSpace(s), " ")
}
