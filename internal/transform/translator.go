// Package transform provides the mock translation and enhancement
// transforms. Outputs are deterministic; a short artificial delay
// stands in for the network round-trip a real backend would cost.
package transform

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// DefaultDelay は疑似ネットワーク呼び出しの待ち時間。
const DefaultDelay = 300 * time.Millisecond

var languageCodes = map[string]string{
	"spanish":    "ES",
	"french":     "FR",
	"german":     "DE",
	"japanese":   "JA",
	"italian":    "IT",
	"portuguese": "PT",
	"korean":     "KO",
	"chinese":    "ZH",
	"russian":    "RU",
}

// Translator は対象言語コードを前置する疑似翻訳器。
type Translator struct {
	delay time.Duration
}

// NewTranslator returns a translator with the default mock delay.
func NewTranslator() *Translator {
	return &Translator{delay: DefaultDelay}
}

// WithDelay overrides the artificial delay (0 disables it; used in tests).
func (t *Translator) WithDelay(d time.Duration) *Translator {
	t.delay = d
	return t
}

// Translate は text を target 言語へ「翻訳」します。出力は
// "[XX] text" 形式で、XX は言語名から引いたコードです。
func (t *Translator) Translate(ctx context.Context, text, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("nothing to translate")
	}
	if strings.TrimSpace(target) == "" {
		return "", fmt.Errorf("missing target language")
	}
	if err := sleep(ctx, t.delay); err != nil {
		return "", err
	}
	return fmt.Sprintf("[%s] %s", CodeFor(target), text), nil
}

// CodeFor maps a language name to its bracketed code. Unlisted names
// derive a code from the first two letters.
func CodeFor(language string) string {
	key := strings.ToLower(strings.TrimSpace(language))
	if code, ok := languageCodes[key]; ok {
		return code
	}
	letters := make([]rune, 0, 2)
	for _, r := range key {
		if unicode.IsLetter(r) {
			letters = append(letters, unicode.ToUpper(r))
		}
		if len(letters) == 2 {
			break
		}
	}
	if len(letters) == 0 {
		return "??"
	}
	return string(letters)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
