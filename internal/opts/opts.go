// Package opts は CLI / Web / 設定ファイルで共有するオプションの
// 既定値・正規化・検証を提供します。
package opts

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/karinto/litscan/internal/transform"
)

const (
	minDebounceMS = 50
	maxDebounceMS = 60_000
)

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}
)

// Options is the shared baseline for CLI flags, web query parameters
// and config file layers.
type Options struct {
	File          string
	Lang          string
	Output        string
	Color         string
	Fields        string
	Languages     []string
	Styles        []string
	AutoDetect    bool
	InlineActions bool
	DebounceMS    int
	Action        string
}

// Defaults returns the baseline options before any config or flag layer.
func Defaults() Options {
	return Options{
		Output:        "table",
		Color:         "auto",
		Languages:     []string{"Spanish", "French", "German", "Japanese"},
		Styles:        append([]string(nil), transform.DefaultStyles...),
		AutoDetect:    true,
		InlineActions: true,
		DebounceMS:    1000,
		Action:        "replace",
	}
}

// ApplyWebQueryToOptions copies recognised query-string values into the
// options. Validation happens separately via NormalizeAndValidate.
func ApplyWebQueryToOptions(def Options, q url.Values) (Options, error) {
	out := def

	if raw, ok := lastRawValue(q["file"]); ok {
		out.File = raw
	}
	if raw, ok := lastLiteralValue(q["lang"]); ok {
		out.Lang = raw
	}
	if raw, ok := lastLiteralValue(q["output"]); ok {
		out.Output = raw
	}
	if raw, ok := lastLiteralValue(q["color"]); ok {
		out.Color = raw
	}
	if raw, ok := lastRawValue(q["fields"]); ok {
		out.Fields = raw
	}
	if raw := q["languages"]; len(raw) > 0 {
		out.Languages = SplitMulti(raw)
	}
	if raw := q["styles"]; len(raw) > 0 {
		out.Styles = SplitMulti(raw)
	}
	if raw, ok := lastLiteralValue(q["auto_detect"]); ok {
		v, err := ParseBool(raw, "auto_detect")
		if err != nil {
			return out, err
		}
		out.AutoDetect = v
	}
	if raw, ok := lastLiteralValue(q["inline_actions"]); ok {
		v, err := ParseBool(raw, "inline_actions")
		if err != nil {
			return out, err
		}
		out.InlineActions = v
	}
	if raw, ok := lastLiteralValue(q["debounce_ms"]); ok {
		n, err := ParseIntInRange(raw, "debounce_ms", minDebounceMS, maxDebounceMS)
		if err != nil {
			return out, err
		}
		out.DebounceMS = n
	}
	if raw, ok := lastLiteralValue(q["action"]); ok {
		out.Action = raw
	}

	return out, nil
}

// NormalizeAndValidate ensures the options are canonical and within the
// allowed ranges.
func NormalizeAndValidate(o *Options) error {
	var err error
	o.File = strings.TrimSpace(o.File)
	o.Lang = strings.TrimSpace(o.Lang)
	o.Fields = strings.TrimSpace(o.Fields)

	o.Output, err = NormalizeOutput(o.Output)
	if err != nil {
		return err
	}
	o.Color, err = NormalizeColor(o.Color)
	if err != nil {
		return err
	}
	o.Action, err = NormalizeAction(o.Action)
	if err != nil {
		return err
	}

	if o.DebounceMS < minDebounceMS || o.DebounceMS > maxDebounceMS {
		return fmt.Errorf("debounce_ms must be between %d and %d", minDebounceMS, maxDebounceMS)
	}

	o.Languages = trimSlice(o.Languages)
	if len(o.Languages) == 0 {
		return fmt.Errorf("languages must not be empty")
	}
	o.Styles = trimSlice(o.Styles)
	if len(o.Styles) == 0 {
		return fmt.Errorf("styles must not be empty")
	}
	for _, s := range o.Styles {
		if !transform.KnownStyle(s) {
			return fmt.Errorf("unknown style in config: %s", s)
		}
	}
	return nil
}

// Debounce returns DebounceMS as a duration.
func (o Options) Debounce() time.Duration {
	return time.Duration(o.DebounceMS) * time.Millisecond
}

// ParseBool converts a string literal into a boolean, accepting multiple synonyms.
func ParseBool(raw, key string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("invalid value for %s: %q", key, raw)
}

// ParseIntInRange parses a string into an int and ensures it falls within [min, max].
// If max < min, the upper bound is ignored.
func ParseIntInRange(raw, key string, min, max int) (int, error) {
	n, err := parseInt(raw, key)
	if err != nil {
		return 0, err
	}
	if n < min {
		if max >= min {
			return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
		}
		return 0, fmt.Errorf("%s must be >= %d", key, min)
	}
	if max >= min && n > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return n, nil
}

// NormalizeOutput validates and lower-cases the output format value.
func NormalizeOutput(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "", "table":
		return "table", nil
	case "tsv", "json", "ndjson", "csv", "md":
		return v, nil
	}
	return "", fmt.Errorf("invalid --output: %s", value)
}

// NormalizeColor validates the color mode value.
func NormalizeColor(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "", "auto":
		return "auto", nil
	case "always", "never":
		return v, nil
	}
	return "", fmt.Errorf("invalid --color: %s (expected auto|always|never)", value)
}

// NormalizeAction validates the output action name.
func NormalizeAction(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "", "replace":
		return "replace", nil
	case "annotate", "copy", "scratch":
		return v, nil
	}
	return "", fmt.Errorf("invalid --action: %s (expected replace|annotate|copy|scratch)", value)
}

// SplitMulti turns repeated parameters (and comma-separated values) into a flat slice.
func SplitMulti(vals []string) []string {
	var out []string
	for _, raw := range vals {
		for _, piece := range strings.Split(raw, ",") {
			part := strings.TrimSpace(piece)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

func parseInt(raw, key string) (int, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	return n, nil
}

func lastLiteralValue(vals []string) (string, bool) {
	flat := SplitMulti(vals)
	if len(flat) == 0 {
		return "", false
	}
	return flat[len(flat)-1], true
}

func lastRawValue(vals []string) (string, bool) {
	for i := len(vals) - 1; i >= 0; i-- {
		trimmed := strings.TrimSpace(vals[i])
		if trimmed == "" {
			continue
		}
		return trimmed, true
	}
	return "", false
}

func trimSlice(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := values[:0]
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
