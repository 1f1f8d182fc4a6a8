package config

import "strings"

// Resolve* は設定レイヤの重ね合わせを担うヘルパ群。後勝ちで、
// nil は「このレイヤでは未設定」を意味する。

// ResolveString returns the last non-nil value, or def.
func ResolveString(def string, values ...*string) string {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

// ResolveInt returns the last non-nil value, or def. Range checks
// (debounce_ms) happen in opts.NormalizeAndValidate, not here.
func ResolveInt(def int, values ...*int) int {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

// ResolveBool returns the last non-nil value, or def.
func ResolveBool(def bool, values ...*bool) bool {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

// ResolveStrings layers list values such as languages and styles.
// An explicit empty list clears the inherited one; the result is
// always a copy so callers can mutate it freely.
func ResolveStrings(def []string, values ...*[]string) []string {
	result := cloneStrings(def)
	for _, v := range values {
		if v != nil {
			if len(*v) == 0 {
				result = []string{}
				continue
			}
			result = cloneStrings(*v)
		}
	}
	return result
}

// ResolveAndTrim is ResolveString plus whitespace trimming, for values
// like lang and action that are matched against fixed tables.
func ResolveAndTrim(def string, values ...*string) string {
	value := ResolveString(def, values...)
	return strings.TrimSpace(value)
}
