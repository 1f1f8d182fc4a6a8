package scanner

import (
	"regexp"
	"strings"
)

// コードらしき内容を弾くためのヒューリスティック。パーサではなく
// 許可/拒否フィルタなので、偽陽性・偽陰性はある程度許容する。
var codeLikePatterns = []*regexp.Regexp{
	// bare identifier: letters/digits/underscore, starting non-digit
	regexp.MustCompile(`^[A-Za-z_]\w*$`),
	// digits only
	regexp.MustCompile(`^\d+$`),
	// filename/URL-like token ending in a 2-4 letter extension
	regexp.MustCompile(`^[\w-]+(?:\.[\w-]+)*\.[A-Za-z]{2,4}$`),
	// CSS selector or variable: leading #, @ or $
	regexp.MustCompile(`^[#@$][\w-]+$`),
	// code punctuation anywhere; a comma only counts when it is not
	// followed by whitespace, so natural prose like "Hello, world!"
	// stays detectable
	regexp.MustCompile(`[{}\[\]();]|,\S|,$`),
	// single key: value shaped token
	regexp.MustCompile(`^[\w-]+\s*:\s*\S+$`),
	// function-call shaped token
	regexp.MustCompile(`^\w+\(.*\)$`),
	// comparison/logical operators
	regexp.MustCompile(`<=|>=|==|!=|&&|\|\|`),
}

// looksLikeCode は内容がコード片らしいと判断したら true を返す。
func looksLikeCode(content string) bool {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return true
	}
	for _, re := range codeLikePatterns {
		if re.MatchString(trimmed) {
			return true
		}
	}
	return false
}
