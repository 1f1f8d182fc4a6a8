// Package detect maps file paths to the language identifier consumed by
// the string scanner. Identification is best-effort: extension first,
// well-known basenames, then a shebang sniff for extensionless scripts.
package detect

import (
	"bytes"
	"path/filepath"
	"strings"
)

// FromPathAndContent returns the language identifier for a file, or ""
// when the file is not recognized (the scanner then applies only the
// base quote patterns).
func FromPathAndContent(p string, data []byte) string {
	if name := detectByPath(p); name != "" {
		return name
	}
	return detectByShebang(data)
}

func detectByPath(p string) string {
	base := strings.ToLower(filepath.Base(p))
	if lang, ok := basenameLanguages[base]; ok {
		return lang
	}
	ext := strings.ToLower(filepath.Ext(base))
	if ext == "" {
		return ""
	}
	if lang, ok := extensionLanguages[ext]; ok {
		return lang
	}
	return ""
}

func detectByShebang(data []byte) string {
	if !bytes.HasPrefix(data, []byte("#!")) {
		return ""
	}
	end := bytes.IndexByte(data, '\n')
	if end == -1 {
		end = len(data)
	}
	line := strings.ToLower(string(data[:end]))
	for _, s := range shebangLanguages {
		if strings.Contains(line, s.key) {
			return s.lang
		}
	}
	return ""
}

// Normalize canonicalizes user-supplied language names and common
// abbreviations into the identifiers the scanner understands.
func Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return ""
	}
	if canon, ok := langAliases[n]; ok {
		return canon
	}
	return n
}

var basenameLanguages = map[string]string{
	"gemfile":     "ruby",
	"rakefile":    "ruby",
	"vagrantfile": "ruby",
	"setup.py":    "python",
	"build.bazel": "starlark",
	"workspace":   "starlark",
}

var extensionLanguages = map[string]string{
	".js":     "javascript",
	".mjs":    "javascript",
	".cjs":    "javascript",
	".jsx":    "javascriptreact",
	".ts":     "typescript",
	".tsx":    "typescriptreact",
	".vue":    "vue",
	".svelte": "svelte",
	".py":     "python",
	".pyw":    "python",
	".pyi":    "python",
	".pyx":    "cython",
	".bzl":    "starlark",
	".star":   "starlark",
	".cs":     "csharp",
	".fs":     "fsharp",
	".fsx":    "fsharp",
	".go":     "go",
	".rb":     "ruby",
	".java":   "java",
	".kt":     "kotlin",
	".swift":  "swift",
	".rs":     "rust",
	".c":      "c",
	".h":      "c",
	".cc":     "cpp",
	".cpp":    "cpp",
	".hpp":    "cpp",
	".php":    "php",
	".sh":     "shell",
	".bash":   "shell",
	".zsh":    "shell",
	".ps1":    "powershell",
	".sql":    "sql",
	".html":   "html",
	".css":    "css",
	".scss":   "scss",
	".json":   "json",
	".yaml":   "yaml",
	".yml":    "yaml",
	".toml":   "toml",
	".md":     "markdown",
	".txt":    "plaintext",
}

var langAliases = map[string]string{
	"js":   "javascript",
	"mjs":  "javascript",
	"cjs":  "javascript",
	"jsx":  "javascriptreact",
	"ts":   "typescript",
	"tsx":  "typescriptreact",
	"py":   "python",
	"c#":   "csharp",
	"cs":   "csharp",
	"f#":   "fsharp",
	"rb":   "ruby",
	"kt":   "kotlin",
	"sh":   "shell",
	"bash": "shell",
	"text": "plaintext",
}

// 上から順に照合する。"sh" は "pwsh" や "zsh" にも部分一致するので
// 具体的なインタプリタ名を先に置く。
var shebangLanguages = []struct {
	key  string
	lang string
}{
	{"python3", "python"},
	{"python", "python"},
	{"node", "javascript"},
	{"deno", "javascript"},
	{"pwsh", "powershell"},
	{"ruby", "ruby"},
	{"bash", "shell"},
	{"zsh", "shell"},
	{"sh", "shell"},
}
