package action

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/karinto/litscan/internal/model"
)

// Result reports what an action did. ScratchPath is set only for
// Scratch; Changed is true when the document file was rewritten.
type Result struct {
	ScratchPath string
	Changed     bool
}

// Apply runs kind for detection d of the document at path, using the
// transformed text. Span columns are byte offsets within the physical
// line, delimiters included, as the scanner records them.
func Apply(kind Kind, path string, d model.Detection, transformed string) (Result, error) {
	switch kind {
	case Replace:
		// 区切り記号を保ったまま内側の本文だけ差し替える。
		_, err := editSpan(path, d, func(orig string) string {
			return strings.Replace(orig, d.Text, transformed, 1)
		})
		if err != nil {
			return Result{}, err
		}
		return Result{Changed: true}, nil
	case Annotate:
		_, err := editSpan(path, d, func(orig string) string {
			return orig + " /* " + transformed + " */"
		})
		if err != nil {
			return Result{}, err
		}
		return Result{Changed: true}, nil
	case Copy:
		if err := clipboard.WriteAll(transformed); err != nil {
			return Result{}, fmt.Errorf("copy to clipboard: %w", err)
		}
		return Result{}, nil
	case Scratch:
		p, err := writeScratch(d.Text, transformed)
		if err != nil {
			return Result{}, err
		}
		return Result{ScratchPath: p}, nil
	default:
		return Result{}, fmt.Errorf("unknown action: %s", kind)
	}
}

// editSpan rewrites the detection's span in the file via edit and
// returns the original span text.
func editSpan(path string, d model.Detection, edit func(string) string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	lines := strings.Split(string(data), "\n")
	if d.Line < 0 || d.Line >= len(lines) {
		return "", fmt.Errorf("line %d out of range (%d lines)", d.Line, len(lines))
	}
	line := lines[d.Line]
	if d.StartChar < 0 || d.EndChar > len(line) || d.StartChar >= d.EndChar {
		return "", fmt.Errorf("span %d..%d out of range on line %d", d.StartChar, d.EndChar, d.Line)
	}
	orig := line[d.StartChar:d.EndChar]
	lines[d.Line] = line[:d.StartChar] + edit(orig) + line[d.EndChar:]

	mode := os.FileMode(0o644)
	if st, err := os.Stat(path); err == nil {
		mode = st.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), mode); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return orig, nil
}

// writeScratch drops the original and transformed text into a temp
// file and returns its path. The caller decides whether to open it.
func writeScratch(original, transformed string) (string, error) {
	f, err := os.CreateTemp("", "litscan-scratch-*.txt")
	if err != nil {
		return "", fmt.Errorf("create scratch file: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	b.WriteString("--- original\n")
	b.WriteString(original)
	b.WriteString("\n\n--- transformed\n")
	b.WriteString(transformed)
	b.WriteString("\n")
	if _, err := f.WriteString(b.String()); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write scratch file: %w", err)
	}
	return filepath.Clean(f.Name()), nil
}
