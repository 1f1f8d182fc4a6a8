// Package output renders detection lists in the machine-readable
// formats (json/ndjson/csv/md). The human formats (table/tsv) live in
// cmd, where terminal width and color are known.
package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/karinto/litscan/internal/model"
)

// DefaultFields は -fields 未指定時に表示する列。
var DefaultFields = []string{"location", "quote", "lang", "text"}

var allFields = map[string]struct{}{
	"location":   {},
	"line":       {},
	"start_char": {},
	"end_char":   {},
	"quote":      {},
	"lang":       {},
	"text":       {},
}

// FieldSelection is a validated, ordered list of output columns.
type FieldSelection struct {
	Fields []string
}

// ParseFields validates a comma-separated field list. Empty input
// selects DefaultFields.
func ParseFields(raw string) (FieldSelection, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return FieldSelection{Fields: append([]string(nil), DefaultFields...)}, nil
	}
	var fields []string
	seen := map[string]struct{}{}
	for _, piece := range strings.Split(raw, ",") {
		name := strings.ToLower(strings.TrimSpace(piece))
		if name == "" {
			continue
		}
		if _, ok := allFields[name]; !ok {
			return FieldSelection{}, fmt.Errorf("unknown field: %s", name)
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		fields = append(fields, name)
	}
	if len(fields) == 0 {
		return FieldSelection{}, fmt.Errorf("empty field list: %q", raw)
	}
	return FieldSelection{Fields: fields}, nil
}

// Headers returns the column headers for the selected fields.
func Headers(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		switch f {
		case "location":
			out[i] = "LOCATION"
		case "line":
			out[i] = "LINE"
		case "start_char":
			out[i] = "START"
		case "end_char":
			out[i] = "END"
		case "quote":
			out[i] = "QUOTE"
		case "lang":
			out[i] = "LANG"
		case "text":
			out[i] = "TEXT"
		default:
			out[i] = strings.ToUpper(f)
		}
	}
	return out
}

// RowValues renders one detection as the selected columns.
func RowValues(d model.Detection, fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		switch f {
		case "location":
			line, col := d.Location()
			out[i] = fmt.Sprintf("%d:%d", line, col)
		case "line":
			out[i] = strconv.Itoa(d.Line)
		case "start_char":
			out[i] = strconv.Itoa(d.StartChar)
		case "end_char":
			out[i] = strconv.Itoa(d.EndChar)
		case "quote":
			out[i] = string(d.QuoteKind)
		case "lang":
			out[i] = d.LanguageID
		case "text":
			out[i] = d.Text
		}
	}
	return out
}
