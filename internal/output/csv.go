package output

import (
	"encoding/csv"
	"io"

	"github.com/karinto/litscan/internal/model"
)

// WriteCSV renders detections as RFC 4180 compliant CSV (including CRLF endings).
func WriteCSV(w io.Writer, detections []model.Detection, sel FieldSelection) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(Headers(sel.Fields)); err != nil {
		return err
	}
	for _, d := range detections {
		if err := writer.Write(RowValues(d, sel.Fields)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
