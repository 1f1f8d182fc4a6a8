package output

import (
	"encoding/json"
	"io"

	"github.com/karinto/litscan/internal/model"
)

// WriteNDJSON streams detections as newline-delimited JSON objects.
func WriteNDJSON(w io.Writer, detections []model.Detection) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, d := range detections {
		if err := enc.Encode(d); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON renders the whole detection list as one JSON array.
func WriteJSON(w io.Writer, detections []model.Detection) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if detections == nil {
		detections = []model.Detection{}
	}
	return enc.Encode(detections)
}
