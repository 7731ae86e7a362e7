package app

import (
	"encoding/json"
	"os"

	"github.com/hyperifyio/pdfoutline/internal/outline"
)

// writeDocumentJSON writes the title/outline artifact for one input file.
// HTML escaping is disabled so non-ASCII text is emitted literally rather
// than as \u escapes.
func writeDocumentJSON(path string, res outline.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
