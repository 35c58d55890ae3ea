package document

import (
	_ "embed" // Sample document bundle.
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

//go:embed sample.json
var sampleData []byte

// Sample returns the raw bytes of the bundled sample document.
func Sample() []byte {
	out := make([]byte, len(sampleData))
	copy(out, sampleData)
	return out
}

// Parse decodes a document from JSON. Unknown fields are ignored and missing
// fields keep their zero values. A field of the wrong type is left at its
// zero value and reported by SkippedField; malformed JSON is an error.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		doc.skipped = typeErr.Field
		if doc.skipped == "" {
			doc.skipped = "document"
		}
	}
	return &doc, nil
}

// Load reads a document from path. An empty path loads the bundled sample.
func Load(path string) (*Document, error) {
	if path == "" {
		return Parse(sampleData)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return Parse(data)
}
