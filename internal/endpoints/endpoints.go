// Package endpoints serves the API's self-description document.
package endpoints

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

//go:embed endpoints.json
var defaultDocument []byte

// Document is the endpoint description served verbatim at GET /api.
type Document json.RawMessage

// MarshalJSON writes the document as-is.
func (d Document) MarshalJSON() ([]byte, error) {
	return json.RawMessage(d).MarshalJSON()
}

// Load reads the document from path, or returns the embedded one when path
// is empty. The content must be a JSON object.
func Load(path string) (Document, error) {
	raw := defaultDocument
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read endpoints file: %w", err)
		}
		raw = b
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("parse endpoints file: %w", err)
	}
	if probe == nil {
		return nil, errors.New("parse endpoints file: document is null")
	}
	return Document(raw), nil
}
