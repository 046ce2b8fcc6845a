package loader

import (
	"fmt"
	"io"

	"bookdb/internal/catalog"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONCodec handles JSON catalog documents.
type JSONCodec struct{}

func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

func (c *JSONCodec) Format() string {
	return "json"
}

func (c *JSONCodec) Decode(r io.Reader) ([]catalog.Entry, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if err := validateDocument(&doc); err != nil {
		return nil, err
	}
	return doc.entries(), nil
}

func (c *JSONCodec) Encode(w io.Writer, entries []catalog.Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(documentFrom(entries)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
