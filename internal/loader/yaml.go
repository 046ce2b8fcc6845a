package loader

import (
	"errors"
	"fmt"
	"io"

	"bookdb/internal/catalog"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML catalog documents.
type YAMLCodec struct{}

func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

func (c *YAMLCodec) Format() string {
	return "yaml"
}

// Decode parses a YAML document. An empty input yields no entries.
func (c *YAMLCodec) Decode(r io.Reader) ([]catalog.Entry, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := validateDocument(&doc); err != nil {
		return nil, err
	}
	return doc.entries(), nil
}

func (c *YAMLCodec) Encode(w io.Writer, entries []catalog.Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(documentFrom(entries)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
