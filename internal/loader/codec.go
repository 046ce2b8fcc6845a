package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"bookdb/internal/catalog"
)

// ErrUnsupportedFormat is returned for file extensions no codec handles.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Codec converts between a serialized catalog document and catalog entries.
type Codec interface {
	Decode(r io.Reader) ([]catalog.Entry, error)
	Encode(w io.Writer, entries []catalog.Entry) error
	Format() string
}

type document struct {
	Books []record `json:"books" yaml:"books" validate:"dive"`
}

type record struct {
	Title   string   `json:"title" yaml:"title" validate:"notblank"`
	Authors []string `json:"authors" yaml:"authors" validate:"dive,notblank"`
}

func (d *document) entries() []catalog.Entry {
	out := make([]catalog.Entry, 0, len(d.Books))
	for _, b := range d.Books {
		authors := b.Authors
		if authors == nil {
			authors = []string{}
		}
		out = append(out, catalog.Entry{Title: b.Title, Authors: authors})
	}
	return out
}

func documentFrom(entries []catalog.Entry) *document {
	doc := &document{Books: make([]record, 0, len(entries))}
	for _, e := range entries {
		authors := e.Authors
		if authors == nil {
			authors = []string{}
		}
		doc.Books = append(doc.Books, record{Title: e.Title, Authors: authors})
	}
	return doc
}

// ForPath picks a codec from the file extension.
func ForPath(path string) (Codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLCodec(), nil
	case ".json":
		return NewJSONCodec(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// LoadFile reads and validates the catalog document at path.
func LoadFile(path string) ([]catalog.Entry, error) {
	codec, err := ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	entries, err := codec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return entries, nil
}

// SaveFile writes entries to path in the format implied by its extension.
func SaveFile(path string, entries []catalog.Entry) error {
	codec, err := ForPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := codec.Encode(f, entries); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	return f.Close()
}
