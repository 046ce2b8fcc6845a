package loader

import (
	"context"

	"bookdb/internal/catalog"
)

// FileSource serves the entries of one catalog file.
type FileSource struct {
	Path string
}

func (s FileSource) Entries(ctx context.Context) ([]catalog.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadFile(s.Path)
}

func (s FileSource) String() string {
	return s.Path
}
