package catalog

import (
	"errors"
)

var (
	// ErrNotFound is returned when a title or author is not in the catalog.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when adding a title that is already present.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidArgument is returned when an update supplies no authors.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInconsistent wraps every violation reported by Verify.
	ErrInconsistent = errors.New("catalog indexes are inconsistent")
)

// Entry is one title together with its ordered authors.
type Entry struct {
	Title   string   `json:"title" yaml:"title"`
	Authors []string `json:"authors" yaml:"authors"`
}

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks bookdb/internal/catalog Store

// Store defines the operations of a dual-index catalog.
type Store interface {
	Add(title string, authors []string) error
	AuthorsByTitle(title string) ([]string, error)
	TitlesByAuthor(author string) ([]string, error)
	RemoveTitle(title string) error
	RemoveAllTitlesByAuthor(author string) error
	Titles() []string
	Authors() []string
	UpdateAuthorsByTitle(title string, authors []string) error
	Entries() []Entry
	Verify() error
}

var (
	_ Store = (*Catalog)(nil)
	_ Store = (*Synchronized)(nil)
)
