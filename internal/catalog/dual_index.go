package catalog

import (
	"fmt"
)

// Option configures a Catalog.
type Option func(*Catalog)

// WithSymmetricUpdates makes UpdateAuthorsByTitle unlink the previous authors
// and link the new ones. Without it the previous authors are re-linked and the
// new authors stay absent from the author index.
func WithSymmetricUpdates() Option {
	return func(c *Catalog) {
		c.symmetricUpdates = true
	}
}

// Catalog keeps a title→authors index and its inverse author→titles index in step.
// It is not safe for concurrent use; see Synchronized.
type Catalog struct {
	byTitle          *index
	byAuthor         *index
	symmetricUpdates bool
}

// New creates an empty catalog.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		byTitle:  newIndex(),
		byAuthor: newIndex(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FromEntries rebuilds a catalog from a snapshot taken with Entries.
// The author index is regenerated from the titles.
func FromEntries(entries []Entry, opts ...Option) (*Catalog, error) {
	c := New(opts...)
	for i, e := range entries {
		if err := c.Add(e.Title, e.Authors); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return c, nil
}

// Add stores title with the given authors, duplicates collapsed in first-occurrence order.
// An empty author list is accepted.
func (c *Catalog) Add(title string, authors []string) error {
	if _, ok := c.byTitle.get(title); ok {
		return fmt.Errorf("%w: a book with the title %q", ErrAlreadyExists, title)
	}

	set := NewOrderedSet(authors...)
	c.byTitle.put(title, set)
	for _, author := range set.Values() {
		c.byAuthor.link(author, title)
	}
	return nil
}

func (c *Catalog) AuthorsByTitle(title string) ([]string, error) {
	authors, ok := c.byTitle.get(title)
	if !ok {
		return nil, fmt.Errorf("%w: no book with the title %q", ErrNotFound, title)
	}
	return authors.Values(), nil
}

// TitlesByAuthor returns the author's titles in the order they were first associated.
func (c *Catalog) TitlesByAuthor(author string) ([]string, error) {
	titles, ok := c.byAuthor.get(author)
	if !ok {
		return nil, fmt.Errorf("%w: no books by author %q", ErrNotFound, author)
	}
	return titles.Values(), nil
}

// RemoveTitle deletes title and unlinks it from every author that lists it,
// including previous authors left linked by an update. Authors left without
// titles are dropped.
func (c *Catalog) RemoveTitle(title string) error {
	if _, ok := c.byTitle.get(title); !ok {
		return fmt.Errorf("%w: no book with the title %q", ErrNotFound, title)
	}

	c.eraseTitle(title)
	return nil
}

// RemoveAllTitlesByAuthor erases every title linked to author, including titles
// that have other authors, and then the author itself.
func (c *Catalog) RemoveAllTitlesByAuthor(author string) error {
	titles, ok := c.byAuthor.get(author)
	if !ok {
		return fmt.Errorf("%w: no books by author %q", ErrNotFound, author)
	}

	for _, title := range titles.Values() {
		c.eraseTitle(title)
	}
	c.byAuthor.delete(author)
	return nil
}

func (c *Catalog) Titles() []string {
	return c.byTitle.keys()
}

func (c *Catalog) Authors() []string {
	return c.byAuthor.keys()
}

// UpdateAuthorsByTitle replaces the author list of an existing title.
//
// By default the previous authors are linked back to title and the new authors
// are not added to the author index. WithSymmetricUpdates switches to moving
// the links from the previous authors to the new ones.
func (c *Catalog) UpdateAuthorsByTitle(title string, authors []string) error {
	previous, ok := c.byTitle.get(title)
	if !ok {
		return fmt.Errorf("%w: no book with the title %q", ErrNotFound, title)
	}
	if len(authors) == 0 {
		return fmt.Errorf("%w: authors cannot be empty for update", ErrInvalidArgument)
	}

	next := NewOrderedSet(authors...)
	c.byTitle.put(title, next)

	if c.symmetricUpdates {
		for _, author := range previous.Values() {
			if !next.Contains(author) {
				c.byAuthor.unlink(author, title)
			}
		}
		for _, author := range next.Values() {
			c.byAuthor.link(author, title)
		}
		return nil
	}

	for _, author := range previous.Values() {
		c.byAuthor.link(author, title)
	}
	return nil
}

// Entries returns a snapshot of the title index in title order.
func (c *Catalog) Entries() []Entry {
	titles := c.byTitle.keys()
	out := make([]Entry, 0, len(titles))
	for _, title := range titles {
		authors, _ := c.byTitle.get(title)
		out = append(out, Entry{Title: title, Authors: authors.Values()})
	}
	return out
}

// Len reports the number of titles and authors currently indexed.
func (c *Catalog) Len() (titles, authors int) {
	return c.byTitle.len(), c.byAuthor.len()
}

// eraseTitle drops title from both indexes, pruning authors whose set empties.
func (c *Catalog) eraseTitle(title string) {
	c.byAuthor.unlinkEverywhere(title)
	c.byTitle.delete(title)
}
