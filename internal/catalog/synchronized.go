package catalog

import (
	"sync"
)

// Synchronized guards a Catalog with one lock covering both indexes, so no
// caller observes a title-side update without its author-side counterpart.
type Synchronized struct {
	mu sync.RWMutex
	c  *Catalog
}

// NewSynchronized wraps c. The caller must not use c directly afterwards.
func NewSynchronized(c *Catalog) *Synchronized {
	return &Synchronized{c: c}
}

func (s *Synchronized) Add(title string, authors []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Add(title, authors)
}

func (s *Synchronized) AuthorsByTitle(title string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.AuthorsByTitle(title)
}

func (s *Synchronized) TitlesByAuthor(author string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.TitlesByAuthor(author)
}

func (s *Synchronized) RemoveTitle(title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.RemoveTitle(title)
}

func (s *Synchronized) RemoveAllTitlesByAuthor(author string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.RemoveAllTitlesByAuthor(author)
}

func (s *Synchronized) Titles() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.Titles()
}

func (s *Synchronized) Authors() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.Authors()
}

func (s *Synchronized) UpdateAuthorsByTitle(title string, authors []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.UpdateAuthorsByTitle(title, authors)
}

func (s *Synchronized) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.Entries()
}

func (s *Synchronized) Verify() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.Verify()
}

func (s *Synchronized) Len() (titles, authors int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.Len()
}
