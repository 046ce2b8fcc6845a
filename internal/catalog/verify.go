package catalog

import (
	"errors"
	"fmt"
)

// Verify checks that both indexes describe the same edges and that no author
// entry is empty. Every violation found is returned, joined.
func (c *Catalog) Verify() error {
	var errs []error

	for _, title := range c.byTitle.keys() {
		authors, _ := c.byTitle.get(title)
		for _, author := range authors.Values() {
			titles, ok := c.byAuthor.get(author)
			if !ok || !titles.Contains(title) {
				errs = append(errs, fmt.Errorf("%w: title %q lists author %q but the author does not list it", ErrInconsistent, title, author))
			}
		}
	}

	for _, author := range c.byAuthor.keys() {
		titles, _ := c.byAuthor.get(author)
		if titles.Len() == 0 {
			errs = append(errs, fmt.Errorf("%w: author %q has no titles", ErrInconsistent, author))
		}
		for _, title := range titles.Values() {
			authors, ok := c.byTitle.get(title)
			if !ok {
				errs = append(errs, fmt.Errorf("%w: author %q lists missing title %q", ErrInconsistent, author, title))
				continue
			}
			if !authors.Contains(author) {
				errs = append(errs, fmt.Errorf("%w: author %q lists title %q but the title does not list the author", ErrInconsistent, author, title))
			}
		}
	}

	for title, authors := range c.byAuthor.holders {
		for _, author := range authors.Values() {
			if titles, ok := c.byAuthor.get(author); !ok || !titles.Contains(title) {
				errs = append(errs, fmt.Errorf("%w: author %q is recorded as listing title %q but does not", ErrInconsistent, author, title))
			}
		}
	}

	return errors.Join(errs...)
}
