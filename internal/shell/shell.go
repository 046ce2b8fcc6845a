package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"bookdb/internal/catalog"
	"bookdb/internal/loader"

	"github.com/google/uuid"
)

// ErrUsage is returned for unknown commands and wrong argument counts.
var ErrUsage = errors.New("usage")

type Shell struct {
	store  catalog.Store
	out    io.Writer
	output string
	prompt string
	logger *log.Logger
}

type Option func(*Shell)

// WithJSONOutput renders every result as one JSON object per line.
func WithJSONOutput() Option {
	return func(s *Shell) { s.output = "json" }
}

// WithPrompt prints prompt before reading each line.
func WithPrompt(prompt string) Option {
	return func(s *Shell) { s.prompt = prompt }
}

func WithLogger(logger *log.Logger) Option {
	return func(s *Shell) { s.logger = logger }
}

func New(store catalog.Store, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		store:  store,
		out:    out,
		output: "text",
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes commands read from r until EOF, quit, or ctx is done. It returns
// ctx.Err() as soon as ctx is done, also while waiting for input. The reader
// goroutine exits once its pending read on r returns.
func (s *Shell) Run(ctx context.Context, r io.Reader) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.prompt != "" {
			fmt.Fprint(s.out, s.prompt)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			return err
		case line := <-lines:
			if !s.Exec(line) {
				return nil
			}
		}
	}
}

// Exec runs one command line and writes its result. It returns false once the
// shell should stop.
func (s *Shell) Exec(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return true
	}

	start := time.Now()
	words, err := splitWords(line)
	name := ""
	var data any
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrUsage, err)
	} else if len(words) == 0 {
		return true
	} else {
		name = words[0]
		if name == "quit" || name == "exit" {
			return false
		}
		data, err = s.dispatch(name, words[1:])
	}

	status := "ok"
	if err != nil {
		status = errorCode(err)
	}
	s.logger.Printf("command name=%s status=%s duration_ms=%d request_id=%s",
		name, status, time.Since(start).Milliseconds(), uuid.New().String())

	s.render(data, err)
	return true
}

func (s *Shell) dispatch(name string, args []string) (any, error) {
	switch name {
	case "add":
		if len(args) < 1 {
			return nil, usage("add <title> [author...]")
		}
		return nil, s.store.Add(args[0], args[1:])
	case "update":
		if len(args) < 1 {
			return nil, usage("update <title> <author...>")
		}
		return nil, s.store.UpdateAuthorsByTitle(args[0], args[1:])
	case "authors":
		if len(args) != 1 {
			return nil, usage("authors <title>")
		}
		return s.store.AuthorsByTitle(args[0])
	case "titles":
		if len(args) != 1 {
			return nil, usage("titles <author>")
		}
		return s.store.TitlesByAuthor(args[0])
	case "remove":
		if len(args) != 1 {
			return nil, usage("remove <title>")
		}
		return nil, s.store.RemoveTitle(args[0])
	case "remove-author":
		if len(args) != 1 {
			return nil, usage("remove-author <author>")
		}
		return nil, s.store.RemoveAllTitlesByAuthor(args[0])
	case "list-titles":
		if len(args) != 0 {
			return nil, usage("list-titles")
		}
		return s.store.Titles(), nil
	case "list-authors":
		if len(args) != 0 {
			return nil, usage("list-authors")
		}
		return s.store.Authors(), nil
	case "verify":
		if len(args) != 0 {
			return nil, usage("verify")
		}
		return nil, s.store.Verify()
	case "export":
		if len(args) != 1 {
			return nil, usage("export <path>")
		}
		return nil, loader.SaveFile(args[0], s.store.Entries())
	case "help":
		return helpLines(), nil
	default:
		return nil, fmt.Errorf("%w: unknown command %q, try help", ErrUsage, name)
	}
}

func usage(synopsis string) error {
	return fmt.Errorf("%w: %s", ErrUsage, synopsis)
}

func helpLines() []string {
	return []string{
		"add <title> [author...]      add a book",
		"update <title> <author...>   replace the authors of a book",
		"authors <title>              list the authors of a book",
		"titles <author>              list the books of an author",
		"remove <title>               remove a book",
		"remove-author <author>       remove every book of an author",
		"list-titles                  list all books",
		"list-authors                 list all authors",
		"verify                       check both indexes agree",
		"export <path>                write the catalog to a .yaml or .json file",
		"quit                         leave the shell",
	}
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, catalog.ErrAlreadyExists):
		return "ALREADY_EXISTS"
	case errors.Is(err, catalog.ErrInvalidArgument), errors.Is(err, ErrUsage):
		return "INVALID_ARGUMENT"
	case errors.Is(err, catalog.ErrInconsistent):
		return "INCONSISTENT"
	default:
		return "INTERNAL_ERROR"
	}
}
