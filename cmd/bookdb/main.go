package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"bookdb/internal/catalog"
	"bookdb/internal/config"
	"bookdb/internal/ingest"
	"bookdb/internal/loader"
	"bookdb/internal/shell"
)

type options struct {
	cfg        config.Config
	exportPath string
	script     string
}

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	opts, err := parseFlags(cfg, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, opts, os.Stdin, os.Stdout)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}

// parseFlags applies command-line flags over cfg, which holds the environment values.
func parseFlags(cfg config.Config, args []string) (options, error) {
	fs := flag.NewFlagSet("bookdb", flag.ContinueOnError)
	var (
		seed       = fs.String("seed", cfg.SeedFile, "Catalog file (.yaml, .yml or .json) to load at startup")
		output     = fs.String("output", cfg.Output, "Output format: text or json")
		symmetric  = fs.Bool("symmetric-updates", cfg.SymmetricUpdates, "Move author links on update instead of re-linking previous authors")
		exportPath = fs.String("export", "", "Write the final catalog to this file on exit")
		script     = fs.String("script", "", "Read commands from this file instead of stdin")
	)
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	cfg.SeedFile = *seed
	cfg.Output = config.NormalizeOutput(*output)
	cfg.SymmetricUpdates = *symmetric
	if err := cfg.Validate(); err != nil {
		return options{}, err
	}
	return options{cfg: cfg, exportPath: *exportPath, script: *script}, nil
}

func run(ctx context.Context, opts options, stdin *os.File, stdout io.Writer) error {
	cfg := opts.cfg

	var catalogOpts []catalog.Option
	if cfg.SymmetricUpdates {
		catalogOpts = append(catalogOpts, catalog.WithSymmetricUpdates())
	}
	store := catalog.NewSynchronized(catalog.New(catalogOpts...))

	if cfg.SeedFile != "" {
		r, err := ingest.NewService(store, ingest.Config{}).Run(ctx, loader.FileSource{Path: cfg.SeedFile})
		if err != nil {
			return fmt.Errorf("cannot load seed file %s: %w", cfg.SeedFile, err)
		}
		log.Printf("seed loaded file=%s added=%d skipped=%d", cfg.SeedFile, r.Added, r.Skipped)
	}

	var in io.Reader = stdin
	shellOpts := []shell.Option{}
	if opts.script != "" {
		f, err := os.Open(opts.script)
		if err != nil {
			return fmt.Errorf("cannot open script: %w", err)
		}
		defer f.Close()
		in = f
	} else if isTerminal(stdin) {
		shellOpts = append(shellOpts, shell.WithPrompt(cfg.Prompt))
	}
	if cfg.Output == config.OutputJSON {
		shellOpts = append(shellOpts, shell.WithJSONOutput())
	}

	sh := shell.New(store, stdout, shellOpts...)
	if err := sh.Run(ctx, in); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("shell error: %v", err)
	}

	if opts.exportPath != "" {
		if err := loader.SaveFile(opts.exportPath, store.Entries()); err != nil {
			return fmt.Errorf("cannot export catalog: %w", err)
		}
		titles, authors := store.Len()
		log.Printf("catalog exported file=%s titles=%d authors=%d", opts.exportPath, titles, authors)
	}
	return nil
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
