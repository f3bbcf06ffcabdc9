// recipeparse converts free-form recipe text into structured data.
//
// Usage:
//
//	recipeparse [flags] [file...]
//
// With no files the recipe is read from stdin. Results are printed as
// styled text, JSON or YAML. The exit status is 1 when any input had
// lexical or grammar errors and 2 for usage and I/O errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/hammamikhairi/recipeparse/internal/display"
	"github.com/hammamikhairi/recipeparse/internal/domain"
	"github.com/hammamikhairi/recipeparse/internal/logger"
	"github.com/hammamikhairi/recipeparse/internal/parser"
	"github.com/hammamikhairi/recipeparse/internal/recipe"
	"github.com/hammamikhairi/recipeparse/internal/units"
	"github.com/hammamikhairi/recipeparse/internal/watch"
)

// Environment variables read before flags. Flags win.
const (
	EnvLogLevel = "RECIPEPARSE_LOG_LEVEL"
	EnvFormat   = "RECIPEPARSE_FORMAT"
	EnvCatalog  = "RECIPEPARSE_CATALOG"
	EnvDeDup    = "RECIPEPARSE_DEDUP"
)

const (
	exitOK     = 0
	exitErrors = 1
	exitUsage  = 2
)

func main() {
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type config struct {
	rule      parser.Rule
	deDup     bool
	format    string
	catalog   string
	jobs      int
	watch     bool
	listUnits bool
	level     logger.Level
	logFile   string
	files     []string
}

func parseConfig(args []string, stderr io.Writer) (config, error) {
	cfg := config{format: "text", jobs: 4, level: logger.LevelNormal}

	if v := os.Getenv(EnvFormat); v != "" {
		cfg.format = v
	}
	cfg.catalog = os.Getenv(EnvCatalog)
	if v := os.Getenv(EnvDeDup); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s=%q: %w", EnvDeDup, v, domain.ErrInvalidConfig)
		}
		cfg.deDup = on
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		level, err := logger.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.level = level
	}

	fs := flag.NewFlagSet("recipeparse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	rule := fs.String("rule", "recipe", "what the input holds: recipe, ingredients or steps")
	fs.BoolVar(&cfg.deDup, "dedup", cfg.deDup, "only stamp the first item of each section with its title")
	fs.StringVar(&cfg.format, "format", cfg.format, "output format: text, json or yaml")
	fs.StringVar(&cfg.catalog, "catalog", cfg.catalog, "YAML unit catalog to use instead of the built-in one")
	fs.IntVar(&cfg.jobs, "jobs", cfg.jobs, "files converted in parallel")
	fs.BoolVar(&cfg.watch, "watch", false, "convert again whenever an input file changes")
	fs.BoolVar(&cfg.listUnits, "units", false, "list the unit catalog and exit")
	verbose := fs.Bool("v", false, "enable verbose/debug logging")
	quiet := fs.Bool("q", false, "disable all logging")
	fs.StringVar(&cfg.logFile, "log-file", "stderr", "file to write logs to (use \"stderr\" to log to console)")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	r, err := parser.ParseRule(*rule)
	if err != nil {
		return cfg, err
	}
	cfg.rule = r

	cfg.format = strings.ToLower(cfg.format)
	switch cfg.format {
	case "text", "json", "yaml":
	default:
		return cfg, fmt.Errorf("format %q: %w", cfg.format, domain.ErrUnknownOutputKind)
	}
	if cfg.jobs < 1 {
		return cfg, fmt.Errorf("jobs must be at least 1: %w", domain.ErrInvalidConfig)
	}
	if *verbose {
		cfg.level = logger.LevelVerbose
	}
	if *quiet {
		cfg.level = logger.LevelOff
	}
	cfg.files = fs.Args()
	if cfg.watch && len(cfg.files) == 0 {
		return cfg, fmt.Errorf("-watch needs at least one file: %w", domain.ErrInvalidConfig)
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return exitUsage
	}

	var logOut io.Writer = stderr
	if cfg.logFile != "" && cfg.logFile != "stderr" {
		if dir := filepath.Dir(cfg.logFile); dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(cfg.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", cfg.logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}
	stdlog.SetOutput(logOut)
	log := logger.New(cfg.level, logOut)

	catalog := units.Default()
	if cfg.catalog != "" {
		catalog, err = units.LoadFile(cfg.catalog)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitUsage
		}
		log.Info("loaded %d units from %s", len(catalog.Entries()), cfg.catalog)
	}

	printer := display.NewPrinter(stdout)
	if cfg.listUnits {
		printer.PrintUnits(catalog)
		return exitOK
	}

	opts := []recipe.Option{
		recipe.WithStartRule(cfg.rule),
		recipe.WithDeDupSections(cfg.deDup),
		recipe.WithLogger(log),
		recipe.WithLogWarnings(cfg.level >= logger.LevelVerbose),
		recipe.WithCatalog(catalog),
	}
	out := newEmitter(cfg.format, stdout, printer)
	store := recipe.NewMemoryStore(log)

	if len(cfg.files) == 0 {
		text, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "error: reading stdin: %v\n", err)
			return exitUsage
		}
		res, err := recipe.NewConverter(opts...).Convert(string(text))
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitUsage
		}
		if err := out.emit("", res); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitUsage
		}
		if res.HasErrors() {
			return exitErrors
		}
		return exitOK
	}

	results, err := convertFiles(ctx, cfg.files, cfg.jobs, opts)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	status := exitOK
	for i, name := range cfg.files {
		store.Put(name, results[i].text, results[i].res)
		if err := out.emit(name, results[i].res); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitUsage
		}
		if results[i].res.HasErrors() {
			status = exitErrors
		}
	}
	if cfg.format == "text" && len(cfg.files) > 1 {
		printer.Println("")
		printer.PrintSummary(store.List())
	}

	if !cfg.watch {
		return status
	}

	converter := recipe.NewConverter(opts...)
	err = watch.Watch(ctx, cfg.files, log, func(path string) error {
		text, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if store.Unchanged(path, string(text)) {
			return nil
		}
		res, err := converter.Convert(string(text))
		if err != nil {
			return err
		}
		store.Put(path, string(text), res)
		return out.emit(path, res)
	})
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	return status
}

type converted struct {
	text string
	res  recipe.Result
}

// convertFiles reads and converts files with at most jobs in flight. Each
// goroutine owns its converter.
func convertFiles(ctx context.Context, files []string, jobs int, opts []recipe.Option) ([]converted, error) {
	results := make([]converted, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := os.ReadFile(name)
			if err != nil {
				return err
			}
			res, err := recipe.NewConverter(opts...).Convert(string(text))
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			results[i] = converted{text: string(text), res: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
