package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/zostay/xsdgen-go"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("xsdanno", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a TOML config file")
	backend := fs.String("backend", "", "annotation backend (yaserde, openapi)")
	format := fs.String("format", "", "output format (text, yaml)")
	output := fs.String("o", "", "write output to file instead of stdout")
	concurrency := fs.Int("j", 0, "number of model files to annotate at once")
	logLevel := fs.String("log-level", "", "log level (trace, debug, info, warn, error, off)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: xsdanno [options] <model.yaml> ...\n\n")
		fmt.Fprintln(stderr, "Generates serialization directives for a parsed schema model.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		if err := loadConfigFile(*configPath, &cfg); err != nil {
			fmt.Fprintf(stderr, "xsdanno: %v\n", err)
			return 1
		}
	}
	applyEnvOverrides(&cfg)

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Backend = *backend
		case "format":
			cfg.Format = *format
		case "o":
			cfg.Output = *output
		case "j":
			if *concurrency < 1 {
				flagErr = fmt.Errorf("-j must be at least 1, got %d", *concurrency)
				return
			}
			cfg.Concurrency = *concurrency
		case "log-level":
			lvl, ok := parseLevel(*logLevel)
			if !ok {
				flagErr = fmt.Errorf("unknown log level %q", *logLevel)
				return
			}
			cfg.LogLevel = lvl
		}
	})
	if flagErr != nil {
		fmt.Fprintf(stderr, "xsdanno: %v\n", flagErr)
		return 2
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "error: at least one schema model file is required")
		fs.Usage()
		return 2
	}

	logger := newLogger(stderr, cfg.LogLevel)

	reports, err := annotateFiles(ctx, logger, cfg, fs.Args())
	if err != nil {
		logger.Error().Err(err).Msg("annotation failed")
		return 1
	}

	if err := writeOutput(stdout, cfg, reports); err != nil {
		logger.Error().Err(err).Msg("write output failed")
		return 1
	}

	return 0
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        zerolog.SyncWriter(w),
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", "xsdanno").Logger()
}

// annotateFiles loads and annotates each model file with its own generator.
// Reports come back in the order of paths.
func annotateFiles(ctx context.Context, logger zerolog.Logger, cfg Config, paths []string) ([]xsdgen.FileReport, error) {
	// fail fast on a bad backend or format before touching any file
	if _, err := xsdgen.NewGenerator(cfg.Backend, nil); err != nil {
		return nil, err
	}
	if err := xsdgen.CheckFormat(cfg.Format); err != nil {
		return nil, err
	}

	reports := make([]xsdgen.FileReport, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Concurrency, 1))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			f, err := xsdgen.LoadFile(path)
			if err != nil {
				return err
			}

			gen, err := xsdgen.NewGenerator(cfg.Backend, f)
			if err != nil {
				return err
			}

			anns := xsdgen.Annotate(gen, f)
			logger.Debug().
				Str("path", path).
				Str("backend", cfg.Backend).
				Int("types", len(f.Types)).
				Int("annotations", len(anns)).
				Msg("annotated schema model")

			reports[i] = xsdgen.FileReport{Path: path, Annotations: anns}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func writeOutput(stdout io.Writer, cfg Config, reports []xsdgen.FileReport) (err error) {
	if err := xsdgen.CheckFormat(cfg.Format); err != nil {
		return err
	}

	w := stdout
	if cfg.Output != "" {
		f, createErr := os.Create(cfg.Output)
		if createErr != nil {
			return fmt.Errorf("create output: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
		}()
		w = f
	}

	return xsdgen.WriteFileReports(w, cfg.Format, reports)
}
