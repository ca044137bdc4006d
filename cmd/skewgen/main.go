// Command skewgen writes synthetic records as JSON lines.
//
//	skewgen -config gen.yaml -rows 100 -rate 50 -codec json
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hupe1980/skewgen"
	"github.com/hupe1980/skewgen/blobstore"
	"github.com/hupe1980/skewgen/codec"
	"github.com/hupe1980/skewgen/config"
	"github.com/hupe1980/skewgen/record"
)

// Version is set at build time
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "skewgen: %v\n", err)
		if skewgen.IsConfigurationError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) (err error) {
	fs := flag.NewFlagSet("skewgen", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML, TOML or JSON config file")
	rows := fs.Int("rows", 0, "number of rows to emit (-1 runs until interrupted)")
	rateFlag := fs.Float64("rate", 0, "rows per second (0 is unlimited)")
	codecName := fs.String("codec", "", "output codec: json or go-json")
	seed := fs.Int64("seed", 0, "random seed for reproducible output")
	list := fs.Bool("list", false, "list available resources and exit")
	version := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *version {
		_, err := fmt.Fprintln(stdout, Version)
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags given explicitly win over the config file and environment.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = *rows
		case "rate":
			cfg.Rate = *rateFlag
		case "codec":
			cfg.Codec = *codecName
		case "seed":
			cfg.Seed = seed
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := cfg.Log.Logger()
	logger.DebugContext(ctx, "starting skewgen", "version", Version, "backend", cfg.Resources.Backend)

	store, err := openResources(ctx, cfg.Resources)
	if err != nil {
		return fmt.Errorf("failed to open resources: %w", err)
	}

	if *list {
		return listResources(ctx, store, stdout)
	}

	out, _ := codec.ByName(cfg.Codec)

	mc := &skewgen.BasicMetricsCollector{}
	opts := []skewgen.Option{
		skewgen.WithLogger(logger),
		skewgen.WithMetricsCollector(mc),
		skewgen.WithResources(store),
		skewgen.WithRate(cfg.Rate, cfg.Burst),
	}
	if cfg.Seed != nil {
		opts = append(opts, skewgen.WithSeed(*cfg.Seed))
	}

	gen, err := skewgen.New(ctx, cfg.GeneratorFields(), opts...)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	defer func() {
		if ferr := w.Flush(); err == nil {
			err = ferr
		}
	}()
	defer func() {
		stats := mc.GetStats()
		logger.DebugContext(ctx, "metrics",
			"loads", stats.LoadCount,
			"load_avg", time.Duration(stats.LoadAvgNanos),
			"rows", stats.RowCount,
			"row_avg", time.Duration(stats.RowAvgNanos),
		)
	}()

	var buf []byte
	return gen.Run(ctx, cfg.Rows, func(r record.Record) error {
		line, err := codec.AppendLine(out, buf[:0], r)
		if err != nil {
			return err
		}
		buf = line
		if _, err := w.Write(line); err != nil {
			return err
		}
		// Unthrottled runs flush once at the end.
		if cfg.Rate > 0 {
			return w.Flush()
		}
		return nil
	})
}

func listResources(ctx context.Context, store blobstore.BlobStore, stdout io.Writer) error {
	lister, ok := store.(blobstore.Lister)
	if !ok {
		return fmt.Errorf("resource backend %T cannot list", store)
	}
	names, err := lister.List(ctx, "")
	if err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(stdout, name); err != nil {
			return err
		}
	}
	return nil
}
