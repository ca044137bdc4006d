package skewgen

import (
	"context"
	"errors"
	"time"

	"github.com/hupe1980/skewgen/record"
	"github.com/hupe1980/skewgen/sampler"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Field binds an output name to the sampler spec that fills it.
type Field struct {
	Name string
	Spec sampler.Spec
}

// Generator assembles records from an ordered list of field samplers.
//
// A Generator is single-owner: Row and Run must not be called concurrently.
type Generator struct {
	names    []string
	samplers []sampler.Sampler
	limiter  *rate.Limiter
	logger   *Logger
	metrics  MetricsCollector
}

// New builds every field sampler and returns a ready generator.
//
// Catalogs load concurrently; the first failure cancels the remaining loads
// and is returned as a *FieldError.
func New(ctx context.Context, fields []Field, optFns ...Option) (*Generator, error) {
	opts := applyOptions(optFns)
	log := opts.logger

	if len(fields) == 0 {
		log.LogBuild(ctx, 0, ErrNoFields)
		return nil, ErrNoFields
	}

	seen := make(map[string]struct{}, len(fields))
	names := make([]string, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			err := fieldError("", sampler.ErrConfiguration)
			log.LogBuild(ctx, len(fields), err)
			return nil, err
		}
		if _, ok := seen[f.Name]; ok {
			err := &ErrDuplicateField{Name: f.Name}
			log.LogBuild(ctx, len(fields), err)
			return nil, err
		}
		seen[f.Name] = struct{}{}
		names[i] = f.Name
	}

	samplers := make([]sampler.Sampler, len(fields))

	g, gctx := errgroup.WithContext(ctx)
	if opts.loadConcurrency > 0 {
		g.SetLimit(opts.loadConcurrency)
	}
	for i, f := range fields {
		g.Go(func() error {
			flog := log.WithField(f.Name)
			start := time.Now()
			s, err := opts.registry.New(gctx, f.Spec, opts.samplerOptions(i, flog)...)
			opts.metrics.RecordLoad(f.Name, time.Since(start), err)
			flog.LogLoad(gctx, f.Name, string(f.Spec.Kind), err)
			if err != nil {
				return fieldError(f.Name, err)
			}
			samplers[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.LogBuild(ctx, len(fields), err)
		return nil, err
	}

	log.LogBuild(ctx, len(fields), nil)

	return &Generator{
		names:    names,
		samplers: samplers,
		limiter:  rate.NewLimiter(opts.limit, opts.burst),
		logger:   log,
		metrics:  opts.metrics,
	}, nil
}

// Fields returns the output field names in order.
func (g *Generator) Fields() []string {
	return append([]string(nil), g.names...)
}

// Sampler returns the sampler backing the named field.
func (g *Generator) Sampler(name string) (sampler.Sampler, bool) {
	for i, n := range g.names {
		if n == name {
			return g.samplers[i], true
		}
	}
	return nil, false
}

// Row draws one value from every field sampler, in field order.
func (g *Generator) Row() (record.Record, error) {
	start := time.Now()
	row, err := g.row()
	g.metrics.RecordRow(time.Since(start), err)
	return row, err
}

func (g *Generator) row() (record.Record, error) {
	row := make(record.Record, len(g.samplers))
	for i, s := range g.samplers {
		v, err := s.Sample()
		if err != nil {
			return nil, fieldError(g.names[i], err)
		}
		row[i] = record.Field{Name: g.names[i], Value: v}
	}
	return row, nil
}

// Run emits n rows to fn, waiting on the rate limiter between rows.
// A negative n runs until ctx is done, which is then not reported as an error.
// Run stops at the first error from Row or fn.
func (g *Generator) Run(ctx context.Context, n int, fn func(record.Record) error) (err error) {
	emitted := 0
	defer func() { g.logger.LogRun(ctx, emitted, err) }()

	for n < 0 || emitted < n {
		if err := g.limiter.Wait(ctx); err != nil {
			if n < 0 && ctx.Err() != nil {
				return nil
			}
			return err
		}
		row, err := g.Row()
		if err == nil {
			err = fn(row)
		}
		g.logger.LogRow(ctx, emitted, err)
		if err != nil {
			return err
		}
		emitted++
	}
	return nil
}

// IsConfigurationError reports whether err stems from invalid configuration
// rather than an I/O failure.
func IsConfigurationError(err error) bool {
	return errors.Is(err, sampler.ErrConfiguration)
}
