package seeder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/sampleset/internal/config"
	"github.com/Lumos-Labs-HQ/sampleset/internal/dataset"
	apperrors "github.com/Lumos-Labs-HQ/sampleset/internal/errors"
	"github.com/Lumos-Labs-HQ/sampleset/internal/random"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
	"github.com/Lumos-Labs-HQ/sampleset/internal/seed"
	"github.com/fatih/color"
)

// Writer renders a completed dataset somewhere.
type Writer interface {
	Name() string
	Write(ds *dataset.Dataset) error
}

type Seeder struct {
	config   config.Config
	rand     random.Source
	seeds    *seed.Provider
	clock    func() time.Time
	registry []Registration
	graph    *DependencyGraph
	writers  []Writer
}

type Option func(*Seeder)

// WithRand replaces the random source derived from the configured seed.
func WithRand(src random.Source) Option {
	return func(s *Seeder) { s.rand = src }
}

func WithSeeds(p *seed.Provider) Option {
	return func(s *Seeder) { s.seeds = p }
}

// WithClock fixes the generation time, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Seeder) { s.clock = now }
}

func WithWriters(w ...Writer) Option {
	return func(s *Seeder) { s.writers = append(s.writers, w...) }
}

// withRegistry swaps the generator list; tests use it to break the order.
func withRegistry(r []Registration) Option {
	return func(s *Seeder) { s.registry = r }
}

func NewSeeder(cfg config.Config, opts ...Option) (*Seeder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Seeder{
		config:   cfg,
		clock:    time.Now,
		registry: Registry(),
		graph:    NewDependencyGraph(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.rand == nil {
		s.rand = random.New(cfg.RandomSeed)
	}
	if s.seeds == nil {
		if cfg.SeedDir != "" {
			s.seeds = seed.FromDir(cfg.SeedDir)
		} else {
			s.seeds = seed.Default()
		}
	}

	order := make([]schema.EntityType, 0, len(s.registry))
	for _, r := range s.registry {
		if r.Generate == nil {
			return nil, apperrors.New(apperrors.CodeInvalidConfiguration, "no generator registered for %s", r.Schema.Type)
		}
		s.graph.AddEntity(r.Schema)
		order = append(order, r.Schema.Type)
	}
	if _, err := s.graph.BuildInsertionOrder(); err != nil {
		return nil, err
	}
	if err := s.graph.Validate(order); err != nil {
		return nil, err
	}

	return s, nil
}

// Seed reports the seed of the random source when it has one.
func (s *Seeder) Seed() (int64, bool) {
	if r, ok := s.rand.(*random.Rand); ok {
		return r.Seed(), true
	}
	return 0, false
}

func (s *Seeder) env(now time.Time) Env {
	return Env{Config: s.config, Rand: s.rand, Seeds: s.seeds, Now: now}
}

// GenerateEntity replaces t's sequence in ds. Every dependency of t must
// already be generated in ds.
func (s *Seeder) GenerateEntity(ds *dataset.Dataset, t schema.EntityType) error {
	for _, r := range s.registry {
		if r.Schema.Type == t {
			return s.generate(ds, r, s.clock().UTC())
		}
	}
	return apperrors.New(apperrors.CodeInvalidArgument, "unknown entity type %s", t)
}

func (s *Seeder) generate(ds *dataset.Dataset, r Registration, now time.Time) error {
	if err := r.Generate(s.env(now), ds); err != nil {
		return fmt.Errorf("failed to generate %s: %w", r.Schema.Type, err)
	}
	ds.MarkGenerated(r.Schema.Type)
	color.Green("  ✓ %s (%d records)", r.Schema.Type, ds.Len(r.Schema.Type))
	return nil
}

// Generate builds a fresh dataset in canonical order.
func (s *Seeder) Generate(ctx context.Context) (*dataset.Dataset, error) {
	order := s.graph.GetOrder()
	names := make([]string, len(order))
	for i, t := range order {
		names[i] = string(t)
	}
	color.Cyan("🌱 Generating sample data...")
	color.Cyan("📋 Generation order: %s", strings.Join(names, " → "))

	// One timestamp for the whole run keeps cross-entity date bounds consistent.
	now := s.clock().UTC().Truncate(time.Millisecond)
	ds := dataset.New()
	for _, r := range s.registry {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.generate(ds, r, now); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// Write runs every writer over ds, stopping at the first failure.
func (s *Seeder) Write(ctx context.Context, ds *dataset.Dataset) error {
	if ds == nil {
		return apperrors.New(apperrors.CodeInvalidArgument, "the dataset argument is required to write output")
	}
	if len(s.writers) == 0 {
		color.Yellow("⚠️  No writers enabled")
		return nil
	}

	color.Cyan("📦 Writing to %s", s.config.OutputDir())
	for _, w := range s.writers {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.Write(ds); err != nil {
			if apperrors.CodeOf(err) == apperrors.CodeUnknown {
				err = apperrors.Wrap(apperrors.CodeWriteFailure, w.Name(), err)
			}
			return fmt.Errorf("%s writer failed: %w", w.Name(), err)
		}
		color.Green("  ✓ %s", w.Name())
	}
	return nil
}

// Run generates a dataset and writes it out.
func (s *Seeder) Run(ctx context.Context) (*dataset.Dataset, error) {
	ds, err := s.Generate(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.Write(ctx, ds); err != nil {
		return nil, err
	}
	color.Green("\n✅ Sample data generated successfully!")
	return ds, nil
}
