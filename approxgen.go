// Package approxgen generates approximate-equality comparison methods for
// annotated struct types.
//
// A struct opts in with a directive comment:
//
//	//approx:generate
//	type Position struct {
//		X, Y float64
//	}
//
// Running the approxgen command then writes a companion file implementing
//
//	func (p Position) AbsDiffEq(other Position, epsilon float64) bool
//	func (p Position) RelativeEq(other Position, epsilon, maxRelative float64) bool
//
// plus default-tolerance accessors and slice helpers. Fields are tuned with
// `approx:"..."` struct tags; see the package documentation of inspect for
// the full option list. The tolerance arithmetic itself is provided by
// gonum's floats/scalar package, which the generated code calls into.
package approxgen

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/approxgen/approxgen/gen"
	"github.com/approxgen/approxgen/inspect"
	"github.com/approxgen/approxgen/internal"
)

type (
	// Package is the generator's view of one loaded package.
	Package = inspect.Package
	// Diagnostic is a generation-time error anchored to a source position.
	Diagnostic = inspect.Diagnostic
	// Diagnostics is the accumulated form of Diagnostic.
	Diagnostics = inspect.Diagnostics
)

// Version returns the approxgen version.
func Version() string {
	return internal.Version
}

// Config controls one Generate or Check run.
type Config struct {
	// Patterns are package patterns in the go/packages sense,
	// defaulting to "./...".
	Patterns []string
	// Dir is the working directory for loading, defaulting to the
	// current one.
	Dir string
	// Suffix is the generated filename suffix, defaulting to "_approx.go".
	Suffix string
	// Tags are extra build tags passed to the loader.
	Tags []string
	// NoCache disables the incremental-generation manifest.
	NoCache bool

	Logger zerolog.Logger
}

func (cfg *Config) suffix() string {
	if cfg.Suffix == "" {
		return inspect.DefaultGenSuffix
	}
	return cfg.Suffix
}

func (cfg *Config) inspector() *inspect.Inspector {
	opts := []inspect.Option{
		inspect.WithLogger(cfg.Logger),
		inspect.WithDir(cfg.Dir),
		inspect.WithGenSuffix(cfg.suffix()),
	}
	if len(cfg.Tags) > 0 {
		opts = append(opts, inspect.WithBuildFlags("-tags="+strings.Join(cfg.Tags, ",")))
	}
	return inspect.New(opts...)
}

// Report summarizes a run.
type Report struct {
	// Generated lists the files written by Generate.
	Generated []string
	// Skipped lists packages left alone because their inputs are unchanged.
	Skipped []string
	// Stale lists the out-of-date or missing files found by Check.
	Stale []string
}

// Generate loads the configured packages and (re)writes the generated file
// for every package whose inputs changed since the last run.
func Generate(ctx context.Context, cfg Config) (*Report, error) {
	pkgs, err := cfg.inspector().Load(ctx, cfg.Patterns...)
	if err != nil {
		return nil, err
	}

	gtor := gen.New(gen.WithLogger(cfg.Logger), gen.WithSuffix(cfg.suffix()))
	manifest := gen.LoadManifest(filepath.Join(cfg.Dir, gen.ManifestName))

	var (
		mu     sync.Mutex
		report Report
	)
	group, ctx := errgroup.WithContext(ctx)
	for _, pkg := range pkgs {
		pkg := pkg
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			digest, err := gen.InputDigest(cfg.suffix(), pkg.Files)
			if err != nil {
				return fmt.Errorf("%s: digest inputs: %w", pkg.Path, err)
			}
			if !cfg.NoCache && manifest.UpToDate(pkg.Path, digest) {
				cfg.Logger.Debug().Str("package", pkg.Path).Msg("up to date")
				mu.Lock()
				report.Skipped = append(report.Skipped, pkg.Path)
				mu.Unlock()
				return nil
			}

			path, err := gtor.Generate(pkg, digest)
			if err != nil {
				return err
			}
			manifest.Record(pkg.Path, digest, path)
			mu.Lock()
			report.Generated = append(report.Generated, path)
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	if !cfg.NoCache {
		if err := manifest.Save(); err != nil {
			cfg.Logger.Warn().Err(err).Msg("cannot save generation manifest")
		}
	}

	sort.Strings(report.Generated)
	sort.Strings(report.Skipped)
	return &report, nil
}

// Check verifies that every generated file exists and matches the current
// inputs, without writing anything. Stale files are listed in the report.
func Check(ctx context.Context, cfg Config) (*Report, error) {
	pkgs, err := cfg.inspector().Load(ctx, cfg.Patterns...)
	if err != nil {
		return nil, err
	}

	gtor := gen.New(gen.WithLogger(cfg.Logger), gen.WithSuffix(cfg.suffix()))

	var report Report
	for _, pkg := range pkgs {
		stale, _, err := gtor.Stale(pkg)
		if err != nil {
			return nil, err
		}
		if stale {
			report.Stale = append(report.Stale, gtor.OutputPath(pkg))
		}
	}
	sort.Strings(report.Stale)
	return &report, nil
}
