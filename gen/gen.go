// Package gen renders the comparison methods for inspected packages and
// writes them next to their sources. The tolerance arithmetic itself lives
// in gonum's floats/scalar package; generated code only calls into it.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/approxgen/approxgen/inspect"
)

type Generator struct {
	log    zerolog.Logger
	suffix string
}

type Option func(*Generator)

func WithLogger(log zerolog.Logger) Option {
	return func(g *Generator) { g.log = log }
}

// WithSuffix sets the generated filename suffix, by default "_approx.go".
func WithSuffix(suffix string) Option {
	return func(g *Generator) { g.suffix = suffix }
}

func New(opts ...Option) *Generator {
	g := &Generator{
		log:    zerolog.Nop(),
		suffix: inspect.DefaultGenSuffix,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// OutputPath returns where the generated file for pkg lives.
func (g *Generator) OutputPath(pkg *inspect.Package) string {
	return filepath.Join(pkg.Dir, pkg.Name+g.suffix)
}

// File renders the generated file for pkg, embedding the given input
// digest in the header.
func (g *Generator) File(pkg *inspect.Package, digest string) ([]byte, error) {
	r := &renderer{pkg: pkg}
	data := &fileData{
		Digest:  digest,
		Package: pkg.Name,
	}
	for _, typ := range pkg.Types {
		data.Types = append(data.Types, r.renderType(typ))
	}
	data.Imports = r.neededImports()
	sort.Strings(data.Imports)

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%s: render: %w", pkg.Path, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		// A formatting failure means the renderer produced bad syntax;
		// surface the raw output to make that debuggable.
		return nil, fmt.Errorf("%s: format generated code: %w\n%s", pkg.Path, err, buf.Bytes())
	}
	return src, nil
}

// Generate renders and writes the file for pkg, returning its path.
func (g *Generator) Generate(pkg *inspect.Package, digest string) (string, error) {
	src, err := g.File(pkg, digest)
	if err != nil {
		return "", err
	}
	path := g.OutputPath(pkg)
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return "", fmt.Errorf("%s: write: %w", pkg.Path, err)
	}
	g.log.Info().
		Str("package", pkg.Path).
		Str("file", path).
		Str("digest", shortDigest(digest)).
		Int("types", len(pkg.Types)).
		Msg("generated")
	return path, nil
}

// Stale reports whether the generated file for pkg is missing or was
// produced from different inputs. The digest of the current inputs is
// returned for reuse.
func (g *Generator) Stale(pkg *inspect.Package) (bool, string, error) {
	digest, err := InputDigest(g.suffix, pkg.Files)
	if err != nil {
		return false, "", fmt.Errorf("%s: digest inputs: %w", pkg.Path, err)
	}
	have, err := FileDigest(g.OutputPath(pkg))
	if err != nil {
		if os.IsNotExist(err) || errors.Is(err, ErrNoDigest) {
			return true, digest, nil
		}
		return false, digest, err
	}
	return have != digest, digest, nil
}

func shortDigest(digest string) string {
	if len(digest) > 12 {
		return digest[:12]
	}
	return digest
}
