// Package inspect loads Go packages and harvests struct types annotated
// with the //approx:generate directive into a metadata model that the
// generator consumes. Parsing and generation are deliberately split so
// that rendering never touches go/ast or go/types.
//
// The directive accepts space-separated key=value options:
//
//	epsilon_type=float32     epsilon type, inferred from the first
//	                         comparable field when unset
//	default_epsilon=0.01     literal returned by DefaultEpsilon
//	default_max_relative=0.1 literal returned by DefaultMaxRelative
//	rel=false                skip the RelativeEq method set
//
// Individual fields are tuned with an `approx:"..."` struct tag:
//
//	-, skip            leave the field out of the comparison
//	equal              compare with == instead of a tolerance
//	cast_field         convert both operands to the epsilon type
//	cast_value         convert the tolerances to the field type
//	iter               compare slice or array elements pairwise
//	epsilon:0.5        static absolute tolerance for this field
//	max_relative:0.5   static relative tolerance for this field
//	map:fn             compare fn(field) instead of the field, where
//	                   fn is a package-level func(T) (U, bool)
//	epsilon_map:fn     pass the epsilon through fn before comparing
//	max_relative_map:fn same, for the relative tolerance
package inspect

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"path/filepath"
	"sort"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rs/zerolog"
	"golang.org/x/tools/go/packages"

	"github.com/approxgen/approxgen/internal/directive"
)

// DefaultGenSuffix is the filename suffix of generated output. Files ending
// in it are excluded from inspection and from the input digest.
const DefaultGenSuffix = "_approx.go"

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedImports |
	packages.NeedTypes |
	packages.NeedSyntax |
	packages.NeedTypesInfo

// Inspector loads and caches package metadata. It is safe for concurrent
// use; the metadata cache is shared across Load calls.
type Inspector struct {
	log        zerolog.Logger
	dir        string
	buildFlags []string
	genSuffix  string

	cache *xsync.MapOf[string, *Package]
}

type Option func(*Inspector)

func WithLogger(log zerolog.Logger) Option {
	return func(ins *Inspector) { ins.log = log }
}

// WithDir sets the working directory for package loading.
func WithDir(dir string) Option {
	return func(ins *Inspector) { ins.dir = dir }
}

func WithBuildFlags(flags ...string) Option {
	return func(ins *Inspector) { ins.buildFlags = flags }
}

func WithGenSuffix(suffix string) Option {
	return func(ins *Inspector) { ins.genSuffix = suffix }
}

func New(opts ...Option) *Inspector {
	ins := &Inspector{
		log:       zerolog.Nop(),
		genSuffix: DefaultGenSuffix,
		cache:     xsync.NewMapOf[string, *Package](),
	}
	for _, opt := range opts {
		opt(ins)
	}
	return ins
}

// Load loads the packages matching patterns and returns metadata for those
// containing at least one annotated type. Annotation problems come back as
// Diagnostics; loader failures as plain errors.
func (ins *Inspector) Load(ctx context.Context, patterns ...string) ([]*Package, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	cfg := &packages.Config{
		Context:    ctx,
		Mode:       loadMode,
		Dir:        ins.dir,
		BuildFlags: ins.buildFlags,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load %v: %w", patterns, err)
	}

	var out []*Package
	var diags Diagnostics
	for _, pkg := range pkgs {
		if cached, ok := ins.cache.Load(pkg.PkgPath); ok {
			if cached != nil {
				out = append(out, cached)
			}
			continue
		}

		p, ds := ins.inspect(pkg)
		diags = append(diags, ds...)
		if len(ds) == 0 {
			ins.cache.Store(pkg.PkgPath, p)
		}
		if p != nil {
			out = append(out, p)
		}
	}

	if err := diags.AsError(); err != nil {
		return out, err
	}
	return out, nil
}

type annotated struct {
	name string
	dir  *directive.Directive
	pos  token.Position
}

func (ins *Inspector) inspect(pkg *packages.Package) (*Package, Diagnostics) {
	var diags Diagnostics

	// Before the first generation the package may fail to type-check
	// because user code already calls the methods being generated.
	// That is fine as long as the type information survived.
	for _, err := range pkg.Errors {
		ins.log.Debug().Str("package", pkg.PkgPath).Msg(err.Error())
	}
	if pkg.Types == nil || pkg.TypesInfo == nil {
		diags.addf(token.Position{}, "package %s: no type information", pkg.PkgPath)
		return nil, diags
	}

	var anns []annotated
	for _, file := range pkg.Syntax {
		filename := pkg.Fset.Position(file.Pos()).Filename
		if strings.HasSuffix(filename, ins.genSuffix) {
			continue
		}
		anns = append(anns, ins.annotatedTypes(pkg.Fset, file, &diags)...)
	}
	if len(anns) == 0 {
		return nil, diags
	}

	b := newBuilder(pkg, anns, &diags)
	types := make([]*Type, 0, len(anns))
	for _, ann := range anns {
		if typ := b.buildType(ann); typ != nil {
			types = append(types, typ)
		}
	}
	if len(types) == 0 {
		return nil, diags
	}

	p := &Package{
		Path:    pkg.PkgPath,
		Name:    pkg.Name,
		Files:   ins.sourceFiles(pkg),
		Imports: b.imports,
		Types:   types,
	}
	if len(p.Files) > 0 {
		p.Dir = filepath.Dir(p.Files[0])
	}

	ins.log.Debug().
		Str("package", pkg.PkgPath).
		Int("types", len(types)).
		Msg("inspected package")
	return p, diags
}

// annotatedTypes scans one file for type declarations carrying an
// //approx:generate directive.
func (ins *Inspector) annotatedTypes(fset *token.FileSet, file *ast.File, diags *Diagnostics) []annotated {
	var anns []annotated
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			doc := typeSpec.Doc
			if doc == nil && len(genDecl.Specs) == 1 {
				doc = genDecl.Doc
			}
			dir := ins.findDirective(fset, doc, diags)
			if dir == nil {
				continue
			}
			pos := fset.Position(typeSpec.Pos())
			if _, ok := typeSpec.Type.(*ast.StructType); !ok {
				diags.addf(pos, "approx:generate only applies to struct types")
				continue
			}
			anns = append(anns, annotated{name: typeSpec.Name.Name, dir: dir, pos: pos})
		}
	}
	return anns
}

func (ins *Inspector) findDirective(fset *token.FileSet, doc *ast.CommentGroup, diags *Diagnostics) *directive.Directive {
	if doc == nil {
		return nil
	}
	for _, comment := range doc.List {
		dir, err := directive.Parse(comment.Text)
		if err != nil {
			diags.addf(fset.Position(comment.Pos()), "%s", err)
			continue
		}
		if dir != nil {
			return dir
		}
	}
	return nil
}

func (ins *Inspector) sourceFiles(pkg *packages.Package) []string {
	list := pkg.CompiledGoFiles
	if len(list) == 0 {
		// packages with load errors may come back without the
		// compiled file list
		list = pkg.GoFiles
	}
	files := make([]string, 0, len(list))
	for _, f := range list {
		if strings.HasSuffix(f, ins.genSuffix) {
			continue
		}
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}
