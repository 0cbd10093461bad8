package gen

import (
	"fmt"
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/approxgen/approxgen/inspect"
)

const scalarImport = "gonum.org/v1/gonum/floats/scalar"

// renderer turns inspected type metadata into the statement lists the file
// template stitches together. Output is formatted with go/format afterwards,
// so statements are built without caring about indentation.
type renderer struct {
	pkg        *inspect.Package
	usesScalar bool
	// typeExprs collects every type expression that ends up in the
	// generated source, to decide which foreign imports are needed.
	typeExprs []string
}

type typeData struct {
	Name        string
	Receiver    string
	EpsilonType string

	DefaultEpsilon     string
	DefaultMaxRelative string

	Relative bool
	Plural   string

	AbsStmts []string
	RelStmts []string
}

func (r *renderer) renderType(t *inspect.Type) *typeData {
	td := &typeData{
		Name:               t.Name,
		Receiver:           t.Receiver,
		EpsilonType:        t.EpsilonType,
		DefaultEpsilon:     defaultTolerance(t, t.DefaultEpsilon),
		DefaultMaxRelative: defaultTolerance(t, t.DefaultMaxRelative),
		Relative:           t.Relative,
		Plural:             pluralName(t.Name),
	}
	r.typeExprs = append(r.typeExprs, t.EpsilonType)

	for i := range t.Fields {
		f := &t.Fields[i]
		td.AbsStmts = append(td.AbsStmts, r.fieldStmt(t, f, false))
		if t.Relative {
			td.RelStmts = append(td.RelStmts, r.fieldStmt(t, f, true))
		}
	}
	return td
}

// pluralName returns the package-level helper prefix for a type,
// e.g. "Position" becomes "Positions".
func pluralName(name string) string {
	plural := inflection.Plural(name)
	if plural == name {
		plural = name + "Slice"
	}
	return plural
}

// defaultTolerance resolves the literal returned by DefaultEpsilon and
// DefaultMaxRelative: a directive override, machine epsilon for floats,
// zero for integer kinds.
func defaultTolerance(t *inspect.Type, override string) string {
	if override != "" {
		return override
	}
	if t.EpsilonKind == inspect.KindFloat {
		if t.EpsilonBits == 32 {
			return "1.1920929e-07"
		}
		return "2.220446049250313e-16"
	}
	return "0"
}

func (r *renderer) fieldStmt(t *inspect.Type, f *inspect.Field, rel bool) string {
	a := t.Receiver + "." + f.Name
	b := "other." + f.Name

	var inner string
	switch {
	case f.Options.Equal:
		da, db := a, b
		if f.Pointer {
			da, db = "*"+a, "*"+b
		}
		inner = fmt.Sprintf("if %s != %s {\nreturn false\n}", da, db)

	case f.Options.Map != "":
		da, db := a, b
		if f.Pointer {
			da, db = "(*"+a+")", "(*"+b+")"
		}
		cond := r.failCond(t, f, *f.MapOut, rel, "av", "bv")
		inner = fmt.Sprintf("{\nav, aok := %[1]s(%[2]s)\nbv, bok := %[1]s(%[3]s)\nif !aok || !bok {\nreturn false\n}\nif %[4]s {\nreturn false\n}\n}",
			f.Options.Map, da, db, cond)

	case f.Options.Iter:
		var sb strings.Builder
		if !f.Array {
			fmt.Fprintf(&sb, "if len(%s) != len(%s) {\nreturn false\n}\n", a, b)
		}
		cond := r.failCond(t, f, *f.Elem, rel, a+"[i]", b+"[i]")
		fmt.Fprintf(&sb, "for i := range %s {\nif %s {\nreturn false\n}\n}", a, cond)
		inner = sb.String()

	default:
		da, db := a, b
		if f.Pointer {
			da, db = "(*"+a+")", "(*"+b+")"
		}
		cond := r.failCond(t, f, f.Value, rel, da, db)
		inner = fmt.Sprintf("if %s {\nreturn false\n}", cond)
	}

	if f.Pointer {
		return fmt.Sprintf("if (%[1]s == nil) != (%[2]s == nil) {\nreturn false\n}\nif %[1]s != nil {\n%[3]s\n}",
			a, b, inner)
	}
	return inner
}

// failCond builds the boolean expression that is true when the two operand
// expressions do NOT match.
func (r *renderer) failCond(t *inspect.Type, f *inspect.Field, v inspect.Value, rel bool, aExpr, bExpr string) string {
	eps, maxRel := r.tolerances(t, f, v, rel)

	if v.Kind == inspect.KindMethod {
		if rel {
			return fmt.Sprintf("!%s.RelativeEq(%s, %s, %s)", aExpr, bExpr, eps, maxRel)
		}
		return fmt.Sprintf("!%s.AbsDiffEq(%s, %s)", aExpr, bExpr, eps)
	}

	r.usesScalar = true
	if f.Options.CastField {
		r.typeExprs = append(r.typeExprs, t.EpsilonType)
		aExpr = fmt.Sprintf("%s(%s)", t.EpsilonType, aExpr)
		bExpr = fmt.Sprintf("%s(%s)", t.EpsilonType, bExpr)
		aExpr, bExpr = conv64(aExpr, t.EpsilonType), conv64(bExpr, t.EpsilonType)
	} else {
		aExpr, bExpr = conv64(aExpr, v.GoType), conv64(bExpr, v.GoType)
	}

	if rel {
		return fmt.Sprintf("!scalar.EqualWithinAbsOrRel(%s, %s, %s, %s)", aExpr, bExpr, eps, maxRel)
	}
	return fmt.Sprintf("!scalar.EqualWithinAbs(%s, %s, %s)", aExpr, bExpr, eps)
}

// tolerances builds the epsilon and max_relative expressions for one field,
// applying static literals, cast_value and the tolerance map functions.
// For numeric kinds the result is a float64 expression; for method kinds it
// is converted to the nested epsilon type.
func (r *renderer) tolerances(t *inspect.Type, f *inspect.Field, v inspect.Value, rel bool) (string, string) {
	eps := r.tolerance(t, f, v, "epsilon", f.Options.Epsilon, f.Options.EpsilonMap)
	if !rel {
		return eps, ""
	}
	maxRel := r.tolerance(t, f, v, "maxRelative", f.Options.MaxRelative, f.Options.MaxRelativeMap)
	return eps, maxRel
}

func (r *renderer) tolerance(t *inspect.Type, f *inspect.Field, v inspect.Value, param, static, mapFn string) string {
	expr := param
	exprType := t.EpsilonType
	literal := false
	if static != "" {
		expr = static
		literal = true
	}
	if f.Options.CastValue {
		r.typeExprs = append(r.typeExprs, f.Value.GoType)
		expr = fmt.Sprintf("%s(%s)", f.Value.GoType, expr)
		exprType = f.Value.GoType
		literal = false
	}
	if mapFn != "" {
		expr = fmt.Sprintf("%s(%s)", mapFn, expr)
		literal = false
	}
	if literal {
		// untyped constants adapt to the parameter type on their own
		return expr
	}

	if v.Kind == inspect.KindMethod {
		if v.EpsilonType != exprType {
			r.typeExprs = append(r.typeExprs, v.EpsilonType)
			expr = fmt.Sprintf("%s(%s)", v.EpsilonType, expr)
		}
		return expr
	}
	return conv64(expr, exprType)
}

func conv64(expr, goType string) string {
	if goType == "float64" {
		return expr
	}
	return fmt.Sprintf("float64(%s)", expr)
}

// neededImports filters the package's recorded foreign imports down to the
// ones referenced by an emitted type expression.
func (r *renderer) neededImports() []string {
	var paths []string
	if r.usesScalar {
		paths = append(paths, scalarImport)
	}
	for path, name := range r.pkg.Imports {
		for _, expr := range r.typeExprs {
			if referencesPackage(expr, name) {
				paths = append(paths, path)
				break
			}
		}
	}
	return paths
}

// referencesPackage reports whether a type expression contains a selector
// on the given package name, e.g. "time.Duration" references "time".
func referencesPackage(expr, name string) bool {
	for i := 0; i+len(name) < len(expr); i++ {
		if !strings.HasPrefix(expr[i:], name) || expr[i+len(name)] != '.' {
			continue
		}
		if i > 0 && isIdentByte(expr[i-1]) {
			continue
		}
		return true
	}
	return false
}

func isIdentByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' ||
		c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
