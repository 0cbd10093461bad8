package inspect

import (
	"fmt"
	"go/token"
	"go/types"
	"reflect"

	"golang.org/x/tools/go/packages"

	"github.com/approxgen/approxgen/internal"
	"github.com/approxgen/approxgen/internal/tagparser"
)

type epsInfo struct {
	typ  string
	kind Kind
	bits int
}

var float64Epsilon = epsInfo{typ: "float64", kind: KindFloat, bits: 64}

var basicEpsilons = map[string]epsInfo{
	"float32": {"float32", KindFloat, 32},
	"float64": {"float64", KindFloat, 64},
	"int":     {"int", KindInt, 64},
	"int8":    {"int8", KindInt, 32},
	"int16":   {"int16", KindInt, 32},
	"int32":   {"int32", KindInt, 32},
	"int64":   {"int64", KindInt, 64},
	"uint":    {"uint", KindUint, 64},
	"uint8":   {"uint8", KindUint, 32},
	"uint16":  {"uint16", KindUint, 32},
	"uint32":  {"uint32", KindUint, 32},
	"uint64":  {"uint64", KindUint, 64},
}

type builder struct {
	pkg     *packages.Package
	diags   *Diagnostics
	anns    map[string]annotated
	imports map[string]string

	epsilons map[string]epsInfo
	visiting map[string]bool
}

func newBuilder(pkg *packages.Package, anns []annotated, diags *Diagnostics) *builder {
	byName := make(map[string]annotated, len(anns))
	for _, ann := range anns {
		byName[ann.name] = ann
	}
	return &builder{
		pkg:      pkg,
		diags:    diags,
		anns:     byName,
		imports:  make(map[string]string),
		epsilons: make(map[string]epsInfo),
		visiting: make(map[string]bool),
	}
}

func (b *builder) buildType(ann annotated) *Type {
	st := b.structOf(ann.name)
	if st == nil {
		b.diags.addf(ann.pos, "cannot resolve struct type %s", ann.name)
		return nil
	}
	if st.NumFields() == 0 {
		b.diags.addf(ann.pos, "cannot generate comparisons for empty struct %s", ann.name)
		return nil
	}

	info := b.epsilonFor(ann)
	typ := &Type{
		Name:               ann.name,
		Receiver:           internal.ReceiverName(ann.name),
		EpsilonType:        info.typ,
		EpsilonKind:        info.kind,
		EpsilonBits:        info.bits,
		DefaultEpsilon:     ann.dir.DefaultEpsilon,
		DefaultMaxRelative: ann.dir.DefaultMaxRelative,
		Relative:           ann.dir.Relative,
		Pos:                ann.pos,
	}

	for i := 0; i < st.NumFields(); i++ {
		fld := st.Field(i)
		if fld.Name() == "_" {
			continue
		}
		tag := reflect.StructTag(st.Tag(i)).Get("approx")
		pos := b.pkg.Fset.Position(fld.Pos())
		if f := b.buildField(fld, tag, typ.EpsilonType, pos); f != nil {
			typ.Fields = append(typ.Fields, *f)
		}
	}
	return typ
}

func (b *builder) buildField(fld *types.Var, tag, epsType string, pos token.Position) *Field {
	opts, problems := parseOptions(tagparser.Parse(tag))
	for _, p := range problems {
		b.diags.addf(pos, "field %s: %s", fld.Name(), p)
	}
	if opts.Skip {
		return nil
	}

	t := fld.Type()
	f := &Field{Name: fld.Name(), Options: opts, Pos: pos}
	if ptr, ok := types.Unalias(t).(*types.Pointer); ok {
		f.Pointer = true
		t = ptr.Elem()
	}
	f.Value = b.value(t)

	switch {
	case opts.Equal:
		if !types.Comparable(t) {
			b.diags.addf(pos, "field %s: type %s does not support ==", fld.Name(), f.Value.GoType)
			return nil
		}

	case opts.Map != "":
		out, ok := b.mapResultType(opts.Map)
		if !ok {
			b.diags.addf(pos, "field %s: map function %s not found or has wrong signature, want func(T) (U, bool)",
				fld.Name(), opts.Map)
			return nil
		}
		mo := b.value(out)
		if !comparableValue(mo) {
			b.diags.addf(pos, "field %s: map function %s returns unsupported type %s",
				fld.Name(), opts.Map, mo.GoType)
			return nil
		}
		f.MapOut = &mo

	case opts.Iter:
		if f.Pointer {
			b.diags.addf(pos, "field %s: iter cannot be applied to a pointer field", fld.Name())
			return nil
		}
		elem, isArray, ok := elemType(t)
		if !ok {
			b.diags.addf(pos, "field %s: iter requires a slice or array field", fld.Name())
			return nil
		}
		ev := b.value(elem)
		if !comparableValue(ev) {
			b.diags.addf(pos, "field %s: unsupported element type %s", fld.Name(), ev.GoType)
			return nil
		}
		f.Elem = &ev
		f.Array = isArray

	default:
		if !comparableValue(f.Value) {
			b.diags.addf(pos, "field %s: unsupported type %s; use equal, skip or map", fld.Name(), f.Value.GoType)
			return nil
		}
	}

	// The casts convert between the field type and the epsilon type, so
	// both only make sense on fields compared through the scalar calls.
	compared := f.Value
	switch {
	case f.MapOut != nil:
		compared = *f.MapOut
	case f.Elem != nil:
		compared = *f.Elem
	}
	if opts.CastField && !compared.Kind.Numeric() {
		b.diags.addf(pos, "field %s: cast_field requires a numeric field", fld.Name())
		return nil
	}
	if opts.CastValue && !f.Value.Kind.Numeric() {
		b.diags.addf(pos, "field %s: cast_value requires a numeric field", fld.Name())
		return nil
	}

	tolType := epsType
	if opts.CastValue {
		tolType = f.Value.GoType
	}
	for _, mapName := range []string{opts.EpsilonMap, opts.MaxRelativeMap} {
		if mapName != "" && !b.isToleranceMap(mapName, tolType) {
			b.diags.addf(pos, "field %s: %s must be func(%s) %s",
				fld.Name(), mapName, tolType, tolType)
			return nil
		}
	}
	return f
}

func comparableValue(v Value) bool {
	return v.Kind.Numeric() || v.Kind == KindMethod
}

// value classifies t relative to the inspected package.
func (b *builder) value(t types.Type) Value {
	t = types.Unalias(t)

	if named, ok := t.(*types.Named); ok {
		obj := named.Obj()
		if obj.Pkg() != nil && obj.Pkg() == b.pkg.Types {
			if ann, ok := b.anns[obj.Name()]; ok {
				info := b.epsilonFor(ann)
				return Value{GoType: b.typeString(t), Kind: KindMethod, EpsilonType: info.typ}
			}
		}
		if eps, ok := b.methodEpsilon(t); ok {
			return Value{GoType: b.typeString(t), Kind: KindMethod, EpsilonType: b.typeString(eps)}
		}
	}

	if basic, ok := t.Underlying().(*types.Basic); ok {
		bits := 64
		if basic.Kind() == types.Float32 {
			bits = 32
		}
		switch info := basic.Info(); {
		case info&types.IsFloat != 0:
			return Value{GoType: b.typeString(t), Kind: KindFloat, Bits: bits}
		case info&types.IsUnsigned != 0:
			return Value{GoType: b.typeString(t), Kind: KindUint, Bits: bits}
		case info&types.IsInteger != 0:
			return Value{GoType: b.typeString(t), Kind: KindInt, Bits: bits}
		}
	}

	return Value{GoType: b.typeString(t), Kind: KindInvalid}
}

// epsilonFor resolves the epsilon type of an annotated struct, memoized.
// Recursive nesting through pointers falls back to float64.
func (b *builder) epsilonFor(ann annotated) epsInfo {
	if info, ok := b.epsilons[ann.name]; ok {
		return info
	}
	if b.visiting[ann.name] {
		return float64Epsilon
	}
	b.visiting[ann.name] = true
	defer delete(b.visiting, ann.name)

	info := b.inferEpsilon(ann)
	b.epsilons[ann.name] = info
	return info
}

func (b *builder) inferEpsilon(ann annotated) epsInfo {
	if ann.dir.EpsilonType != "" {
		return b.namedEpsilon(ann)
	}

	st := b.structOf(ann.name)
	if st == nil {
		return float64Epsilon
	}
	for i := 0; i < st.NumFields(); i++ {
		fld := st.Field(i)
		if fld.Name() == "_" {
			continue
		}
		opts, _ := parseOptions(tagparser.Parse(reflect.StructTag(st.Tag(i)).Get("approx")))
		if opts.Skip || opts.CastField || opts.CastValue {
			continue
		}

		t := deref(fld.Type())
		switch {
		case opts.Map != "":
			out, ok := b.mapResultType(opts.Map)
			if !ok {
				continue // reported by buildField
			}
			t = out
		case opts.Iter:
			elem, _, ok := elemType(t)
			if !ok {
				continue
			}
			t = elem
		}

		if info, ok := b.epsInfoOf(t); ok {
			return info
		}
		b.diags.addf(ann.pos,
			"cannot infer epsilon type from field %s; set epsilon_type in the //approx:generate directive",
			fld.Name())
		return float64Epsilon
	}
	return float64Epsilon
}

// namedEpsilon resolves an explicit epsilon_type directive value: a basic
// type name, a type in the inspected package, or a dotted pkg.Type from one
// of its imports.
func (b *builder) namedEpsilon(ann annotated) epsInfo {
	name := ann.dir.EpsilonType
	if info, ok := basicEpsilons[name]; ok {
		return info
	}

	var obj types.Object
	if pkgName, typName, ok := splitQualified(name); ok {
		for _, imp := range b.pkg.Types.Imports() {
			if imp.Name() == pkgName {
				obj = imp.Scope().Lookup(typName)
				break
			}
		}
	} else {
		obj = b.pkg.Types.Scope().Lookup(name)
	}

	if obj != nil {
		if info, ok := b.epsInfoOf(obj.Type()); ok {
			return info
		}
	}
	b.diags.addf(ann.pos, "epsilon_type %s is not a numeric type", name)
	return float64Epsilon
}

func (b *builder) epsInfoOf(t types.Type) (epsInfo, bool) {
	t = types.Unalias(t)

	if named, ok := t.(*types.Named); ok {
		obj := named.Obj()
		if obj.Pkg() != nil && obj.Pkg() == b.pkg.Types {
			if ann, ok := b.anns[obj.Name()]; ok {
				return b.epsilonFor(ann), true
			}
		}
		if eps, ok := b.methodEpsilon(t); ok {
			return b.epsInfoOf(eps)
		}
	}

	if basic, ok := t.Underlying().(*types.Basic); ok && basic.Info()&types.IsNumeric != 0 &&
		basic.Info()&types.IsComplex == 0 {
		v := b.value(t)
		return epsInfo{typ: v.GoType, kind: v.Kind, bits: v.Bits}, true
	}
	return epsInfo{}, false
}

// methodEpsilon returns the epsilon type of t's AbsDiffEq method when t
// carries a method pair with the generated shape.
func (b *builder) methodEpsilon(t types.Type) (types.Type, bool) {
	obj, _, _ := types.LookupFieldOrMethod(t, true, b.pkg.Types, "AbsDiffEq")
	fn, ok := obj.(*types.Func)
	if !ok {
		return nil, false
	}
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 2 || sig.Results().Len() != 1 {
		return nil, false
	}
	if basic, ok := sig.Results().At(0).Type().(*types.Basic); !ok || basic.Kind() != types.Bool {
		return nil, false
	}
	return sig.Params().At(1).Type(), true
}

// mapResultType resolves a map function name to its first result type.
// The required shape is func(T) (U, bool).
func (b *builder) mapResultType(name string) (types.Type, bool) {
	fn, ok := b.pkg.Types.Scope().Lookup(name).(*types.Func)
	if !ok {
		return nil, false
	}
	sig := fn.Type().(*types.Signature)
	if sig.Params().Len() != 1 || sig.Results().Len() != 2 {
		return nil, false
	}
	if basic, ok := sig.Results().At(1).Type().(*types.Basic); !ok || basic.Kind() != types.Bool {
		return nil, false
	}
	return sig.Results().At(0).Type(), true
}

// isToleranceMap reports whether name is a package-level func(E) E for the
// tolerance type the mapped expression has at the call site.
func (b *builder) isToleranceMap(name, tolType string) bool {
	fn, ok := b.pkg.Types.Scope().Lookup(name).(*types.Func)
	if !ok {
		return false
	}
	sig := fn.Type().(*types.Signature)
	if sig.Params().Len() != 1 || sig.Results().Len() != 1 {
		return false
	}
	return b.typeString(sig.Params().At(0).Type()) == tolType &&
		b.typeString(sig.Results().At(0).Type()) == tolType
}

func (b *builder) structOf(name string) *types.Struct {
	obj := b.pkg.Types.Scope().Lookup(name)
	if obj == nil {
		return nil
	}
	st, _ := obj.Type().Underlying().(*types.Struct)
	return st
}

func (b *builder) typeString(t types.Type) string {
	return types.TypeString(t, func(p *types.Package) string {
		if p == b.pkg.Types {
			return ""
		}
		b.imports[p.Path()] = p.Name()
		return p.Name()
	})
}

func deref(t types.Type) types.Type {
	if ptr, ok := types.Unalias(t).(*types.Pointer); ok {
		return ptr.Elem()
	}
	return t
}

func elemType(t types.Type) (elem types.Type, isArray, ok bool) {
	switch u := t.Underlying().(type) {
	case *types.Slice:
		return u.Elem(), false, true
	case *types.Array:
		return u.Elem(), true, true
	}
	return nil, false, false
}

func splitQualified(name string) (pkgName, typName string, ok bool) {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[:i], name[i+1:], true
		}
	}
	return "", "", false
}

// parseOptions maps a parsed approx tag onto Options, reporting unknown
// names and conflicting combinations.
func parseOptions(tag tagparser.Tag) (Options, []string) {
	var opts Options
	var problems []string

	setFlag := func(name string) bool {
		switch name {
		case "", " ":
			return true
		case "-", "skip":
			opts.Skip = true
		case "equal":
			opts.Equal = true
		case "cast_field":
			opts.CastField = true
		case "cast_value":
			opts.CastValue = true
		case "iter":
			opts.Iter = true
		default:
			return false
		}
		return true
	}

	if !setFlag(tag.Name) {
		problems = append(problems, fmt.Sprintf("unknown approx tag option %q", tag.Name))
	}
	for name, values := range tag.Options {
		if len(values) > 1 {
			problems = append(problems, fmt.Sprintf("duplicate approx tag option %q", name))
			continue
		}
		value := values[0]
		switch name {
		case "epsilon":
			opts.Epsilon = value
		case "max_relative":
			opts.MaxRelative = value
		case "map":
			opts.Map = value
		case "epsilon_map":
			opts.EpsilonMap = value
		case "max_relative_map":
			opts.MaxRelativeMap = value
		default:
			if value != "" || !setFlag(name) {
				problems = append(problems, fmt.Sprintf("unknown approx tag option %q", name))
			}
		}
	}

	switch {
	case opts.Skip:
		// skip wins over everything else
	case opts.Equal && (opts.CastField || opts.CastValue || opts.Iter || opts.Map != ""):
		problems = append(problems, "equal conflicts with cast, iter and map options")
	case opts.CastField && opts.CastValue:
		problems = append(problems, "cast_field conflicts with cast_value")
	case opts.Map != "" && opts.Iter:
		problems = append(problems, "map conflicts with iter")
	}
	return opts, problems
}
