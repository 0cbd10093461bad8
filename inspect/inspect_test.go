package inspect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/approxgen/approxgen/internal/tagparser"
)

func TestLoadScene(t *testing.T) {
	ins := New()
	pkgs, err := ins.Load(context.Background(), "./testdata/scene")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	pkg := pkgs[0]
	require.Equal(t, "scene", pkg.Name)
	require.Len(t, pkg.Files, 1)
	require.Len(t, pkg.Types, 4)

	byName := map[string]*Type{}
	for _, typ := range pkg.Types {
		byName[typ.Name] = typ
	}

	vec := byName["Vec"]
	require.NotNil(t, vec)
	require.Equal(t, "float64", vec.EpsilonType)
	require.Equal(t, KindFloat, vec.EpsilonKind)
	require.Equal(t, 64, vec.EpsilonBits)
	require.True(t, vec.Relative)
	require.Len(t, vec.Fields, 2)
	require.Equal(t, "v", vec.Receiver)

	sprite := byName["Sprite"]
	require.NotNil(t, sprite)
	require.Equal(t, "float32", sprite.EpsilonType)
	require.Equal(t, 32, sprite.EpsilonBits)
	require.Equal(t, "0.01", sprite.DefaultEpsilon)

	// Frame is skipped, so three fields survive
	require.Len(t, sprite.Fields, 3)
	require.Equal(t, "Scale", sprite.Fields[0].Name)
	require.Equal(t, KindFloat, sprite.Fields[0].Value.Kind)
	require.True(t, sprite.Fields[1].Options.Equal)
	require.True(t, sprite.Fields[2].Options.Iter)
	require.NotNil(t, sprite.Fields[2].Elem)
	require.Equal(t, KindMethod, sprite.Fields[2].Elem.Kind)
	require.Equal(t, "float64", sprite.Fields[2].Elem.EpsilonType)

	score := byName["Score"]
	require.NotNil(t, score)
	require.False(t, score.Relative)
	require.Equal(t, KindUint, score.EpsilonKind)
	require.Equal(t, "5", score.Fields[0].Options.Epsilon)

	// the embedded Vec is a regular method-kind field named after its type
	node := byName["Node"]
	require.NotNil(t, node)
	require.Equal(t, "float64", node.EpsilonType)
	require.Len(t, node.Fields, 2)
	require.Equal(t, "Vec", node.Fields[0].Name)
	require.Equal(t, KindMethod, node.Fields[0].Value.Kind)
	require.Equal(t, "halveRel", node.Fields[1].Options.MaxRelativeMap)
}

func TestLoadCaches(t *testing.T) {
	ins := New()

	first, err := ins.Load(context.Background(), "./testdata/scene")
	require.NoError(t, err)
	second, err := ins.Load(context.Background(), "./testdata/scene")
	require.NoError(t, err)

	require.Len(t, second, 1)
	require.Same(t, first[0], second[0])
}

func TestLoadDiagnostics(t *testing.T) {
	ins := New()
	_, err := ins.Load(context.Background(), "./testdata/bad")
	require.Error(t, err)

	msg := err.Error()
	require.Contains(t, msg, "only applies to struct types")
	require.Contains(t, msg, "field Area: cast_field requires a numeric field")
	require.Contains(t, msg, "field Size: cast_value requires a numeric field")
	require.Contains(t, msg, "field Length: stretch must be func(float64) float64")
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		tag      string
		opts     Options
		problems int
	}{
		{tag: "", opts: Options{}},
		{tag: "-", opts: Options{Skip: true}},
		{tag: "skip", opts: Options{Skip: true}},
		{tag: "equal", opts: Options{Equal: true}},
		{tag: "cast_field", opts: Options{CastField: true}},
		{tag: "cast_value", opts: Options{CastValue: true}},
		{tag: "iter", opts: Options{Iter: true}},
		{tag: "epsilon:1e-3", opts: Options{Epsilon: "1e-3"}},
		{tag: "epsilon:1e-3,max_relative:0.1", opts: Options{Epsilon: "1e-3", MaxRelative: "0.1"}},
		{tag: "iter,epsilon:0.5", opts: Options{Iter: true, Epsilon: "0.5"}},
		{tag: "map:sideLength", opts: Options{Map: "sideLength"}},
		{tag: "epsilon_map:scaleEps,max_relative_map:scaleRel", opts: Options{EpsilonMap: "scaleEps", MaxRelativeMap: "scaleRel"}},
		{tag: "equal,iter", opts: Options{Equal: true, Iter: true}, problems: 1},
		{tag: "cast_field,cast_value", opts: Options{CastField: true, CastValue: true}, problems: 1},
		{tag: "map:f,iter", opts: Options{Map: "f", Iter: true}, problems: 1},
		{tag: "bogus", opts: Options{}, problems: 1},
		{tag: "epsilon:1,epsilon:2", opts: Options{}, problems: 1},
		// skip silences any other option on the field
		{tag: "skip,equal", opts: Options{Skip: true, Equal: true}},
	}
	for _, test := range tests {
		t.Run(test.tag, func(t *testing.T) {
			opts, problems := parseOptions(tagparser.Parse(test.tag))
			require.Equal(t, test.opts, opts)
			require.Len(t, problems, test.problems)
		})
	}
}
