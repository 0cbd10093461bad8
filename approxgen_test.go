package approxgen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeModule lays out a throwaway module with one annotated package.
func writeModule(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	gomod := "module tmp.example/scene\n\ngo 1.22\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0o644))

	src := `package scene

//approx:generate
type Vec struct {
	X float64
	Y float64
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scene.go"), []byte(src), 0o644))
	return dir
}

func TestGenerateAndCheck(t *testing.T) {
	dir := writeModule(t)
	ctx := context.Background()
	cfg := Config{Dir: dir}

	report, err := Generate(ctx, cfg)
	require.NoError(t, err)
	require.Len(t, report.Generated, 1)
	require.Empty(t, report.Skipped)

	out := report.Generated[0]
	require.Equal(t, filepath.Join(dir, "scene_approx.go"), out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	src := string(data)
	require.True(t, strings.HasPrefix(src, "// Code generated by approxgen. DO NOT EDIT."))
	require.Contains(t, src, "func (v Vec) AbsDiffEq(other Vec, epsilon float64) bool")
	require.Contains(t, src, "func (v Vec) RelativeEq(other Vec, epsilon, maxRelative float64) bool")
	require.Contains(t, src, "func VecsAbsDiffEq(a, b []Vec, epsilon float64) bool")

	// unchanged inputs are skipped through the manifest
	report, err = Generate(ctx, cfg)
	require.NoError(t, err)
	require.Empty(t, report.Generated)
	require.Equal(t, []string{"tmp.example/scene"}, report.Skipped)

	report, err = Check(ctx, cfg)
	require.NoError(t, err)
	require.Empty(t, report.Stale)

	// a source change makes the output stale again
	src = `package scene

//approx:generate
type Vec struct {
	X float64
	Y float64
	Z float64
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scene.go"), []byte(src), 0o644))

	report, err = Check(ctx, cfg)
	require.NoError(t, err)
	require.Equal(t, []string{out}, report.Stale)

	report, err = Generate(ctx, Config{Dir: dir, NoCache: true})
	require.NoError(t, err)
	require.Equal(t, []string{out}, report.Generated)

	data, err = os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "other.Z")
}

func TestGenerateNoAnnotations(t *testing.T) {
	dir := t.TempDir()
	gomod := "module tmp.example/empty\n\ngo 1.22\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0o644))
	src := "package empty\n\ntype Plain struct{ X float64 }\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.go"), []byte(src), 0o644))

	report, err := Generate(context.Background(), Config{Dir: dir})
	require.NoError(t, err)
	require.Empty(t, report.Generated)
	require.Empty(t, report.Skipped)
}
