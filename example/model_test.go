package example

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/approxgen/approxgen/approxtest"
	"github.com/approxgen/approxgen/gen"
	"github.com/approxgen/approxgen/inspect"
)

// TestGeneratedFileUpToDate fails when model.go changes without
// regenerating the committed example_approx.go.
func TestGeneratedFileUpToDate(t *testing.T) {
	entries, err := os.ReadDir(".")
	require.NoError(t, err)

	var files []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".go") ||
			strings.HasSuffix(name, "_test.go") ||
			strings.HasSuffix(name, inspect.DefaultGenSuffix) {
			continue
		}
		files = append(files, name)
	}

	want, err := gen.InputDigest(inspect.DefaultGenSuffix, files)
	require.NoError(t, err)
	have, err := gen.FileDigest("example_approx.go")
	require.NoError(t, err)
	require.Equal(t, want, have, "stale example_approx.go, rerun approxgen")
}

func TestPositionAbsDiffEq(t *testing.T) {
	a := Position{X: 1.01, Y: 2.36}
	b := Position{X: 0.99, Y: 2.38}

	require.True(t, a.AbsDiffEq(b, 0.021))
	require.False(t, a.AbsDiffEq(b, 0.019))
	require.True(t, a.AbsDiffEq(a, a.DefaultEpsilon()))

	approxtest.Equal[Position, float64](t, a, b, 0.021)
	approxtest.NotEqual[Position, float64](t, a, b, 0.019)
}

func TestPositionRelativeEq(t *testing.T) {
	a := Position{X: 100.0, Y: 200.0}
	b := Position{X: 101.0, Y: 202.0}

	// off by 1%, within a 2% relative tolerance but not 0.5%
	require.True(t, a.RelativeEq(b, 1e-9, 0.02))
	require.False(t, a.RelativeEq(b, 1e-9, 0.005))

	approxtest.EqualRel[Position, float64](t, a, b, 1e-9, 0.02)
	approxtest.NotEqualRel[Position, float64](t, a, b, 1e-9, 0.005)
}

func TestPlayerSkipsID(t *testing.T) {
	a := Player{HitPoints: 100, PosX: 1.5, PosY: 2.5, ID: [2]int{1, 2}}
	b := Player{HitPoints: 100, PosX: 1.5, PosY: 2.5, ID: [2]int{9, 9}}

	require.True(t, a.AbsDiffEq(b, 1e-6))
	require.True(t, a.RelativeEq(b, 1e-6, 1e-6))

	b.PosX = 3.0
	require.False(t, a.AbsDiffEq(b, 1e-6))
}

func TestPredictionEqualField(t *testing.T) {
	a := Prediction{Confidence: 0.91, Category: "cat"}
	b := Prediction{Confidence: 0.912, Category: "cat"}

	require.True(t, a.AbsDiffEq(b, 0.01))

	b.Category = "dog"
	require.False(t, a.AbsDiffEq(b, 0.01))
	require.False(t, a.RelativeEq(b, 0.01, 0.1))
}

func TestCarCastField(t *testing.T) {
	a := Car{ProducedYear: 1990, HorsePower: 120.5}
	b := Car{ProducedYear: 1992, HorsePower: 120.5}

	require.True(t, a.AbsDiffEq(b, 3))
	require.False(t, a.AbsDiffEq(b, 1))
}

func TestBenchmarkDefaults(t *testing.T) {
	a := Benchmark{Cycles: 1000, WarmUp: 100}
	b := Benchmark{Cycles: 1008, WarmUp: 115}

	// Cycles uses the passed epsilon, WarmUp a static tolerance of 20.
	require.True(t, a.AbsDiffEq(b, a.DefaultEpsilon()))
	require.EqualValues(t, 10, a.DefaultEpsilon())

	b.WarmUp = 130
	require.False(t, a.AbsDiffEq(b, a.DefaultEpsilon()))
}

func TestTimingDefaultMaxRelative(t *testing.T) {
	a := Timing{Time: 100, WarmUp: 10}
	b := Timing{Time: 105, WarmUp: 10}

	require.InDelta(t, 0.1, float64(a.DefaultMaxRelative()), 1e-9)
	require.True(t, a.RelativeEq(b, a.DefaultEpsilon(), a.DefaultMaxRelative()))
	require.False(t, a.RelativeEq(b, a.DefaultEpsilon(), 0.01))
}

func TestRectangleStaticTolerances(t *testing.T) {
	a := Rectangle{A: 1.0, B: 2.0, C: 3.0}
	b := Rectangle{A: 1.04, B: 2.0, C: 3.06}

	// A and C carry their own static tolerances, B uses epsilon.
	require.True(t, a.AbsDiffEq(b, 1e-9))

	b.B = 2.01
	require.False(t, a.AbsDiffEq(b, 1e-9))
	require.True(t, a.AbsDiffEq(b, 0.02))
}

func TestTowerMap(t *testing.T) {
	a := Tower{HeightMeters: 50, AreaMeters2: 100} // side 10
	b := Tower{HeightMeters: 50, AreaMeters2: 104.04} // side 10.2

	require.True(t, a.AbsDiffEq(b, 0.25))
	require.False(t, a.AbsDiffEq(b, 0.1))

	// a negative area makes the map function fail, so nothing is equal
	b.AreaMeters2 = -1
	require.False(t, a.AbsDiffEq(b, 1000))
}

func TestPathIter(t *testing.T) {
	a := Path{Points: []Position{{1, 1}, {2, 2}}, Closed: true}
	b := Path{Points: []Position{{1.001, 1}, {2, 2.001}}, Closed: true}

	require.True(t, a.AbsDiffEq(b, 0.01))
	require.False(t, a.AbsDiffEq(b, 0.0001))

	b.Points = b.Points[:1]
	require.False(t, a.AbsDiffEq(b, 0.01))

	b = Path{Points: []Position{{1, 1}, {2, 2}}, Closed: false}
	require.False(t, a.AbsDiffEq(b, 0.01))
}

func TestSegmentNestedAndPointer(t *testing.T) {
	label := "diag"
	a := Segment{Start: Position{0, 0}, End: Position{1, 1}, Label: &label}
	b := Segment{Start: Position{0.001, 0}, End: Position{1, 0.999}, Label: &label}

	require.True(t, a.AbsDiffEq(b, 0.01))

	b.Label = nil
	require.False(t, a.AbsDiffEq(b, 0.01))

	other := "other"
	b.Label = &other
	require.False(t, a.AbsDiffEq(b, 0.01))
}

func TestHistogramAbsOnly(t *testing.T) {
	a := Histogram{Counts: []float64{1, 2, 3}}
	b := Histogram{Counts: []float64{1.01, 2.01, 2.99}}

	require.True(t, a.AbsDiffEq(b, 0.02))
	require.False(t, a.AbsDiffEq(b, 0.001))
	require.True(t, HistogramsAbsDiffEq([]Histogram{a}, []Histogram{b}, 0.02))
}

func TestReadingPointerField(t *testing.T) {
	off1, off2 := 0.5, 0.55
	a := Reading{Value: 1, Offset: &off1}
	b := Reading{Value: 1, Offset: &off2}

	require.True(t, a.AbsDiffEq(b, 0.1))
	require.False(t, a.AbsDiffEq(b, 0.01))

	b.Offset = nil
	require.False(t, a.AbsDiffEq(b, 0.1))

	a.Offset = nil
	require.True(t, a.AbsDiffEq(b, 0.1))
}

func TestGaugeEpsilonMap(t *testing.T) {
	a := Gauge{Value: 1.0}
	b := Gauge{Value: 1.015}

	// the map function doubles the tolerance before comparing
	require.True(t, a.AbsDiffEq(b, 0.01))
	require.False(t, a.AbsDiffEq(b, 0.005))
}

func TestSampleCastValue(t *testing.T) {
	a := Sample{V1: 1.0, V2: 2.0}
	b := Sample{V1: 1.0, V2: 2.05}

	require.True(t, a.AbsDiffEq(b, 0.1))
	require.False(t, a.AbsDiffEq(b, 0.01))
}

func TestSnapshotNestedEpsilonConversion(t *testing.T) {
	a := Snapshot{Temp: 20, Pos: Position{1, 2}}
	b := Snapshot{Temp: 20.001, Pos: Position{1.001, 2}}

	require.True(t, a.AbsDiffEq(b, 0.01))
	require.False(t, a.AbsDiffEq(b, 0.0001))
}

func TestWaveEmbeddedField(t *testing.T) {
	a := Wave{Position: Position{X: 1, Y: 2}, Amplitude: 10}
	b := Wave{Position: Position{X: 1.001, Y: 2}, Amplitude: 10}

	// the embedded Position is compared like a named field
	require.True(t, a.AbsDiffEq(b, 0.01))
	require.False(t, a.AbsDiffEq(b, 0.0001))
	require.True(t, a.RelativeEq(b, 1e-9, 0.01))
}

func TestWaveMaxRelativeMap(t *testing.T) {
	a := Wave{Position: Position{X: 1, Y: 1}, Amplitude: 100}
	b := Wave{Position: Position{X: 1, Y: 1}, Amplitude: 104}

	// tightenRel halves the relative tolerance before comparing
	require.True(t, a.RelativeEq(b, 1e-9, 0.09))
	require.False(t, a.RelativeEq(b, 1e-9, 0.05))
	require.True(t, a.AbsDiffEq(b, 5))
}

func TestSliceHelpers(t *testing.T) {
	a := []Position{{1, 1}, {2, 2}}
	b := []Position{{1.001, 1}, {2, 2.001}}

	require.True(t, PositionsAbsDiffEq(a, b, 0.01))
	require.False(t, PositionsAbsDiffEq(a, b, 0.0001))
	require.False(t, PositionsAbsDiffEq(a, b[:1], 0.01))

	require.True(t, PositionsRelativeEq(a, b, 1e-9, 0.01))
	require.False(t, PositionsRelativeEq(a, b, 1e-9, 1e-6))
}
