// Package example holds annotated model types exercising the approxgen
// annotation surface. The companion file example_approx.go is generated:
//
//go:generate go run github.com/approxgen/approxgen/cmd/approxgen
package example

import "math"

//approx:generate
type Position struct {
	X float64
	Y float64
}

//approx:generate
type Player struct {
	HitPoints float32
	PosX      float32
	PosY      float32
	ID        [2]int `approx:"-"`
}

//approx:generate
type Prediction struct {
	Confidence float64
	Category   string `approx:"equal"`
}

//approx:generate epsilon_type=float32
type Car struct {
	ProducedYear uint32 `approx:"cast_field"`
	HorsePower   float32
}

//approx:generate default_epsilon=10
type Benchmark struct {
	Cycles uint64
	WarmUp uint64 `approx:"epsilon:20"`
}

//approx:generate default_max_relative=0.1
type Timing struct {
	Time   float32
	WarmUp float32
}

//approx:generate
type Rectangle struct {
	A float64 `approx:"epsilon:5e-2"`
	B float64
	C float64 `approx:"epsilon:7e-2,max_relative:7e-2"`
}

//approx:generate
type Tower struct {
	HeightMeters float32
	AreaMeters2  float32 `approx:"map:sideLength"`
}

// sideLength reduces an area to a comparable side length.
func sideLength(area float32) (float32, bool) {
	if area < 0 {
		return 0, false
	}
	return float32(math.Sqrt(float64(area))), true
}

//approx:generate
type Path struct {
	Points []Position `approx:"iter"`
	Closed bool       `approx:"equal"`
}

//approx:generate
type Segment struct {
	Start Position
	End   Position
	Label *string `approx:"equal"`
}

//approx:generate rel=false
type Histogram struct {
	Counts []float64 `approx:"iter"`
}

//approx:generate
type Reading struct {
	Value  float64
	Offset *float64
}

//approx:generate
type Gauge struct {
	Value float64 `approx:"epsilon_map:doubleTolerance"`
}

func doubleTolerance(epsilon float64) float64 {
	return 2 * epsilon
}

//approx:generate
type Sample struct {
	V1 float32
	V2 float64 `approx:"cast_value"`
}

//approx:generate epsilon_type=float32
type Snapshot struct {
	Temp float32
	Pos  Position
}

//approx:generate
type Wave struct {
	Position
	Amplitude float64 `approx:"max_relative_map:tightenRel"`
}

func tightenRel(maxRelative float64) float64 {
	return maxRelative / 2
}
