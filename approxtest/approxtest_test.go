package approxtest_test

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/approxgen/approxgen/approxtest"
)

// point mirrors the method pair approxgen emits.
type point struct {
	X, Y float64
}

func (p point) AbsDiffEq(other point, epsilon float64) bool {
	return scalar.EqualWithinAbs(p.X, other.X, epsilon) &&
		scalar.EqualWithinAbs(p.Y, other.Y, epsilon)
}

func (p point) RelativeEq(other point, epsilon, maxRelative float64) bool {
	return scalar.EqualWithinAbsOrRel(p.X, other.X, epsilon, maxRelative) &&
		scalar.EqualWithinAbsOrRel(p.Y, other.Y, epsilon, maxRelative)
}

func TestEqual(t *testing.T) {
	p1 := point{X: 1.01, Y: 2.36}
	p2 := point{X: 0.99, Y: 2.38}

	approxtest.Equal(t, p1, p2, 0.021)
	approxtest.NotEqual(t, p1, p2, 0.0001)
}

func TestEqualRel(t *testing.T) {
	p1 := point{X: 100.0, Y: 200.0}
	p2 := point{X: 100.5, Y: 201.0}

	approxtest.EqualRel(t, p1, p2, 1e-9, 0.01)
	approxtest.NotEqualRel(t, p1, p2, 1e-9, 0.001)
}
