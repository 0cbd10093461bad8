// Package approxtest provides assertion helpers around the comparison
// methods approxgen generates.
package approxtest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// AbsDiffEq constrains types carrying the generated absolute-difference
// method set.
type AbsDiffEq[T, E any] interface {
	AbsDiffEq(other T, epsilon E) bool
}

// RelativeEq constrains types carrying the full generated method pair.
type RelativeEq[T, E any] interface {
	AbsDiffEq(other T, epsilon E) bool
	RelativeEq(other T, epsilon, maxRelative E) bool
}

// Equal asserts that want and got are equal to within epsilon, field by
// field, by absolute difference.
func Equal[T AbsDiffEq[T, E], E any](tb testing.TB, want, got T, epsilon E) {
	tb.Helper()
	require.True(tb, want.AbsDiffEq(got, epsilon),
		"values are not approximately equal\nwant:    %+v\ngot:     %+v\nepsilon: %v", want, got, epsilon)
}

// NotEqual asserts that want and got differ by more than epsilon in at
// least one field.
func NotEqual[T AbsDiffEq[T, E], E any](tb testing.TB, want, got T, epsilon E) {
	tb.Helper()
	require.False(tb, want.AbsDiffEq(got, epsilon),
		"values are unexpectedly approximately equal\nwant:    %+v\ngot:     %+v\nepsilon: %v", want, got, epsilon)
}

// EqualRel asserts that want and got are equal to within epsilon or a
// tolerance scaled by their magnitude.
func EqualRel[T RelativeEq[T, E], E any](tb testing.TB, want, got T, epsilon, maxRelative E) {
	tb.Helper()
	require.True(tb, want.RelativeEq(got, epsilon, maxRelative),
		"values are not approximately equal\nwant:         %+v\ngot:          %+v\nepsilon:      %v\nmax_relative: %v",
		want, got, epsilon, maxRelative)
}

// NotEqualRel is the negation of EqualRel.
func NotEqualRel[T RelativeEq[T, E], E any](tb testing.TB, want, got T, epsilon, maxRelative E) {
	tb.Helper()
	require.False(tb, want.RelativeEq(got, epsilon, maxRelative),
		"values are unexpectedly approximately equal\nwant:         %+v\ngot:          %+v\nepsilon:      %v\nmax_relative: %v",
		want, got, epsilon, maxRelative)
}
