package internal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/approxgen/approxgen/internal"
)

func TestCamelCased(t *testing.T) {
	tests := []struct{ in, out string }{
		{"", ""},
		{"position", "Position"},
		{"hit_points", "HitPoints"},
		{"already_Camel", "AlreadyCamel"},
	}
	for _, test := range tests {
		require.Equal(t, test.out, internal.CamelCased(test.in))
	}
}

func TestReceiverName(t *testing.T) {
	tests := []struct{ in, out string }{
		{"Position", "p"},
		{"benchmark", "b"},
		{"HTTPStats", "h"},
		{"_", "x"},
	}
	for _, test := range tests {
		require.Equal(t, test.out, internal.ReceiverName(test.in))
	}
}
