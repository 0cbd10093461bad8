package directive_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/approxgen/approxgen/internal/directive"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want *directive.Directive
	}{
		{
			name: "not a directive",
			line: "// Car is a car.",
			want: nil,
		},
		{
			name: "go generate line is not a directive",
			line: "//go:generate approxgen",
			want: nil,
		},
		{
			name: "bare generate",
			line: "//approx:generate",
			want: &directive.Directive{Relative: true},
		},
		{
			name: "epsilon type",
			line: "//approx:generate epsilon_type=float32",
			want: &directive.Directive{EpsilonType: "float32", Relative: true},
		},
		{
			name: "all options",
			line: "//approx:generate epsilon_type=float64 default_epsilon=1e-6 default_max_relative=0.1 rel=true",
			want: &directive.Directive{
				EpsilonType:        "float64",
				DefaultEpsilon:     "1e-6",
				DefaultMaxRelative: "0.1",
				Relative:           true,
			},
		},
		{
			name: "abs only",
			line: "//approx:generate rel=false",
			want: &directive.Directive{Relative: false},
		},
		{
			name: "quoted value",
			line: `//approx:generate epsilon_type="time.Duration"`,
			want: &directive.Directive{EpsilonType: "time.Duration", Relative: true},
		},
		{
			name: "quoted value with space",
			line: `//approx:generate default_epsilon="1e-6 " rel=false`,
			want: &directive.Directive{DefaultEpsilon: "1e-6 ", Relative: false},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := directive.Parse(test.line)
			require.NoError(t, err)
			require.Equal(t, test.want, d)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, line := range []string{
		"//approx:derive",
		"//approx:generate epsilon_type",
		"//approx:generate rel=sometimes",
		"//approx:generate tolerance=1e-3",
	} {
		_, err := directive.Parse(line)
		require.Error(t, err, line)
	}
}
