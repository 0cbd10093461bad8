// Package directive parses //approx: directive comments placed on type
// declarations, e.g.:
//
//	//approx:generate epsilon_type=float32 default_epsilon=1e-6
//	type Car struct { ... }
package directive

import (
	"fmt"
	"strconv"
	"strings"
)

const prefix = "//approx:"

// Directive holds the type-level generation options.
type Directive struct {
	EpsilonType        string
	DefaultEpsilon     string
	DefaultMaxRelative string
	Relative           bool
}

// Parse parses a single comment line. It returns nil when the line is not an
// approx directive at all, and an error when it is one but malformed.
func Parse(line string) (*Directive, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, prefix) {
		return nil, nil
	}
	rest := strings.TrimPrefix(line, prefix)

	verb, args, _ := strings.Cut(rest, " ")
	if verb != "generate" {
		return nil, fmt.Errorf("unknown approx directive %q", verb)
	}

	d := &Directive{Relative: true}
	for _, kv := range splitArgs(args) {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("malformed directive option %q, want key=value", kv)
		}
		if unq, err := strconv.Unquote(value); err == nil {
			value = unq
		}
		switch key {
		case "epsilon_type":
			d.EpsilonType = value
		case "default_epsilon":
			d.DefaultEpsilon = value
		case "default_max_relative":
			d.DefaultMaxRelative = value
		case "rel":
			rel, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("directive option rel: %w", err)
			}
			d.Relative = rel
		default:
			return nil, fmt.Errorf("unknown directive option %q", key)
		}
	}
	return d, nil
}

// splitArgs splits space-separated options, keeping double-quoted spans
// together so `key="a b"` stays one option.
func splitArgs(s string) []string {
	var args []string
	for i := 0; i < len(s); {
		for i < len(s) && s[i] == ' ' {
			i++
		}
		start := i
		inQuote := false
		for i < len(s) && (inQuote || s[i] != ' ') {
			if s[i] == '"' {
				inQuote = !inQuote
			}
			i++
		}
		if i > start {
			args = append(args, s[start:i])
		}
	}
	return args
}
