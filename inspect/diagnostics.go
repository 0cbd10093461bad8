package inspect

import (
	"fmt"
	"go/token"
	"strings"
)

// Diagnostic is a generation-time error anchored to a source position.
type Diagnostic struct {
	Pos token.Position
	Msg string
}

func (d Diagnostic) Error() string {
	if d.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", d.Pos, d.Msg)
	}
	return d.Msg
}

// Diagnostics accumulates per-field and per-type errors so a single run
// reports everything wrong with the annotations, not just the first hit.
type Diagnostics []Diagnostic

func (ds Diagnostics) Error() string {
	msgs := make([]string, len(ds))
	for i, d := range ds {
		msgs[i] = d.Error()
	}
	return strings.Join(msgs, "\n")
}

func (ds *Diagnostics) addf(pos token.Position, format string, args ...any) {
	*ds = append(*ds, Diagnostic{Pos: pos, Msg: fmt.Sprintf(format, args...)})
}

// AsError returns ds as an error, or nil when empty.
func (ds Diagnostics) AsError() error {
	if len(ds) == 0 {
		return nil
	}
	return ds
}
