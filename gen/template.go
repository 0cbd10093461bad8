package gen

import "text/template"

type fileData struct {
	Digest  string
	Package string
	Imports []string
	Types   []*typeData
}

var fileTemplate = template.Must(template.New("approx").Parse(`// Code generated by approxgen. DO NOT EDIT.
//
// approxgen:sha256 {{.Digest}}

package {{.Package}}

{{if .Imports}}import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)
{{end}}
{{- range .Types}}
// AbsDiffEq reports whether the two values are equal to within epsilon,
// comparing every field by absolute difference.
func ({{.Receiver}} {{.Name}}) AbsDiffEq(other {{.Name}}, epsilon {{.EpsilonType}}) bool {
{{- range .AbsStmts}}
{{.}}
{{- end}}
	return true
}

// DefaultEpsilon returns the default absolute tolerance for {{.Name}} values.
func ({{.Name}}) DefaultEpsilon() {{.EpsilonType}} {
	return {{.DefaultEpsilon}}
}

// {{.Plural}}AbsDiffEq reports whether a and b have the same length and
// elements that are pairwise equal to within epsilon.
func {{.Plural}}AbsDiffEq(a, b []{{.Name}}, epsilon {{.EpsilonType}}) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].AbsDiffEq(b[i], epsilon) {
			return false
		}
	}
	return true
}
{{if .Relative}}
// RelativeEq reports whether the two values are equal to within epsilon or
// a tolerance scaled by the values' magnitude, field by field.
func ({{.Receiver}} {{.Name}}) RelativeEq(other {{.Name}}, epsilon, maxRelative {{.EpsilonType}}) bool {
{{- range .RelStmts}}
{{.}}
{{- end}}
	return true
}

// DefaultMaxRelative returns the default relative tolerance for {{.Name}} values.
func ({{.Name}}) DefaultMaxRelative() {{.EpsilonType}} {
	return {{.DefaultMaxRelative}}
}

// {{.Plural}}RelativeEq reports whether a and b have the same length and
// elements that are pairwise equal to within the given tolerances.
func {{.Plural}}RelativeEq(a, b []{{.Name}}, epsilon, maxRelative {{.EpsilonType}}) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].RelativeEq(b[i], epsilon, maxRelative) {
			return false
		}
	}
	return true
}
{{end}}
{{- end}}
`))
