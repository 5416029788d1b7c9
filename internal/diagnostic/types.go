package diagnostic

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"regex-transpiler/internal/common"
)

// Diagnostic codes.
const (
	// CodeUnsupportedFeature marks a construct the target cannot express.
	CodeUnsupportedFeature = "unsupported_feature"
	// CodeUnknownProperty marks a \p{...} name that matches no Unicode property.
	CodeUnknownProperty = "unknown_property"
	// CodeDroppedGroup marks a backreference to a group that produced no output.
	CodeDroppedGroup = "dropped_group"
)

// Diagnostics holds all diagnostic information from a conversion run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity `yaml:"severity"`
	// Code is a unique identifier for this type of diagnostic.
	Code string `yaml:"code"`
	// Message is the human-readable description.
	Message string `yaml:"message"`
	// Source is the text of the source node this relates to (if any).
	Source string `yaml:"source,omitempty"`
	// Pos is the byte offset of the node in the source pattern.
	Pos int `yaml:"pos"`
	// Suggestions are potential fixes or alternatives.
	Suggestions []string `yaml:"suggestions,omitempty"`
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// MarshalText renders the severity by name in reports.
func (s DiagnosticSeverity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, source string, pos int) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		Source:   source,
		Pos:      pos,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, source string, pos int) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Source:   source,
		Pos:      pos,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, source string, pos int) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Source:   source,
		Pos:      pos,
	})
}

// AddUnsupported records a construct the target engine cannot express.
func (d *Diagnostics) AddUnsupported(feature, source string, pos int) {
	d.AddWarning(CodeUnsupportedFeature, feature+" is not supported", source, pos)
}

// AddWithSuggestions adds a warning carrying alternatives for the user.
func (d *Diagnostics) AddWithSuggestions(code, message, source string, pos int, suggestions []string) {
	d.AddWarning(code, message, source, pos)
	d.Warnings[len(d.Warnings)-1].Suggestions = suggestions
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Len is the total number of diagnostics of any severity.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns every diagnostic ordered by source offset, most severe first on ties.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, d.Len())
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)
	out = append(out, d.Infos...)

	slices.SortStableFunc(out, func(a, b Diagnostic) int {
		return a.Pos - b.Pos
	})

	return out
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Source != "" {
		prefix = append(prefix, common.Quote(d.Source, 32))
	}

	prefix = append(prefix, fmt.Sprintf("at %d", d.Pos))

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	return strings.Join(prefix, " ") + ": " + msg
}
