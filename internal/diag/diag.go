// Package diag implements the diagnostics sink: per-range warnings and
// errors, formatted with source context in the manner of a compiler
// error printout.
package diag

import (
	"fmt"
	"strings"

	"github.com/swiftkt/transpile/internal/ast"
)

// Severity classifies a diagnostic.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Diagnostic is one {severity, message, range} record.
type Diagnostic struct {
	Severity Severity
	Message  string
	Range    *ast.SourceRange
}

// Format renders the diagnostic with a source-context line and a caret
// pointing at the offending column.
func (d Diagnostic) Format(source, file string) string {
	var sb strings.Builder

	if d.Range != nil {
		if file != "" {
			fmt.Fprintf(&sb, "%s in %s:%d:%d\n", strings.Title(d.Severity.String()), file, d.Range.StartLine, d.Range.StartColumn)
		} else {
			fmt.Fprintf(&sb, "%s at %d:%d\n", strings.Title(d.Severity.String()), d.Range.StartLine, d.Range.StartColumn)
		}
		if line := sourceLine(source, d.Range.StartLine); line != "" {
			prefix := fmt.Sprintf("%4d | ", d.Range.StartLine)
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", len(prefix)+d.Range.StartColumn-1))
			sb.WriteString("^\n")
		}
	} else {
		fmt.Fprintf(&sb, "%s: ", strings.Title(d.Severity.String()))
	}
	sb.WriteString(d.Message)
	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// Sink collects diagnostics for a run. One Sink is shared across every
// pass that runs over a single file; the pipeline creates a fresh Sink
// per file so error/warning counts are reported per-file.
type Sink struct {
	diagnostics []Diagnostic
}

// NewSink returns an empty Sink.
func NewSink() *Sink { return &Sink{} }

// Warn records a warning diagnostic.
func (s *Sink) Warn(r *ast.SourceRange, format string, args ...any) {
	s.diagnostics = append(s.diagnostics, Diagnostic{Severity: Warning, Message: fmt.Sprintf(format, args...), Range: r})
}

// Error records an error diagnostic.
func (s *Sink) Error(r *ast.SourceRange, format string, args ...any) {
	s.diagnostics = append(s.diagnostics, Diagnostic{Severity: Error, Message: fmt.Sprintf(format, args...), Range: r})
}

// All returns every diagnostic recorded so far, in recording order.
func (s *Sink) All() []Diagnostic { return s.diagnostics }

// ErrorCount returns the number of error-severity diagnostics.
func (s *Sink) ErrorCount() int { return s.countSeverity(Error) }

// WarningCount returns the number of warning-severity diagnostics.
func (s *Sink) WarningCount() int { return s.countSeverity(Warning) }

func (s *Sink) countSeverity(sev Severity) int {
	n := 0
	for _, d := range s.diagnostics {
		if d.Severity == sev {
			n++
		}
	}
	return n
}
