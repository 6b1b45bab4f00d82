package buffer

import (
	"fmt"
	"strings"

	"github.com/swiftkt/transpile/internal/ast"
)

// LineMapEntry is one line-map record, of the form
// "out_line:out_col:out_line_end:out_line_end_col:src_line:src_col:src_line_end:src_col_end".
type LineMapEntry struct {
	OutStart, OutEnd Position
	SrcStart, SrcEnd Position
}

func (e LineMapEntry) String() string {
	return fmt.Sprintf("%d:%d:%d:%d:%d:%d:%d:%d",
		e.OutStart.Line, e.OutStart.Column, e.OutEnd.Line, e.OutEnd.Column,
		e.SrcStart.Line, e.SrcStart.Column, e.SrcEnd.Line, e.SrcEnd.Column)
}

// entry is one element of a Translation: either a literal string or a
// nested Translation, each optionally carrying the source range it was
// produced from.
type entry struct {
	text  string
	child *Translation
	rang  *ast.SourceRange
}

func (e entry) length() int {
	if e.child != nil {
		return e.child.length()
	}
	return len(e.text)
}

// Translation is a lazy tree of string fragments with per-range
// provenance. It is built up by append operations and resolved once, at
// the end of emission, into output text plus a line-map.
type Translation struct {
	entries []entry
}

// New returns an empty Translation.
func New() *Translation { return &Translation{} }

// Append adds a literal string fragment with no associated range.
func (t *Translation) Append(s string) { t.entries = append(t.entries, entry{text: s}) }

// AppendRanged adds a literal string fragment carrying a source range.
func (t *Translation) AppendRanged(s string, r *ast.SourceRange) {
	t.entries = append(t.entries, entry{text: s, rang: r})
}

// AppendChild splices a nested Translation in, with no range of its own
// (the child's own internal entries keep whatever ranges they carry).
func (t *Translation) AppendChild(child *Translation) {
	if child == nil {
		return
	}
	t.entries = append(t.entries, entry{child: child})
}

// AppendChildRanged splices a nested Translation in as a single ranged
// unit: entering or exiting it emits one line-map record for the whole
// child, in addition to whatever records the child's own entries produce.
func (t *Translation) AppendChildRanged(child *Translation, r *ast.SourceRange) {
	if child == nil {
		return
	}
	t.entries = append(t.entries, entry{child: child, rang: r})
}

// DropLast removes a trailing literal fragment equal to s. It reports
// false (and leaves the buffer unchanged) if the last entry is not exactly
// that literal; callers rely on this to detect a malformed buffer rather
// than silently corrupting output.
func (t *Translation) DropLast(s string) bool {
	if len(t.entries) == 0 {
		return false
	}
	last := t.entries[len(t.entries)-1]
	if last.child != nil || last.text != s {
		return false
	}
	t.entries = t.entries[:len(t.entries)-1]
	return true
}

// AppendTranslations appends each element of list in order, joined by a
// literal separator between consecutive non-empty elements.
func (t *Translation) AppendTranslations(list []*Translation, separator string) {
	first := true
	for _, item := range list {
		if item == nil || item.IsEmpty() {
			continue
		}
		if !first {
			t.Append(separator)
		}
		t.AppendChild(item)
		first = false
	}
}

// IsEmpty reports whether every leaf in the tree is the empty string.
func (t *Translation) IsEmpty() bool {
	for _, e := range t.entries {
		if e.child != nil {
			if !e.child.IsEmpty() {
				return false
			}
			continue
		}
		if e.text != "" {
			return false
		}
	}
	return true
}

func (t *Translation) length() int {
	n := 0
	for _, e := range t.entries {
		n += e.length()
	}
	return n
}

// Resolve walks the tree in order, accumulating output text and a
// line-map entry for every range-carrying leaf or child entered/exited.
func (t *Translation) Resolve() (string, []LineMapEntry) {
	r := &resolver{pos: StartPosition}
	r.walk(t)
	return r.sb.String(), r.lineMap
}

type resolver struct {
	sb      strings.Builder
	pos     Position
	lineMap []LineMapEntry
}

func (r *resolver) walk(t *Translation) {
	for _, e := range t.entries {
		start := r.pos
		if e.child != nil {
			r.walk(e.child)
		} else {
			r.sb.WriteString(e.text)
			r.pos = r.pos.Advance(e.text)
		}
		if e.rang != nil {
			r.lineMap = append(r.lineMap, LineMapEntry{
				OutStart: start,
				OutEnd:   r.pos,
				SrcStart: Position{Line: e.rang.StartLine, Column: e.rang.StartColumn},
				SrcEnd:   Position{Line: e.rang.EndLine, Column: e.rang.EndColumn},
			})
		}
	}
}

// ResolveText is a convenience for callers that only want the text.
func ResolveText(t *Translation) string {
	text, _ := t.Resolve()
	return text
}

// JoinLineMap renders a line-map as newline-separated entry strings, the
// format used for the serialized line-map output artifact.
func JoinLineMap(entries []LineMapEntry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return strings.Join(lines, "\n")
}
