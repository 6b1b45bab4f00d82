package emit

import (
	"strings"

	"golang.org/x/text/width"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/buffer"
	"github.com/swiftkt/transpile/internal/context"
)

// maxLineWidth is the soft limit a call or function signature is allowed to
// reach before the printer breaks its arguments out onto their own indented
// lines. It's a heuristic, not a hard wrap: a single identifier or literal
// longer than this is still emitted on one line.
const maxLineWidth = 100

// Printer walks a rewritten statement tree and builds the buffer.Translation
// that Resolve()s into target text plus a line-map. It tracks indentation
// level only; column position for the line-width heuristic is approximated
// from the current indent, since every candidate it measures (a call, a
// function signature) is checked at the start of its own line.
type Printer struct {
	ctx    *context.Context
	unit   string
	level  int
	scopes []string // enclosing type names, innermost last; see innerTypePrefixesPass
}

// New returns a Printer configured from ctx's indentation setting.
func New(ctx *context.Context) *Printer {
	unit := ctx.Config.IndentationString
	if unit == "" {
		unit = "\t"
	}
	return &Printer{ctx: ctx, unit: unit}
}

// Emit serializes file's statements into target text and its line-map.
func Emit(ctx *context.Context, file *ast.File) (string, []buffer.LineMapEntry) {
	p := New(ctx)
	t := p.emitTopLevel(file.Statements)
	return t.Resolve()
}

func (p *Printer) indent() string { return strings.Repeat(p.unit, p.level) }

func (p *Printer) enter() { p.level++ }
func (p *Printer) leave() { p.level-- }

// fitsFlat reports whether candidate's resolved text fits on one line
// alongside the printer's current indentation.
func (p *Printer) fitsFlat(candidate *buffer.Translation) bool {
	text := buffer.ResolveText(candidate)
	if strings.Contains(text, "\n") {
		return false
	}
	return len(p.indent())+visualWidth(text) <= maxLineWidth
}

// visualWidth counts text's display columns rather than its byte length: a
// string literal or identifier carried over from source may contain
// East-Asian wide characters, which render as two columns in any fixed-
// width terminal or diff view the ~100-column heuristic is trying to
// respect.
func visualWidth(text string) int {
	n := 0
	for _, r := range text {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// emitTopLevel renders a sequence of statements at the current indent
// level, inserting blank lines between adjacent statements except where
// both fall in the same compact category (see compactCategory).
func (p *Printer) emitTopLevel(stmts []ast.Statement) *buffer.Translation {
	t := buffer.New()
	var prev ast.Statement
	for i := 0; i < len(stmts); i++ {
		s := stmts[i]
		if i > 0 && !sameCompactCategory(prev, s) {
			t.Append("\n")
		}
		t.Append(p.indent())
		// A defer has no direct target-language equivalent; since it runs
		// when the enclosing scope exits, it's desugared here by wrapping
		// everything still to come in this same statement list in a
		// try/finally, then stopping: the wrapped recursive call has
		// already rendered the remainder.
		if def, ok := s.(*ast.DeferStatement); ok {
			t.AppendChild(p.emitDeferWrapped(def, stmts[i+1:]))
			t.Append("\n")
			return t
		}
		t.AppendChild(p.emitStatement(s))
		t.Append("\n")
		prev = s
	}
	return t
}

func (p *Printer) emitDeferWrapped(def *ast.DeferStatement, rest []ast.Statement) *buffer.Translation {
	t := buffer.New()
	t.Append("try ")
	t.AppendChild(p.emitBlock(rest))
	t.Append(" finally ")
	t.AppendChild(p.emitBlock(def.Body))
	return wrapRanged(t, def)
}

// emitBlock renders stmts one indent level deeper, wrapped in braces, for
// use as a control-flow or function body. The braces themselves carry no
// range; emitStatement supplies ranges for their contents.
func (p *Printer) emitBlock(stmts []ast.Statement) *buffer.Translation {
	t := buffer.New()
	t.Append("{\n")
	p.enter()
	t.AppendChild(p.emitTopLevel(stmts))
	p.leave()
	t.Append(p.indent())
	t.Append("}")
	return t
}

// compactCategory classifies a statement into one of the kinds the blank
// line rule treats as groupable with its own kind, or "" if it isn't one of
// them (in which case a blank line always separates it from its neighbors).
func compactCategory(s ast.Statement) string {
	switch n := s.(type) {
	case *ast.CommentStatement:
		return "comment"
	case *ast.VariableDeclaration:
		return "vardecl"
	case *ast.AssignmentStatement:
		return "assignment"
	case *ast.TypealiasDeclaration:
		return "typealias"
	case *ast.ExpressionStatement:
		switch n.Expression.(type) {
		case *ast.CallExpression:
			return "call"
		case *ast.LiteralCodeExpression:
			return "litcode"
		}
		return ""
	default:
		return ""
	}
}

func sameCompactCategory(prev, next ast.Statement) bool {
	if prev == nil {
		return true
	}
	pk := compactCategory(prev)
	if pk == "" {
		return false
	}
	return pk == compactCategory(next)
}
