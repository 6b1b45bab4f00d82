// Package pass implements the compositional tree-rewrite framework: a
// generic visitor that rewrites every statement/expression node, tracks
// the parent chain, and exposes override hooks per variant.
//
// Rather than a class hierarchy with virtual dispatch, a Pass here is a
// small table of hooks keyed by concrete node type plus a Walker that
// performs default recursion via an exhaustive type switch. The Go
// compiler doesn't check switch exhaustiveness, but the "Fatal" branch
// at the bottom of each switch makes an unhandled variant a loud runtime
// error instead of a silent miscompile.
package pass

import (
	"fmt"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
)

// StatementHook rewrites one statement. ok=false means "not handled by
// this pass for this node type"; the Walker then falls back to default
// recursion. A hook that wants default recursion plus further
// transformation calls w.DefaultStatement itself and edits the result.
type StatementHook func(w *Walker, s ast.Statement) (replacement []ast.Statement, ok bool)

// ExpressionHook rewrites one expression; shape mirrors StatementHook.
type ExpressionHook func(w *Walker, e ast.Expression) (replacement ast.Expression, ok bool)

// Pass is one named rewrite pass: a sparse table of per-variant hooks. A
// pass need only populate the hooks for the variants it cares about;
// every other variant recurses unchanged.
type Pass struct {
	PassName   string
	Statements map[string]StatementHook // keyed by fmt.Sprintf("%T", node)
	Expressions map[string]ExpressionHook
}

func (p *Pass) Name() string { return p.PassName }

func (p *Pass) replaceStatement(w *Walker, s ast.Statement) ([]ast.Statement, bool) {
	if p.Statements == nil {
		return nil, false
	}
	hook, ok := p.Statements[typeKey(s)]
	if !ok {
		return nil, false
	}
	return hook(w, s)
}

func (p *Pass) replaceExpression(w *Walker, e ast.Expression) (ast.Expression, bool) {
	if p.Expressions == nil {
		return nil, false
	}
	hook, ok := p.Expressions[typeKey(e)]
	if !ok {
		return nil, false
	}
	return hook(w, e)
}

func typeKey(n ast.Node) string { return fmt.Sprintf("%T", n) }

// TypeKey returns the dispatch key a Pass's Statements/Expressions map
// uses for n's concrete type. Callers building a Pass's hook table use
// this instead of reaching into the map with a hand-written string.
func TypeKey(n ast.Node) string { return typeKey(n) }

// Run executes p over every top-level statement of file, in source order,
// and returns the rewritten statement list. It is the entry point every
// recording/rewrite/warning pass is driven through.
func Run(p *Pass, ctx *context.Context, statements []ast.Statement) []ast.Statement {
	w := &Walker{ctx: ctx, pass: p}
	w.replacingStatements = true
	return w.rewriteStatementList(statements)
}

// Walker carries per-run traversal state: the parent stack, the enclosing
// type-name stack (for GetFullType), and the enclosing-function label
// stack (for the returns-in-lambdas pass).
type Walker struct {
	ctx  *context.Context
	pass *Pass

	parents               []ast.Node
	replacingStatements   bool
	typeStack             []string
	labelStack            []string
}

// Context returns the shared transpilation context.
func (w *Walker) Context() *context.Context { return w.ctx }

// Parent returns the immediate enclosing node, or nil at the top level.
func (w *Walker) Parent() ast.Node {
	if len(w.parents) == 0 {
		return nil
	}
	return w.parents[len(w.parents)-1]
}

// Parents returns the full ancestor chain, outermost first.
func (w *Walker) Parents() []ast.Node { return append([]ast.Node(nil), w.parents...) }

// IsReplacingStatements reports whether the walker is currently rewriting
// the statement list, as opposed to the top-level declaration list that
// precedes it. Kept as its own flag even though this module's File has a
// single combined list; see DESIGN.md.
func (w *Walker) IsReplacingStatements() bool { return w.replacingStatements }

// IsTopLevelNode reports whether the current node has no enclosing parent.
func (w *Walker) IsTopLevelNode() bool { return len(w.parents) == 0 }

// GetFullType returns the dot-joined stack of enclosing class/struct/enum
// names, e.g. "Outer.Inner" for a member of Inner nested in Outer.
func (w *Walker) GetFullType() string {
	out := ""
	for i, t := range w.typeStack {
		if i > 0 {
			out += "."
		}
		out += t
	}
	return out
}

// CurrentType returns the innermost enclosing class/struct/enum name, or
// "" outside any type declaration.
func (w *Walker) CurrentType() string {
	if len(w.typeStack) == 0 {
		return ""
	}
	return w.typeStack[len(w.typeStack)-1]
}

// QualifiedName joins the current enclosing-type stack with name,
// producing the fully-qualified name a just-entered type or member
// declaration should be recorded under.
func (w *Walker) QualifiedName(name string) string {
	if len(w.typeStack) == 0 {
		return name
	}
	return w.GetFullType() + "." + name
}

// CurrentLabel returns the nearest enclosing function name pushed via
// PushLabel, or "" outside any function.
func (w *Walker) CurrentLabel() string {
	if len(w.labelStack) == 0 {
		return ""
	}
	return w.labelStack[len(w.labelStack)-1]
}

// PushLabel pushes name as the current function-name label; the returned
// func pops it, guaranteed via defer at the call site.
func (w *Walker) PushLabel(name string) func() {
	w.labelStack = append(w.labelStack, name)
	return func() { w.labelStack = w.labelStack[:len(w.labelStack)-1] }
}

func (w *Walker) pushType(name string) {
	w.typeStack = append(w.typeStack, name)
}

func (w *Walker) popType() {
	w.typeStack = w.typeStack[:len(w.typeStack)-1]
}

func (w *Walker) push(n ast.Node) {
	w.parents = append(w.parents, n)
}

func (w *Walker) pop() {
	w.parents = w.parents[:len(w.parents)-1]
}

func fatalStatement(s ast.Statement) []ast.Statement {
	panic(fmt.Sprintf("pass framework: unhandled statement variant %T", s))
}

func fatalExpression(e ast.Expression) ast.Expression {
	panic(fmt.Sprintf("pass framework: unhandled expression variant %T", e))
}
