package warn

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// SideEffectInIfLets warns when any if-let condition after the first
// contains an impure call. It must run before if-let conditions are
// rearranged, since rearrangement changes which conditions came "after
// the first" in source order.
func SideEffectInIfLets(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "side-effect-warnings-in-if-lets",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.IfStatement{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.IfStatement)
				for _, cond := range n.Conditions[minOne(len(n.Conditions)):] {
					checkPurity(ctx, cond)
				}
				return nil, false
			},
		},
	}
}

func minOne(n int) int {
	if n == 0 {
		return 0
	}
	return 1
}

func checkPurity(ctx *context.Context, cond ast.IfCondition) {
	if cond.Variable != nil {
		warnIfImpureCall(ctx, cond.Variable.Value)
		return
	}
	warnIfImpureCall(ctx, cond.Expr)
}

func warnIfImpureCall(ctx *context.Context, e ast.Expression) {
	switch n := e.(type) {
	case nil:
	case *ast.CallExpression:
		if !isPureCall(ctx, n) {
			ctx.Diagnostics.Warn(n.Range(), "call with possible side effects inside a non-first if-let condition")
		}
		for _, arg := range n.Arguments {
			warnIfImpureCall(ctx, arg.Expression)
		}
	case *ast.ForceUnwrapExpression:
		warnIfImpureCall(ctx, n.Inner)
	case *ast.OptionalChainExpression:
		warnIfImpureCall(ctx, n.Inner)
	case *ast.ParenthesesExpression:
		warnIfImpureCall(ctx, n.Inner)
	case *ast.BinaryOperatorExpression:
		warnIfImpureCall(ctx, n.Left)
		warnIfImpureCall(ctx, n.Right)
	case *ast.DotExpression:
		warnIfImpureCall(ctx, n.Receiver)
	}
}

func isPureCall(ctx *context.Context, call *ast.CallExpression) bool {
	ref, ok := call.Function.(*ast.DeclarationReferenceExpression)
	if !ok {
		return false
	}
	return ctx.IsPure(ref.Name)
}
