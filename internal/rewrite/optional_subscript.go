package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// optionalSubscriptPass rewrites a subscript through an optional receiver,
// "opt?[i]", into the target's explicit "opt?.get(i)".
func optionalSubscriptPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "optional-subscript",
		Expressions: map[string]pass.ExpressionHook{
			pass.TypeKey(&ast.SubscriptExpression{}): func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
				n := e.(*ast.SubscriptExpression)
				def := w.DefaultExpression(n).(*ast.SubscriptExpression)
				oc, ok := def.Subscripted.(*ast.OptionalChainExpression)
				if !ok {
					return def, true
				}
				args := make([]ast.LabeledExpression, len(def.Indices))
				for i, idx := range def.Indices {
					args[i] = ast.LabeledExpression{Expression: idx}
				}
				return &ast.OptionalChainExpression{
					Base: def.Base,
					Inner: &ast.CallExpression{
						Function:  &ast.DotExpression{Receiver: oc.Inner, Member: "get"},
						Arguments: args,
					},
				}, true
			},
		},
	}
}
