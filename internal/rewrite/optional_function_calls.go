package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// optionalFunctionCallsPass rewrites a call through an optional function
// value, "f?()", into the target's explicit "f?.invoke()".
func optionalFunctionCallsPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "optional-function-calls",
		Expressions: map[string]pass.ExpressionHook{
			pass.TypeKey(&ast.CallExpression{}): func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
				n := e.(*ast.CallExpression)
				def := w.DefaultExpression(n).(*ast.CallExpression)
				if oc, ok := def.Function.(*ast.OptionalChainExpression); ok {
					def.Function = &ast.OptionalChainExpression{
						Base:  oc.Base,
						Inner: &ast.DotExpression{Receiver: oc.Inner, Member: "invoke"},
					}
				}
				return def, true
			},
		},
	}
}
