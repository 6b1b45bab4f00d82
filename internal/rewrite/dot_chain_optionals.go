package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// addOptionalsInDotChainsPass propagates optional-chaining forward through
// a dot chain: once an earlier (more deeply nested) link became
// optional-chained, every link built on top of it must be too. Children
// are rewritten first, so by the time
// an outer DotExpression is visited its Receiver already reflects whatever
// the inner links decided.
func addOptionalsInDotChainsPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "add-optionals-in-dot-chains",
		Expressions: map[string]pass.ExpressionHook{
			pass.TypeKey(&ast.DotExpression{}): func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
				n := e.(*ast.DotExpression)
				def := w.DefaultExpression(n).(*ast.DotExpression)
				if _, ok := def.Receiver.(*ast.OptionalChainExpression); ok {
					return &ast.OptionalChainExpression{Base: def.Base, Inner: def}, true
				}
				return def, true
			},
		},
	}
}
