package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// selfToThisPass renames every reference to the implicit receiver
// identifier "self" to the target's "this".
func selfToThisPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "self-to-this",
		Expressions: map[string]pass.ExpressionHook{
			pass.TypeKey(&ast.DeclarationReferenceExpression{}): func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
				n := e.(*ast.DeclarationReferenceExpression)
				if n.Name == "self" {
					n.Name = "this"
				}
				return n, true
			},
		},
	}
}
