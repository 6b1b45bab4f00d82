package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// optionalsInConditionalCastsPass strips a redundant outer optional layer
// off the left-hand operand of "opt as? T", which would otherwise type as
// a double optional once the cast itself adds one.
func optionalsInConditionalCastsPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "optionals-in-conditional-casts",
		Expressions: map[string]pass.ExpressionHook{
			pass.TypeKey(&ast.BinaryOperatorExpression{}): func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
				n := e.(*ast.BinaryOperatorExpression)
				def := w.DefaultExpression(n).(*ast.BinaryOperatorExpression)
				if def.Operator != "as?" {
					return def, true
				}
				if t := expressionTypeOf(def.Left); ast.TypeName(t).IsDoubleOptional() {
					setExpressionType(def.Left, ast.TypeName(t).StripOptional())
				}
				return def, true
			},
		},
	}
}

func setExpressionType(e ast.Expression, t ast.TypeName) {
	switch n := e.(type) {
	case *ast.DeclarationReferenceExpression:
		n.Type = t
	case *ast.DotExpression:
		n.Type = t
	case *ast.CallExpression:
		n.Type = t
	case *ast.SubscriptExpression:
		n.Type = t
	case *ast.BinaryOperatorExpression:
		n.Type = t
	case *ast.PrefixUnaryExpression:
		n.Type = t
	case *ast.PostfixUnaryExpression:
		n.Type = t
	case *ast.TernaryIfExpression:
		n.Type = t
	case *ast.ClosureExpression:
		n.Type = t
	case *ast.TupleExpression:
		n.Type = t
	case *ast.ArrayExpression:
		n.Type = t
	case *ast.DictionaryExpression:
		n.Type = t
	}
}
