package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

var operatorRenames = map[string]string{
	"??":                    "?:",
	"<<":                    "shl",
	">>":                    "shr",
	"&":                     "and",
	"|":                     "or",
	"^":                     "xor",
	"__derived_enum_equals": "==",
}

// renameOperatorsPass rewrites the source's bitwise/coalescing operator
// spellings into the target's.
func renameOperatorsPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "rename-operators",
		Expressions: map[string]pass.ExpressionHook{
			pass.TypeKey(&ast.BinaryOperatorExpression{}): func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
				n := e.(*ast.BinaryOperatorExpression)
				def := w.DefaultExpression(n).(*ast.BinaryOperatorExpression)
				if renamed, ok := operatorRenames[def.Operator]; ok {
					def.Operator = renamed
				}
				return def, true
			},
		},
	}
}
