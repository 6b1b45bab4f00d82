package rewrite

import (
	"strings"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// tuplesToPairsPass rewrites a 2-element tuple literal used outside a call
// argument into a "Pair(a, b)" constructor call, and its ".0"/".1" member
// accesses into ".first"/".second" ("(.key"/".value" when the receiver's
// type shows it came from a dictionary entry).
func tuplesToPairsPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "tuples-to-pairs",
		Expressions: map[string]pass.ExpressionHook{
			pass.TypeKey(&ast.TupleExpression{}): func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
				n := e.(*ast.TupleExpression)
				def := w.DefaultExpression(n).(*ast.TupleExpression)
				if len(def.Elements) != 2 {
					return def, true
				}
				if _, ok := w.Parent().(*ast.CallExpression); ok {
					return def, true
				}
				return &ast.CallExpression{
					Base:     def.Base,
					Function: &ast.DeclarationReferenceExpression{Name: "Pair"},
					Arguments: []ast.LabeledExpression{
						{Expression: def.Elements[0].Expression},
						{Expression: def.Elements[1].Expression},
					},
				}, true
			},
			pass.TypeKey(&ast.DotExpression{}): func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
				n := e.(*ast.DotExpression)
				def := w.DefaultExpression(n).(*ast.DotExpression)
				isDictEntry := strings.Contains(strings.ToLower(expressionTypeOf(def.Receiver)), "dictionary")
				switch def.Member {
				case "0":
					if isDictEntry {
						def.Member = "key"
					} else {
						def.Member = "first"
					}
				case "1":
					if isDictEntry {
						def.Member = "value"
					} else {
						def.Member = "second"
					}
				}
				return def, true
			},
		},
	}
}

func expressionTypeOf(e ast.Expression) string {
	switch n := e.(type) {
	case *ast.DeclarationReferenceExpression:
		return string(n.Type)
	case *ast.DotExpression:
		return string(n.Type)
	case *ast.CallExpression:
		return string(n.Type)
	case *ast.SubscriptExpression:
		return string(n.Type)
	}
	return ""
}
