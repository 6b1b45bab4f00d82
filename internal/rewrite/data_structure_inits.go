package rewrite

import (
	"strings"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

var dataStructureFactories = map[string]string{
	"MutableList": "mutableListOf",
	"List":        "listOf",
	"MutableMap":  "mutableMapOf",
	"Map":         "mapOf",
}

// dataStructureInitializersPass rewrites an empty collection constructor
// call, e.g. "MutableList<T>()", into the target's factory function call,
// e.g. "mutableListOf<T>()". Runs after the covariant-init-cast pass,
// which already converts the
// from-a-sequence constructor form, so only the zero-argument form remains
// here.
func dataStructureInitializersPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "data-structure-initializers",
		Expressions: map[string]pass.ExpressionHook{
			pass.TypeKey(&ast.CallExpression{}): func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
				n := e.(*ast.CallExpression)
				def := w.DefaultExpression(n).(*ast.CallExpression)
				tref, ok := def.Function.(*ast.TypeReferenceExpression)
				if !ok || len(def.Arguments) != 0 {
					return def, true
				}
				base, args := tref.Type.SplitGenericArgs()
				factory, ok := dataStructureFactories[base]
				if !ok {
					return def, true
				}
				if len(args) > 0 {
					factory += "<" + strings.Join(args, ", ") + ">"
				}
				def.Function = &ast.DeclarationReferenceExpression{Base: tref.Base, Name: factory}
				return def, true
			},
		},
	}
}
