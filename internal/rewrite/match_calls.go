package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/match"
	"github.com/swiftkt/transpile/internal/pass"
)

// matchCallsToDeclarationsPass rewrites each call whose callee resolves to
// a recorded declaration using the call-argument matcher: arguments are
// relabeled with the declared (implementation) parameter names, parameters
// at or before the last variadic parameter lose their label, and a failed
// match strips every label and emits a diagnostic instead.
func matchCallsToDeclarationsPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "match-calls-to-declarations",
		Expressions: map[string]pass.ExpressionHook{
			pass.TypeKey(&ast.CallExpression{}): func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
				n := e.(*ast.CallExpression)
				def := w.DefaultExpression(n).(*ast.CallExpression)

				ft, ok := resolveCallee(ctx, w, def)
				if !ok {
					return def, true
				}

				b, ok := match.Match(ft.Parameters, def.Arguments, def.AllowsTrailingClosure)
				if !ok {
					for i := range def.Arguments {
						def.Arguments[i].Label = nil
					}
					ctx.Diagnostics.Warn(def.Range(), "call to %q does not match its declared parameter list; labels dropped", ft.APIName)
					return def, true
				}

				lastVariadic := match.LastVariadicIndex(ft.Parameters)
				newArgs := make([]ast.LabeledExpression, 0, len(def.Arguments))
				for i, p := range ft.Parameters {
					label := parameterDeclLabel(p)
					if i <= lastVariadic {
						label = ""
					}
					for _, argIdx := range b.Indices[i] {
						arg := ast.LabeledExpression{Expression: def.Arguments[argIdx].Expression}
						if label != "" {
							l := label
							arg.Label = &l
						}
						newArgs = append(newArgs, arg)
					}
				}
				def.Arguments = newArgs
				return def, true
			},
		},
	}
}

func parameterDeclLabel(p ast.FunctionParameter) string {
	if p.Label == "_" {
		return ""
	}
	return p.Label
}

func resolveCallee(ctx *context.Context, w *pass.Walker, call *ast.CallExpression) (context.FunctionTranslation, bool) {
	switch fn := call.Function.(type) {
	case *ast.DeclarationReferenceExpression:
		if ft, ok := ctx.GetFunctionTranslation(fn.Name, w.CurrentType()); ok {
			return ft, true
		}
		return ctx.GetFunctionTranslation(fn.Name, "")
	case *ast.DotExpression:
		recvType := ast.TypeName(expressionTypeOf(fn.Receiver)).StripOptional()
		base, _ := recvType.SplitGenericArgs()
		if base == "" {
			base = w.CurrentType()
		}
		return ctx.GetFunctionTranslation(fn.Member, base)
	case *ast.TypeReferenceExpression:
		base, _ := fn.Type.SplitGenericArgs()
		return ctx.GetFunctionTranslation("init", base)
	}
	return context.FunctionTranslation{}, false
}
