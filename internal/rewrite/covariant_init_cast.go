package rewrite

import (
	"strings"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// covariantInitCastPass rewrites a collection constructor call like
// "MutableList<T>(seq)" into "seq.toMutableList<T>()", and a conditional
// or forced collection cast like "xs.as(List<T>.self)" / "xs.forceCast(...)"
// into "xs.castOrNull<T>()" / "xs.cast<T>()" (with a "Mutable" infix when
// the target is a mutable collection).
func covariantInitCastPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "covariant-init-cast",
		Expressions: map[string]pass.ExpressionHook{
			pass.TypeKey(&ast.CallExpression{}): func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
				n := e.(*ast.CallExpression)
				def := w.DefaultExpression(n).(*ast.CallExpression)

				if tref, ok := def.Function.(*ast.TypeReferenceExpression); ok {
					if repl, ok := rewriteCollectionConstructor(def, tref); ok {
						return repl, true
					}
				}
				if dot, ok := def.Function.(*ast.DotExpression); ok {
					if repl, ok := rewriteCollectionCast(def, dot); ok {
						return repl, true
					}
				}
				return def, true
			},
		},
	}
}

func rewriteCollectionConstructor(call *ast.CallExpression, tref *ast.TypeReferenceExpression) (ast.Expression, bool) {
	base, args := tref.Type.SplitGenericArgs()
	var target string
	switch base {
	case "MutableList":
		target = "toMutableList"
	case "List":
		target = "toList"
	default:
		return nil, false
	}
	if len(call.Arguments) != 1 || call.Arguments[0].Label != nil {
		return nil, false
	}
	if len(args) > 0 {
		target += "<" + strings.Join(args, ", ") + ">"
	}
	return &ast.CallExpression{
		Base:     call.Base,
		Function: &ast.DotExpression{Receiver: call.Arguments[0].Expression, Member: target},
	}, true
}

func rewriteCollectionCast(call *ast.CallExpression, dot *ast.DotExpression) (ast.Expression, bool) {
	if dot.Member != "as" && dot.Member != "forceCast" {
		return nil, false
	}
	if len(call.Arguments) != 1 {
		return nil, false
	}
	tref, ok := call.Arguments[0].Expression.(*ast.TypeReferenceExpression)
	if !ok {
		return nil, false
	}
	base, args := tref.Type.SplitGenericArgs()
	member := "cast"
	if strings.HasPrefix(base, "Mutable") {
		member += "Mutable"
	}
	if dot.Member == "as" {
		member += "OrNull"
	}
	if len(args) > 0 {
		member += "<" + strings.Join(args, ", ") + ">"
	}
	return &ast.CallExpression{
		Base:     call.Base,
		Function: &ast.DotExpression{Receiver: dot.Receiver, Member: member},
	}, true
}
