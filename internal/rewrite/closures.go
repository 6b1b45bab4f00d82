package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/match"
	"github.com/swiftkt/transpile/internal/pass"
)

// anonymousParameterRenamePass renames the source's implicit single-closure
// parameter "$0" to the target's "it".
func anonymousParameterRenamePass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "anonymous-parameter-rename",
		Expressions: map[string]pass.ExpressionHook{
			pass.TypeKey(&ast.DeclarationReferenceExpression{}): func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
				n := e.(*ast.DeclarationReferenceExpression)
				if n.Name == "$0" {
					n.Name = "it"
				}
				return n, true
			},
		},
	}
}

// autoclosuresPass wraps the argument bound to an @autoclosure parameter
// in a zero-parameter closure at the call site. Only calls whose callee
// resolves to a recorded FunctionTranslation (a
// bare identifier, optionally a same-type method) are rewritten; a call
// through an arbitrary expression receiver has no reliable type to look
// the signature up by in this pass's position in the pipeline.
func autoclosuresPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "autoclosures",
		Expressions: map[string]pass.ExpressionHook{
			pass.TypeKey(&ast.CallExpression{}): func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
				n := e.(*ast.CallExpression)
				def := w.DefaultExpression(n).(*ast.CallExpression)

				ref, ok := def.Function.(*ast.DeclarationReferenceExpression)
				if !ok {
					return def, true
				}
				ft, found := ctx.GetFunctionTranslation(ref.Name, w.CurrentType())
				if !found {
					ft, found = ctx.GetFunctionTranslation(ref.Name, "")
				}
				if !found {
					return def, true
				}

				b, ok := match.Match(ft.Parameters, def.Arguments, def.AllowsTrailingClosure)
				if !ok {
					return def, true
				}
				for i, p := range ft.Parameters {
					if !p.IsAutoclosure {
						continue
					}
					for _, argIdx := range b.Indices[i] {
						orig := def.Arguments[argIdx].Expression
						def.Arguments[argIdx].Expression = &ast.ClosureExpression{
							Base: baseOf(orig),
							Body: []ast.Statement{&ast.ExpressionStatement{Expression: orig}},
						}
					}
				}
				return def, true
			},
		},
	}
}

// returnsInLambdasPass elides "return" in a single-statement closure body
// and labels every "return" in a multi-statement closure body with the
// enclosing function's name; an outer return already dropped by the
// switches-to-expression rewrite is left alone.
func returnsInLambdasPass(ctx *context.Context) *pass.Pass {
	p := &pass.Pass{PassName: "returns-in-lambdas"}
	p.Expressions = map[string]pass.ExpressionHook{
		pass.TypeKey(&ast.ClosureExpression{}): func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
			n := e.(*ast.ClosureExpression)
			def := w.DefaultExpression(n).(*ast.ClosureExpression)
			label := w.CurrentLabel()
			if len(def.Body) == 1 {
				if ret, ok := def.Body[0].(*ast.ReturnStatement); ok && ret.Value != nil {
					def.Body[0] = &ast.ExpressionStatement{Base: ret.Base, Expression: ret.Value}
				}
				return def, true
			}
			labeler := &pass.Pass{
				PassName: "label-returns",
				Statements: map[string]pass.StatementHook{
					pass.TypeKey(&ast.ReturnStatement{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
						s.(*ast.ReturnStatement).Label = label
						return []ast.Statement{s}, true
					},
				},
			}
			def.Body = pass.Run(labeler, nil, def.Body)
			return def, true
		},
	}
	return p
}
