package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// superCallsToHeadersPass extracts the single allowed top-level
// "super.init(...)" call out of an initializer body into SuperCall, for
// the emitter to print as part of the declaration header rather than the
// body. A second super-call is left in place and warned about.
func superCallsToHeadersPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "super-calls-to-headers",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.InitializerDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.InitializerDeclaration)
				def := w.DefaultStatement(n)[0].(*ast.InitializerDeclaration)

				var body []ast.Statement
				found := 0
				for _, st := range def.Body {
					call, ok := superInitCall(st)
					if !ok {
						body = append(body, st)
						continue
					}
					found++
					if found == 1 {
						def.SuperCall = call
						continue
					}
					ctx.Diagnostics.Warn(st.Range(), "initializer has more than one super.init(...) call")
					body = append(body, st)
				}
				def.Body = body
				return []ast.Statement{def}, true
			},
		},
	}
}

func superInitCall(s ast.Statement) (*ast.CallExpression, bool) {
	es, ok := s.(*ast.ExpressionStatement)
	if !ok {
		return nil, false
	}
	call, ok := es.Expression.(*ast.CallExpression)
	if !ok {
		return nil, false
	}
	dot, ok := call.Function.(*ast.DotExpression)
	if !ok || dot.Member != "init" {
		return nil, false
	}
	ref, ok := dot.Receiver.(*ast.DeclarationReferenceExpression)
	if !ok || ref.Name != "super" {
		return nil, false
	}
	return call, true
}
