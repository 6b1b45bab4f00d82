package recording

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// initializerRecordingPass registers the signature of every declared
// initializer, so the call-argument matcher can later bind an
// initializer call's arguments the same way it binds a function call's.
func initializerRecordingPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "initializer-recording",
		Statements: map[string]pass.StatementHook{
			typeKey(&ast.InitializerDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.InitializerDeclaration)
				ctx.RecordFunctionTranslation(context.FunctionTranslation{
					APIName:    "init",
					Type:       w.CurrentType(),
					Prefix:     "init",
					Parameters: n.Parameters,
				})
				return nil, false
			},
		},
	}
}
