package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// removeOpenOnInitializersPass downgrades an "open" initializer to
// "public"; the target has no notion of an overridable constructor.
func removeOpenOnInitializersPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "remove-open-on-initializers",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.InitializerDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.InitializerDeclaration)
				if n.Access == "open" {
					n.Access = "public"
				}
				return w.DefaultStatement(n), true
			},
		},
	}
}
