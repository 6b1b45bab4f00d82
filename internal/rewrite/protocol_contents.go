package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// protocolContentsPass clears the body of every function declared directly
// inside a protocol and flags it as an interface requirement, so the
// emitter prints a bodiless signature.
func protocolContentsPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "protocol-contents",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.ProtocolDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.ProtocolDeclaration)
				for _, m := range n.Members {
					if fn, ok := m.(*ast.FunctionDeclaration); ok {
						fn.Body = nil
						fn.IsProtocolInterfaceMember = true
					}
				}
				return w.DefaultStatement(n), true
			},
		},
	}
}
