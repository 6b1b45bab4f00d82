package recording

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// protocolsPass adds every declared protocol's name to the context, so
// later passes can tell a protocol name in an inheritance list apart
// from a class or struct name.
func protocolsPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "protocols",
		Statements: map[string]pass.StatementHook{
			typeKey(&ast.ProtocolDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.ProtocolDeclaration)
				ctx.RecordProtocol(n.Name)
				return nil, false
			},
		},
	}
}
