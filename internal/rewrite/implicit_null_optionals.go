package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// implicitNullOptionalsPass gives an explicit "= null" initializer to
// every optional-typed variable declared without one.
func implicitNullOptionalsPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "implicit-null-optionals",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.VariableDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.VariableDeclaration)
				if n.Value == nil && n.Type.IsOptional() {
					n.Value = &ast.NilLiteral{Base: n.Base}
				}
				return w.DefaultStatement(n), true
			},
		},
	}
}
