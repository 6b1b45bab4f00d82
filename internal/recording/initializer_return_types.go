package recording

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/pass"
)

// initializerReturnTypesPass fills in the enclosing type's name as the
// return type of every initializer. The frontend never sets this since
// the source language's initializers have no declared return type.
func initializerReturnTypesPass() *pass.Pass {
	return &pass.Pass{
		PassName: "initializer-return-types",
		Statements: map[string]pass.StatementHook{
			typeKey(&ast.InitializerDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.InitializerDeclaration)
				n.ReturnType = ast.TypeName(w.CurrentType())
				return w.DefaultStatement(n), true
			},
		},
	}
}
