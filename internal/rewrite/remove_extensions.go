package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// removeExtensionsPass inlines an extension's members into the extended
// type by tagging each member's ExtendsType, then splices those members in
// place of the extension wrapper, which is dropped entirely. The emitter
// groups members by ExtendsType when assembling
// the extended type's final member list.
func removeExtensionsPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "remove-extensions",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.ExtensionDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.ExtensionDeclaration)
				rewritten := w.DefaultStatement(n)[0].(*ast.ExtensionDeclaration)
				for _, m := range rewritten.Members {
					switch mm := m.(type) {
					case *ast.FunctionDeclaration:
						mm.ExtendsType = string(n.ExtendedType)
						if len(n.GenericParameters) > 0 {
							mm.GenericParameters = append(append([]string(nil), n.GenericParameters...), mm.GenericParameters...)
						}
					case *ast.VariableDeclaration:
						mm.ExtendsType = string(n.ExtendedType)
					}
				}
				return rewritten.Members, true
			},
		},
	}
}
