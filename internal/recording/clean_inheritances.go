package recording

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// cleanInheritancesPass removes source-only protocol names and
// raw-representable bases from every inheritance list, both on the
// declaration node itself and in the context's recorded copy. Must run
// after inheritanceRecordingPass and before enumRecordingPass, which
// classifies on the cleaned list.
func cleanInheritancesPass(ctx *context.Context) *pass.Pass {
	clean := func(w *pass.Walker, name string, inherits []string) []string {
		filtered := make([]string, 0, len(inherits))
		for _, base := range inherits {
			if sourceOnlyProtocols[base] || isRawFamily(base) {
				continue
			}
			filtered = append(filtered, base)
		}
		ctx.SetInheritance(w.QualifiedName(name), filtered)
		return filtered
	}
	return &pass.Pass{
		PassName: "clean-inheritances",
		Statements: map[string]pass.StatementHook{
			typeKey(&ast.ClassDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.ClassDeclaration)
				n.Inherits = clean(w, n.Name, n.Inherits)
				return w.DefaultStatement(n), true
			},
			typeKey(&ast.StructDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.StructDeclaration)
				n.Inherits = clean(w, n.Name, n.Inherits)
				return w.DefaultStatement(n), true
			},
			typeKey(&ast.EnumDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.EnumDeclaration)
				n.Inherits = clean(w, n.Name, n.Inherits)
				return w.DefaultStatement(n), true
			},
		},
	}
}
