package recording

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// inheritanceRecordingPass records each type's declared inheritance list
// against its fully-qualified name. The raw list still contains
// source-only protocol names and raw-representable bases at this point;
// cleanInheritancesPass strips those two passes later.
func inheritanceRecordingPass(ctx *context.Context) *pass.Pass {
	record := func(w *pass.Walker, name string, inherits []string) {
		ctx.RecordInheritance(w.QualifiedName(name), inherits)
	}
	return &pass.Pass{
		PassName: "inheritance-recording",
		Statements: map[string]pass.StatementHook{
			typeKey(&ast.ClassDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.ClassDeclaration)
				record(w, n.Name, n.Inherits)
				return w.DefaultStatement(n), true
			},
			typeKey(&ast.StructDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.StructDeclaration)
				record(w, n.Name, n.Inherits)
				return w.DefaultStatement(n), true
			},
			typeKey(&ast.EnumDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.EnumDeclaration)
				record(w, n.Name, n.Inherits)
				return w.DefaultStatement(n), true
			},
		},
	}
}
