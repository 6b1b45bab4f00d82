package recording

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// enumRecordingPass classifies every enum as enum-class (no associated
// values anywhere and no remaining superclass) or sealed-class
// (otherwise), and records its declaration for later element lookups.
// Must run after cleanInheritancesPass: a pre-clean Inherits list would
// still carry raw-representable bases that this pass would otherwise
// mistake for a real superclass.
func enumRecordingPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "enum-recording",
		Statements: map[string]pass.StatementHook{
			typeKey(&ast.EnumDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.EnumDeclaration)
				fqType := w.QualifiedName(n.Name)

				sealed := false
				for _, base := range n.Inherits {
					if !ctx.IsProtocol(base) {
						sealed = true
					}
				}
				for _, el := range n.Elements {
					if el.IsSealed() {
						sealed = true
						break
					}
				}
				if sealed {
					ctx.MarkSealedClass(fqType)
				} else {
					ctx.MarkEnumClass(fqType)
				}
				ctx.RecordEnumDecl(fqType, n)
				return w.DefaultStatement(n), true
			},
		},
	}
}
