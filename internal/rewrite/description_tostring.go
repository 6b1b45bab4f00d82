package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// descriptionToStringPass rewrites a "description: String" computed
// property into an overridden "toString(): String" function. Detection
// is structural, a member named "description" typed String, rather than
// nominal, because
// cleanInheritancesPass (round one) has already stripped the source-only
// CustomStringConvertible name out of the declaration's inheritance list
// by the time the second round runs.
func descriptionToStringPass(ctx *context.Context) *pass.Pass {
	rewriteMembers := func(members []ast.Statement) []ast.Statement {
		out := make([]ast.Statement, 0, len(members))
		for _, m := range members {
			v, ok := m.(*ast.VariableDeclaration)
			if !ok || v.Name != "description" || v.Type != "String" || v.Value == nil {
				out = append(out, m)
				continue
			}
			out = append(out, &ast.FunctionDeclaration{
				Base:       v.Base,
				Name:       "toString",
				ReturnType: "String",
				IsOverride: true,
				Access:     v.Access,
				Body:       []ast.Statement{&ast.ReturnStatement{Value: v.Value}},
			})
		}
		return out
	}
	hook := func(rewriteMembers func([]ast.Statement) []ast.Statement, getMembers func(ast.Statement) []ast.Statement, setMembers func(ast.Statement, []ast.Statement)) pass.StatementHook {
		return func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
			setMembers(s, rewriteMembers(getMembers(s)))
			return w.DefaultStatement(s), true
		}
	}
	return &pass.Pass{
		PassName: "description-to-tostring",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.ClassDeclaration{}): hook(rewriteMembers,
				func(s ast.Statement) []ast.Statement { return s.(*ast.ClassDeclaration).Members },
				func(s ast.Statement, m []ast.Statement) { s.(*ast.ClassDeclaration).Members = m }),
			pass.TypeKey(&ast.StructDeclaration{}): hook(rewriteMembers,
				func(s ast.Statement) []ast.Statement { return s.(*ast.StructDeclaration).Members },
				func(s ast.Statement, m []ast.Statement) { s.(*ast.StructDeclaration).Members = m }),
			pass.TypeKey(&ast.EnumDeclaration{}): hook(rewriteMembers,
				func(s ast.Statement) []ast.Statement { return s.(*ast.EnumDeclaration).Members },
				func(s ast.Statement, m []ast.Statement) { s.(*ast.EnumDeclaration).Members = m }),
		},
	}
}
