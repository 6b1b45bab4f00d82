package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// openDeclarationsPass decides the final IsOpen flag on classes and their
// methods: an explicit "open" access wins; an explicit "final" (IsFinal)
// or "private" access forces it closed; a static member or any member of a
// struct/enum is never open; otherwise the frontend-provided default
// survives untouched.
func openDeclarationsPass(ctx *context.Context) *pass.Pass {
	var kindStack []string
	currentKind := func() string {
		if len(kindStack) == 0 {
			return ""
		}
		return kindStack[len(kindStack)-1]
	}
	withKind := func(w *pass.Walker, s ast.Statement, kind string) []ast.Statement {
		kindStack = append(kindStack, kind)
		out := w.DefaultStatement(s)
		kindStack = kindStack[:len(kindStack)-1]
		return out
	}

	return &pass.Pass{
		PassName: "open-declarations",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.ClassDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.ClassDeclaration)
				switch {
				case n.Access == "open":
					n.IsOpen = true
				case n.IsFinal, n.Access == "private":
					n.IsOpen = false
				}
				return withKind(w, s, "class"), true
			},
			pass.TypeKey(&ast.StructDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				return withKind(w, s, "struct"), true
			},
			pass.TypeKey(&ast.EnumDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				return withKind(w, s, "enum"), true
			},
			pass.TypeKey(&ast.ProtocolDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				return withKind(w, s, "protocol"), true
			},
			pass.TypeKey(&ast.FunctionDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.FunctionDeclaration)
				switch {
				case n.IsStatic, currentKind() == "struct", currentKind() == "enum":
					n.IsOpen = false
				case n.Access == "open":
					n.IsOpen = true
				case n.Access == "private":
					n.IsOpen = false
				}
				return w.DefaultStatement(n), true
			},
		},
	}
}
