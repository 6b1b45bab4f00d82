package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// staticMembersPass gathers every static member of a class/struct/enum
// into a single nested companion object, merging into one already present
// (e.g. synthesized earlier by rawValuesMembersPass) rather than producing
// a second one.
func staticMembersPass(ctx *context.Context) *pass.Pass {
	hook := func(w *pass.Walker, s ast.Statement, members []ast.Statement, set func([]ast.Statement)) ([]ast.Statement, bool) {
		var companion *ast.CompanionObjectDeclaration
		var rest []ast.Statement
		var statics []ast.Statement
		for _, m := range members {
			if c, ok := m.(*ast.CompanionObjectDeclaration); ok && companion == nil {
				companion = c
				continue
			}
			if isStaticMember(m) {
				statics = append(statics, m)
				continue
			}
			rest = append(rest, m)
		}
		if len(statics) == 0 {
			if companion != nil {
				rest = append(rest, companion)
			}
			set(rest)
			return w.DefaultStatement(s), true
		}
		if companion == nil {
			companion = &ast.CompanionObjectDeclaration{Base: ast.Base{SourceHandle: ctx.NewHandle()}}
		}
		companion.Members = append(companion.Members, statics...)
		rest = append(rest, companion)
		set(rest)
		return w.DefaultStatement(s), true
	}
	return &pass.Pass{
		PassName: "static-members",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.ClassDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.ClassDeclaration)
				return hook(w, s, n.Members, func(m []ast.Statement) { n.Members = m })
			},
			pass.TypeKey(&ast.StructDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.StructDeclaration)
				return hook(w, s, n.Members, func(m []ast.Statement) { n.Members = m })
			},
			pass.TypeKey(&ast.EnumDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.EnumDeclaration)
				return hook(w, s, n.Members, func(m []ast.Statement) { n.Members = m })
			},
		},
	}
}

func isStaticMember(m ast.Statement) bool {
	switch n := m.(type) {
	case *ast.VariableDeclaration:
		return n.IsStatic
	case *ast.FunctionDeclaration:
		return n.IsStatic
	}
	return false
}
