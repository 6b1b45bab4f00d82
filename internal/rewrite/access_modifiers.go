package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

var accessRank = map[string]int{
	"private":   0,
	"protected": 1,
	"internal":  2,
	"public":    3,
}

func moreRestrictive(a, b string) string {
	if accessRank[a] <= accessRank[b] {
		return a
	}
	return b
}

// accessModifiersPass translates the source's access keyword to the
// target's, constraining a nested declaration by its enclosing type's
// effective access, defaulting an unannotated top-level declaration to
// public (and printing nothing when the computed access is public),
// mapping the source-only "fileprivate" to "internal" with a warning, and
// suppressing explicit modifiers entirely on members of a protocol.
func accessModifiersPass(ctx *context.Context) *pass.Pass {
	var accessStack []string
	var protocolStack []bool

	enclosingAccess := func() (string, bool) {
		if len(accessStack) == 0 {
			return "", false
		}
		return accessStack[len(accessStack)-1], true
	}
	insideProtocol := func() bool {
		return len(protocolStack) > 0 && protocolStack[len(protocolStack)-1]
	}

	resolve := func(w *pass.Walker, s ast.Statement, declared string) string {
		effective := declared
		if effective == "fileprivate" {
			ctx.Diagnostics.Warn(s.Range(), "fileprivate has no target equivalent; using internal")
			effective = "internal"
		}
		if effective == "" {
			if enc, ok := enclosingAccess(); ok {
				effective = enc
			} else {
				effective = "public"
			}
		}
		if enc, ok := enclosingAccess(); ok {
			effective = moreRestrictive(effective, enc)
		}
		return effective
	}

	finalize := func(effective string, topLevel bool) string {
		if insideProtocol() {
			return ""
		}
		if topLevel && effective == "public" {
			return ""
		}
		return effective
	}

	typeHook := func(w *pass.Walker, s ast.Statement, declared string, isProtocol bool, setAccess func(string)) []ast.Statement {
		effective := resolve(w, s, declared)
		setAccess(finalize(effective, w.IsTopLevelNode()))
		accessStack = append(accessStack, effective)
		protocolStack = append(protocolStack, isProtocol)
		out := w.DefaultStatement(s)
		accessStack = accessStack[:len(accessStack)-1]
		protocolStack = protocolStack[:len(protocolStack)-1]
		return out
	}

	memberHook := func(w *pass.Walker, s ast.Statement, declared string, setAccess func(string)) []ast.Statement {
		effective := resolve(w, s, declared)
		setAccess(finalize(effective, w.IsTopLevelNode()))
		return w.DefaultStatement(s)
	}

	return &pass.Pass{
		PassName: "access-modifiers",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.ClassDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.ClassDeclaration)
				return typeHook(w, s, n.Access, false, func(a string) { n.Access = a }), true
			},
			pass.TypeKey(&ast.StructDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.StructDeclaration)
				return typeHook(w, s, n.Access, false, func(a string) { n.Access = a }), true
			},
			pass.TypeKey(&ast.EnumDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.EnumDeclaration)
				return typeHook(w, s, n.Access, false, func(a string) { n.Access = a }), true
			},
			pass.TypeKey(&ast.ProtocolDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.ProtocolDeclaration)
				return typeHook(w, s, n.Access, true, func(a string) { n.Access = a }), true
			},
			pass.TypeKey(&ast.FunctionDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.FunctionDeclaration)
				return memberHook(w, s, n.Access, func(a string) { n.Access = a }), true
			},
			pass.TypeKey(&ast.InitializerDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.InitializerDeclaration)
				return memberHook(w, s, n.Access, func(a string) { n.Access = a }), true
			},
			pass.TypeKey(&ast.VariableDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.VariableDeclaration)
				return memberHook(w, s, n.Access, func(a string) { n.Access = a }), true
			},
		},
	}
}
