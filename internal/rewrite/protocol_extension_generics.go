package rewrite

import (
	"strings"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// protocolExtensionGenericsPass strips the synthetic "Self: Protocol"
// conformance constraint the frontend attaches to a protocol-extension
// member's generic parameter list; it has no meaning once the member has
// been inlined onto a concrete type. The generic-parameter propagation
// half of this pass already happened in
// removeExtensionsPass, which is the only point the extension's own
// parameter list is still reachable; see DESIGN.md.
func protocolExtensionGenericsPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "protocol-extension-generics",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.FunctionDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.FunctionDeclaration)
				n.GenericParameters = stripSelfConstraint(n.GenericParameters)
				return w.DefaultStatement(n), true
			},
			pass.TypeKey(&ast.ClassDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.ClassDeclaration)
				n.GenericParameters = stripSelfConstraint(n.GenericParameters)
				return w.DefaultStatement(n), true
			},
			pass.TypeKey(&ast.StructDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.StructDeclaration)
				n.GenericParameters = stripSelfConstraint(n.GenericParameters)
				return w.DefaultStatement(n), true
			},
		},
	}
}

func stripSelfConstraint(params []string) []string {
	if len(params) == 0 {
		return params
	}
	out := make([]string, 0, len(params))
	for _, p := range params {
		if p == "Self" || strings.HasPrefix(p, "Self:") || strings.HasPrefix(p, "Self ") {
			continue
		}
		out = append(out, p)
	}
	return out
}
