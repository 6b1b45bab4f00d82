package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// catchVariableSynthesisPass gives a bindingless "catch" a synthetic
// "_error: Error" binding.
func catchVariableSynthesisPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "catch-variable-synthesis",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.DoStatement{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.DoStatement)
				for i, c := range n.Catches {
					if c.Binding == "" {
						n.Catches[i].Binding = "_error"
						if c.Type == "" {
							n.Catches[i].Type = "Error"
						}
					}
				}
				return w.DefaultStatement(n), true
			},
		},
	}
}
