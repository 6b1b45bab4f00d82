package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// removeInvalidOverridesPass drops an "override" annotation the target
// would reject: a static member never overrides anything, so any override
// marker on one is a frontend artifact. An initializer can never carry
// one either, InitializerDeclaration has no IsOverride field, so that
// half of the pass is a structural no-op.
func removeInvalidOverridesPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "remove-override-on-statics",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.FunctionDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.FunctionDeclaration)
				if n.IsStatic {
					n.IsOverride = false
				}
				return w.DefaultStatement(n), true
			},
		},
	}
}
