package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// optionalInitsPass converts a failable initializer into a static "invoke"
// operator returning an optional of the enclosing type; every assignment
// to self inside its body becomes a return of the assigned value.
func optionalInitsPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "optional-inits",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.InitializerDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.InitializerDeclaration)
				if !n.IsOptional {
					return w.DefaultStatement(n), true
				}
				enclosing := w.CurrentType()
				repl := w.DefaultStatement(n)[0].(*ast.InitializerDeclaration)
				body := selfAssignmentsToReturns(repl.Body)
				return []ast.Statement{&ast.FunctionDeclaration{
					Base:       n.Base,
					Name:       "invoke",
					IsStatic:   true,
					Access:     n.Access,
					Parameters: repl.Parameters,
					ReturnType: ast.TypeName(enclosing) + "?",
					Body:       body,
				}}, true
			},
		},
	}
}

// selfAssignmentsToReturns rewrites every "self = rhs" assignment found in
// stmts into "return rhs".
func selfAssignmentsToReturns(stmts []ast.Statement) []ast.Statement {
	p := &pass.Pass{
		PassName: "self-assignment-to-return",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.AssignmentStatement{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.AssignmentStatement)
				if ref, ok := n.Target.(*ast.DeclarationReferenceExpression); ok && ref.Name == "self" {
					return []ast.Statement{&ast.ReturnStatement{Base: n.Base, Value: n.Value}}, true
				}
				return w.DefaultStatement(n), true
			},
		},
	}
	return pass.Run(p, nil, stmts)
}
