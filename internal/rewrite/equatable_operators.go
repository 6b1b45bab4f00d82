package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// equatableOperatorsPass rewrites a declared static "==(lhs, rhs)" into
// the target's instance "equals(other)", guarded by a leading type check
// that returns false on mismatch.
func equatableOperatorsPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "equatable-operators",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.FunctionDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.FunctionDeclaration)
				if n.Name != "==" || len(n.Parameters) != 2 {
					return w.DefaultStatement(n), true
				}
				enclosing := w.CurrentType()
				lhsName, rhsName := n.Parameters[0].Label, n.Parameters[1].Label

				guard := &ast.IfStatement{
					Conditions: []ast.IfCondition{{
						Expr: &ast.PrefixUnaryExpression{
							Operator: "!",
							Operand: &ast.ParenthesesExpression{Inner: &ast.BinaryOperatorExpression{
								Left:     &ast.DeclarationReferenceExpression{Name: "other"},
								Operator: "is",
								Right:    &ast.TypeReferenceExpression{Type: ast.TypeName(enclosing)},
							}},
						},
					}},
					Then: []ast.Statement{&ast.ReturnStatement{Value: &ast.BoolLiteral{Value: false}}},
				}

				body := renameReferences(n.Body, map[string]string{lhsName: "this", rhsName: "other"})

				return []ast.Statement{&ast.FunctionDeclaration{
					Base:       n.Base,
					Name:       "equals",
					Parameters: []ast.FunctionParameter{{Label: "other", APILabel: "other", Type: "Any?"}},
					ReturnType: "Boolean",
					IsOverride: true,
					Access:     n.Access,
					Body:       append([]ast.Statement{guard}, body...),
				}}, true
			},
		},
	}
}

// renameReferences substitutes every DeclarationReferenceExpression whose
// Name is a key of names with that key's replacement, leaving everything
// else untouched. Used wherever a rewrite pass turns a free parameter
// into an implicit receiver or a differently-named one.
func renameReferences(stmts []ast.Statement, names map[string]string) []ast.Statement {
	p := &pass.Pass{
		PassName: "rename-references",
		Expressions: map[string]pass.ExpressionHook{
			pass.TypeKey(&ast.DeclarationReferenceExpression{}): func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
				n := e.(*ast.DeclarationReferenceExpression)
				if to, ok := names[n.Name]; ok {
					n.Name = to
				}
				return n, true
			},
		},
	}
	return pass.Run(p, nil, stmts)
}
