package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// doubleNegativesInGuardsPass turns a guard into a plain if, normalizing
// its condition instead of wrapping it in another "!": "guard !x" becomes
// "if !x", "guard a != b" becomes "if a == b", "guard a == b" becomes
// "if a != b"; anything else gets a fresh leading "!".
func doubleNegativesInGuardsPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "double-negatives-in-guards",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.IfStatement{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.IfStatement)
				def := singleStatement(w.DefaultStatement(n)).(*ast.IfStatement)
				if !def.IsGuard {
					return []ast.Statement{def}, true
				}
				for i, c := range def.Conditions {
					if c.Expr != nil {
						def.Conditions[i].Expr = negateGuardCondition(c.Expr)
					}
				}
				def.IsGuard = false
				return []ast.Statement{def}, true
			},
		},
	}
}

func negateGuardCondition(expr ast.Expression) ast.Expression {
	switch e := expr.(type) {
	case *ast.PrefixUnaryExpression:
		if e.Operator == "!" {
			return e
		}
	case *ast.BinaryOperatorExpression:
		switch e.Operator {
		case "!=":
			e.Operator = "=="
			return e
		case "==":
			e.Operator = "!="
			return e
		}
	}
	return &ast.PrefixUnaryExpression{Base: baseOf(expr), Operator: "!", Operand: expr}
}

// ifNilReturnToElvisPass rewrites "if x == nil { return ... }", with no
// else branch and nothing else in the body, into the expression statement
// "x ?: return ...".
func ifNilReturnToElvisPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "if-nil-return-to-elvis",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.IfStatement{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.IfStatement)
				def := singleStatement(w.DefaultStatement(n)).(*ast.IfStatement)
				tested, ret, ok := nilReturnGuardShape(def)
				if !ok {
					return []ast.Statement{def}, true
				}
				elvis := &ast.BinaryOperatorExpression{
					Base:     def.Base,
					Left:     tested,
					Operator: "?:",
					Right:    &ast.ReturnExpression{Base: ret.Base, Value: ret.Value},
				}
				return []ast.Statement{&ast.ExpressionStatement{Base: def.Base, Expression: elvis}}, true
			},
		},
	}
}

func nilReturnGuardShape(n *ast.IfStatement) (ast.Expression, *ast.ReturnStatement, bool) {
	if len(n.Else) != 0 || len(n.Conditions) != 1 || len(n.Then) != 1 {
		return nil, nil, false
	}
	bin, ok := n.Conditions[0].Expr.(*ast.BinaryOperatorExpression)
	if !ok || bin.Operator != "==" {
		return nil, nil, false
	}
	ret, ok := n.Then[0].(*ast.ReturnStatement)
	if !ok {
		return nil, nil, false
	}
	if isNilLiteral(bin.Right) {
		return bin.Left, ret, true
	}
	if isNilLiteral(bin.Left) {
		return bin.Right, ret, true
	}
	return nil, nil, false
}
