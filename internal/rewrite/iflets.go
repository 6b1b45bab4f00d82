package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// shadowedIfLetToIsPass rewrites "if let x = x as? T { … }" into
// "if (x is T) { … }".
func shadowedIfLetToIsPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "shadowed-if-let-to-is",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.IfStatement{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.IfStatement)
				for i, c := range n.Conditions {
					if c.Variable == nil {
						continue
					}
					bin, ok := c.Variable.Value.(*ast.BinaryOperatorExpression)
					if !ok || bin.Operator != "as?" {
						continue
					}
					ref, ok := bin.Left.(*ast.DeclarationReferenceExpression)
					if !ok || ref.Name != c.Variable.Name {
						continue
					}
					n.Conditions[i] = ast.IfCondition{Expr: &ast.BinaryOperatorExpression{
						Base: bin.Base, Left: ref, Operator: "is", Right: bin.Right, Type: "Bool",
					}}
				}
				return w.DefaultStatement(n), true
			},
		},
	}
}

// parenthesizeOrInIfPass wraps any multi-condition if's "||"-rooted
// condition in parentheses, since the target joins conditions with "&&".
func parenthesizeOrInIfPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "parenthesize-or-in-if",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.IfStatement{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.IfStatement)
				if len(n.Conditions) > 1 {
					for i, c := range n.Conditions {
						if c.Expr == nil {
							continue
						}
						if bin, ok := c.Expr.(*ast.BinaryOperatorExpression); ok && bin.Operator == "||" {
							n.Conditions[i] = ast.IfCondition{Expr: &ast.ParenthesesExpression{Base: bin.Base, Inner: bin}}
						}
					}
				}
				return w.DefaultStatement(n), true
			},
		},
	}
}

// rearrangeIfLetsPass hoists every "if let" binding in an if/else-if chain
// to a statement immediately preceding the if, deduplicating a binding
// name across the chain, turns its condition into a non-nil check, and
// marks later uses of the hoisted identifier inside the matching Then
// block as optional-chained.
func rearrangeIfLetsPass(ctx *context.Context) *pass.Pass {
	p := &pass.Pass{PassName: "rearrange-if-lets"}

	var processChain func(w *pass.Walker, n *ast.IfStatement, seen map[string]bool) []ast.Statement
	processChain = func(w *pass.Walker, n *ast.IfStatement, seen map[string]bool) []ast.Statement {
		var hoisted []ast.Statement
		newConds := make([]ast.IfCondition, 0, len(n.Conditions))
		for _, c := range n.Conditions {
			if c.Variable == nil {
				newConds = append(newConds, c)
				continue
			}
			name := c.Variable.Name
			if !seen[name] {
				seen[name] = true
				hoisted = append(hoisted, c.Variable)
			}
			newConds = append(newConds, ast.IfCondition{Expr: &ast.BinaryOperatorExpression{
				Left:     &ast.DeclarationReferenceExpression{Name: name},
				Operator: "!=",
				Right:    &ast.NilLiteral{},
			}})
			n.Then = markOptionalChained(n.Then, name)
		}
		n.Conditions = newConds
		n.Then = rewriteEach(w, n.Then)
		if len(n.Else) == 1 {
			if elseIf, ok := n.Else[0].(*ast.IfStatement); ok {
				n.Else = processChain(w, elseIf, seen)
			} else {
				n.Else = rewriteEach(w, n.Else)
			}
		} else {
			n.Else = rewriteEach(w, n.Else)
		}
		return append(hoisted, n)
	}

	p.Statements = map[string]pass.StatementHook{
		pass.TypeKey(&ast.IfStatement{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
			return processChain(w, s.(*ast.IfStatement), map[string]bool{}), true
		},
	}
	return p
}

func rewriteEach(w *pass.Walker, stmts []ast.Statement) []ast.Statement {
	if stmts == nil {
		return nil
	}
	out := make([]ast.Statement, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, w.RewriteStatement(s)...)
	}
	return out
}

func markOptionalChained(stmts []ast.Statement, name string) []ast.Statement {
	p := &pass.Pass{
		PassName: "mark-optional-chained",
		Expressions: map[string]pass.ExpressionHook{
			pass.TypeKey(&ast.DeclarationReferenceExpression{}): func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
				n := e.(*ast.DeclarationReferenceExpression)
				if n.Name != name {
					return n, true
				}
				if _, isParentChain := w.Parent().(*ast.OptionalChainExpression); isParentChain {
					return n, true
				}
				return &ast.OptionalChainExpression{Base: n.Base, Inner: n}, true
			},
		},
	}
	return pass.Run(p, nil, stmts)
}
