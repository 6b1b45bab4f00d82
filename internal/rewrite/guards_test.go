package rewrite

import (
	"testing"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/config"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

func TestDoubleNegativesInGuardsKeepsPrefixNotUnchanged(t *testing.T) {
	ctx := context.New(config.Default())
	cond := &ast.PrefixUnaryExpression{Operator: "!", Operand: &ast.DeclarationReferenceExpression{Name: "ok"}}
	guard := &ast.IfStatement{
		IsGuard:    true,
		Conditions: []ast.IfCondition{{Expr: cond}},
		Else:       []ast.Statement{&ast.ReturnStatement{}},
	}

	out := pass.Run(doubleNegativesInGuardsPass(ctx), ctx, []ast.Statement{guard})

	rewritten := out[0].(*ast.IfStatement)
	if rewritten.IsGuard {
		t.Fatalf("expected IsGuard to be cleared")
	}
	got, ok := rewritten.Conditions[0].Expr.(*ast.PrefixUnaryExpression)
	if !ok || got.Operator != "!" || got != cond {
		t.Fatalf("expected the prefix-not condition to be reused unchanged, got %+v", rewritten.Conditions[0].Expr)
	}
}

func TestDoubleNegativesInGuardsFlipsNotEqualToEqual(t *testing.T) {
	ctx := context.New(config.Default())
	cond := &ast.BinaryOperatorExpression{
		Left:     &ast.DeclarationReferenceExpression{Name: "a"},
		Operator: "!=",
		Right:    &ast.DeclarationReferenceExpression{Name: "b"},
	}
	guard := &ast.IfStatement{IsGuard: true, Conditions: []ast.IfCondition{{Expr: cond}}}

	out := pass.Run(doubleNegativesInGuardsPass(ctx), ctx, []ast.Statement{guard})

	rewritten := out[0].(*ast.IfStatement)
	got := rewritten.Conditions[0].Expr.(*ast.BinaryOperatorExpression)
	if got.Operator != "==" {
		t.Fatalf("expected != to flip to ==, got %q", got.Operator)
	}
}

func TestDoubleNegativesInGuardsFlipsEqualToNotEqual(t *testing.T) {
	ctx := context.New(config.Default())
	cond := &ast.BinaryOperatorExpression{
		Left:     &ast.DeclarationReferenceExpression{Name: "a"},
		Operator: "==",
		Right:    &ast.DeclarationReferenceExpression{Name: "b"},
	}
	guard := &ast.IfStatement{IsGuard: true, Conditions: []ast.IfCondition{{Expr: cond}}}

	out := pass.Run(doubleNegativesInGuardsPass(ctx), ctx, []ast.Statement{guard})

	rewritten := out[0].(*ast.IfStatement)
	got := rewritten.Conditions[0].Expr.(*ast.BinaryOperatorExpression)
	if got.Operator != "!=" {
		t.Fatalf("expected == to flip to !=, got %q", got.Operator)
	}
}

func TestDoubleNegativesInGuardsWrapsOtherConditionsInNot(t *testing.T) {
	ctx := context.New(config.Default())
	cond := &ast.DeclarationReferenceExpression{Name: "flag"}
	guard := &ast.IfStatement{IsGuard: true, Conditions: []ast.IfCondition{{Expr: cond}}}

	out := pass.Run(doubleNegativesInGuardsPass(ctx), ctx, []ast.Statement{guard})

	rewritten := out[0].(*ast.IfStatement)
	wrapped, ok := rewritten.Conditions[0].Expr.(*ast.PrefixUnaryExpression)
	if !ok || wrapped.Operator != "!" || wrapped.Operand != cond {
		t.Fatalf("expected a fresh ! wrap around the bare condition, got %+v", rewritten.Conditions[0].Expr)
	}
}

func TestDoubleNegativesInGuardsLeavesNonGuardIfAlone(t *testing.T) {
	ctx := context.New(config.Default())
	cond := &ast.DeclarationReferenceExpression{Name: "flag"}
	ifStmt := &ast.IfStatement{IsGuard: false, Conditions: []ast.IfCondition{{Expr: cond}}}

	out := pass.Run(doubleNegativesInGuardsPass(ctx), ctx, []ast.Statement{ifStmt})

	rewritten := out[0].(*ast.IfStatement)
	if rewritten.Conditions[0].Expr != cond {
		t.Fatalf("expected a plain if's condition to be left untouched")
	}
}

func TestIfNilReturnToElvisRewritesMatchingShape(t *testing.T) {
	ctx := context.New(config.Default())
	tested := &ast.DeclarationReferenceExpression{Name: "value"}
	cond := &ast.BinaryOperatorExpression{Left: tested, Operator: "==", Right: &ast.NilLiteral{}}
	retStmt := &ast.ReturnStatement{Value: &ast.NilLiteral{}}
	ifStmt := &ast.IfStatement{
		Conditions: []ast.IfCondition{{Expr: cond}},
		Then:       []ast.Statement{retStmt},
	}

	out := pass.Run(ifNilReturnToElvisPass(ctx), ctx, []ast.Statement{ifStmt})

	exprStmt, ok := out[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected an expression statement, got %T", out[0])
	}
	elvis, ok := exprStmt.Expression.(*ast.BinaryOperatorExpression)
	if !ok || elvis.Operator != "?:" {
		t.Fatalf("expected an elvis expression, got %+v", exprStmt.Expression)
	}
	if elvis.Left != tested {
		t.Fatalf("expected the tested value to be reused as the elvis left side")
	}
	ret, ok := elvis.Right.(*ast.ReturnExpression)
	if !ok || ret.Value != retStmt.Value {
		t.Fatalf("expected the right side to be the original return's value, got %+v", elvis.Right)
	}
}

func TestIfNilReturnToElvisLeavesIfWithElseAlone(t *testing.T) {
	ctx := context.New(config.Default())
	cond := &ast.BinaryOperatorExpression{
		Left:     &ast.DeclarationReferenceExpression{Name: "value"},
		Operator: "==",
		Right:    &ast.NilLiteral{},
	}
	ifStmt := &ast.IfStatement{
		Conditions: []ast.IfCondition{{Expr: cond}},
		Then:       []ast.Statement{&ast.ReturnStatement{}},
		Else:       []ast.Statement{&ast.ExpressionStatement{Expression: &ast.DeclarationReferenceExpression{Name: "log"}}},
	}

	out := pass.Run(ifNilReturnToElvisPass(ctx), ctx, []ast.Statement{ifStmt})

	if _, ok := out[0].(*ast.IfStatement); !ok {
		t.Fatalf("expected the if with an else branch to be left as an if, got %T", out[0])
	}
}
