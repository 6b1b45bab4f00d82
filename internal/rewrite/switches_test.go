package rewrite

import (
	"testing"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/config"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

func TestCharactersInSwitchesConvertsSingleRuneStringCases(t *testing.T) {
	ctx := context.New(config.Default())
	sw := &ast.SwitchStatement{
		Subject: &ast.DeclarationReferenceExpression{Name: "c", Type: "Character"},
		Cases: []ast.SwitchCase{
			{Expressions: []ast.Expression{&ast.StringLiteral{Value: "a"}}, Statements: []ast.Statement{&ast.BreakStatement{}}},
		},
	}

	out := pass.Run(charactersInSwitchesPass(ctx), ctx, []ast.Statement{sw})

	rewritten := out[0].(*ast.SwitchStatement)
	charLit, ok := rewritten.Cases[0].Expressions[0].(*ast.CharacterLiteral)
	if !ok || charLit.Value != 'a' {
		t.Fatalf("expected the case to become a character literal, got %+v", rewritten.Cases[0].Expressions[0])
	}
}

func TestCharactersInSwitchesLeavesStringSwitchAlone(t *testing.T) {
	ctx := context.New(config.Default())
	sw := &ast.SwitchStatement{
		Subject: &ast.DeclarationReferenceExpression{Name: "s", Type: "String"},
		Cases: []ast.SwitchCase{
			{Expressions: []ast.Expression{&ast.StringLiteral{Value: "a"}}, Statements: []ast.Statement{&ast.BreakStatement{}}},
		},
	}

	out := pass.Run(charactersInSwitchesPass(ctx), ctx, []ast.Statement{sw})

	rewritten := out[0].(*ast.SwitchStatement)
	if _, ok := rewritten.Cases[0].Expressions[0].(*ast.StringLiteral); !ok {
		t.Fatalf("expected a string-subject switch's cases to stay string literals")
	}
}

func TestCapitalizeEnumsCapitalizesSealedClassCases(t *testing.T) {
	ctx := context.New(config.Default())
	ctx.MarkSealedClass("Shape")
	decl := &ast.EnumDeclaration{
		Name:     "Shape",
		Elements: []ast.EnumElement{{Name: "circle"}, {Name: "square"}},
	}

	pass.Run(capitalizeEnumsPass(ctx), ctx, []ast.Statement{decl})

	if decl.Elements[0].Name != "Circle" || decl.Elements[1].Name != "Square" {
		t.Fatalf("expected sealed-class case names to be capitalized, got %+v", decl.Elements)
	}
}

func TestCapitalizeEnumsUpperSnakeCasesEnumClassCases(t *testing.T) {
	ctx := context.New(config.Default())
	ctx.MarkEnumClass("Direction")
	decl := &ast.EnumDeclaration{
		Name:     "Direction",
		Elements: []ast.EnumElement{{Name: "north"}, {Name: "southWest"}},
	}

	pass.Run(capitalizeEnumsPass(ctx), ctx, []ast.Statement{decl})

	if decl.Elements[0].Name != "NORTH" || decl.Elements[1].Name != "SOUTH_WEST" {
		t.Fatalf("expected enum-class case names to be upper-snake-cased, got %+v", decl.Elements)
	}
}

func TestCapitalizeEnumsRenamesDotReferenceAtUseSite(t *testing.T) {
	ctx := context.New(config.Default())
	ctx.MarkSealedClass("Shape")
	ref := &ast.DotExpression{
		Receiver: &ast.TypeReferenceExpression{Type: "Shape"},
		Member:   "circle",
	}
	stmt := &ast.ExpressionStatement{Expression: ref}

	pass.Run(capitalizeEnumsPass(ctx), ctx, []ast.Statement{stmt})

	got := stmt.Expression.(*ast.DotExpression)
	if got.Member != "Circle" {
		t.Fatalf("expected the use-site reference to be capitalized, got %q", got.Member)
	}
}

func TestIsInSwitchesIfsRewritesSealedCaseToTypeReference(t *testing.T) {
	ctx := context.New(config.Default())
	ctx.MarkSealedClass("Shape")
	sw := &ast.SwitchStatement{
		Subject: &ast.DeclarationReferenceExpression{Name: "s", Type: "Shape"},
		Cases: []ast.SwitchCase{
			{
				Expressions: []ast.Expression{&ast.DotExpression{
					Receiver: &ast.TypeReferenceExpression{Type: "Shape"},
					Member:   "Circle",
				}},
				Statements: []ast.Statement{&ast.BreakStatement{}},
			},
		},
	}

	out := pass.Run(isInSwitchesIfsPass(ctx), ctx, []ast.Statement{sw})

	rewritten := out[0].(*ast.SwitchStatement)
	tref, ok := rewritten.Cases[0].Expressions[0].(*ast.TypeReferenceExpression)
	if !ok || tref.Type != "Circle" {
		t.Fatalf("expected the case test to become a bare type reference, got %+v", rewritten.Cases[0].Expressions[0])
	}
}

func TestIsInSwitchesIfsRewritesIfCaseEqualityToIs(t *testing.T) {
	ctx := context.New(config.Default())
	ctx.MarkSealedClass("Shape")
	bin := &ast.BinaryOperatorExpression{
		Left:     &ast.DeclarationReferenceExpression{Name: "s"},
		Operator: "==",
		Right: &ast.DotExpression{
			Receiver: &ast.TypeReferenceExpression{Type: "Shape"},
			Member:   "Circle",
		},
	}
	ifStmt := &ast.IfStatement{Conditions: []ast.IfCondition{{Expr: bin}}}

	out := pass.Run(isInSwitchesIfsPass(ctx), ctx, []ast.Statement{ifStmt})

	rewritten := out[0].(*ast.IfStatement)
	got := rewritten.Conditions[0].Expr.(*ast.BinaryOperatorExpression)
	if got.Operator != "is" {
		t.Fatalf("expected == to become is, got %q", got.Operator)
	}
	if _, ok := got.Right.(*ast.TypeReferenceExpression); !ok {
		t.Fatalf("expected the right side to become a bare type reference, got %+v", got.Right)
	}
}

func TestIsInSwitchesIfsLeavesEnumClassEqualityAsEquals(t *testing.T) {
	ctx := context.New(config.Default())
	ctx.MarkEnumClass("Direction")
	bin := &ast.BinaryOperatorExpression{
		Left:     &ast.DeclarationReferenceExpression{Name: "d"},
		Operator: "==",
		Right: &ast.DotExpression{
			Receiver: &ast.TypeReferenceExpression{Type: "Direction"},
			Member:   "NORTH",
		},
	}
	ifStmt := &ast.IfStatement{Conditions: []ast.IfCondition{{Expr: bin}}}

	out := pass.Run(isInSwitchesIfsPass(ctx), ctx, []ast.Statement{ifStmt})

	rewritten := out[0].(*ast.IfStatement)
	got := rewritten.Conditions[0].Expr.(*ast.BinaryOperatorExpression)
	if got.Operator != "==" {
		t.Fatalf("expected enum-class comparison to stay ==, got %q", got.Operator)
	}
}

func TestRemoveBreaksInSwitchesDropsBareBreakCases(t *testing.T) {
	ctx := context.New(config.Default())
	sw := &ast.SwitchStatement{
		Subject: &ast.DeclarationReferenceExpression{Name: "s"},
		Cases: []ast.SwitchCase{
			{Expressions: []ast.Expression{&ast.StringLiteral{Value: "a"}}, Statements: []ast.Statement{&ast.BreakStatement{}}},
			{Expressions: []ast.Expression{&ast.StringLiteral{Value: "b"}}, Statements: []ast.Statement{&ast.ExpressionStatement{}}},
		},
	}

	out := pass.Run(removeBreaksInSwitchesPass(ctx), ctx, []ast.Statement{sw})

	rewritten := out[0].(*ast.SwitchStatement)
	if len(rewritten.Cases) != 1 {
		t.Fatalf("expected exactly one case to survive, got %d", len(rewritten.Cases))
	}
}

func TestSwitchesToExpressionsLiftsReturnExpressions(t *testing.T) {
	ctx := context.New(config.Default())
	sw := &ast.SwitchStatement{
		Subject: &ast.DeclarationReferenceExpression{Name: "s"},
		Cases: []ast.SwitchCase{
			{Expressions: []ast.Expression{&ast.StringLiteral{Value: "a"}}, Statements: []ast.Statement{&ast.ReturnStatement{Value: &ast.IntegerLiteral{Value: 1}}}},
			{Statements: []ast.Statement{&ast.ReturnStatement{Value: &ast.IntegerLiteral{Value: 2}}}},
		},
	}

	out := pass.Run(switchesToExpressionsPass(ctx), ctx, []ast.Statement{sw})

	ret, ok := out[0].(*ast.ReturnStatement)
	if !ok {
		t.Fatalf("expected the switch to be lifted into a single return statement, got %T", out[0])
	}
	expr, ok := ret.Value.(*ast.SwitchExpression)
	if !ok || len(expr.Cases) != 2 {
		t.Fatalf("expected a two-case switch expression, got %+v", ret.Value)
	}
}

func TestSwitchesToExpressionsLiftsSameTargetAssignments(t *testing.T) {
	ctx := context.New(config.Default())
	target := func() ast.Expression { return &ast.DeclarationReferenceExpression{Name: "x"} }
	sw := &ast.SwitchStatement{
		Subject: &ast.DeclarationReferenceExpression{Name: "s"},
		Cases: []ast.SwitchCase{
			{Expressions: []ast.Expression{&ast.StringLiteral{Value: "a"}}, Statements: []ast.Statement{
				&ast.AssignmentStatement{Target: target(), Value: &ast.IntegerLiteral{Value: 1}, Operator: ast.AssignPlain},
			}},
			{Statements: []ast.Statement{
				&ast.AssignmentStatement{Target: target(), Value: &ast.IntegerLiteral{Value: 2}, Operator: ast.AssignPlain},
			}},
		},
	}

	out := pass.Run(switchesToExpressionsPass(ctx), ctx, []ast.Statement{sw})

	asn, ok := out[0].(*ast.AssignmentStatement)
	if !ok {
		t.Fatalf("expected the switch to be lifted into a single assignment statement, got %T", out[0])
	}
	if _, ok := asn.Value.(*ast.SwitchExpression); !ok {
		t.Fatalf("expected the assignment's value to be a switch expression, got %+v", asn.Value)
	}
}

func TestSwitchesToExpressionsLeavesMixedBodiesAsStatements(t *testing.T) {
	ctx := context.New(config.Default())
	sw := &ast.SwitchStatement{
		Subject: &ast.DeclarationReferenceExpression{Name: "s"},
		Cases: []ast.SwitchCase{
			{Expressions: []ast.Expression{&ast.StringLiteral{Value: "a"}}, Statements: []ast.Statement{&ast.ReturnStatement{Value: &ast.IntegerLiteral{Value: 1}}}},
			{Statements: []ast.Statement{&ast.ExpressionStatement{Expression: &ast.DeclarationReferenceExpression{Name: "log"}}}},
		},
	}

	out := pass.Run(switchesToExpressionsPass(ctx), ctx, []ast.Statement{sw})

	if _, ok := out[0].(*ast.SwitchStatement); !ok {
		t.Fatalf("expected a switch whose cases don't uniformly return or assign to stay a statement, got %T", out[0])
	}
}

func TestMergeVarDeclSwitchAssignmentsFusesDeclarationAndAssignment(t *testing.T) {
	ctx := context.New(config.Default())
	vd := &ast.VariableDeclaration{Name: "x", Type: "Int"}
	switchExpr := &ast.SwitchExpression{Subject: &ast.DeclarationReferenceExpression{Name: "s"}}
	asn := &ast.AssignmentStatement{
		Target:   &ast.DeclarationReferenceExpression{Name: "x"},
		Value:    switchExpr,
		Operator: ast.AssignPlain,
	}

	out := mergeVarDeclSwitchAssignments(ctx, []ast.Statement{vd, asn})

	if len(out) != 1 {
		t.Fatalf("expected the declaration and assignment to fuse into one statement, got %d", len(out))
	}
	merged, ok := out[0].(*ast.VariableDeclaration)
	if !ok || merged.Value != switchExpr {
		t.Fatalf("expected the declaration to carry the switch expression as its initializer, got %+v", out[0])
	}
}

func TestMergeVarDeclSwitchAssignmentsLeavesUnrelatedAssignmentAlone(t *testing.T) {
	ctx := context.New(config.Default())
	vd := &ast.VariableDeclaration{Name: "x", Type: "Int"}
	asn := &ast.AssignmentStatement{
		Target:   &ast.DeclarationReferenceExpression{Name: "y"},
		Value:    &ast.IntegerLiteral{Value: 1},
		Operator: ast.AssignPlain,
	}

	out := mergeVarDeclSwitchAssignments(ctx, []ast.Statement{vd, asn})

	if len(out) != 2 {
		t.Fatalf("expected the unrelated declaration and assignment to stay separate, got %d", len(out))
	}
}
