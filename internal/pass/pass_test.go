package pass

import (
	"testing"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/config"
	"github.com/swiftkt/transpile/internal/context"
)

func TestDefaultRecursionReachesNestedExpression(t *testing.T) {
	inner := &ast.DeclarationReferenceExpression{Name: "x"}
	stmt := &ast.ReturnStatement{Value: &ast.ForceUnwrapExpression{Inner: inner}}

	var sawNames []string
	p := &Pass{
		PassName: "collect",
		Expressions: map[string]ExpressionHook{
			typeKey(&ast.DeclarationReferenceExpression{}): func(w *Walker, e ast.Expression) (ast.Expression, bool) {
				sawNames = append(sawNames, e.(*ast.DeclarationReferenceExpression).Name)
				return e, true
			},
		},
	}

	ctx := context.New(config.Default())
	Run(p, ctx, []ast.Statement{stmt})

	if len(sawNames) != 1 || sawNames[0] != "x" {
		t.Fatalf("expected to reach nested reference expression, got %v", sawNames)
	}
}

func TestHookReplacesStatement(t *testing.T) {
	original := &ast.BreakStatement{}
	replacement := &ast.ContinueStatement{}

	p := &Pass{
		PassName: "break-to-continue",
		Statements: map[string]StatementHook{
			typeKey(&ast.BreakStatement{}): func(w *Walker, s ast.Statement) ([]ast.Statement, bool) {
				return []ast.Statement{replacement}, true
			},
		},
	}

	ctx := context.New(config.Default())
	out := Run(p, ctx, []ast.Statement{original})

	if len(out) != 1 || out[0] != ast.Statement(replacement) {
		t.Fatalf("expected hook's replacement statement, got %#v", out)
	}
}

func TestHookCanDeleteAStatement(t *testing.T) {
	p := &Pass{
		PassName: "drop-comments",
		Statements: map[string]StatementHook{
			typeKey(&ast.CommentStatement{}): func(w *Walker, s ast.Statement) ([]ast.Statement, bool) {
				return nil, true
			},
		},
	}

	ctx := context.New(config.Default())
	out := Run(p, ctx, []ast.Statement{
		&ast.CommentStatement{Text: "// drop me"},
		&ast.BreakStatement{},
	})

	if len(out) != 1 {
		t.Fatalf("expected the comment to be dropped, got %d statements", len(out))
	}
	if _, ok := out[0].(*ast.BreakStatement); !ok {
		t.Fatalf("expected the surviving statement to be the break, got %#v", out[0])
	}
}

func TestParentStackReflectsEnclosingNode(t *testing.T) {
	var parentIsIf bool
	p := &Pass{
		PassName: "check-parent",
		Statements: map[string]StatementHook{
			typeKey(&ast.BreakStatement{}): func(w *Walker, s ast.Statement) ([]ast.Statement, bool) {
				_, parentIsIf = w.Parent().(*ast.IfStatement)
				return nil, false // fall through to default recursion
			},
		},
	}

	ctx := context.New(config.Default())
	stmt := &ast.IfStatement{
		Conditions: []ast.IfCondition{{Expr: &ast.BoolLiteral{Value: true}}},
		Then:       []ast.Statement{&ast.BreakStatement{}},
	}
	Run(p, ctx, []ast.Statement{stmt})

	if !parentIsIf {
		t.Fatal("expected the break statement's parent to be the enclosing if")
	}
}

func TestGetFullTypeTracksNestedDeclarations(t *testing.T) {
	var seenFullType string
	p := &Pass{
		PassName: "record-full-type",
		Statements: map[string]StatementHook{
			typeKey(&ast.FunctionDeclaration{}): func(w *Walker, s ast.Statement) ([]ast.Statement, bool) {
				seenFullType = w.GetFullType()
				return nil, false
			},
		},
	}

	ctx := context.New(config.Default())
	fn := &ast.FunctionDeclaration{Name: "area", Body: []ast.Statement{}}
	outer := &ast.ClassDeclaration{Name: "Shape", Members: []ast.Statement{fn}}
	Run(p, ctx, []ast.Statement{outer})

	if seenFullType != "Shape" {
		t.Fatalf("expected enclosing type %q, got %q", "Shape", seenFullType)
	}
}

func TestUnhandledVariantPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an unhandled node variant")
		}
	}()
	fatalStatement(nil)
}
