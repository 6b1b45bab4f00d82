package rewrite

import (
	"testing"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/config"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

func TestInnerTypePrefixesStripsEnclosingTypeName(t *testing.T) {
	ctx := context.New(config.Default())
	tref := &ast.TypeReferenceExpression{Type: "Outer.Inner"}
	fn := &ast.FunctionDeclaration{
		Name: "make",
		Body: []ast.Statement{&ast.ExpressionStatement{Expression: tref}},
	}
	class := &ast.ClassDeclaration{Name: "Outer", Members: []ast.Statement{fn}}

	pass.Run(innerTypePrefixesPass(ctx), ctx, []ast.Statement{class})

	if tref.Type != "Inner" {
		t.Fatalf("expected the enclosing prefix to be stripped, got %q", tref.Type)
	}
}

func TestInnerTypePrefixesKeepsGenericArguments(t *testing.T) {
	ctx := context.New(config.Default())
	tref := &ast.TypeReferenceExpression{Type: "Outer.Box<Outer.Inner>"}
	fn := &ast.FunctionDeclaration{
		Name: "make",
		Body: []ast.Statement{&ast.ExpressionStatement{Expression: tref}},
	}
	class := &ast.ClassDeclaration{Name: "Outer", Members: []ast.Statement{fn}}

	pass.Run(innerTypePrefixesPass(ctx), ctx, []ast.Statement{class})

	if tref.Type != "Box<Outer.Inner>" {
		t.Fatalf("expected only the outer base type to shorten, got %q", tref.Type)
	}
}

func TestInnerTypePrefixesLeavesUnrelatedTypeAlone(t *testing.T) {
	ctx := context.New(config.Default())
	tref := &ast.TypeReferenceExpression{Type: "Other.Thing"}
	fn := &ast.FunctionDeclaration{
		Name: "make",
		Body: []ast.Statement{&ast.ExpressionStatement{Expression: tref}},
	}
	class := &ast.ClassDeclaration{Name: "Outer", Members: []ast.Statement{fn}}

	pass.Run(innerTypePrefixesPass(ctx), ctx, []ast.Statement{class})

	if tref.Type != "Other.Thing" {
		t.Fatalf("expected a type from an unrelated scope to be untouched, got %q", tref.Type)
	}
}
