package rewrite

import (
	"testing"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/config"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

func TestEscapeStringsEscapesDollarInPlainLiteral(t *testing.T) {
	ctx := context.New(config.Default())
	lit := &ast.StringLiteral{Value: "costs $5"}
	stmt := &ast.ExpressionStatement{Expression: lit}

	pass.Run(escapeStringsAndCharactersPass(ctx), ctx, []ast.Statement{stmt})

	if lit.Value != `costs \$5` {
		t.Fatalf("expected dollar to be escaped, got %q", lit.Value)
	}
}

func TestEscapeStringsEscapesDollarInInterpolatedParts(t *testing.T) {
	ctx := context.New(config.Default())
	interp := &ast.InterpolatedStringExpression{
		Parts:       []string{"price: $", " total"},
		Expressions: []ast.Expression{&ast.DeclarationReferenceExpression{Name: "amount"}},
	}
	stmt := &ast.ExpressionStatement{Expression: interp}

	pass.Run(escapeStringsAndCharactersPass(ctx), ctx, []ast.Statement{stmt})

	if interp.Parts[0] != `price: \$` || interp.Parts[1] != " total" {
		t.Fatalf("expected only literal parts with a dollar to change, got %v", interp.Parts)
	}
}

func TestEscapeStringsReplacesEscapedQuoteCharacterLiteral(t *testing.T) {
	ctx := context.New(config.Default())
	lit := &ast.CharacterLiteral{Value: '\''}
	stmt := &ast.ExpressionStatement{Expression: lit}

	pass.Run(escapeStringsAndCharactersPass(ctx), ctx, []ast.Statement{stmt})

	code, ok := stmt.Expression.(*ast.LiteralCodeExpression)
	if !ok {
		t.Fatalf("expected the quote character literal to become opaque code, got %T", stmt.Expression)
	}
	if code.Code != `'\''` || code.Type != "Char" {
		t.Fatalf("unexpected escaped quote rendering: %+v", code)
	}
}

func TestEscapeStringsLeavesOrdinaryCharacterLiteralAlone(t *testing.T) {
	ctx := context.New(config.Default())
	lit := &ast.CharacterLiteral{Value: 'a'}
	stmt := &ast.ExpressionStatement{Expression: lit}

	pass.Run(escapeStringsAndCharactersPass(ctx), ctx, []ast.Statement{stmt})

	if stmt.Expression != lit {
		t.Fatalf("expected an ordinary character literal to pass through unchanged, got %T", stmt.Expression)
	}
}
