package emit

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/config"
	"github.com/swiftkt/transpile/internal/context"
)

// TestEmitSwitchStatementGolden snapshots a whole switch statement's
// rendering rather than asserting on substrings of it, since once a
// single emitted shape has enough moving parts (indentation, multiple
// cases, a fallthrough-free default) a substring check would hide a
// regression in anything but the one line it happens to check.
func TestEmitSwitchStatementGolden(t *testing.T) {
	ctx := context.New(config.Default())
	sw := &ast.SwitchStatement{
		Subject: &ast.DeclarationReferenceExpression{Name: "suit"},
		Cases: []ast.SwitchCase{
			{
				Expressions: []ast.Expression{&ast.StringLiteral{Value: "clubs"}, &ast.StringLiteral{Value: "spades"}},
				Statements:  []ast.Statement{&ast.ReturnStatement{Value: &ast.StringLiteral{Value: "black"}}},
			},
			{
				Expressions: []ast.Expression{&ast.StringLiteral{Value: "hearts"}},
				Statements:  []ast.Statement{&ast.ReturnStatement{Value: &ast.StringLiteral{Value: "red"}}},
			},
			{
				Statements: []ast.Statement{&ast.ReturnStatement{Value: &ast.StringLiteral{Value: "unknown"}}},
			},
		},
	}
	got := emitStmt(ctx, sw)
	snaps.MatchSnapshot(t, got)
}
