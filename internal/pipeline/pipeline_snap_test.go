package pipeline

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/config"
	"github.com/swiftkt/transpile/internal/oracle"
)

// TestRunGoldenFiles snapshots the emitted Kotlin for a handful of
// representative Swift shapes run through the whole pipeline, the same
// kind of end-to-end golden coverage a go-snaps fixture suite gets
// rather than one assertion per emitter rule.
func TestRunGoldenFiles(t *testing.T) {
	classFile := &ast.File{
		Path: "Account.swift",
		Statements: []ast.Statement{
			&ast.ClassDeclaration{
				Name:     "Account",
				Inherits: []string{"Equatable"},
				Members: []ast.Statement{
					&ast.VariableDeclaration{Name: "balance", Type: "Int", IsMutable: true},
					&ast.FunctionDeclaration{
						Name:       "deposit",
						Parameters: []ast.FunctionParameter{{Label: "amount", Type: "Int"}},
						Body: []ast.Statement{
							&ast.AssignmentStatement{
								Target:   &ast.DeclarationReferenceExpression{Name: "balance"},
								Operator: ast.AssignPlain,
								Value: &ast.BinaryOperatorExpression{
									Left:     &ast.DeclarationReferenceExpression{Name: "balance"},
									Operator: "+",
									Right:    &ast.DeclarationReferenceExpression{Name: "amount"},
								},
							},
						},
					},
				},
			},
		},
	}

	enumFile := &ast.File{
		Path: "Suit.swift",
		Statements: []ast.Statement{
			&ast.EnumDeclaration{
				Name: "Suit",
				Elements: []ast.EnumElement{
					{Name: "clubs", RawValue: &ast.StringLiteral{Value: "clubs"}},
					{Name: "hearts", RawValue: &ast.StringLiteral{Value: "hearts"}},
				},
			},
		},
	}

	outputs := Run(config.Default(), []Input{
		{File: classFile, Oracle: oracle.Static{}},
		{File: enumFile, Oracle: oracle.Static{}},
	})

	if len(outputs) != 2 {
		t.Fatalf("expected 2 outputs, got %d", len(outputs))
	}
	for _, out := range outputs {
		snaps.MatchSnapshot(t, out.Path, out.Text)
	}
}
