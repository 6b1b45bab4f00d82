package pipeline

import (
	"strings"
	"testing"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/config"
	"github.com/swiftkt/transpile/internal/oracle"
)

func TestRunEmitsEveryFile(t *testing.T) {
	a := &ast.File{Path: "a.swift", Statements: []ast.Statement{
		&ast.VariableDeclaration{Name: "x", Value: &ast.IntegerLiteral{Value: 1, Radix: ast.RadixDecimal}},
	}}
	b := &ast.File{Path: "b.swift", Statements: []ast.Statement{
		&ast.VariableDeclaration{Name: "y", Value: &ast.IntegerLiteral{Value: 2, Radix: ast.RadixDecimal}},
	}}

	outputs := Run(config.Default(), []Input{
		{File: a, Oracle: oracle.Static{}},
		{File: b, Oracle: oracle.Static{}},
	})

	if len(outputs) != 2 {
		t.Fatalf("expected 2 outputs, got %d", len(outputs))
	}
	if !strings.Contains(outputs[0].Text, "x") || !strings.Contains(outputs[1].Text, "y") {
		t.Fatalf("expected each output to carry its own file's content, got %q and %q", outputs[0].Text, outputs[1].Text)
	}
	if outputs[0].Path != "a.swift" || outputs[1].Path != "b.swift" {
		t.Fatalf("expected outputs in input order, got paths %q and %q", outputs[0].Path, outputs[1].Path)
	}
}

func TestRunKeepsPerFileDiagnosticsSeparate(t *testing.T) {
	// A double-optional-typed reference in one file should warn only that
	// file's Output, never bleed into a sibling file's diagnostics.
	flagged := &ast.File{Path: "flagged.swift", Statements: []ast.Statement{
		&ast.ExpressionStatement{Expression: &ast.DeclarationReferenceExpression{Name: "x", Type: "Int??"}},
	}}
	clean := &ast.File{Path: "clean.swift", Statements: []ast.Statement{
		&ast.VariableDeclaration{Name: "y", Type: "Int"},
	}}

	outputs := Run(config.Default(), []Input{
		{File: flagged, Oracle: oracle.Static{}},
		{File: clean, Oracle: oracle.Static{}},
	})

	if len(outputs[0].Diagnostics) == 0 {
		t.Fatal("expected the double-optional file to carry a diagnostic")
	}
	if len(outputs[1].Diagnostics) != 0 {
		t.Fatalf("expected the clean file to carry no diagnostics, got %v", outputs[1].Diagnostics)
	}
}
