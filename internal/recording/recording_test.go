package recording

import (
	"testing"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/config"
	"github.com/swiftkt/transpile/internal/context"
)

func run(t *testing.T, stmts []ast.Statement) (*context.Context, []ast.Statement) {
	t.Helper()
	ctx := context.New(config.Default())
	file := &ast.File{Path: "t.swift", Statements: stmts}
	Run(ctx, []*ast.File{file})
	return ctx, file.Statements
}

func TestInitializerReturnTypeIsEnclosingType(t *testing.T) {
	init := &ast.InitializerDeclaration{Name: "init", Body: []ast.Statement{}}
	class := &ast.ClassDeclaration{Name: "Robot", Members: []ast.Statement{init}}
	run(t, []ast.Statement{class})

	if init.ReturnType != "Robot" {
		t.Fatalf("expected return type Robot, got %q", init.ReturnType)
	}
}

func TestProtocolsAreRecorded(t *testing.T) {
	proto := &ast.ProtocolDeclaration{Name: "Flyable"}
	ctx, _ := run(t, []ast.Statement{proto})

	if !ctx.IsProtocol("Flyable") {
		t.Fatal("expected Flyable to be recorded as a protocol")
	}
}

func TestCleanInheritancesStripsSourceOnlyProtocolsAndRawFamily(t *testing.T) {
	enum := &ast.EnumDeclaration{
		Name:     "Direction",
		Inherits: []string{"String", "Equatable", "CaseIterable", "Compassable"},
		Elements: []ast.EnumElement{{Name: "north"}, {Name: "south"}},
	}
	ctx, _ := run(t, []ast.Statement{enum})

	if len(enum.Inherits) != 1 || enum.Inherits[0] != "Compassable" {
		t.Fatalf("expected only the non-source-only protocol to survive cleaning, got %v", enum.Inherits)
	}
	if got := ctx.Inheritances("Direction"); len(got) != 1 || got[0] != "Compassable" {
		t.Fatalf("expected context to hold the cleaned list, got %v", got)
	}
}

func TestImplicitRawValuesFillStringFamilyWithElementName(t *testing.T) {
	enum := &ast.EnumDeclaration{
		Name:     "Direction",
		Inherits: []string{"String"},
		Elements: []ast.EnumElement{{Name: "north"}, {Name: "south"}},
	}
	run(t, []ast.Statement{enum})

	for _, el := range enum.Elements {
		lit, ok := el.RawValue.(*ast.StringLiteral)
		if !ok || lit.Value != el.Name {
			t.Fatalf("expected raw value %q for element %q, got %#v", el.Name, el.Name, el.RawValue)
		}
	}
}

func TestImplicitRawValuesSequenceIntegersSeededAtZero(t *testing.T) {
	enum := &ast.EnumDeclaration{
		Name:     "Level",
		Inherits: []string{"Int"},
		Elements: []ast.EnumElement{
			{Name: "low"},
			{Name: "mid"},
			{Name: "high", RawValue: &ast.IntegerLiteral{Value: 10}},
			{Name: "extreme"},
		},
	}
	run(t, []ast.Statement{enum})

	want := []int64{0, 1, 10, 11}
	for i, el := range enum.Elements {
		lit, ok := el.RawValue.(*ast.IntegerLiteral)
		if !ok || lit.Value != want[i] {
			t.Fatalf("element %d: expected raw value %d, got %#v", i, want[i], el.RawValue)
		}
	}
}

func TestEnumRecordingClassifiesSealedVsEnumClass(t *testing.T) {
	plain := &ast.EnumDeclaration{Name: "Direction", Elements: []ast.EnumElement{{Name: "north"}}}
	sealed := &ast.EnumDeclaration{
		Name: "Shape",
		Elements: []ast.EnumElement{
			{Name: "circle", AssociatedValues: []ast.LabeledType{{Label: "radius", Type: "Double"}}},
		},
	}
	ctx, _ := run(t, []ast.Statement{plain, sealed})

	if !ctx.IsEnumClass("Direction") {
		t.Fatal("expected Direction to be classified as an enum-class")
	}
	if !ctx.IsSealedClass("Shape") {
		t.Fatal("expected Shape to be classified as a sealed class")
	}
}

func TestFunctionRecordingSynthesizesMemberwiseInitForStruct(t *testing.T) {
	point := &ast.StructDeclaration{
		Name: "Point",
		Members: []ast.Statement{
			&ast.VariableDeclaration{Name: "x", Type: "Int"},
			&ast.VariableDeclaration{Name: "y", Type: "Int"},
		},
	}
	ctx, _ := run(t, []ast.Statement{point})

	ft, ok := ctx.GetFunctionTranslation("init", "Point")
	if !ok {
		t.Fatal("expected a synthesized memberwise initializer to be registered")
	}
	if len(ft.Parameters) != 2 || ft.Parameters[0].Label != "x" || ft.Parameters[1].Label != "y" {
		t.Fatalf("unexpected synthesized parameters: %#v", ft.Parameters)
	}
}

func TestFunctionRecordingSkipsSynthesisWhenExplicitInitializerExists(t *testing.T) {
	point := &ast.StructDeclaration{
		Name: "Point",
		Members: []ast.Statement{
			&ast.VariableDeclaration{Name: "x", Type: "Int"},
			&ast.InitializerDeclaration{Name: "init", Body: []ast.Statement{}},
		},
	}
	ctx, _ := run(t, []ast.Statement{point})

	ft, ok := ctx.GetFunctionTranslation("init", "Point")
	if !ok {
		t.Fatal("expected the explicit initializer to still be registered")
	}
	if len(ft.Parameters) != 0 {
		t.Fatalf("expected no synthesized memberwise parameters, got %#v", ft.Parameters)
	}
}

func TestFunctionRecordingSynthesizesConstructorPerSealedElement(t *testing.T) {
	shape := &ast.EnumDeclaration{
		Name: "Shape",
		Elements: []ast.EnumElement{
			{Name: "circle", AssociatedValues: []ast.LabeledType{{Label: "radius", Type: "Double"}}},
			{Name: "square", AssociatedValues: []ast.LabeledType{{Label: "side", Type: "Double"}}},
		},
	}
	ctx, _ := run(t, []ast.Statement{shape})

	if _, ok := ctx.GetFunctionTranslation("circle", "Shape"); !ok {
		t.Fatal("expected a constructor-like registration for the circle element")
	}
	if _, ok := ctx.GetFunctionTranslation("square", "Shape"); !ok {
		t.Fatal("expected a constructor-like registration for the square element")
	}
}

func TestNamesListsNinePassesInOrder(t *testing.T) {
	names := Names()
	if len(names) != 9 {
		t.Fatalf("expected 9 recording passes, got %d: %v", len(names), names)
	}
	if names[0] != "initializer-return-types" {
		t.Fatalf("expected initializer-return-types first, got %q", names[0])
	}
	if names[len(names)-1] != "function-recording" {
		t.Fatalf("expected function-recording last, got %q", names[len(names)-1])
	}
}

func TestTemplatesPassRegistersFromMagicComment(t *testing.T) {
	comment := &ast.CommentStatement{Text: "// @template: foo.bar() => foo.baz()"}
	ctx, _ := run(t, []ast.Statement{comment})

	out, ok := ctx.Templates.Match("foo.bar()")
	if !ok || out != "foo.baz()" {
		t.Fatalf("expected template match, got %q, %v", out, ok)
	}
}
