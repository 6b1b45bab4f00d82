package emit

import (
	"strings"
	"testing"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/config"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/buffer"
)

func emitStmt(ctx *context.Context, s ast.Statement) string {
	p := New(ctx)
	return buffer.ResolveText(p.emitStatement(s))
}

func emitExpr(ctx *context.Context, e ast.Expression) string {
	p := New(ctx)
	return buffer.ResolveText(p.emitExpression(e))
}

func TestTranslateType(t *testing.T) {
	tests := []struct {
		name     string
		in       ast.TypeName
		expected string
	}{
		{"void", "Void", "Unit"},
		{"empty tuple", "()", "Unit"},
		{"optional", "Int?", "Int?"},
		{"array sugar", "[Int]", "List<Int>"},
		{"dictionary sugar", "[String:Int]", "Map<String, Int>"},
		{"array generic", "Array<String>", "List<String>"},
		{"dictionary generic", "Dictionary<String, Int>", "Map<String, Int>"},
		{"nested generic", "Array<Array<Int>>", "List<List<Int>>"},
		{"two-tuple", "(Int, String)", "Pair<Int, String>"},
		{"function type", "(Int) -> Void", "(Int) -> Unit"},
		{"throwing function type", "(Int) -> Void throws", "(Int) -> Unit"},
		{"plain name", "String", "String"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateType(tt.in)
			if got != tt.expected {
				t.Errorf("translateType(%q) = %q, want %q", tt.in, got, tt.expected)
			}
		})
	}
}

func TestEmitIntegerLiteralPreservesRadix(t *testing.T) {
	ctx := context.New(config.Default())
	tests := []struct {
		name     string
		lit      *ast.IntegerLiteral
		expected string
	}{
		{"decimal", &ast.IntegerLiteral{Value: 42, Radix: ast.RadixDecimal}, "42"},
		{"hex", &ast.IntegerLiteral{Value: 255, Radix: ast.RadixHex}, "0xff"},
		{"binary", &ast.IntegerLiteral{Value: 5, Radix: ast.RadixBinary}, "0b101"},
		{"negative hex", &ast.IntegerLiteral{Value: -1, Radix: ast.RadixHex}, "-0x1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := emitExpr(ctx, tt.lit)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEmitUIntegerLiteralAppendsSuffix(t *testing.T) {
	ctx := context.New(config.Default())
	got := emitExpr(ctx, &ast.UIntegerLiteral{Value: 7, Radix: ast.RadixDecimal})
	if got != "7u" {
		t.Errorf("got %q, want %q", got, "7u")
	}
}

func TestEmitFloatLiteralAppendsSuffix(t *testing.T) {
	ctx := context.New(config.Default())
	got := emitExpr(ctx, &ast.FloatLiteral{Value: 1.5})
	if got != "1.5f" {
		t.Errorf("got %q, want %q", got, "1.5f")
	}
}

func TestEmitStringLiteralMultiline(t *testing.T) {
	ctx := context.New(config.Default())
	got := emitExpr(ctx, &ast.StringLiteral{Value: "hi", Multiline: true})
	if got != `"""hi"""` {
		t.Errorf("got %q", got)
	}
}

func TestEmitNilLiteralBecomesNull(t *testing.T) {
	ctx := context.New(config.Default())
	got := emitExpr(ctx, &ast.NilLiteral{})
	if got != "null" {
		t.Errorf("got %q, want %q", got, "null")
	}
}

func TestEmitInterpolatedStringWrapsExpressions(t *testing.T) {
	ctx := context.New(config.Default())
	n := &ast.InterpolatedStringExpression{
		Parts:       []string{"hello ", "!"},
		Expressions: []ast.Expression{&ast.DeclarationReferenceExpression{Name: "name"}},
	}
	got := emitExpr(ctx, n)
	if got != `"hello ${name}!"` {
		t.Errorf("got %q", got)
	}
}

func TestEmitVariableDeclarationTranslatesType(t *testing.T) {
	ctx := context.New(config.Default())
	vd := &ast.VariableDeclaration{Name: "items", Type: "[Int]", IsMutable: true}
	got := emitStmt(ctx, vd)
	if got != "var items: List<Int>" {
		t.Errorf("got %q", got)
	}
}

func TestEmitVariableDeclarationConstant(t *testing.T) {
	ctx := context.New(config.Default())
	vd := &ast.VariableDeclaration{
		Name:  "x",
		Value: &ast.IntegerLiteral{Value: 1, Radix: ast.RadixDecimal},
	}
	got := emitStmt(ctx, vd)
	if got != "val x = 1" {
		t.Errorf("got %q", got)
	}
}

func TestEmitCallExpressionFlat(t *testing.T) {
	ctx := context.New(config.Default())
	call := &ast.CallExpression{
		Function: &ast.DeclarationReferenceExpression{Name: "add"},
		Arguments: []ast.LabeledExpression{
			{Expression: &ast.IntegerLiteral{Value: 1, Radix: ast.RadixDecimal}},
			{Expression: &ast.IntegerLiteral{Value: 2, Radix: ast.RadixDecimal}},
		},
	}
	got := emitExpr(ctx, call)
	if got != "add(1, 2)" {
		t.Errorf("got %q", got)
	}
}

func TestEmitCallExpressionBreaksOutWhenTooWide(t *testing.T) {
	ctx := context.New(config.Default())
	args := make([]ast.LabeledExpression, 4)
	for i := range args {
		label := "argumentNumberWithAVeryLongNameToForceAWrap"
		args[i] = ast.LabeledExpression{
			Label:      &label,
			Expression: &ast.DeclarationReferenceExpression{Name: "valueExpression"},
		}
	}
	call := &ast.CallExpression{
		Function:  &ast.DeclarationReferenceExpression{Name: "configureWithLongParameterList"},
		Arguments: args,
	}
	got := emitExpr(ctx, call)
	if !strings.Contains(got, "\n") {
		t.Errorf("expected a broken-out call, got flat: %q", got)
	}
	if !strings.HasSuffix(got, ")") {
		t.Errorf("expected call to end with a closing paren, got %q", got)
	}
}

func TestEmitIfStatementWithElseIf(t *testing.T) {
	ctx := context.New(config.Default())
	ifStmt := &ast.IfStatement{
		Conditions: []ast.IfCondition{{Expr: &ast.DeclarationReferenceExpression{Name: "a"}}},
		Then:       []ast.Statement{&ast.ReturnStatement{Value: &ast.IntegerLiteral{Value: 1, Radix: ast.RadixDecimal}}},
		Else: []ast.Statement{&ast.IfStatement{
			Conditions: []ast.IfCondition{{Expr: &ast.DeclarationReferenceExpression{Name: "b"}}},
			Then:       []ast.Statement{&ast.ReturnStatement{Value: &ast.IntegerLiteral{Value: 2, Radix: ast.RadixDecimal}}},
		}},
	}
	got := emitStmt(ctx, ifStmt)
	if !strings.Contains(got, "if (a)") || !strings.Contains(got, "else if (b)") {
		t.Errorf("expected a chained else-if, got %q", got)
	}
}

func TestEmitEnumClassPromotesRawValueToConstructor(t *testing.T) {
	ctx := context.New(config.Default())
	decl := &ast.EnumDeclaration{
		Name: "Suit",
		Elements: []ast.EnumElement{
			{Name: "clubs", RawValue: &ast.StringLiteral{Value: "clubs"}},
			{Name: "spades", RawValue: &ast.StringLiteral{Value: "spades"}},
		},
		Members: []ast.Statement{
			&ast.VariableDeclaration{Name: "rawValue", Type: "String"},
		},
	}
	ctx.MarkEnumClass("Suit")
	got := emitStmt(ctx, decl)
	if !strings.Contains(got, "enum class Suit(val rawValue: String)") {
		t.Errorf("expected rawValue promoted into the constructor, got %q", got)
	}
	if strings.Count(got, "val rawValue") != 1 {
		t.Errorf("expected rawValue to appear only in the constructor, got %q", got)
	}
}

func TestEmitSealedClassRendersAssociatedValueCases(t *testing.T) {
	ctx := context.New(config.Default())
	decl := &ast.EnumDeclaration{
		Name: "Shape",
		Elements: []ast.EnumElement{
			{Name: "circle", AssociatedValues: []ast.LabeledType{{Label: "radius", Type: "Double"}}},
			{Name: "point"},
		},
	}
	ctx.MarkSealedClass("Shape")
	got := emitStmt(ctx, decl)
	if !strings.Contains(got, "class circle(val radius: Double) : Shape()") {
		t.Errorf("expected circle as a payload case, got %q", got)
	}
	if !strings.Contains(got, "object point : Shape()") {
		t.Errorf("expected point as a bare object case, got %q", got)
	}
}

func TestEmitFunctionDeclarationUsesExpressionShorthand(t *testing.T) {
	ctx := context.New(config.Default())
	fn := &ast.FunctionDeclaration{
		Name:       "double",
		ReturnType: "Int",
		Parameters: []ast.FunctionParameter{{Label: "x", Type: "Int"}},
		Body: []ast.Statement{
			&ast.ExpressionStatement{Expression: &ast.BinaryOperatorExpression{
				Left:     &ast.DeclarationReferenceExpression{Name: "x"},
				Operator: "*",
				Right:    &ast.IntegerLiteral{Value: 2, Radix: ast.RadixDecimal},
			}},
		},
	}
	got := emitStmt(ctx, fn)
	if got != "fun double(x: Int): Int = x * 2" {
		t.Errorf("got %q", got)
	}
}

func TestEmitFunctionDeclarationUsesBlockWhenUnitReturn(t *testing.T) {
	ctx := context.New(config.Default())
	fn := &ast.FunctionDeclaration{
		Name: "log",
		Body: []ast.Statement{
			&ast.ExpressionStatement{Expression: &ast.CallExpression{
				Function: &ast.DeclarationReferenceExpression{Name: "println"},
			}},
		},
	}
	got := emitStmt(ctx, fn)
	if !strings.Contains(got, "fun log() {") {
		t.Errorf("expected a block body for a Unit-returning function, got %q", got)
	}
}

func TestEmitStructDeclarationFoldsPropertiesIntoHeader(t *testing.T) {
	ctx := context.New(config.Default())
	decl := &ast.StructDeclaration{
		Name: "Point",
		Members: []ast.Statement{
			&ast.VariableDeclaration{Name: "x", Type: "Int"},
			&ast.VariableDeclaration{Name: "y", Type: "Int"},
			&ast.InitializerDeclaration{Name: "init"},
		},
	}
	got := emitStmt(ctx, decl)
	if !strings.HasPrefix(got, "data class Point(val x: Int, val y: Int)") {
		t.Errorf("got %q", got)
	}
	if strings.Contains(got, "constructor(") {
		t.Errorf("expected the synthesized initializer to be dropped, got %q", got)
	}
}

func TestEmitDeferDesugarsToTryFinally(t *testing.T) {
	ctx := context.New(config.Default())
	fn := &ast.FunctionDeclaration{
		Name: "withLock",
		Body: []ast.Statement{
			&ast.ExpressionStatement{Expression: &ast.CallExpression{
				Function: &ast.DeclarationReferenceExpression{Name: "lock"},
			}},
			&ast.DeferStatement{
				Body: []ast.Statement{&ast.ExpressionStatement{Expression: &ast.CallExpression{
					Function: &ast.DeclarationReferenceExpression{Name: "unlock"},
				}}},
			},
			&ast.ExpressionStatement{Expression: &ast.CallExpression{
				Function: &ast.DeclarationReferenceExpression{Name: "doWork"},
			}},
		},
	}
	got := emitStmt(ctx, fn)
	if !strings.Contains(got, "try {") || !strings.Contains(got, "} finally {") {
		t.Errorf("expected a try/finally desugaring, got %q", got)
	}
	if !strings.Contains(got, "doWork()") {
		t.Errorf("expected the deferred statement's following code to still run inside the try, got %q", got)
	}
}

func TestEmitArrayExpressionEmpty(t *testing.T) {
	ctx := context.New(config.Default())
	got := emitExpr(ctx, &ast.ArrayExpression{Type: "[Int]"})
	if got != "emptyList<Int>()" {
		t.Errorf("got %q", got)
	}
}

func TestEmitDictionaryExpressionNonEmpty(t *testing.T) {
	ctx := context.New(config.Default())
	dict := &ast.DictionaryExpression{
		Pairs: []ast.DictionaryPair{
			{Key: &ast.StringLiteral{Value: "a"}, Value: &ast.IntegerLiteral{Value: 1, Radix: ast.RadixDecimal}},
		},
	}
	got := emitExpr(ctx, dict)
	if got != `mapOf("a" to 1)` {
		t.Errorf("got %q", got)
	}
}

func TestEmitProvenanceCarriesSourceRange(t *testing.T) {
	ctx := context.New(config.Default())
	p := New(ctx)
	lit := &ast.IntegerLiteral{
		Base:  ast.Base{SourceRangeV: &ast.SourceRange{StartLine: 3, StartColumn: 5, EndLine: 3, EndColumn: 7}},
		Value: 42, Radix: ast.RadixDecimal,
	}
	_, lineMap := p.emitExpression(lit).Resolve()
	if len(lineMap) != 1 {
		t.Fatalf("expected one line-map entry, got %d", len(lineMap))
	}
	if lineMap[0].SrcStart.Line != 3 || lineMap[0].SrcStart.Column != 5 {
		t.Errorf("got %+v", lineMap[0])
	}
}
