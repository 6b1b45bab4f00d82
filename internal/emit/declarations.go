package emit

import (
	"strings"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/buffer"
)

func (p *Printer) pushScope(name string)  { p.scopes = append(p.scopes, name) }
func (p *Printer) popScope()              { p.scopes = p.scopes[:len(p.scopes)-1] }
func (p *Printer) qualifiedName(name string) string {
	if len(p.scopes) == 0 {
		return name
	}
	return strings.Join(p.scopes, ".") + "." + name
}

func (p *Printer) emitGenericParams(params []string) *buffer.Translation {
	t := buffer.New()
	if len(params) > 0 {
		t.Append("<" + strings.Join(params, ", ") + ">")
	}
	return t
}

func (p *Printer) emitClassDeclaration(n *ast.ClassDeclaration) *buffer.Translation {
	t := buffer.New()
	if n.Access != "" {
		t.Append(n.Access + " ")
	}
	if n.IsOpen && !n.IsFinal {
		t.Append("open ")
	}
	t.Append("class " + n.Name)
	t.AppendChild(p.emitGenericParams(n.GenericParameters))
	if len(n.Inherits) > 0 {
		t.Append(" : " + strings.Join(n.Inherits, ", "))
	}
	t.Append(" ")
	p.pushScope(n.Name)
	t.AppendChild(p.emitBlock(n.Members))
	p.popScope()
	return wrapRanged(t, n)
}

// emitStructDeclaration folds a struct's stored properties into a Kotlin
// data class's primary constructor header, the shape its synthesized
// memberwise initializer already implies, and drops the initializer
// member itself, since the header now provides the same constructor.
// Everything else (methods, computed properties) stays in the body.
func (p *Printer) emitStructDeclaration(n *ast.StructDeclaration) *buffer.Translation {
	t := buffer.New()
	if n.Access != "" {
		t.Append(n.Access + " ")
	}
	t.Append("data class " + n.Name)
	t.AppendChild(p.emitGenericParams(n.GenericParameters))
	t.Append("(")

	p.pushScope(n.Name)
	var rest []ast.Statement
	first := true
	for _, m := range n.Members {
		if vd, ok := m.(*ast.VariableDeclaration); ok && !vd.IsStatic {
			if !first {
				t.Append(", ")
			}
			first = false
			if vd.Access != "" {
				t.Append(vd.Access + " ")
			}
			kw := "val"
			if vd.IsMutable {
				kw = "var"
			}
			t.Append(kw + " " + vd.Name)
			if vd.Type != "" {
				t.Append(": " + translateType(vd.Type))
			}
			if vd.Value != nil {
				t.Append(" = ")
				t.AppendChild(p.emitExpression(vd.Value))
			}
			continue
		}
		if _, ok := m.(*ast.InitializerDeclaration); ok {
			continue
		}
		rest = append(rest, m)
	}
	t.Append(")")
	if len(n.Inherits) > 0 {
		t.Append(" : " + strings.Join(n.Inherits, ", "))
	}
	if len(rest) > 0 {
		t.Append(" ")
		t.AppendChild(p.emitBlock(rest))
	}
	p.popScope()
	return wrapRanged(t, n)
}

func (p *Printer) emitProtocolDeclaration(n *ast.ProtocolDeclaration) *buffer.Translation {
	t := buffer.New()
	if n.Access != "" {
		t.Append(n.Access + " ")
	}
	t.Append("interface " + n.Name)
	if len(n.Inherits) > 0 {
		t.Append(" : " + strings.Join(n.Inherits, ", "))
	}
	t.Append(" ")
	p.pushScope(n.Name)
	t.AppendChild(p.emitBlock(n.Members))
	p.popScope()
	return wrapRanged(t, n)
}

// rawValueType locates the rawValue property raw-values-members
// synthesizes on an enum-class so its type can head the constructor;
// "" when the enum carries no raw value (a plain, parameterless enum
// class with no "(val rawValue: T)" at all).
func rawValueType(members []ast.Statement) (ast.TypeName, bool) {
	for _, m := range members {
		if vd, ok := m.(*ast.VariableDeclaration); ok && vd.Name == "rawValue" {
			return vd.Type, true
		}
	}
	return "", false
}

func (p *Printer) emitEnumDeclaration(n *ast.EnumDeclaration) *buffer.Translation {
	fqType := p.qualifiedName(n.Name)
	if p.ctx.IsSealedClass(fqType) {
		return p.emitSealedClass(n)
	}
	return p.emitEnumClass(n)
}

func (p *Printer) emitEnumClass(n *ast.EnumDeclaration) *buffer.Translation {
	t := buffer.New()
	if n.Access != "" {
		t.Append(n.Access + " ")
	}
	t.Append("enum class " + n.Name)
	rawType, hasRaw := rawValueType(n.Members)
	if hasRaw {
		t.Append("(val rawValue: " + translateType(rawType) + ")")
	}
	t.Append(" {\n")
	p.enter()
	for i, el := range n.Elements {
		t.Append(p.indent())
		t.Append(el.Name)
		if el.RawValue != nil {
			t.Append("(")
			t.AppendChild(p.emitExpression(el.RawValue))
			t.Append(")")
		}
		if i < len(n.Elements)-1 {
			t.Append(",")
		} else {
			t.Append(";")
		}
		t.Append("\n")
	}
	var body []ast.Statement
	for _, m := range n.Members {
		if vd, ok := m.(*ast.VariableDeclaration); ok && vd.Name == "rawValue" {
			continue
		}
		body = append(body, m)
	}
	if len(body) > 0 {
		p.pushScope(n.Name)
		t.AppendChild(p.emitTopLevel(body))
		p.popScope()
	}
	p.leave()
	t.Append(p.indent())
	t.Append("}")
	return wrapRanged(t, n)
}

// emitSealedClass renders each associated-value case as its own nested
// class carrying the associated values as constructor parameters, and each
// bare case as a nested object, the standard encoding for a Swift enum
// with payloads that has no single shared representation in Kotlin.
func (p *Printer) emitSealedClass(n *ast.EnumDeclaration) *buffer.Translation {
	t := buffer.New()
	if n.Access != "" {
		t.Append(n.Access + " ")
	}
	t.Append("sealed class " + n.Name)
	if len(n.Inherits) > 0 {
		t.Append(" : " + strings.Join(n.Inherits, ", "))
	}
	t.Append(" {\n")
	p.enter()
	p.pushScope(n.Name)
	for _, el := range n.Elements {
		t.Append(p.indent())
		if !el.IsSealed() {
			t.Append("object " + el.Name + " : " + n.Name + "()")
		} else {
			t.Append("class " + el.Name + "(")
			for i, v := range el.AssociatedValues {
				if i > 0 {
					t.Append(", ")
				}
				label := v.Label
				if label == "" {
					label = "value" + itoa(i)
				}
				t.Append("val " + label + ": " + translateType(v.Type))
			}
			t.Append(") : " + n.Name + "()")
		}
		t.Append("\n")
	}
	if len(n.Members) > 0 {
		t.AppendChild(p.emitTopLevel(n.Members))
	}
	p.popScope()
	p.leave()
	t.Append(p.indent())
	t.Append("}")
	return wrapRanged(t, n)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	digits := ""
	neg := i < 0
	if neg {
		i = -i
	}
	for i > 0 {
		digits = string(rune('0'+i%10)) + digits
		i /= 10
	}
	if neg {
		digits = "-" + digits
	}
	return digits
}

// singleExpressionBody reports whether body is shaped so the single-
// expression function shorthand ("fun f(...) = expr") applies: exactly one
// statement, an ExpressionStatement, whose expression is neither a literal-
// code nor a concatenation expression (those are opaque target snippets
// that may already contain a full block, and a shorthand "=" can't be
// assumed to compose with them).
func singleExpressionBody(body []ast.Statement) (ast.Expression, bool) {
	if len(body) != 1 {
		return nil, false
	}
	es, ok := body[0].(*ast.ExpressionStatement)
	if !ok || es.Expression == nil {
		return nil, false
	}
	switch es.Expression.(type) {
	case *ast.LiteralCodeExpression, *ast.ConcatenationExpression:
		return nil, false
	}
	return es.Expression, true
}

func (p *Printer) emitFunctionDeclaration(n *ast.FunctionDeclaration) *buffer.Translation {
	t := buffer.New()
	if n.Access != "" {
		t.Append(n.Access + " ")
	}
	if n.IsOverride {
		t.Append("override ")
	} else if n.IsOpen {
		t.Append("open ")
	}
	// IsStatic needs no keyword here: the static-members pass has already
	// moved any static function into a CompanionObjectDeclaration by the
	// time the emitter sees it.
	t.Append("fun ")
	t.AppendChild(p.emitGenericParams(n.GenericParameters))
	if len(n.GenericParameters) > 0 {
		t.Append(" ")
	}
	t.Append(n.Name + "(")
	t.AppendChild(p.emitFunctionParameters(n.Parameters))
	t.Append(")")
	if n.ReturnType != "" && translateType(n.ReturnType) != "Unit" {
		t.Append(": " + translateType(n.ReturnType))
	}
	if n.Body == nil {
		return wrapRanged(t, n)
	}
	if expr, ok := singleExpressionBody(n.Body); ok && n.ReturnType != "" && translateType(n.ReturnType) != "Unit" {
		t.Append(" = ")
		t.AppendChild(p.emitExpression(expr))
		return wrapRanged(t, n)
	}
	t.Append(" ")
	t.AppendChild(p.emitBlock(n.Body))
	return wrapRanged(t, n)
}

func (p *Printer) emitFunctionParameters(params []ast.FunctionParameter) *buffer.Translation {
	t := buffer.New()
	for i, param := range params {
		if i > 0 {
			t.Append(", ")
		}
		if param.APILabel != "" && param.APILabel != param.Label {
			t.Append(param.APILabel + " " + param.Label)
		} else {
			t.Append(param.Label)
		}
		t.Append(": ")
		typ := translateType(param.Type)
		if param.IsVariadic {
			t.Append("vararg " + typ)
		} else {
			t.Append(typ)
		}
		if param.Default != nil {
			t.Append(" = ")
			t.AppendChild(p.emitExpression(param.Default))
		}
	}
	return t
}

// emitInitializerDeclaration renders a Kotlin secondary constructor. Every
// InitializerDeclaration reaching the emitter is non-failable: the
// optional-inits pass has already turned any failable ("init?") form into
// a static invoke function before this runs.
func (p *Printer) emitInitializerDeclaration(n *ast.InitializerDeclaration) *buffer.Translation {
	t := buffer.New()
	if n.Access != "" {
		t.Append(n.Access + " ")
	}
	t.Append("constructor(")
	t.AppendChild(p.emitFunctionParameters(n.Parameters))
	t.Append(")")
	if n.SuperCall != nil {
		t.Append(" : super(")
		for i, arg := range n.SuperCall.Arguments {
			if i > 0 {
				t.Append(", ")
			}
			t.AppendChild(p.emitLabeledExpression(arg))
		}
		t.Append(")")
	}
	t.Append(" ")
	t.AppendChild(p.emitBlock(n.Body))
	return wrapRanged(t, n)
}
