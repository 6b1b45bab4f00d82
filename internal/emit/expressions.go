package emit

import (
	"strings"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/buffer"
)

// emitExpression dispatches on the concrete expression variant, building a
// Translation that preserves every nested node's own source range rather
// than flattening to a string the way Expression.String() does.
func (p *Printer) emitExpression(e ast.Expression) *buffer.Translation {
	switch n := e.(type) {
	case *ast.LiteralCodeExpression:
		return leaf(n.Code, n)
	case *ast.ConcatenationExpression:
		t := buffer.New()
		t.AppendChild(p.emitExpression(n.Left))
		t.AppendChild(p.emitExpression(n.Right))
		return wrapRanged(t, n)
	case *ast.ParenthesesExpression:
		t := buffer.New()
		t.Append("(")
		t.AppendChild(p.emitExpression(n.Inner))
		t.Append(")")
		return wrapRanged(t, n)
	case *ast.ForceUnwrapExpression:
		t := buffer.New()
		t.AppendChild(p.emitExpression(n.Inner))
		t.Append("!!")
		return wrapRanged(t, n)
	case *ast.OptionalChainExpression:
		t := buffer.New()
		t.AppendChild(p.emitExpression(n.Inner))
		t.Append("?")
		return wrapRanged(t, n)
	case *ast.DeclarationReferenceExpression:
		return leaf(n.Name, n)
	case *ast.TypeReferenceExpression:
		return leaf(translateType(n.Type), n)
	case *ast.SubscriptExpression:
		t := buffer.New()
		t.AppendChild(p.emitExpression(n.Subscripted))
		t.Append("[")
		for i, idx := range n.Indices {
			if i > 0 {
				t.Append(", ")
			}
			t.AppendChild(p.emitExpression(idx))
		}
		t.Append("]")
		return wrapRanged(t, n)
	case *ast.ArrayExpression:
		return p.emitArrayExpression(n)
	case *ast.DictionaryExpression:
		return p.emitDictionaryExpression(n)
	case *ast.ReturnExpression:
		t := buffer.New()
		t.Append("return")
		if n.Value != nil {
			t.Append(" ")
			t.AppendChild(p.emitExpression(n.Value))
		}
		return wrapRanged(t, n)
	case *ast.DotExpression:
		t := buffer.New()
		t.AppendChild(p.emitExpression(n.Receiver))
		t.Append(".")
		t.Append(n.Member)
		return wrapRanged(t, n)
	case *ast.BinaryOperatorExpression:
		t := buffer.New()
		t.AppendChild(p.emitExpression(n.Left))
		t.Append(" " + n.Operator + " ")
		t.AppendChild(p.emitExpression(n.Right))
		return wrapRanged(t, n)
	case *ast.PrefixUnaryExpression:
		t := buffer.New()
		t.Append(n.Operator)
		t.AppendChild(p.emitExpression(n.Operand))
		return wrapRanged(t, n)
	case *ast.PostfixUnaryExpression:
		t := buffer.New()
		t.AppendChild(p.emitExpression(n.Operand))
		t.Append(n.Operator)
		return wrapRanged(t, n)
	case *ast.TernaryIfExpression:
		return p.emitTernary(n)
	case *ast.CallExpression:
		return p.emitCallExpression(n)
	case *ast.ClosureExpression:
		return p.emitClosureExpression(n)
	case *ast.TupleExpression:
		return p.emitLabeledList(n.Elements, n)
	case *ast.SwitchExpression:
		return p.emitSwitchExpression(n)
	case *ast.ErrorExpression:
		return leaf("<error: "+n.Message+">", n)

	case *ast.IntegerLiteral:
		return p.emitIntegerLiteral(n)
	case *ast.UIntegerLiteral:
		return p.emitUIntegerLiteral(n)
	case *ast.DoubleLiteral:
		return p.emitDoubleLiteral(n)
	case *ast.FloatLiteral:
		return p.emitFloatLiteral(n)
	case *ast.BoolLiteral:
		return p.emitBoolLiteral(n)
	case *ast.StringLiteral:
		return p.emitStringLiteral(n)
	case *ast.InterpolatedStringExpression:
		return p.emitInterpolatedString(n)
	case *ast.CharacterLiteral:
		return p.emitCharacterLiteral(n)
	case *ast.NilLiteral:
		return p.emitNilLiteral(n)
	default:
		return leaf("<unsupported expression>", baseNode{})
	}
}

// wrapRanged re-parents a freshly built composite under a single ranged
// entry carrying n's own range, so both the composite's nested ranges and
// its own outer span end up in the line-map.
func wrapRanged(t *buffer.Translation, n ast.Node) *buffer.Translation {
	r := n.Range()
	if r == nil {
		return t
	}
	out := buffer.New()
	out.AppendChildRanged(t, r)
	return out
}

// baseNode is a zero-range ast.Node used only by emitExpression's
// unreachable default case.
type baseNode struct{ ast.Base }

func (baseNode) String() string { return "" }

func (p *Printer) emitTernary(n *ast.TernaryIfExpression) *buffer.Translation {
	t := buffer.New()
	t.Append("if (")
	t.AppendChild(p.emitExpression(n.Condition))
	t.Append(") ")
	t.AppendChild(p.emitExpression(n.Then))
	t.Append(" else ")
	t.AppendChild(p.emitExpression(n.Else))
	return wrapRanged(t, n)
}

// emitLabeledList renders a parenthesized, comma-joined list of labeled
// expressions, used for tuple literals that survive to emission (those
// the tuples-to-pairs pass leaves alone, e.g. inside a for-each binding).
func (p *Printer) emitLabeledList(elems []ast.LabeledExpression, n ast.Node) *buffer.Translation {
	t := buffer.New()
	t.Append("(")
	for i, el := range elems {
		if i > 0 {
			t.Append(", ")
		}
		if el.Label != nil {
			t.Append(*el.Label + ": ")
		}
		t.AppendChild(p.emitExpression(el.Expression))
	}
	t.Append(")")
	return wrapRanged(t, n)
}

// emitArrayExpression emits "listOf(a, b, c)", or "emptyList<T>()" when
// Elements is empty and a Type is known to let Kotlin infer the right
// element type.
func (p *Printer) emitArrayExpression(n *ast.ArrayExpression) *buffer.Translation {
	t := buffer.New()
	if len(n.Elements) == 0 {
		t.Append("emptyList<")
		t.Append(elementTypeArg(n.Type))
		t.Append(">()")
		return wrapRanged(t, n)
	}
	t.Append("listOf(")
	for i, el := range n.Elements {
		if i > 0 {
			t.Append(", ")
		}
		t.AppendChild(p.emitExpression(el))
	}
	t.Append(")")
	return wrapRanged(t, n)
}

// emitDictionaryExpression emits "mapOf(k to v, ...)", or "emptyMap<K, V>()"
// for an empty literal.
func (p *Printer) emitDictionaryExpression(n *ast.DictionaryExpression) *buffer.Translation {
	t := buffer.New()
	if len(n.Pairs) == 0 {
		key, val := mapTypeArgs(n.Type)
		t.Append("emptyMap<" + key + ", " + val + ">()")
		return wrapRanged(t, n)
	}
	t.Append("mapOf(")
	for i, pair := range n.Pairs {
		if i > 0 {
			t.Append(", ")
		}
		t.AppendChild(p.emitExpression(pair.Key))
		t.Append(" to ")
		t.AppendChild(p.emitExpression(pair.Value))
	}
	t.Append(")")
	return wrapRanged(t, n)
}

// elementTypeArg extracts T out of a List<T>-shaped translated type,
// falling back to "Any" when the declared type isn't known or isn't of
// that shape (an empty literal with no recorded element type).
func elementTypeArg(t ast.TypeName) string {
	translated := translateType(t)
	base, args := splitGenericArgsString(translated)
	if base == "List" && len(args) == 1 {
		return args[0]
	}
	return "Any"
}

// mapTypeArgs extracts K, V out of a Map<K, V>-shaped translated type.
func mapTypeArgs(t ast.TypeName) (string, string) {
	translated := translateType(t)
	base, args := splitGenericArgsString(translated)
	if base == "Map" && len(args) == 2 {
		return args[0], args[1]
	}
	return "Any", "Any"
}

// splitGenericArgsString is a tiny local generic-application splitter for
// an already-translated type string, used only to pick apart the List<T>/
// Map<K, V> shapes translateType just produced.
func splitGenericArgsString(s string) (string, []string) {
	i := strings.IndexByte(s, '<')
	if i < 0 || s[len(s)-1] != '>' {
		return s, nil
	}
	return s[:i], splitTopLevel(s[i+1 : len(s)-1])
}
