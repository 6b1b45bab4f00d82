package emit

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/buffer"
)

// leaf wraps a single literal fragment, carrying n's source range if it has
// one.
func leaf(text string, n ast.Node) *buffer.Translation {
	t := buffer.New()
	if r := n.Range(); r != nil {
		t.AppendRanged(text, r)
	} else {
		t.Append(text)
	}
	return t
}

// Numbers, bools, strings and characters already spell the same way in the
// target as ast's own String() renders them (radix preserved, u/f suffixes,
// """..."""); only nil diverges ("nil" -> "null"), so it's the one literal
// with a dedicated case below instead of reusing String().

func (p *Printer) emitIntegerLiteral(n *ast.IntegerLiteral) *buffer.Translation {
	return leaf(n.String(), n)
}

func (p *Printer) emitUIntegerLiteral(n *ast.UIntegerLiteral) *buffer.Translation {
	return leaf(n.String(), n)
}

func (p *Printer) emitDoubleLiteral(n *ast.DoubleLiteral) *buffer.Translation {
	return leaf(n.String(), n)
}

func (p *Printer) emitFloatLiteral(n *ast.FloatLiteral) *buffer.Translation {
	return leaf(n.String(), n)
}

func (p *Printer) emitBoolLiteral(n *ast.BoolLiteral) *buffer.Translation {
	return leaf(n.String(), n)
}

func (p *Printer) emitStringLiteral(n *ast.StringLiteral) *buffer.Translation {
	return leaf(n.String(), n)
}

func (p *Printer) emitCharacterLiteral(n *ast.CharacterLiteral) *buffer.Translation {
	return leaf(n.String(), n)
}

func (p *Printer) emitNilLiteral(n *ast.NilLiteral) *buffer.Translation {
	return leaf("null", n)
}

// emitInterpolatedString rebuilds the "${...}" spans itself, rather than
// reusing String(), so each embedded expression's own source range survives
// into the line map as a child translation instead of collapsing to text.
func (p *Printer) emitInterpolatedString(n *ast.InterpolatedStringExpression) *buffer.Translation {
	inner := buffer.New()
	inner.Append(`"`)
	for i, part := range n.Parts {
		inner.Append(part)
		if i < len(n.Expressions) {
			inner.Append("${")
			inner.AppendChild(p.emitExpression(n.Expressions[i]))
			inner.Append("}")
		}
	}
	inner.Append(`"`)

	if r := n.Range(); r != nil {
		t := buffer.New()
		t.AppendChildRanged(inner, r)
		return t
	}
	return inner
}
