package emit

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/buffer"
)

// emitCallExpression renders a call, trying a flat "f(a, b, c)" rendering
// first and falling back to one argument per indented line if that doesn't
// fit within the line-width heuristic.
func (p *Printer) emitCallExpression(n *ast.CallExpression) *buffer.Translation {
	flat := buffer.New()
	flat.AppendChild(p.emitExpression(n.Function))
	flat.Append("(")
	for i, arg := range n.Arguments {
		if i > 0 {
			flat.Append(", ")
		}
		flat.AppendChild(p.emitLabeledExpression(arg))
	}
	flat.Append(")")

	if len(n.Arguments) <= 1 || p.fitsFlat(flat) {
		return wrapRanged(flat, n)
	}

	broken := buffer.New()
	broken.AppendChild(p.emitExpression(n.Function))
	broken.Append("(\n")
	p.enter()
	for _, arg := range n.Arguments {
		broken.Append(p.indent())
		broken.AppendChild(p.emitLabeledExpression(arg))
		broken.Append(",\n")
	}
	p.leave()
	broken.Append(p.indent())
	broken.Append(")")
	return wrapRanged(broken, n)
}

func (p *Printer) emitLabeledExpression(arg ast.LabeledExpression) *buffer.Translation {
	t := buffer.New()
	if arg.Label != nil {
		t.Append(*arg.Label + " = ")
	}
	t.AppendChild(p.emitExpression(arg.Expression))
	return t
}

// emitClosureExpression renders a lambda literal as a multi-line block:
// "{ params ->" on the first line, the body indented one level below,
// and the closing "}" on its own line, whatever the body's length.
func (p *Printer) emitClosureExpression(n *ast.ClosureExpression) *buffer.Translation {
	t := buffer.New()
	t.Append("{")
	if len(n.Parameters) > 0 {
		t.Append(" ")
		for i, param := range n.Parameters {
			if i > 0 {
				t.Append(", ")
			}
			t.Append(param.Label)
		}
		t.Append(" ->")
	}
	t.Append("\n")
	p.enter()
	t.AppendChild(p.emitTopLevel(n.Body))
	p.leave()
	t.Append(p.indent())
	t.Append("}")
	return wrapRanged(t, n)
}

// emitSwitchExpression renders a "when" expression, one arm per line.
func (p *Printer) emitSwitchExpression(n *ast.SwitchExpression) *buffer.Translation {
	t := buffer.New()
	t.Append("when (")
	t.AppendChild(p.emitExpression(n.Subject))
	t.Append(") {\n")
	p.enter()
	for _, c := range n.Cases {
		t.Append(p.indent())
		if len(c.Expressions) == 0 {
			t.Append("else")
		} else {
			for i, expr := range c.Expressions {
				if i > 0 {
					t.Append(", ")
				}
				t.AppendChild(p.emitExpression(expr))
			}
		}
		t.Append(" -> ")
		t.AppendChild(p.emitExpression(c.Value))
		t.Append("\n")
	}
	p.leave()
	t.Append(p.indent())
	t.Append("}")
	return wrapRanged(t, n)
}
