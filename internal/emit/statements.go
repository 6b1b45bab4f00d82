package emit

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/buffer"
)

// emitStatement dispatches on the concrete statement variant. It never
// needs to handle ExtensionDeclaration: the remove-extensions pass inlines
// every member into its extended type and deletes the wrapper before the
// emitter ever runs.
func (p *Printer) emitStatement(s ast.Statement) *buffer.Translation {
	switch n := s.(type) {
	case *ast.CommentStatement:
		return leaf(n.Text, n)
	case *ast.ExpressionStatement:
		if n.Expression == nil {
			return buffer.New()
		}
		return wrapRanged(p.emitExpression(n.Expression), n)
	case *ast.ImportStatement:
		return leaf("import "+n.Module, n)
	case *ast.VariableDeclaration:
		return p.emitVariableDeclaration(n)
	case *ast.AssignmentStatement:
		return p.emitAssignmentStatement(n)
	case *ast.ReturnStatement:
		return p.emitReturnStatement(n)
	case *ast.BreakStatement:
		return leaf("break", n)
	case *ast.ContinueStatement:
		return leaf("continue", n)
	case *ast.ThrowStatement:
		t := buffer.New()
		t.Append("throw ")
		t.AppendChild(p.emitExpression(n.Value))
		return wrapRanged(t, n)
	case *ast.DeferStatement:
		// Reached only when a defer is emitted outside emitTopLevel's
		// statement-list walk (e.g. as a lone statement); there's nothing
		// after it in that case, so the try body is empty.
		return p.emitDeferWrapped(n, nil)
	case *ast.ErrorStatement:
		return leaf("<error: "+n.Message+">", n)
	case *ast.IfStatement:
		return p.emitIfStatement(n)
	case *ast.WhileStatement:
		t := buffer.New()
		t.Append("while (")
		t.AppendChild(p.emitExpression(n.Condition))
		t.Append(") ")
		t.AppendChild(p.emitBlock(n.Body))
		return wrapRanged(t, n)
	case *ast.ForEachStatement:
		t := buffer.New()
		t.Append("for (" + n.Variable + " in ")
		t.AppendChild(p.emitExpression(n.Sequence))
		t.Append(") ")
		t.AppendChild(p.emitBlock(n.Body))
		return wrapRanged(t, n)
	case *ast.DoStatement:
		return p.emitDoStatement(n)
	case *ast.SwitchStatement:
		return p.emitSwitchStatement(n)

	case *ast.ClassDeclaration:
		return p.emitClassDeclaration(n)
	case *ast.StructDeclaration:
		return p.emitStructDeclaration(n)
	case *ast.ProtocolDeclaration:
		return p.emitProtocolDeclaration(n)
	case *ast.TypealiasDeclaration:
		return leaf("typealias "+n.Name+" = "+translateType(n.Type), n)
	case *ast.CompanionObjectDeclaration:
		t := buffer.New()
		t.Append("companion object ")
		t.AppendChild(p.emitBlock(n.Members))
		return wrapRanged(t, n)
	case *ast.EnumDeclaration:
		return p.emitEnumDeclaration(n)
	case *ast.FunctionDeclaration:
		return p.emitFunctionDeclaration(n)
	case *ast.InitializerDeclaration:
		return p.emitInitializerDeclaration(n)

	default:
		return leaf("<unsupported statement>", baseNode{})
	}
}

func (p *Printer) emitVariableDeclaration(n *ast.VariableDeclaration) *buffer.Translation {
	t := buffer.New()
	if n.Access != "" {
		t.Append(n.Access + " ")
	}
	kw := "val"
	if n.IsMutable {
		kw = "var"
	}
	t.Append(kw + " " + n.Name)
	if n.Type != "" {
		t.Append(": " + translateType(n.Type))
	}
	if n.Value != nil {
		t.Append(" = ")
		t.AppendChild(p.emitExpression(n.Value))
	}
	return wrapRanged(t, n)
}

func (p *Printer) emitAssignmentStatement(n *ast.AssignmentStatement) *buffer.Translation {
	t := buffer.New()
	t.AppendChild(p.emitExpression(n.Target))
	t.Append(" " + string(n.Operator) + " ")
	t.AppendChild(p.emitExpression(n.Value))
	return wrapRanged(t, n)
}

func (p *Printer) emitReturnStatement(n *ast.ReturnStatement) *buffer.Translation {
	t := buffer.New()
	t.Append("return")
	if n.Label != "" {
		t.Append("@" + n.Label)
	}
	if n.Value != nil {
		t.Append(" ")
		t.AppendChild(p.emitExpression(n.Value))
	}
	return wrapRanged(t, n)
}

func (p *Printer) emitIfStatement(n *ast.IfStatement) *buffer.Translation {
	t := buffer.New()
	t.Append("if (")
	for i, c := range n.Conditions {
		if i > 0 {
			t.Append(" && ")
		}
		t.AppendChild(p.emitIfCondition(c))
	}
	t.Append(") ")
	t.AppendChild(p.emitBlock(n.Then))
	if n.Else != nil {
		t.Append(" else ")
		if len(n.Else) == 1 {
			if nested, ok := n.Else[0].(*ast.IfStatement); ok {
				t.AppendChild(p.emitIfStatement(nested))
				return wrapRanged(t, n)
			}
		}
		t.AppendChild(p.emitBlock(n.Else))
	}
	return wrapRanged(t, n)
}

func (p *Printer) emitIfCondition(c ast.IfCondition) *buffer.Translation {
	if c.Variable != nil {
		return p.emitVariableDeclaration(c.Variable)
	}
	return p.emitExpression(c.Expr)
}

func (p *Printer) emitDoStatement(n *ast.DoStatement) *buffer.Translation {
	t := buffer.New()
	t.Append("try ")
	t.AppendChild(p.emitBlock(n.Body))
	for _, c := range n.Catches {
		t.Append(" catch (" + c.Binding + ": " + translateType(c.Type) + ") ")
		t.AppendChild(p.emitBlock(c.Body))
	}
	return wrapRanged(t, n)
}

// emitSwitchStatement renders a "when" used in statement position, for a
// switch whose arms weren't liftable into a SwitchExpression.
func (p *Printer) emitSwitchStatement(n *ast.SwitchStatement) *buffer.Translation {
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
		t.Append(" -> {\n")
		p.enter()
		t.AppendChild(p.emitTopLevel(c.Statements))
		p.leave()
		t.Append(p.indent())
		t.Append("}\n")
	}
	p.leave()
	t.Append(p.indent())
	t.Append("}")
	return wrapRanged(t, n)
}
