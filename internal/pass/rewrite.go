package pass

import "github.com/swiftkt/transpile/internal/ast"

// RewriteStatement dispatches s to the pass's hook for its concrete type,
// falling back to DefaultStatement (recurse into children, unchanged)
// when the pass has no hook registered for that variant.
func (w *Walker) RewriteStatement(s ast.Statement) []ast.Statement {
	if s == nil {
		return nil
	}
	if repl, ok := w.pass.replaceStatement(w, s); ok {
		return repl
	}
	return w.DefaultStatement(s)
}

func (w *Walker) rewriteStatementList(list []ast.Statement) []ast.Statement {
	if list == nil {
		return nil
	}
	out := make([]ast.Statement, 0, len(list))
	for _, s := range list {
		out = append(out, w.RewriteStatement(s)...)
	}
	return out
}

// DefaultStatement recurses into every child of s and reassembles s
// unchanged (aside from its rewritten children). It is exported so a hook
// can call it explicitly, edit the result, and return that instead of a
// wholesale replacement.
func (w *Walker) DefaultStatement(s ast.Statement) []ast.Statement {
	w.push(s)
	defer w.pop()

	switch n := s.(type) {
	case *ast.CommentStatement:
		// leaf
	case *ast.ExpressionStatement:
		n.Expression = w.RewriteExpression(n.Expression)
	case *ast.ImportStatement:
		// leaf
	case *ast.VariableDeclaration:
		n.Value = w.rewriteExpressionOrNil(n.Value)
	case *ast.AssignmentStatement:
		n.Target = w.RewriteExpression(n.Target)
		n.Value = w.RewriteExpression(n.Value)
	case *ast.ReturnStatement:
		n.Value = w.rewriteExpressionOrNil(n.Value)
	case *ast.BreakStatement:
		// leaf
	case *ast.ContinueStatement:
		// leaf
	case *ast.ThrowStatement:
		n.Value = w.RewriteExpression(n.Value)
	case *ast.DeferStatement:
		n.Body = w.rewriteStatementList(n.Body)
	case *ast.ErrorStatement:
		// leaf
	case *ast.IfStatement:
		n.Conditions = w.rewriteConditions(n.Conditions)
		n.Then = w.rewriteStatementList(n.Then)
		n.Else = w.rewriteStatementList(n.Else)
	case *ast.WhileStatement:
		n.Condition = w.RewriteExpression(n.Condition)
		n.Body = w.rewriteStatementList(n.Body)
	case *ast.ForEachStatement:
		n.Sequence = w.RewriteExpression(n.Sequence)
		n.Body = w.rewriteStatementList(n.Body)
	case *ast.DoStatement:
		n.Body = w.rewriteStatementList(n.Body)
		for i := range n.Catches {
			n.Catches[i].Body = w.rewriteStatementList(n.Catches[i].Body)
		}
	case *ast.SwitchStatement:
		n.Subject = w.RewriteExpression(n.Subject)
		for i := range n.Cases {
			n.Cases[i].Expressions = w.rewriteExpressionList(n.Cases[i].Expressions)
			n.Cases[i].Statements = w.rewriteStatementList(n.Cases[i].Statements)
		}
	case *ast.TypealiasDeclaration:
		// leaf
	case *ast.ExtensionDeclaration:
		n.Members = w.rewriteStatementList(n.Members)
	case *ast.CompanionObjectDeclaration:
		n.Members = w.rewriteStatementList(n.Members)
	case *ast.FunctionDeclaration:
		pop := w.PushLabel(n.Name)
		defer pop()
		n.Parameters = w.rewriteParameters(n.Parameters)
		n.Body = w.rewriteStatementList(n.Body) // nil Body (protocol requirement) stays nil
	case *ast.InitializerDeclaration:
		pop := w.PushLabel(n.Name)
		defer pop()
		n.Parameters = w.rewriteParameters(n.Parameters)
		n.Body = w.rewriteStatementList(n.Body)
		if n.SuperCall != nil {
			if e, ok := w.RewriteExpression(n.SuperCall).(*ast.CallExpression); ok {
				n.SuperCall = e
			}
		}
	case *ast.EnumDeclaration:
		w.pushType(n.Name)
		defer w.popType()
		for i := range n.Elements {
			n.Elements[i].RawValue = w.rewriteExpressionOrNil(n.Elements[i].RawValue)
		}
		n.Members = w.rewriteStatementList(n.Members)
	case *ast.ClassDeclaration:
		w.pushType(n.Name)
		defer w.popType()
		n.Members = w.rewriteStatementList(n.Members)
	case *ast.StructDeclaration:
		w.pushType(n.Name)
		defer w.popType()
		n.Members = w.rewriteStatementList(n.Members)
	case *ast.ProtocolDeclaration:
		w.pushType(n.Name)
		defer w.popType()
		n.Members = w.rewriteStatementList(n.Members)
	default:
		return fatalStatement(s)
	}
	return []ast.Statement{s}
}

// RewriteExpression dispatches e the same way RewriteStatement does.
func (w *Walker) RewriteExpression(e ast.Expression) ast.Expression {
	if e == nil {
		return nil
	}
	if repl, ok := w.pass.replaceExpression(w, e); ok {
		return repl
	}
	return w.DefaultExpression(e)
}

func (w *Walker) rewriteExpressionOrNil(e ast.Expression) ast.Expression {
	if e == nil {
		return nil
	}
	return w.RewriteExpression(e)
}

func (w *Walker) rewriteExpressionList(list []ast.Expression) []ast.Expression {
	if list == nil {
		return nil
	}
	out := make([]ast.Expression, len(list))
	for i, e := range list {
		out[i] = w.RewriteExpression(e)
	}
	return out
}

func (w *Walker) rewriteLabeledList(list []ast.LabeledExpression) []ast.LabeledExpression {
	if list == nil {
		return nil
	}
	out := make([]ast.LabeledExpression, len(list))
	for i, l := range list {
		out[i] = ast.LabeledExpression{Label: l.Label, Expression: w.RewriteExpression(l.Expression)}
	}
	return out
}

func (w *Walker) rewriteConditions(conds []ast.IfCondition) []ast.IfCondition {
	out := make([]ast.IfCondition, len(conds))
	for i, c := range conds {
		if c.Variable != nil {
			w.RewriteStatement(c.Variable) // VariableDeclaration case rewrites its Value in place
			out[i] = ast.IfCondition{Variable: c.Variable}
			continue
		}
		out[i] = ast.IfCondition{Expr: w.RewriteExpression(c.Expr)}
	}
	return out
}

func (w *Walker) rewriteParameters(params []ast.FunctionParameter) []ast.FunctionParameter {
	out := make([]ast.FunctionParameter, len(params))
	for i, p := range params {
		p.Default = w.rewriteExpressionOrNil(p.Default)
		out[i] = p
	}
	return out
}

// DefaultExpression recurses into every child of e and reassembles e
// unchanged, mirroring DefaultStatement.
func (w *Walker) DefaultExpression(e ast.Expression) ast.Expression {
	w.push(e)
	defer w.pop()

	switch n := e.(type) {
	case *ast.LiteralCodeExpression:
		// leaf, opaque target snippet, never recursed into
	case *ast.ConcatenationExpression:
		n.Left = w.RewriteExpression(n.Left)
		n.Right = w.RewriteExpression(n.Right)
	case *ast.ParenthesesExpression:
		n.Inner = w.RewriteExpression(n.Inner)
	case *ast.ForceUnwrapExpression:
		n.Inner = w.RewriteExpression(n.Inner)
	case *ast.OptionalChainExpression:
		n.Inner = w.RewriteExpression(n.Inner)
	case *ast.DeclarationReferenceExpression:
		// leaf
	case *ast.TypeReferenceExpression:
		// leaf
	case *ast.SubscriptExpression:
		n.Subscripted = w.RewriteExpression(n.Subscripted)
		n.Indices = w.rewriteExpressionList(n.Indices)
	case *ast.ArrayExpression:
		n.Elements = w.rewriteExpressionList(n.Elements)
	case *ast.DictionaryExpression:
		for i := range n.Pairs {
			n.Pairs[i].Key = w.RewriteExpression(n.Pairs[i].Key)
			n.Pairs[i].Value = w.RewriteExpression(n.Pairs[i].Value)
		}
	case *ast.ReturnExpression:
		n.Value = w.rewriteExpressionOrNil(n.Value)
	case *ast.DotExpression:
		n.Receiver = w.RewriteExpression(n.Receiver)
	case *ast.BinaryOperatorExpression:
		n.Left = w.RewriteExpression(n.Left)
		n.Right = w.RewriteExpression(n.Right)
	case *ast.PrefixUnaryExpression:
		n.Operand = w.RewriteExpression(n.Operand)
	case *ast.PostfixUnaryExpression:
		n.Operand = w.RewriteExpression(n.Operand)
	case *ast.TernaryIfExpression:
		n.Condition = w.RewriteExpression(n.Condition)
		n.Then = w.RewriteExpression(n.Then)
		n.Else = w.RewriteExpression(n.Else)
	case *ast.CallExpression:
		n.Function = w.RewriteExpression(n.Function)
		n.Arguments = w.rewriteLabeledList(n.Arguments)
	case *ast.ClosureExpression:
		// Deliberately no PushLabel here: CurrentLabel must keep returning
		// the enclosing function's name inside a nested closure body, which
		// is exactly what the returns-in-lambdas pass needs to know.
		n.Parameters = w.rewriteParameters(n.Parameters)
		n.Body = w.rewriteStatementList(n.Body)
	case *ast.TupleExpression:
		n.Elements = w.rewriteLabeledList(n.Elements)
	case *ast.SwitchExpression:
		n.Subject = w.RewriteExpression(n.Subject)
		for i := range n.Cases {
			n.Cases[i].Expressions = w.rewriteExpressionList(n.Cases[i].Expressions)
			n.Cases[i].Value = w.RewriteExpression(n.Cases[i].Value)
		}
	case *ast.ErrorExpression:
		// leaf
	case *ast.IntegerLiteral, *ast.UIntegerLiteral, *ast.DoubleLiteral, *ast.FloatLiteral,
		*ast.BoolLiteral, *ast.StringLiteral, *ast.CharacterLiteral, *ast.NilLiteral:
		// leaves
	case *ast.InterpolatedStringExpression:
		n.Expressions = w.rewriteExpressionList(n.Expressions)
	default:
		return fatalExpression(e)
	}
	return e
}
