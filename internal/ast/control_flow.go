package ast

import "strings"

// IfCondition is either a plain boolean expression or an "if let"-style
// binding declaration. Conditions are evaluated left-to-right with
// short-circuit; only the first condition may have side effects without a
// warning (see the side-effect-in-if-lets pass).
type IfCondition struct {
	Expr     Expression           // set when this condition is a plain boolean test
	Variable *VariableDeclaration // set when this condition is an "if let" binding
}

func (c IfCondition) String() string {
	if c.Variable != nil {
		return c.Variable.String()
	}
	if c.Expr != nil {
		return c.Expr.String()
	}
	return ""
}

// IfStatement is a chain of conditions (conventionally joined with "&&" in
// the source, "&&" in the target too) guarding Then, with an optional
// Else branch (itself an *IfStatement for "else if", or a plain block).
type IfStatement struct {
	Base
	Conditions []IfCondition
	Then       []Statement
	Else       []Statement
	IsGuard    bool // set by the frontend for a source "guard ... else { }"; cleared once the double-negatives-in-guards pass has normalized it into a plain if
}

func (s *IfStatement) statementNode() {}
func (s *IfStatement) String() string {
	conds := make([]string, len(s.Conditions))
	for i, c := range s.Conditions {
		conds[i] = c.String()
	}
	out := "if " + strings.Join(conds, " && ") + " { " + joinStatements(s.Then) + " }"
	if s.Else != nil {
		out += " else { " + joinStatements(s.Else) + " }"
	}
	return out
}

// WhileStatement loops over Body while Condition holds.
type WhileStatement struct {
	Base
	Condition Expression
	Body      []Statement
}

func (s *WhileStatement) statementNode() {}
func (s *WhileStatement) String() string {
	return "while " + s.Condition.String() + " { " + joinStatements(s.Body) + " }"
}

// ForEachStatement iterates Sequence, binding each element to Variable.
type ForEachStatement struct {
	Base
	Variable string
	Sequence Expression
	Body     []Statement
}

func (s *ForEachStatement) statementNode() {}
func (s *ForEachStatement) String() string {
	return "for " + s.Variable + " in " + s.Sequence.String() + " { " + joinStatements(s.Body) + " }"
}

// CatchClause handles one exception type within a DoStatement. Binding is
// empty for a catch with no explicit variable; the catch-variable-
// synthesis pass fills in a synthetic "_error: Error" binding before the
// emitter ever sees it.
type CatchClause struct {
	Binding string
	Type    TypeName
	Body    []Statement
}

func (c CatchClause) String() string {
	return "catch " + c.Binding + ": " + string(c.Type) + " { " + joinStatements(c.Body) + " }"
}

// DoStatement is a try/catch block: Body runs, and control transfers to the
// first matching Catches clause on a thrown error.
type DoStatement struct {
	Base
	Body    []Statement
	Catches []CatchClause
}

func (s *DoStatement) statementNode() {}
func (s *DoStatement) String() string {
	var sb strings.Builder
	sb.WriteString("do { ")
	sb.WriteString(joinStatements(s.Body))
	sb.WriteString(" }")
	for _, c := range s.Catches {
		sb.WriteString(" ")
		sb.WriteString(c.String())
	}
	return sb.String()
}

// SwitchCase is one arm of a SwitchStatement. Statements is always
// non-empty: the source language requires a case to have a body, so no
// pass needs to special-case an empty arm.
type SwitchCase struct {
	Expressions []Expression // empty means this is the default/else arm
	Statements  []Statement
}

func (c SwitchCase) String() string {
	exprs := make([]string, len(c.Expressions))
	for i, e := range c.Expressions {
		exprs[i] = e.String()
	}
	label := "default"
	if len(exprs) > 0 {
		label = strings.Join(exprs, ", ")
	}
	return "case " + label + ": " + joinStatements(c.Statements)
}

// SwitchStatement dispatches on Subject across Cases in order.
type SwitchStatement struct {
	Base
	Subject Expression
	Cases   []SwitchCase
}

func (s *SwitchStatement) statementNode() {}
func (s *SwitchStatement) String() string {
	cases := make([]string, len(s.Cases))
	for i, c := range s.Cases {
		cases[i] = c.String()
	}
	return "switch " + s.Subject.String() + " { " + strings.Join(cases, " ") + " }"
}
