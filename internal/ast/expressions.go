package ast

import "strings"

// LabeledExpression is an optionally-labeled expression: a call argument or
// a tuple element. Label is nil for an unlabeled element.
type LabeledExpression struct {
	Label      *string
	Expression Expression
}

func (l LabeledExpression) String() string {
	if l.Label != nil {
		return *l.Label + ": " + l.Expression.String()
	}
	return l.Expression.String()
}

func joinLabeled(items []LabeledExpression) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.String()
	}
	return strings.Join(parts, ", ")
}

// LiteralCodeExpression is an opaque target-language snippet, typically
// produced by the template-replacement pass. Type is set when the snippet
// has a known result type; subsequent passes never recurse into it.
type LiteralCodeExpression struct {
	Base
	Code string
	Type TypeName
}

func (e *LiteralCodeExpression) expressionNode() {}
func (e *LiteralCodeExpression) String() string   { return e.Code }

// ConcatenationExpression joins Left and Right in the output with no
// separator between them; used by passes that graft target-only syntax
// (e.g. a receiver plus a generated method call) onto an expression
// without introducing an intermediate AST shape for it.
type ConcatenationExpression struct {
	Base
	Left, Right Expression
}

func (e *ConcatenationExpression) expressionNode() {}
func (e *ConcatenationExpression) String() string   { return e.Left.String() + e.Right.String() }

// ParenthesesExpression wraps Inner in explicit parentheses.
type ParenthesesExpression struct {
	Base
	Inner Expression
}

func (e *ParenthesesExpression) expressionNode() {}
func (e *ParenthesesExpression) String() string   { return "(" + e.Inner.String() + ")" }

// ForceUnwrapExpression unwraps an optional, trapping if it is nil ("x!").
type ForceUnwrapExpression struct {
	Base
	Inner Expression
}

func (e *ForceUnwrapExpression) expressionNode() {}
func (e *ForceUnwrapExpression) String() string   { return e.Inner.String() + "!" }

// OptionalChainExpression short-circuits to nil if Inner is nil ("x?").
type OptionalChainExpression struct {
	Base
	Inner Expression
}

func (e *OptionalChainExpression) expressionNode() {}
func (e *OptionalChainExpression) String() string   { return e.Inner.String() + "?" }

// DeclarationReferenceExpression references an identifier: a variable,
// function, or type used as a value. IsStandardLibrary is set by the
// frontend/oracle and consulted by the standard-library warning pass;
// any reference still flagged after template replacement emits a
// diagnostic.
type DeclarationReferenceExpression struct {
	Base
	Name             string
	Type             TypeName
	IsStandardLibrary bool
}

func (e *DeclarationReferenceExpression) expressionNode() {}
func (e *DeclarationReferenceExpression) String() string   { return e.Name }

// TypeReferenceExpression references a type itself as a value, e.g. in
// "T.self" or a static member access "T.staticMember".
type TypeReferenceExpression struct {
	Base
	Type TypeName
}

func (e *TypeReferenceExpression) expressionNode() {}
func (e *TypeReferenceExpression) String() string   { return string(e.Type) }

// SubscriptExpression indexes Subscripted by Indices, e.g. "a[i]" or, with
// more than one index, "matrix[i, j]".
type SubscriptExpression struct {
	Base
	Subscripted Expression
	Indices     []Expression
	Type        TypeName
}

func (e *SubscriptExpression) expressionNode() {}
func (e *SubscriptExpression) String() string {
	idx := make([]string, len(e.Indices))
	for i, x := range e.Indices {
		idx[i] = x.String()
	}
	return e.Subscripted.String() + "[" + strings.Join(idx, ", ") + "]"
}

// ArrayExpression is an array literal.
type ArrayExpression struct {
	Base
	Elements []Expression
	Type     TypeName
}

func (e *ArrayExpression) expressionNode() {}
func (e *ArrayExpression) String() string {
	parts := make([]string, len(e.Elements))
	for i, x := range e.Elements {
		parts[i] = x.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// DictionaryPair is one key/value pair of a DictionaryExpression.
type DictionaryPair struct {
	Key, Value Expression
}

// DictionaryExpression is a dictionary literal.
type DictionaryExpression struct {
	Base
	Pairs []DictionaryPair
	Type  TypeName
}

func (e *DictionaryExpression) expressionNode() {}
func (e *DictionaryExpression) String() string {
	parts := make([]string, len(e.Pairs))
	for i, p := range e.Pairs {
		parts[i] = p.Key.String() + ": " + p.Value.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ReturnExpression is a return used in expression position: the value a
// switch-to-expression rewrite produces for an arm that, before rewriting,
// ended in "return expr".
type ReturnExpression struct {
	Base
	Value Expression
}

func (e *ReturnExpression) expressionNode() {}
func (e *ReturnExpression) String() string {
	if e.Value == nil {
		return "return"
	}
	return "return " + e.Value.String()
}

// DotExpression is member access, "Receiver.Member". Passes that introduce
// optional-chaining into a dot chain (the add-optionals-in-dot-chains pass)
// do so by wrapping Receiver in an OptionalChainExpression, not by adding a
// field here.
type DotExpression struct {
	Base
	Receiver Expression
	Member   string
	Type     TypeName
}

func (e *DotExpression) expressionNode() {}
func (e *DotExpression) String() string   { return e.Receiver.String() + "." + e.Member }

// BinaryOperatorExpression is a binary operation. Associativity is not
// encoded on the node: right-associated operators are represented
// recursively (Right nested one level deeper for each further operand), so
// no explicit associativity flag is needed.
type BinaryOperatorExpression struct {
	Base
	Left, Right Expression
	Operator    string
	Type        TypeName
}

func (e *BinaryOperatorExpression) expressionNode() {}
func (e *BinaryOperatorExpression) String() string {
	return e.Left.String() + " " + e.Operator + " " + e.Right.String()
}

// PrefixUnaryExpression is a prefix unary operation, e.g. "!x" or "-x".
type PrefixUnaryExpression struct {
	Base
	Operator string
	Operand  Expression
	Type     TypeName
}

func (e *PrefixUnaryExpression) expressionNode() {}
func (e *PrefixUnaryExpression) String() string   { return e.Operator + e.Operand.String() }

// PostfixUnaryExpression is a postfix unary operation, e.g. "x++".
type PostfixUnaryExpression struct {
	Base
	Operand  Expression
	Operator string
	Type     TypeName
}

func (e *PostfixUnaryExpression) expressionNode() {}
func (e *PostfixUnaryExpression) String() string   { return e.Operand.String() + e.Operator }

// TernaryIfExpression is "cond ? then : else".
type TernaryIfExpression struct {
	Base
	Condition, Then, Else Expression
	Type                  TypeName
}

func (e *TernaryIfExpression) expressionNode() {}
func (e *TernaryIfExpression) String() string {
	return e.Condition.String() + " ? " + e.Then.String() + " : " + e.Else.String()
}

// CallExpression calls Function with Arguments. AllowsTrailingClosure
// records whether the source syntax used trailing-closure sugar
// (consulted by the call-argument matcher's forward-scan policy); IsPure
// reflects the context's pure-function table at the time the call was
// analyzed.
type CallExpression struct {
	Base
	Function               Expression
	Arguments               []LabeledExpression
	Type                    TypeName
	AllowsTrailingClosure   bool
	IsPure                  bool
}

func (e *CallExpression) expressionNode() {}
func (e *CallExpression) String() string {
	return e.Function.String() + "(" + joinLabeled(e.Arguments) + ")"
}

// ClosureExpression is a function literal.
type ClosureExpression struct {
	Base
	Parameters    []FunctionParameter
	Body          []Statement
	Type          TypeName
	IsTrailing    bool // this closure was written as a trailing closure at its call site
}

func (e *ClosureExpression) expressionNode() {}
func (e *ClosureExpression) String() string {
	return "{ (" + joinParameters(e.Parameters) + ") in " + joinStatements(e.Body) + " }"
}

// TupleExpression is a fixed-size tuple literal. The tuples-to-pairs pass
// rewrites 2-element tuples outside call arguments and for-each bindings
// into Pair(...) constructor calls.
type TupleExpression struct {
	Base
	Elements []LabeledExpression
	Type     TypeName
}

func (e *TupleExpression) expressionNode() {}
func (e *TupleExpression) String() string { return "(" + joinLabeled(e.Elements) + ")" }

// SwitchExpression is the expression-valued form of a SwitchStatement,
// produced by the switches-to-expression rewrite pass when every original
// case ended in "return expr" or an assignment to the same left-hand side.
type SwitchExpression struct {
	Base
	Subject Expression
	Cases   []SwitchExpressionCase
	Type    TypeName
}

// SwitchExpressionCase is one arm of a SwitchExpression: a guard expression
// list (empty means the default/else arm) producing Value.
type SwitchExpressionCase struct {
	Expressions []Expression
	Value       Expression
}

func (e *SwitchExpression) expressionNode() {}
func (e *SwitchExpression) String() string {
	cases := make([]string, len(e.Cases))
	for i, c := range e.Cases {
		label := "else"
		if len(c.Expressions) > 0 {
			parts := make([]string, len(c.Expressions))
			for j, x := range c.Expressions {
				parts[j] = x.String()
			}
			label = strings.Join(parts, ", ")
		}
		cases[i] = label + " -> " + c.Value.String()
	}
	return "when (" + e.Subject.String() + ") { " + strings.Join(cases, "; ") + " }"
}

// ErrorExpression is the sentinel left behind when a pass encounters an
// expression variant it was specified to have already eliminated.
type ErrorExpression struct {
	Base
	Message string
}

func (e *ErrorExpression) expressionNode() {}
func (e *ErrorExpression) String() string   { return "<error: " + e.Message + ">" }
