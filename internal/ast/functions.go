package ast

import "strings"

// FunctionParameter is one declared parameter. APILabel is the external
// (call-site) label when it differs from Label (the internal/implementation
// name); either may be "_" to mean "no label". Default is nil for a
// required parameter.
type FunctionParameter struct {
	Label       string
	APILabel    string
	Type        TypeName
	Default     Expression
	IsVariadic  bool
	IsAutoclosure bool // source "@autoclosure"; triggers the autoclosure-wrapping pass at call sites
}

func (p FunctionParameter) String() string {
	label := p.Label
	if p.APILabel != "" && p.APILabel != p.Label {
		label = p.APILabel + " " + p.Label
	}
	out := label + ": " + string(p.Type)
	if p.IsVariadic {
		out += "..."
	}
	if p.Default != nil {
		out += " = " + p.Default.String()
	}
	return out
}

func joinParameters(params []FunctionParameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

// FunctionDeclaration is a named function, method, or (with IsOpen/Access
// set by their respective passes) a member of a class/struct/protocol.
type FunctionDeclaration struct {
	Base
	Name        string
	Parameters  []FunctionParameter
	ReturnType  TypeName
	Body        []Statement // nil body + IsProtocolInterfaceMember means a protocol requirement
	Access      string
	ExtendsType string // set by remove-extensions when this was an extension member
	GenericParameters []string // propagated from the enclosing extension's own generic parameter list, if any
	IsStatic    bool
	IsOpen      bool // populated by the Open pass; must not be read before it runs
	IsOverride  bool
	IsMutating  bool // struct/enum mutating method; flagged by the mutable-value-type warning
	IsProtocolInterfaceMember bool // set by the protocol-contents pass
	IsPure      bool // recorded in the context's pure-function table
}

func (s *FunctionDeclaration) statementNode() {}
func (s *FunctionDeclaration) String() string {
	var sb strings.Builder
	if s.IsOverride {
		sb.WriteString("override ")
	}
	sb.WriteString("fun ")
	sb.WriteString(s.Name)
	sb.WriteString("(")
	sb.WriteString(joinParameters(s.Parameters))
	sb.WriteString(")")
	if s.ReturnType != "" {
		sb.WriteString(": ")
		sb.WriteString(string(s.ReturnType))
	}
	if s.Body != nil {
		sb.WriteString(" { ")
		sb.WriteString(joinStatements(s.Body))
		sb.WriteString(" }")
	}
	return sb.String()
}

// InitializerDeclaration is a refinement of FunctionDeclaration: its Name
// is conventionally "init" (ignored by structural equality, per the data
// model invariant), it may delegate to a superclass initializer, and it may
// be failable (IsOptional).
type InitializerDeclaration struct {
	Base
	Name       string // conventionally "init"; excluded from Equal
	Parameters []FunctionParameter
	ReturnType TypeName // filled in by the initializer-return-types recording pass
	Body       []Statement
	SuperCall  *CallExpression // extracted by the super-calls-to-headers pass; nil if none
	IsOptional bool            // failable initializer ("init?")
	IsStatic   bool            // carried as the frontend set it; no pass reads or changes it
	Access     string
}

func (s *InitializerDeclaration) statementNode() {}
func (s *InitializerDeclaration) String() string {
	name := "init"
	if s.IsOptional {
		name += "?"
	}
	return name + "(" + joinParameters(s.Parameters) + ") { " + joinStatements(s.Body) + " }"
}
