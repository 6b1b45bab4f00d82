package ast

import "strings"

// ClassDeclaration declares a reference type. IsOpen is populated by the
// Open pass and must never be consulted before that pass runs.
type ClassDeclaration struct {
	Base
	Name              string
	GenericParameters []string
	Inherits          []string
	Members           []Statement
	Access            string
	IsOpen            bool
	IsFinal           bool
}

func (s *ClassDeclaration) statementNode() {}
func (s *ClassDeclaration) String() string {
	return classLikeString("class", s.Name, s.Inherits, s.Members)
}

// StructDeclaration declares a value type. Only the synthesized memberwise
// initializer survives translation (the struct-initializer-warning pass
// deletes any explicit one); mutable stored properties and mutating
// methods are flagged by the mutable-value-type warning pass.
type StructDeclaration struct {
	Base
	Name              string
	GenericParameters []string
	Inherits          []string
	Members           []Statement
	Access            string
}

func (s *StructDeclaration) statementNode() {}
func (s *StructDeclaration) String() string {
	return classLikeString("data class", s.Name, s.Inherits, s.Members)
}

// ProtocolDeclaration declares an interface. The protocol-contents pass
// clears its members' bodies and marks them as interface members before
// the emitter ever sees them.
type ProtocolDeclaration struct {
	Base
	Name     string
	Inherits []string
	Members  []Statement
	Access   string
}

func (s *ProtocolDeclaration) statementNode() {}
func (s *ProtocolDeclaration) String() string {
	return classLikeString("interface", s.Name, s.Inherits, s.Members)
}

func classLikeString(keyword, name string, inherits []string, members []Statement) string {
	out := keyword + " " + name
	if len(inherits) > 0 {
		out += ": " + strings.Join(inherits, ", ")
	}
	return out + " { " + joinStatements(members) + " }"
}
