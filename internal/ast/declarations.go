package ast

// TypealiasDeclaration introduces a name for an existing type.
type TypealiasDeclaration struct {
	Base
	Name string
	Type TypeName
}

func (s *TypealiasDeclaration) statementNode() {}
func (s *TypealiasDeclaration) String() string {
	return "typealias " + s.Name + " = " + string(s.Type)
}

// ExtensionDeclaration adds Members to an existing TypeName. The
// remove-extensions pass inlines every member into the extended type (by
// setting the member's ExtendsType) and deletes the wrapper, so no later
// pass or the emitter ever needs to handle this variant.
type ExtensionDeclaration struct {
	Base
	ExtendedType     TypeName
	GenericParameters []string
	Members          []Statement
}

func (s *ExtensionDeclaration) statementNode() {}
func (s *ExtensionDeclaration) String() string {
	return "extension " + string(s.ExtendedType) + " { " + joinStatements(s.Members) + " }"
}

// CompanionObjectDeclaration gathers the static members of an enclosing
// class/struct/enum. It is produced by the static-members pass; the
// frontend never emits one directly since the source language has no
// equivalent declaration (static members sit directly on the declaring
// type).
type CompanionObjectDeclaration struct {
	Base
	Members []Statement
}

func (s *CompanionObjectDeclaration) statementNode() {}
func (s *CompanionObjectDeclaration) String() string {
	return "companion object { " + joinStatements(s.Members) + " }"
}
