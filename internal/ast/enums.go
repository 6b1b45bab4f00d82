package ast

import "strings"

// LabeledType is a labeled associated-value slot on a sealed-enum element,
// e.g. the "distance: Int" in "case south(distance: Int)".
type LabeledType struct {
	Label string // "" for an unlabeled associated value
	Type  TypeName
}

func (l LabeledType) String() string {
	if l.Label == "" {
		return string(l.Type)
	}
	return l.Label + ": " + string(l.Type)
}

// EnumElement is one case of an EnumDeclaration. AssociatedValues
// non-empty implies the enum is a sealed enum; RawValue is filled by the
// implicit-raw-values recording pass when it was omitted in source and
// the enum inherits from an integer or string family.
type EnumElement struct {
	Name             string
	AssociatedValues []LabeledType
	RawValue         Expression // nil until defaulted or never applicable
	Annotations      []string
}

func (e EnumElement) String() string {
	if len(e.AssociatedValues) == 0 {
		out := "case " + e.Name
		if e.RawValue != nil {
			out += " = " + e.RawValue.String()
		}
		return out
	}
	parts := make([]string, len(e.AssociatedValues))
	for i, v := range e.AssociatedValues {
		parts[i] = v.String()
	}
	return "case " + e.Name + "(" + strings.Join(parts, ", ") + ")"
}

// IsSealed reports whether this element implies a sealed-class enum.
func (e EnumElement) IsSealed() bool { return len(e.AssociatedValues) > 0 }

// EnumDeclaration declares an enum. Whether it compiles as an enum-class or
// a sealed-class is recorded in the context by the enum-recording pass
// and must not be assumed before that pass runs.
type EnumDeclaration struct {
	Base
	Name         string
	Inherits     []string
	Elements     []EnumElement
	Members      []Statement // methods, computed properties, etc.
	Access       string
}

func (s *EnumDeclaration) statementNode() {}
func (s *EnumDeclaration) String() string {
	elems := make([]string, len(s.Elements))
	for i, e := range s.Elements {
		elems[i] = e.String()
	}
	out := "enum " + s.Name
	if len(s.Inherits) > 0 {
		out += ": " + strings.Join(s.Inherits, ", ")
	}
	out += " { " + strings.Join(elems, "; ")
	if len(s.Members) > 0 {
		out += "; " + joinStatements(s.Members)
	}
	return out + " }"
}
