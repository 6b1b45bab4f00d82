package ast

import "github.com/swiftkt/transpile/internal/typestring"

// TypeName is a type spelling as the frontend/oracle hand it to the core:
// an opaque string the core never type-checks, only rewrites. See
// internal/typestring for the string-manipulation helpers this wraps.
type TypeName string

func (t TypeName) String() string { return string(t) }

func (t TypeName) IsOptional() bool       { return typestring.IsOptional(string(t)) }
func (t TypeName) IsDoubleOptional() bool { return typestring.IsDoubleOptional(string(t)) }

func (t TypeName) StripOptional() TypeName {
	return TypeName(typestring.StripOptional(string(t)))
}

func (t TypeName) SplitGenericArgs() (base string, args []string) {
	return typestring.SplitGenericArgs(string(t))
}
