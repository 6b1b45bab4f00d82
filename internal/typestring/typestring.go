// Package typestring manipulates type names as strings.
//
// The core treats types as opaque to itself: it never infers or checks
// them, only queries the oracle and rewrites the strings it is handed.
// A small dedicated string module is enough; a real type-representation
// package would be overkill for a component that never compares two
// types for assignability.
package typestring

import "strings"

// SplitGenericArgs splits "Foo<A, B<C>>" into ("Foo", ["A", "B<C>"]).
// A non-generic name returns (name, nil).
func SplitGenericArgs(typ string) (base string, args []string) {
	open := strings.IndexByte(typ, '<')
	if open == -1 || !strings.HasSuffix(typ, ">") {
		return typ, nil
	}
	base = typ[:open]
	inner := typ[open+1 : len(typ)-1]

	depth := 0
	start := 0
	for i, r := range inner {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	args = append(args, strings.TrimSpace(inner[start:]))
	return base, args
}

// IsParenthesized reports whether typ is wrapped in a single matching pair
// of parentheses, e.g. "(Int, String)" for a tuple or function-parameter
// type spelling.
func IsParenthesized(typ string) bool {
	if len(typ) < 2 || typ[0] != '(' || typ[len(typ)-1] != ')' {
		return false
	}
	depth := 0
	for i, r := range typ {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(typ)-1 {
				return false
			}
		}
	}
	return depth == 0
}

// IsOptional reports whether typ is an optional type spelled with a
// trailing "?", e.g. "String?".
func IsOptional(typ string) bool {
	return strings.HasSuffix(typ, "?") && !strings.HasSuffix(typ, "??")
}

// IsDoubleOptional reports whether typ ends in "??", the construct the
// double-optional warning pass flags.
func IsDoubleOptional(typ string) bool {
	return strings.HasSuffix(typ, "??")
}

// StripOptional removes exactly one trailing "?".
func StripOptional(typ string) string {
	if strings.HasSuffix(typ, "?") {
		return typ[:len(typ)-1]
	}
	return typ
}

// FunctionParts splits a function-type spelling "(A, B) -> C" into its
// parameter-type list and return type. ok is false if typ is not a function
// type.
func FunctionParts(typ string) (params []string, result string, ok bool) {
	arrow := strings.Index(typ, "->")
	if arrow == -1 {
		return nil, "", false
	}
	paramPart := strings.TrimSpace(typ[:arrow])
	result = strings.TrimSpace(typ[arrow+2:])
	result = strings.TrimSuffix(result, " throws")
	if !IsParenthesized(paramPart) {
		return nil, "", false
	}
	inner := paramPart[1 : len(paramPart)-1]
	if strings.TrimSpace(inner) == "" {
		return nil, result, true
	}
	depth := 0
	start := 0
	for i, r := range inner {
		switch r {
		case '(', '<':
			depth++
		case ')', '>':
			depth--
		case ',':
			if depth == 0 {
				params = append(params, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	params = append(params, strings.TrimSpace(inner[start:]))
	return params, result, true
}
