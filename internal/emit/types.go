// Package emit implements the emitter: it serializes a rewritten AST
// into target source text, tracking indentation, line width, and
// per-range provenance via internal/buffer.
package emit

import (
	"strings"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/typestring"
)

// translateType rewrites a type spelling from the source's conventions to
// the target's: "()"/"Void" become "Unit", "[T]" becomes "List<T>",
// "[K:V]" becomes "Map<K,V>", "Array<T>"/"Dictionary<K,V>" become the same
// two, a 2-element tuple type becomes "Pair<A,B>", and a function type
// keeps its "(A, B) -> C" shape with each parameter and the result
// translated in turn (so "(Int) -> Void" becomes "(Int) -> Unit") and a
// trailing "throws" dropped. Optionality ("?") and generic application
// both recurse through unchanged.
func translateType(t ast.TypeName) string {
	s := string(t)
	if s == "" {
		return s
	}
	if strings.HasSuffix(s, "?") && !strings.HasSuffix(s, "??") {
		return translateType(ast.TypeName(s[:len(s)-1])) + "?"
	}
	if params, result, ok := typestring.FunctionParts(s); ok {
		return translateFunctionType(params, result)
	}
	if s != "()" && typestring.IsParenthesized(s) {
		return translateTupleType(s)
	}
	switch s {
	case "()", "Void":
		return "Unit"
	}
	if mapped, ok := mapBracketLiteral(s); ok {
		return mapped
	}
	base, args := typestring.SplitGenericArgs(s)
	base = translateBaseName(base)
	if len(args) == 0 {
		return base
	}
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = translateType(ast.TypeName(a))
	}
	return base + "<" + strings.Join(out, ", ") + ">"
}

func translateBaseName(base string) string {
	switch base {
	case "Array":
		return "List"
	case "Dictionary":
		return "Map"
	default:
		return base
	}
}

// translateTupleType handles a parenthesized tuple type spelling, e.g.
// "(Int, String)" -> "Pair<Int, String>". A single-element or empty
// parenthesized form is left alone; it isn't a tuple.
func translateTupleType(s string) string {
	inner := s[1 : len(s)-1]
	parts := splitTopLevel(inner)
	if len(parts) != 2 {
		return s
	}
	return "Pair<" + translateType(ast.TypeName(parts[0])) + ", " + translateType(ast.TypeName(parts[1])) + ">"
}

func translateFunctionType(params []string, result string) string {
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = translateType(ast.TypeName(p))
	}
	ret := translateType(ast.TypeName(result))
	return "(" + strings.Join(out, ", ") + ") -> " + ret
}

// splitTopLevel splits s on top-level commas (not nested inside angle
// brackets or parentheses), trimming whitespace from each part.
func splitTopLevel(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var parts []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(', '<':
			depth++
		case ')', '>':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	parts = append(parts, strings.TrimSpace(s[start:]))
	return parts
}

// mapBracketLiteral recognizes the bracket-literal type spellings a
// frontend may hand the core directly rather than as a named generic
// application: "[T]" -> "List<T>", "[K:V]" -> "Map<K,V>". These never nest
// inside SplitGenericArgs's "<...>" grammar, so they're resolved before it
// sees the string at all.
func mapBracketLiteral(s string) (string, bool) {
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return "", false
	}
	inner := s[1 : len(s)-1]
	depth := 0
	for i, r := range inner {
		switch r {
		case '[', '<', '(':
			depth++
		case ']', '>', ')':
			depth--
		case ':':
			if depth == 0 {
				key, val := inner[:i], inner[i+1:]
				return "Map<" + translateType(ast.TypeName(key)) + ", " + translateType(ast.TypeName(val)) + ">", true
			}
		}
	}
	return "List<" + translateType(ast.TypeName(inner)) + ">", true
}
