// Package oracle implements the index-oracle collaborator: the external
// service that resolves what type a given expression's parent expression
// has. The core never computes types itself; it queries this interface
// and otherwise treats handles as opaque.
package oracle

import "github.com/swiftkt/transpile/internal/ast"

// Oracle answers the one question the core ever asks an external
// type/index service: what type does the expression that owns handle
// resolve to. ok is false when handle is unknown to the oracle: a
// synthesized node's handle, or a frontend handle the oracle was never
// given an answer for.
type Oracle interface {
	GetParentType(handle ast.SyntaxHandle) (string, bool)
}

// Static is a fixed map-backed Oracle, useful for tests and for any
// caller that has already resolved every handle it cares about up front.
type Static map[string]string

// GetParentType looks handle up by its string form. A non-string handle
// never matches. A handle synthesized via context.NewHandle is a string,
// but a fresh one is not a key of the map, so it misses too.
func (s Static) GetParentType(handle ast.SyntaxHandle) (string, bool) {
	key, ok := handle.(string)
	if !ok {
		return "", false
	}
	t, ok := s[key]
	return t, ok
}
