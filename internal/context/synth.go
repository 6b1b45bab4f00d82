package context

import (
	"github.com/google/uuid"

	"github.com/swiftkt/transpile/internal/ast"
)

// NewHandle returns a fresh opaque handle for a node a pass synthesizes
// rather than receives from the frontend (the rawValue property and
// factory of a raw-value enum, a newly created companion object). It's
// distinct from any real frontend
// SyntaxHandle, so the index oracle can tell a synthesized node apart from
// one it was actually asked about; querying it is a caller bug, not a
// miss that should silently fall through to some other node's answer.
func (c *Context) NewHandle() ast.SyntaxHandle {
	return uuid.NewString()
}
