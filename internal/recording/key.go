package recording

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/pass"
)

// typeKey is a package-local alias for pass.TypeKey, kept short since
// every recording pass's hook table is built around it.
func typeKey(n ast.Node) string { return pass.TypeKey(n) }
