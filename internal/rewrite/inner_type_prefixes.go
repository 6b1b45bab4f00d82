package rewrite

import (
	"strings"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// innerTypePrefixesPass shortens a type reference to one of the types
// currently enclosing it: inside A, a reference to A.B needs only say B;
// inside A.Inner, a reference to either A.B or A.Inner.B shortens the same
// way, trying the innermost enclosing name first.
func innerTypePrefixesPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "inner-type-prefixes",
		Expressions: map[string]pass.ExpressionHook{
			pass.TypeKey(&ast.TypeReferenceExpression{}): func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
				n := e.(*ast.TypeReferenceExpression)
				base, args := n.Type.SplitGenericArgs()
				n.Type = ast.TypeName(shortenTypeName(w, base) + reassembleGenericArgs(args))
				return n, true
			},
		},
	}
}

func reassembleGenericArgs(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return "<" + strings.Join(args, ", ") + ">"
}

func shortenTypeName(w *pass.Walker, t string) string {
	full := w.GetFullType()
	if full == "" {
		return t
	}
	parts := strings.Split(full, ".")
	for i := len(parts); i >= 1; i-- {
		prefix := strings.Join(parts[:i], ".")
		if strings.HasPrefix(t, prefix+".") {
			return strings.TrimPrefix(t, prefix+".")
		}
	}
	return t
}
