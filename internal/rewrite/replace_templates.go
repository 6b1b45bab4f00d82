// Package rewrite implements the second-round semantic-rewrite passes:
// one file per pass (or per small family of related passes), run in the
// fixed documented order by Run in rewrite.go.
package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// replaceTemplatesPass matches registered template patterns against
// every expression's literal source form and substitutes the target
// snippet as an opaque LiteralCodeExpression. Runs first in the fixed
// order so no later pass ever sees a source-only form a template exists
// to replace.
func replaceTemplatesPass(ctx *context.Context) *pass.Pass {
	p := &pass.Pass{PassName: "replace-templates"}
	hook := func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
		def := w.DefaultExpression(e)
		if snippet, ok := ctx.Templates.Match(def.String()); ok {
			return &ast.LiteralCodeExpression{Base: baseOf(def), Code: snippet}, true
		}
		return def, true
	}
	p.Expressions = map[string]pass.ExpressionHook{}
	for _, proto := range allExpressionPrototypes {
		p.Expressions[pass.TypeKey(proto)] = hook
	}
	return p
}
