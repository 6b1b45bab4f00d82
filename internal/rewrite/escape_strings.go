package rewrite

import (
	"strings"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// escapeStringsAndCharactersPass escapes a literal "$" in string content
// (the target reads an unescaped one as interpolation) and a literal "'"
// in a character literal. A character literal
// can't hold an escape sequence in its single rune, so an escaped quote
// character is represented as opaque target code instead.
func escapeStringsAndCharactersPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "escape-dollar-and-quote",
		Expressions: map[string]pass.ExpressionHook{
			pass.TypeKey(&ast.StringLiteral{}): func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
				n := e.(*ast.StringLiteral)
				n.Value = strings.ReplaceAll(n.Value, "$", `\$`)
				return n, true
			},
			pass.TypeKey(&ast.InterpolatedStringExpression{}): func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
				n := e.(*ast.InterpolatedStringExpression)
				def := w.DefaultExpression(n).(*ast.InterpolatedStringExpression)
				for i, part := range def.Parts {
					def.Parts[i] = strings.ReplaceAll(part, "$", `\$`)
				}
				return def, true
			},
			pass.TypeKey(&ast.CharacterLiteral{}): func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
				n := e.(*ast.CharacterLiteral)
				if n.Value == '\'' {
					return &ast.LiteralCodeExpression{Base: n.Base, Code: `'\''`, Type: "Char"}, true
				}
				return n, true
			},
		},
	}
}
