package recording

import (
	"regexp"
	"strings"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// templateComment matches a magic comment of the form
// "@template: PATTERN => SNIPPET", the convention this frontend uses to
// attach a template to the file it appears in. This is the concrete form
// chosen to carry it through the existing CommentStatement node rather
// than inventing a new AST variant.
var templateComment = regexp.MustCompile(`@template:\s*(.+?)\s*=>\s*(.+)$`)

// templatesPass registers every template found in a file's comments with
// the shared registry.
func templatesPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "templates",
		Statements: map[string]pass.StatementHook{
			typeKey(&ast.CommentStatement{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.CommentStatement)
				text := strings.TrimLeft(n.Text, "/ *")
				if m := templateComment.FindStringSubmatch(text); m != nil {
					ctx.Templates.Register(context.Template{Pattern: m[1], Snippet: m[2]})
				}
				return nil, false
			},
		},
	}
}
