package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// rawValuesMembersPass synthesizes a rawValue property and a static
// init?(rawValue:) factory for every enum with raw values, implemented
// via values().firstOrNull { ... }.
func rawValuesMembersPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "raw-values-members",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.EnumDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.EnumDeclaration)
				if !hasAnyRawValue(n) {
					return w.DefaultStatement(n), true
				}
				rawType := rawValueType(n)

				rawValueProp := &ast.VariableDeclaration{
					Base: ast.Base{SourceHandle: ctx.NewHandle()},
					Name: "rawValue", Type: rawType,
				}

				factory := &ast.InitializerDeclaration{
					Base:       ast.Base{SourceHandle: ctx.NewHandle()},
					Name:       "init",
					IsOptional: true,
					Parameters: []ast.FunctionParameter{{Label: "rawValue", APILabel: "rawValue", Type: rawType}},
					ReturnType: ast.TypeName(n.Name),
					Body: []ast.Statement{&ast.ReturnStatement{Value: &ast.CallExpression{
						Function: &ast.DotExpression{
							Receiver: &ast.CallExpression{Function: &ast.DeclarationReferenceExpression{Name: "values"}},
							Member:   "firstOrNull",
						},
						Arguments: []ast.LabeledExpression{{Expression: &ast.ClosureExpression{
							IsTrailing: true,
							Body: []ast.Statement{&ast.ExpressionStatement{Expression: &ast.BinaryOperatorExpression{
								Left:     &ast.DotExpression{Receiver: &ast.DeclarationReferenceExpression{Name: "it"}, Member: "rawValue"},
								Operator: "==",
								Right:    &ast.DeclarationReferenceExpression{Name: "rawValue"},
							}}},
						}}},
						AllowsTrailingClosure: true,
					}}},
				}

				members := &ast.CompanionObjectDeclaration{Members: []ast.Statement{factory}}
				n.Members = append(n.Members, rawValueProp, members)
				return w.DefaultStatement(n), true
			},
		},
	}
}

func hasAnyRawValue(n *ast.EnumDeclaration) bool {
	for _, el := range n.Elements {
		if el.RawValue != nil {
			return true
		}
	}
	return false
}

func rawValueType(n *ast.EnumDeclaration) ast.TypeName {
	for _, el := range n.Elements {
		if el.RawValue == nil {
			continue
		}
		if _, ok := el.RawValue.(*ast.StringLiteral); ok {
			return "String"
		}
		return "Int"
	}
	return "Int"
}
