package rewrite

import "github.com/swiftkt/transpile/internal/ast"

// baseOf lifts a node's existing handle/range into a fresh ast.Base, for
// passes that synthesize a replacement node and want to keep pointing
// diagnostics at the original source position.
func baseOf(n ast.Node) ast.Base {
	return ast.Base{SourceHandle: n.Handle(), SourceRangeV: n.Range()}
}

// allExpressionPrototypes enumerates every expression variant. Passes
// that must inspect every expression regardless of shape (replace
// templates, add-optionals-in-dot-chains) build their hook table from
// this instead of hand-listing each of the two dozen variants.
var allExpressionPrototypes = []ast.Expression{
	&ast.LiteralCodeExpression{}, &ast.ConcatenationExpression{}, &ast.ParenthesesExpression{},
	&ast.ForceUnwrapExpression{}, &ast.OptionalChainExpression{}, &ast.DeclarationReferenceExpression{},
	&ast.TypeReferenceExpression{}, &ast.SubscriptExpression{}, &ast.ArrayExpression{},
	&ast.DictionaryExpression{}, &ast.ReturnExpression{}, &ast.DotExpression{},
	&ast.BinaryOperatorExpression{}, &ast.PrefixUnaryExpression{}, &ast.PostfixUnaryExpression{},
	&ast.TernaryIfExpression{}, &ast.CallExpression{}, &ast.ClosureExpression{},
	&ast.TupleExpression{}, &ast.SwitchExpression{}, &ast.ErrorExpression{},
	&ast.IntegerLiteral{}, &ast.UIntegerLiteral{}, &ast.DoubleLiteral{}, &ast.FloatLiteral{},
	&ast.BoolLiteral{}, &ast.StringLiteral{}, &ast.InterpolatedStringExpression{},
	&ast.CharacterLiteral{}, &ast.NilLiteral{},
}

func isNilLiteral(e ast.Expression) bool {
	_, ok := e.(*ast.NilLiteral)
	return ok
}
