package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftkt/transpile/internal/ast"
)

func lbl(s string) *string { return &s }

func TestMatchBindsLabeledArgumentsOutOfOrder(t *testing.T) {
	params := []ast.FunctionParameter{
		{Label: "x", APILabel: "x", Type: "Int"},
		{Label: "y", APILabel: "y", Type: "Int"},
	}
	args := []ast.LabeledExpression{
		{Label: lbl("y"), Expression: &ast.IntegerLiteral{Value: 2}},
		{Label: lbl("x"), Expression: &ast.IntegerLiteral{Value: 1}},
	}

	b, ok := Match(params, args, false)
	require.True(t, ok, "expected match to succeed")
	assert.Equal(t, 1, b.Indices[0][0])
	assert.Equal(t, 0, b.Indices[1][0])
}

func TestMatchAllowsDefaultedParameterToBindNothing(t *testing.T) {
	zero := &ast.IntegerLiteral{Value: 0}
	params := []ast.FunctionParameter{
		{Label: "x", APILabel: "x", Type: "Int"},
		{Label: "y", APILabel: "y", Type: "Int", Default: zero},
	}
	args := []ast.LabeledExpression{
		{Label: lbl("x"), Expression: &ast.IntegerLiteral{Value: 1}},
	}

	b, ok := Match(params, args, false)
	require.True(t, ok, "expected match to succeed")
	assert.Empty(t, b.Indices[1], "expected the defaulted parameter to bind no arguments")
}

func TestMatchBindsTrailingClosureToFunctionTypedParameter(t *testing.T) {
	params := []ast.FunctionParameter{
		{Label: "items", APILabel: "items", Type: "[Int]"},
		{Label: "transform", APILabel: "transform", Type: "(Int) -> Int"},
	}
	closure := &ast.ClosureExpression{IsTrailing: true}
	args := []ast.LabeledExpression{
		{Label: lbl("items"), Expression: &ast.ArrayExpression{}},
		{Expression: closure},
	}

	b, ok := Match(params, args, true)
	require.True(t, ok, "expected match to succeed")
	assert.Equal(t, 1, b.Indices[1][0], "expected trailing closure bound to transform parameter")
}

func TestMatchConsumesConsecutiveVariadicArguments(t *testing.T) {
	params := []ast.FunctionParameter{
		{Label: "values", APILabel: "_", Type: "Int", IsVariadic: true},
	}
	args := []ast.LabeledExpression{
		{Expression: &ast.IntegerLiteral{Value: 1}},
		{Expression: &ast.IntegerLiteral{Value: 2}},
		{Expression: &ast.IntegerLiteral{Value: 3}},
	}

	b, ok := Match(params, args, false)
	require.True(t, ok, "expected match to succeed")
	assert.Len(t, b.Indices[0], 3, "expected all three arguments bound to the variadic parameter")
}

func TestMatchFailsWhenAnArgumentIsUnconsumed(t *testing.T) {
	params := []ast.FunctionParameter{{Label: "x", APILabel: "x", Type: "Int"}}
	args := []ast.LabeledExpression{
		{Label: lbl("x"), Expression: &ast.IntegerLiteral{Value: 1}},
		{Label: lbl("z"), Expression: &ast.IntegerLiteral{Value: 2}},
	}

	_, ok := Match(params, args, false)
	assert.False(t, ok, "expected match to fail with an unconsumed argument")
}

// TestMatchProperty checks the forward-scan matcher's core invariant across
// a table of call shapes: every successful match consumes every argument
// exactly once and binds every required parameter.
func TestMatchProperty(t *testing.T) {
	cases := []struct {
		name   string
		params []ast.FunctionParameter
		args   []ast.LabeledExpression
	}{
		{
			name:   "no arguments, no parameters",
			params: nil,
			args:   nil,
		},
		{
			name:   "single required parameter",
			params: []ast.FunctionParameter{{Label: "x", APILabel: "x", Type: "Int"}},
			args:   []ast.LabeledExpression{{Label: lbl("x"), Expression: &ast.IntegerLiteral{Value: 1}}},
		},
		{
			name: "two unlabeled positional parameters",
			params: []ast.FunctionParameter{
				{Label: "_", Type: "Int"},
				{Label: "_", Type: "Int"},
			},
			args: []ast.LabeledExpression{
				{Expression: &ast.IntegerLiteral{Value: 1}},
				{Expression: &ast.IntegerLiteral{Value: 2}},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, ok := Match(c.params, c.args, false)
			require.True(t, ok, "expected match to succeed")
			require.Len(t, b.Indices, len(c.params))

			seen := make(map[int]bool)
			for _, idxs := range b.Indices {
				for _, i := range idxs {
					assert.False(t, seen[i], "argument %d bound more than once", i)
					seen[i] = true
				}
			}
			assert.Len(t, seen, len(c.args), "every argument should be bound exactly once")
		})
	}
}
