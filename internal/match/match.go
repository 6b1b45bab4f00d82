// Package match implements the call-argument matcher: replaying the
// source compiler's greedy forward-scan parameter-binding algorithm so a
// call site written with elided labels, reordered arguments, a trailing
// closure, or a variadic parameter can be rewritten against the target's
// stricter call syntax.
package match

import (
	"strings"

	"github.com/swiftkt/transpile/internal/ast"
)

// Binding is the result of matching one call: for each declared
// parameter, the indices (into the original argument list) of the call
// arguments bound to it. A parameter that received no argument (a
// defaulted parameter left to its default, or a variadic one given none)
// has a nil/empty slice.
type Binding struct {
	Parameter []ast.FunctionParameter // mirrors the input parameter list, same order
	Indices   [][]int                 // Indices[i] are argument indices bound to Parameter[i]
}

// Match runs the forward-scan algorithm over params against args. ok is
// false if some required parameter could not be bound or some argument
// was left unconsumed; the call-site rewrite in internal/rewrite treats
// that as the matching-fails case.
func Match(params []ast.FunctionParameter, args []ast.LabeledExpression, allowsTrailingClosure bool) (Binding, bool) {
	b := Binding{Parameter: params, Indices: make([][]int, len(params))}

	consumed := make([]bool, len(args))
	trailingIdx, trailingParam := -1, -1
	if allowsTrailingClosure && len(args) > 0 {
		last := args[len(args)-1]
		if last.Label == nil {
			if cl, ok := last.Expression.(*ast.ClosureExpression); ok && cl.IsTrailing {
				if p := lastFunctionTypedParameter(params); p >= 0 {
					trailingIdx, trailingParam = len(args)-1, p
				}
			}
		}
	}
	if trailingParam >= 0 {
		b.Indices[trailingParam] = []int{trailingIdx}
		consumed[trailingIdx] = true
	}

	argPos := 0
	nextUnconsumed := func() int {
		for argPos < len(args) {
			if !consumed[argPos] {
				return argPos
			}
			argPos++
		}
		return -1
	}

	for i, p := range params {
		if i == trailingParam {
			continue
		}
		label := parameterLabel(p)

		if p.IsVariadic {
			var idxs []int
			for {
				j := nextUnconsumed()
				if j == -1 || !labelMatches(args[j], label) {
					break
				}
				idxs = append(idxs, j)
				consumed[j] = true
				argPos = j + 1
			}
			b.Indices[i] = idxs
			continue
		}

		j := nextUnconsumed()
		if j != -1 && !labelMatches(args[j], label) {
			// A labeled argument written out of order still binds to its
			// own parameter; argPos stays put so the skipped arguments
			// remain available to the parameters after this one.
			for k := j + 1; k < len(args); k++ {
				if !consumed[k] && args[k].Label != nil && labelMatches(args[k], label) {
					j = k
					break
				}
			}
		}
		if j != -1 && labelMatches(args[j], label) {
			b.Indices[i] = []int{j}
			consumed[j] = true
			if j == argPos {
				argPos = j + 1
			}
			continue
		}
		if p.Default != nil {
			continue // bound to zero arguments; the default applies
		}
		return b, false
	}

	for _, c := range consumed {
		if !c {
			return b, false
		}
	}
	return b, true
}

func parameterLabel(p ast.FunctionParameter) string {
	if p.APILabel != "" {
		return p.APILabel
	}
	return p.Label
}

func labelMatches(arg ast.LabeledExpression, paramLabel string) bool {
	if paramLabel == "_" || paramLabel == "" {
		return arg.Label == nil
	}
	return arg.Label != nil && *arg.Label == paramLabel
}

func lastFunctionTypedParameter(params []ast.FunctionParameter) int {
	for i := len(params) - 1; i >= 0; i-- {
		if isFunctionType(string(params[i].Type)) {
			return i
		}
	}
	return -1
}

func isFunctionType(typ string) bool {
	return strings.Contains(typ, "->")
}

// LastVariadicIndex returns the index of the last variadic parameter in
// params, or -1. Declared parameters at or before it receive no label
// when a call is rewritten.
func LastVariadicIndex(params []ast.FunctionParameter) int {
	last := -1
	for i, p := range params {
		if p.IsVariadic {
			last = i
		}
	}
	return last
}
