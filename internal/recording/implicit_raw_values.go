package recording

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/pass"
)

// implicitRawValuesPass fills in the raw value of every element that
// omitted one, for enums whose inheritance list names an integer or
// string family. String families default an element's raw value to its
// own name; integer families default to one more than the previous
// element's raw value, seeded at -1 so the first unspecified case is 0.
// An explicit integer raw value resets that sequence for the elements
// that follow it.
func implicitRawValuesPass() *pass.Pass {
	return &pass.Pass{
		PassName: "implicit-raw-values",
		Statements: map[string]pass.StatementHook{
			typeKey(&ast.EnumDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.EnumDeclaration)
				fillImplicitRawValues(n)
				return w.DefaultStatement(n), true
			},
		},
	}
}

func fillImplicitRawValues(n *ast.EnumDeclaration) {
	isString, isInt := false, false
	for _, base := range n.Inherits {
		if stringRawFamily[base] {
			isString = true
		}
		if intRawFamily[base] {
			isInt = true
		}
	}
	if !isString && !isInt {
		return
	}

	seq := int64(-1)
	for i := range n.Elements {
		el := &n.Elements[i]
		if el.RawValue != nil {
			if isInt {
				if lit, ok := el.RawValue.(*ast.IntegerLiteral); ok {
					seq = lit.Value
				}
			}
			continue
		}
		if isString {
			el.RawValue = &ast.StringLiteral{Value: el.Name}
			continue
		}
		seq++
		el.RawValue = &ast.IntegerLiteral{Value: seq, Radix: ast.RadixDecimal}
	}
}
