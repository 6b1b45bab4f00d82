package ast

import (
	"strconv"
	"strings"
)

// Radix is the base an integer literal was written in; the emitter
// preserves it rather than normalizing to decimal.
type Radix int

const (
	RadixDecimal Radix = 10
	RadixHex     Radix = 16
	RadixBinary  Radix = 2
	RadixOctal   Radix = 8
)

// IntegerLiteral is a signed integer literal.
type IntegerLiteral struct {
	Base
	Value int64
	Radix Radix
}

func (e *IntegerLiteral) expressionNode() {}
func (e *IntegerLiteral) String() string   { return formatRadix(e.Value, e.Radix) }

// UIntegerLiteral is an unsigned integer literal; the emitter appends the
// "u" suffix.
type UIntegerLiteral struct {
	Base
	Value uint64
	Radix Radix
}

func (e *UIntegerLiteral) expressionNode() {}
func (e *UIntegerLiteral) String() string   { return formatRadix(int64(e.Value), e.Radix) + "u" }

// DoubleLiteral is a double-precision floating point literal.
type DoubleLiteral struct {
	Base
	Value float64
}

func (e *DoubleLiteral) expressionNode() {}
func (e *DoubleLiteral) String() string   { return trimFloat(e.Value) }

// FloatLiteral is a single-precision floating point literal; the emitter
// appends the "f" suffix.
type FloatLiteral struct {
	Base
	Value float32
}

func (e *FloatLiteral) expressionNode() {}
func (e *FloatLiteral) String() string   { return trimFloat(float64(e.Value)) + "f" }

// BoolLiteral is a boolean literal.
type BoolLiteral struct {
	Base
	Value bool
}

func (e *BoolLiteral) expressionNode() {}
func (e *BoolLiteral) String() string {
	if e.Value {
		return "true"
	}
	return "false"
}

// StringLiteral is a string literal. Multiline marks source triple-quoted
// strings, emitted with """..."""; escape-dollar-and-quote runs before
// emission to escape any literal "$" the target would otherwise read as
// interpolation.
type StringLiteral struct {
	Base
	Value     string
	Multiline bool
}

func (e *StringLiteral) expressionNode() {}
func (e *StringLiteral) String() string {
	if e.Multiline {
		return `"""` + e.Value + `"""`
	}
	return `"` + e.Value + `"`
}

// InterpolatedStringExpression is a string literal containing one or more
// interpolation spans; the emitter wraps each Expressions[i] in "${...}"
// in its Parts[i] position.
type InterpolatedStringExpression struct {
	Base
	Parts       []string // literal text segments; len(Parts) == len(Expressions)+1
	Expressions []Expression
}

func (e *InterpolatedStringExpression) expressionNode() {}
func (e *InterpolatedStringExpression) String() string {
	var sb strings.Builder
	sb.WriteString(`"`)
	for i, part := range e.Parts {
		sb.WriteString(part)
		if i < len(e.Expressions) {
			sb.WriteString("${")
			sb.WriteString(e.Expressions[i].String())
			sb.WriteString("}")
		}
	}
	sb.WriteString(`"`)
	return sb.String()
}

// CharacterLiteral is a single-character literal.
type CharacterLiteral struct {
	Base
	Value rune
}

func (e *CharacterLiteral) expressionNode() {}
func (e *CharacterLiteral) String() string   { return "'" + string(e.Value) + "'" }

// NilLiteral is the nil/null literal.
type NilLiteral struct{ Base }

func (e *NilLiteral) expressionNode() {}
func (e *NilLiteral) String() string   { return "nil" }

func formatRadix(v int64, r Radix) string {
	switch r {
	case RadixHex:
		return signedPrefix(v, "0x", 16)
	case RadixBinary:
		return signedPrefix(v, "0b", 2)
	case RadixOctal:
		return signedPrefix(v, "0o", 8)
	default:
		return strconv.FormatInt(v, 10)
	}
}

func signedPrefix(v int64, prefix string, base int) string {
	if v < 0 {
		return "-" + prefix + strconv.FormatUint(uint64(-v), base)
	}
	return prefix + strconv.FormatUint(uint64(v), base)
}

func trimFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
