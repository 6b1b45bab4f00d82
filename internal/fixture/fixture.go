// Package fixture decodes the JSON fixture format the integration-test
// suite and the run command read a file's typed AST and index-oracle
// responses from: a file's typed statements plus the index oracle's
// answers for every handle it appears in, serialized as JSON so
// cmd/fixturegen can author/patch it with sjson and cmd/transpile's run
// command can read it without a real frontend attached.
//
// Every node, whether a statement, expression, or a plain value type
// like IfCondition or FunctionParameter, serializes as a flat JSON
// object keyed by its Go field name; a node carrying the embedded Base
// field additionally carries a "Base" key holding {"handle", "range"}.
// Decoding walks the target Go type with reflection rather than
// hand-writing one unmarshaler per variant, since the interface-typed
// fields (Statement, Expression, and their slices) are exactly the ones
// encoding/json cannot resolve on its own; everything else is a plain
// field encoding/json already knows how to fill in.
package fixture

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/swiftkt/transpile/internal/ast"
)

var (
	expressionIface = reflect.TypeOf((*ast.Expression)(nil)).Elem()
	statementIface  = reflect.TypeOf((*ast.Statement)(nil)).Elem()
)

var statementTypes = map[string]reflect.Type{
	"ClassDeclaration":           reflect.TypeOf(ast.ClassDeclaration{}),
	"StructDeclaration":          reflect.TypeOf(ast.StructDeclaration{}),
	"ProtocolDeclaration":        reflect.TypeOf(ast.ProtocolDeclaration{}),
	"IfStatement":                reflect.TypeOf(ast.IfStatement{}),
	"WhileStatement":             reflect.TypeOf(ast.WhileStatement{}),
	"ForEachStatement":           reflect.TypeOf(ast.ForEachStatement{}),
	"DoStatement":                reflect.TypeOf(ast.DoStatement{}),
	"SwitchStatement":            reflect.TypeOf(ast.SwitchStatement{}),
	"TypealiasDeclaration":       reflect.TypeOf(ast.TypealiasDeclaration{}),
	"ExtensionDeclaration":       reflect.TypeOf(ast.ExtensionDeclaration{}),
	"CompanionObjectDeclaration": reflect.TypeOf(ast.CompanionObjectDeclaration{}),
	"EnumDeclaration":            reflect.TypeOf(ast.EnumDeclaration{}),
	"FunctionDeclaration":        reflect.TypeOf(ast.FunctionDeclaration{}),
	"InitializerDeclaration":     reflect.TypeOf(ast.InitializerDeclaration{}),
	"CommentStatement":           reflect.TypeOf(ast.CommentStatement{}),
	"ExpressionStatement":        reflect.TypeOf(ast.ExpressionStatement{}),
	"ImportStatement":            reflect.TypeOf(ast.ImportStatement{}),
	"VariableDeclaration":        reflect.TypeOf(ast.VariableDeclaration{}),
	"AssignmentStatement":        reflect.TypeOf(ast.AssignmentStatement{}),
	"ReturnStatement":            reflect.TypeOf(ast.ReturnStatement{}),
	"BreakStatement":             reflect.TypeOf(ast.BreakStatement{}),
	"ContinueStatement":          reflect.TypeOf(ast.ContinueStatement{}),
	"ThrowStatement":             reflect.TypeOf(ast.ThrowStatement{}),
	"DeferStatement":             reflect.TypeOf(ast.DeferStatement{}),
	"ErrorStatement":             reflect.TypeOf(ast.ErrorStatement{}),
}

var expressionTypes = map[string]reflect.Type{
	"LiteralCodeExpression":         reflect.TypeOf(ast.LiteralCodeExpression{}),
	"ConcatenationExpression":       reflect.TypeOf(ast.ConcatenationExpression{}),
	"ParenthesesExpression":         reflect.TypeOf(ast.ParenthesesExpression{}),
	"ForceUnwrapExpression":         reflect.TypeOf(ast.ForceUnwrapExpression{}),
	"OptionalChainExpression":       reflect.TypeOf(ast.OptionalChainExpression{}),
	"DeclarationReferenceExpression": reflect.TypeOf(ast.DeclarationReferenceExpression{}),
	"TypeReferenceExpression":       reflect.TypeOf(ast.TypeReferenceExpression{}),
	"SubscriptExpression":           reflect.TypeOf(ast.SubscriptExpression{}),
	"ArrayExpression":               reflect.TypeOf(ast.ArrayExpression{}),
	"DictionaryExpression":          reflect.TypeOf(ast.DictionaryExpression{}),
	"ReturnExpression":              reflect.TypeOf(ast.ReturnExpression{}),
	"DotExpression":                 reflect.TypeOf(ast.DotExpression{}),
	"BinaryOperatorExpression":      reflect.TypeOf(ast.BinaryOperatorExpression{}),
	"PrefixUnaryExpression":         reflect.TypeOf(ast.PrefixUnaryExpression{}),
	"PostfixUnaryExpression":        reflect.TypeOf(ast.PostfixUnaryExpression{}),
	"TernaryIfExpression":           reflect.TypeOf(ast.TernaryIfExpression{}),
	"CallExpression":                reflect.TypeOf(ast.CallExpression{}),
	"ClosureExpression":             reflect.TypeOf(ast.ClosureExpression{}),
	"TupleExpression":               reflect.TypeOf(ast.TupleExpression{}),
	"SwitchExpression":              reflect.TypeOf(ast.SwitchExpression{}),
	"ErrorExpression":               reflect.TypeOf(ast.ErrorExpression{}),
	"IntegerLiteral":                reflect.TypeOf(ast.IntegerLiteral{}),
	"UIntegerLiteral":               reflect.TypeOf(ast.UIntegerLiteral{}),
	"DoubleLiteral":                 reflect.TypeOf(ast.DoubleLiteral{}),
	"FloatLiteral":                  reflect.TypeOf(ast.FloatLiteral{}),
	"BoolLiteral":                   reflect.TypeOf(ast.BoolLiteral{}),
	"StringLiteral":                 reflect.TypeOf(ast.StringLiteral{}),
	"InterpolatedStringExpression":  reflect.TypeOf(ast.InterpolatedStringExpression{}),
	"CharacterLiteral":              reflect.TypeOf(ast.CharacterLiteral{}),
	"NilLiteral":                    reflect.TypeOf(ast.NilLiteral{}),
}

// wireBase is the {"handle", "range"} shape a node's embedded Base field
// serializes as.
type wireBase struct {
	Handle string           `json:"handle,omitempty"`
	Range  *ast.SourceRange `json:"range,omitempty"`
}

// kindEnvelope peeks at a node's discriminator without committing to a
// full decode.
type kindEnvelope struct {
	Kind string `json:"kind"`
}

// DecodeStatement decodes one JSON-encoded statement node, dispatching on
// its "kind" field. An unrecognized kind is a fatal error: every
// statement variant the core knows about is listed in statementTypes, so
// a miss here means the fixture names a variant this build doesn't have,
// not a node the pipeline should shrug off and continue past.
func DecodeStatement(raw json.RawMessage) (ast.Statement, error) {
	var env kindEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("fixture: decoding statement envelope: %w", err)
	}
	t, ok := statementTypes[env.Kind]
	if !ok {
		return nil, fmt.Errorf("fixture: unknown statement kind %q", env.Kind)
	}
	ptr := reflect.New(t)
	if err := populateStruct(ptr.Elem(), raw); err != nil {
		return nil, fmt.Errorf("fixture: decoding %s: %w", env.Kind, err)
	}
	return ptr.Interface().(ast.Statement), nil
}

// DecodeExpression is DecodeStatement's expression counterpart.
func DecodeExpression(raw json.RawMessage) (ast.Expression, error) {
	var env kindEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("fixture: decoding expression envelope: %w", err)
	}
	t, ok := expressionTypes[env.Kind]
	if !ok {
		return nil, fmt.Errorf("fixture: unknown expression kind %q", env.Kind)
	}
	ptr := reflect.New(t)
	if err := populateStruct(ptr.Elem(), raw); err != nil {
		return nil, fmt.Errorf("fixture: decoding %s: %w", env.Kind, err)
	}
	return ptr.Interface().(ast.Expression), nil
}

// populateStruct fills every field of a concrete node or plain value type
// (IfCondition, FunctionParameter, ...) from its flat JSON object.
func populateStruct(rv reflect.Value, raw json.RawMessage) error {
	var props map[string]json.RawMessage
	if err := json.Unmarshal(raw, &props); err != nil {
		return err
	}
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := rv.Field(i)
		if f.Name == "Base" {
			if baseRaw, ok := props["Base"]; ok {
				var wb wireBase
				if err := json.Unmarshal(baseRaw, &wb); err != nil {
					return err
				}
				b := ast.Base{SourceRangeV: wb.Range}
				if wb.Handle != "" {
					b.SourceHandle = wb.Handle
				}
				fv.Set(reflect.ValueOf(b))
			}
			continue
		}
		fr, ok := props[f.Name]
		if !ok {
			continue
		}
		if err := decodeValue(fv, fr); err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
	}
	return nil
}

// decodeValue fills one field from its JSON encoding, recursing through
// every container kind that might hide a Statement/Expression somewhere
// inside it rather than handing the whole thing to encoding/json, which
// has no way to allocate a concrete type for an interface-typed field.
func decodeValue(rv reflect.Value, raw json.RawMessage) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	t := rv.Type()
	switch {
	case t == expressionIface:
		e, err := DecodeExpression(raw)
		if err != nil {
			return err
		}
		rv.Set(reflect.ValueOf(e))
		return nil
	case t == statementIface:
		s, err := DecodeStatement(raw)
		if err != nil {
			return err
		}
		rv.Set(reflect.ValueOf(s))
		return nil
	case t.Kind() == reflect.Ptr:
		elem := reflect.New(t.Elem())
		if err := decodeValue(elem.Elem(), raw); err != nil {
			return err
		}
		rv.Set(elem)
		return nil
	case t.Kind() == reflect.Slice:
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}
		sl := reflect.MakeSlice(t, len(items), len(items))
		for i, item := range items {
			if err := decodeValue(sl.Index(i), item); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}
		rv.Set(sl)
		return nil
	case t.Kind() == reflect.Struct:
		return populateStruct(rv, raw)
	default:
		return json.Unmarshal(raw, rv.Addr().Interface())
	}
}

// wireFile is the on-disk shape of one fixture: a file's statements plus
// the index-oracle responses for every handle the frontend would have
// supplied alongside it.
type wireFile struct {
	Path        string            `json:"path"`
	Statements  []json.RawMessage `json:"statements"`
	ParentTypes map[string]string `json:"parentTypes"`
}

// DecodeFile decodes one fixture document into its AST file and the raw
// "parentTypes" JSON object oracle.NewFixtureOracle expects.
func DecodeFile(raw []byte) (*ast.File, []byte, error) {
	var wf wireFile
	if err := json.Unmarshal(raw, &wf); err != nil {
		return nil, nil, fmt.Errorf("fixture: decoding file: %w", err)
	}
	statements := make([]ast.Statement, len(wf.Statements))
	for i, sraw := range wf.Statements {
		s, err := DecodeStatement(sraw)
		if err != nil {
			return nil, nil, fmt.Errorf("fixture: statement %d: %w", i, err)
		}
		statements[i] = s
	}
	oracleDoc, err := json.Marshal(struct {
		ParentTypes map[string]string `json:"parentTypes"`
	}{wf.ParentTypes})
	if err != nil {
		return nil, nil, fmt.Errorf("fixture: re-encoding oracle responses: %w", err)
	}
	return &ast.File{Path: wf.Path, Statements: statements}, oracleDoc, nil
}
