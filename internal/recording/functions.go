package recording

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// functionRecordingPass registers every function's signature; for structs
// with no explicit initializer it synthesizes and registers the
// memberwise one, and for sealed-class enums it synthesizes and registers
// a constructor-like function per element. It is the last recording
// pass; it depends on enumRecordingPass's classification only insofar as
// both walk the cleaned tree, not on any context state.
func functionRecordingPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "function-recording",
		Statements: map[string]pass.StatementHook{
			typeKey(&ast.FunctionDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.FunctionDeclaration)
				ctx.RecordFunctionTranslation(context.FunctionTranslation{
					APIName:    n.Name,
					Type:       w.CurrentType(),
					Prefix:     "fun",
					Parameters: n.Parameters,
				})
				if n.IsPure {
					ctx.RecordPureFunction(n.Name)
				}
				return w.DefaultStatement(n), true
			},
			typeKey(&ast.StructDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.StructDeclaration)
				fqType := w.QualifiedName(n.Name)
				if !hasExplicitInitializer(n.Members) {
					ctx.RecordFunctionTranslation(context.FunctionTranslation{
						APIName:    "init",
						Type:       fqType,
						Prefix:     "init",
						Parameters: memberwiseParameters(n.Members),
					})
				}
				return w.DefaultStatement(n), true
			},
			typeKey(&ast.EnumDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.EnumDeclaration)
				fqType := w.QualifiedName(n.Name)
				for _, el := range n.Elements {
					if !el.IsSealed() {
						continue
					}
					ctx.RecordFunctionTranslation(context.FunctionTranslation{
						APIName:    el.Name,
						Type:       fqType,
						Prefix:     "init",
						Parameters: elementParameters(el),
					})
				}
				return w.DefaultStatement(n), true
			},
		},
	}
}

func hasExplicitInitializer(members []ast.Statement) bool {
	for _, m := range members {
		if _, ok := m.(*ast.InitializerDeclaration); ok {
			return true
		}
	}
	return false
}

func memberwiseParameters(members []ast.Statement) []ast.FunctionParameter {
	var params []ast.FunctionParameter
	for _, m := range members {
		v, ok := m.(*ast.VariableDeclaration)
		if !ok || v.IsStatic {
			continue
		}
		params = append(params, ast.FunctionParameter{
			Label:    v.Name,
			APILabel: v.Name,
			Type:     v.Type,
			Default:  v.Value,
		})
	}
	return params
}

func elementParameters(el ast.EnumElement) []ast.FunctionParameter {
	params := make([]ast.FunctionParameter, len(el.AssociatedValues))
	for i, av := range el.AssociatedValues {
		label := av.Label
		if label == "" {
			label = "_"
		}
		params[i] = ast.FunctionParameter{Label: label, APILabel: av.Label, Type: av.Type}
	}
	return params
}
