// Package warn implements the rewrite passes that only ever emit
// diagnostics. Five of the six run as the last stage of the second
// round (standard-library, double-optional, mutable-value-type, struct-
// initializer, native-collection); the sixth (side-effect-in-if-lets)
// is interleaved earlier in the fixed rewrite order, immediately after
// the shadowed-if-let-to-is rewrite and before if-lets are rearranged,
// since it must see the original if-let condition order to number "every
// condition after the first" correctly. internal/rewrite imports this
// package and wires SideEffectInIfLets into its own ordered list rather
// than duplicating it.
package warn

import (
	"reflect"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/config"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// Run executes the five warning passes that close out the second round,
// in any order relative to each other; each reads the fully-rewritten
// tree and writes only to ctx.Diagnostics, so none observes another's
// output.
func Run(ctx *context.Context, statements []ast.Statement) {
	for _, p := range []*pass.Pass{
		StandardLibraryWarning(ctx),
		DoubleOptionalWarning(ctx),
		MutableValueTypeWarning(ctx),
		StructInitializerWarning(ctx),
		NativeCollectionWarning(ctx),
	} {
		pass.Run(p, ctx, statements)
	}
}

// LateNames lists the five warning passes Run executes, in the arbitrary
// but fixed order it executes them in. SideEffectInIfLets is named
// separately by internal/rewrite, since it runs earlier in the second
// round rather than alongside these five.
func LateNames() []string {
	ctx := context.New(config.Default())
	names := make([]string, 0, 5)
	for _, p := range []*pass.Pass{
		StandardLibraryWarning(ctx),
		DoubleOptionalWarning(ctx),
		MutableValueTypeWarning(ctx),
		StructInitializerWarning(ctx),
		NativeCollectionWarning(ctx),
	} {
		names = append(names, p.Name())
	}
	return names
}

// StandardLibraryWarning flags any declaration reference still marked
// is_standard_library after template replacement has had its chance to
// rewrite it away.
func StandardLibraryWarning(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "standard-library-warning",
		Expressions: map[string]pass.ExpressionHook{
			pass.TypeKey(&ast.DeclarationReferenceExpression{}): func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
				n := e.(*ast.DeclarationReferenceExpression)
				if n.IsStandardLibrary {
					ctx.Diagnostics.Warn(n.Range(), "reference to standard-library symbol %q has no target equivalent", n.Name)
				}
				return nil, false
			},
		},
	}
}

// typedExpressionPrototypes lists every expression variant carrying a
// Type field, so DoubleOptionalWarning can register one hook per variant
// without repeating the same handler by hand fourteen times.
var typedExpressionPrototypes = []ast.Expression{
	&ast.DeclarationReferenceExpression{}, &ast.TypeReferenceExpression{},
	&ast.SubscriptExpression{}, &ast.ArrayExpression{}, &ast.DictionaryExpression{},
	&ast.DotExpression{}, &ast.BinaryOperatorExpression{}, &ast.PrefixUnaryExpression{},
	&ast.PostfixUnaryExpression{}, &ast.TernaryIfExpression{}, &ast.CallExpression{},
	&ast.ClosureExpression{}, &ast.TupleExpression{}, &ast.SwitchExpression{},
}

// DoubleOptionalWarning flags any expression whose type ends in "??".
func DoubleOptionalWarning(ctx *context.Context) *pass.Pass {
	handler := func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
		if t, ok := expressionType(e); ok && t.IsDoubleOptional() {
			ctx.Diagnostics.Warn(e.Range(), "expression has double-optional type %q", t)
		}
		return nil, false
	}
	hooks := make(map[string]pass.ExpressionHook, len(typedExpressionPrototypes))
	for _, proto := range typedExpressionPrototypes {
		hooks[pass.TypeKey(proto)] = handler
	}
	return &pass.Pass{PassName: "double-optional-warning", Expressions: hooks}
}

func expressionType(e ast.Expression) (ast.TypeName, bool) {
	v := reflect.ValueOf(e)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	f := v.FieldByName("Type")
	if !f.IsValid() {
		return "", false
	}
	tn, ok := f.Interface().(ast.TypeName)
	return tn, ok
}

// MutableValueTypeWarning flags mutable stored properties and mutating
// methods on structs and enums.
func MutableValueTypeWarning(ctx *context.Context) *pass.Pass {
	warnMembers := func(w *pass.Walker, members []ast.Statement) {
		for _, m := range members {
			switch mem := m.(type) {
			case *ast.VariableDeclaration:
				if mem.IsMutable {
					ctx.Diagnostics.Warn(mem.Range(), "mutable stored property %q on a value type has no direct target equivalent", mem.Name)
				}
			case *ast.FunctionDeclaration:
				if mem.IsMutating {
					ctx.Diagnostics.Warn(mem.Range(), "mutating method %q on a value type has no direct target equivalent", mem.Name)
				}
			}
		}
	}
	return &pass.Pass{
		PassName: "mutable-value-type-warning",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.StructDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.StructDeclaration)
				warnMembers(w, n.Members)
				return nil, false
			},
			pass.TypeKey(&ast.EnumDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.EnumDeclaration)
				warnMembers(w, n.Members)
				return nil, false
			},
		},
	}
}

// StructInitializerWarning flags explicit struct initializers as
// unsupported beyond the synthesized memberwise one and removes them;
// it is the one warning pass that also mutates the tree. See DESIGN.md
// for how this is reconciled with the general "warnings never mutate"
// note.
func StructInitializerWarning(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "struct-initializer-warning",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.StructDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.StructDeclaration)
				kept := make([]ast.Statement, 0, len(n.Members))
				for _, m := range n.Members {
					if init, ok := m.(*ast.InitializerDeclaration); ok {
						ctx.Diagnostics.Warn(init.Range(), "explicit initializer on struct %q is unsupported and was removed; only the memberwise initializer is generated", n.Name)
						continue
					}
					kept = append(kept, m)
				}
				n.Members = kept
				return nil, false
			},
		},
	}
}

// NativeCollectionWarning flags array and dictionary literals, whose
// static type is the source's native collection family, recommending the
// target's list/map constructors instead.
func NativeCollectionWarning(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "native-collection-warning",
		Expressions: map[string]pass.ExpressionHook{
			pass.TypeKey(&ast.ArrayExpression{}): func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
				n := e.(*ast.ArrayExpression)
				ctx.Diagnostics.Warn(n.Range(), "native array literal; prefer listOf/mutableListOf at the call site")
				return nil, false
			},
			pass.TypeKey(&ast.DictionaryExpression{}): func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
				n := e.(*ast.DictionaryExpression)
				ctx.Diagnostics.Warn(n.Range(), "native dictionary literal; prefer mapOf/mutableMapOf at the call site")
				return nil, false
			},
		},
	}
}
