package rewrite

import (
	"strings"
	"unicode"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// charactersInSwitchesPass converts a string-literal case expression to a
// character literal when the switch's subject is itself a character; the
// frontend emits a plain string literal for either.
func charactersInSwitchesPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "characters-in-switches",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.SwitchStatement{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.SwitchStatement)
				def := singleStatement(w.DefaultStatement(n)).(*ast.SwitchStatement)
				if expressionTypeOf(def.Subject) != "Character" {
					return []ast.Statement{def}, true
				}
				for ci := range def.Cases {
					for ei, expr := range def.Cases[ci].Expressions {
						if lit, ok := expr.(*ast.StringLiteral); ok && len([]rune(lit.Value)) == 1 {
							def.Cases[ci].Expressions[ei] = &ast.CharacterLiteral{Base: lit.Base, Value: []rune(lit.Value)[0]}
						}
					}
				}
				return []ast.Statement{def}, true
			},
		},
	}
}

func singleStatement(stmts []ast.Statement) ast.Statement {
	return stmts[0]
}

// casePattern reports whether expr names a sealed-class enum case, either
// a bare dot-expression ("EnumName.case") or a call on one
// ("EnumName.case(let bound...)"), and returns the dot-expression and
// the fully-qualified enum type it resolves against, when known.
func casePattern(w *pass.Walker, expr ast.Expression) (dot *ast.DotExpression, fqType string, ok bool) {
	switch e := expr.(type) {
	case *ast.DotExpression:
		dot = e
	case *ast.CallExpression:
		d, okd := e.Function.(*ast.DotExpression)
		if !okd {
			return nil, "", false
		}
		dot = d
	default:
		return nil, "", false
	}
	if tref, ok := dot.Receiver.(*ast.TypeReferenceExpression); ok {
		base, _ := tref.Type.SplitGenericArgs()
		return dot, base, true
	}
	if t := expressionTypeOf(dot.Receiver); t != "" {
		base, _ := ast.TypeName(t).SplitGenericArgs()
		return dot, base, true
	}
	return dot, "", true
}

// annotationsForCaseLetPass propagates a sealed-enum element's declared
// associated-value types onto the implicitly-typed bindings a case pattern
// destructures, in both switch cases and if-case conditions.
func annotationsForCaseLetPass(ctx *context.Context) *pass.Pass {
	annotate := func(w *pass.Walker, call *ast.CallExpression) {
		dot, fqType, ok := casePattern(w, call)
		if !ok || fqType == "" || !ctx.IsSealedClass(fqType) {
			return
		}
		decl, ok := ctx.EnumDecl(fqType)
		if !ok {
			return
		}
		var elem *ast.EnumElement
		for i := range decl.Elements {
			if decl.Elements[i].Name == dot.Member {
				elem = &decl.Elements[i]
				break
			}
		}
		if elem == nil {
			return
		}
		for i, arg := range call.Arguments {
			if i >= len(elem.AssociatedValues) {
				break
			}
			if ref, ok := arg.Expression.(*ast.DeclarationReferenceExpression); ok && ref.Type == "" {
				ref.Type = elem.AssociatedValues[i].Type
			}
		}
	}
	return &pass.Pass{
		PassName: "annotations-for-case-let",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.SwitchStatement{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.SwitchStatement)
				def := singleStatement(w.DefaultStatement(n)).(*ast.SwitchStatement)
				for _, c := range def.Cases {
					for _, expr := range c.Expressions {
						if call, ok := expr.(*ast.CallExpression); ok {
							annotate(w, call)
						}
					}
				}
				return []ast.Statement{def}, true
			},
			pass.TypeKey(&ast.IfStatement{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.IfStatement)
				def := singleStatement(w.DefaultStatement(n)).(*ast.IfStatement)
				for _, c := range def.Conditions {
					if call, ok := c.Expr.(*ast.CallExpression); ok {
						annotate(w, call)
					}
				}
				return []ast.Statement{def}, true
			},
		},
	}
}

// capitalizeEnumsPass uniformly capitalizes sealed-class enum case names
// (they become nested class names) and upper-snake-cases enum-class case
// names (they become constant-style entries), at both the declaration and
// every dot-reference use site.
func capitalizeEnumsPass(ctx *context.Context) *pass.Pass {
	rename := func(name, fqType string) string {
		switch {
		case ctx.IsSealedClass(fqType):
			return capitalizeFirst(name)
		case ctx.IsEnumClass(fqType):
			return upperSnakeCase(name)
		}
		return name
	}
	return &pass.Pass{
		PassName: "capitalize-enums",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.EnumDeclaration{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.EnumDeclaration)
				fqType := w.QualifiedName(n.Name)
				for i := range n.Elements {
					n.Elements[i].Name = rename(n.Elements[i].Name, fqType)
				}
				return w.DefaultStatement(n), true
			},
		},
		Expressions: map[string]pass.ExpressionHook{
			pass.TypeKey(&ast.DotExpression{}): func(w *pass.Walker, e ast.Expression) (ast.Expression, bool) {
				n := e.(*ast.DotExpression)
				def := w.DefaultExpression(n).(*ast.DotExpression)
				fqType := ""
				if tref, ok := def.Receiver.(*ast.TypeReferenceExpression); ok {
					fqType, _ = tref.Type.SplitGenericArgs()
				} else if t := expressionTypeOf(def.Receiver); t != "" {
					fqType, _ = ast.TypeName(t).SplitGenericArgs()
				}
				if fqType != "" {
					def.Member = rename(def.Member, fqType)
				}
				return def, true
			},
		},
	}
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func upperSnakeCase(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			sb.WriteByte('_')
		}
		sb.WriteRune(unicode.ToUpper(r))
	}
	return sb.String()
}

// isInSwitchesIfsPass rewrites a sealed-class case test into an "is" type
// check: a bare case name becomes a type reference the emitter prints as
// "is Name", a destructuring case keeps its bound arguments on a call whose
// function is that same type reference. If-case comparisons against an
// enum-class member keep "=="; against a sealed-class member they become
// "is" too.
func isInSwitchesIfsPass(ctx *context.Context) *pass.Pass {
	rewriteCaseExpr := func(w *pass.Walker, expr ast.Expression) ast.Expression {
		switch e := expr.(type) {
		case *ast.DotExpression:
			_, fqType, ok := casePattern(w, e)
			if ok && ctx.IsSealedClass(fqType) {
				return &ast.TypeReferenceExpression{Base: e.Base, Type: ast.TypeName(e.Member)}
			}
		case *ast.CallExpression:
			dot, fqType, ok := casePattern(w, e)
			if ok && ctx.IsSealedClass(fqType) {
				e.Function = &ast.TypeReferenceExpression{Base: dot.Base, Type: ast.TypeName(dot.Member)}
				return e
			}
		}
		return expr
	}
	return &pass.Pass{
		PassName: "is-in-switches-ifs",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.SwitchStatement{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.SwitchStatement)
				def := singleStatement(w.DefaultStatement(n)).(*ast.SwitchStatement)
				for ci, c := range def.Cases {
					for ei, expr := range c.Expressions {
						def.Cases[ci].Expressions[ei] = rewriteCaseExpr(w, expr)
					}
				}
				return []ast.Statement{def}, true
			},
			pass.TypeKey(&ast.IfStatement{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.IfStatement)
				def := singleStatement(w.DefaultStatement(n)).(*ast.IfStatement)
				for i, c := range def.Conditions {
					bin, ok := c.Expr.(*ast.BinaryOperatorExpression)
					if !ok || bin.Operator != "==" {
						continue
					}
					dot, fqType, ok := casePattern(w, bin.Right)
					if !ok || !ctx.IsSealedClass(fqType) {
						continue
					}
					bin.Operator = "is"
					bin.Right = &ast.TypeReferenceExpression{Base: dot.Base, Type: ast.TypeName(dot.Member)}
					def.Conditions[i].Expr = bin
				}
				return []ast.Statement{def}, true
			},
		},
	}
}

// removeBreaksInSwitchesPass drops a case whose only statement is a bare
// break; the target's "when" has no fallthrough to guard against.
func removeBreaksInSwitchesPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "remove-breaks-in-switches",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.SwitchStatement{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.SwitchStatement)
				def := singleStatement(w.DefaultStatement(n)).(*ast.SwitchStatement)
				kept := def.Cases[:0]
				for _, c := range def.Cases {
					if len(c.Statements) == 1 {
						if _, ok := c.Statements[0].(*ast.BreakStatement); ok {
							continue
						}
					}
					kept = append(kept, c)
				}
				def.Cases = kept
				return []ast.Statement{def}, true
			},
		},
	}
}

// switchesToExpressionsPass rewrites a switch into a single expression-
// valued "when" when every case ends in "return expr" or in an assignment
// to the same left-hand side, lifting the outer return/assignment. The
// companion variable-declaration merge needs to see a statement's
// successor, which no per-node hook can; it runs separately as
// mergeVarDeclSwitchAssignments.
func switchesToExpressionsPass(ctx *context.Context) *pass.Pass {
	return &pass.Pass{
		PassName: "switches-to-expressions",
		Statements: map[string]pass.StatementHook{
			pass.TypeKey(&ast.SwitchStatement{}): func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
				n := s.(*ast.SwitchStatement)
				def := singleStatement(w.DefaultStatement(n)).(*ast.SwitchStatement)
				if retExpr, ok := switchReturnExpression(def); ok {
					return []ast.Statement{&ast.ReturnStatement{Base: def.Base, Value: retExpr}}, true
				}
				if asn, ok := switchAssignStatement(def); ok {
					return []ast.Statement{asn}, true
				}
				return []ast.Statement{def}, true
			},
		},
	}
}

func switchAssignStatement(sw *ast.SwitchStatement) (*ast.AssignmentStatement, bool) {
	var lhs ast.Expression
	cases := make([]ast.SwitchExpressionCase, 0, len(sw.Cases))
	for _, c := range sw.Cases {
		if len(c.Statements) != 1 {
			return nil, false
		}
		asn, ok := c.Statements[0].(*ast.AssignmentStatement)
		if !ok || asn.Operator != ast.AssignPlain {
			return nil, false
		}
		if lhs == nil {
			lhs = asn.Target
		} else if lhs.String() != asn.Target.String() {
			return nil, false
		}
		cases = append(cases, ast.SwitchExpressionCase{Expressions: c.Expressions, Value: asn.Value})
	}
	if lhs == nil {
		return nil, false
	}
	expr := &ast.SwitchExpression{Base: sw.Base, Subject: sw.Subject, Cases: cases}
	return &ast.AssignmentStatement{Base: sw.Base, Target: lhs, Value: expr, Operator: ast.AssignPlain}, true
}

func switchReturnExpression(sw *ast.SwitchStatement) (ast.Expression, bool) {
	cases := make([]ast.SwitchExpressionCase, 0, len(sw.Cases))
	for _, c := range sw.Cases {
		if len(c.Statements) != 1 {
			return nil, false
		}
		ret, ok := c.Statements[0].(*ast.ReturnStatement)
		if !ok || ret.Value == nil {
			return nil, false
		}
		cases = append(cases, ast.SwitchExpressionCase{Expressions: c.Expressions, Value: ret.Value})
	}
	return &ast.SwitchExpression{Base: sw.Base, Subject: sw.Subject, Cases: cases}, true
}

// mergeVarDeclSwitchAssignments finds a bare "var x: T" immediately
// followed by an assignment to x whose value is a switch expression (the
// shape switchesToExpressionsPass leaves behind) and fuses them into one
// declaration initialized by the switch, at every statement-list nesting
// level in the tree.
func mergeVarDeclSwitchAssignments(ctx *context.Context, statements []ast.Statement) []ast.Statement {
	merge := func(stmts []ast.Statement) []ast.Statement {
		out := make([]ast.Statement, 0, len(stmts))
		for i := 0; i < len(stmts); i++ {
			vd, ok := stmts[i].(*ast.VariableDeclaration)
			if ok && vd.Value == nil && i+1 < len(stmts) {
				if asn, ok := stmts[i+1].(*ast.AssignmentStatement); ok {
					if ref, ok := asn.Target.(*ast.DeclarationReferenceExpression); ok && ref.Name == vd.Name {
						if _, ok := asn.Value.(*ast.SwitchExpression); ok {
							vd.Value = asn.Value
							out = append(out, vd)
							i++
							continue
						}
					}
				}
			}
			out = append(out, stmts[i])
		}
		return out
	}
	nested := func(w *pass.Walker, s ast.Statement) ([]ast.Statement, bool) {
		def := singleStatement(w.DefaultStatement(s))
		switch n := def.(type) {
		case *ast.IfStatement:
			n.Then = merge(n.Then)
			n.Else = merge(n.Else)
		case *ast.WhileStatement:
			n.Body = merge(n.Body)
		case *ast.ForEachStatement:
			n.Body = merge(n.Body)
		case *ast.DoStatement:
			n.Body = merge(n.Body)
			for i := range n.Catches {
				n.Catches[i].Body = merge(n.Catches[i].Body)
			}
		case *ast.SwitchStatement:
			for i := range n.Cases {
				n.Cases[i].Statements = merge(n.Cases[i].Statements)
			}
		case *ast.FunctionDeclaration:
			n.Body = merge(n.Body)
		case *ast.InitializerDeclaration:
			n.Body = merge(n.Body)
		case *ast.ClassDeclaration:
			n.Members = merge(n.Members)
		case *ast.StructDeclaration:
			n.Members = merge(n.Members)
		case *ast.EnumDeclaration:
			n.Members = merge(n.Members)
		case *ast.ProtocolDeclaration:
			n.Members = merge(n.Members)
		case *ast.ExtensionDeclaration:
			n.Members = merge(n.Members)
		case *ast.CompanionObjectDeclaration:
			n.Members = merge(n.Members)
		}
		return []ast.Statement{def}, true
	}
	p := &pass.Pass{PassName: "merge-var-decl-switch-assignments", Statements: map[string]pass.StatementHook{
		pass.TypeKey(&ast.IfStatement{}):               nested,
		pass.TypeKey(&ast.WhileStatement{}):             nested,
		pass.TypeKey(&ast.ForEachStatement{}):           nested,
		pass.TypeKey(&ast.DoStatement{}):                nested,
		pass.TypeKey(&ast.SwitchStatement{}):            nested,
		pass.TypeKey(&ast.FunctionDeclaration{}):        nested,
		pass.TypeKey(&ast.InitializerDeclaration{}):     nested,
		pass.TypeKey(&ast.ClassDeclaration{}):           nested,
		pass.TypeKey(&ast.StructDeclaration{}):           nested,
		pass.TypeKey(&ast.EnumDeclaration{}):            nested,
		pass.TypeKey(&ast.ProtocolDeclaration{}):        nested,
		pass.TypeKey(&ast.ExtensionDeclaration{}):       nested,
		pass.TypeKey(&ast.CompanionObjectDeclaration{}): nested,
	}}
	return merge(pass.Run(p, ctx, statements))
}
