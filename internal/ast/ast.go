package ast

import "reflect"

// SourceRange is a half-open source region, 1-indexed on both line and
// column. It is attached to frontend-produced nodes; nodes synthesized by a
// pass may leave it nil.
type SourceRange struct {
	StartLine, StartColumn int
	EndLine, EndColumn     int
}

// SyntaxHandle is an opaque reference into the frontend's own syntax tree.
// The core never interprets it; it exists solely so the index oracle (an
// external collaborator) can be asked questions about a node using the
// frontend's own identity for it. Synthesized nodes carry a nil handle.
type SyntaxHandle interface{}

// Node is the common shape of every statement and expression. A node may
// have a handle, a range, both, or neither (purely synthesized nodes have
// neither).
type Node interface {
	// String renders the node for debugging; it is not the emitter.
	String() string
	// Range returns the node's source range, or nil if synthesized.
	Range() *SourceRange
	// Handle returns the node's frontend syntax handle, or nil if synthesized.
	Handle() SyntaxHandle
}

// Statement is any node that performs an action without producing a value.
type Statement interface {
	Node
	statementNode()
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Base is embedded by every concrete node and supplies the common Handle
// and Range bookkeeping so variant structs need only add their payload.
type Base struct {
	SourceHandle SyntaxHandle
	SourceRangeV *SourceRange
}

func (b Base) Range() *SourceRange   { return b.SourceRangeV }
func (b Base) Handle() SyntaxHandle  { return b.SourceHandle }

// Equal reports whether two nodes are structurally identical. Per the data
// model invariant, equality is over the variant payload only: the frontend
// handle and the source range are both positional metadata and are ignored,
// so a synthesized node and the frontend node it replaces compare equal
// whenever their semantic content matches.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	return equalValue(va, vb, fieldsIgnoredByEquality(a))
}

// fieldsIgnoredByEquality names variant-specific fields that are metadata
// rather than payload. InitializerDeclaration.Name is conventionally "init"
// and carries no semantic information distinct from the node's own type.
func fieldsIgnoredByEquality(n Node) map[string]bool {
	if _, ok := n.(*InitializerDeclaration); ok {
		return map[string]bool{"Name": true}
	}
	return nil
}

func equalValue(va, vb reflect.Value, ignore map[string]bool) bool {
	if va.Kind() == reflect.Ptr {
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() == vb.IsNil()
		}
		va, vb = va.Elem(), vb.Elem()
	}
	if va.Kind() != reflect.Struct {
		return reflect.DeepEqual(va.Interface(), vb.Interface())
	}
	t := va.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Type == reflect.TypeOf(Base{}) {
			continue // Handle/Range are metadata, not payload
		}
		if ignore[field.Name] {
			continue
		}
		fa, fb := va.Field(i), vb.Field(i)
		if !fa.CanInterface() {
			continue
		}
		switch fa.Kind() {
		case reflect.Interface:
			na, oka := fa.Interface().(Node)
			nb, okb := fb.Interface().(Node)
			if oka || okb {
				if !oka || !okb || !Equal(na, nb) {
					return false
				}
				continue
			}
			if !reflect.DeepEqual(fa.Interface(), fb.Interface()) {
				return false
			}
		case reflect.Slice:
			if fa.Len() != fb.Len() {
				return false
			}
			for j := 0; j < fa.Len(); j++ {
				if !elementEqual(fa.Index(j), fb.Index(j)) {
					return false
				}
			}
		default:
			if !reflect.DeepEqual(fa.Interface(), fb.Interface()) {
				return false
			}
		}
	}
	return true
}

func elementEqual(a, b reflect.Value) bool {
	if na, ok := a.Interface().(Node); ok {
		nb, ok2 := b.Interface().(Node)
		return ok2 && Equal(na, nb)
	}
	return reflect.DeepEqual(a.Interface(), b.Interface())
}

// File is the root node produced by the frontend for a single source file:
// a flat list of top-level statements plus the file's own path, used by the
// emitter and by diagnostics.
type File struct {
	Path       string
	Statements []Statement
}
