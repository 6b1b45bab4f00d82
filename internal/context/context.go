// Package context implements the transpilation context: the process-wide,
// per-run record that accumulates cross-file knowledge during the first
// round and is read-only during the second.
package context

import (
	"sync"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/config"
	"github.com/swiftkt/transpile/internal/diag"
	"github.com/swiftkt/transpile/internal/oracle"
)

// FunctionTranslation records one declared function's signature so later
// passes (and the call-argument matcher) can look it up by name and
// enclosing type.
type FunctionTranslation struct {
	APIName    string
	Type       string // fully-qualified enclosing type, "" for a free function
	Prefix     string // "fun", "init", etc.
	Parameters []ast.FunctionParameter
}

// Context is the shared, mutable-during-round-one record. Record* methods
// are the only first-round writers; everything else is a read.
type Context struct {
	Config config.Config

	Diagnostics *diag.Sink
	Templates   *TemplateRegistry

	// Oracle answers parent-type queries for the file this Context was
	// handed out for. It's nil during round one, which runs across every
	// file before any one file's oracle is consulted; ForFile sets it for
	// the per-file Context round two and the emitter run against.
	Oracle oracle.Oracle

	mu sync.Mutex // guards every Record* call

	protocols        map[string]bool
	enumClassEnums   map[string]bool
	sealedClassEnums map[string]bool
	inheritances     map[string][]string
	enumDecls        map[string]*ast.EnumDeclaration
	functions        []FunctionTranslation
	pureFunctions    map[string]bool

	frozen bool
}

// New returns a fresh context ready for the first round.
func New(cfg config.Config) *Context {
	return &Context{
		Config:           cfg,
		Diagnostics:      diag.NewSink(),
		Templates:        NewTemplateRegistry(),
		protocols:        map[string]bool{},
		enumClassEnums:   map[string]bool{},
		sealedClassEnums: map[string]bool{},
		inheritances:     map[string][]string{},
		enumDecls:        map[string]*ast.EnumDeclaration{},
		pureFunctions:    map[string]bool{},
	}
}

// ForFile returns a Context for one file's round-two passes and emission:
// it shares every round-one map by reference, read-only from here on so no
// additional locking is needed across the files' independent round-two
// runs, but carries its own Diagnostics sink and Oracle, so error/warning
// counts and parent-type answers never leak between files.
func (c *Context) ForFile(o oracle.Oracle) *Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &Context{
		Config:           c.Config,
		Diagnostics:      diag.NewSink(),
		Templates:        c.Templates,
		Oracle:           o,
		protocols:        c.protocols,
		enumClassEnums:   c.enumClassEnums,
		sealedClassEnums: c.sealedClassEnums,
		inheritances:     c.inheritances,
		enumDecls:        c.enumDecls,
		functions:        c.functions,
		pureFunctions:    c.pureFunctions,
		frozen:           c.frozen,
	}
}

// Freeze marks the end of the first round. It is advisory: Record* calls
// after Freeze still work (there is no enforcement mechanism in Go worth
// adding for an internal contract), but the driver calls it so a future
// reader auditing a bug report knows which round produced a given entry.
func (c *Context) Freeze() { c.frozen = true }

// Frozen reports whether the first round has ended.
func (c *Context) Frozen() bool { return c.frozen }

// RecordProtocol adds name to the set of declared protocol names.
func (c *Context) RecordProtocol(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.protocols[name] = true
}

// IsProtocol reports whether name was declared as a protocol.
func (c *Context) IsProtocol(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.protocols[name]
}

// RecordInheritance appends inherited to the multimap entry for fqType.
func (c *Context) RecordInheritance(fqType string, inherited []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inheritances[fqType] = append(c.inheritances[fqType], inherited...)
}

// SetInheritance replaces the multimap entry for fqType outright; used by
// the clean-inheritances pass to drop source-only names.
func (c *Context) SetInheritance(fqType string, inherited []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inheritances[fqType] = inherited
}

// Inheritances returns the recorded inheritance list for fqType.
func (c *Context) Inheritances(fqType string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.inheritances[fqType]...)
}

// MarkEnumClass records fqType as compiling to an enum-class: all elements
// nullary and no superclass.
func (c *Context) MarkEnumClass(fqType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enumClassEnums[fqType] = true
}

// MarkSealedClass records fqType as compiling to a sealed class: at least
// one element carries associated values.
func (c *Context) MarkSealedClass(fqType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sealedClassEnums[fqType] = true
}

// IsEnumClass reports whether fqType was classified as an enum-class.
func (c *Context) IsEnumClass(fqType string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enumClassEnums[fqType]
}

// IsSealedClass reports whether fqType was classified as a sealed class.
func (c *Context) IsSealedClass(fqType string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sealedClassEnums[fqType]
}

// RecordEnumDecl stores the declaration for fqType so later passes can
// look up its elements' associated-value signatures.
func (c *Context) RecordEnumDecl(fqType string, decl *ast.EnumDeclaration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enumDecls[fqType] = decl
}

// EnumDecl looks up the recorded declaration for fqType.
func (c *Context) EnumDecl(fqType string) (*ast.EnumDeclaration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.enumDecls[fqType]
	return d, ok
}

// RecordFunctionTranslation appends ft to the function-translation list.
func (c *Context) RecordFunctionTranslation(ft FunctionTranslation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.functions = append(c.functions, ft)
}

// GetFunctionTranslation returns the most recently recorded translation
// whose APIName and Type both equal the arguments, or false. When two
// translations share both name and type, the later Record call wins;
// scanning from the end gives that for free.
func (c *Context) GetFunctionTranslation(apiName, typ string) (FunctionTranslation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.functions) - 1; i >= 0; i-- {
		ft := c.functions[i]
		if ft.APIName == apiName && ft.Type == typ {
			return ft, true
		}
	}
	return FunctionTranslation{}, false
}

// RecordPureFunction marks name as side-effect free.
func (c *Context) RecordPureFunction(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pureFunctions[name] = true
}

// IsPure reports whether name was recorded as pure.
func (c *Context) IsPure(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pureFunctions[name]
}
