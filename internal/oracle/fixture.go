package oracle

import (
	"github.com/tidwall/gjson"

	"github.com/swiftkt/transpile/internal/ast"
)

// FixtureOracle answers GetParentType by looking a handle up in a JSON
// fixture document's "parentTypes" object, the format the integration
// test suite packages index-oracle responses in alongside a file's typed
// AST (itself also JSON-encoded, produced and patched by cmd/fixturegen).
// The document is kept as raw bytes and queried lazily with gjson rather
// than unmarshaled up front, since a fixture may carry many files' worth
// of responses and most queries only ever touch one.
type FixtureOracle struct {
	doc []byte
}

// NewFixtureOracle wraps a JSON document of the form
// {"parentTypes": {"<handle>": "<type>", ...}}.
func NewFixtureOracle(doc []byte) *FixtureOracle {
	return &FixtureOracle{doc: doc}
}

func (f *FixtureOracle) GetParentType(handle ast.SyntaxHandle) (string, bool) {
	key, ok := handle.(string)
	if !ok {
		return "", false
	}
	path := "parentTypes." + gjson.Escape(key)
	result := gjson.GetBytes(f.doc, path)
	if !result.Exists() {
		return "", false
	}
	return result.String(), true
}

// ParentTypeCount reports how many handle/type pairs the fixture carries,
// used by fixture-sanity tests to assert a generator tool produced the
// expected number of entries without asserting on any one of them.
func (f *FixtureOracle) ParentTypeCount() int {
	result := gjson.GetBytes(f.doc, "parentTypes")
	if !result.Exists() || !result.IsObject() {
		return 0
	}
	n := 0
	result.ForEach(func(_, _ gjson.Result) bool {
		n++
		return true
	})
	return n
}
