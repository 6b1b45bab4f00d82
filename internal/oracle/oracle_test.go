package oracle

import "testing"

func TestStaticGetParentType(t *testing.T) {
	s := Static{"h1": "Robot"}

	typ, ok := s.GetParentType("h1")
	if !ok || typ != "Robot" {
		t.Fatalf("expected (Robot, true), got (%q, %v)", typ, ok)
	}

	if _, ok := s.GetParentType("missing"); ok {
		t.Fatal("expected missing handle to report not found")
	}
}

func TestStaticGetParentTypeRejectsNonStringHandle(t *testing.T) {
	s := Static{"1": "Robot"}

	if _, ok := s.GetParentType(1); ok {
		t.Fatal("expected a non-string handle to never match")
	}
}

func TestFixtureOracleGetParentType(t *testing.T) {
	doc := []byte(`{"parentTypes":{"h1":"Robot","h2":"Direction"}}`)
	f := NewFixtureOracle(doc)

	typ, ok := f.GetParentType("h2")
	if !ok || typ != "Direction" {
		t.Fatalf("expected (Direction, true), got (%q, %v)", typ, ok)
	}

	if _, ok := f.GetParentType("missing"); ok {
		t.Fatal("expected missing handle to report not found")
	}
}

func TestFixtureOracleGetParentTypeEscapesDottedKeys(t *testing.T) {
	doc := []byte(`{"parentTypes":{"Outer.inner":"Robot"}}`)
	f := NewFixtureOracle(doc)

	typ, ok := f.GetParentType("Outer.inner")
	if !ok || typ != "Robot" {
		t.Fatalf("expected a dotted handle to resolve via escaping, got (%q, %v)", typ, ok)
	}
}

func TestFixtureOracleGetParentTypeRejectsNonStringHandle(t *testing.T) {
	f := NewFixtureOracle([]byte(`{"parentTypes":{}}`))

	if _, ok := f.GetParentType(42); ok {
		t.Fatal("expected a non-string handle to never match")
	}
}

func TestFixtureOracleParentTypeCount(t *testing.T) {
	f := NewFixtureOracle([]byte(`{"parentTypes":{"h1":"Robot","h2":"Direction"}}`))

	if n := f.ParentTypeCount(); n != 2 {
		t.Fatalf("expected 2 entries, got %d", n)
	}
}

func TestFixtureOracleParentTypeCountEmptyDoc(t *testing.T) {
	f := NewFixtureOracle([]byte(`{}`))

	if n := f.ParentTypeCount(); n != 0 {
		t.Fatalf("expected 0 entries for a document with no parentTypes object, got %d", n)
	}
}
