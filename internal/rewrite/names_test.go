package rewrite

import "testing"

func TestNamesStartsAndEndsInFixedOrder(t *testing.T) {
	names := Names()
	if names[0] != "replace-templates" {
		t.Fatalf("expected replace-templates first, got %q", names[0])
	}
	if got := names[len(names)-1]; got != "native-collection-warning" {
		t.Fatalf("expected native-collection-warning last, got %q", got)
	}

	seen := map[string]bool{}
	for _, n := range names {
		if seen[n] {
			t.Fatalf("name %q listed more than once", n)
		}
		seen[n] = true
	}
}
