// Package ast defines the typed abstract syntax tree shared by the source
// and target languages. A single node set is rich enough to express both:
// statement and expression variants that exist only on one side carry the
// other side's translation as the payload a rewrite pass produces.
//
// Nodes are tagged sums rather than a class hierarchy: every statement
// implements Statement, every expression implements Expression, and passes
// dispatch on the concrete type with a type switch instead of virtual
// dispatch. This mirrors the "structural pattern matching over a tagged
// variant" recommendation: a type switch stands in for a visitor
// hierarchy. The Go compiler does not check such a switch for
// exhaustiveness; internal/pass panics on a variant its switch misses.
package ast
