// Package recording implements the nine first-round passes: they run
// over every file before any rewriting and populate the shared context
// that the second round reads from. Order matters: Clean Inheritances
// must run after Inheritance Recording and before Enum Recording, and
// Enum Recording reads the protocols Protocol Recording collected, so Run
// is the only supported entry point; callers should not invoke the
// individual pass constructors directly.
package recording

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/config"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

// Run executes all nine recording passes, in their fixed order, over
// every file's statement list, storing each pass's result back into the
// file. Recording passes only ever read the tree and write to ctx, aside
// from Initializer Return Types, Implicit Raw Values and Clean
// Inheritances, which patch fields in place on the nodes they visit.
func Run(ctx *context.Context, files []*ast.File) {
	order := []*pass.Pass{
		initializerReturnTypesPass(),
		templatesPass(ctx),
		protocolsPass(ctx),
		initializerRecordingPass(ctx),
		inheritanceRecordingPass(ctx),
		implicitRawValuesPass(),
		cleanInheritancesPass(ctx),
		enumRecordingPass(ctx),
		functionRecordingPass(ctx),
	}
	for _, p := range order {
		for _, f := range files {
			f.Statements = pass.Run(p, ctx, f.Statements)
		}
	}
}

// Names lists the recording passes in execution order, for the CLI's
// "passes" subcommand. It builds throwaway Pass instances against a fresh
// context purely to read their names back off pass.Pass.Name(), rather
// than maintaining a second copy of the order Run already encodes.
func Names() []string {
	ctx := context.New(config.Default())
	order := []*pass.Pass{
		initializerReturnTypesPass(),
		templatesPass(ctx),
		protocolsPass(ctx),
		initializerRecordingPass(ctx),
		inheritanceRecordingPass(ctx),
		implicitRawValuesPass(),
		cleanInheritancesPass(ctx),
		enumRecordingPass(ctx),
		functionRecordingPass(ctx),
	}
	names := make([]string, len(order))
	for i, p := range order {
		names[i] = p.Name()
	}
	return names
}
