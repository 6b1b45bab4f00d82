// Package rewrite implements the second-round semantic-rewrite passes:
// one per transformation (occasionally a small family sharing a file),
// run in the fixed order Run assembles below. Every pass is driven
// through the pass.Run entry point except the two spots noted inline
// that need sibling or cross-condition context no per-node hook exposes.
package rewrite

import (
	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/config"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
	"github.com/swiftkt/transpile/internal/warn"
)

// Run executes every second-round pass over one file's top-level
// statements, in order, and returns the rewritten tree. It finishes by
// running the five warning-only passes in internal/warn, so a caller in
// internal/pipeline need only call this once per file for the whole round.
func Run(ctx *context.Context, statements []ast.Statement) []ast.Statement {
	ordered := []*pass.Pass{
		replaceTemplatesPass(ctx),
		equatableOperatorsPass(ctx),
		rawValuesMembersPass(ctx),
		descriptionToStringPass(ctx),
		optionalInitsPass(ctx),
		staticMembersPass(ctx),
		protocolContentsPass(ctx),
		removeExtensionsPass(ctx),
		shadowedIfLetToIsPass(ctx),
	}
	for _, p := range ordered {
		statements = pass.Run(p, ctx, statements)
	}

	// Side-effect-in-if-lets only emits diagnostics; it must see the
	// original condition order before if-lets are rearranged below.
	pass.Run(warn.SideEffectInIfLets(ctx), ctx, statements)

	ordered = []*pass.Pass{
		parenthesizeOrInIfPass(ctx),
		rearrangeIfLetsPass(ctx),
		selfToThisPass(ctx),
		implicitNullOptionalsPass(ctx),
		anonymousParameterRenamePass(ctx),
		covariantInitCastPass(ctx),
		optionalFunctionCallsPass(ctx),
		dataStructureInitializersPass(ctx),
		tuplesToPairsPass(ctx),
		autoclosuresPass(ctx),
		optionalSubscriptPass(ctx),
		addOptionalsInDotChainsPass(ctx),
		renameOperatorsPass(ctx),
		superCallsToHeadersPass(ctx),
		optionalsInConditionalCastsPass(ctx),
		accessModifiersPass(ctx),
		openDeclarationsPass(ctx),
		protocolExtensionGenericsPass(ctx),
		removeOpenOnInitializersPass(ctx),
		catchVariableSynthesisPass(ctx),
		matchCallsToDeclarationsPass(ctx),
		escapeStringsAndCharactersPass(ctx),
		removeInvalidOverridesPass(ctx),
		charactersInSwitchesPass(ctx),
		annotationsForCaseLetPass(ctx),
		capitalizeEnumsPass(ctx),
		isInSwitchesIfsPass(ctx),
		switchesToExpressionsPass(ctx),
	}
	for _, p := range ordered {
		statements = pass.Run(p, ctx, statements)
	}

	// The variable-declaration merge half of "switches to expressions"
	// needs to see a statement's successor, which no per-node hook can.
	statements = mergeVarDeclSwitchAssignments(ctx, statements)

	ordered = []*pass.Pass{
		removeBreaksInSwitchesPass(ctx),
		returnsInLambdasPass(ctx),
		innerTypePrefixesPass(ctx),
		doubleNegativesInGuardsPass(ctx),
		ifNilReturnToElvisPass(ctx),
	}
	for _, p := range ordered {
		statements = pass.Run(p, ctx, statements)
	}

	warn.Run(ctx, statements)
	return statements
}

// Names lists every second-round step Run executes, in order, including
// the two steps that aren't a *pass.Pass (side-effect-in-if-lets's
// interleaved position, and the var-decl/switch merge) and the five
// warning passes Run finishes with. For the CLI's "passes" subcommand.
func Names() []string {
	ctx := context.New(config.Default())
	var names []string
	for _, p := range []*pass.Pass{
		replaceTemplatesPass(ctx),
		equatableOperatorsPass(ctx),
		rawValuesMembersPass(ctx),
		descriptionToStringPass(ctx),
		optionalInitsPass(ctx),
		staticMembersPass(ctx),
		protocolContentsPass(ctx),
		removeExtensionsPass(ctx),
		shadowedIfLetToIsPass(ctx),
	} {
		names = append(names, p.Name())
	}

	names = append(names, warn.SideEffectInIfLets(ctx).Name())

	for _, p := range []*pass.Pass{
		parenthesizeOrInIfPass(ctx),
		rearrangeIfLetsPass(ctx),
		selfToThisPass(ctx),
		implicitNullOptionalsPass(ctx),
		anonymousParameterRenamePass(ctx),
		covariantInitCastPass(ctx),
		optionalFunctionCallsPass(ctx),
		dataStructureInitializersPass(ctx),
		tuplesToPairsPass(ctx),
		autoclosuresPass(ctx),
		optionalSubscriptPass(ctx),
		addOptionalsInDotChainsPass(ctx),
		renameOperatorsPass(ctx),
		superCallsToHeadersPass(ctx),
		optionalsInConditionalCastsPass(ctx),
		accessModifiersPass(ctx),
		openDeclarationsPass(ctx),
		protocolExtensionGenericsPass(ctx),
		removeOpenOnInitializersPass(ctx),
		catchVariableSynthesisPass(ctx),
		matchCallsToDeclarationsPass(ctx),
		escapeStringsAndCharactersPass(ctx),
		removeInvalidOverridesPass(ctx),
		charactersInSwitchesPass(ctx),
		annotationsForCaseLetPass(ctx),
		capitalizeEnumsPass(ctx),
		isInSwitchesIfsPass(ctx),
		switchesToExpressionsPass(ctx),
	} {
		names = append(names, p.Name())
	}

	names = append(names, "merge-var-decl-switch-assignments")

	for _, p := range []*pass.Pass{
		removeBreaksInSwitchesPass(ctx),
		returnsInLambdasPass(ctx),
		innerTypePrefixesPass(ctx),
		doubleNegativesInGuardsPass(ctx),
		ifNilReturnToElvisPass(ctx),
	} {
		names = append(names, p.Name())
	}

	names = append(names, warn.LateNames()...)
	return names
}
