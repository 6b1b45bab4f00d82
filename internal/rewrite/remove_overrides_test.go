package rewrite

import (
	"testing"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/config"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/pass"
)

func TestRemoveInvalidOverridesClearsOverrideOnStaticFunction(t *testing.T) {
	ctx := context.New(config.Default())
	fn := &ast.FunctionDeclaration{Name: "make", IsStatic: true, IsOverride: true}

	pass.Run(removeInvalidOverridesPass(ctx), ctx, []ast.Statement{fn})

	if fn.IsOverride {
		t.Fatalf("expected IsOverride to be cleared on a static function")
	}
}

func TestRemoveInvalidOverridesLeavesInstanceOverrideAlone(t *testing.T) {
	ctx := context.New(config.Default())
	fn := &ast.FunctionDeclaration{Name: "draw", IsStatic: false, IsOverride: true}

	pass.Run(removeInvalidOverridesPass(ctx), ctx, []ast.Statement{fn})

	if !fn.IsOverride {
		t.Fatalf("expected IsOverride to survive on a non-static function")
	}
}
