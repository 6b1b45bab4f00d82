// Package pipeline is the driver: it runs the nine first-round recording
// passes once across every file sharing a single Context, then runs each
// file's second-round rewrite passes and emission against its own
// per-file Context, frozen read-only for round two and made concrete via
// context.Context.ForFile. It owns the structured per-file logging a
// real binary needs to report progress and failures.
package pipeline

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/swiftkt/transpile/internal/ast"
	"github.com/swiftkt/transpile/internal/buffer"
	"github.com/swiftkt/transpile/internal/config"
	"github.com/swiftkt/transpile/internal/context"
	"github.com/swiftkt/transpile/internal/diag"
	"github.com/swiftkt/transpile/internal/emit"
	"github.com/swiftkt/transpile/internal/oracle"
	"github.com/swiftkt/transpile/internal/recording"
	"github.com/swiftkt/transpile/internal/rewrite"
)

// Input is one file's frontend output: the typed AST plus the index
// oracle the frontend produced alongside it.
type Input struct {
	File   *ast.File
	Oracle oracle.Oracle
}

// Output is one file's result: target text, its line-map, and whatever
// diagnostics the file's passes recorded.
type Output struct {
	Path        string
	Text        string
	LineMap     []buffer.LineMapEntry
	Diagnostics []diag.Diagnostic
}

// Run executes a full transpilation: first round over every input's
// file sharing one Context, then second round and emission per file.
// Second-round runs are independent of one another but are driven here
// sequentially; see DESIGN.md for why this implementation doesn't also
// fan them out across goroutines.
func Run(cfg config.Config, inputs []Input) []Output {
	ctx := context.New(cfg)

	files := make([]*ast.File, len(inputs))
	for i, in := range inputs {
		files[i] = in.File
	}

	log.WithField("files", len(files)).Info("running first-round recording passes")
	recordStart := time.Now()
	recording.Run(ctx, files)
	ctx.Freeze()
	log.WithField("elapsed", time.Since(recordStart)).Debug("first round complete")

	outputs := make([]Output, len(inputs))
	for i, in := range inputs {
		outputs[i] = runFile(ctx, in)
	}
	return outputs
}

func runFile(ctx *context.Context, in Input) Output {
	fc := ctx.ForFile(in.Oracle)
	logger := log.WithField("file", in.File.Path)

	start := time.Now()
	statements := rewrite.Run(fc, in.File.Statements)
	in.File.Statements = statements

	text, lineMap := emit.Emit(fc, in.File)

	errs, warns := fc.Diagnostics.ErrorCount(), fc.Diagnostics.WarningCount()
	logger.WithField("elapsed", time.Since(start)).
		WithField("errors", errs).
		WithField("warnings", warns).
		Info("file translated")
	if errs > 0 {
		logger.Warn("file produced one or more errors; output may be incomplete")
	}

	return Output{
		Path:        in.File.Path,
		Text:        text,
		LineMap:     lineMap,
		Diagnostics: fc.Diagnostics.All(),
	}
}
