package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/swiftkt/transpile/internal/config"
	"github.com/swiftkt/transpile/internal/fixture"
	"github.com/swiftkt/transpile/internal/oracle"
	"github.com/swiftkt/transpile/internal/pipeline"
)

var (
	runConfigPath    string
	runIndent        string
	runDefaultsFinal bool
	runTargetVersion string
	runPrintLineMap  bool
)

var runCmd = &cobra.Command{
	Use:   "run <fixture.json>...",
	Short: "Translate one or more AST+oracle fixtures to Kotlin",
	Long: `run decodes each fixture (the JSON shape cmd/fixturegen authors:
a file's typed Swift statements plus the index-oracle's parentType answers
for every handle) into a typed AST and an Oracle, runs them together
through the pipeline, and prints the resulting Kotlin text and diagnostics
for each file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "path to a transpile.yaml project config (defaults to built-in defaults)")
	runCmd.Flags().StringVar(&runIndent, "indent", "", "override the configured indentation string")
	runCmd.Flags().BoolVar(&runDefaultsFinal, "final", false, "declarations of unknown openness default to final")
	runCmd.Flags().StringVar(&runTargetVersion, "target-version", "", "opaque target-version string forwarded to the frontend's own record")
	runCmd.Flags().BoolVar(&runPrintLineMap, "line-map", false, "print the emitted line-map alongside each file's text")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if runConfigPath != "" {
		loaded, err := config.Load(runConfigPath)
		if err != nil {
			return fmt.Errorf("loading %s: %w", runConfigPath, err)
		}
		cfg = loaded
	}
	if runIndent != "" {
		cfg.IndentationString = runIndent
	}
	if cmd.Flags().Changed("final") {
		cfg.DefaultsToFinal = runDefaultsFinal
	}
	if runTargetVersion != "" {
		cfg.TargetVersion = runTargetVersion
	}

	inputs := make([]pipeline.Input, 0, len(args))
	for _, path := range args {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		file, oracleDoc, err := fixture.DecodeFile(raw)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", path, err)
		}
		if file.Path == "" {
			file.Path = filepath.Base(path)
		}
		inputs = append(inputs, pipeline.Input{
			File:   file,
			Oracle: oracle.NewFixtureOracle(oracleDoc),
		})
	}

	outputs := pipeline.Run(cfg, inputs)

	for i, out := range outputs {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("// %s\n", out.Path)
		fmt.Print(out.Text)
		for _, d := range out.Diagnostics {
			fmt.Fprintln(os.Stderr, d.Format("", out.Path))
		}
		if runPrintLineMap {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(out.LineMap); err != nil {
				return fmt.Errorf("encoding line-map for %s: %w", out.Path, err)
			}
		}
	}

	for _, out := range outputs {
		for _, d := range out.Diagnostics {
			if d.Severity.String() == "error" {
				exitWithError("%s produced one or more errors", out.Path)
			}
		}
	}
	return nil
}
