package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/swiftkt/transpile/internal/recording"
	"github.com/swiftkt/transpile/internal/rewrite"
)

var passesJSON bool

var passesCmd = &cobra.Command{
	Use:   "passes",
	Short: "List every pass the pipeline runs, in execution order",
	Long: `passes prints the first-round recording passes followed by the
second-round rewrite and warning passes, in the fixed order the pipeline
actually runs them. Useful for confirming a pass exists and where it sits
relative to another without reading internal/recording and internal/rewrite
source directly.`,
	RunE: runPasses,
}

// passesFlags is declared as the concrete pflag.FlagSet type rather than
// left to cobra's wrapper, so registering --json reads the same whether
// passesCmd ends up driven by cobra or wired directly into another
// pflag-based entry point later.
var passesFlags *pflag.FlagSet

func init() {
	rootCmd.AddCommand(passesCmd)
	passesFlags = passesCmd.Flags()
	passesFlags.BoolVar(&passesJSON, "json", false, "emit the two rounds as a JSON object instead of plain text")
}

func runPasses(_ *cobra.Command, _ []string) error {
	round1 := recording.Names()
	round2 := rewrite.Names()

	if passesJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string][]string{
			"recording": round1,
			"rewrite":   round2,
		})
	}

	fmt.Println("round one (recording):")
	for i, n := range round1 {
		fmt.Printf("  %2d. %s\n", i+1, n)
	}
	fmt.Println("round two (rewrite + warnings):")
	for i, n := range round2 {
		fmt.Printf("  %2d. %s\n", i+1, n)
	}
	return nil
}
