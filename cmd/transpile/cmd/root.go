package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "transpile",
	Short: "Swift-to-Kotlin semantic rewriting pipeline",
	Long: `transpile drives the core semantic rewriting pipeline over a typed Swift
AST and produces target Kotlin text plus a line-map.

Parsing Swift into a typed AST and resolving types are out of scope for
this tool; it reads pre-parsed AST and index-oracle fixtures (the shape
cmd/fixturegen authors) rather than Swift source directly, matching the
core's own external-collaborator boundary.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
