// fixturegen is a small helper binary for authoring the JSON fixtures
// internal/fixture reads: since the core takes a typed AST and an index
// oracle as external inputs rather than parsing source itself, test
// fixtures have to be authored by hand, and patching a deeply nested
// fixture by rewriting the whole file on every edit is painful. fixturegen
// wraps github.com/tidwall/sjson so a fixture author can patch one field
// at a time from the command line instead.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"
)

var rootCmd = &cobra.Command{
	Use:   "fixturegen",
	Short: "Patch JSON AST+oracle fixtures for transpile's test suite",
}

var setCmd = &cobra.Command{
	Use:   "set <fixture.json> <path> <value>",
	Short: "Set one field of a fixture, creating parent objects/arrays as needed",
	Long: `set patches a single field of a fixture document in place, using the
same dotted/indexed path syntax sjson accepts, e.g.:

  fixturegen set robot.json statements.0.Name '"Robot"'
  fixturegen set robot.json parentTypes.h1 '"Robot"'

The value argument is parsed as JSON, so a string must be quoted and a
number or bool passed bare; this mirrors sjson's own --raw convention so a
fixture author can paste a JSON-valued node body with no extra escaping.`,
	Args: cobra.ExactArgs(3),
	RunE: runSet,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <fixture.json> <path>",
	Short: "Delete one field of a fixture",
	Args:  cobra.ExactArgs(2),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(setCmd, deleteCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("fixturegen failed")
		os.Exit(1)
	}
}

func runSet(_ *cobra.Command, args []string) error {
	file, path, value := args[0], args[1], args[2]
	doc, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}
	patched, err := sjson.SetRawBytes(doc, path, []byte(value))
	if err != nil {
		return fmt.Errorf("patching %s at %q: %w", file, path, err)
	}
	if err := os.WriteFile(file, patched, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", file, err)
	}
	log.WithField("file", file).WithField("path", path).Info("patched fixture")
	return nil
}

func runDelete(_ *cobra.Command, args []string) error {
	file, path := args[0], args[1]
	doc, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}
	patched, err := sjson.DeleteBytes(doc, path)
	if err != nil {
		return fmt.Errorf("deleting %s at %q: %w", file, path, err)
	}
	if err := os.WriteFile(file, patched, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", file, err)
	}
	log.WithField("file", file).WithField("path", path).Info("deleted fixture field")
	return nil
}
