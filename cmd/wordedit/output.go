package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// successf prints a green status line. Suppressed by --quiet and --json;
// color drops away on its own when output is piped.
func (o *rootOptions) successf(cmd *cobra.Command, format string, args ...any) {
	if o.quiet || o.jsonOut {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), color.GreenString(format, args...))
}

// failuref prints a red status line. Suppressed by --quiet and --json.
func (o *rootOptions) failuref(cmd *cobra.Command, format string, args ...any) {
	if o.quiet || o.jsonOut {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), color.RedString(format, args...))
}

// printJSON writes v as indented JSON to the command's output.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func failureString(s string) string {
	return color.RedString("%s", s)
}
