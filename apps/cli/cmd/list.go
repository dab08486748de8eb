package cmd

import (
	"fmt"

	"github.com/abdul-hamid-achik/testy/packages/selfcheck"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [suite]",
	Short: "List the built-in suites and their cases",
	Long: `List the demonstration suites run by 'testy selfcheck', with the number
of failures each one expects. Name a suite to list its cases.

Examples:
  testy list
  testy list failing`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeSuiteArg,
	RunE:              listCommand,
}

func listCommand(cmd *cobra.Command, args []string) error {
	name := "all"
	if len(args) == 1 {
		name = args[0]
	}

	suites, err := selfcheck.Lookup(name)
	if err != nil {
		return withExitCode(ExitUsageError, err)
	}

	out := cmd.OutOrStdout()
	for _, s := range suites {
		fmt.Fprintf(out, "%s: %d cases, expects %d failures\n", s.Name, len(s.Cases), s.Expected)
		if len(args) == 0 {
			continue
		}
		for _, c := range s.Cases {
			fmt.Fprintf(out, "  - %s\n", c.Name)
		}
	}
	return nil
}
