package cli

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "soupcheck",
	Short: "Explicit-state model checker for guarded-transition systems",
	Long: `soupcheck explores the state space of the Alice & Bob mutual-exclusion
protocols (AB1-AB5), composes them with Büchi property automata (P1-P5) and
reports whether each property holds, with a lasso counter-example when it
does not.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
