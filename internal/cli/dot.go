package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/soupx/soup"
	"github.com/soupx/soup/mutex"
)

var dotCmd = &cobra.Command{
	Use:   "dot <system> [property]",
	Short: "Write a state graph in Graphviz DOT format",
	Long: `Dot explores a system's state space, or the synchronous product of a
system and a property, and writes the resulting graph as Graphviz input to
stdout or to a file via -o/--output.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputPath, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}

		build, ok := mutex.Systems()[args[0]]
		if !ok {
			return fmt.Errorf("unknown system %q", args[0])
		}
		sys, err := build()
		if err != nil {
			return err
		}

		writer := cmd.OutOrStdout()
		if outputPath != "" {
			file, err := os.Create(outputPath)
			if err != nil {
				return err
			}
			defer file.Close()
			writer = file
		}

		if len(args) == 1 {
			g := soup.GraphOf[mutex.State, soup.Piece[mutex.State]](sys)
			return soup.WriteDot(writer, g)
		}

		buildProp, ok := mutex.Properties()[args[1]]
		if !ok {
			return fmt.Errorf("unknown property %q", args[1])
		}
		prod := soup.NewProduct[mutex.State, soup.Piece[mutex.State], mutex.Label](sys, buildProp())
		g := soup.GraphOf[soup.ProductState[mutex.State, mutex.Label], soup.Step[mutex.State, soup.Piece[mutex.State], mutex.Label]](prod)
		return soup.WriteDot(writer, g)
	},
}

func init() {
	rootCmd.AddCommand(dotCmd)

	dotCmd.Flags().StringP("output", "o", "", "write the generated graph to a file")
}
