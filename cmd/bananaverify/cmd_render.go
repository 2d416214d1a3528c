package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bananaverify/internal/board"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a board specification as an ASCII grid",
	Long: `Render parses a board specification and prints the resulting grid,
one character per cell with '.' for empty cells. The specification must
parse and place cleanly; use "verify" to diagnose a broken board.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arg := "-"
		if len(args) == 1 {
			arg = args[0]
		}
		spec, err := readInput(arg)
		if err != nil {
			return err
		}
		out, err := board.Visualize(spec)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
