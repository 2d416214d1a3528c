package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print dictionary statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		lex, err := openLexicon()
		if err != nil {
			return err
		}
		s := lex.Stats()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "words:   %d\n", s.Words)
		fmt.Fprintf(out, "records: %d\n", s.Records)
		fmt.Fprintf(out, "size:    %d bytes\n", s.Bytes)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
