package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bananaverify/internal/verify"
)

var checkCmd = &cobra.Command{
	Use:   "check WORD [WORD ...]",
	Short: "Check words against the dictionary",
	Long: `Check tests each word for dictionary membership, case-insensitively.
The command exits non-zero when any word is not in the dictionary.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lex, err := openLexicon()
		if err != nil {
			return err
		}
		v := verify.New(lex)

		out := cmd.OutOrStdout()
		var missing []string
		for _, word := range args {
			if v.CheckWord(word) {
				fmt.Fprintf(out, "%s: valid\n", strings.ToUpper(word))
			} else {
				fmt.Fprintf(out, "%s: not a word\n", strings.ToUpper(word))
				missing = append(missing, strings.ToUpper(word))
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("%d word(s) not in dictionary", len(missing))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
