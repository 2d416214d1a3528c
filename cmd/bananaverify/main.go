// Command bananaverify validates Bananagrams-style board specifications:
// parsing, structural checks, grid construction, dictionary membership and
// tile accounting, with cascade-filtered feedback suitable for an automated
// player.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"bananaverify/internal/config"
	"bananaverify/internal/logging"
)

const version = "0.2.0"

var (
	// Global flags
	cfgPath string
	verbose bool

	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bananaverify",
	Short: "Bananagrams board specification verifier",
	Long: `bananaverify validates textual Bananagrams board specifications.

A specification declares a root word and a sequence of placements anchored
to earlier words:

  SCURRIES H
  NINES[4] @ SCURRIES[0] V

The verifier checks the grammar, the placement geometry, cell conflicts,
dictionary membership of every word formed on the grid (declared or
accidental), and tile usage against the player's hand.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		level := cfg.Logging.Level
		if verbose || cfg.Logging.Debug {
			level = "debug"
		}
		if err := logging.Init(level, cfg.Logging.JSON); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

// versionCmd prints the build version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bananaverify version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bananaverify %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "bananaverify.yaml", "path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// readInput reads a board specification from a file, or from stdin when the
// argument is "-".
func readInput(arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
