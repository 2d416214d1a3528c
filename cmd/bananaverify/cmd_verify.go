package main

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"bananaverify/internal/lexicon"
	"bananaverify/internal/logging"
	"bananaverify/internal/validation"
	"bananaverify/internal/verify"
)

var (
	handFlag  string
	jsonFlag  bool
	maxErrors int
	showAll   bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify [file ...]",
	Short: "Verify one or more board specifications",
	Long: `Verify reads board specifications from the given files (or stdin when
no file is given, or when a file is "-") and reports every structural,
dictionary and tile error found. Multiple files are verified concurrently.

Cascading errors are filtered so that a single root cause does not flood
the report; pass --all to see the unfiltered list.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&handFlag, "hand", "", "tiles in hand, e.g. ACEINRSSSU (enables tile accounting)")
	verifyCmd.Flags().BoolVar(&jsonFlag, "json", false, "emit the full result as JSON")
	verifyCmd.Flags().IntVar(&maxErrors, "max-errors", 0, "maximum errors shown per board (0 uses config)")
	verifyCmd.Flags().BoolVar(&showAll, "all", false, "disable cascade filtering and the error cap")
	rootCmd.AddCommand(verifyCmd)
}

// verifyJob pairs an input with its verification result so concurrent runs
// can be reported in input order.
type verifyJob struct {
	name   string
	runID  string
	spec   string
	result validation.Result
}

func runVerify(cmd *cobra.Command, args []string) error {
	log := logging.L(logging.CLI)

	lex, err := openLexicon()
	if err != nil {
		return err
	}
	v := verify.New(lex)

	if len(args) == 0 {
		args = []string{"-"}
	}
	jobs := make([]*verifyJob, len(args))
	for i, arg := range args {
		spec, err := readInput(arg)
		if err != nil {
			return err
		}
		name := arg
		if arg == "-" {
			name = "stdin"
		}
		jobs[i] = &verifyJob{name: name, runID: uuid.NewString()[:8], spec: spec}
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			log.Debugw("verifying board", "run", job.runID, "input", job.name)
			job.result = v.Verify(job.spec, handFlag)
			log.Infow("board verified",
				"run", job.runID,
				"input", job.name,
				"valid", job.result.Valid,
				"errors", len(job.result.Errors),
				"warnings", len(job.result.Warnings))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	invalid := 0
	for i, job := range jobs {
		if !job.result.Valid {
			invalid++
		}
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		if err := printResult(cmd, job, len(jobs) > 1); err != nil {
			return err
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d board(s) invalid", invalid, len(jobs))
	}
	return nil
}

// openLexicon returns the configured external dictionary when one is set,
// otherwise the embedded default.
func openLexicon() (*lexicon.Lexicon, error) {
	if path := cfg.Verifier.DictionaryPath; path != "" {
		lex, err := lexicon.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load dictionary %s: %w", path, err)
		}
		logging.L(logging.Lexicon).Debugw("loaded external dictionary",
			"path", path, "words", lex.Len())
		return lex, nil
	}
	return lexicon.Default(), nil
}

func printResult(cmd *cobra.Command, job *verifyJob, multi bool) error {
	out := cmd.OutOrStdout()

	if jsonFlag {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(job.result)
	}

	res := job.result
	errs, warns := res.Errors, res.Warnings
	suppressed := 0
	if !showAll {
		limit := maxErrors
		if limit <= 0 {
			limit = cfg.Verifier.MaxShownErrors
		}
		errs, warns, suppressed = validation.FilterCascading(res.Errors, res.Warnings, limit)
	}

	if multi {
		fmt.Fprintf(out, "== %s ==\n", job.name)
	}
	if res.Valid {
		fmt.Fprintln(out, "VALID")
	} else {
		fmt.Fprintln(out, "INVALID")
	}
	if res.Grid != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, res.Grid)
	}
	if len(res.Words) > 0 {
		fmt.Fprintf(out, "words: %s\n", strings.Join(res.Words, ", "))
	}
	if handFlag != "" {
		fmt.Fprintf(out, "tiles used: %d\n", res.TilesUsed)
	}
	for _, e := range errs {
		fmt.Fprintf(out, "error [%s] %s\n", e.Code, e.Message)
	}
	if suppressed > 0 {
		fmt.Fprintf(out, "... and %d more error(s) suppressed\n", suppressed)
	}
	for _, w := range warns {
		fmt.Fprintf(out, "warning [%s] %s\n", w.Code, w.Message)
	}
	return nil
}
