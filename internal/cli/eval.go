package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/graphcost/costlang/internal/eval"
	"github.com/graphcost/costlang/internal/parser"
)

// EvalResult holds the outcome of evaluating one statement.
type EvalResult struct {
	Statement int    `json:"statement"`
	Matched   bool   `json:"matched"`
	Cost      string `json:"cost,omitempty"` // decimal string; may exceed int64
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		index    int
		varsPath string
	)

	cmd := &cobra.Command{
		Use:   "eval <model-file>",
		Short: "Evaluate one statement's guard and cost",
		Long: `Evaluate a single statement of a cost model against a variable
environment. The statement's where-guard must hold; the cost expression
is then evaluated and printed as a decimal integer.

The vars file is a YAML map of variable name to integer or boolean,
for example:

    skip: 5000
    premium: true`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, args[0], index, varsPath, cmd)
		},
	}

	cmd.Flags().IntVar(&index, "statement", 0, "index of the statement to evaluate")
	cmd.Flags().StringVar(&varsPath, "vars", "", "YAML file with the variable environment")

	return cmd
}

func runEval(opts *RootOptions, path string, index int, varsPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	src, err := os.ReadFile(path)
	if err != nil {
		_ = formatter.Error(ErrCodeFileRead, fmt.Sprintf("cannot read model: %v", err), nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("%s: cannot read model", ErrCodeFileRead))
	}

	doc, err := parser.ParseDocument(string(src), parser.WithMaxDepth(opts.MaxDepth))
	if err != nil {
		return outputSyntaxError(formatter, string(src), err)
	}

	if index < 0 || index >= len(doc.Statements) {
		msg := fmt.Sprintf("statement %d does not exist (model has %d)", index, len(doc.Statements))
		_ = formatter.Error(ErrCodeGeneric, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	vars := eval.Vars{}
	if varsPath != "" {
		vars, err = LoadVars(varsPath)
		if err != nil {
			_ = formatter.Error(ErrCodeVars, err.Error(), nil)
			return NewExitError(ExitCommandError, fmt.Sprintf("%s: %v", ErrCodeVars, err))
		}
		formatter.VerboseLog("loaded %d variable(s) from %s", len(vars), varsPath)
	}

	cost, matched, err := eval.Statement(doc.Statements[index], vars)
	if err != nil {
		_ = formatter.Error(ErrCodeEval, err.Error(), nil)
		return NewExitError(ExitFailure, fmt.Sprintf("%s: %v", ErrCodeEval, err))
	}
	if !matched {
		msg := fmt.Sprintf("statement %d guard is false for this environment", index)
		if formatter.Format == "json" {
			_ = formatter.Error(ErrCodeNoMatch, msg, EvalResult{Statement: index})
		} else {
			fmt.Fprintf(formatter.Writer, "✗ %s\n", msg)
		}
		return NewExitError(ExitFailure, fmt.Sprintf("%s: %s", ErrCodeNoMatch, msg))
	}

	if formatter.Format == "json" {
		return formatter.Success(EvalResult{Statement: index, Matched: true, Cost: cost.String()})
	}
	fmt.Fprintln(formatter.Writer, cost.String())
	return nil
}
