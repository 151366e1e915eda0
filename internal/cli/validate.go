package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/graphcost/costlang/internal/parser"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid      bool         `json:"valid"`
	Statements int          `json:"statements"`
	Error      *SyntaxError `json:"error,omitempty"`
}

// SyntaxError locates a parse failure in the source text.
type SyntaxError struct {
	Offset  int    `json:"offset"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <model-file>",
		Short: "Parse a cost model and report the first syntax error",
		Long: `Parse a cost model document and report whether it is well formed.

The whole input must be consumed: trailing text that no statement
matches is a syntax error, reported with its line and column.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
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

	formatter.VerboseLog("parsing %s (%d bytes)", path, len(src))

	doc, err := parser.ParseDocument(string(src), parser.WithMaxDepth(opts.MaxDepth))
	if err != nil {
		return outputSyntaxError(formatter, string(src), err)
	}

	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Statements: len(doc.Statements)})
	}
	fmt.Fprintf(formatter.Writer, "✓ model valid: %d statement(s)\n", len(doc.Statements))
	return nil
}

// outputSyntaxError reports a parse failure and returns the matching
// ExitError. Shared with the inspect and eval commands.
func outputSyntaxError(formatter *OutputFormatter, src string, err error) error {
	var pe *parser.ParseError
	if !errors.As(err, &pe) {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return NewExitError(ExitFailure, err.Error())
	}

	line, col := parser.LineCol(src, pe.Offset)
	se := &SyntaxError{Offset: pe.Offset, Line: line, Column: col, Message: pe.Msg}

	if formatter.Format == "json" {
		_ = formatter.Error(ErrCodeSyntax, pe.Msg, ValidationResult{Valid: false, Error: se})
	} else {
		fmt.Fprintf(formatter.Writer, "✗ syntax error at line %d, column %d: %s\n", line, col, pe.Msg)
	}
	return NewExitError(ExitFailure, fmt.Sprintf("%s: %s", ErrCodeSyntax, pe.Msg))
}
