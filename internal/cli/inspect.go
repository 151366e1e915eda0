package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/graphcost/costlang/internal/parser"
)

// StatementInfo is the structural dump of one statement.
type StatementInfo struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"`  // "selection" or "directive"
	Match string `json:"match"` // root field, fragment, or directive name
	Where string `json:"where,omitempty"`
	Cost  string `json:"cost"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <model-file>",
		Short: "Parse a cost model and dump its statements",
		Long: `Parse a cost model document and print the structure of every
statement: the query shape it matches, its guard, and its cost
expression with the resolved operator grouping made explicit.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runInspect(opts *RootOptions, path string, cmd *cobra.Command) error {
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

	infos := make([]StatementInfo, len(doc.Statements))
	for i, stmt := range doc.Statements {
		kind, label := renderQueryItem(stmt.Predicate.Query)
		info := StatementInfo{
			Index: i,
			Kind:  kind,
			Match: label,
			Cost:  renderExpr(stmt.Cost),
		}
		if stmt.Predicate.Where != nil {
			info.Where = renderCond(stmt.Predicate.Where.Condition)
		}
		infos[i] = info
	}

	if formatter.Format == "json" {
		return formatter.Success(infos)
	}

	for _, info := range infos {
		fmt.Fprintf(formatter.Writer, "statement %d: %s %s\n", info.Index, info.Kind, info.Match)
		if info.Where != "" {
			fmt.Fprintf(formatter.Writer, "  where: %s\n", info.Where)
		}
		fmt.Fprintf(formatter.Writer, "  cost: %s\n", info.Cost)
	}
	return nil
}
