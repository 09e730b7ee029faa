package cmd

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/cmdsys/foundation/cmdsys"
)

var runCmd = &cobra.Command{
	Use:   "run <command line>",
	Short: "Resolves and executes one command line",
	Long: `Resolves one command line against the demo commands and prints the
result. Arguments are joined with single spaces, so quote the whole line when
it contains quoted strings or casts:

  cmdsys run 'greet "Ada Lovelace"'
  cmdsys run -- 'add -1 (int)2'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLine,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runLine(cmd *cobra.Command, args []string) error {
	line := strings.Join(args, " ")
	return executeLine(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), engine, line)
}

func executeLine(ctx context.Context, out, errOut io.Writer, e *cmdsys.Engine, line string) error {
	result, err := e.Execute(ctx, line)
	if err != nil {
		renderError(errOut, line, err)
		return errReported
	}
	renderResult(out, result.Data)
	return nil
}
