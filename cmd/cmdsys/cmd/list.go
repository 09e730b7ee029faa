package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/cmdsys/foundation/cmdsys/command"
	mdwstringx "github.com/msto63/cmdsys/foundation/utils/stringx"
)

const maxDescriptionWidth = 60

var listCmd = &cobra.Command{
	Use:   "list [pattern]",
	Short: "Lists the commands and their overloads",
	Long: `Lists every overload with its signature and description. An optional
glob pattern such as 'e*' or 'Math.*' filters by command name.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cmds := engine.Commands()
	if len(args) == 1 {
		matched, err := engine.Match(args[0])
		if err != nil {
			return err
		}
		cmds = matched
	}

	if len(cmds) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("no commands match"))
		return nil
	}
	renderCommands(cmd.OutOrStdout(), cmds)
	return nil
}

func renderCommands(w io.Writer, cmds []*command.Command) {
	width := 0
	for _, c := range cmds {
		width = max(width, len(c.Signature.Raw))
	}

	fmt.Fprintln(w, titleStyle.Render("Commands"))
	for _, c := range cmds {
		description := mdwstringx.Truncate(mdwstringx.FirstNonBlank(c.Description, "-"), maxDescriptionWidth, "...")
		fmt.Fprintf(w, "  %s  %s\n",
			signatureStyle.Render(mdwstringx.PadRight(c.Signature.Raw, width, ' ')),
			mutedStyle.Render(description))
	}
}
