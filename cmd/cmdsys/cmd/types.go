package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/cmdsys/foundation/cmdsys/command"
)

var showParsers bool

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Lists the names accepted inside a cast",
	Long: `Lists every type name that can be used in a cast such as (int) or
(*string). With --parsers the types that have a parser are listed instead.`,
	Args: cobra.NoArgs,
	RunE: runTypes,
}

func init() {
	typesCmd.Flags().BoolVar(&showParsers, "parsers", false, "list the types with a parser")
	rootCmd.AddCommand(typesCmd)
}

func runTypes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if showParsers {
		fmt.Fprintln(out, titleStyle.Render("Parsers"))
		for _, t := range engine.ParserTypes() {
			fmt.Fprintln(out, "  "+command.TypeString(t))
		}
		return nil
	}

	fmt.Fprintln(out, titleStyle.Render("Cast names"))
	for _, name := range engine.TypeNames() {
		fmt.Fprintln(out, "  "+name)
	}
	return nil
}
