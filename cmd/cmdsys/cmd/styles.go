package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/cmdsys/foundation/cmdsys/command"
	"github.com/msto63/cmdsys/foundation/cmdsys/parser"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	resultStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	signatureStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)
)

// renderResult prints a handler result. nil is shown as the null literal.
func renderResult(w io.Writer, value any) {
	if value == nil {
		fmt.Fprintln(w, mutedStyle.Render("null"))
		return
	}
	fmt.Fprintln(w, resultStyle.Render(fmt.Sprint(value)))
}

// renderError prints a diagnostic for err. line is the input that failed and
// may be empty.
func renderError(w io.Writer, line string, err error) {
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("[%s] %s", syntaxErr.Code(), syntaxErr.Message)))
		if line != "" && syntaxErr.Position <= len(line) {
			fmt.Fprintln(w, "  "+line)
			fmt.Fprintln(w, "  "+strings.Repeat(" ", syntaxErr.Position)+errorStyle.Render("^"))
		}
		return
	}

	mdwErr := command.AsError(err)
	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("[%s] %s", mdwErr.Code(), headline(err))))

	var ambiguous *command.AmbiguousCommandCallError
	var noMatch *command.MatchNotFoundError
	switch {
	case errors.As(err, &ambiguous):
		fmt.Fprintln(w, mutedStyle.Render("  candidates (add a cast such as (int) to pick one):"))
		for _, cmd := range ambiguous.Matches {
			fmt.Fprintln(w, "    "+signatureStyle.Render(cmd.Signature.Raw))
		}
	case errors.As(err, &noMatch):
		if len(noMatch.Overloads) == 0 {
			fmt.Fprintln(w, mutedStyle.Render("  no overload takes this number of arguments"))
		}
		for _, f := range noMatch.Failures {
			fmt.Fprintf(w, "    %s %s\n",
				signatureStyle.Render(f.Command.Signature.Raw),
				mutedStyle.Render(fmt.Sprintf("argument %d: %v", f.Index+1, f.Err)))
		}
	default:
		for _, extra := range strings.Split(err.Error(), "\n")[1:] {
			fmt.Fprintln(w, "    "+mutedStyle.Render(extra))
		}
	}
}

// headline is the first line of an error message
func headline(err error) string {
	head, _, _ := strings.Cut(err.Error(), "\n")
	return head
}
