package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/msto63/cmdsys/foundation/cmdsys"
	"github.com/msto63/cmdsys/foundation/core/config"
	mdwlog "github.com/msto63/cmdsys/foundation/core/log"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Reads command lines from standard input",
	Long: `Starts an interactive loop. Every line is resolved and executed like
"cmdsys run". Type "help" to list the commands and "exit" to leave.

With --config the file is watched; changes rebuild the engine, so log level,
alias case sensitivity and timeout apply to the next line.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var current atomic.Pointer[cmdsys.Engine]
	current.Store(engine)

	if cfgFile != "" {
		err := config.Watch(ctx, cfgFile, func(c *config.Config) {
			next, err := buildEngine(c, newLogger(c))
			if err != nil {
				logger.WarnWithErr("configuration change rejected", err)
				return
			}
			current.Store(next)
			logger.Info("configuration reloaded", mdwlog.Fields{
				"file":     cfgFile,
				"logLevel": c.General.LogLevel.String(),
			})
		}, func(err error) {
			logger.WarnWithErr("configuration reload failed", err)
		})
		if err != nil {
			return err
		}
	}

	return repl(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), current.Load)
}

func repl(ctx context.Context, in io.Reader, out, errOut io.Writer, current func() *cmdsys.Engine) error {
	prompt := promptStyle.Render("cmdsys>") + " "
	scanner := bufio.NewScanner(in)

	fmt.Fprint(out, prompt)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
		case "exit", "quit":
			return nil
		case "help":
			renderCommands(out, current().Commands())
		default:
			// failures are rendered and the loop goes on
			_ = executeLine(ctx, out, errOut, current(), line)
		}
		fmt.Fprint(out, prompt)
	}
	return scanner.Err()
}
