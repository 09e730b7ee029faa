package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/msto63/cmdsys/foundation/cmdsys"
	"github.com/msto63/cmdsys/foundation/core/config"
	mdwlog "github.com/msto63/cmdsys/foundation/core/log"
	"github.com/msto63/cmdsys/pkg/core/version"
)

var (
	cfgFile string
	envFile string
	verbose bool

	cfg    *config.Config
	logger *mdwlog.Logger
	engine *cmdsys.Engine
)

// errReported marks failures whose diagnostic was already printed
var errReported = errors.New("command failed")

var rootCmd = &cobra.Command{
	Use:   "cmdsys",
	Short: "Overloaded console commands with typed arguments",
	Long: `cmdsys resolves console lines against a table of overloaded demo
commands. Arguments are parsed into the parameter types of the matching
overload; a cast prefix such as (int) narrows an argument to one type.

Examples:
  cmdsys run add 1.5 2
  cmdsys run 'add (int)1 2'
  cmdsys list 'e*'
  cmdsys repl`,
	Version:           version.String(),
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and prints a diagnostic on failure
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		renderError(rootCmd.ErrOrStderr(), "", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "load environment variables from a .env file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func setup(cmd *cobra.Command, args []string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("loading env file %s: %w", envFile, err)
		}
	}

	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded

	logger = newLogger(cfg)
	mdwlog.SetDefault(logger)

	engine, err = buildEngine(cfg, logger)
	return err
}

func newLogger(c *config.Config) *mdwlog.Logger {
	level := c.General.LogLevel
	if verbose {
		level = mdwlog.LevelDebug
	}
	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: c.General.LogFormat,
		Output: os.Stderr,
		Name:   "cmdsys",
	})
}

func buildEngine(c *config.Config, l *mdwlog.Logger) (*cmdsys.Engine, error) {
	return cmdsys.NewBuilder(cmdsys.OptionsFromConfig(c, l)).
		Load(demoDefinitions()...).
		Build()
}
