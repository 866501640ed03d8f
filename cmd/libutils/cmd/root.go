package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/libutils/foundation/core/log"
	"github.com/msto63/libutils/foundation/utils/inputx"
	"github.com/msto63/libutils/internal/config"
)

// app carries what every command needs once flags are parsed
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string

	cfg    *config.Config
	logger *mdwlog.Logger
}

// NewRootCmd builds the command tree. Running it without a subcommand
// starts the activity menu.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "libutils",
		Short: "Flagged text, prompts and file helpers",
		Long: `libutils bundles small text and terminal utilities.

Commands:
  menu     - activity selection demo (default)
  split    - extract the text between pairs of flag characters
  join     - wrap every second part in flag characters
  concat   - join words with single spaces
  longest  - find the longest word
  pick     - pick a random word
  ask      - run a typed prompt
  cat      - print a file`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu(cmd, false)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file, TOML or YAML (default: $LIBUTILS_CONFIG)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: console or json")

	root.AddCommand(
		newMenuCmd(a),
		newSplitCmd(a),
		newJoinCmd(a),
		newConcatCmd(a),
		newLongestCmd(a),
		newPickCmd(a),
		newAskCmd(a),
		newCatCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI and reports a failure on stderr
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		printError(err)
		return err
	}
	return nil
}

func (a *app) init(cmd *cobra.Command) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	logCfg := a.cfg.LoggerConfig()
	if a.verbose {
		logCfg.Level = mdwlog.LevelDebug
	}
	if a.logFormat != "" {
		format, err := mdwlog.ParseFormat(a.logFormat)
		if err != nil {
			return err
		}
		logCfg.Format = format
	}
	logCfg.Output = cmd.ErrOrStderr()
	logCfg.Name = "libutils"

	a.logger = mdwlog.NewWithConfig(logCfg).WithCorrelationID(uuid.NewString())
	a.logger.Debug("command started", mdwlog.Fields{
		"command": cmd.CommandPath(),
		"config":  a.cfgFile,
	})
	return nil
}

func (a *app) prompter(cmd *cobra.Command) *inputx.Prompter {
	return inputx.New(cmd.InOrStdin(), cmd.OutOrStdout(),
		inputx.WithMaxAttempts(a.cfg.Prompt.MaxAttempts),
		inputx.WithTimeout(a.cfg.Prompt.Timeout.Duration),
		inputx.WithLogger(a.logger),
	)
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
}
