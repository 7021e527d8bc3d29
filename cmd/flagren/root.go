package main

import (
	"fmt"

	"flagren/internal/config"
	"flagren/internal/errors"
	"flagren/internal/log"
	"flagren/internal/rename"
	"flagren/internal/shell"
	"flagren/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// options carries persistent flags and the loaded configuration to every
// subcommand.
type options struct {
	cfgFile   string
	debug     bool
	collision string
	logJSON   bool
	cfg       *config.Config
}

// NewRootCmd creates the root command. Without a subcommand it runs the
// interactive session.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "flagren",
		Short: "Batch-rename files by adding a flag to their names",
		Long: `flagren renames files by inserting a flag token before or after each
file's base name, optionally giving each file a new base name.

Run without arguments for the interactive session, or use the files and
folder subcommands to rename without prompts.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			renamer, err := opts.renamer()
			if err != nil {
				return err
			}
			return shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), renamer, opts.cfg).Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/flagren/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.collision, "collision", "", "collision policy: fail or overwrite")
	rootCmd.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "write log entries as JSON")

	rootCmd.AddCommand(NewFilesCmd(opts))
	rootCmd.AddCommand(NewFolderCmd(opts))
	rootCmd.AddCommand(NewConfigCmd(opts))

	return rootCmd
}

// setup loads configuration, applies flag overrides and configures logging.
func (o *options) setup(cmd *cobra.Command) error {
	var configErr error
	if o.cfgFile != "" {
		o.cfg, configErr = config.LoadConfigFile(o.cfgFile)
	} else {
		o.cfg, configErr = config.LoadConfig()
	}
	if configErr != nil {
		o.cfg = config.New()
	}

	if cmd.Flags().Changed("debug") {
		o.cfg.Settings.Debug = o.debug
	}
	if cmd.Flags().Changed("collision") {
		o.cfg.Settings.Collision = o.collision
	}

	logOpts := []log.Option{log.WithOutput(cmd.ErrOrStderr()), log.WithLevel(logrus.WarnLevel)}
	if o.cfg.Settings.LogFile != "" {
		logOpts = append(logOpts, log.WithFile(o.cfg.Settings.LogFile))
	}
	if o.logJSON {
		logOpts = append(logOpts, log.WithJSON())
	}
	log.Configure(logOpts...)
	log.SetDebug(o.cfg.Settings.Debug)

	if configErr != nil {
		log.LogWithError(configErr).Warn("Using default settings")
	}
	return o.cfg.Validate()
}

// renamer builds a Renamer configured from the loaded settings.
func (o *options) renamer() (rename.Renamer, error) {
	r := rename.CurrentRenamerFactory()
	if err := r.SetConfig(o.cfg); err != nil {
		return nil, err
	}
	return r, nil
}

// flagSettings resolves the flag and position, falling back to the
// configured defaults.
func (o *options) flagSettings(cmd *cobra.Command, flag, position string) (types.FlagSettings, error) {
	if flag == "" {
		flag = o.cfg.Defaults.Flag
	}
	if flag == "" {
		return types.FlagSettings{}, errors.New("a flag is required (--flag or defaults.flag in the config file)")
	}

	pos, err := o.cfg.DefaultPosition()
	if err != nil {
		return types.FlagSettings{}, err
	}
	if cmd.Flags().Changed("position") {
		pos, err = types.ParsePosition(position)
		if err != nil {
			return types.FlagSettings{}, err
		}
	}
	return types.FlagSettings{Flag: flag, Position: pos}, nil
}

// printOutcomes writes one status line per outcome and a closing summary.
func printOutcomes(cmd *cobra.Command, outcomes []types.Outcome) {
	for _, o := range outcomes {
		if o.IsError() {
			fmt.Fprintln(cmd.ErrOrStderr(), o.Line())
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), o.Line())
		}
	}
	sum := types.Summarize(outcomes)
	fmt.Fprintf(cmd.OutOrStdout(), "Done: %d renamed, %d skipped, %d failed\n", sum.Renamed, sum.Skipped, sum.Failed)
}
