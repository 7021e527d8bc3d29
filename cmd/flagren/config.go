package main

import (
	"fmt"
	"os"

	"flagren/internal/config"
	"flagren/internal/errors"
	"flagren/internal/log"

	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command group
func NewConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the flagren configuration file",
	}
	cmd.AddCommand(newConfigInitCmd(opts))
	return cmd
}

func newConfigInitCmd(opts *options) *cobra.Command {
	var (
		force    bool
		flag     string
		position string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the default settings",
		Long: `Write the default configuration to the --config path, or to
$HOME/.config/flagren/config.yaml. An existing file is only replaced
with --force.`,
		Example: `  flagren config init
  flagren config init --flag draft --position suffix`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.cfgFile
			if path == "" {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					return errors.Wrap(err, "cannot locate home directory")
				}
			}

			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf("config file %s already exists (use --force to replace it)", path)
			}

			cfg := config.New()
			cfg.Defaults.Flag = flag
			if cmd.Flags().Changed("position") {
				cfg.Defaults.Position = position
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := config.SaveConfig(cfg, path); err != nil {
				return err
			}
			log.Info("Wrote default configuration to %s", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "replace an existing configuration file")
	cmd.Flags().StringVarP(&flag, "flag", "f", "", "default flag stored in the file")
	cmd.Flags().StringVarP(&position, "position", "p", "prefix", "default position stored in the file: prefix or suffix")

	return cmd
}
