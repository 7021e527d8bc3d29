package main

import (
	"fmt"

	"flagren/internal/errors"
	"flagren/pkg/types"

	"github.com/spf13/cobra"
)

// NewFolderCmd creates the folder command
func NewFolderCmd(opts *options) *cobra.Command {
	var (
		flag     string
		position string
		include  []string
		exclude  []string
	)

	cmd := &cobra.Command{
		Use:   "folder DIR",
		Short: "Rename every file directly inside DIR without prompting",
		Long: `Rename each regular file directly inside DIR by adding the flag to its
base name. Subdirectories are not entered.`,
		Example: `  flagren folder --flag 2024 ~/Pictures/trip
  flagren folder --flag draft --position suffix --include '*.md' notes/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder := args[0]

			settings, err := opts.flagSettings(cmd, flag, position)
			if err != nil {
				return err
			}
			opts.cfg.Folder.Include = append(opts.cfg.Folder.Include, include...)
			opts.cfg.Folder.Exclude = append(opts.cfg.Folder.Exclude, exclude...)
			renamer, err := opts.renamer()
			if err != nil {
				return err
			}

			entries, err := renamer.Enumerate(folder)
			if err != nil {
				if errors.IsFolderNotFound(err) {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: Folder not found -> %s\n", folder)
					return nil
				}
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "No files found in folder: %s\n", folder)
				return nil
			}

			requests := make([]types.RenameRequest, 0, len(entries))
			for _, entry := range entries {
				requests = append(requests, types.RenameRequest{SourcePath: entry.Path})
			}
			printOutcomes(cmd, renamer.RenameAll(requests, settings))
			return nil
		},
	}

	cmd.Flags().StringVarP(&flag, "flag", "f", "", "flag to insert into each name")
	cmd.Flags().StringVarP(&position, "position", "p", "prefix", "where to insert the flag: prefix or suffix")
	cmd.Flags().StringSliceVar(&include, "include", nil, "only rename names matching this glob (repeatable)")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "skip names matching this glob (repeatable)")

	return cmd
}
