package main

import (
	"strings"

	"flagren/pkg/types"

	"github.com/spf13/cobra"
)

// NewFilesCmd creates the files command
func NewFilesCmd(opts *options) *cobra.Command {
	var (
		flag     string
		position string
	)

	cmd := &cobra.Command{
		Use:   "files FILE[=NEWNAME]...",
		Short: "Rename the given files without prompting",
		Long: `Rename each FILE by adding the flag to its base name. Append =NEWNAME to
replace the base name as well; the original extension is kept.`,
		Example: `  flagren files --flag v2 report.txt
  flagren files --flag v2 --position suffix report.txt=final`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := opts.flagSettings(cmd, flag, position)
			if err != nil {
				return err
			}
			renamer, err := opts.renamer()
			if err != nil {
				return err
			}

			requests := make([]types.RenameRequest, 0, len(args))
			for _, arg := range args {
				requests = append(requests, parseFileArg(arg))
			}

			printOutcomes(cmd, renamer.RenameAll(requests, settings))
			return nil
		},
	}

	cmd.Flags().StringVarP(&flag, "flag", "f", "", "flag to insert into each name")
	cmd.Flags().StringVarP(&position, "position", "p", "prefix", "where to insert the flag: prefix or suffix")

	return cmd
}

// parseFileArg splits "path=newbase" at the last '='. An argument without
// '=' (or starting with it) is a bare path.
func parseFileArg(arg string) types.RenameRequest {
	idx := strings.LastIndex(arg, "=")
	if idx <= 0 {
		return types.RenameRequest{SourcePath: arg}
	}
	return types.RenameRequest{SourcePath: arg[:idx], ReplacementBase: arg[idx+1:]}
}
