package cmd

import (
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/libutils/foundation/core/log"
	"github.com/msto63/libutils/foundation/utils/filex"
)

func newCatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cat file",
		Short: "Print a file",
		Long: `Prints the file followed by a newline. Missing files, missing
permissions and content that is not UTF-8 are reported as distinct errors.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := filex.PrintTo(cmd.OutOrStdout(), args[0])
			switch {
			case err == nil:
				return nil
			case filex.IsNotFound(err):
				a.logger.Warn("file not found", mdwlog.String("path", args[0]))
			default:
				a.logger.LogError(err)
			}
			return err
		},
	}
}
