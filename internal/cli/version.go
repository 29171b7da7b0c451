package cli

import (
	"github.com/spf13/cobra"
)

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, args []string) error {
			NewOutput(flags.Output, cmd.OutOrStdout()).PrintMessage("courtside " + version)
			return nil
		},
	}
}
