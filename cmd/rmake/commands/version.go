package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/rmake/internal/build"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the rmake version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), build.Version)
			return nil
		},
	}
}
