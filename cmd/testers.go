package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yourorg/cwsctl/internal/webstore"
)

func newTestersCmd(globals *globalOptions) *cobra.Command {
	var zipPath string

	cmd := &cobra.Command{
		Use:   "testers",
		Short: "Upload the packaged extension and publish it to trusted testers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRelease(cmd, globals, zipPath, webstore.TargetTesters)
		},
	}

	cmd.Flags().StringVar(&zipPath, "zip", "", zipFlagHelp)

	return cmd
}
