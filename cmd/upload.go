package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

const zipFlagHelp = "Path to the packaged ZIP (discovered from package.json when omitted)"

func newUploadCmd(globals *globalOptions) *cobra.Command {
	var zipPath string

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload the packaged extension as a new draft",
		RunE: func(cmd *cobra.Command, _ []string) error {
			art, err := resolveArtifact(zipPath)
			if err != nil {
				return err
			}
			client, err := buildClient(globals)
			if err != nil {
				return err
			}

			if err := client.Upload(cmd.Context(), art.Path); err != nil {
				return fmt.Errorf("upload: %w", err)
			}

			fmt.Fprintf(
				cmd.OutOrStdout(),
				"Uploaded %s; publish it with \"cwsctl publish\" or from the developer console\n",
				filepath.Base(art.Path),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&zipPath, "zip", "", zipFlagHelp)

	return cmd
}
