package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yourorg/cwsctl/internal/webstore"
)

func newPublishCmd(globals *globalOptions) *cobra.Command {
	var zipPath string

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the packaged extension and submit it for review",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRelease(cmd, globals, zipPath, webstore.TargetDefault)
		},
	}

	cmd.Flags().StringVar(&zipPath, "zip", "", zipFlagHelp)

	return cmd
}

// runRelease performs the upload-then-publish sequence shared by the publish
// and testers commands. The two calls are strictly sequential; a failed
// upload aborts the run before any publish request is made.
func runRelease(cmd *cobra.Command, globals *globalOptions, zipPath string, target webstore.PublishTarget) error {
	art, err := resolveArtifact(zipPath)
	if err != nil {
		return err
	}
	client, err := buildClient(globals)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := client.Upload(ctx, art.Path); err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	if err := client.Publish(ctx, target); err != nil {
		return fmt.Errorf("publish: %w", err)
	}

	audience := "review"
	if target == webstore.TargetTesters {
		audience = "trusted-tester review"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s and submitted it for %s\n", filepath.Base(art.Path), audience)
	return nil
}
