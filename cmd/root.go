package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yourorg/cwsctl/internal/config"
)

type globalOptions struct {
	envFile string
	profile string
	verbose bool
}

var globals = &globalOptions{
	envFile: config.DefaultEnvFile,
	profile: "default",
}

var rootCmd = &cobra.Command{
	Use:           "cwsctl",
	Short:         "Publish packaged extensions to the Chrome Web Store",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command hierarchy.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("execute command: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globals.envFile, "env-file", globals.envFile, "Credential file to load")
	rootCmd.PersistentFlags().StringVar(&globals.profile, "profile", globals.profile, "Keyring profile holding stored secrets")
	rootCmd.PersistentFlags().BoolVar(&globals.verbose, "verbose", false, "Enable debug logging on stderr")

	rootCmd.SetErr(os.Stderr)
	rootCmd.SetOut(os.Stdout)

	rootCmd.AddCommand(newUploadCmd(globals))
	rootCmd.AddCommand(newPublishCmd(globals))
	rootCmd.AddCommand(newTestersCmd(globals))
	rootCmd.AddCommand(newInfoCmd(globals))
	rootCmd.AddCommand(newSetupCmd(globals))
}
