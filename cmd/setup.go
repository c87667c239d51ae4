package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yourorg/cwsctl/internal/config"
	"github.com/yourorg/cwsctl/internal/webstore"
)

type setupOptions struct {
	useKeyring bool
	force      bool
}

func newSetupCmd(globals *globalOptions) *cobra.Command {
	opts := &setupOptions{}

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Interactively collect and store Web Store API credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSetup(cmd, globals, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.useKeyring, "keyring", false, "Store the client secret and refresh token in the OS keyring")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing credential file without asking")

	return cmd
}

func runSetup(cmd *cobra.Command, globals *globalOptions, opts *setupOptions) error {
	out := cmd.OutOrStdout()
	in := cmd.InOrStdin()
	reader := bufio.NewReader(in)

	if !opts.force {
		if _, err := os.Stat(globals.envFile); err == nil {
			ok, err := confirm(cmd, reader, fmt.Sprintf("Credential file %s exists. Overwrite? (y/N): ", globals.envFile))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(out, "Setup cancelled; existing credentials kept")
				return nil
			}
		}
	}

	printSetupGuide(out)

	clientID, err := promptLine(cmd, reader, "Client ID: ")
	if err != nil {
		return err
	}
	clientSecret, err := promptSecret(cmd, in, reader, "Client secret: ")
	if err != nil {
		return err
	}
	refreshToken, err := promptSecret(cmd, in, reader, "Refresh token: ")
	if err != nil {
		return err
	}
	extensionID, err := promptLine(cmd, reader, "Extension ID: ")
	if err != nil {
		return err
	}

	creds := webstore.Credentials{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RefreshToken: refreshToken,
		ExtensionID:  extensionID,
	}
	if clientID == "" || clientSecret == "" || refreshToken == "" || extensionID == "" {
		return errors.New("all four credential values are required")
	}

	if opts.useKeyring {
		if err := config.SaveKeyring(globals.envFile, globals.profile, creds); err != nil {
			return fmt.Errorf("save credentials: %w", err)
		}
		fmt.Fprintf(out, "\nSecrets stored in the OS keyring (profile %q); identifiers written to %s\n",
			globals.profile, globals.envFile)
	} else {
		if err := config.Save(globals.envFile, creds); err != nil {
			return fmt.Errorf("save credentials: %w", err)
		}
		fmt.Fprintf(out, "\nCredentials written to %s (added to .gitignore)\n", globals.envFile)
	}

	fmt.Fprintln(out, "Setup complete. Try \"cwsctl upload\" next.")
	return nil
}

func printSetupGuide(out io.Writer) {
	fmt.Fprint(out, `Chrome Web Store API setup

  1. Enable the Chrome Web Store API for a project in the Google Cloud
     Console (https://console.cloud.google.com/).
  2. Create an OAuth client ID of type "Web application" and add
     https://developers.google.com/oauthplayground as a redirect URI.
  3. On the OAuth Playground, authorize the scope
     https://www.googleapis.com/auth/chromewebstore with your own
     credentials and exchange the code for a refresh token.
  4. Copy the 32-character item ID from the developer console
     (https://chrome.google.com/webstore/devconsole/).

Full guide: https://developer.chrome.com/docs/webstore/using-api

`)
}

func confirm(cmd *cobra.Command, reader *bufio.Reader, prompt string) (bool, error) {
	answer, err := promptWith(cmd, reader, prompt)
	if err != nil {
		return false, err
	}
	return parseYes(answer), nil
}

func parseYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func promptLine(cmd *cobra.Command, reader *bufio.Reader, prompt string) (string, error) {
	return promptWith(cmd, reader, prompt)
}

// promptSecret reads without echo when stdin is a terminal and falls back to
// plain line input otherwise (tests and piped runs).
func promptSecret(cmd *cobra.Command, in io.Reader, reader *bufio.Reader, prompt string) (string, error) {
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return promptWith(cmd, reader, prompt)
	}

	if _, err := fmt.Fprint(cmd.OutOrStdout(), prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	data, err := term.ReadPassword(int(f.Fd()))
	if _, ferr := fmt.Fprintln(cmd.OutOrStdout()); ferr != nil {
		return "", fmt.Errorf("write prompt: %w", ferr)
	}
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func promptWith(cmd *cobra.Command, reader *bufio.Reader, prompt string) (string, error) {
	if _, err := fmt.Fprint(cmd.OutOrStdout(), prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
