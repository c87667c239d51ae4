// Package config resolves and persists Chrome Web Store credentials for
// cwsctl. Values come from the process environment, a dotenv-style
// credential file, or the OS keyring, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"

	"github.com/yourorg/cwsctl/internal/webstore"
)

// Environment variable names for the four required credential values.
const (
	EnvClientID     = "CWS_CLIENT_ID"
	EnvClientSecret = "CWS_CLIENT_SECRET"
	EnvRefreshToken = "CWS_REFRESH_TOKEN"
	EnvExtensionID  = "CWS_EXTENSION_ID"
)

const (
	// DefaultEnvFile is the credential file the wizard writes and Load reads
	// when no override is given.
	DefaultEnvFile = ".env.cws"

	serviceName     = "cwsctl"
	filePermissions = 0o600

	keyringClientSecret = "client_secret"
	keyringRefreshToken = "refresh_token"
)

// MissingError lists credential values that could not be resolved from any
// source. It is returned before any network call is attempted.
type MissingError struct {
	Names []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf(
		"missing required credentials: %s (set the environment variables or run \"cwsctl setup\")",
		strings.Join(e.Names, ", "),
	)
}

// Load resolves the four credential values. Process environment wins, then
// the dotenv file, then the OS keyring for the two secret fields. A missing
// file is not an error; missing values are.
func Load(envFile, profile string) (webstore.Credentials, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return webstore.Credentials{}, fmt.Errorf("read credential file %s: %w", envFile, err)
	}

	lookup := func(name string) string {
		if val := strings.TrimSpace(os.Getenv(name)); val != "" {
			return val
		}
		return strings.TrimSpace(v.GetString(name))
	}

	creds := webstore.Credentials{
		ClientID:     lookup(EnvClientID),
		ClientSecret: lookup(EnvClientSecret),
		RefreshToken: lookup(EnvRefreshToken),
		ExtensionID:  lookup(EnvExtensionID),
	}

	if profile != "" {
		if creds.ClientSecret == "" {
			if sec, err := keyring.Get(serviceName, keyringUser(profile, keyringClientSecret)); err == nil {
				creds.ClientSecret = sec
			}
		}
		if creds.RefreshToken == "" {
			if tok, err := keyring.Get(serviceName, keyringUser(profile, keyringRefreshToken)); err == nil {
				creds.RefreshToken = tok
			}
		}
	}

	if missing := missingNames(creds); len(missing) > 0 {
		return webstore.Credentials{}, &MissingError{Names: missing}
	}
	return creds, nil
}

// Save writes all four values to the credential file and makes sure the file
// is excluded from version control.
func Save(envFile string, creds webstore.Credentials) error {
	if missing := missingNames(creds); len(missing) > 0 {
		return &MissingError{Names: missing}
	}
	pairs := [][2]string{
		{EnvClientID, creds.ClientID},
		{EnvClientSecret, creds.ClientSecret},
		{EnvRefreshToken, creds.RefreshToken},
		{EnvExtensionID, creds.ExtensionID},
	}
	return writeEnvFile(envFile, pairs)
}

// SaveKeyring stores the secret fields in the OS keyring under the given
// profile and writes only the non-secret identifiers to the credential file.
func SaveKeyring(envFile, profile string, creds webstore.Credentials) error {
	if missing := missingNames(creds); len(missing) > 0 {
		return &MissingError{Names: missing}
	}
	if profile == "" {
		return errors.New("profile name cannot be empty")
	}

	if err := keyring.Set(serviceName, keyringUser(profile, keyringClientSecret), creds.ClientSecret); err != nil {
		return fmt.Errorf("store client secret: %w", err)
	}
	if err := keyring.Set(serviceName, keyringUser(profile, keyringRefreshToken), creds.RefreshToken); err != nil {
		return fmt.Errorf("store refresh token: %w", err)
	}

	pairs := [][2]string{
		{EnvClientID, creds.ClientID},
		{EnvExtensionID, creds.ExtensionID},
	}
	return writeEnvFile(envFile, pairs)
}

func writeEnvFile(envFile string, pairs [][2]string) error {
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	var b strings.Builder
	b.WriteString("# Chrome Web Store API credentials, written by cwsctl setup.\n")
	b.WriteString("# Do not commit this file to version control.\n\n")
	for _, kv := range pairs {
		fmt.Fprintf(&b, "%s=%s\n", kv[0], kv[1])
	}

	if err := os.WriteFile(envFile, []byte(b.String()), filePermissions); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}
	return EnsureIgnored(filepath.Dir(envFile), filepath.Base(envFile))
}

// EnsureIgnored appends entry to dir's .gitignore unless it is already
// present, creating the file if needed.
func EnsureIgnored(dir, entry string) error {
	gitignore := filepath.Join(dir, ".gitignore")

	existing, err := os.ReadFile(gitignore)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read .gitignore: %w", err)
	}

	for _, line := range strings.Split(string(existing), "\n") {
		if strings.TrimSpace(line) == entry {
			return nil
		}
	}

	f, err := os.OpenFile(gitignore, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open .gitignore: %w", err)
	}

	prefix := ""
	if len(existing) > 0 && !strings.HasSuffix(string(existing), "\n") {
		prefix = "\n"
	}
	_, writeErr := f.WriteString(prefix + entry + "\n")
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("append to .gitignore: %w", errors.Join(writeErr, closeErr))
	}
	if closeErr != nil {
		return fmt.Errorf("close .gitignore: %w", closeErr)
	}
	return nil
}

func keyringUser(profile, field string) string {
	return profile + "/" + field
}

func missingNames(creds webstore.Credentials) []string {
	var missing []string
	if creds.ClientID == "" {
		missing = append(missing, EnvClientID)
	}
	if creds.ClientSecret == "" {
		missing = append(missing, EnvClientSecret)
	}
	if creds.RefreshToken == "" {
		missing = append(missing, EnvRefreshToken)
	}
	if creds.ExtensionID == "" {
		missing = append(missing, EnvExtensionID)
	}
	return missing
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	var nf viper.ConfigFileNotFoundError
	if errors.As(err, &nf) {
		return true
	}
	var pathErr *os.PathError
	if errors.As(err, &pathErr) && errors.Is(pathErr.Err, os.ErrNotExist) {
		return true
	}
	return errors.Is(err, os.ErrNotExist)
}
