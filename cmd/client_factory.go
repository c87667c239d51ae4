package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/yourorg/cwsctl/internal/config"
	"github.com/yourorg/cwsctl/internal/webstore"
)

var clientFactory = defaultClientFactory

func defaultClientFactory(globals *globalOptions) (*webstore.Client, error) {
	creds, err := config.Load(globals.envFile, globals.profile)
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}

	log := newLogger(globals.verbose)
	return webstore.NewClient(webstore.ClientConfig{
		Credentials: creds,
		Logger:      &log,
	}), nil
}

func buildClient(globals *globalOptions) (*webstore.Client, error) {
	return clientFactory(globals)
}

// newLogger builds the diagnostic logger. Normal command output goes through
// cobra's writers; this only carries --verbose tracing on stderr.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}
