package commands

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/TiagoK-777/hass-abaco-finance/internal/abaco"
	"github.com/TiagoK-777/hass-abaco-finance/internal/buildinfo"
	"github.com/TiagoK-777/hass-abaco-finance/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "abaco",
		Short:   "Ábaco Finance sensor bridge",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newTestCommand())
	rootCmd.AddCommand(newSensorsCommand())
	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newTxCommand())

	return rootCmd
}

// setup loads the config and builds the logger and API client shared by
// the commands that talk to the API.
func setup(configPath string) (*config.Config, *abaco.Client, *logrus.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	client := abaco.New(cfg.API.URL, cfg.API.Token, &http.Client{}, log)
	return cfg, client, log, nil
}
