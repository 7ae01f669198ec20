package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/TiagoK-777/hass-abaco-finance/internal/config"
)

func newInitCommand() *cobra.Command {
	var configPath string
	var token string
	var apiURL string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default abaco.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(configPath, apiURL, token)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "abaco.yaml", "config file to write")
	cmd.Flags().StringVar(&token, "token", "", "API token (required)")
	cmd.Flags().StringVar(&apiURL, "url", config.DefaultAPIURL, "API base URL")
	_ = cmd.MarkFlagRequired("token")

	return cmd
}

func runInit(configPath, apiURL, token string) error {
	if _, err := os.Stat(configPath); !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s already exists", configPath)
	}

	cfg := config.Default(token)
	cfg.API.URL = apiURL
	if err := config.Save(configPath, cfg); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", configPath)
	return nil
}
