package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TiagoK-777/hass-abaco-finance/internal/abaco"
)

func newTestCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Verify the API URL and token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, _, err := setup(configPath)
			if err != nil {
				return err
			}
			return runTest(cmd.Context(), client)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "abaco.yaml", "config file")

	return cmd
}

func runTest(ctx context.Context, client *abaco.Client) error {
	if err := client.TestConnection(ctx); err != nil {
		switch {
		case abaco.IsAuth(err):
			return fmt.Errorf("authentication failed: %w", err)
		case abaco.IsConnection(err):
			return fmt.Errorf("cannot reach API: %w", err)
		default:
			return err
		}
	}

	fmt.Printf("Connection to %s OK\n", client.BaseURL())
	return nil
}
