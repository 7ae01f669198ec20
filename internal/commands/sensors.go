package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/TiagoK-777/hass-abaco-finance/internal/hub"
	"github.com/TiagoK-777/hass-abaco-finance/internal/model"
	"github.com/TiagoK-777/hass-abaco-finance/internal/sensor"
)

func newSensorsCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "sensors",
		Short: "Fetch all endpoints once and print sensor states",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, log, err := setup(configPath)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			h := hub.New(client, log)
			h.Register(sensor.Build(ctx, client, log, endpointSensorConfigs(cfg.Sensors))...)
			h.RefreshAll(ctx)

			return printStates(h.States())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "abaco.yaml", "config file")

	return cmd
}

func printStates(states []model.SensorState) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATE\tUNIT\tAVAILABLE")
	for _, s := range states {
		state := s.State
		if state == nil {
			state = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%v\t%s\t%t\n", s.ID, s.Name, state, s.Unit, s.Available)
	}
	return w.Flush()
}
