package commands

import (
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/TiagoK-777/hass-abaco-finance/internal/config"
	"github.com/TiagoK-777/hass-abaco-finance/internal/hub"
	"github.com/TiagoK-777/hass-abaco-finance/internal/model"
	"github.com/TiagoK-777/hass-abaco-finance/internal/sensor"
)

func newWatchCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll the API on a schedule and serve sensor states over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, log, err := setup(configPath)
			if err != nil {
				return err
			}
			log.SetFormatter(&logrus.JSONFormatter{})

			ctx := cmd.Context()
			h := hub.New(client, log)
			h.Register(sensor.Build(ctx, client, log, endpointSensorConfigs(cfg.Sensors))...)

			if err := h.Start(ctx, cfg.Polling.Interval); err != nil {
				return err
			}
			defer h.Stop()

			server := &http.Server{
				Addr:         cfg.Server.Addr,
				Handler:      h.Router(),
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 10 * time.Second,
			}
			log.Infof("serving sensor states on %s", cfg.Server.Addr)
			if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "abaco.yaml", "config file")

	return cmd
}

// endpointSensorConfigs converts yaml sensor declarations into builder
// configs, dropping entries with an unknown endpoint.
func endpointSensorConfigs(declared []config.SensorConfig) []sensor.EndpointSensorConfig {
	var configs []sensor.EndpointSensorConfig
	for _, sc := range declared {
		endpoint := model.Endpoint(sc.Endpoint)
		if !endpoint.Valid() {
			continue
		}
		configs = append(configs, sensor.EndpointSensorConfig{
			Endpoint: endpoint,
			AttrPath: sc.Path,
			Name:     sc.Name,
			Icon:     sc.Icon,
			Monetary: sc.Monetary,
			Unit:     sc.Unit,
		})
	}
	return configs
}
