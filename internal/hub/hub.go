// Package hub holds the registered sensors, refreshes them on a schedule
// and serves their states over HTTP.
package hub

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/TiagoK-777/hass-abaco-finance/internal/action"
	"github.com/TiagoK-777/hass-abaco-finance/internal/model"
	"github.com/TiagoK-777/hass-abaco-finance/internal/sensor"
)

// Client is what the hub needs from the API client: endpoint reads for
// sensor refreshes and the transaction write for the service action.
type Client interface {
	sensor.Fetcher
	action.Poster
}

// Hub owns the sensor registry. Refreshes are serialized; the lock only
// keeps HTTP reads consistent while a cycle is writing states.
type Hub struct {
	client Client
	log    *logrus.Logger

	mu      sync.RWMutex
	sensors []sensor.Sensor

	cron *cron.Cron
}

// New creates an empty Hub.
func New(client Client, log *logrus.Logger) *Hub {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Hub{client: client, log: log}
}

// Register adds sensors to the registry.
func (h *Hub) Register(sensors ...sensor.Sensor) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sensors = append(h.sensors, sensors...)
}

// RefreshAll refreshes every sensor, one at a time. Connection failures
// are absorbed by the sensors themselves (they go unavailable); any other
// failure is logged and the cycle moves on.
func (h *Hub) RefreshAll(ctx context.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, s := range h.sensors {
		if err := s.Refresh(ctx, h.client); err != nil {
			h.log.Errorf("refreshing %s: %v", s.ID(), err)
		}
	}
}

// States returns snapshots of every sensor in registration order.
func (h *Hub) States() []model.SensorState {
	h.mu.RLock()
	defer h.mu.RUnlock()

	states := make([]model.SensorState, 0, len(h.sensors))
	for _, s := range h.sensors {
		states = append(states, sensor.Snapshot(s))
	}
	return states
}

// State returns the snapshot of one sensor by ID.
func (h *Hub) State(id string) (model.SensorState, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, s := range h.sensors {
		if s.ID() == id {
			return sensor.Snapshot(s), true
		}
	}
	return model.SensorState{}, false
}

// Devices returns the distinct devices backing the registered sensors.
func (h *Hub) Devices() []model.Device {
	h.mu.RLock()
	defer h.mu.RUnlock()

	seen := make(map[string]bool)
	var devices []model.Device
	for _, s := range h.sensors {
		d := s.Device()
		if seen[d.Identifier] {
			continue
		}
		seen[d.Identifier] = true
		devices = append(devices, d)
	}
	return devices
}

// Start schedules periodic refreshes using a cron spec such as
// "@every 5m". The first refresh runs immediately.
func (h *Hub) Start(ctx context.Context, schedule string) error {
	h.RefreshAll(ctx)

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		h.RefreshAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid polling schedule %q: %w", schedule, err)
	}
	c.Start()
	h.cron = c

	h.log.Infof("polling started (%s, %d sensors)", schedule, len(h.sensors))
	return nil
}

// Stop halts the polling schedule.
func (h *Hub) Stop() {
	if h.cron != nil {
		h.cron.Stop()
	}
}
