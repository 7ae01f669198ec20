// Package sensor builds the observable entities backed by the Ábaco
// Finance API: one sensor per account, card, investment and net worth item,
// plus attribute sensors over the raw endpoint payloads.
package sensor

import (
	"context"

	"github.com/TiagoK-777/hass-abaco-finance/internal/abaco"
	"github.com/TiagoK-777/hass-abaco-finance/internal/model"
	"github.com/TiagoK-777/hass-abaco-finance/internal/uid"
)

// Currency is the unit reported by monetary sensors.
const Currency = "BRL"

const manufacturer = "Ábaco Finance"

// Fetcher is the slice of the API client sensors refresh through.
type Fetcher interface {
	FetchEndpoint(ctx context.Context, endpoint model.Endpoint) (any, error)
}

// Sensor is one observable entity.
type Sensor interface {
	ID() string
	Name() string
	Device() model.Device
	Icon() string
	Unit() string
	State() any
	Attributes() map[string]any
	Available() bool

	// Refresh re-reads the backing endpoint. A connection failure marks
	// the sensor unavailable and is not returned; other errors are.
	Refresh(ctx context.Context, api Fetcher) error
}

// baseSensor carries the state shared by all sensor kinds.
type baseSensor struct {
	id        string
	name      string
	icon      string
	unit      string
	device    model.Device
	state     any
	attrs     map[string]any
	available bool
}

func (b *baseSensor) ID() string                 { return b.id }
func (b *baseSensor) Name() string               { return b.name }
func (b *baseSensor) Device() model.Device       { return b.device }
func (b *baseSensor) Icon() string               { return b.icon }
func (b *baseSensor) Unit() string               { return b.unit }
func (b *baseSensor) State() any                 { return b.state }
func (b *baseSensor) Attributes() map[string]any { return b.attrs }
func (b *baseSensor) Available() bool            { return b.available }

// guard applies the refresh outcome to availability. Connection errors are
// swallowed so a flaky API shows up as "unavailable" rather than a crash.
func (b *baseSensor) guard(err error) error {
	if err != nil {
		if abaco.IsConnection(err) {
			b.available = false
			return nil
		}
		return err
	}
	b.available = true
	return nil
}

// Snapshot captures a sensor's current state for the hub API.
func Snapshot(s Sensor) model.SensorState {
	return model.SensorState{
		ID:         s.ID(),
		Name:       s.Name(),
		Device:     s.Device(),
		State:      s.State(),
		Unit:       s.Unit(),
		Icon:       s.Icon(),
		Available:  s.Available(),
		Attributes: s.Attributes(),
	}
}

// endpointDevice groups sensors under one device per endpoint.
func endpointDevice(endpoint model.Endpoint) model.Device {
	return model.Device{
		Identifier:   uid.ForDevice(string(endpoint)),
		Name:         endpoint.DisplayName(),
		Manufacturer: manufacturer,
		Model:        "Endpoint - " + string(endpoint),
	}
}
