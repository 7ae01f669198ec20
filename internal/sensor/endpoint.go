package sensor

import (
	"context"

	"github.com/TiagoK-777/hass-abaco-finance/internal/jsonpath"
	"github.com/TiagoK-777/hass-abaco-finance/internal/model"
	"github.com/TiagoK-777/hass-abaco-finance/internal/uid"
)

// EndpointSensorConfig describes a sensor over one attribute of an
// endpoint's payload.
type EndpointSensorConfig struct {
	Endpoint model.Endpoint
	AttrPath string
	Name     string
	Icon     string
	Monetary bool
	Unit     string
}

// EndpointSensor exposes a single dotted-path attribute of an endpoint
// body as its state and the full body as an attribute.
type EndpointSensor struct {
	baseSensor
	endpoint model.Endpoint
	attrPath string
	monetary bool
}

// NewEndpointSensor creates a sensor from its config.
func NewEndpointSensor(cfg EndpointSensorConfig) *EndpointSensor {
	unit := cfg.Unit
	if cfg.Monetary && unit == "" {
		unit = Currency
	}
	return &EndpointSensor{
		baseSensor: baseSensor{
			id:     uid.ForAttr(string(cfg.Endpoint), cfg.AttrPath),
			name:   cfg.Name,
			icon:   cfg.Icon,
			unit:   unit,
			device: endpointDevice(cfg.Endpoint),
		},
		endpoint: cfg.Endpoint,
		attrPath: cfg.AttrPath,
		monetary: cfg.Monetary,
	}
}

// Refresh implements Sensor.
func (s *EndpointSensor) Refresh(ctx context.Context, api Fetcher) error {
	return s.guard(s.update(ctx, api))
}

func (s *EndpointSensor) update(ctx context.Context, api Fetcher) error {
	data, err := api.FetchEndpoint(ctx, s.endpoint)
	if err != nil {
		return err
	}

	value, _ := jsonpath.Resolve(data, s.attrPath)
	if s.monetary && value != nil {
		// Monetary states are numeric; coercion failures read as 0.
		f, ok := jsonpath.AsFloat(value)
		if !ok {
			f = 0.0
		}
		s.state = f
	} else {
		s.state = value
	}

	s.attrs = map[string]any{"endpoint_data": data}
	return nil
}
