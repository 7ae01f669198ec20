package model

// Device groups related sensors, one device per API endpoint.
type Device struct {
	Identifier   string `json:"identifier"`
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
}

// SensorState is a point-in-time snapshot of one sensor, as served by the hub.
type SensorState struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Device     Device         `json:"device"`
	State      any            `json:"state"`
	Unit       string         `json:"unit,omitempty"`
	Icon       string         `json:"icon,omitempty"`
	Available  bool           `json:"available"`
	Attributes map[string]any `json:"attributes,omitempty"`
}
