// internal/writer/builder.go
package writer

import (
	"errors"
	"time"

	cfg "github.com/tamzrod/mmwave-presence/internal/config"
	wmodbus "github.com/tamzrod/mmwave-presence/internal/writer/modbus"
)

// BuildPlan converts the status config into a StatusPlan.
// Assumes config has already passed Validate and Normalize.
func BuildPlan(c *cfg.Config) (StatusPlan, error) {
	if c.Status.Endpoint == "" {
		return StatusPlan{}, errors.New("writer: status.endpoint required")
	}

	return StatusPlan{
		Endpoint:   c.Status.Endpoint,
		UnitID:     c.Status.UnitID,
		BaseSlot:   c.Status.BaseSlot,
		DeviceName: c.DeviceName(),
	}, nil
}

// BuildStatusWriter connects to the status endpoint.
// It returns (nil, nil, false, nil) when the status block is not configured.
func BuildStatusWriter(c *cfg.Config) (StatusWriter, func() error, bool, error) {
	if c.Status.Endpoint == "" {
		return nil, nil, false, nil
	}

	plan, err := BuildPlan(c)
	if err != nil {
		return nil, nil, false, err
	}

	cli, err := wmodbus.NewEndpointClient(wmodbus.Config{
		Endpoint: plan.Endpoint,
		Timeout:  time.Duration(c.Status.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, false, err
	}

	sw, err := NewDeviceStatusWriter(plan, cli)
	if err != nil {
		_ = cli.Close()
		return nil, nil, false, err
	}

	return sw, cli.Close, true, nil
}
