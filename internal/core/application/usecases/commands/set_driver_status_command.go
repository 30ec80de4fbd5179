package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/pkg/guard"
)

var (
	ErrSetDriverStatusCommandIsNotConstructed = errors.New(
		"SetDriverStatusCommand must be created via NewSetDriverStatusCommand constructor",
	)
)

// SetDriverStatusCommand records what a driver reports from the road: online
// flag, shift status and the zone they are in (nil when outside every zone).
type SetDriverStatusCommand struct {
	driverID   string
	driverName string
	online     bool
	status     driver.Status
	zoneID     *string

	guard guard.ConstructorGuard
}

// NewSetDriverStatusCommand validates the driver id and status.
func NewSetDriverStatusCommand(driverID, driverName string, online bool, status string, zoneID *string) (SetDriverStatusCommand, error) {
	c := SetDriverStatusCommand{
		driverID:   strings.TrimSpace(driverID),
		driverName: strings.TrimSpace(driverName),
		online:     online,
		guard:      guard.NewConstructorGuard(),
	}
	if zoneID != nil {
		if z := strings.TrimSpace(*zoneID); z != "" {
			c.zoneID = &z
		}
	}

	st, statusErr := driver.ParseStatus(status)
	c.status = st

	if err := errors.Join(requireField("driver id", c.driverID), statusErr); err != nil {
		return SetDriverStatusCommand{}, err
	}
	return c, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDriverStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetDriverStatusCommandIsNotConstructed)
}

func (c SetDriverStatusCommand) DriverID() string      { return c.driverID }
func (c SetDriverStatusCommand) Online() bool          { return c.online }
func (c SetDriverStatusCommand) Status() driver.Status { return c.status }

// ZoneID returns a copy of the reported zone id, or nil.
func (c SetDriverStatusCommand) ZoneID() *string {
	if c.zoneID == nil {
		return nil
	}
	z := *c.zoneID
	return &z
}
