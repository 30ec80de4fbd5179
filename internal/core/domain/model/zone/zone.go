// Package zone defines delivery zones: named operational coverage areas that
// drivers are assigned to and orders are delivered in.
package zone

import (
	"strings"

	"logistics/internal/pkg/errs"
)

// Zone is a named coverage area. Zones are owned by the external data store.
type Zone struct {
	ID          string
	Name        string
	Description string
}

// NewZone creates a zone, requiring an id and a name.
func NewZone(id, name, description string) (Zone, error) {
	z := Zone{
		ID:          strings.TrimSpace(id),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}
	if err := z.Validate(); err != nil {
		return Zone{}, err
	}
	return z, nil
}

// Validate checks the mandatory fields.
func (z Zone) Validate() error {
	if z.ID == "" {
		return errs.NewValueIsRequiredError("zone id")
	}
	if z.Name == "" {
		return errs.NewValueIsRequiredError("zone name")
	}
	return nil
}
