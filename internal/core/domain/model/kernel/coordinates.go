package kernel

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ErrCoordinatesAreNotConstructed is returned when Coordinates were not built through NewCoordinates.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates constructor")

// Coordinates is a WGS84 latitude/longitude pair attached to a delivery address.
// No routing is computed from it; it is carried for display and zone lookup by
// external systems.
//
// Example:
//
//	c, err := kernel.NewCoordinates(32.0853, 34.7818)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(c) // Output: (32.085300,34.781800)
type Coordinates struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewCoordinates validates and creates a coordinate pair.
//
// Returns:
//   - Coordinates: a valid value
//   - error: ValueIsOutOfRangeError for latitude outside [-90, 90] or longitude outside [-180, 180]
func NewCoordinates(lat, lng float64) (Coordinates, error) {
	c := Coordinates{guard: guard.NewConstructorGuard()}

	if err := errors.Join(c.setLat(lat), c.setLng(lng)); err != nil {
		return Coordinates{}, err
	}

	return c, nil
}

// Validate reports whether the value was created through NewCoordinates.
func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

// Lat returns the latitude in degrees.
func (c Coordinates) Lat() float64 {
	return c.lat
}

// Lng returns the longitude in degrees.
func (c Coordinates) Lng() float64 {
	return c.lng
}

// IsEqual compares two coordinate pairs.
func (c Coordinates) IsEqual(other Coordinates) bool {
	return c.lat == other.lat && c.lng == other.lng
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%f,%f)", c.lat, c.lng)
}

func (c *Coordinates) setLat(lat float64) error {
	if lat < MinLatitude || lat > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("lat", lat, MinLatitude, MaxLatitude)
	}
	c.lat = lat
	return nil
}

func (c *Coordinates) setLng(lng float64) error {
	if lng < MinLongitude || lng > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("lng", lng, MinLongitude, MaxLongitude)
	}
	c.lng = lng
	return nil
}
