package kernel

import "strings"

// Address is a customer delivery address. Coordinates are optional.
// An empty Line means the address is missing; order validation reports it
// instead of the constructor rejecting it, so drafts can be stored.
type Address struct {
	line        string
	city        string
	coordinates *Coordinates
}

// NewAddress creates an address. Surrounding whitespace is trimmed.
func NewAddress(line, city string, coordinates *Coordinates) Address {
	a := Address{
		line: strings.TrimSpace(line),
		city: strings.TrimSpace(city),
	}
	if coordinates != nil {
		c := *coordinates
		a.coordinates = &c
	}
	return a
}

// Line returns the street line of the address.
func (a Address) Line() string {
	return a.line
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// Coordinates returns a copy of the coordinates, or nil when unknown.
func (a Address) Coordinates() *Coordinates {
	if a.coordinates == nil {
		return nil
	}
	c := *a.coordinates
	return &c
}

// IsEmpty reports whether the street line is missing.
func (a Address) IsEmpty() bool {
	return a.line == ""
}

func (a Address) String() string {
	if a.city == "" {
		return a.line
	}
	return a.line + ", " + a.city
}
