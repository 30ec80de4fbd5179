package driver

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is the shift state a driver reports.
type Status string

const (
	StatusAvailable  Status = "available"
	StatusDelivering Status = "delivering"
	StatusOnBreak    Status = "on_break"
	StatusOffShift   Status = "off_shift"
)

// ParseStatus validates a wire value.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

// Validate rejects values outside the known set.
func (s Status) Validate() error {
	switch s {
	case StatusAvailable, StatusDelivering, StatusOnBreak, StatusOffShift:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("driver status", fmt.Errorf("%q is not a valid driver status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}
