package kernel

import (
	"fmt"
	"math"

	"minishop/internal/pkg/errs"
	"minishop/internal/pkg/guard"
)

// ErrDistanceIsNotConstructed is returned when validating a zero-value Distance.
var ErrDistanceIsNotConstructed = errs.NewValueIsRequiredError(
	"Distance must be created via NewDistance")

// Distance is a delivery distance in kilometers, supplied by the customer at
// checkout (there is no geocoding). A distance of zero means the destination
// is inside the home zone and qualifies for free delivery.
type Distance struct { //nolint:recvcheck //using for validation
	kilometers float64
	guard      guard.ConstructorGuard
}

// NewDistance creates a Distance from a kilometer value.
// The value must be finite and non-negative.
func NewDistance(kilometers float64) (Distance, error) {
	if math.IsNaN(kilometers) || math.IsInf(kilometers, 0) || kilometers < 0 {
		return Distance{}, errs.NewValueIsInvalidError("distance must be a finite non-negative number of kilometers")
	}

	return Distance{
		kilometers: kilometers,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Distance was created through NewDistance.
func (d Distance) Validate() error {
	return d.guard.Validate(ErrDistanceIsNotConstructed)
}

// Kilometers returns the raw kilometer value.
func (d Distance) Kilometers() float64 {
	return d.kilometers
}

// IsHomeZone reports whether the destination is inside the free local
// delivery zone.
func (d Distance) IsHomeZone() bool {
	return d.kilometers == 0
}

// String renders the distance as e.g. "12.5 km".
func (d Distance) String() string {
	return fmt.Sprintf("%g km", d.kilometers)
}
