package tariff

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/pkg/errs"
	"minishop/internal/pkg/guard"
)

// Domain errors for delivery fee resolution and configuration.
var (
	// ErrOutOfRange is the unwrap target for OutOfRangeError: the destination
	// lies beyond the last configured tier and cannot be delivered to.
	ErrOutOfRange = errors.New("delivery distance is out of range")
	// ErrInvalidConfiguration is the unwrap target for configuration errors:
	// a rejected update leaves the previously active table in place.
	ErrInvalidConfiguration = errors.New("invalid fee configuration")
	// ErrFeeTableIsNotConstructed is returned when using an improperly initialized FeeTable.
	ErrFeeTableIsNotConstructed = errors.New("FeeTable must be created via NewFeeTable constructor")
)

// OutOfRangeError reports a destination beyond the covered delivery zone.
type OutOfRangeError struct {
	Distance    kernel.Distance
	MaxDistance float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("delivery distance is out of range: %s exceeds the last tier at %g km",
		e.Distance, e.MaxDistance)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

// ConfigurationError reports why a tier set was rejected.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid fee configuration: %s", e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// Tier maps a distance bracket to a fixed delivery fee. A tier covers every
// distance up to and including its bound that no earlier tier covers.
type Tier struct { //nolint:recvcheck //using for validation
	maxDistanceKm float64
	fee           kernel.Money

	guard guard.ConstructorGuard
}

// NewTier creates a tier topping out at maxDistanceKm with the given fee.
func NewTier(maxDistanceKm float64, fee kernel.Money) (Tier, error) {
	if math.IsNaN(maxDistanceKm) || math.IsInf(maxDistanceKm, 0) || maxDistanceKm <= 0 {
		return Tier{}, errs.NewValueIsInvalidError("tier bound must be a finite positive number of kilometers")
	}
	if err := fee.Validate(); err != nil {
		return Tier{}, err
	}

	return Tier{
		maxDistanceKm: maxDistanceKm,
		fee:           fee,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Tier was created through NewTier.
func (t Tier) Validate() error {
	return t.guard.Validate(errs.NewValueIsRequiredError("tier must be created via NewTier"))
}

// MaxDistanceKm returns the inclusive upper distance bound of the tier.
func (t Tier) MaxDistanceKm() float64 {
	return t.maxDistanceKm
}

// Fee returns the flat delivery fee for the tier.
func (t Tier) Fee() kernel.Money {
	return t.fee
}

// FeeTable resolves a delivery distance to a fee. It is a pure lookup over
// an ordered set of tiers and never mutates after construction: fee updates
// build a whole new table and swap it in atomically, so a rejected update
// cannot corrupt the active one.
//
// Resolution rules:
//   - distance 0 is the home zone and always costs nothing
//   - otherwise the first tier whose bound is >= distance wins
//   - beyond the last bound delivery is refused with OutOfRangeError
//
// Example:
//
//	table, _ := tariff.NewFeeTable(tiers) // 20→20, 30→30, 50→50
//	fee, err := table.Resolve(distance25) // fee 30.00
type FeeTable struct { //nolint:recvcheck //using for validation
	tiers []Tier

	guard guard.ConstructorGuard
}

// NewFeeTable validates and assembles a tier set. Bounds must be strictly
// increasing and fees non-decreasing, which makes Resolve monotonic: a
// longer trip never costs less. Any violation is reported as a
// ConfigurationError and nothing is built.
func NewFeeTable(tiers []Tier) (FeeTable, error) {
	if len(tiers) == 0 {
		return FeeTable{}, &ConfigurationError{Reason: "at least one tier is required"}
	}

	for i, tier := range tiers {
		if err := tier.Validate(); err != nil {
			return FeeTable{}, &ConfigurationError{Reason: fmt.Sprintf("tier %d: %s", i+1, err)}
		}
		if i == 0 {
			continue
		}

		prev := tiers[i-1]
		if tier.maxDistanceKm <= prev.maxDistanceKm {
			return FeeTable{}, &ConfigurationError{Reason: fmt.Sprintf(
				"tier bounds must be strictly increasing: %g km after %g km",
				tier.maxDistanceKm, prev.maxDistanceKm)}
		}
		if tier.fee.LessThan(prev.fee) {
			return FeeTable{}, &ConfigurationError{Reason: fmt.Sprintf(
				"tier fees must not decrease: %s after %s",
				tier.fee, prev.fee)}
		}
	}

	copied := make([]Tier, len(tiers))
	copy(copied, tiers)

	return FeeTable{
		tiers: copied,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// DefaultFeeTable returns the tier set seeded on first run:
// up to 20 km → 20, up to 30 km → 30, up to 50 km → 50.
func DefaultFeeTable() FeeTable {
	specs := []struct {
		maxKm float64
		fee   string
	}{
		{20, "20"},
		{30, "30"},
		{50, "50"},
	}

	tiers := make([]Tier, 0, len(specs))
	for _, spec := range specs {
		fee, err := kernel.MoneyFromString(spec.fee)
		if err != nil {
			panic(err) // static literals above
		}
		tier, err := NewTier(spec.maxKm, fee)
		if err != nil {
			panic(err)
		}
		tiers = append(tiers, tier)
	}

	table, err := NewFeeTable(tiers)
	if err != nil {
		panic(err)
	}
	return table
}

// Validate ensures the FeeTable was created through NewFeeTable.
func (f FeeTable) Validate() error {
	return f.guard.Validate(ErrFeeTableIsNotConstructed)
}

// Resolve returns the delivery fee for the given distance.
func (f FeeTable) Resolve(distance kernel.Distance) (kernel.Money, error) {
	if err := f.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if err := distance.Validate(); err != nil {
		return kernel.Money{}, err
	}

	if distance.IsHomeZone() {
		return kernel.ZeroMoney(), nil
	}

	for _, tier := range f.tiers {
		if distance.Kilometers() <= tier.maxDistanceKm {
			return tier.fee, nil
		}
	}

	return kernel.Money{}, &OutOfRangeError{
		Distance:    distance,
		MaxDistance: f.MaxDistanceKm(),
	}
}

// Tiers returns a copy of the ordered tier set.
func (f FeeTable) Tiers() []Tier {
	copied := make([]Tier, len(f.tiers))
	copy(copied, f.tiers)
	return copied
}

// MaxDistanceKm returns the bound of the last tier, the edge of the
// deliverable zone.
func (f FeeTable) MaxDistanceKm() float64 {
	if len(f.tiers) == 0 {
		return 0
	}
	return f.tiers[len(f.tiers)-1].maxDistanceKm
}

// String renders the table as shown to customers, e.g.
// "≤20 km: 20.00 | ≤30 km: 30.00 | ≤50 km: 50.00".
func (f FeeTable) String() string {
	parts := make([]string, 0, len(f.tiers))
	for _, tier := range f.tiers {
		parts = append(parts, fmt.Sprintf("≤%g km: %s", tier.maxDistanceKm, tier.fee))
	}
	return strings.Join(parts, " | ")
}
