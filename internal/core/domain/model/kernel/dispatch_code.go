package kernel

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"minishop/internal/pkg/errs"
	"minishop/internal/pkg/guard"
)

const (
	// dispatchCodePrefix starts every code handed to the courier channel.
	dispatchCodePrefix = "CMD-"
	// dispatchCodeTailLength is the number of random characters after the prefix.
	dispatchCodeTailLength = 6
	// dispatchCodeAlphabet is the character set for the random tail.
	dispatchCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// ErrDispatchCodeIsNotConstructed is returned when validating a zero-value DispatchCode.
var ErrDispatchCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"DispatchCode must be created via NewRandomDispatchCode or DispatchCodeFromString")

// DispatchCode is the anonymous identifier for an order, shown to couriers in
// place of any customer identity. Codes look like "CMD-7KQ2F9": the 36^6
// identifier space keeps accidental collisions negligible at the shop's order
// volume, and callers re-roll against open orders anyway.
type DispatchCode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewRandomDispatchCode generates a fresh random code. Uniqueness against
// open orders is the caller's responsibility (re-roll on collision).
func NewRandomDispatchCode() DispatchCode {
	tail := make([]byte, dispatchCodeTailLength)
	for i := range tail {
		tail[i] = dispatchCodeAlphabet[rand.IntN(len(dispatchCodeAlphabet))]
	}

	return DispatchCode{
		value: dispatchCodePrefix + string(tail),
		guard: guard.NewConstructorGuard(),
	}
}

// DispatchCodeFromString reconstructs a code from its string form, e.g. when
// a courier confirms a delivery. The format is validated strictly.
func DispatchCodeFromString(s string) (DispatchCode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !strings.HasPrefix(s, dispatchCodePrefix) {
		return DispatchCode{}, errs.NewValueIsInvalidError("dispatch code must start with " + dispatchCodePrefix)
	}

	tail := strings.TrimPrefix(s, dispatchCodePrefix)
	if len(tail) != dispatchCodeTailLength {
		return DispatchCode{}, errs.NewValueIsInvalidErrorWithCause("dispatch code",
			fmt.Errorf("expected %d characters after %q, got %d", dispatchCodeTailLength, dispatchCodePrefix, len(tail)))
	}

	for _, r := range tail {
		if !strings.ContainsRune(dispatchCodeAlphabet, r) {
			return DispatchCode{}, errs.NewValueIsInvalidErrorWithCause("dispatch code",
				fmt.Errorf("character %q is not in the code alphabet", r))
		}
	}

	return DispatchCode{
		value: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the DispatchCode was created through a constructor.
func (c DispatchCode) Validate() error {
	return c.guard.Validate(ErrDispatchCodeIsNotConstructed)
}

// String returns the full code, e.g. "CMD-7KQ2F9".
func (c DispatchCode) String() string {
	return c.value
}

// IsEqual reports whether two codes are identical.
func (c DispatchCode) IsEqual(other DispatchCode) bool {
	return c.value == other.value
}
