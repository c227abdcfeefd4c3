// Package revenue contains the append-only cash ledger entry. Exactly one
// entry is written per delivered order, in the same transaction as the state
// transition; entries are never updated or deleted, corrections happen via
// new adjusting entries, preserving the audit trail.
package revenue

import (
	"errors"
	"time"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/pkg/errs"
	"minishop/internal/pkg/guard"
)

// ErrEntryIsNotConstructed is returned when using an improperly initialized Entry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Entry is one immutable monetary event: the cash collected for a delivered
// order. The order code is the only join key: no customer identity is ever
// recorded in the ledger.
type Entry struct { //nolint:recvcheck //using for validation
	orderCode  kernel.DispatchCode
	amount     kernel.Money
	recordedAt time.Time

	guard guard.ConstructorGuard
}

// NewEntry creates a ledger entry for the given order code and amount.
func NewEntry(orderCode kernel.DispatchCode, amount kernel.Money, recordedAt time.Time) (Entry, error) {
	e := Entry{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setOrderCode(orderCode),
		e.setAmount(amount),
		e.setRecordedAt(recordedAt),
	); err != nil {
		return Entry{}, err
	}

	return e, nil
}

// RestoreEntry reconstructs an entry from persistence.
func RestoreEntry(orderCode kernel.DispatchCode, amount kernel.Money, recordedAt time.Time) (Entry, error) {
	return NewEntry(orderCode, amount, recordedAt)
}

// Validate ensures the Entry was created through NewEntry.
func (e Entry) Validate() error {
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// OrderCode returns the anonymous code of the delivered order.
func (e Entry) OrderCode() kernel.DispatchCode {
	return e.orderCode
}

// Amount returns the cash amount collected.
func (e Entry) Amount() kernel.Money {
	return e.amount
}

// RecordedAt returns the ledger timestamp.
func (e Entry) RecordedAt() time.Time {
	return e.recordedAt
}

func (e *Entry) setOrderCode(orderCode kernel.DispatchCode) error {
	if err := orderCode.Validate(); err != nil {
		return err
	}

	e.orderCode = orderCode
	return nil
}

func (e *Entry) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	e.amount = amount
	return nil
}

func (e *Entry) setRecordedAt(recordedAt time.Time) error {
	if recordedAt.IsZero() {
		return errs.NewValueIsRequiredError("recordedAt")
	}

	e.recordedAt = recordedAt
	return nil
}
