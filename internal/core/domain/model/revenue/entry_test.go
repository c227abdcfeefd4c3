package revenue_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/core/domain/model/revenue"
	"minishop/internal/pkg/errs"
)

func TestNewEntry(t *testing.T) {
	code := kernel.NewRandomDispatchCode()
	amount, err := kernel.MoneyFromString("44.40")
	require.NoError(t, err)
	recordedAt := time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC)

	entry, err := revenue.NewEntry(code, amount, recordedAt)

	require.NoError(t, err)
	assert.NoError(t, entry.Validate())
	assert.True(t, entry.OrderCode().IsEqual(code))
	assert.True(t, entry.Amount().IsEqual(amount))
	assert.Equal(t, recordedAt, entry.RecordedAt())
}

func TestNewEntryValidation(t *testing.T) {
	code := kernel.NewRandomDispatchCode()
	amount, err := kernel.MoneyFromString("10.00")
	require.NoError(t, err)
	recordedAt := time.Now()

	t.Run("empty code is refused", func(t *testing.T) {
		_, err := revenue.NewEntry(kernel.DispatchCode{}, amount, recordedAt)
		assert.Error(t, err)
	})

	t.Run("unconstructed amount is refused", func(t *testing.T) {
		_, err := revenue.NewEntry(code, kernel.Money{}, recordedAt)
		assert.Error(t, err)
	})

	t.Run("zero timestamp is refused", func(t *testing.T) {
		_, err := revenue.NewEntry(code, amount, time.Time{})
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreEntry(t *testing.T) {
	code, err := kernel.DispatchCodeFromString("CMD-A1B2C3")
	require.NoError(t, err)
	amount, err := kernel.MoneyFromString("99.90")
	require.NoError(t, err)
	recordedAt := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)

	entry, err := revenue.RestoreEntry(code, amount, recordedAt)

	require.NoError(t, err)
	assert.Equal(t, "CMD-A1B2C3", entry.OrderCode().String())
	assert.Equal(t, "99.90", entry.Amount().String())
}

func TestEntryValidateZeroValue(t *testing.T) {
	var entry revenue.Entry
	assert.ErrorIs(t, entry.Validate(), revenue.ErrEntryIsNotConstructed)
}
