package forecast

import (
	"testing"
	"time"

	"chequemate/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingInstrument(kind string, due time.Time) models.Instrument {
	return models.Instrument{
		ID:      uuid.New(),
		Kind:    kind,
		Status:  models.InstrumentStatusPending,
		Amount:  decimal.NewFromInt(100),
		DueDate: due,
	}
}

func TestApplyDueTransitions_KindDeterminesTerminalStatus(t *testing.T) {
	today := date(2026, 1, 15)

	cheque := pendingInstrument(models.InstrumentKindCheque, today)
	withdrawal := pendingInstrument(models.InstrumentKindWithdrawal, today)
	deposit := pendingInstrument(models.InstrumentKindDeposit, today)

	outcome := ApplyDueTransitions([]models.Instrument{cheque, withdrawal, deposit}, today)

	require.Len(t, outcome.Updated, 3)
	assert.Equal(t, 2, outcome.Deducted)
	assert.Equal(t, 1, outcome.Cleared)
	assert.Equal(t, 3, outcome.Total())

	byID := map[uuid.UUID]string{}
	for _, change := range outcome.Updated {
		byID[change.ID] = change.NewStatus
	}
	assert.Equal(t, models.InstrumentStatusDeducted, byID[cheque.ID])
	assert.Equal(t, models.InstrumentStatusDeducted, byID[withdrawal.ID])
	assert.Equal(t, models.InstrumentStatusCleared, byID[deposit.ID])
}

func TestApplyDueTransitions_SelectsOnlyDueToday(t *testing.T) {
	today := date(2026, 1, 15)

	dueTomorrow := pendingInstrument(models.InstrumentKindCheque, today.AddDate(0, 0, 1))
	dueYesterday := pendingInstrument(models.InstrumentKindCheque, today.AddDate(0, 0, -1))
	dueToday := pendingInstrument(models.InstrumentKindCheque, today)

	outcome := ApplyDueTransitions([]models.Instrument{dueTomorrow, dueYesterday, dueToday}, today)

	require.Len(t, outcome.Updated, 1)
	assert.Equal(t, dueToday.ID, outcome.Updated[0].ID)
}

func TestApplyDueTransitions_SkipsAlreadySettled(t *testing.T) {
	today := date(2026, 1, 15)

	deducted := pendingInstrument(models.InstrumentKindCheque, today)
	deducted.Status = models.InstrumentStatusDeducted
	cleared := pendingInstrument(models.InstrumentKindDeposit, today)
	cleared.Status = models.InstrumentStatusCleared

	outcome := ApplyDueTransitions([]models.Instrument{deducted, cleared}, today)
	assert.Empty(t, outcome.Updated)
	assert.Equal(t, 0, outcome.Total())
}

func TestApplyDueTransitions_Idempotent(t *testing.T) {
	today := date(2026, 1, 15)
	instruments := []models.Instrument{
		pendingInstrument(models.InstrumentKindCheque, today),
		pendingInstrument(models.InstrumentKindDeposit, today),
	}

	first := ApplyDueTransitions(instruments, today)
	require.Len(t, first.Updated, 2)

	// Apply the computed changes to the snapshot, then run again: the
	// pending precondition must make the second pass a no-op.
	settled := make([]models.Instrument, len(instruments))
	copy(settled, instruments)
	for i := range settled {
		for _, change := range first.Updated {
			if settled[i].ID == change.ID {
				settled[i].Status = change.NewStatus
			}
		}
	}

	second := ApplyDueTransitions(settled, today)
	assert.Empty(t, second.Updated)
	assert.Equal(t, 0, second.Total())
}

func TestApplyDueTransitions_NormalizesLocalDate(t *testing.T) {
	due := date(2026, 1, 15)
	inst := pendingInstrument(models.InstrumentKindDeposit, due)

	// "Today" arrives with a time-of-day component; only the civil date
	// matters.
	noon := time.Date(2026, 1, 15, 12, 30, 0, 0, time.UTC)
	outcome := ApplyDueTransitions([]models.Instrument{inst}, noon)

	require.Len(t, outcome.Updated, 1)
	assert.Equal(t, 1, outcome.Cleared)
}

func TestApplyDueTransitions_IgnoresUnknownKind(t *testing.T) {
	today := date(2026, 1, 15)
	odd := pendingInstrument("transfer", today)

	outcome := ApplyDueTransitions([]models.Instrument{odd}, today)
	assert.Empty(t, outcome.Updated)
}

func TestApplyDueTransitions_EmptySnapshot(t *testing.T) {
	outcome := ApplyDueTransitions(nil, date(2026, 1, 15))
	assert.Empty(t, outcome.Updated)
	assert.Equal(t, 0, outcome.Total())
}
