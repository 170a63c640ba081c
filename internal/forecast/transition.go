package forecast

import (
	"time"

	"chequemate/internal/daterange"
	"chequemate/internal/models"

	"github.com/google/uuid"
)

// StatusChange is one instrument's computed settlement, ready for the
// storage layer to apply.
type StatusChange struct {
	ID        uuid.UUID `json:"id"`
	NewStatus string    `json:"new_status"`
}

// TransitionOutcome reports what a transition pass decided. Counts are split
// by terminal status for observability.
type TransitionOutcome struct {
	Updated  []StatusChange `json:"updated"`
	Deducted int            `json:"deducted"`
	Cleared  int            `json:"cleared"`
}

// Total returns the number of instruments that transitioned.
func (o TransitionOutcome) Total() int {
	return o.Deducted + o.Cleared
}

// ApplyDueTransitions computes which pending instruments settle on localDate:
// cheques and withdrawals become deducted, deposits become cleared.
//
// The function is a pure re-derivation over a snapshot. Because only rows
// still in the pending state are selected, running it twice for the same
// localDate is a no-op the second time, and concurrent invocations cannot
// double-apply a transition as long as the storage layer keeps the same
// precondition on its writes.
//
// localDate must be the civil "today" resolved in the caller's timezone;
// the engine does no timezone math of its own.
func ApplyDueTransitions(instruments []models.Instrument, localDate time.Time) TransitionOutcome {
	today := daterange.Normalize(localDate)
	outcome := TransitionOutcome{}

	for _, inst := range instruments {
		if inst.Status != models.InstrumentStatusPending {
			continue
		}
		if !daterange.SameDate(inst.DueDate, today) {
			continue
		}

		newStatus, err := models.SettledStatusFor(inst.Kind)
		if err != nil {
			// Unrecognized kind: leave the row untouched rather than guess.
			continue
		}

		outcome.Updated = append(outcome.Updated, StatusChange{
			ID:        inst.ID,
			NewStatus: newStatus,
		})

		if newStatus == models.InstrumentStatusDeducted {
			outcome.Deducted++
		} else {
			outcome.Cleared++
		}
	}

	return outcome
}
