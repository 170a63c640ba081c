package forecast

import (
	"sort"
	"time"

	"chequemate/internal/daterange"
	"chequemate/internal/models"

	"github.com/shopspring/decimal"
)

// DayTotals holds per-kind amounts. It is a value type: assigning it copies
// it, which is what makes the per-day cumulative snapshots in a projection
// immune to later accumulation.
type DayTotals struct {
	Deposits    decimal.Decimal `json:"deposits"`
	Cheques     decimal.Decimal `json:"cheques"`
	Withdrawals decimal.Decimal `json:"withdrawals"`
}

func zeroTotals() DayTotals {
	return DayTotals{
		Deposits:    decimal.Zero,
		Cheques:     decimal.Zero,
		Withdrawals: decimal.Zero,
	}
}

// plus folds one instrument's amount into the matching kind bucket.
func (t DayTotals) plus(inst models.Instrument) DayTotals {
	switch inst.Kind {
	case models.InstrumentKindDeposit:
		t.Deposits = t.Deposits.Add(inst.Amount)
	case models.InstrumentKindCheque:
		t.Cheques = t.Cheques.Add(inst.Amount)
	case models.InstrumentKindWithdrawal:
		t.Withdrawals = t.Withdrawals.Add(inst.Amount)
	}
	return t
}

// Net returns deposits minus cheques minus withdrawals.
func (t DayTotals) Net() decimal.Decimal {
	return t.Deposits.Sub(t.Cheques).Sub(t.Withdrawals)
}

// DayProjection is one date's worth of aggregated totals and the balance
// projected at the end of that date.
type DayProjection struct {
	Date             time.Time       `json:"date"`
	DayTotals        DayTotals       `json:"day_totals"`
	CumulativeTotals DayTotals       `json:"cumulative_totals"`
	ProjectedBalance decimal.Decimal `json:"projected_balance"`
}

// ProjectionResult is the full day-indexed outcome of one projection call.
// It is recomputed from a fresh snapshot on every call and never mutated
// afterwards.
type ProjectionResult struct {
	Window        daterange.Range `json:"window"`
	AnchorBalance decimal.Decimal `json:"anchor_balance"`
	Days          []DayProjection `json:"days"`

	// Excluded counts instruments skipped for an unrecognized kind/status or
	// a non-positive amount. They never reach totals; callers log the count.
	Excluded int `json:"excluded"`

	byDate map[string]int
}

// DetailForDate returns the projection for a single date inside the computed
// window. The second return is false for any date outside the window: the
// result never extrapolates.
func (r *ProjectionResult) DetailForDate(date time.Time) (DayProjection, bool) {
	i, ok := r.byDate[daterange.Key(daterange.Normalize(date))]
	if !ok {
		return DayProjection{}, false
	}
	return r.Days[i], true
}

// Project computes the per-day balance projection for [start, end] inclusive.
//
// All three recognized statuses participate: pending and deducted/cleared
// instruments alike are promises the balance must account for. Instruments
// due before the window seed the cumulative accumulator so a window opened
// mid-stream still reflects prior obligations. Days with nothing due carry
// the previous day's cumulative totals and balance forward unchanged.
func Project(anchorBalance decimal.Decimal, instruments []models.Instrument, start, end time.Time) (*ProjectionResult, error) {
	window, err := daterange.New(start, end)
	if err != nil {
		return nil, err
	}

	eligible := make([]models.Instrument, 0, len(instruments))
	excluded := 0
	for _, inst := range instruments {
		if !models.IsValidInstrumentStatus(inst.Status) ||
			!models.IsValidInstrumentKind(inst.Kind) ||
			inst.Amount.LessThanOrEqual(decimal.Zero) {
			excluded++
			continue
		}
		inst.DueDate = daterange.Normalize(inst.DueDate)
		eligible = append(eligible, inst)
	}

	// Deterministic accumulation order when several instruments share a due
	// date: creation order, then ID as the final tiebreak.
	sort.SliceStable(eligible, func(a, b int) bool {
		ai, bi := eligible[a], eligible[b]
		if !ai.DueDate.Equal(bi.DueDate) {
			return ai.DueDate.Before(bi.DueDate)
		}
		if !ai.CreatedAt.Equal(bi.CreatedAt) {
			return ai.CreatedAt.Before(bi.CreatedAt)
		}
		return ai.ID.String() < bi.ID.String()
	})

	cumulative := zeroTotals()
	idx := 0
	for idx < len(eligible) && eligible[idx].DueDate.Before(window.Start) {
		cumulative = cumulative.plus(eligible[idx])
		idx++
	}

	result := &ProjectionResult{
		Window:        window,
		AnchorBalance: anchorBalance,
		Days:          make([]DayProjection, 0, window.Days()),
		Excluded:      excluded,
		byDate:        make(map[string]int, window.Days()),
	}

	for date := window.Start; !date.After(window.End); date = date.AddDate(0, 0, 1) {
		day := zeroTotals()
		for idx < len(eligible) && eligible[idx].DueDate.Equal(date) {
			day = day.plus(eligible[idx])
			cumulative = cumulative.plus(eligible[idx])
			idx++
		}

		result.byDate[daterange.Key(date)] = len(result.Days)
		result.Days = append(result.Days, DayProjection{
			Date:             date,
			DayTotals:        day,
			CumulativeTotals: cumulative,
			ProjectedBalance: anchorBalance.Add(cumulative.Net()),
		})
	}

	return result, nil
}

// CurrentBalance is the settled-money companion to Project: only cleared
// instruments count. "Current" means money that has actually moved;
// "projected" additionally includes pending and deducted obligations.
func CurrentBalance(anchorBalance decimal.Decimal, instruments []models.Instrument) decimal.Decimal {
	balance := anchorBalance

	for _, inst := range instruments {
		if inst.Status != models.InstrumentStatusCleared {
			continue
		}
		if inst.Amount.LessThanOrEqual(decimal.Zero) {
			continue
		}

		switch inst.Kind {
		case models.InstrumentKindDeposit:
			balance = balance.Add(inst.Amount)
		case models.InstrumentKindCheque, models.InstrumentKindWithdrawal:
			balance = balance.Sub(inst.Amount)
		}
	}

	return balance
}
