package models

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrument_Validate(t *testing.T) {
	validAccountID := uuid.New()
	dueDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		instrument Instrument
		wantErr    error
	}{
		{
			name: "valid pending cheque",
			instrument: Instrument{
				AccountID: validAccountID,
				Kind:      InstrumentKindCheque,
				Status:    InstrumentStatusPending,
				Amount:    decimal.NewFromFloat(150.50),
				DueDate:   dueDate,
			},
		},
		{
			name: "valid cleared deposit",
			instrument: Instrument{
				AccountID: validAccountID,
				Kind:      InstrumentKindDeposit,
				Status:    InstrumentStatusCleared,
				Amount:    decimal.NewFromFloat(2500),
				DueDate:   dueDate,
			},
		},
		{
			name: "unknown kind",
			instrument: Instrument{
				AccountID: validAccountID,
				Kind:      "transfer",
				Status:    InstrumentStatusPending,
				Amount:    decimal.NewFromFloat(100),
				DueDate:   dueDate,
			},
			wantErr: ErrInvalidInstrumentKind,
		},
		{
			name: "unknown status",
			instrument: Instrument{
				AccountID: validAccountID,
				Kind:      InstrumentKindWithdrawal,
				Status:    "bounced",
				Amount:    decimal.NewFromFloat(100),
				DueDate:   dueDate,
			},
			wantErr: ErrInvalidInstrumentStatus,
		},
		{
			name: "zero amount",
			instrument: Instrument{
				AccountID: validAccountID,
				Kind:      InstrumentKindDeposit,
				Status:    InstrumentStatusPending,
				Amount:    decimal.Zero,
				DueDate:   dueDate,
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "negative amount",
			instrument: Instrument{
				AccountID: validAccountID,
				Kind:      InstrumentKindDeposit,
				Status:    InstrumentStatusPending,
				Amount:    decimal.NewFromFloat(-50),
				DueDate:   dueDate,
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "missing due date",
			instrument: Instrument{
				AccountID: validAccountID,
				Kind:      InstrumentKindCheque,
				Status:    InstrumentStatusPending,
				Amount:    decimal.NewFromFloat(100),
			},
			wantErr: ErrMissingDueDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.instrument.Validate()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSettledStatusFor(t *testing.T) {
	tests := []struct {
		kind       string
		wantStatus string
		wantErr    bool
	}{
		{kind: InstrumentKindCheque, wantStatus: InstrumentStatusDeducted},
		{kind: InstrumentKindWithdrawal, wantStatus: InstrumentStatusDeducted},
		{kind: InstrumentKindDeposit, wantStatus: InstrumentStatusCleared},
		{kind: "transfer", wantErr: true},
		{kind: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			status, err := SettledStatusFor(tt.kind)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInstrumentKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestInstrument_StatusPredicates(t *testing.T) {
	pending := Instrument{Status: InstrumentStatusPending}
	deducted := Instrument{Status: InstrumentStatusDeducted}
	cleared := Instrument{Status: InstrumentStatusCleared}

	assert.True(t, pending.IsPending())
	assert.False(t, pending.IsSettled())

	assert.False(t, deducted.IsPending())
	assert.True(t, deducted.IsSettled())
	assert.True(t, cleared.IsSettled())
}

func TestInstrument_FlowDirection(t *testing.T) {
	assert.True(t, (&Instrument{Kind: InstrumentKindDeposit}).IsInflow())
	assert.False(t, (&Instrument{Kind: InstrumentKindDeposit}).IsOutflow())

	assert.True(t, (&Instrument{Kind: InstrumentKindCheque}).IsOutflow())
	assert.True(t, (&Instrument{Kind: InstrumentKindWithdrawal}).IsOutflow())
	assert.False(t, (&Instrument{Kind: InstrumentKindCheque}).IsInflow())
}

func TestInstrument_IsDueOn(t *testing.T) {
	inst := Instrument{DueDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)}

	// Same calendar date regardless of clock time
	assert.True(t, inst.IsDueOn(time.Date(2026, 3, 10, 23, 15, 0, 0, time.UTC)))
	assert.False(t, inst.IsDueOn(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)))
	assert.False(t, inst.IsDueOn(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)))
}

func TestGenerateInstrumentReference(t *testing.T) {
	tests := []struct {
		kind       string
		wantPrefix string
	}{
		{InstrumentKindCheque, "CHQ-"},
		{InstrumentKindDeposit, "DEP-"},
		{InstrumentKindWithdrawal, "WDL-"},
		{"unknown", "INS-"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			ref := GenerateInstrumentReference(tt.kind)
			assert.True(t, strings.HasPrefix(ref, tt.wantPrefix))
		})
	}

	// References are unique across calls
	a := GenerateInstrumentReference(InstrumentKindCheque)
	b := GenerateInstrumentReference(InstrumentKindCheque)
	assert.NotEqual(t, a, b)
}

func TestIsValidInstrumentKind(t *testing.T) {
	assert.True(t, IsValidInstrumentKind(InstrumentKindDeposit))
	assert.True(t, IsValidInstrumentKind(InstrumentKindCheque))
	assert.True(t, IsValidInstrumentKind(InstrumentKindWithdrawal))
	assert.False(t, IsValidInstrumentKind("transfer"))
	assert.False(t, IsValidInstrumentKind(""))
}

func TestIsValidInstrumentStatus(t *testing.T) {
	assert.True(t, IsValidInstrumentStatus(InstrumentStatusPending))
	assert.True(t, IsValidInstrumentStatus(InstrumentStatusDeducted))
	assert.True(t, IsValidInstrumentStatus(InstrumentStatusCleared))
	assert.False(t, IsValidInstrumentStatus("bounced"))
}
