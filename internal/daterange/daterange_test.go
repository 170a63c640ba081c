package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalize(t *testing.T) {
	kathmandu, err := time.LoadLocation("Asia/Kathmandu")
	require.NoError(t, err)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "strips time of day",
			in:   time.Date(2026, 3, 14, 15, 9, 26, 535, time.UTC),
			want: date(2026, 3, 14),
		},
		{
			name: "keeps civil date from non-UTC zone",
			in:   time.Date(2026, 3, 14, 23, 45, 0, 0, kathmandu),
			want: date(2026, 3, 14),
		},
		{
			name: "already normalized",
			in:   date(2026, 3, 14),
			want: date(2026, 3, 14),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Normalize(tt.in).Equal(tt.want))
		})
	}
}

func TestNew_RejectsInvertedRange(t *testing.T) {
	_, err := New(date(2026, 1, 10), date(2026, 1, 9))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestRange_Days(t *testing.T) {
	r, err := New(date(2026, 1, 1), date(2026, 1, 7))
	require.NoError(t, err)
	assert.Equal(t, 7, r.Days())

	single, err := New(date(2026, 1, 1), date(2026, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, single.Days())
}

func TestRange_Contains(t *testing.T) {
	r, err := New(date(2026, 1, 5), date(2026, 1, 10))
	require.NoError(t, err)

	assert.True(t, r.Contains(date(2026, 1, 5)))
	assert.True(t, r.Contains(date(2026, 1, 10)))
	assert.True(t, r.Contains(time.Date(2026, 1, 7, 18, 30, 0, 0, time.UTC)))
	assert.False(t, r.Contains(date(2026, 1, 4)))
	assert.False(t, r.Contains(date(2026, 1, 11)))
}

func TestBuffered(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		leading   int
		trailing  int
		wantStart time.Time
		wantEnd   time.Time
		wantErr   error
	}{
		{
			name:      "symmetric expansion",
			start:     date(2026, 1, 10),
			end:       date(2026, 1, 20),
			leading:   3,
			trailing:  3,
			wantStart: date(2026, 1, 7),
			wantEnd:   date(2026, 1, 23),
		},
		{
			name:      "zero buffers are a no-op",
			start:     date(2026, 1, 10),
			end:       date(2026, 1, 20),
			wantStart: date(2026, 1, 10),
			wantEnd:   date(2026, 1, 20),
		},
		{
			name:      "expansion crosses month boundary",
			start:     date(2026, 2, 2),
			end:       date(2026, 2, 27),
			leading:   5,
			trailing:  5,
			wantStart: date(2026, 1, 28),
			wantEnd:   date(2026, 3, 4),
		},
		{
			name:     "negative leading buffer rejected",
			start:    date(2026, 1, 10),
			end:      date(2026, 1, 20),
			leading:  -1,
			wantErr:  ErrNegativeBuffer,
		},
		{
			name:     "negative trailing buffer rejected",
			start:    date(2026, 1, 10),
			end:      date(2026, 1, 20),
			trailing: -1,
			wantErr:  ErrNegativeBuffer,
		},
		{
			name:    "inverted range rejected",
			start:   date(2026, 1, 20),
			end:     date(2026, 1, 10),
			wantErr: ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Buffered(tt.start, tt.end, tt.leading, tt.trailing)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, r.Start.Equal(tt.wantStart), "start: got %v want %v", r.Start, tt.wantStart)
			assert.True(t, r.End.Equal(tt.wantEnd), "end: got %v want %v", r.End, tt.wantEnd)
		})
	}
}

func TestMonth(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		leading   int
		trailing  int
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "february with five day buffers",
			ref:       date(2026, 2, 15),
			leading:   5,
			trailing:  5,
			wantStart: date(2026, 1, 27),
			wantEnd:   date(2026, 3, 5),
		},
		{
			name:      "plain january",
			ref:       date(2026, 1, 31),
			wantStart: date(2026, 1, 1),
			wantEnd:   date(2026, 1, 31),
		},
		{
			name:      "leap february",
			ref:       date(2028, 2, 10),
			wantStart: date(2028, 2, 1),
			wantEnd:   date(2028, 2, 29),
		},
		{
			name:      "december buffer rolls into next year",
			ref:       date(2026, 12, 20),
			trailing:  3,
			wantStart: date(2026, 12, 1),
			wantEnd:   date(2027, 1, 3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Month(tt.ref, tt.leading, tt.trailing)
			require.NoError(t, err)
			assert.True(t, r.Start.Equal(tt.wantStart), "start: got %v want %v", r.Start, tt.wantStart)
			assert.True(t, r.End.Equal(tt.wantEnd), "end: got %v want %v", r.End, tt.wantEnd)
		})
	}

	t.Run("negative buffer rejected", func(t *testing.T) {
		_, err := Month(date(2026, 2, 15), -1, 0)
		assert.ErrorIs(t, err, ErrNegativeBuffer)
	})
}

func TestQuick(t *testing.T) {
	today := date(2026, 1, 15)

	tests := []struct {
		kind      string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{QuickLastWeek, date(2026, 1, 8), today},
		{QuickLastMonth, date(2025, 12, 16), today},
		{QuickNextWeek, today, date(2026, 1, 22)},
		{QuickNextMonth, today, date(2026, 2, 14)},
		{QuickThisMonth, date(2026, 1, 1), date(2026, 1, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			r, err := Quick(tt.kind, today)
			require.NoError(t, err)
			assert.True(t, r.Start.Equal(tt.wantStart), "start: got %v want %v", r.Start, tt.wantStart)
			assert.True(t, r.End.Equal(tt.wantEnd), "end: got %v want %v", r.End, tt.wantEnd)
		})
	}

	t.Run("unknown kind rejected", func(t *testing.T) {
		_, err := Quick("fortnight", today)
		assert.ErrorIs(t, err, ErrUnknownQuickRange)
	})

	t.Run("today with time of day is normalized", func(t *testing.T) {
		r, err := Quick(QuickNextWeek, time.Date(2026, 1, 15, 22, 5, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.True(t, r.Start.Equal(today))
	})
}

func TestIsValidQuickKind(t *testing.T) {
	assert.True(t, IsValidQuickKind(QuickLastWeek))
	assert.True(t, IsValidQuickKind(QuickThisMonth))
	assert.False(t, IsValidQuickKind(""))
	assert.False(t, IsValidQuickKind("yesterday"))
}

func TestKeyRoundTrip(t *testing.T) {
	d := date(2026, 7, 4)
	assert.Equal(t, "2026-07-04", Key(d))

	parsed, err := ParseKey("2026-07-04")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(d))

	_, err = ParseKey("04/07/2026")
	assert.Error(t, err)
}
