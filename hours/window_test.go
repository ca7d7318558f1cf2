package hours

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hm(h, m int) TimeOfDay { return MustTimeOfDay(h, m) }

func TestIsOpenAtHour_NonWrappingSweep(t *testing.T) {
	opening, closing := hm(9, 0), hm(18, 0)

	for h := 0; h < 24; h++ {
		got, err := IsOpenAtHour(opening, closing, hm(h, 0))
		require.NoError(t, err)
		assert.Equal(t, h >= 9 && h < 18, got, "hour %d", h)
	}
}

func TestIsOpenAtHour_WrappingSweep(t *testing.T) {
	opening, closing := hm(21, 0), hm(5, 0)
	open := map[int]bool{21: true, 22: true, 23: true, 0: true, 1: true, 2: true, 3: true, 4: true}

	for h := 0; h < 24; h++ {
		got, err := IsOpenAtHour(opening, closing, hm(h, 0))
		require.NoError(t, err)
		assert.Equal(t, open[h], got, "hour %d", h)
	}
}

func TestIsOpenAtHour_Minutes(t *testing.T) {
	opening, closing := hm(9, 30), hm(17, 45)

	tests := []struct {
		at   TimeOfDay
		want bool
	}{
		{hm(9, 0), false},
		{hm(9, 30), true},
		{hm(17, 0), true},
		{hm(17, 45), false},
	}
	for _, tt := range tests {
		got, err := IsOpenAtHour(opening, closing, tt.at)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "at %s", tt.at)
	}
}

func TestIsOpenAtHour_FullDay(t *testing.T) {
	for h := 0; h < 24; h++ {
		got, err := IsOpenAtHour(hm(10, 0), hm(10, 0), hm(h, 0))
		require.NoError(t, err)
		assert.True(t, got, "hour %d", h)
	}
}

func TestIsOpenAtHour_MidnightNormalized(t *testing.T) {
	// 00:00-00:00 is stored as 00:00-23:59 by the loader.
	got, err := IsOpenAtHour(hm(0, 0), hm(23, 59), hm(23, 0))
	require.NoError(t, err)
	assert.True(t, got)
}

func TestIsOpenAtHour_InvalidInput(t *testing.T) {
	_, err := IsOpenAtHour(TimeOfDay(MinutesPerDay), hm(5, 0), hm(1, 0))
	assert.ErrorIs(t, err, ErrInvalidTime)

	_, err = IsOpenAtHour(hm(9, 0), hm(5, 0), TimeOfDay(-1))
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestOverlapsWindow(t *testing.T) {
	tests := []struct {
		name             string
		opening, closing TimeOfDay
		start, end       int
		legacy, circular bool
	}{
		{"day venue midday", hm(9, 0), hm(18, 0), 12, 17, true, true},
		{"day venue dawn", hm(9, 0), hm(18, 0), 5, 12, true, true},
		{"day venue dusk", hm(9, 0), hm(18, 0), 17, 21, true, true},
		{"day venue night", hm(9, 0), hm(18, 0), 21, 5, false, false},
		{"late bar night", hm(22, 0), hm(2, 0), 21, 5, false, true},
		{"late bar dawn", hm(22, 0), hm(2, 0), 5, 12, false, false},
		{"late bar midday", hm(22, 0), hm(2, 0), 12, 17, false, false},
		{"late bar dusk", hm(22, 0), hm(2, 0), 17, 21, false, false},
		{"until 23:59 night", hm(8, 0), hm(23, 59), 21, 5, true, true},
		{"early shift night", hm(3, 0), hm(6, 0), 21, 5, true, true},
		{"morning only night", hm(6, 0), hm(10, 0), 21, 5, false, false},
		{"touching window end", hm(12, 0), hm(17, 0), 5, 12, false, false},
		{"touching window start", hm(12, 0), hm(17, 0), 17, 21, false, false},
		{"half hour into dusk", hm(12, 0), hm(17, 30), 17, 21, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OverlapsWindow(tt.opening, tt.closing, tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.legacy, got, "legacy")

			got, err = OverlapsWindowCircular(tt.opening, tt.closing, tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.circular, got, "circular")
		})
	}
}

func TestOverlapsWindow_FullDayMatchesEveryWindow(t *testing.T) {
	for _, w := range Windows {
		got, err := OverlapsWindow(hm(10, 0), hm(10, 0), w.StartHour, w.EndHour)
		require.NoError(t, err)
		assert.True(t, got, "legacy %s", w.Part)

		got, err = OverlapsWindowCircular(hm(10, 0), hm(10, 0), w.StartHour, w.EndHour)
		require.NoError(t, err)
		assert.True(t, got, "circular %s", w.Part)
	}
}

func TestOverlapsWindow_InvalidInput(t *testing.T) {
	_, err := OverlapsWindow(TimeOfDay(MinutesPerDay+5), hm(2, 0), 21, 5)
	assert.ErrorIs(t, err, ErrInvalidTime)

	_, err = OverlapsWindow(hm(9, 0), hm(17, 0), 5, 25)
	assert.ErrorIs(t, err, ErrInvalidTime)

	_, err = OverlapsWindowCircular(hm(9, 0), hm(17, 0), -1, 5)
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestInterval_Overlaps(t *testing.T) {
	night := windowInterval(21, 5)
	assert.True(t, night.Wraps())
	assert.True(t, night.Contains(hm(0, 0)))
	assert.False(t, night.Contains(hm(5, 0)))

	assert.True(t, Interval{hm(23, 0), hm(1, 0)}.Overlaps(Interval{hm(0, 30), hm(0, 45)}))
	assert.False(t, Interval{hm(8, 0), hm(9, 0)}.Overlaps(Interval{hm(9, 0), hm(10, 0)}))
	assert.True(t, windowInterval(0, 24).FullDay())
}

func ExampleOverlapsWindow() {
	legacy, _ := OverlapsWindow(MustTimeOfDay(22, 0), MustTimeOfDay(2, 0), 21, 5)
	circular, _ := OverlapsWindowCircular(MustTimeOfDay(22, 0), MustTimeOfDay(2, 0), 21, 5)
	fmt.Println(legacy, circular)
	// Output: false true
}
