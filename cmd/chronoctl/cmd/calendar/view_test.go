package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/pkg/sdk"
)

func mayEvent(day int, title string) sdk.EventRecord {
	start := time.Date(2025, time.May, day, 9, 0, 0, 0, time.Local)
	return sdk.EventRecord{ID: title, Title: title, StartTime: start, EndTime: start.Add(time.Hour)}
}

func TestViewStateSelectDay(t *testing.T) {
	state := newViewState(time.Date(2025, time.May, 9, 12, 0, 0, 0, time.Local))

	t.Run("selection moves and drops the show-all override", func(t *testing.T) {
		state.ShowAll()
		require.NoError(t, state.SelectDay(12))
		assert.Equal(t, 12, state.selected)
		assert.False(t, state.showAll, "picking a day must return to the date filter")
	})

	t.Run("days outside the month are rejected", func(t *testing.T) {
		assert.Error(t, state.SelectDay(0))
		assert.Error(t, state.SelectDay(32))
	})
}

func TestViewStateMonthNavigation(t *testing.T) {
	state := newViewState(time.Date(2025, time.December, 9, 12, 0, 0, 0, time.Local))
	state.ShowAll()

	state.NextMonth()
	assert.Equal(t, 2026, state.year, "December rolls into the next year")
	assert.Equal(t, time.January, state.month)
	assert.Zero(t, state.selected)
	assert.False(t, state.showAll, "a month change drops the override")

	state.PrevMonth()
	state.PrevMonth()
	assert.Equal(t, 2025, state.year)
	assert.Equal(t, time.November, state.month)
}

func TestViewStateVisibleEvents(t *testing.T) {
	events := []sdk.EventRecord{mayEvent(9, "standup"), mayEvent(12, "review")}
	state := newViewState(time.Date(2025, time.May, 9, 12, 0, 0, 0, time.Local))

	t.Run("date filter by default", func(t *testing.T) {
		visible := state.VisibleEvents(events)
		require.Len(t, visible, 1)
		assert.Equal(t, "standup", visible[0].Title)
	})

	t.Run("show-all overrides the filter", func(t *testing.T) {
		state.ShowAll()
		assert.Len(t, state.VisibleEvents(events), 2)
	})

	t.Run("no selection shows everything", func(t *testing.T) {
		state.NextMonth()
		assert.Len(t, state.VisibleEvents(events), 2)
	})
}

func TestRenderMonth(t *testing.T) {
	state := newViewState(time.Date(2025, time.May, 9, 12, 0, 0, 0, time.Local))
	out := renderMonth(state, []sdk.EventRecord{mayEvent(12, "review")})

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "MAY, 2025", lines[0])
	assert.Equal(t, " Mo   Tu   We   Th   Fr   Sa   Su", lines[1])
	assert.Contains(t, out, "[ 9]", "the selected day is bracketed")
	assert.Contains(t, out, "12*", "a day with events is starred")
}
