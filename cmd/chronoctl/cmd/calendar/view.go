package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/pkg/sdk"
)

// viewState is the calendar view's local state: the visible month, the
// selected day, and the "show all events" override. The override never
// survives a date change; picking a new day or month always returns the view
// to its date-filtered default.
type viewState struct {
	year     int
	month    time.Month
	selected int // day of month, 0 = none
	showAll  bool
}

func newViewState(at time.Time) *viewState {
	return &viewState{year: at.Year(), month: at.Month(), selected: at.Day()}
}

// SelectDay moves the selection and drops the show-all override.
func (v *viewState) SelectDay(day int) error {
	grid := sdk.NewMonthGrid(v.year, v.month)
	last := 0
	for _, week := range grid.Weeks {
		for _, d := range week {
			if d > last {
				last = d
			}
		}
	}
	if day < 1 || day > last {
		return fmt.Errorf("day %d is outside %s %d", day, v.month, v.year)
	}
	v.selected = day
	v.showAll = false
	return nil
}

// NextMonth moves the view one month forward, clearing selection and override.
func (v *viewState) NextMonth() {
	next := time.Date(v.year, v.month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	v.year, v.month = next.Year(), next.Month()
	v.selected = 0
	v.showAll = false
}

// PrevMonth moves the view one month back, clearing selection and override.
func (v *viewState) PrevMonth() {
	prev := time.Date(v.year, v.month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	v.year, v.month = prev.Year(), prev.Month()
	v.selected = 0
	v.showAll = false
}

// ShowAll overrides the date filter until the next date selection.
func (v *viewState) ShowAll() {
	v.showAll = true
}

// SelectedDate returns the selected day as a time, valid only when a day is
// selected.
func (v *viewState) SelectedDate() time.Time {
	return time.Date(v.year, v.month, v.selected, 0, 0, 0, 0, time.Local)
}

// VisibleEvents applies the current filter to the cached events.
func (v *viewState) VisibleEvents(events []sdk.EventRecord) []sdk.EventRecord {
	if v.showAll || v.selected == 0 {
		return events
	}
	return sdk.EventsOn(events, v.SelectedDate())
}

// renderMonth draws the Monday-first month grid. Days carrying events are
// marked with an asterisk; the selected day is bracketed.
func renderMonth(v *viewState, events []sdk.EventRecord) string {
	grid := sdk.NewMonthGrid(v.year, v.month)
	buckets := grid.DaysWithEvents(events)

	var b strings.Builder
	fmt.Fprintf(&b, "%s, %d\n", strings.ToUpper(v.month.String()), v.year)
	b.WriteString(" Mo   Tu   We   Th   Fr   Sa   Su\n")
	for _, week := range grid.Weeks {
		for _, day := range week {
			switch {
			case day == 0:
				b.WriteString("     ")
			case day == v.selected && !v.showAll:
				fmt.Fprintf(&b, "[%2d] ", day)
			default:
				marker := " "
				if len(buckets[day]) > 0 {
					marker = "*"
				}
				fmt.Fprintf(&b, " %2d%s ", day, marker)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
