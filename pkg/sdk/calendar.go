package sdk

import (
	"sort"
	"time"
)

// MonthGrid is a Monday-first month layout. Each week holds seven day
// numbers; zero marks a cell outside the month.
type MonthGrid struct {
	Year  int
	Month time.Month
	Weeks [][7]int
}

// NewMonthGrid lays out the given month. The first column is Monday.
func NewMonthGrid(year int, month time.Month) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// time.Weekday counts from Sunday; shift so Monday is column zero.
	offset := (int(first.Weekday()) + 6) % 7

	grid := MonthGrid{Year: year, Month: month}
	week := [7]int{}
	col := offset
	for day := 1; day <= daysInMonth; day++ {
		week[col] = day
		col++
		if col == 7 {
			grid.Weeks = append(grid.Weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		grid.Weeks = append(grid.Weeks, week)
	}
	return grid
}

// DaysWithEvents returns per-day event buckets for the grid's month.
func (g MonthGrid) DaysWithEvents(events []EventRecord) map[int][]EventRecord {
	buckets := map[int][]EventRecord{}
	for _, event := range events {
		start := event.StartTime
		if start.Year() == g.Year && start.Month() == g.Month {
			buckets[start.Day()] = append(buckets[start.Day()], event)
		}
	}
	return buckets
}

// DayGroup is one calendar day and its events.
type DayGroup struct {
	Day    time.Time
	Events []EventRecord
}

// GroupByDay buckets events by calendar day, most recent day first. Events
// within a day keep their incoming order. Days are keyed by their calendar
// date, not by time.Time, so the same date in different zone representations
// still lands in one group.
func GroupByDay(events []EventRecord) []DayGroup {
	type dayKey struct {
		year  int
		month time.Month
		day   int
	}

	buckets := map[dayKey][]EventRecord{}
	days := map[dayKey]time.Time{}
	for _, event := range events {
		start := event.StartTime
		key := dayKey{start.Year(), start.Month(), start.Day()}
		if _, seen := days[key]; !seen {
			days[key] = time.Date(key.year, key.month, key.day, 0, 0, 0, 0, start.Location())
		}
		buckets[key] = append(buckets[key], event)
	}

	groups := make([]DayGroup, 0, len(buckets))
	for key, dayEvents := range buckets {
		groups = append(groups, DayGroup{Day: days[key], Events: dayEvents})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Day.After(groups[j].Day)
	})
	return groups
}

// EventsOn filters events to those starting on the given calendar day.
func EventsOn(events []EventRecord, day time.Time) []EventRecord {
	var matched []EventRecord
	for _, event := range events {
		start := event.StartTime
		if start.Year() == day.Year() && start.Month() == day.Month() && start.Day() == day.Day() {
			matched = append(matched, event)
		}
	}
	return matched
}
