// Package format renders timestamps the way the operator configured them.
package format

import (
	"time"

	"github.com/footprint-tools/cmdkit/internal/config"
)

// Layout holds the resolved display_date and display_time layouts. Resolve
// it once with Current or NewLayout when formatting many timestamps.
type Layout struct {
	date string
	time string
}

// NewLayout resolves display_date and display_time values.
func NewLayout(displayDate, displayTime string) Layout {
	return Layout{date: dateLayout(displayDate), time: timeLayout(displayTime)}
}

// Current reads the display settings from the rc file once.
func Current() Layout {
	values, _ := config.GetAll()
	return NewLayout(values["display_date"], values["display_time"])
}

// Date formats only the date portion.
// Example output: "23/01/2024" or "01/23/2024" or "2024-01-23"
func (l Layout) Date(t time.Time) string {
	return t.Format(l.date)
}

// TimeFull formats time with seconds.
// Example output: "15:04:05" or "3:04:05 PM"
func (l Layout) TimeFull(t time.Time) string {
	return t.Format(l.time)
}

// Full formats with full date and time with seconds.
// Example output: "23/01/2024 15:04:05"
func (l Layout) Full(t time.Time) string {
	return l.Date(t) + " " + l.TimeFull(t)
}

// Date formats the date portion of t using the current settings.
func Date(t time.Time) string {
	return Current().Date(t)
}

// Full formats the date and time of t using the current settings.
func Full(t time.Time) string {
	return Current().Full(t)
}

// Elapsed renders how long an invocation took, e.g. "850ms" or "2.5s".
func Elapsed(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	if d < time.Second {
		return d.String()
	}
	return d.Round(100 * time.Millisecond).String()
}

func dateLayout(displayDate string) string {
	switch displayDate {
	case "mm/dd/yyyy":
		return "01/02/2006"
	case "dd/mm/yyyy":
		return "02/01/2006"
	case "", "yyyy-mm-dd":
		return "2006-01-02"
	default:
		// A custom Go layout such as "Jan 02"
		return displayDate
	}
}

func timeLayout(displayTime string) string {
	if displayTime == "12h" {
		return "3:04:05 PM"
	}
	return "15:04:05"
}
