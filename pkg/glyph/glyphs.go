package glyph

import (
	"fmt"

	"tableflip.dev/dayplan/pkg/timeutil"
)

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// Icons used when the user does not pick one.
const (
	DefaultTaskIcon  = "📝"
	DefaultEventIcon = "📅"
)

const (
	Open      = "●"
	Completed = "✘"
	Event     = "○"
	TBD       = "◌"
	Overdue   = "!"
)

func DefaultGlyphs() []Glyph {
	return []Glyph{
		{Key: "+", Symbol: Open, Meaning: "task"},
		{Key: "x", Symbol: Completed, Meaning: "task completed"},
		{Key: "o", Symbol: Event, Meaning: "scheduled event"},
		{Key: "?", Symbol: TBD, Meaning: "event with a date or time still to be determined"},
		{Key: "!", Symbol: Overdue, Meaning: "event date has passed"},
		{Key: "", Symbol: PeriodSymbol(timeutil.Morning), Meaning: "morning, 5:00 AM to 11:59 AM"},
		{Key: "", Symbol: PeriodSymbol(timeutil.Afternoon), Meaning: "afternoon, 12:00 PM to 5:59 PM"},
		{Key: "", Symbol: PeriodSymbol(timeutil.Evening), Meaning: "evening, 6:00 PM to 4:59 AM"},
		{Key: "", Symbol: PeriodSymbol(timeutil.Anytime), Meaning: "no time set"},
	}
}

// PeriodSymbol is the heading glyph for a part of the day.
func PeriodSymbol(p timeutil.Period) string {
	switch p {
	case timeutil.Morning:
		return "☀"
	case timeutil.Afternoon:
		return "◒"
	case timeutil.Evening:
		return "☾"
	default:
		return "∞"
	}
}

// TaskSymbol is the bullet for a task in the given state.
func TaskSymbol(completed, scheduledEvent bool) string {
	switch {
	case completed:
		return Completed
	case scheduledEvent:
		return Event
	default:
		return Open
	}
}

// IconOr returns icon, or fallback when icon is blank.
func IconOr(icon, fallback string) string {
	if icon == "" {
		return fallback
	}
	return icon
}
