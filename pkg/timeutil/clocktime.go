package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Period is the part of the day a task belongs to.
type Period int

const (
	Morning Period = iota
	Afternoon
	Evening
	// Anytime holds tasks without a usable clock time.
	Anytime
)

// Periods lists the periods in display order.
func Periods() []Period {
	return []Period{Morning, Afternoon, Evening, Anytime}
}

func (p Period) String() string {
	switch p {
	case Morning:
		return "Morning"
	case Afternoon:
		return "Afternoon"
	case Evening:
		return "Evening"
	default:
		return "Anytime"
	}
}

// ParsePeriod resolves a period name, case-insensitively.
func ParsePeriod(raw string) (Period, error) {
	for _, p := range Periods() {
		if strings.EqualFold(strings.TrimSpace(raw), p.String()) {
			return p, nil
		}
	}
	return Anytime, fmt.Errorf("unknown period %q", raw)
}

// PeriodOf buckets a clock string: morning is 05:00-11:59, afternoon
// 12:00-17:59 and evening the rest of the day.
func PeriodOf(clock string) Period {
	minutes, err := ParseClock(clock)
	if err != nil {
		return Anytime
	}
	hour := minutes / 60
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 18:
		return Afternoon
	default:
		return Evening
	}
}

// ConvertTimeToMinutes converts "h:mm AM|PM" to minutes since midnight. It is
// lenient: unparsable components count as zero and a missing period is read
// as a 24 hour clock.
func ConvertTimeToMinutes(clock string) int {
	hm, period, _ := strings.Cut(strings.TrimSpace(clock), " ")
	hourStr, minuteStr, _ := strings.Cut(hm, ":")
	hour := leadingInt(hourStr)
	minute := leadingInt(minuteStr)

	period = strings.ToUpper(strings.TrimSpace(period))
	if period == "PM" && hour != 12 {
		hour += 12
	} else if period == "AM" && hour == 12 {
		hour = 0
	}
	return hour*60 + minute
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

var (
	clock12Pattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*([ap])\.?m?\.?$`)
	clock24Pattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// ParseClock strictly parses a clock string and returns minutes since
// midnight. It accepts "7:00 AM", "7am", "7:30pm" and 24 hour "19:30".
func ParseClock(clock string) (int, error) {
	in := strings.ToLower(strings.TrimSpace(clock))
	if in == "" {
		return 0, fmt.Errorf("empty time")
	}
	if m := clock12Pattern.FindStringSubmatch(in); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour < 1 || hour > 12 || minute > 59 {
			return 0, fmt.Errorf("invalid time %q", clock)
		}
		hour %= 12
		if m[3] == "p" {
			hour += 12
		}
		return hour*60 + minute, nil
	}
	if m := clock24Pattern.FindStringSubmatch(in); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return 0, fmt.Errorf("invalid time %q", clock)
		}
		return hour*60 + minute, nil
	}
	return 0, fmt.Errorf("invalid time %q, expected h:mm AM|PM", clock)
}

// FormatClock renders minutes since midnight as "h:mm AM|PM".
func FormatClock(minutes int) string {
	minutes = ((minutes % 1440) + 1440) % 1440
	hour, minute := minutes/60, minutes%60
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, period)
}

// NormalizeClock parses any accepted clock form and renders it canonically.
func NormalizeClock(clock string) (string, error) {
	minutes, err := ParseClock(clock)
	if err != nil {
		return "", err
	}
	return FormatClock(minutes), nil
}
