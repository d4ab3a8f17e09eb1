package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// Clock time after "tomorrow": 3pm, 7:45 am, 12 noon, 8 evening.
	tomorrowClockRe = regexp.MustCompile(`(?i)\b(\d{1,2}):?(\d{2})?\s*(am|pm|evening|morning|afternoon|noon)\b`)
	todayClockRe    = regexp.MustCompile(`(?i)\b(\d{1,2}):?(\d{2})?\s*(am|pm|evening|morning|afternoon)\b`)
	inDaysRe        = regexp.MustCompile(`(?i)\bin\s+(\d+)\s+days?\b`)
	nextDayRe       = regexp.MustCompile(`(?i)\bnext\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
)

// Resolve scans a transcript for tomorrow / today / "in N days" / "next <weekday>",
// in that order, and returns the instant the first match refers to.
func (p *Parser) Resolve(transcript string, now time.Time) (time.Time, bool) {
	lower := strings.ToLower(transcript)
	now = now.In(p.location)

	if strings.Contains(lower, "tomorrow") {
		return p.resolveTomorrow(transcript, lower, now), true
	}

	if strings.Contains(lower, "today") {
		return p.resolveToday(transcript, now), true
	}

	if m := inDaysRe.FindStringSubmatch(transcript); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil {
			return now.AddDate(0, 0, days), true
		}
	}

	if m := nextDayRe.FindStringSubmatch(transcript); m != nil {
		target := weekdays[strings.ToLower(m[1])]
		return now.AddDate(0, 0, daysUntilNext(now.Weekday(), target)), true
	}

	return time.Time{}, false
}

func (p *Parser) resolveTomorrow(transcript, lower string, now time.Time) time.Time {
	day := now.AddDate(0, 0, 1)

	if m := tomorrowClockRe.FindStringSubmatch(transcript); m != nil {
		if hour, minute, ok := p.clock(m, true); ok {
			return p.at(day, hour, minute)
		}
	}

	switch {
	case strings.Contains(lower, "evening"):
		return p.at(day, p.periods.Evening, 0)
	case strings.Contains(lower, "morning"):
		return p.at(day, p.periods.Morning, 0)
	case strings.Contains(lower, "afternoon"):
		return p.at(day, p.periods.Afternoon, 0)
	}
	return day
}

func (p *Parser) resolveToday(transcript string, now time.Time) time.Time {
	if m := todayClockRe.FindStringSubmatch(transcript); m != nil {
		if hour, minute, ok := p.clock(m, false); ok {
			// Not rolled forward when already past.
			return p.at(now, hour, minute)
		}
	}
	return now
}

// clock converts a clock match (hour, optional minutes, period word) to 24h.
// midnightAware enables "12am" -> 00:00 and "noon" handling.
func (p *Parser) clock(m []string, midnightAware bool) (int, int, bool) {
	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	period := strings.ToLower(m[3])
	isPM := period == "pm" || period == "evening" || period == "afternoon"
	isAM := period == "am" || period == "morning"

	switch {
	case midnightAware && period == "noon":
		hour, minute = p.periods.Noon, 0
	case isPM && hour < 12:
		hour += 12
	case midnightAware && isAM && hour == 12:
		hour = 0
	}

	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
