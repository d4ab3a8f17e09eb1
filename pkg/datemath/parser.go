package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const DateFormat = "2006-01-02"

var (
	inDurationRe  = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	nextWeekdayRe = regexp.MustCompile(`^next (monday|tuesday|wednesday|thursday|friday|saturday|sunday)$`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// Parser does calendar arithmetic in a fixed timezone. Parse turns a short
// relative phrase into a day; Resolve scans a whole transcript for the
// relative-date patterns a general phrase parser may miss.
type Parser struct {
	location *time.Location
	periods  DayPeriods
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string, opts ...Option) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	p := &Parser{location: loc, periods: DefaultDayPeriods()}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Location returns the timezone all arithmetic is done in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative date phrase ("today", "tomorrow", "in 2 weeks",
// "next friday") or an absolute YYYY-MM-DD date into the start of that day.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.Join(strings.Fields(strings.ToLower(relative)), " ")

	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.In(p.location).AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.In(p.location).AddDate(0, 0, -1)), nil
	}

	if day, err := time.ParseInLocation(DateFormat, relative, p.location); err == nil {
		return day, nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	return baseTime, fmt.Errorf("%w: %q", ErrUnknownPhrase, relative)
}

// DayWindow returns [start, end] of the day the phrase refers to.
func (p *Parser) DayWindow(relative string, baseTime time.Time) (time.Time, time.Time, error) {
	start, err := p.Parse(relative, baseTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, p.EndOfDay(start), nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("%w: %q", ErrInvalidAmount, relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return baseTime, fmt.Errorf("%w: %q", ErrInvalidAmount, relative)
	}
	local := baseTime.In(p.location)

	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(local.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(local.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(local.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	matches := nextWeekdayRe.FindStringSubmatch(relative)
	if len(matches) != 2 {
		return baseTime, fmt.Errorf("%w: unknown weekday in %q", ErrUnknownPhrase, relative)
	}

	local := baseTime.In(p.location)
	return p.startOfDay(local.AddDate(0, 0, daysUntilNext(local.Weekday(), weekdays[matches[1]]))), nil
}

// daysUntilNext returns the distance to target strictly after current (1..7).
func daysUntilNext(current, target time.Weekday) int {
	daysUntil := int(target - current)
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return daysUntil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// at sets the wall clock of t's day in the parser's timezone.
func (p *Parser) at(t time.Time, hour, minute int) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
