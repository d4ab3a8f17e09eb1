package datemath

import "errors"

// DayPeriods maps spoken day periods to wall-clock hours.
type DayPeriods struct {
	Morning   int
	Afternoon int
	Evening   int
	Noon      int
}

// DefaultDayPeriods returns morning 09:00, afternoon 14:00, evening 18:00, noon 12:00.
func DefaultDayPeriods() DayPeriods {
	return DayPeriods{
		Morning:   9,
		Afternoon: 14,
		Evening:   18,
		Noon:      12,
	}
}

// Option customises a Parser.
type Option func(*Parser)

// WithDayPeriods overrides the hours used for morning/afternoon/evening/noon.
func WithDayPeriods(periods DayPeriods) Option {
	return func(p *Parser) {
		p.periods = periods
	}
}

var (
	ErrUnknownPhrase = errors.New("unknown relative date phrase")
	ErrInvalidAmount = errors.New("invalid duration format")
)
