package voiceparser

import (
	"regexp"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"voice-task-management/pkg/datemath"
)

// DatePhraseParser finds a calendar date/time expression anywhere in text and
// resolves it against anchor. ok is false when nothing was found.
type DatePhraseParser interface {
	TryParse(text string, anchor time.Time) (t time.Time, ok bool, err error)
}

// NopParser never finds anything, leaving only the relative-date fallback.
type NopParser struct{}

func (NopParser) TryParse(string, time.Time) (time.Time, bool, error) {
	return time.Time{}, false, nil
}

// twelveAM matches "12am", "12 a.m." and "12:30am"; when reads all of them as noon.
var twelveAM = regexp.MustCompile(`(?i)(?:^|\W)12(?::[0-5]\d)?\s*(?:a\.m\.|a\.|am?)(?:\W|$)`)

// WhenParser adapts github.com/olebedev/when (English and common rules).
type WhenParser struct {
	w   *when.Parser
	loc *time.Location
}

// NewWhenParser builds a parser that resolves in loc and maps day periods
// (morning, afternoon, evening, noon) to the given hours.
func NewWhenParser(loc *time.Location, periods datemath.DayPeriods) *WhenParser {
	if loc == nil {
		loc = time.UTC
	}

	w := when.New(&rules.Options{
		Distance:     5,
		MatchByOrder: true,
		Morning:      periods.Morning,
		Afternoon:    periods.Afternoon,
		Evening:      periods.Evening,
		Noon:         periods.Noon,
	})
	w.Add(en.All...)
	w.Add(common.All...)

	return &WhenParser{w: w, loc: loc}
}

func (p *WhenParser) TryParse(text string, anchor time.Time) (time.Time, bool, error) {
	r, err := p.w.Parse(text, anchor.In(p.loc))
	if err != nil {
		return time.Time{}, false, err
	}
	if r == nil {
		return time.Time{}, false, nil
	}
	t := r.Time
	if t.Hour() == 12 && twelveAM.MatchString(r.Text) {
		t = time.Date(t.Year(), t.Month(), t.Day(), 0, t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	}
	return t, true, nil
}
