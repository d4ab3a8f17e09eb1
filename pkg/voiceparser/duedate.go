package voiceparser

import (
	"context"
	"time"

	"voice-task-management/pkg/datemath"
	pkgLog "voice-task-management/pkg/log"
)

// dueDateResolver tries the general phrase parser first and falls back to the
// deterministic relative-date chain only when it finds nothing.
type dueDateResolver struct {
	l        pkgLog.Logger
	primary  DatePhraseParser
	fallback *datemath.Parser
}

func (r dueDateResolver) resolve(ctx context.Context, u utterance, now time.Time) *time.Time {
	if t, ok := r.tryPrimary(ctx, u.original, now); ok {
		return utc(t)
	}

	if t, ok := r.fallback.Resolve(u.original, now); ok {
		return utc(t)
	}

	return nil
}

// tryPrimary never lets a parser failure escape: errors and panics both count as no match.
func (r dueDateResolver) tryPrimary(ctx context.Context, text string, now time.Time) (found time.Time, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			r.l.Warnf(ctx, "voiceparser.resolveDueDate: date phrase parser panicked: %v", rec)
			found, ok = time.Time{}, false
		}
	}()

	t, matched, err := r.primary.TryParse(text, now)
	if err != nil {
		r.l.Warnf(ctx, "voiceparser.resolveDueDate: date phrase parser failed, using fallback: %v", err)
		return time.Time{}, false
	}
	if !matched || t.IsZero() {
		return time.Time{}, false
	}
	return t, true
}

func utc(t time.Time) *time.Time {
	u := t.UTC()
	return &u
}
