package voiceparser

import "regexp"

const (
	monthNames   = `january|february|march|april|may|june|july|august|september|october|november|december`
	weekdayNames = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`
)

// removalRule rewrites every match of pattern with replacement.
type removalRule struct {
	name        string
	pattern     *regexp.Regexp
	replacement string
}

func remove(name, pattern string) removalRule {
	return removalRule{name: name, pattern: regexp.MustCompile(pattern)}
}

// tidy collapses whitespace and trims separators left dangling at the edges.
// Trailing sentence punctuation is kept unless a removal orphaned it.
var tidy = []removalRule{
	{name: "collapse-space", pattern: regexp.MustCompile(`\s+`), replacement: " "},
	remove("edge-separators", `^[\s,;:.!?\-]+|(?:[\s,;:\-]|\s[.!?]+)+$`),
}

// titleRules run in order; later rules assume the earlier noise is gone.
var titleRules = concat(
	[]removalRule{
		remove("date-relation", `(?i)\b(by|before|after|on|due|until)\s+\w+\s*\w*`),
		remove("date-relative-day", `(?i)\b(tomorrow|today|yesterday|next week|this week)\b`),
		remove("date-offset", `(?i)\b(in|within)\s+\d+\s+(days?|weeks?|months?|hours?)\b`),
		remove("date-day-month", `(?i)\b\d{1,2}(st|nd|rd|th)?\s+(`+monthNames+`)\b`),
		remove("date-month-day", `(?i)\b(`+monthNames+`)\s+\d{1,2}(st|nd|rd|th)?\b`),
		remove("date-weekday", `(?i)\b(`+weekdayNames+`)\b`),
		remove("date-next-this", `(?i)\b(next|this)\s+(`+weekdayNames+`|week|month)\b`),

		remove("priority-level", `(?i)\b(high|low|medium|critical)\s+priority\b`),
		remove("priority-urgency", `(?i)\b(urgent|important|critical)\b`),
		remove("priority-word", `(?i)\bpriority\b`),
	},
	tidy,
	[]removalRule{
		remove("framing-imperative", `(?i)^(create|add|make|new|remind me to|i need to|i have to|i should)\s+`),
		remove("framing-noun", `(?i)\s+(task|todo|reminder)$`),
	},
	tidy,
)

func concat(groups ...[]removalRule) []removalRule {
	var out []removalRule
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// applyRules folds rules over s.
func applyRules(s string, rules []removalRule) string {
	for _, rule := range rules {
		s = rule.pattern.ReplaceAllString(s, rule.replacement)
	}
	return s
}

// extractTitle strips date, priority and task-framing phrases from the
// original-case transcript. If nothing is left the transcript is returned as is.
func extractTitle(u utterance) string {
	if title := applyRules(u.original, titleRules); title != "" {
		return title
	}
	return u.original
}
