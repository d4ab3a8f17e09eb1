package voiceparser

import "regexp"

type priorityClass struct {
	priority Priority
	pattern  *regexp.Regexp
}

// Most urgent first; the first class with a match wins regardless of position.
var priorityClasses = []priorityClass{
	{PriorityCritical, regexp.MustCompile(`\b(critical|urgent|asap|immediately)\b`)},
	{PriorityHigh, regexp.MustCompile(`\b(high\s+priority|important|high)\b`)},
	{PriorityLow, regexp.MustCompile(`\b(low\s+priority|low|not urgent)\b`)},
}

func classifyPriority(u utterance) Priority {
	for _, c := range priorityClasses {
		if c.pattern.MatchString(u.lower) {
			return c.priority
		}
	}
	return PriorityMedium
}

type statusClass struct {
	status  Status
	pattern *regexp.Regexp
}

// In Progress is checked before Done.
var statusClasses = []statusClass{
	{StatusInProgress, regexp.MustCompile(`\b(in progress|working on|doing)\b`)},
	{StatusDone, regexp.MustCompile(`\b(done|completed|finished)\b`)},
}

func classifyStatus(u utterance) Status {
	for _, c := range statusClasses {
		if c.pattern.MatchString(u.lower) {
			return c.status
		}
	}
	return StatusToDo
}
