package triage

import (
	"regexp"
	"strings"
)

// UrgencyLevel is the ordinal severity of a triage turn.
type UrgencyLevel string

const (
	UrgencyLow       UrgencyLevel = "LOW"
	UrgencyMedium    UrgencyLevel = "MEDIUM"
	UrgencyHigh      UrgencyLevel = "HIGH"
	UrgencyEmergency UrgencyLevel = "EMERGENCY"
)

var urgencyRank = map[UrgencyLevel]int{
	UrgencyLow:       0,
	UrgencyMedium:    1,
	UrgencyHigh:      2,
	UrgencyEmergency: 3,
}

// AtLeast reports whether the level is equal to or above the given level.
func (u UrgencyLevel) AtLeast(other UrgencyLevel) bool {
	return urgencyRank[u] >= urgencyRank[other]
}

// IsValid reports whether the value is one of the four known levels.
func (u UrgencyLevel) IsValid() bool {
	_, ok := urgencyRank[u]
	return ok
}

// urgencyPattern finds "urgency" followed by a level within a few words,
// e.g. "Urgency: HIGH" or "the urgency level is MEDIUM".
var urgencyPattern = regexp.MustCompile(`(?i)urgency(?:\W+\w+){0,2}?\W+(low|medium|high|emergency)\b`)

// emergencyKeywords force an EMERGENCY classification when found in the raw
// user message, regardless of what the model replied.
var emergencyKeywords = []string{
	"can't breathe",
	"cannot breathe",
	"chest pain",
	"severe pain",
	"blood",
	"suicide",
	"kill myself",
	"seizure",
	"unconscious",
	"severe bleeding",
}

// ClassifyUrgency derives an urgency level from the model reply and the raw
// user message. The reply is scanned for an explicit urgency marker; the user
// message is scanned for emergency keywords, and any keyword hit overrides
// the marker unconditionally. Always returns one of the four levels.
func ClassifyUrgency(modelReply, rawUserMessage string) UrgencyLevel {
	level := UrgencyLow
	if m := urgencyPattern.FindStringSubmatch(modelReply); m != nil {
		level = UrgencyLevel(strings.ToUpper(m[1]))
	}

	lowered := strings.ToLower(rawUserMessage)
	for _, kw := range emergencyKeywords {
		if strings.Contains(lowered, kw) {
			return UrgencyEmergency
		}
	}

	return level
}
