package triage

import (
	"regexp"
	"strings"
)

// DefaultSpecialist is returned when no rule matches. It is a routing
// default, not an urgency signal.
const DefaultSpecialist = "emergency medicine"

var (
	pregnancyPattern = regexp.MustCompile(`(?i)pregnan|prenatal|\blabor\b|contraction|gynecolog|obstetric|miscarriage|bleeding[^.]*pregnan`)
	cardiacPattern   = regexp.MustCompile(`(?i)\bheart\b|cardiac|chest pain|cardiovascular|angina`)
)

// KnownSpecialists is the fixed set of specialist labels the platform books
// against. Order matters for InferSpecialist rule 3.
var KnownSpecialists = []string{
	"gynecologist",
	"cardiologist",
	"neurologist",
	"dermatologist",
	"orthopedist",
	"pediatrician",
	"psychiatrist",
	"general physician",
	"ent specialist",
	"pulmonologist",
	"gastroenterologist",
	"endocrinologist",
	"rheumatologist",
	"urologist",
	"ophthalmologist",
}

// InferSpecialist maps free text to a specialist label. Rules are evaluated
// in order and the first match wins: pregnancy/obstetric vocabulary, cardiac
// vocabulary, a literal specialist name, then the default.
func InferSpecialist(text string) string {
	if pregnancyPattern.MatchString(text) {
		return "gynecologist"
	}
	if cardiacPattern.MatchString(text) {
		return "cardiologist"
	}

	lowered := strings.ToLower(text)
	for _, name := range KnownSpecialists {
		if strings.Contains(lowered, name) {
			return name
		}
	}

	return DefaultSpecialist
}

// IsKnownSpecialist reports whether the label is in the bookable set.
func IsKnownSpecialist(label string) bool {
	lowered := strings.ToLower(label)
	for _, name := range KnownSpecialists {
		if name == lowered {
			return true
		}
	}
	return lowered == DefaultSpecialist
}
