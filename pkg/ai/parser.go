package ai

import (
	"regexp"
	"strings"

	"github.com/nethmalgunawardhana/AgriConnect-Backend2/entities"
)

// The model is asked for numbered entries of the form
//
//	1. [Crop Name]
//	Reason: ...
//	Best Planting Month: ...
//	Estimated Yield: ...
//	Care Instructions: ...
//
// but the reply is free text and anything about it may be missing or
// mangled. Each labeled field is extracted independently; a malformed
// segment is dropped, never an error.
var (
	sectionMarker = regexp.MustCompile(`(?m)^\d+\.`)
	cropNameRe    = regexp.MustCompile(`^\s*([^\n]+)`)
	reasonRe      = regexp.MustCompile(`(?i)Reason:\s*([^\n]+)`)
	plantingRe    = regexp.MustCompile(`(?i)Best Planting Month:\s*([^\n]+)`)
	yieldRe       = regexp.MustCompile(`(?i)Estimated Yield:\s*([^\n]+)`)
	careRe        = regexp.MustCompile(`(?i)Care Instructions:\s*([^\n]+)`)
)

// ParseSuggestions extracts structured crop suggestions from generated text,
// in order of appearance. A segment survives only with a non-empty crop name
// and at least one non-empty descriptive field.
func ParseSuggestions(text string) []entities.CropSuggestion {
	suggestions := []entities.CropSuggestion{}

	for _, section := range sectionMarker.Split(text, -1) {
		if strings.TrimSpace(section) == "" {
			continue
		}

		m := cropNameRe.FindStringSubmatch(section)
		if m == nil {
			continue
		}

		s := entities.CropSuggestion{
			CropName:          strings.TrimSpace(m[1]),
			Reason:            firstGroup(reasonRe, section),
			BestPlantingMonth: firstGroup(plantingRe, section),
			EstimatedYield:    firstGroup(yieldRe, section),
			CareInstructions:  firstGroup(careRe, section),
		}

		if s.CropName == "" {
			continue
		}
		if s.Reason == "" && s.BestPlantingMonth == "" && s.EstimatedYield == "" && s.CareInstructions == "" {
			continue
		}
		suggestions = append(suggestions, s)
	}

	return suggestions
}

func firstGroup(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
