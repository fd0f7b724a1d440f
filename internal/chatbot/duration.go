package chatbot

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reDurCompound = regexp.MustCompile(`(\d+)\s*(?:giờ|tiếng|hours?)\s*(\d+)\s*(?:phút|minutes?|mins?)`)
	reDurHours    = regexp.MustCompile(`(\d+)\s*(?:giờ|tiếng|hours?)\s*(rưỡi)?`)
	reDurMinutes  = regexp.MustCompile(`(\d+)\s*(?:phút|minutes?|mins?)`)
)

// extractDuration returns the estimated duration in minutes.
// Search order: "N hours M minutes", "N hours [and-a-half]", "N minutes",
// topic-based defaults, then 60. The bare "Nh" form is deliberately NOT a
// duration here: it reads as a clock time ("14h") and belongs to the hour
// extractor.
func (p *Parser) extractDuration(lower string) int {
	if m := reDurCompound.FindStringSubmatch(lower); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		return hours*60 + minutes
	}

	if m := reDurHours.FindStringSubmatch(lower); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes := hours * 60
		if m[2] != "" { // "rưỡi" adds half an hour
			minutes += 30
		}
		return minutes
	}

	if m := reDurMinutes.FindStringSubmatch(lower); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		return minutes
	}

	for _, rule := range p.topics {
		if strings.Contains(lower, rule.keyword) {
			return rule.value
		}
	}

	return 60
}
