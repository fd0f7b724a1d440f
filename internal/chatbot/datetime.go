package chatbot

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reHourPrefixed = regexp.MustCompile(`(?:lúc|vào)\s*(\d{1,2})h`)
	reHourSuffix   = regexp.MustCompile(`\b(\d{1,2})h(?:\d{2})?\b`)
	reHourAt       = regexp.MustCompile(`\b(?:lúc|vào|at)\s+(\d{1,2})\b`)
	reHourColon    = regexp.MustCompile(`\b(\d{1,2}):\d{2}\b`)
	reHourAmPm     = regexp.MustCompile(`\b(\d{1,2})\s*(am|pm)\b`)

	reNumericDate = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`)
)

// extractDueDate resolves the message's deadline against now.
// Precedence: explicit weekday name, relative-day keyword, numeric date,
// then today at the end of the working day. An explicit hour anywhere in
// the message overrides the computed hour but never the computed date.
func (p *Parser) extractDueDate(lower string, now time.Time) time.Time {
	hour, hasHour := p.extractHour(lower)
	if !hasHour {
		hour, hasHour = p.daypartHour(lower)
	}

	// (a) explicit weekday: next occurrence strictly after today
	for _, rule := range p.weekdays {
		if strings.Contains(lower, rule.keyword) {
			days := (rule.value - isoWeekday(now) + 7) % 7
			if days == 0 {
				days = 7
			}
			return atHour(now.AddDate(0, 0, days), pickHour(hour, hasHour, endOfDayHour))
		}
	}

	// (b) relative-day keyword
	for _, rule := range p.dayOffsets {
		if strings.Contains(lower, rule.keyword) {
			def := endOfDayHour
			if rule.value == 0 {
				def = endOfWorkHour
			}
			return atHour(now.AddDate(0, 0, rule.value), pickHour(hour, hasHour, def))
		}
	}

	// (c) numeric DD/MM[/YYYY] date
	if due, ok := p.numericDate(lower, now); ok {
		return atHour(due, pickHour(hour, hasHour, endOfDayHour))
	}

	// (d) default: today, end of working day
	return atHour(now, pickHour(hour, hasHour, endOfWorkHour))
}

// extractStartTime derives the planned start: daypart word, explicit hour,
// or one hour from now; pushed to tomorrow when the message says so.
func (p *Parser) extractStartTime(lower string, now time.Time) time.Time {
	var start time.Time
	if hour, ok := p.daypartHour(lower); ok {
		start = atHour(now, hour)
	} else if hour, ok := p.extractHour(lower); ok {
		start = atHour(now, hour)
	} else {
		start = now.Add(time.Hour).Truncate(time.Minute)
	}

	if strings.Contains(lower, "mai") || strings.Contains(lower, "tomorrow") {
		start = start.AddDate(0, 0, 1)
	}
	return start
}

// extractHour finds an explicit hour anywhere in the message.
// Pattern order matters; an out-of-range hour is rejected and the next
// pattern gets its chance.
func (p *Parser) extractHour(lower string) (int, bool) {
	if m := reHourPrefixed.FindStringSubmatch(lower); m != nil {
		if h, ok := validHour(m[1]); ok {
			return h, true
		}
	}
	if m := reHourSuffix.FindStringSubmatch(lower); m != nil {
		if h, ok := validHour(m[1]); ok {
			return h, true
		}
	}
	if m := reHourAt.FindStringSubmatch(lower); m != nil {
		if h, ok := validHour(m[1]); ok {
			return h, true
		}
	}
	if m := reHourColon.FindStringSubmatch(lower); m != nil {
		if h, ok := validHour(m[1]); ok {
			return h, true
		}
	}
	if m := reHourAmPm.FindStringSubmatch(lower); m != nil {
		h, _ := strconv.Atoi(m[1])
		if h >= 1 && h <= 12 {
			// 12pm is noon, 12am is midnight
			if m[2] == "pm" && h != 12 {
				h += 12
			} else if m[2] == "am" && h == 12 {
				h = 0
			}
			return h, true
		}
	}
	return 0, false
}

// daypartHour maps time-of-day words to their default hour.
func (p *Parser) daypartHour(lower string) (int, bool) {
	for _, rule := range p.dayparts {
		if strings.Contains(lower, rule.keyword) {
			return rule.value, true
		}
	}
	return 0, false
}

// numericDate parses DD/MM[/YYYY]. Two-digit years become 20YY;
// impossible day/month combinations are rejected.
func (p *Parser) numericDate(lower string, now time.Time) (time.Time, bool) {
	m := reNumericDate.FindStringSubmatch(lower)
	if m == nil {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year := now.Year()
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
	// time.Date normalizes 31/02 into March; treat that as invalid input.
	if date.Day() != day || int(date.Month()) != month {
		return time.Time{}, false
	}
	return date, true
}

func validHour(raw string) (int, bool) {
	h, err := strconv.Atoi(raw)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	return h, true
}

func pickHour(explicit int, hasExplicit bool, fallback int) int {
	if hasExplicit {
		return explicit
	}
	return fallback
}

// atHour pins t to the given hour. Hour 23 lands at 23:59 (end of day),
// everything else at the top of the hour.
func atHour(t time.Time, hour int) time.Time {
	minute := 0
	if hour == endOfDayHour {
		minute = 59
	}
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}

// isoWeekday is 1=Monday .. 7=Sunday.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd
}
