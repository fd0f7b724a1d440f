package chatbot

import (
	"strings"
	"time"
	"unicode/utf8"

	"smart-todo-backend/internal/model"
)

// Parser turns free-text chat messages into task drafts.
// All rule tables are built and sorted once at construction; Parse itself
// is pure over (message, now) and safe for concurrent use.
type Parser struct {
	priorities []keywordRule[model.Priority]
	dayOffsets []keywordRule[int]
	weekdays   []keywordRule[int]
	dayparts   []keywordRule[int]
	topics     []keywordRule[int]
}

// NewParser builds a parser with the default Vietnamese/English rule set.
func NewParser() *Parser {
	return &Parser{
		priorities: priorityRules(),
		dayOffsets: dayOffsetRules(),
		weekdays:   weekdayRules(),
		dayparts:   daypartRules(),
		topics:     topicDurationRules(),
	}
}

// Parse extracts a task draft from one chat message.
// It never fails: malformed input degrades to documented defaults.
func (p *Parser) Parse(message string, now time.Time) TaskDraft {
	message = strings.TrimSpace(message)
	if message == "" {
		due := now.AddDate(0, 0, 1)
		return TaskDraft{
			Title:                DefaultTitle,
			Priority:             model.PriorityMedium,
			DueAt:                &due,
			EstimatedDurationMin: 60,
		}
	}

	if utf8.RuneCountInString(message) > maxMessageLen {
		message = string([]rune(message)[:maxMessageLen])
	}

	lower := strings.ToLower(message)

	draft := TaskDraft{
		Title:                p.extractTitle(message),
		Description:          "Tạo từ chat: " + message,
		Priority:             p.extractPriority(lower),
		EstimatedDurationMin: p.extractDuration(lower),
	}

	due := p.extractDueDate(lower, now)
	// The draft contract: a computed deadline is never in the past.
	if due.Before(now) {
		due = due.AddDate(0, 0, 1)
	}
	draft.DueAt = &due

	start := p.extractStartTime(lower, now)
	draft.PlannedStartAt = &start

	return draft
}

// extractTitle strips action clauses, intent phrases, and every recognized
// time/priority token from anywhere in the message, then normalizes
// whitespace. Time and priority words are embedded mid-sentence in free
// text, so end-trimming alone is not enough.
func (p *Parser) extractTitle(message string) string {
	title := strings.TrimSpace(message)

	title = reLeadingAction.ReplaceAllString(title, "")
	title = reLeadingIntent.ReplaceAllString(title, "")

	for _, re := range reTitleNoise {
		title = re.ReplaceAllString(title, " ")
	}

	title = reWhitespace.ReplaceAllString(title, " ")
	title = strings.TrimSpace(title)
	title = strings.TrimRight(title, ".,;:!?")

	if utf8.RuneCountInString(title) < 2 {
		return DefaultTitle
	}

	runes := []rune(title)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}

// extractPriority walks the ordered keyword rules; first hit wins,
// no hit means Medium.
func (p *Parser) extractPriority(lower string) model.Priority {
	for _, rule := range p.priorities {
		if strings.Contains(lower, rule.keyword) {
			return rule.value
		}
	}
	return model.PriorityMedium
}
