package chatbot

import (
	"regexp"
	"sort"
	"strings"

	"smart-todo-backend/internal/model"
)

// keywordRule is one (pattern, value) entry of an ordered rule list.
// Lists are sorted by keyword length descending at construction so the most
// specific phrase wins ("không gấp" must beat "gấp", "ngày mai" must beat
// "mai").
type keywordRule[T any] struct {
	keyword string
	value   T
}

func sortBySpecificity[T any](rules []keywordRule[T]) []keywordRule[T] {
	sort.SliceStable(rules, func(i, j int) bool {
		return len(rules[i].keyword) > len(rules[j].keyword)
	})
	return rules
}

// priorityRules returns the priority keyword list in tier order
// (Urgent, High, Low); anything unmatched is Medium. A rule whose keyword
// strictly contains an earlier rule's keyword is hoisted above it, so
// "không gấp" (Low) is checked before "gấp" (Urgent) would misfire.
func priorityRules() []keywordRule[model.Priority] {
	return hoistContaining([]keywordRule[model.Priority]{
		{"!!", model.PriorityUrgent},
		{"urgent", model.PriorityUrgent},
		{"khẩn", model.PriorityUrgent},
		{"cấp bách", model.PriorityUrgent},
		{"ngay lập tức", model.PriorityUrgent},
		{"gấp", model.PriorityUrgent},
		{"high", model.PriorityHigh},
		{"quan trọng", model.PriorityHigh},
		{"ưu tiên", model.PriorityHigh},
		{"cao", model.PriorityHigh},
		{"không gấp", model.PriorityLow},
		{"low", model.PriorityLow},
		{"thấp", model.PriorityLow},
	})
}

// hoistContaining moves any rule whose keyword strictly contains an earlier
// rule's keyword to just before that rule. Runs once at construction.
func hoistContaining[T any](rules []keywordRule[T]) []keywordRule[T] {
	for i := 0; i < len(rules); i++ {
		for j := i + 1; j < len(rules); j++ {
			if len(rules[j].keyword) > len(rules[i].keyword) &&
				strings.Contains(rules[j].keyword, rules[i].keyword) {
				hoisted := rules[j]
				copy(rules[i+1:j+1], rules[i:j])
				rules[i] = hoisted
			}
		}
	}
	return rules
}


// dayOffsetRules maps relative-day phrases to day offsets from today.
func dayOffsetRules() []keywordRule[int] {
	return sortBySpecificity([]keywordRule[int]{
		{"hôm nay", 0},
		{"today", 0},
		{"bây giờ", 0},
		{"ngay", 0},
		{"ngày mai", 1},
		{"sáng mai", 1},
		{"chiều mai", 1},
		{"tối mai", 1},
		{"tomorrow", 1},
		{"mai", 1},
		{"ngày kia", 2},
		{"tuần này", 3},
		{"tuần sau", 7},
		{"next week", 7},
		{"tháng sau", 30},
		{"next month", 30},
	})
}

// weekdayRules resolves weekday names to ISO weekday numbers (1=Monday).
func weekdayRules() []keywordRule[int] {
	return sortBySpecificity([]keywordRule[int]{
		{"thứ hai", 1}, {"thứ 2", 1}, {"monday", 1},
		{"thứ ba", 2}, {"thứ 3", 2}, {"tuesday", 2},
		{"thứ tư", 3}, {"thứ 4", 3}, {"wednesday", 3},
		{"thứ năm", 4}, {"thứ 5", 4}, {"thursday", 4},
		{"thứ sáu", 5}, {"thứ 6", 5}, {"friday", 5},
		{"thứ bảy", 6}, {"thứ 7", 6}, {"saturday", 6},
		{"chủ nhật", 7}, {"sunday", 7},
	})
}

// daypartRules resolves time-of-day words to a default hour.
func daypartRules() []keywordRule[int] {
	return sortBySpecificity([]keywordRule[int]{
		{"sáng", 9}, {"morning", 9},
		{"trưa", 12}, {"noon", 12},
		{"chiều", 14}, {"afternoon", 14},
		{"tối", 19}, {"evening", 19},
	})
}

// topicDurationRules provides duration defaults when the message names
// no explicit duration.
func topicDurationRules() []keywordRule[int] {
	return sortBySpecificity([]keywordRule[int]{
		{"học", 120}, {"đọc", 120}, {"viết", 120}, {"code", 120},
		{"study", 120}, {"read", 120}, {"write", 120},
		{"gọi", 30}, {"họp", 30}, {"meeting", 30}, {"call", 30},
		{"mua", 45}, {"đi", 45}, {"gửi", 45},
	})
}

// Title noise patterns, applied in order.
var (
	reLeadingAction = regexp.MustCompile(`(?i)^(thêm|tạo|add|create|làm|nhắc|reminder)\s+(task|công việc|việc|nhở)?\s*:?\s*`)
	reLeadingIntent = regexp.MustCompile(`(?i)^(tôi (cần|muốn)|i (want|need) to|muốn)\s+`)

	reTitleNoise = []*regexp.Regexp{
		// durations: "2 tiếng", "45 phút", "1 giờ rưỡi"
		regexp.MustCompile(`(?i)\s*\d+\s*(giờ|phút|tiếng|hour|minute|min)s?\s*(rưỡi|nữa)?`),
		// clock times: "lúc 14h", "vào 9h", bare "14h", "9:30", "7 pm"
		regexp.MustCompile(`(?i)\s*(lúc|vào|đến|at)\s*\d{1,2}(h\d*|:\d{2})?`),
		regexp.MustCompile(`(?i)\s*\d{1,2}h\d*\b`),
		regexp.MustCompile(`(?i)\s*\d{1,2}:\d{2}`),
		regexp.MustCompile(`(?i)\s*\d{1,2}\s*(am|pm)\b`),
		// numeric dates: "25/12", "3/1/2026"
		regexp.MustCompile(`\s*\d{1,2}/\d{1,2}(/\d{2,4})?`),
		// relative days and weekday names
		regexp.MustCompile(`(?i)\s*(hôm nay|ngày mai|sáng mai|chiều mai|tối mai|ngày kia|tuần này|tuần sau|tháng sau|next week|next month|today|tomorrow|bây giờ|mai)`),
		regexp.MustCompile(`(?i)\s*(thứ\s*(hai|ba|tư|năm|sáu|bảy|[2-7])|chủ nhật|monday|tuesday|wednesday|thursday|friday|saturday|sunday)`),
		// dayparts: "sáng", "chiều nay", "tối"
		regexp.MustCompile(`(?i)\s*(sáng|chiều|tối|trưa|morning|afternoon|evening|noon)\s*(mai|nay)?`),
		// priority words
		regexp.MustCompile(`(?i)\s*(không gấp|cấp bách|quan trọng|ưu tiên|urgent|khẩn|gấp|high|cao|low|thấp)`),
		regexp.MustCompile(`!+`),
	}

	reWhitespace = regexp.MustCompile(`\s+`)
)
