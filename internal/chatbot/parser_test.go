package chatbot_test

import (
	"strings"
	"testing"
	"time"

	"smart-todo-backend/internal/chatbot"
	"smart-todo-backend/internal/model"
)

// Tuesday morning, well before the end-of-workday default.
var tueMorning = time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)

func TestParseStudySessionTomorrowAfternoon(t *testing.T) {
	p := chatbot.NewParser()

	draft := p.Parse("Thêm task học Python 2 tiếng chiều mai", tueMorning)

	if !strings.Contains(draft.Title, "học Python") && !strings.Contains(draft.Title, "Học Python") {
		t.Errorf("expected title to keep the subject, got %q", draft.Title)
	}
	for _, leftover := range []string{"tiếng", "chiều", "mai", "task", "Thêm"} {
		if strings.Contains(draft.Title, leftover) {
			t.Errorf("title %q still contains noise token %q", draft.Title, leftover)
		}
	}
	if draft.EstimatedDurationMin != 120 {
		t.Errorf("expected 120 minutes, got %d", draft.EstimatedDurationMin)
	}
	if draft.Priority != model.PriorityMedium {
		t.Errorf("expected Medium, got %s", draft.Priority)
	}
	if draft.DueAt == nil {
		t.Fatalf("expected a due date")
	}
	wantDay := tueMorning.AddDate(0, 0, 1)
	if draft.DueAt.Day() != wantDay.Day() || draft.DueAt.Month() != wantDay.Month() {
		t.Errorf("expected due tomorrow, got %v", draft.DueAt)
	}
	if draft.DueAt.Hour() != 14 {
		t.Errorf("expected afternoon default hour 14, got %d", draft.DueAt.Hour())
	}
}

func TestParseUrgentMeetingToday(t *testing.T) {
	p := chatbot.NewParser()

	draft := p.Parse("Tạo task họp team urgent 1 giờ hôm nay", tueMorning)

	if draft.Priority != model.PriorityUrgent {
		t.Errorf("expected Urgent, got %s", draft.Priority)
	}
	if draft.EstimatedDurationMin != 60 {
		t.Errorf("expected explicit 60 minutes to beat the meeting default, got %d", draft.EstimatedDurationMin)
	}
	if draft.DueAt == nil {
		t.Fatalf("expected a due date")
	}
	if draft.DueAt.Day() != tueMorning.Day() {
		t.Errorf("expected due today, got %v", draft.DueAt)
	}
	if draft.DueAt.Hour() != 18 {
		t.Errorf("expected end-of-workday default 18, got %d", draft.DueAt.Hour())
	}
	if got := strings.ToLower(draft.Title); !strings.Contains(got, "họp team") {
		t.Errorf("expected title to keep the meeting subject, got %q", draft.Title)
	}
}

func TestParseDefaultsForEmptyInput(t *testing.T) {
	p := chatbot.NewParser()

	for _, msg := range []string{"", "   ", "\t\n"} {
		draft := p.Parse(msg, tueMorning)

		if draft.Title != chatbot.DefaultTitle {
			t.Errorf("Parse(%q): expected placeholder title, got %q", msg, draft.Title)
		}
		if draft.Priority != model.PriorityMedium {
			t.Errorf("Parse(%q): expected Medium, got %s", msg, draft.Priority)
		}
		if draft.DueAt == nil || !draft.DueAt.After(tueMorning) {
			t.Errorf("Parse(%q): expected future due date, got %v", msg, draft.DueAt)
		}
	}
}

func TestParseOverlengthInputTruncated(t *testing.T) {
	p := chatbot.NewParser()

	long := "học " + strings.Repeat("a", 600) + " gấp"
	draft := p.Parse(long, tueMorning)

	// The priority marker sits beyond the 500-rune cut, so it must not fire.
	if draft.Priority != model.PriorityMedium {
		t.Errorf("expected truncation to drop trailing priority marker, got %s", draft.Priority)
	}
}

func TestParsePriorityKeywords(t *testing.T) {
	p := chatbot.NewParser()

	cases := []struct {
		message string
		want    model.Priority
	}{
		{"làm báo cáo gấp", model.PriorityUrgent},
		{"việc này khẩn", model.PriorityUrgent},
		{"chuẩn bị slide cấp bách", model.PriorityUrgent},
		{"review tài liệu quan trọng", model.PriorityHigh},
		{"task ưu tiên cho sếp", model.PriorityHigh},
		{"dọn bàn làm việc, không gấp", model.PriorityLow},
		{"đọc tin tức low", model.PriorityLow},
		{"mua cà phê", model.PriorityMedium},
	}

	for _, c := range cases {
		t.Run(c.message, func(t *testing.T) {
			if got := p.Parse(c.message, tueMorning).Priority; got != c.want {
				t.Errorf("Parse(%q).Priority = %s, want %s", c.message, got, c.want)
			}
		})
	}
}

func TestParseDurations(t *testing.T) {
	p := chatbot.NewParser()

	cases := []struct {
		message string
		want    int
	}{
		{"ôn bài 2 tiếng 15 phút", 135},
		{"chạy bộ 1 giờ rưỡi", 90},
		{"nghỉ 45 phút", 45},
		{"học bài thi cuối kỳ", 120},      // study default
		{"gọi điện cho khách", 30},        // call default
		{"mua quà sinh nhật", 45},         // errand default
		{"dọn dẹp nhà cửa", 60},           // generic default
		{"meeting 30 phút với team", 30},  // explicit beats topic
	}

	for _, c := range cases {
		t.Run(c.message, func(t *testing.T) {
			if got := p.Parse(c.message, tueMorning).EstimatedDurationMin; got != c.want {
				t.Errorf("Parse(%q) duration = %d, want %d", c.message, got, c.want)
			}
		})
	}
}

func TestParseDueDates(t *testing.T) {
	p := chatbot.NewParser()

	t.Run("Weekday Name Strictly After Today", func(t *testing.T) {
		// tueMorning is a Tuesday; "thứ 2" must land next Monday, six days out.
		draft := p.Parse("nộp báo cáo thứ 2", tueMorning)
		if draft.DueAt == nil {
			t.Fatal("expected due date")
		}
		want := tueMorning.AddDate(0, 0, 6)
		if draft.DueAt.Day() != want.Day() {
			t.Errorf("expected next Monday (%v), got %v", want, draft.DueAt)
		}
		if draft.DueAt.Hour() != 23 || draft.DueAt.Minute() != 59 {
			t.Errorf("expected end-of-day default, got %v", draft.DueAt)
		}
	})

	t.Run("Same Weekday Goes To Next Week", func(t *testing.T) {
		draft := p.Parse("họp định kỳ thứ 3", tueMorning) // today is thứ 3
		want := tueMorning.AddDate(0, 0, 7)
		if draft.DueAt.Day() != want.Day() {
			t.Errorf("expected a full week out (%v), got %v", want, draft.DueAt)
		}
	})

	t.Run("Weekday With Explicit Hour", func(t *testing.T) {
		draft := p.Parse("họp thứ 6 lúc 9h", tueMorning)
		if draft.DueAt.Hour() != 9 {
			t.Errorf("expected explicit hour 9, got %d", draft.DueAt.Hour())
		}
		want := tueMorning.AddDate(0, 0, 3) // Friday
		if draft.DueAt.Day() != want.Day() {
			t.Errorf("expected Friday (%v), got %v", want, draft.DueAt)
		}
	})

	t.Run("Numeric Date", func(t *testing.T) {
		draft := p.Parse("nộp thuế 25/12", tueMorning)
		if draft.DueAt.Day() != 25 || draft.DueAt.Month() != time.December {
			t.Errorf("expected 25 Dec, got %v", draft.DueAt)
		}
	})

	t.Run("Numeric Date With Short Year", func(t *testing.T) {
		draft := p.Parse("gia hạn hợp đồng 15/01/27", tueMorning)
		if draft.DueAt.Year() != 2027 {
			t.Errorf("expected year 2027, got %v", draft.DueAt)
		}
	})

	t.Run("Invalid Numeric Date Ignored", func(t *testing.T) {
		draft := p.Parse("kiểm tra 31/02", tueMorning)
		// Falls through to the today-18:00 default.
		if draft.DueAt.Day() != tueMorning.Day() || draft.DueAt.Hour() != 18 {
			t.Errorf("expected today 18:00 fallback, got %v", draft.DueAt)
		}
	})

	t.Run("Relative Offsets", func(t *testing.T) {
		cases := []struct {
			message  string
			wantDays int
			wantHour int
		}{
			{"dọn kho ngày kia", 2, 23},
			{"lên kế hoạch tuần sau", 7, 23},
			{"đặt vé tháng sau", 30, 23},
			{"viết nháp tomorrow", 1, 23},
		}
		for _, c := range cases {
			draft := p.Parse(c.message, tueMorning)
			want := tueMorning.AddDate(0, 0, c.wantDays)
			if draft.DueAt.Day() != want.Day() || draft.DueAt.Month() != want.Month() {
				t.Errorf("Parse(%q): expected day %v, got %v", c.message, want, draft.DueAt)
			}
			if draft.DueAt.Hour() != c.wantHour {
				t.Errorf("Parse(%q): expected hour %d, got %d", c.message, c.wantHour, draft.DueAt.Hour())
			}
		}
	})

	t.Run("AmPm Hours", func(t *testing.T) {
		draft := p.Parse("ăn tối với khách 7 pm mai", tueMorning)
		if draft.DueAt.Hour() != 19 {
			t.Errorf("expected 19h from '7 pm', got %d", draft.DueAt.Hour())
		}

		draft = p.Parse("chuẩn bị demo 12 pm mai", tueMorning)
		if draft.DueAt.Hour() != 12 {
			t.Errorf("expected noon from '12 pm', got %d", draft.DueAt.Hour())
		}

		draft = p.Parse("đón khách 12 am mai", tueMorning)
		if draft.DueAt.Hour() != 0 {
			t.Errorf("expected midnight from '12 am', got %d", draft.DueAt.Hour())
		}
	})

	t.Run("Out Of Range Hour Rejected", func(t *testing.T) {
		draft := p.Parse("kiểm tra backup lúc 99h hôm nay", tueMorning)
		// 99 fails the range check; the daily default applies instead.
		if draft.DueAt.Hour() != 18 {
			t.Errorf("expected default hour 18 after rejecting 99, got %d", draft.DueAt.Hour())
		}
	})

	t.Run("Word Ending In At Is Not An Hour Marker", func(t *testing.T) {
		draft := p.Parse("chat với team 3 tiếng hôm nay", tueMorning)
		// "chat 3" must not read as "at 3"; the daily default applies.
		if draft.DueAt.Hour() != 18 {
			t.Errorf("expected default hour 18, got %d", draft.DueAt.Hour())
		}
		if draft.EstimatedDurationMin != 180 {
			t.Errorf("expected 180 from '3 tiếng', got %d", draft.EstimatedDurationMin)
		}
	})

	t.Run("Due Date Never In The Past", func(t *testing.T) {
		lateEvening := time.Date(2026, 3, 10, 21, 0, 0, 0, time.Local)
		draft := p.Parse("tổng hợp số liệu hôm nay", lateEvening)
		if !draft.DueAt.After(lateEvening) {
			t.Errorf("expected due date pushed forward, got %v (now %v)", draft.DueAt, lateEvening)
		}
	})
}

func TestParseDeterministic(t *testing.T) {
	p := chatbot.NewParser()

	msg := "Làm báo cáo 3 tiếng vào 14h ngày mai"
	a := p.Parse(msg, tueMorning)
	b := p.Parse(msg, tueMorning)

	if a.Title != b.Title || a.Priority != b.Priority ||
		a.EstimatedDurationMin != b.EstimatedDurationMin ||
		!a.DueAt.Equal(*b.DueAt) {
		t.Errorf("expected identical drafts, got %+v vs %+v", a, b)
	}
	if a.EstimatedDurationMin != 180 {
		t.Errorf("expected 180 minutes, got %d", a.EstimatedDurationMin)
	}
	if a.DueAt.Hour() != 14 {
		t.Errorf("expected explicit 14h, got %d", a.DueAt.Hour())
	}
}

func TestParseTitleFallback(t *testing.T) {
	p := chatbot.NewParser()

	// Everything in the message is noise; fewer than two title runes remain.
	draft := p.Parse("gấp hôm nay 2 tiếng", tueMorning)
	if draft.Title != chatbot.DefaultTitle {
		t.Errorf("expected placeholder title, got %q", draft.Title)
	}
}
