package scheduler

import (
	"fmt"
	"sort"
	"time"

	"smart-todo-backend/internal/model"
)

// Scheduler plans a snapshot of open tasks. It holds no state across
// invocations: every call recomputes from the snapshot and now.
type Scheduler struct {
	scorer *Scorer
}

// New creates a scheduler backed by the given scorer.
func New(scorer *Scorer) *Scheduler {
	return &Scheduler{scorer: scorer}
}

type scoredTask struct {
	task  model.Task
	score int
	hours float64
}

// ScheduleToday packs open tasks into today's time budget.
//
// Tasks with a future reminder are pinned to their reminder slot; the rest
// are ranked by priority score and packed greedily from the start hour.
// A task that does not fit is skipped, not queued: lower-scored tasks after
// it still get a chance at the remaining budget.
func (s *Scheduler) ScheduleToday(tasks []model.Task, now time.Time, availableHours float64, startHour int) (DayPlan, error) {
	if availableHours <= 0 {
		return DayPlan{}, fmt.Errorf("%w: got %v", ErrInvalidAvailableHours, availableHours)
	}
	if startHour < 0 || startHour > 23 {
		return DayPlan{}, fmt.Errorf("%w: got %d", ErrInvalidStartHour, startHour)
	}

	var fixed, flexible []model.Task
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		if t.RemindAt != nil && t.RemindAt.After(now) {
			fixed = append(fixed, t)
		} else {
			flexible = append(flexible, t)
		}
	}

	scored := make([]scoredTask, 0, len(flexible))
	for _, t := range flexible {
		scored = append(scored, scoredTask{
			task:  t,
			score: s.scorer.Score(t, now),
			hours: estimateHours(t.Priority),
		})
	}
	// Stable: ties keep their original relative order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	// Fixed tasks keep their reminder time verbatim when it falls inside
	// today's window; outside the window they are silently left out.
	windowEnd := now.Add(time.Duration(availableHours * float64(time.Hour)))
	fixedEntries := make([]ScheduleEntry, 0, len(fixed))
	for _, t := range fixed {
		remind := *t.RemindAt
		if remind.Before(now) || !remind.Before(windowEnd) {
			continue
		}
		hours := estimateHours(t.Priority)
		fixedEntries = append(fixedEntries, ScheduleEntry{
			TaskID:        t.ID,
			Title:         t.Title,
			Priority:      t.Priority,
			Score:         100, // pinned slot outranks everything
			StartTime:     remind.Truncate(time.Minute),
			EndTime:       remind.Add(time.Duration(hours * float64(time.Hour))).Truncate(time.Minute),
			DurationHours: hours,
			Reason:        "Lịch cố định (nhắc lúc " + remind.Format("15:04") + ")",
		})
	}

	cursor := packingStart(now, startHour)

	var flexEntries []ScheduleEntry
	totalHours := 0.0
	for _, item := range scored {
		if totalHours+item.hours > availableHours {
			continue // skip, keep trying smaller tasks
		}
		end := cursor.Add(time.Duration(item.hours * float64(time.Hour)))
		flexEntries = append(flexEntries, ScheduleEntry{
			TaskID:        item.task.ID,
			Title:         item.task.Title,
			Priority:      item.task.Priority,
			Score:         item.score,
			StartTime:     cursor,
			EndTime:       end,
			DurationHours: item.hours,
			Reason:        s.scorer.Reason(item.task, item.score, now),
		})
		cursor = end
		totalHours += item.hours
	}

	all := append(fixedEntries, flexEntries...)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].StartTime.Before(all[j].StartTime)
	})

	utilization := 0.0
	if availableHours > 0 {
		utilization = totalHours / availableHours * 100
	}

	return DayPlan{
		Schedule:       all,
		TotalHours:     totalHours,
		AvailableHours: availableHours,
		Utilization:    utilization,
		FixedTasks:     len(fixedEntries),
		FlexibleTasks:  len(flexEntries),
	}, nil
}

// packingStart picks where flexible packing begins: the caller's start hour
// today, or the top of the next full hour when that has already passed.
func packingStart(now time.Time, startHour int) time.Time {
	start := time.Date(now.Year(), now.Month(), now.Day(), startHour, 0, 0, 0, now.Location())
	if !start.After(now) {
		start = now.Truncate(time.Hour).Add(time.Hour)
	}
	return start
}

// ScheduleWeek spreads open tasks over Monday-Sunday, hoursPerDay each.
//
// Tasks are bucketed into urgency tiers by score and consumed in tier
// order. A task that does not fit the current day's remaining budget ends
// that day; it becomes the first candidate for the next day. A smaller
// later task could fit the leftover budget, but filling it would reorder
// tasks across urgency tiers, so the gap is left unused.
func (s *Scheduler) ScheduleWeek(tasks []model.Task, now time.Time, hoursPerDay float64) (WeekPlan, error) {
	if hoursPerDay <= 0 {
		return WeekPlan{}, fmt.Errorf("%w: got %v", ErrInvalidHoursPerDay, hoursPerDay)
	}

	var urgent, high, medium, low []scoredTask
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		item := scoredTask{
			task:  t,
			score: s.scorer.Score(t, now),
			hours: estimateHours(t.Priority),
		}
		switch {
		case item.score >= tierUrgentMin:
			urgent = append(urgent, item)
		case item.score >= tierHighMin:
			high = append(high, item)
		case item.score >= tierMediumMin:
			medium = append(medium, item)
		default:
			low = append(low, item)
		}
	}

	queue := make([]scoredTask, 0, len(urgent)+len(high)+len(medium)+len(low))
	queue = append(queue, urgent...)
	queue = append(queue, high...)
	queue = append(queue, medium...)
	queue = append(queue, low...)

	week := make([]WeekDayPlan, 0, len(weekDayNames))
	taskIndex := 0

	for dayNum, dayName := range weekDayNames {
		day := WeekDayPlan{Day: dayName, DayNumber: dayNum}

		for taskIndex < len(queue) {
			item := queue[taskIndex]
			if day.TotalHours+item.hours > hoursPerDay {
				break // day ends; this task leads tomorrow's allocation
			}
			day.Tasks = append(day.Tasks, ScheduleEntry{
				TaskID:        item.task.ID,
				Title:         item.task.Title,
				Priority:      item.task.Priority,
				Score:         item.score,
				DurationHours: item.hours,
			})
			day.TotalHours += item.hours
			taskIndex++
		}

		week = append(week, day)
	}

	return WeekPlan{
		WeeklySchedule:      week,
		TotalTasksScheduled: taskIndex,
		TotalTasks:          len(queue),
	}, nil
}
