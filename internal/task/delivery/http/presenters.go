package http

import (
	"time"

	"smart-todo-backend/internal/ai"
	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/scheduler"
	"smart-todo-backend/internal/task"
	"smart-todo-backend/pkg/response"
)

// --- Request DTOs ---

type chatReq struct {
	Message string `json:"message" binding:"required"`
}

func (r chatReq) toInput(sc model.Scope) task.ChatCreateInput {
	return task.ChatCreateInput{Scope: sc, Message: r.Message}
}

type predictReq struct {
	TaskID               string `json:"task_id"`
	Priority             string `json:"priority"`
	EstimatedDurationMin *int   `json:"estimated_duration_min"`
	StartHour            *int   `json:"start_hour"`
	DayOfWeek            *int   `json:"day_of_week"`
}

func (r predictReq) toInput(sc model.Scope) task.PredictInput {
	return task.PredictInput{
		Scope:                sc,
		TaskID:               r.TaskID,
		Priority:             r.Priority,
		EstimatedDurationMin: r.EstimatedDurationMin,
		StartHour:            r.StartHour,
		DayOfWeek:            r.DayOfWeek,
	}
}

type scheduleTodayReq struct {
	AvailableHours *float64 `json:"available_hours"`
	StartHour      *int     `json:"start_hour"`
}

func (r scheduleTodayReq) toInput(sc model.Scope, d ScheduleDefaults) task.ScheduleTodayInput {
	in := task.ScheduleTodayInput{Scope: sc, AvailableHours: d.AvailableHours, StartHour: d.StartHour}
	if r.AvailableHours != nil {
		in.AvailableHours = *r.AvailableHours
	}
	if r.StartHour != nil {
		in.StartHour = *r.StartHour
	}
	return in
}

type scheduleWeekReq struct {
	HoursPerDay *float64 `json:"hours_per_day"`
}

func (r scheduleWeekReq) toInput(sc model.Scope, d ScheduleDefaults) task.ScheduleWeekInput {
	in := task.ScheduleWeekInput{Scope: sc, HoursPerDay: d.HoursPerDay}
	if r.HoursPerDay != nil {
		in.HoursPerDay = *r.HoursPerDay
	}
	return in
}

type applyEntryReq struct {
	TaskID  string            `json:"task_id" binding:"required"`
	EndTime response.DateTime `json:"end_time" binding:"required"`
}

type applyReq struct {
	Schedule []applyEntryReq `json:"schedule"`
}

func (r applyReq) toInput(sc model.Scope) task.ApplyScheduleInput {
	entries := make([]task.ApplyEntry, len(r.Schedule))
	for i, e := range r.Schedule {
		entries[i] = task.ApplyEntry{TaskID: e.TaskID, EndTime: time.Time(e.EndTime)}
	}
	return task.ApplyScheduleInput{Scope: sc, Entries: entries}
}

type createReq struct {
	Title                string             `json:"title" binding:"required,min=1,max=255"`
	Description          string             `json:"description" binding:"max=1000"`
	Priority             string             `json:"priority"`
	DueAt                *response.DateTime `json:"due_at"`
	RemindAt             *response.DateTime `json:"remind_at"`
	EstimatedDurationMin int                `json:"estimated_duration_min" binding:"omitempty,min=1"`
}

func (r createReq) toInput(sc model.Scope) task.CreateInput {
	in := task.CreateInput{
		Scope:                sc,
		Title:                r.Title,
		Description:          r.Description,
		Priority:             r.Priority,
		EstimatedDurationMin: r.EstimatedDurationMin,
	}
	if r.DueAt != nil {
		due := time.Time(*r.DueAt)
		in.DueAt = &due
	}
	if r.RemindAt != nil {
		remind := time.Time(*r.RemindAt)
		in.RemindAt = &remind
	}
	return in
}

type listReq struct {
	IncludeCompleted bool `form:"include_completed"`
}

func (r listReq) toInput(sc model.Scope) task.ListInput {
	return task.ListInput{Scope: sc, IncludeCompleted: r.IncludeCompleted}
}

// --- Response DTOs ---

type taskResp struct {
	ID                   string             `json:"id"`
	Title                string             `json:"title"`
	Description          string             `json:"description,omitempty"`
	Priority             model.Priority     `json:"priority"`
	DueAt                *response.DateTime `json:"due_at,omitempty"`
	RemindAt             *response.DateTime `json:"remind_at,omitempty"`
	PlannedStartAt       *response.DateTime `json:"planned_start_at,omitempty"`
	EstimatedDurationMin int                `json:"estimated_duration_min,omitempty"`
	Completed            bool               `json:"completed"`
	CreatedAt            response.DateTime  `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:                   t.ID,
		Title:                t.Title,
		Description:          t.Description,
		Priority:             t.Priority,
		DueAt:                toDateTime(t.DueAt),
		RemindAt:             toDateTime(t.RemindAt),
		PlannedStartAt:       toDateTime(t.PlannedStartAt),
		EstimatedDurationMin: t.EstimatedDurationMin,
		Completed:            t.Completed,
		CreatedAt:            response.DateTime(t.CreatedAt),
	}
}

func toDateTime(t *time.Time) *response.DateTime {
	if t == nil {
		return nil
	}
	dt := response.DateTime(*t)
	return &dt
}

type chatResp struct {
	Task       taskResp      `json:"task"`
	Response   string        `json:"response"`
	Prediction ai.Prediction `json:"prediction"`
}

func (h *handler) newChatResp(out task.ChatCreateOutput) chatResp {
	return chatResp{
		Task:       newTaskResp(out.Task),
		Response:   out.Reply,
		Prediction: out.Prediction,
	}
}

type predictResp struct {
	TaskID string `json:"task_id,omitempty"`
	ai.Prediction
}

func (h *handler) newPredictResp(out task.PredictOutput) predictResp {
	return predictResp{TaskID: out.TaskID, Prediction: out.Prediction}
}

type entryResp struct {
	TaskID        string             `json:"task_id"`
	Title         string             `json:"title"`
	Priority      model.Priority     `json:"priority"`
	Score         int                `json:"score"`
	StartTime     *response.DateTime `json:"start_time,omitempty"`
	EndTime       *response.DateTime `json:"end_time,omitempty"`
	DurationHours float64            `json:"duration_hours"`
	Reason        string             `json:"reason,omitempty"`
}

func newEntryResp(e scheduler.ScheduleEntry, withTimes bool) entryResp {
	resp := entryResp{
		TaskID:        e.TaskID,
		Title:         e.Title,
		Priority:      e.Priority,
		Score:         e.Score,
		DurationHours: e.DurationHours,
		Reason:        e.Reason,
	}
	if withTimes {
		resp.StartTime = toDateTime(&e.StartTime)
		resp.EndTime = toDateTime(&e.EndTime)
	}
	return resp
}

type dayPlanResp struct {
	Schedule       []entryResp `json:"schedule"`
	TotalHours     float64     `json:"total_hours"`
	AvailableHours float64     `json:"available_hours"`
	Utilization    float64     `json:"utilization"`
	FixedTasks     int         `json:"fixed_tasks"`
	FlexibleTasks  int         `json:"flexible_tasks"`
}

func (h *handler) newDayPlanResp(out task.ScheduleTodayOutput) dayPlanResp {
	entries := make([]entryResp, len(out.Plan.Schedule))
	for i, e := range out.Plan.Schedule {
		entries[i] = newEntryResp(e, true)
	}
	return dayPlanResp{
		Schedule:       entries,
		TotalHours:     out.Plan.TotalHours,
		AvailableHours: out.Plan.AvailableHours,
		Utilization:    out.Plan.Utilization,
		FixedTasks:     out.Plan.FixedTasks,
		FlexibleTasks:  out.Plan.FlexibleTasks,
	}
}

type weekDayResp struct {
	Day        string      `json:"day"`
	DayNumber  int         `json:"day_number"`
	Tasks      []entryResp `json:"tasks"`
	TotalHours float64     `json:"total_hours"`
}

type weekPlanResp struct {
	WeeklySchedule      []weekDayResp `json:"weekly_schedule"`
	TotalTasksScheduled int           `json:"total_tasks_scheduled"`
	TotalTasks          int           `json:"total_tasks"`
}

func (h *handler) newWeekPlanResp(out task.ScheduleWeekOutput) weekPlanResp {
	days := make([]weekDayResp, len(out.Plan.WeeklySchedule))
	for i, d := range out.Plan.WeeklySchedule {
		entries := make([]entryResp, len(d.Tasks))
		for j, e := range d.Tasks {
			entries[j] = newEntryResp(e, false)
		}
		days[i] = weekDayResp{
			Day:        d.Day,
			DayNumber:  d.DayNumber,
			Tasks:      entries,
			TotalHours: d.TotalHours,
		}
	}
	return weekPlanResp{
		WeeklySchedule:      days,
		TotalTasksScheduled: out.Plan.TotalTasksScheduled,
		TotalTasks:          out.Plan.TotalTasks,
	}
}

type applyResp struct {
	Success      bool `json:"success"`
	UpdatedCount int  `json:"updated_count"`
}

func (h *handler) newApplyResp(out task.ApplyScheduleOutput) applyResp {
	return applyResp{Success: true, UpdatedCount: out.UpdatedCount}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks, Total: len(tasks)}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}
