package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/middleware"
	"smart-todo-backend/pkg/response"
)

// ChatCreate godoc
// @Summary     Create a task from a chat message
// @Description Parses a Vietnamese/English natural-language message into a task, persists it and returns a confirmation with an on-time prediction.
// @Tags        Chatbot
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/chatbot/message [POST]
func (h *handler) ChatCreate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ChatCreate(ctx, req.toInput(middleware.GetScope(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.ChatCreate: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// Predict godoc
// @Summary     Predict on-time completion
// @Description Predicts whether a task finishes on time, by task_id or from an ad-hoc payload (estimated_duration_min required on that path).
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body predictReq true "Prediction request"
// @Success     200 {object} predictResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Task not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/ai/predict [POST]
func (h *handler) Predict(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPredictReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Predict(ctx, req.toInput(middleware.GetScope(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Predict: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newPredictResp(output))
}

// ScheduleToday godoc
// @Summary     Plan today's schedule
// @Description Packs open tasks into today's time budget by priority score. Defaults: available_hours 8, start_hour 9.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body scheduleTodayReq true "Daily budget"
// @Success     200 {object} dayPlanResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/schedule/today [POST]
func (h *handler) ScheduleToday(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleTodayReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ScheduleToday(ctx, req.toInput(middleware.GetScope(c), h.defaults))
	if err != nil {
		h.l.Errorf(ctx, "uc.ScheduleToday: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDayPlanResp(output))
}

// ScheduleWeek godoc
// @Summary     Plan the weekly schedule
// @Description Spreads open tasks over Monday-Sunday in urgency tiers. Default hours_per_day 6.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body scheduleWeekReq true "Weekly budget"
// @Success     200 {object} weekPlanResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/schedule/week [POST]
func (h *handler) ScheduleWeek(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleWeekReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ScheduleWeek(ctx, req.toInput(middleware.GetScope(c), h.defaults))
	if err != nil {
		h.l.Errorf(ctx, "uc.ScheduleWeek: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newWeekPlanResp(output))
}

// ApplySchedule godoc
// @Summary     Apply a suggested schedule
// @Description Writes accepted slot end times back onto the tasks' due dates. Unknown task IDs are skipped.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body applyReq true "Accepted schedule entries"
// @Success     200 {object} applyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/schedule/apply [POST]
func (h *handler) ApplySchedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processApplyReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ApplySchedule(ctx, req.toInput(middleware.GetScope(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.ApplySchedule: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newApplyResp(output))
}

// Create godoc
// @Summary     Create a task
// @Description Creates a task from an explicit payload.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput(middleware.GetScope(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Lists the caller's tasks, open only unless include_completed is set.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       include_completed query bool false "Include completed tasks"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput(middleware.GetScope(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task by ID.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, detailInput(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}
