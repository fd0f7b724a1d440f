package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/middleware"
	"smart-todo-backend/internal/task"
)

// processChatReq binds and validates the chatbot message body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processPredictReq binds the prediction request body. Path selection
// (task_id vs ad-hoc) happens in the use case.
func (h *handler) processPredictReq(c *gin.Context) (predictReq, error) {
	var req predictReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processScheduleTodayReq binds the daily schedule body; absent fields keep
// their defaults.
func (h *handler) processScheduleTodayReq(c *gin.Context) (scheduleTodayReq, error) {
	var req scheduleTodayReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processScheduleWeekReq(c *gin.Context) (scheduleWeekReq, error) {
	var req scheduleWeekReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processApplyReq(c *gin.Context) (applyReq, error) {
	var req applyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// detailInput builds the detail request from the URI param and scope.
func detailInput(c *gin.Context) task.DetailInput {
	return task.DetailInput{
		Scope:  middleware.GetScope(c),
		TaskID: c.Param("id"),
	}
}
