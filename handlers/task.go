package handlers

import (
	"net/http"

	"fixly/models"
	"fixly/services/task"
	"fixly/utils"

	"github.com/gin-gonic/gin"
)

// TaskHandler exposes task endpoints.
type TaskHandler struct {
	TaskService task.TaskService
}

// CreateTaskHandler handles POST /api/tasks.
func (h *TaskHandler) CreateTaskHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var req task.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	created, err := h.TaskService.Create(userID, req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListTasksHandler handles GET /api/tasks. The caller sees their own tasks.
func (h *TaskHandler) ListTasksHandler(c *gin.Context) {
	tasks, err := h.TaskService.ListForUser(c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

// DeleteTaskHandler handles DELETE /api/tasks/:id.
func (h *TaskHandler) DeleteTaskHandler(c *gin.Context) {
	if err := h.TaskService.Delete(c.GetString("userID"), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// PriceBreakdownHandler handles GET /api/tasks/:id/price-breakdown.
// An optional ?currency= converts the amounts for display.
func (h *TaskHandler) PriceBreakdownHandler(c *gin.Context) {
	breakdown, err := h.TaskService.PriceBreakdown(c.Param("id"), c.Query("currency"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, breakdown)
}
