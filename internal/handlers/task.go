package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hotross/HomeMaintenanceTracker/internal/middleware"
	"github.com/hotross/HomeMaintenanceTracker/internal/models"
	"github.com/hotross/HomeMaintenanceTracker/internal/schedule"
	"github.com/hotross/HomeMaintenanceTracker/internal/service"
)

type TaskHandler struct {
	tasks *service.TaskService
	now   func() time.Time
}

func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks, now: time.Now}
}

type TaskRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	Description  string `json:"description" binding:"omitempty,max=500"`
	IntervalDays int    `json:"interval_days" binding:"required,min=1"`
}

func (r *TaskRequest) toInput() service.TaskInput {
	return service.TaskInput{
		Name:         r.Name,
		Description:  r.Description,
		IntervalDays: r.IntervalDays,
	}
}

// TaskResponse is the task record plus its due state, derived against the
// current clock on every read.
type TaskResponse struct {
	models.MaintenanceTask
	NextDue   time.Time       `json:"next_due"`
	IsOverdue bool            `json:"is_overdue"`
	IsDueSoon bool            `json:"is_due_soon"`
	DueStatus schedule.Status `json:"due_status"`
}

func (h *TaskHandler) toResponse(task models.MaintenanceTask) TaskResponse {
	now := h.now()
	return TaskResponse{
		MaintenanceTask: task,
		NextDue:         schedule.NextDue(task.LastCompleted, task.IntervalDays, now),
		IsOverdue:       schedule.IsOverdue(task.LastCompleted, task.IntervalDays, now),
		IsDueSoon:       schedule.IsDueSoon(task.LastCompleted, task.IntervalDays, now, schedule.DefaultHorizonDays),
		DueStatus:       schedule.Classify(task.LastCompleted, task.IntervalDays, now),
	}
}

func (h *TaskHandler) toResponses(tasks []models.MaintenanceTask) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = h.toResponse(task)
	}
	return responses
}

// GET /api/v1/tasks
func (h *TaskHandler) ListForUser(c *gin.Context) {
	userID := middleware.GetUserID(c)

	tasks, err := h.tasks.ListForUser(c.Request.Context(), userID)
	if err != nil {
		ServiceError(c, err, "Task not found")
		return
	}

	Success(c, h.toResponses(tasks))
}

// GET /api/v1/devices/:id/tasks
func (h *TaskHandler) ListByDevice(c *gin.Context) {
	userID := middleware.GetUserID(c)
	deviceID, ok := parseID(c, "id")
	if !ok {
		return
	}

	tasks, err := h.tasks.ListByDevice(c.Request.Context(), userID, deviceID)
	if err != nil {
		ServiceError(c, err, "Device not found")
		return
	}

	Success(c, h.toResponses(tasks))
}

// POST /api/v1/devices/:id/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	deviceID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), userID, deviceID, req.toInput())
	if err != nil {
		ServiceError(c, err, "Device not found")
		return
	}

	Created(c, h.toResponse(*task))
}

// GET /api/v1/tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	task, err := h.tasks.Get(c.Request.Context(), userID, taskID)
	if err != nil {
		ServiceError(c, err, "Task not found")
		return
	}

	Success(c, h.toResponse(*task))
}

// PATCH /api/v1/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), userID, taskID, req.toInput())
	if err != nil {
		ServiceError(c, err, "Task not found")
		return
	}

	Success(c, h.toResponse(*task))
}

// POST /api/v1/tasks/:id/complete
//
// The acting user comes from the session, never from the request body.
func (h *TaskHandler) Complete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	username := middleware.GetUsername(c)
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	task, err := h.tasks.Complete(c.Request.Context(), userID, username, taskID)
	if err != nil {
		ServiceError(c, err, "Task not found")
		return
	}

	Success(c, h.toResponse(*task))
}

// DELETE /api/v1/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), userID, taskID); err != nil {
		ServiceError(c, err, "Task not found")
		return
	}

	NoContent(c)
}
