package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dcnearshore/taskboard/internal/application"
	"github.com/dcnearshore/taskboard/internal/domain/entity"
	"github.com/dcnearshore/taskboard/internal/domain/repository"
	"github.com/dcnearshore/taskboard/pkg/response"
	"github.com/dcnearshore/taskboard/pkg/validation"
)

const dateLayout = "2006-01-02"

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

// taskRequest is the allow-listed payload for create and update. Unknown
// fields in the body are ignored rather than mapped.
type taskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required,min=5"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Completed   *bool  `json:"completed"`
}

func (r taskRequest) toInput() application.TaskInput {
	return application.TaskInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Completed:   r.Completed,
	}
}

// List handles GET /api/tasks with optional title, created_at, priority
// and completed filters, ANDed together, ten tasks per page.
func (h *TaskHandler) List(c *gin.Context) {
	filter := repository.TaskFilter{Title: c.Query("title")}
	errs := map[string][]string{}

	if v := c.Query("created_at"); v != "" {
		day, err := time.Parse(dateLayout, v)
		if err != nil {
			errs["created_at"] = append(errs["created_at"], "must match date format "+dateLayout)
		} else {
			filter.CreatedAt = &day
		}
	}
	if v := c.Query("priority"); v != "" {
		if !entity.ValidPriority(v) {
			errs["priority"] = append(errs["priority"], "must be one of: low, medium, high")
		} else {
			filter.Priority = v
		}
	}
	if v := c.Query("completed"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs["completed"] = append(errs["completed"], "must be a boolean value")
		} else {
			filter.Completed = &b
		}
	}
	if len(errs) > 0 {
		response.ValidationErrors(c, errs)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	tasks, pg, err := h.Svc.List(c.Request.Context(), filter, page)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.JSON(c, http.StatusOK, response.Page{
		CurrentPage: pg.CurrentPage,
		Data:        tasks,
		PerPage:     pg.PerPage,
		Total:       pg.Total,
		LastPage:    pg.LastPage,
	})
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validation.ToFieldErrors(err))
		return
	}

	t, err := h.Svc.Create(c.Request.Context(), req.toInput())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.JSON(c, http.StatusCreated, t)
}

// Show handles GET /api/tasks/:id.
func (h *TaskHandler) Show(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		response.Message(c, http.StatusNotFound, "Task not found")
		return
	}

	t, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrTaskNotFound) {
			response.Message(c, http.StatusNotFound, "Task not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.JSON(c, http.StatusOK, t)
}

// Update handles PUT /api/tasks/:id. Lookup happens before validation, so
// an unknown id is a 404 even with a bad payload.
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		response.Message(c, http.StatusNotFound, "Task not found")
		return
	}
	if _, err := h.Svc.Get(c.Request.Context(), id); err != nil {
		if errors.Is(err, application.ErrTaskNotFound) {
			response.Message(c, http.StatusNotFound, "Task not found")
			return
		}
		response.InternalError(c)
		return
	}

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validation.ToFieldErrors(err))
		return
	}

	t, err := h.Svc.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		if errors.Is(err, application.ErrTaskNotFound) {
			response.Message(c, http.StatusNotFound, "Task not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.JSON(c, http.StatusOK, t)
}

// Destroy handles DELETE /api/tasks/:id.
func (h *TaskHandler) Destroy(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		response.Message(c, http.StatusNotFound, "Task not found")
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, application.ErrTaskNotFound) {
			response.Message(c, http.StatusNotFound, "Task not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.Message(c, http.StatusOK, "Task deleted")
}

func taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
