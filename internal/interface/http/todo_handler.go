package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-todo-api/internal/application"
	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/pkg/response"
	"github.com/oksasatya/go-todo-api/pkg/validation"
)

type TodoHandler struct {
	Svc    *application.TodoService
	Logger *logrus.Logger
}

func NewTodoHandler(svc *application.TodoService, logger *logrus.Logger) *TodoHandler {
	return &TodoHandler{Svc: svc, Logger: logger}
}

type createTodoRequest struct {
	Text string `json:"text" binding:"required"`
}

type updateTodoRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

type todoResponse struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Completed   bool   `json:"completed"`
	CompletedAt *int64 `json:"completedAt"`
}

func toTodoResponse(t *entity.Todo) todoResponse {
	return todoResponse{
		ID:          t.ID,
		Text:        t.Text,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
	}
}

// Create POST /todos
func (h *TodoHandler) Create(c *gin.Context) {
	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Create(c.Request.Context(), req.Text)
	if err != nil {
		fail(c, h.Logger, err, "failed to create todo")
		return
	}
	c.JSON(http.StatusOK, toTodoResponse(t))
}

// List GET /todos
func (h *TodoHandler) List(c *gin.Context) {
	todos, err := h.Svc.List(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err, "failed to load todos")
		return
	}
	out := make([]todoResponse, 0, len(todos))
	for i := range todos {
		out = append(out, toTodoResponse(&todos[i]))
	}
	c.JSON(http.StatusOK, gin.H{"todos": out})
}

// Get GET /todos/:id
func (h *TodoHandler) Get(c *gin.Context) {
	t, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err, "failed to load todo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"todo": toTodoResponse(t)})
}

// Update PATCH /todos/:id
func (h *TodoHandler) Update(c *gin.Context) {
	var req updateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.UpdateTodoInput{
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		fail(c, h.Logger, err, "failed to update todo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"todo": toTodoResponse(t)})
}

// Delete DELETE /todos/:id
func (h *TodoHandler) Delete(c *gin.Context) {
	t, err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err, "failed to delete todo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"todo": toTodoResponse(t)})
}
