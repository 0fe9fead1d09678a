package todo

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/response"
	todoerrors "go-hrm/internal/todo/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("todo.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("todo.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("todo request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Progress(c *gin.Context) {
	progress, err := h.service.OverallProgress(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ProgressResponse{Progress: progress})
}

func (h *Handler) Save(c *gin.Context) {
	var req SaveDailyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http save daily plan bind failed", zap.Error(err))
		h.writeServiceError(c, todoerrors.ErrInvalidPayload)
		return
	}

	msg, err := h.service.SaveDailyPlan(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, msg)
}

func (h *Handler) GetByDate(c *gin.Context) {
	plan, err := h.service.GetDailyPlan(c.Request.Context(), c.Param("date"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, plan)
}
