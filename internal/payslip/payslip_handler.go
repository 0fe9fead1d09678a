package payslip

import (
	"fmt"
	"net/http"

	paysliperrors "go-hrm/internal/payslip/errors"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("payslip.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("payslip request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetDetails(c *gin.Context) {
	resp, err := h.service.GetSingle(c.Request.Context(),
		c.Query("employee_id"), c.Query("year"), c.Query("month"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetMultiple(c *gin.Context) {
	var req MultiplePayslipsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http multiple payslips bind failed", zap.Error(err))
		h.writeServiceError(c, paysliperrors.ErrInvalidRequest)
		return
	}

	resp, err := h.service.GetMultiple(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) DownloadPDF(c *gin.Context) {
	data, filename, err := h.service.RenderPDF(c.Request.Context(),
		c.Query("employee_id"), c.Query("year"), c.Query("month"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
