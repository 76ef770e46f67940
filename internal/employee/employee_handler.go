package employee

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	employeeerrors "go-employees/internal/employee/errors"
	"go-employees/internal/shared/apperror"
	"go-employees/internal/shared/contextutil"
	"go-employees/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgValidationError = "Validation error"
	msgNotFound        = "Employee not found"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

// writeServiceError shapes err into the envelope. Anything that is not a
// not-found or validation failure is a 500 carrying the raw error text.
func (h *Handler) writeServiceError(c *gin.Context, op string, err error) {
	l := contextutil.GetLogger(c.Request.Context(), h.logger)
	httpErr := apperror.ToHTTP(err)
	fields := []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
	}
	if id := c.Param("id"); id != "" {
		fields = append(fields, zap.String("id", id))
	}

	switch {
	case errors.Is(err, employeeerrors.ErrEmptyBody):
		response.Error(c, http.StatusBadRequest, httpErr.Message, "")
	case httpErr.Status == http.StatusNotFound:
		response.Error(c, http.StatusNotFound, msgNotFound, "")
	case httpErr.Status == http.StatusBadRequest:
		l.Warn("employee request rejected", append(fields, zap.String("error", httpErr.Message))...)
		response.Error(c, http.StatusBadRequest, msgValidationError, httpErr.Message)
	default:
		l.Error("employee request failed", append(fields, zap.String("op", op), zap.Error(err))...)
		response.Error(c, http.StatusInternalServerError, "Failed to "+op, err.Error())
	}
}

// parseID treats a malformed id like an unknown one.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, http.StatusNotFound, msgNotFound, "")
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return employeeerrors.ErrEmptyBody
		}
		return apperror.Wrap(err, apperror.CodeInvalidInput, "Invalid JSON body", http.StatusBadRequest)
	}
	return nil
}

func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	params := ParseListParams(c.Query)
	contextutil.GetLogger(ctx, h.logger).Debug("http list employees")

	result, err := h.service.List(ctx, params)
	if err != nil {
		h.writeServiceError(c, "retrieve employees", err)
		return
	}

	pagination := response.NewPagination(result.Total, result.Page, result.Limit)
	response.Success(c, http.StatusOK, "Employees retrieved successfully", result.Employees, &pagination)
}

func (h *Handler) Export(c *gin.Context) {
	ctx := c.Request.Context()
	params := ParseListParams(c.Query)

	employees, err := h.service.Export(ctx, params)
	if err != nil {
		h.writeServiceError(c, "export employees", err)
		return
	}

	buf, err := BuildWorkbook(employees)
	if err != nil {
		h.writeServiceError(c, "export employees", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+ExportFileName+`"`)
	c.Data(http.StatusOK, ExportContentType, buf.Bytes())
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	contextutil.GetLogger(c.Request.Context(), h.logger).Debug("http get employee by id", zap.Uint("employee_id", id))

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, "retrieve employee", err)
		return
	}

	response.Success(c, http.StatusOK, "Employee retrieved successfully", resp, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := bindJSON(c, &req); err != nil {
		contextutil.GetLogger(c.Request.Context(), h.logger).Warn("http create employee bind failed", zap.Error(err))
		h.writeServiceError(c, "create employee", err)
		return
	}
	if req.IsEmpty() {
		h.writeServiceError(c, "create employee", employeeerrors.ErrEmptyBody)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, "create employee", err)
		return
	}

	response.Success(c, http.StatusCreated, "Employee created successfully", resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateEmployeeRequest
	if err := bindJSON(c, &req); err != nil {
		contextutil.GetLogger(c.Request.Context(), h.logger).Warn("http update employee bind failed", zap.Uint("employee_id", id), zap.Error(err))
		h.writeServiceError(c, "update employee", err)
		return
	}
	if req.IsEmpty() {
		h.writeServiceError(c, "update employee", employeeerrors.ErrEmptyBody)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, "update employee", err)
		return
	}

	response.Success(c, http.StatusOK, "Employee updated successfully", resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, "delete employee", err)
		return
	}

	response.Success(c, http.StatusOK, "Employee deleted successfully", nil, nil)
}

func (h *Handler) Departments(c *gin.Context) {
	values, err := h.service.Departments(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, "retrieve departments", err)
		return
	}
	response.Success(c, http.StatusOK, "Departments retrieved successfully", values, nil)
}

func (h *Handler) Positions(c *gin.Context) {
	values, err := h.service.Positions(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, "retrieve positions", err)
		return
	}
	response.Success(c, http.StatusOK, "Positions retrieved successfully", values, nil)
}

func (h *Handler) Statistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, "retrieve statistics", err)
		return
	}
	response.Success(c, http.StatusOK, "Statistics retrieved successfully", stats, nil)
}
