package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arashoo/Katena-project-management/pkg/application/dto"
	"github.com/arashoo/Katena-project-management/pkg/domain/entities"
)

// RequestIDKey is the context and header key for the request ID
const RequestIDKey = "X-Request-ID"

// LoggerKey is the context key of the request scoped logger
const LoggerKey = "logger"

// BaseHandler provides common handler utilities
type BaseHandler struct{}

func getRequestID(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	return c.GetHeader(RequestIDKey)
}

// RequestLogger returns the request scoped logger set by the logging middleware
func RequestLogger(c *gin.Context) *zap.Logger {
	if l, ok := c.Get(LoggerKey); ok {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.NewNop()
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewSuccessResponse(data))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, NewErrorResponse(ErrCodeBadRequest, message, getRequestID(c)))
}

// HandleError converts domain errors to HTTP responses
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID := getRequestID(c)

	var validationErr *dto.ValidationError
	if errors.As(err, &validationErr) {
		resp := NewErrorResponse(entities.ErrValidation.Code, "Request validation failed", requestID)
		resp.Error.Details = validationErr.Fields
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	if code := entities.CodeOf(err); code != "" {
		c.JSON(GetHTTPStatus(code), NewErrorResponse(code, err.Error(), requestID))
		return
	}

	RequestLogger(c).Error("unexpected error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, NewErrorResponse(ErrCodeInternal, "An unexpected error occurred", requestID))
}

// bindJSON decodes the body; malformed JSON is a 400
func (h *BaseHandler) bindJSON(c *gin.Context, target any) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		h.BadRequest(c, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// bindOptionalJSON is bindJSON for bodies that may be absent; an empty body
// leaves target untouched whatever the Content-Length says
func (h *BaseHandler) bindOptionalJSON(c *gin.Context, target any) bool {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return true
	}
	if err := c.ShouldBindJSON(target); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		h.BadRequest(c, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (h *BaseHandler) intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		h.BadRequest(c, "invalid "+name+": "+c.Param(name))
		return 0, false
	}
	return v, true
}
