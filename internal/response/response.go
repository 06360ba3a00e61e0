package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/breeew/aicare-api/pkg/errors"
)

const (
	STATUS_OK = "OK"
)

type StatusResponse struct {
	Status string `json:"status"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type DetailResponse struct {
	Detail string `json:"detail"`
}

func APISuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func APIStatusOK(c *gin.Context) {
	APISuccess(c, StatusResponse{Status: STATUS_OK})
}

// APIError answers with {"message": ...}.
func APIError(c *gin.Context, err error) {
	code, msg := resolve(c, err)
	c.AbortWithStatusJSON(code, MessageResponse{Message: msg})
}

// APIErrorDetail answers with {"detail": ...}.
func APIErrorDetail(c *gin.Context, err error) {
	code, msg := resolve(c, err)
	c.AbortWithStatusJSON(code, DetailResponse{Detail: msg})
}

func resolve(c *gin.Context, err error) (int, string) {
	if err == nil {
		return http.StatusBadRequest, ""
	}

	code := http.StatusBadRequest
	attrs := []any{
		slog.String("method", c.Request.Method),
		slog.String("path", c.FullPath()),
		slog.String("error", err.Error()),
	}
	if ce, ok := errors.As(err); ok {
		code = ce.HttpCode()
		attrs = append(attrs, slog.String("trace", ce.TraceString()), slog.String("msg", ce.Msg()))
	}

	if code >= http.StatusInternalServerError {
		slog.Error("request failed", attrs...)
	} else {
		slog.Warn("request failed", attrs...)
	}
	return code, err.Error()
}
