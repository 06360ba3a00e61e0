package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/breeew/aicare-api/internal/core"
	"github.com/breeew/aicare-api/pkg/errors"
	"github.com/breeew/aicare-api/pkg/i18n"
)

const (
	REQUEST_ID_HEADER_KEY  = "X-Request-ID"
	REQUEST_ID_CONTEXT_KEY = "request_id"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(REQUEST_ID_HEADER_KEY)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(REQUEST_ID_CONTEXT_KEY, id)
		c.Header(REQUEST_ID_HEADER_KEY, id)
		c.Next()
	}
}

func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		slog.Info("access",
			slog.String("request_id", c.GetString(REQUEST_ID_CONTEXT_KEY)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()))
	}
}

func Metrics(core *core.Core) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		core.Metrics().HttpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		core.Metrics().HttpLatency.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

func Cors(c *gin.Context) {
	method := c.Request.Method
	origin := c.Request.Header.Get("Origin")
	if origin != "" {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Header("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "Content-Length, Access-Control-Allow-Origin, Access-Control-Allow-Headers, Content-Type, X-Request-ID")
	}
	if method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}

// UseLimit rejects requests once the limiter behind genKeyFunc(c) runs dry. onError writes the body.
func UseLimit(core *core.Core, operation string, genKeyFunc func(c *gin.Context) string, onError func(c *gin.Context, err error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !core.UseLimiter(genKeyFunc(c), operation, 30).Allow() {
			onError(c, errors.New("middleware.limiter", i18n.ERROR_TOO_MANY_REQUESTS, errTooManyRequests).Code(http.StatusTooManyRequests))
		}
	}
}

var errTooManyRequests = fmt.Errorf("too many requests, please retry later")
