package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/breeew/aicare-api/internal/core"
	"github.com/breeew/aicare-api/internal/response"
	"github.com/breeew/aicare-api/pkg/errors"
	"github.com/breeew/aicare-api/pkg/i18n"
)

type HttpSrv struct {
	Core   *core.Core
	Engine *gin.Engine
}

type HealthResponse struct {
	Status    string   `json:"status"`
	AIDrivers []string `json:"ai_drivers"`
}

func (s *HttpSrv) Healthz(c *gin.Context) {
	if err := s.Core.Store().Ping(c); err != nil {
		response.APIError(c, errors.New("HttpSrv.Healthz.Store.Ping", i18n.ERROR_STORAGE, err).Code(http.StatusServiceUnavailable))
		return
	}
	response.APISuccess(c, HealthResponse{
		Status:    "ok",
		AIDrivers: s.Core.Srv().AI().Drivers(),
	})
}

func (s *HttpSrv) Metrics(c *gin.Context) {
	s.Core.Metrics().Handler().ServeHTTP(c.Writer, c.Request)
}
