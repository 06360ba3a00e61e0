package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/breeew/aicare-api/cmd/service/handler"
	"github.com/breeew/aicare-api/cmd/service/middleware"
	"github.com/breeew/aicare-api/internal/core"
	"github.com/breeew/aicare-api/internal/response"
)

func NewHttpEngine() *gin.Engine {
	engine := gin.New()
	engine.ContextWithFallback = true
	engine.Use(gin.Recovery())
	return engine
}

func serve(core *core.Core) error {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: NewHttpEngine(),
	}
	setupHttpRouter(httpSrv)

	srv := &http.Server{
		Addr:    core.Cfg().Addr,
		Handler: httpSrv.Engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func GetIPLimitBuilder(core *core.Core, onError func(c *gin.Context, err error)) func(key string) gin.HandlerFunc {
	return func(key string) gin.HandlerFunc {
		return middleware.UseLimit(core, key, func(c *gin.Context) string {
			return key + ":" + c.ClientIP()
		}, onError)
	}
}

func setupHttpRouter(s *handler.HttpSrv) {
	// model backed and import routes share one budget per client ip
	messageLimit := GetIPLimitBuilder(s.Core, response.APIError)
	detailLimit := GetIPLimitBuilder(s.Core, response.APIErrorDetail)

	s.Engine.Use(middleware.RequestID(), middleware.AccessLog(), middleware.Metrics(s.Core))
	s.Engine.Use(middleware.Cors)

	s.Engine.GET("/healthz", s.Healthz)
	s.Engine.GET("/metrics", s.Metrics)

	s.Engine.POST("/send-text", s.SendText)
	s.Engine.POST("/reset", s.Reset)
	s.Engine.GET("/summary-and-questions", messageLimit("summary"), s.SummaryAndQuestions)
	s.Engine.POST("/summary-and-questions", messageLimit("summary"), s.SummaryAndQuestions)
	s.Engine.POST("/patient-data", s.AddPatientData)
	s.Engine.POST("/upload-audio", s.UploadAudio)

	s.Engine.POST("/import-medquad", detailLimit("import"), s.ImportMedQuAD)
	s.Engine.GET("/query", detailLimit("query"), s.Query)
	s.Engine.GET("/search-qa", s.SearchQA)

	journal := s.Engine.Group("/journal")
	{
		journal.GET("", s.ListJournal)
		journal.POST("", s.CreateJournal)
		journal.DELETE("", s.ResetJournal)
	}
}
