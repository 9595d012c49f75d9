package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"catalog/internal/config"
	"catalog/internal/middleware"
	"catalog/internal/response"
)

// リクエストボディの上限
const bodyLimit = "1M"

type Server struct {
	echo *echo.Echo
	cfg  config.Config
	log  *logrus.Logger
}

func New(cfg config.Config, log *logrus.Logger, store Store) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(reg)

	e.Use(
		echomw.BodyLimit(bodyLimit),
		middleware.RequestID(),
		middleware.RequestLogger(log),
		metrics.Middleware(),
		echomw.Recover(),
	)

	RegisterRoutes(e, store, log, reg)

	return &Server{echo: e, cfg: cfg, log: log}
}

// httptest用
func (s *Server) Handler() http.Handler {
	return s.echo
}

// ctxがキャンセルされるまで待ち受け、cfg.ShutdownTimeout以内に停止する
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", s.cfg.Addr()).Info("server started")
		if err := s.echo.Start(s.cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.log.Info("server stopped")
	return nil
}

// ルーティングエラーも含めて共通の形で返す
func errorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Code == http.StatusNotFound {
				_ = response.NotFound(c, he.Code, c.Request().URL.Path)
				return
			}
			msg := http.StatusText(he.Code)
			if m, ok := he.Message.(string); ok && m != "" {
				msg = m
			}
			_ = response.Error(c, he.Code, msg)
			return
		}

		log.WithError(err).WithField("request_id", middleware.RequestIDFrom(c)).Error("unhandled error")
		_ = response.Error(c, http.StatusInternalServerError, "Internal server error")
	}
}
