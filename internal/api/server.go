// Package api exposes uploads and schedule queries over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/alexanderramin/wbsimport/internal/service"
)

// Controller registers its routes on a router.
type Controller interface {
	Register(r *mux.Router)
}

type Options struct {
	Uploads        service.UploadService
	Schedules      service.ScheduleService
	Logger         *logrus.Logger
	MaxUploadBytes int64
	MetricsEnabled bool
}

// NewRouter wires every controller and the optional metrics endpoint.
func NewRouter(opts Options) *mux.Router {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	r := mux.NewRouter()
	r.Use(requestLogger(logger))

	controllers := []Controller{
		NewUploadController(opts.Uploads, logger, opts.MaxUploadBytes),
		NewScheduleController(opts.Schedules, logger),
	}
	for _, c := range controllers {
		c.Register(r)
	}
	if opts.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	}
	return r
}

// Serve runs handler on addr until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *logrus.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", addr).Info("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "http server")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("http server shutting down")
		return errors.Wrap(srv.Shutdown(shutdownCtx), "shutting down http server")
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.WithFields(logrus.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      rec.status,
				"duration_ms": time.Since(start).Milliseconds(),
			}).Debug("http request")
		})
	}
}
