package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bornholm/effortcalc/internal/estimator"
	"github.com/bornholm/effortcalc/internal/format"
	"github.com/bornholm/effortcalc/internal/log"
	"github.com/bornholm/effortcalc/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// Server exposes the estimation engine over HTTP
type Server struct {
	config *model.Config
	engine *estimator.Engine
	logger *zap.Logger
}

// NewServer creates an HTTP server computing estimates with the given configuration
func NewServer(config *model.Config, logger *zap.Logger) *Server {
	if config == nil {
		config = model.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Server{
		config: config,
		engine: estimator.NewEngine(estimator.WithPolicy(config.GetPolicy())),
		logger: logger,
	}
}

// Router returns the HTTP handler serving the API
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()

	router.Use(
		middleware.RequestID,
		log.Logger(s.logger, "http"),
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}),
		render.SetContentType(render.ContentTypeJSON),
	)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		s.render(w, r, HealthReply{Status: "ok"})
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/factors", s.listFactors)
		r.Get("/config", s.getConfig)
		r.Post("/estimate", s.computeEstimate)
	})

	return router
}

// ListenAndServe serves the API on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down HTTP server")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, v render.Renderer) {
	if err := render.Render(w, r, v); err != nil {
		s.logger.Error("failed to render response",
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
	}
}

func (s *Server) listFactors(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, NewFactorsReply())
}

func (s *Server) getConfig(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, ConfigReply{Config: s.config})
}

func (s *Server) computeEstimate(w http.ResponseWriter, r *http.Request) {
	req := &EstimateRequest{}
	if err := render.Bind(r, req); err != nil {
		s.render(w, r, ErrBadRequest(err))
		return
	}

	in := s.config.NewInput("")
	if err := req.Apply(&in); err != nil {
		s.render(w, r, ErrInvalidInput(err))
		return
	}

	output, err := format.NewJSONFormatter(s.engine).BuildOutput(&model.Estimate{Input: in})
	if err != nil {
		if estimator.IsInvalidInput(err) {
			s.render(w, r, ErrInvalidInput(err))
			return
		}
		s.logger.Error("failed to compute estimate", zap.Error(err))
		s.render(w, r, ErrInternal(err))
		return
	}

	s.render(w, r, EstimateReply{
		Input:   output.Input,
		Factors: output.Factors,
		Result:  output.Result,
		Fields:  format.ResultFields(output.Input, output.Result),
	})
}
