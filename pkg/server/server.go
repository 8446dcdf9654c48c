// Package server provides the HTML form front end for projectpack.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"projectpack/pkg/combine"
)

// Config holds the form server configuration.
type Config struct {
	Host          string
	Port          int
	DefaultOutput string             // Used when the output field is left blank.
	Title         string             // Header title of generated documents.
	Exclusions    combine.Exclusions // Applied to every conversion and listed on the page.
}

// RunFunc executes one conversion. combine.Run in production.
type RunFunc func(args combine.Arguments, logger *zap.Logger) (combine.Result, error)

// Server serves the conversion form.
type Server struct {
	echo   *echo.Echo
	logger *zap.Logger
	config *Config
	run    RunFunc

	// mu serializes conversions; the pipeline itself is single-threaded.
	mu sync.Mutex
}

// New creates a form server. A nil cfg uses localhost:8080 with the default exclusions.
func New(cfg *Config, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required for request tracking and debugging")
	}
	if cfg == nil {
		cfg = &Config{
			Host:       "localhost",
			Port:       8080,
			Exclusions: combine.DefaultExclusions(),
		}
	}
	if cfg.DefaultOutput == "" {
		cfg.DefaultOutput = combine.DefaultOutput
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = newRenderer()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)
			return err
		}
	})

	s := &Server{
		echo:   e,
		logger: logger,
		config: cfg,
		run:    combine.Run,
	}
	s.registerRoutes()

	return s, nil
}

func (s *Server) registerRoutes() {
	s.echo.GET("/", s.handleForm)
	s.echo.POST("/", s.handleConvert)
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// pageData feeds the form template.
type pageData struct {
	DefaultOutput      string
	ProjectDir         string
	OutputFile         string
	Submitted          bool
	Success            bool
	Message            string
	Result             combine.Result
	ExcludedDirs       []string
	ExcludedExtensions []string
	ExcludedFiles      []string
}

func (s *Server) newPage() pageData {
	return pageData{
		DefaultOutput:      s.config.DefaultOutput,
		ExcludedDirs:       s.config.Exclusions.Dirs(),
		ExcludedExtensions: s.config.Exclusions.Extensions(),
		ExcludedFiles:      s.config.Exclusions.Filenames(),
	}
}

// handleForm renders the empty form.
func (s *Server) handleForm(c echo.Context) error {
	return c.Render(http.StatusOK, formTemplate, s.newPage())
}

// handleConvert runs a conversion for the submitted form and renders the outcome.
func (s *Server) handleConvert(c echo.Context) error {
	page := s.newPage()
	page.Submitted = true
	page.ProjectDir = strings.TrimSpace(c.FormValue("projectDir"))
	page.OutputFile = strings.TrimSpace(c.FormValue("outputFile"))

	if page.ProjectDir == "" {
		page.Message = "Project directory is required."
		return c.Render(http.StatusBadRequest, formTemplate, page)
	}

	output := page.OutputFile
	if output == "" {
		output = s.config.DefaultOutput
	}

	result, err := s.convert(combine.Arguments{
		ProjectDir: page.ProjectDir,
		Output:     output,
		Title:      s.config.Title,
		Exclusions: s.config.Exclusions,
	}, s.logger.With(zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID))))

	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, combine.ErrDirectoryNotFound):
			status = http.StatusUnprocessableEntity
			page.Message = "Error: Project directory does not exist."
		case errors.Is(err, combine.ErrWriteFailure):
			page.Message = "Error: Failed to write to output file."
		default:
			page.Message = "Error: " + err.Error()
		}
		s.logger.Warn("conversion failed", zap.String("projectDir", page.ProjectDir), zap.Error(err))
		return c.Render(status, formTemplate, page)
	}

	page.Success = true
	page.Result = result
	page.Message = "Conversion completed successfully!"
	return c.Render(http.StatusOK, formTemplate, page)
}

// convert runs one conversion at a time. The lock is released even if run panics.
func (s *Server) convert(args combine.Arguments, logger *zap.Logger) (combine.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.run(args, logger)
}

// handleHealth returns a simple health check response.
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Info("starting http server", zap.String("addr", s.Addr()))
	return s.echo.Start(s.Addr())
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
