// Package api - Thin HTTP surface over the pricing and calendar cores
// The API is only responsible for input ingestion, core orchestration,
// and output serialization. It never computes prices or dates itself.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"souq-core/core/catalog"
	"souq-core/core/quote"
	"souq-core/internal/errors"
	"souq-core/internal/logging"
)

// Server is the API server
type Server struct {
	mux      *http.ServeMux
	registry *catalog.Registry
	engine   *quote.Engine
	validate *validator.Validate
	version  string
}

// NewServer creates an API server over a product registry
func NewServer(version string, registry *catalog.Registry, engine *quote.Engine) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		registry: registry,
		engine:   engine,
		validate: validator.New(),
		version:  version,
	}
	s.registerRoutes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := uuid.NewString()
	r = r.WithContext(withRequestID(r.Context(), requestID))
	w.Header().Set("X-Request-Id", requestID)

	s.mux.ServeHTTP(w, r)

	logging.Info("request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Duration("duration", time.Since(start)))
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /api/v1/quote", s.handleQuote)
	s.mux.HandleFunc("POST /api/v1/calendar/convert", s.handleConvert)
	s.mux.HandleFunc("GET /api/v1/calendar/days", s.handleDays)
	s.mux.HandleFunc("GET /api/v1/calendar/today", s.handleToday)
	s.mux.HandleFunc("GET /api/v1/products", s.handleListProducts)
	s.mux.HandleFunc("GET /api/v1/products/{id}", s.handleGetProduct)
	s.mux.HandleFunc("GET /api/v1/health", s.handleHealth)
	s.mux.HandleFunc("GET /api/v1/version", s.handleVersion)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, map[string]string{"status": "ok"}, http.StatusOK)
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, map[string]string{"version": s.version}, http.StatusOK)
}

// writeJSON serializes a success payload
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, payload interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error("response encoding failed", zap.Error(err))
	}
}

// writeError serializes a domain error with its mapped status code
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := string(errors.TypeInternal)
	status := http.StatusInternalServerError
	if domainErr, ok := err.(*errors.Error); ok {
		code = string(domainErr.Type)
		status = statusFor(domainErr.Type)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:     ErrorBody{Code: code, Message: err.Error()},
		RequestID: requestIDFrom(r.Context()),
	})
}

func statusFor(t errors.Type) int {
	switch t {
	case errors.TypeInvalidInput, errors.TypeParsing:
		return http.StatusBadRequest
	case errors.TypeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
