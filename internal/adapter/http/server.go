package http

import (
	"bytes"
	"context"
	"embed"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/stormwater-assessment/internal/domain"
	"github.com/couchcryptid/stormwater-assessment/internal/observability"
	"github.com/couchcryptid/stormwater-assessment/internal/render"
	"github.com/couchcryptid/stormwater-assessment/internal/session"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NoticeHeader carries user-facing messages the page shows as alerts.
const NoticeHeader = "X-Notice"

//go:embed static
var staticFS embed.FS

// Deps are the collaborators the HTTP surface drives.
type Deps struct {
	Catalogue    *domain.Catalogue
	Sessions     *session.Manager
	Renderer     *render.Renderer
	Metrics      *observability.Metrics
	Logger       *slog.Logger
	CookieSecure bool
}

// Server exposes the assessment page, its fragment endpoints, and the
// health, readiness, and metrics routes.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger

	catalogue    *domain.Catalogue
	sessions     *session.Manager
	renderer     *render.Renderer
	metrics      *observability.Metrics
	validate     *validator.Validate
	cookieSecure bool
}

// NewServer creates an HTTP server with every route registered.
func NewServer(addr string, d Deps) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger:       d.Logger,
		catalogue:    d.Catalogue,
		sessions:     d.Sessions,
		renderer:     d.Renderer,
		metrics:      d.Metrics,
		validate:     validator.New(),
		cookieSecure: d.CookieSecure,
	}

	s.handle(mux, "GET /{$}", s.handlePage)
	mux.Handle("GET /static/", http.FileServerFS(staticFS))

	s.handle(mux, "GET /features/fields", s.handleFieldSet)
	s.handle(mux, "GET /entries", s.handleListEntries)
	s.handle(mux, "POST /entries", s.handleSaveEntry)
	s.handle(mux, "DELETE /entries/{id}", s.handleDeleteEntry)
	s.handle(mux, "DELETE /entries/index/{index}", s.handleDeleteEntryAt)

	s.handle(mux, "POST /indicators/{name}", s.handleIndicator)
	s.handle(mux, "POST /simulate", s.handleSimulate)
	s.handle(mux, "POST /intake", s.handleIntake)
	s.handle(mux, "GET /classification", s.handleClassification)

	s.handle(mux, "GET /conditions", s.handleListConditions)
	s.handle(mux, "POST /conditions", s.handleAddCondition)
	s.handle(mux, "PUT /conditions/{key}", s.handleRateCondition)
	s.handle(mux, "DELETE /conditions/{key}", s.handleRemoveCondition)

	s.handle(mux, "POST /report", s.handleTextReport)
	s.handle(mux, "POST /report/pdf", s.handlePDFReport)

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(d.Catalogue))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// handle registers h and records its latency under the route pattern.
func (s *Server) handle(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	observer := s.metrics.RequestDuration.WithLabelValues(pattern)
	mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h(w, r)
		observer.Observe(time.Since(start).Seconds())
	})
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	var data render.PageData
	sess.Do(func(entries *domain.Store, conditions *domain.ConditionList) {
		data = render.NewPageData(s.catalogue, entries.List(), conditions.Items())
	})
	s.writeHTML(w, http.StatusOK, func(out io.Writer) error {
		return s.renderer.Page(out, data)
	})
}

// writeHTML renders into a buffer first so a template failure still yields
// a clean 500.
func (s *Server) writeHTML(w http.ResponseWriter, status int, fn func(io.Writer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		s.logger.Error("render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes()) //nolint:errcheck // client went away
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, text) //nolint:errcheck // client went away
}

// parseForm reads query and body values. A malformed body answers 400.
func parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return false
	}
	return true
}
