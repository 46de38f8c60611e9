package http

import (
	"io"
	"net/http"

	"github.com/couchcryptid/stormwater-assessment/internal/domain"
)

// handleIndicator re-evaluates one structural indicator from all its posted
// sources and answers the display text.
func (s *Server) handleIndicator(w http.ResponseWriter, r *http.Request) {
	ind, ok := domain.LookupIndicator(r.PathValue("name"))
	if !ok {
		http.Error(w, "unknown indicator", http.StatusNotFound)
		return
	}
	if !parseForm(w, r) {
		return
	}

	display, calculated := ind.Evaluate(r.PostForm)
	outcome := "calculated"
	if !calculated {
		outcome = "not_calculated"
	}
	s.metrics.IndicatorEvaluations.WithLabelValues(ind.Name, outcome).Inc()

	writeText(w, http.StatusOK, display)
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	res := domain.SimulateHydrologicalPerformance(r.PostForm)
	s.metrics.Simulations.Inc()

	s.writeHTML(w, http.StatusOK, func(out io.Writer) error {
		return s.renderer.Simulation(out, res)
	})
}

func (s *Server) handleIntake(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	echo := s.catalogue.EchoIntake(r.PostForm)

	s.writeHTML(w, http.StatusOK, func(out io.Writer) error {
		return s.renderer.Intake(out, echo)
	})
}

func (s *Server) handleClassification(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, s.catalogue.Classify(r.URL.Query().Get(domain.FieldGCR)))
}
