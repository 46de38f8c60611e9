package http

import (
	"bytes"
	"mime"
	"net/http"
	"strings"

	"github.com/couchcryptid/stormwater-assessment/internal/adapter/pdf"
	"github.com/couchcryptid/stormwater-assessment/internal/domain"
)

type reportRequest struct {
	GCR          string   `validate:"omitempty,numeric"`
	Strategies   []string `validate:"dive,required"`
	Preservation string   `validate:"omitempty,numeric"`
}

// readReport binds the asset management form. Slider values that are not
// numbers are refused.
func (s *Server) readReport(w http.ResponseWriter, r *http.Request) (domain.AssetReport, bool) {
	if !parseForm(w, r) {
		return domain.AssetReport{}, false
	}
	req := reportRequest{
		GCR:          strings.TrimSpace(r.PostForm.Get(domain.FieldGCR)),
		Strategies:   r.PostForm[domain.FieldRehabilitationStrategy],
		Preservation: strings.TrimSpace(r.PostForm.Get(domain.FieldPreservation)),
	}
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("report request rejected", "error", err)
		http.Error(w, "invalid report form", http.StatusBadRequest)
		return domain.AssetReport{}, false
	}
	return s.catalogue.NewAssetReport(req.GCR, req.Strategies, req.Preservation), true
}

func (s *Server) handleTextReport(w http.ResponseWriter, r *http.Request) {
	report, ok := s.readReport(w, r)
	if !ok {
		return
	}

	s.metrics.ReportsGenerated.WithLabelValues("text").Inc()
	s.logger.Info("report generated", "format", "text", "classification", report.Classification)

	setAttachment(w, domain.ReportFilename)
	writeText(w, http.StatusOK, report.Text())
}

// handlePDFReport adds the session's ratings and saved entries to the
// asset summary.
func (s *Server) handlePDFReport(w http.ResponseWriter, r *http.Request) {
	report, ok := s.readReport(w, r)
	if !ok {
		return
	}
	sess := s.session(w, r)

	var assessment domain.Assessment
	sess.Do(func(store *domain.Store, conditions *domain.ConditionList) {
		assessment = domain.NewAssessment(report, conditions.Items(), store.List())
	})

	var buf bytes.Buffer
	if err := pdf.Render(&buf, assessment); err != nil {
		s.logger.Error("pdf render failed", "session_id", sess.ID(), "error", err)
		http.Error(w, "report failed", http.StatusInternalServerError)
		return
	}

	s.metrics.ReportsGenerated.WithLabelValues("pdf").Inc()
	s.logger.Info("report generated", "format", "pdf", "session_id", sess.ID(), "file", assessment.Filename())

	w.Header().Set("Content-Type", pdf.ContentType)
	setAttachment(w, assessment.Filename())
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck // client went away
}

func setAttachment(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
}
