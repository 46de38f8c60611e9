// Package render turns domain values into the HTML fragments the host page
// injects. Templates are embedded and parsed once.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/couchcryptid/stormwater-assessment/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData is everything the host page needs on first load.
type PageData struct {
	Catalogue             *domain.Catalogue
	Indicators            []domain.Indicator
	HydrologyFields       []string
	DefaultClassification string
	Entries               []domain.SavedEntry
	Conditions            []domain.ConditionItem
}

// Renderer executes the embedded templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// NewPageData assembles the first-load view of a session.
func NewPageData(cat *domain.Catalogue, entries []domain.SavedEntry, conditions []domain.ConditionItem) PageData {
	return PageData{
		Catalogue:  cat,
		Indicators: domain.Indicators,
		HydrologyFields: []string{
			domain.FieldPrecipitation,
			domain.FieldEvapotranspiration,
			domain.FieldFlowPipe1,
			domain.FieldFlowPipe2,
			domain.FieldFloodEvents,
			domain.FieldTotalTime,
			domain.FieldInstantaneousFlow,
		},
		DefaultClassification: cat.Classify("5"),
		Entries:               entries,
		Conditions:            conditions,
	}
}

// Page renders the full host page.
func (r *Renderer) Page(w io.Writer, data PageData) error {
	return r.execute(w, "page", data)
}

// FieldSet renders the inputs of one feature. An empty feature renders
// nothing, which clears the container.
func (r *Renderer) FieldSet(w io.Writer, f domain.Feature) error {
	return r.execute(w, "fieldset", f)
}

// Entries rebuilds the saved-results table body from scratch.
func (r *Renderer) Entries(w io.Writer, entries []domain.SavedEntry) error {
	return r.execute(w, "entries", entries)
}

// Condition renders one rated condition.
func (r *Renderer) Condition(w io.Writer, item domain.ConditionItem) error {
	return r.execute(w, "condition", item)
}

// Conditions renders the whole condition list.
func (r *Renderer) Conditions(w io.Writer, items []domain.ConditionItem) error {
	return r.execute(w, "conditions", items)
}

// Simulation renders the hydrological performance results.
func (r *Renderer) Simulation(w io.Writer, res domain.HydrologicalResult) error {
	return r.execute(w, "simulation", res)
}

// Intake renders the echoed intake sections.
func (r *Renderer) Intake(w io.Writer, echo []domain.IntakeEcho) error {
	return r.execute(w, "intake", echo)
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}
