package domain

import (
	"fmt"
	"strings"
	"time"
)

// Report form field ids and the download name of the text report.
const (
	FieldGCR                    = "gcr-slider"
	FieldRehabilitationStrategy = "rehabilitation-strategy"
	FieldPreservation           = "cost-slider"

	ReportFilename = "stormwater_report.txt"
	noneSelected   = "None selected"
)

// AssetReport is the asset management summary exported as a text file.
type AssetReport struct {
	GCR            string
	Classification string
	Strategies     []string
	Preservation   string
}

// NewAssetReport assembles a report from raw slider values and the selected
// strategy keys. The classification is derived from the GCR.
func (c *Catalogue) NewAssetReport(gcr string, strategyKeys []string, preservation string) AssetReport {
	return AssetReport{
		GCR:            gcr,
		Classification: c.Classify(gcr),
		Strategies:     c.StrategyLabels(strategyKeys),
		Preservation:   preservation,
	}
}

// StrategiesText joins the strategy labels, or says none were selected.
func (r AssetReport) StrategiesText() string {
	if len(r.Strategies) == 0 {
		return noneSelected
	}
	return strings.Join(r.Strategies, ", ")
}

// Text renders the fixed-format report.
func (r AssetReport) Text() string {
	var b strings.Builder
	b.WriteString("Stormwater Asset Management Report:\n")
	b.WriteString("-----------------------------\n")
	fmt.Fprintf(&b, "General Condition Rating (GCR): %s\n", r.GCR)
	fmt.Fprintf(&b, "Asset Classification: %s\n", r.Classification)
	fmt.Fprintf(&b, "Rehabilitation Strategies: %s\n", r.StrategiesText())
	fmt.Fprintf(&b, "Preservation vs Replacement: %s%%\n", r.Preservation)
	return b.String()
}

// Assessment is everything a full (PDF) report covers.
type Assessment struct {
	Report      AssetReport
	Conditions  []ConditionItem
	Entries     []SavedEntry
	GeneratedAt time.Time
}

// NewAssessment stamps an assessment with the package clock.
func NewAssessment(report AssetReport, conditions []ConditionItem, entries []SavedEntry) Assessment {
	return Assessment{
		Report:      report,
		Conditions:  conditions,
		Entries:     entries,
		GeneratedAt: clock.Now(),
	}
}

// Filename names the PDF download after the generation time.
func (a Assessment) Filename() string {
	return "assessment_report_" + a.GeneratedAt.Format("20060102_150405") + ".pdf"
}
