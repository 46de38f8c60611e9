package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/couchcryptid/stormwater-assessment/internal/adapter/pdf"
	"github.com/couchcryptid/stormwater-assessment/internal/domain"
	"github.com/spf13/cobra"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Write the full PDF assessment",
	Long:  "Writes the PDF assessment. Condition ratings are given as key=rating pairs, e.g. --condition pipes=3,manholes=8.",
	RunE:  runPDF,
}

var pdfConditions []string

func init() {
	pdfCmd.Flags().StringSliceVar(&pdfConditions, "condition", nil, "Condition rating as key=rating (repeatable)")
	rootCmd.AddCommand(pdfCmd)
}

func runPDF(cmd *cobra.Command, _ []string) error {
	cat, report, err := assetReport()
	if err != nil {
		return err
	}

	conditions := domain.NewConditionList(cat)
	for _, pair := range pdfConditions {
		key, rating, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return fmt.Errorf("condition %q must be key=rating", pair)
		}
		if _, err := conditions.Add(key); err != nil {
			return fmt.Errorf("condition %q: %w", key, err)
		}
		if _, err := conditions.SetRating(key, rating); err != nil {
			return fmt.Errorf("condition %q: %w", key, err)
		}
	}

	assessment := domain.NewAssessment(report, conditions.Items(), nil)
	out := reportOutput
	if out == "" {
		out = assessment.Filename()
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	if err := pdf.Render(f, assessment); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", out, err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", out)
	return nil
}
