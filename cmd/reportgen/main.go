// Package main provides reportgen, which renders asset management reports
// offline from flags instead of the web form.
package main

import (
	"fmt"
	"os"

	"github.com/couchcryptid/stormwater-assessment/internal/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reportgen",
	Short: "Render stormwater asset management reports",
	Long:  "reportgen builds the asset management report from a condition rating, rehabilitation strategies, and a preservation share, as text or PDF.",
}

var (
	reportGCR          string
	reportStrategies   []string
	reportPreservation string
	reportCatalogue    string
	reportOutput       string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&reportGCR, "gcr", "5", "General Condition Rating (0-10)")
	flags.StringSliceVarP(&reportStrategies, "strategy", "s", nil, "Rehabilitation strategy key (repeatable)")
	flags.StringVar(&reportPreservation, "preservation", "50", "Preservation vs replacement share in percent")
	flags.StringVar(&reportCatalogue, "catalogue", os.Getenv("CATALOGUE_PATH"), "Catalogue YAML (default: embedded)")
	flags.StringVarP(&reportOutput, "out", "o", "", "Output file (default: stdout for text, generated name for pdf)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// assetReport loads the catalogue and assembles the report from the flags.
func assetReport() (*domain.Catalogue, domain.AssetReport, error) {
	cat, err := domain.LoadCatalogue(reportCatalogue)
	if err != nil {
		return nil, domain.AssetReport{}, fmt.Errorf("failed to load catalogue: %w", err)
	}
	for _, key := range reportStrategies {
		if len(cat.StrategyLabels([]string{key})) == 0 {
			return nil, domain.AssetReport{}, fmt.Errorf("unknown strategy %q", key)
		}
	}
	return cat, cat.NewAssetReport(reportGCR, reportStrategies, reportPreservation), nil
}
