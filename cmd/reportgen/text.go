package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Write the plain text report",
	RunE:  runText,
}

func init() {
	rootCmd.AddCommand(textCmd)
}

func runText(cmd *cobra.Command, _ []string) error {
	_, report, err := assetReport()
	if err != nil {
		return err
	}

	if reportOutput == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), report.Text())
		return err
	}
	if err := os.WriteFile(reportOutput, []byte(report.Text()), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", reportOutput)
	return nil
}
