// Package main provides the CLI entry point for fieldscan.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"fieldscan/pkg/fieldscan"
	"fieldscan/pkg/fieldscan/models"
	"fieldscan/pkg/fieldscan/report"
	"fieldscan/pkg/fieldscan/sample"
)

var (
	outputDir      string
	noSave         bool
	pretty         bool
	includeUnnamed bool
	headerWindow   int
	minHeaderScore float64
)

func main() {
	// Optional .env for local defaults; absence is fine.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "fieldscan",
		Short: "Discover and aggregate data fields across workbook worksheets",
		Long: `fieldscan inspects a multi-worksheet xlsx workbook, detects each
sheet's header row even when it is missing or buried in the data, and
aggregates field usage into a presence matrix with universal/common/unique
classification and business-category grouping.`,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [input.xlsx]",
		Short: "Analyze a workbook and write the field reports",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringVarP(&outputDir, "output-dir", "o", defaultOutputDir(), "Directory for report files")
	analyzeCmd.Flags().BoolVar(&noSave, "no-save", false, "Print the summary only, write no files")
	analyzeCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print the JSON report")
	analyzeCmd.Flags().BoolVar(&includeUnnamed, "include-unnamed", false, "Keep unnamed columns as 'Column N' placeholders")
	analyzeCmd.Flags().IntVar(&headerWindow, "window", 0, "Leading rows scanned for a header (0 = default)")
	analyzeCmd.Flags().Float64Var(&minHeaderScore, "min-score", 0, "Header acceptance threshold (0 = default)")

	sampleCmd := &cobra.Command{
		Use:   "sample [output.xlsx]",
		Short: "Generate a sample multi-worksheet workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sample.Generate(args[0]); err != nil {
				return fmt.Errorf("sample generation failed: %w", err)
			}
			fmt.Printf("Sample workbook written to %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(analyzeCmd, sampleCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func defaultOutputDir() string {
	if dir := os.Getenv("FIELDSCAN_OUTPUT_DIR"); dir != "" {
		return dir
	}
	return "analysis_results"
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	opts := fieldscan.Options{
		IncludeUnnamedColumns: includeUnnamed,
		HeaderWindow:          headerWindow,
		MinHeaderScore:        minHeaderScore,
	}

	res, err := fieldscan.Analyze(args[0], opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	rep := report.Build(res)
	printSummary(rep, res)

	if noSave {
		return nil
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := report.WriteJSON(rep, filepath.Join(outputDir, "analysis_report.json"), pretty); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	if err := report.WriteWorkbook(res, filepath.Join(outputDir, "field_analysis.xlsx")); err != nil {
		return fmt.Errorf("failed to write analysis workbook: %w", err)
	}
	if err := report.WriteMarkdown(rep, res,
		filepath.Join(outputDir, "analysis_report.md"),
		filepath.Join(outputDir, "analysis_report.html")); err != nil {
		return fmt.Errorf("failed to write summary report: %w", err)
	}

	fmt.Printf("\nReports written to %s\n", outputDir)
	return nil
}

func printSummary(rep *report.Report, res *models.Result) {
	fmt.Println("FIELD ANALYSIS SUMMARY")
	fmt.Printf("File: %s\n", rep.BookName)
	fmt.Printf("Total Sheets: %d\n", rep.TotalSheets)
	fmt.Printf("Total Unique Fields: %d\n", rep.TotalFields)
	fmt.Printf("Universal Fields (in all sheets): %d\n", len(res.Universal))
	fmt.Printf("Common Fields (in multiple sheets): %d\n", len(res.Common))
	fmt.Printf("Unique Fields (in single sheet): %d\n", len(res.Unique))

	fmt.Println("\nWorksheets:")
	for i, name := range res.SheetNames {
		fmt.Printf("%3d. %s (%d fields)\n", i+1, name, rep.FieldsPerSheet[name])
	}

	if len(res.Universal) > 0 {
		fmt.Println("\nUniversal fields:")
		for _, f := range res.Universal {
			fmt.Printf("  - %s\n", f)
		}
	}
}
