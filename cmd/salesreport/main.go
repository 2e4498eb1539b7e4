package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"go-sales-report/internal/engine"
	"go-sales-report/internal/ingest"
)

var (
	outputFile string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "salesreport",
	Short: "Batch sales analysis and reporting",
	Long: `salesreport aggregates row-oriented sales data by region, product and
calendar month and emits a deterministic text report.

Rows whose Units or Total fields fail numeric coercion are skipped with a
warning; processing always continues with the remaining rows.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		return err
	},
}

var runCmd = &cobra.Command{
	Use:   "run <input.csv>",
	Short: "Analyze a CSV source and write the report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := args[0]

		logger.Info("reading data", zap.String("source", source))
		rows, err := ingest.ReadRows(source)
		if err != nil {
			return err
		}

		analysis := engine.Run(rows, time.Now())
		for _, skip := range analysis.Skipped {
			logger.Warn("row skipped", zap.String("reason", skip.Reason()))
		}

		if outputFile == "-" {
			fmt.Print(analysis.Report)
			return nil
		}
		if err := os.WriteFile(outputFile, []byte(analysis.Report), 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info("report written",
			zap.String("output", outputFile),
			zap.Int("records", analysis.Result.TotalRecords),
			zap.Int("skipped", len(analysis.Skipped)),
		)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	runCmd.Flags().StringVarP(&outputFile, "output", "o", "analysis_results.txt", `report output path ("-" for stdout)`)
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
