package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"salesetl/internal/config"
	"salesetl/internal/exporter"
	"salesetl/internal/infrastructure"
	"salesetl/internal/operations"
	"salesetl/internal/store"
	"salesetl/pkg/contracts/domain"
)

func main() {
	os.Exit(run())
}

func run() int {
	dataDir := flag.String("data", "", "input directory containing the three source CSV files (defaults to config)")
	dbPath := flag.String("db", "", "SQLite database file (defaults to config)")
	outDir := flag.String("out", "", "output directory for result files (defaults to config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	// Flags win over config file and environment.
	if *dataDir != "" {
		cfg.Paths.DataDir = *dataDir
	}
	if *dbPath != "" {
		cfg.Paths.DatabasePath = *dbPath
	}
	if *outDir != "" {
		cfg.Paths.OutputDir = *outDir
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	logger.Info("starting sales pipeline",
		slog.String("data_dir", cfg.Paths.DataDir),
		slog.String("database", cfg.Paths.DatabasePath),
		slog.String("output_dir", cfg.Paths.OutputDir))

	if err := cfg.Paths.EnsureOutputDir(); err != nil {
		logger.Error("failed to create output directory", slog.String("error", err.Error()))
		return 1
	}

	st, err := store.Open(cfg.Paths.DatabasePath)
	if err != nil {
		logger.Error("failed to open database",
			slog.String("path", cfg.Paths.DatabasePath),
			slog.String("error", err.Error()))
		return 1
	}
	defer st.Close()

	registry := operations.NewRegistry()
	if err := operations.RegisterPipelineSteps(registry, st, cfg.Paths); err != nil {
		logger.Error("failed to register pipeline steps", slog.String("error", err.Error()))
		return 1
	}

	manager := operations.NewManager(registry, logger)
	state, err := manager.Execute(context.Background(), "")
	if err != nil {
		logger.Error("pipeline run failed", slog.String("error", err.Error()))
		return 1
	}

	revenue, leads, err := operations.Results(state)
	if err != nil {
		logger.Error("failed to collect results", slog.String("error", err.Error()))
		return 1
	}

	printResults(revenue, leads)

	writer := exporter.NewCSVWriter(cfg.Paths.OutputDir)
	if _, err := writer.WriteColorRevenue(revenue); err != nil {
		logger.Error("failed to export colour revenue", slog.String("error", err.Error()))
		return 1
	}
	if _, err := writer.WriteAverageLeadTime(leads); err != nil {
		logger.Error("failed to export average lead time", slog.String("error", err.Error()))
		return 1
	}
	if _, err := exporter.WriteWorkbook(cfg.Paths.OutputDir, revenue, leads); err != nil {
		logger.Error("failed to export workbook", slog.String("error", err.Error()))
		return 1
	}

	logger.Info("pipeline run finished", slog.Duration("duration", state.Duration()))
	return 0
}

// printResults echoes both answer tables to stdout for interactive runs.
func printResults(revenue []domain.ColorRevenue, leads []domain.CategoryLeadTime) {
	fmt.Println("Revenue-leading colour per year:")
	fmt.Printf("%-8s %-16s %s\n", "year", "Color", "revenue")
	for _, r := range revenue {
		fmt.Printf("%-8s %-16s %.2f\n", formatYear(r.Year), formatString(r.Color), r.Revenue)
	}

	fmt.Println()
	fmt.Println("Average lead time per product category:")
	fmt.Printf("%-20s %s\n", "ProductCategoryName", "average_lead_time")
	for _, l := range leads {
		fmt.Printf("%-20s %s\n", formatString(l.ProductCategoryName), formatLeadTime(l.AverageLeadTime))
	}
}

func formatYear(year *int) string {
	if year == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *year)
}

func formatString(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func formatLeadTime(days *float64) string {
	if days == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *days)
}
