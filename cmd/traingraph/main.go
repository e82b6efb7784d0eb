// Command traingraph computes the catalog scenarios and writes, for each, a
// train graph PNG and a CSV of the samples into an output directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cxd309/stem-train-planning/internal/domain"
	"github.com/cxd309/stem-train-planning/internal/export"
	"github.com/cxd309/stem-train-planning/internal/logging"
	"github.com/cxd309/stem-train-planning/internal/render"
	"github.com/cxd309/stem-train-planning/internal/scenario"
	"github.com/cxd309/stem-train-planning/internal/service"
)

func main() {
	var (
		outDir   = flag.String("out", getEnv("TRAINGRAPH_OUT", "."), "Directory for the PNG and CSV files")
		name     = flag.String("scenario", getEnv("TRAINGRAPH_SCENARIO", "all"), "Scenario to generate, or \"all\"")
		logLevel = flag.String("log-level", getEnv("LOG_LEVEL", "info"), "debug, info, warn, or error")
		list     = flag.Bool("list", false, "List scenario names and exit")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Writes <scenario>.png and <scenario>.csv for each catalog scenario.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  TRAINGRAPH_OUT      - Output directory (default: .)\n")
		fmt.Fprintf(os.Stderr, "  TRAINGRAPH_SCENARIO - Scenario name (default: all)\n")
		fmt.Fprintf(os.Stderr, "  LOG_LEVEL           - Log level (default: info)\n")
	}
	flag.Parse()

	logger := logging.NewWithWriter(os.Stderr, *logLevel)
	slog.SetDefault(logger)

	if *list {
		for _, sc := range scenario.Catalog() {
			fmt.Printf("%-22s %s\n", sc.Name, sc.Description)
		}
		return
	}

	scenarios, err := selectScenarios(*name)
	if err != nil {
		slog.Error("unknown scenario", "scenario", *name, "error", err)
		os.Exit(2)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		slog.Error("create output directory", "dir", *outDir, "error", err)
		os.Exit(1)
	}

	svc, err := service.NewScenarioService(len(scenarios), logger)
	if err != nil {
		slog.Error("create scenario service", "error", err)
		os.Exit(1)
	}

	failed := false
	for _, sc := range scenarios {
		if err := generate(context.Background(), svc, sc, *outDir); err != nil {
			slog.Error("scenario failed", "scenario", sc.Name, "error", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func selectScenarios(name string) ([]domain.Scenario, error) {
	if name == "all" {
		return scenario.Catalog(), nil
	}
	sc, err := scenario.Lookup(name)
	if err != nil {
		return nil, err
	}
	return []domain.Scenario{sc}, nil
}

// generate computes sc and writes <name>.png and <name>.csv into dir.
func generate(ctx context.Context, svc *service.ScenarioService, sc domain.Scenario, dir string) error {
	res, err := svc.Compute(ctx, sc)
	if err != nil {
		return err
	}

	pngPath := filepath.Join(dir, sc.Name+".png")
	if err := writeFile(pngPath, func(f *os.File) error {
		return render.TrainGraph(f, res.Trajectories, sc.Network, render.DefaultOptions())
	}); err != nil {
		return err
	}

	rows, err := service.ExportRows(res.Trajectories)
	if err != nil {
		return err
	}
	csvPath := filepath.Join(dir, sc.Name+".csv")
	if err := writeFile(csvPath, func(f *os.File) error { return export.WriteCSV(f, rows) }); err != nil {
		return err
	}

	slog.Info("exported train movements",
		"scenario", sc.Name,
		"trains", res.Trajectories.Len(),
		"failures", len(res.Failures),
		"png", pngPath,
		"csv", csvPath,
	)
	return nil
}

// writeFile creates path, runs write, and removes the file again on failure.
func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// getEnv returns the value of an environment variable or a default value if not set.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
