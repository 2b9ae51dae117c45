package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"pv-battery-sizing/internal/catalog"
	"pv-battery-sizing/internal/config"
	"pv-battery-sizing/internal/evaluation"
	"pv-battery-sizing/internal/model"
	"pv-battery-sizing/internal/report"

	"github.com/spf13/cobra"
)

// Demo: evaluate every consumption profile in every catalog city and show
// which scenario wins where.
func main() {
	var catalogPath, outDir string

	rootCmd := &cobra.Command{
		Use:          "demo",
		Short:        "Evaluate every profile in every city",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(catalogPath, outDir)
		},
	}
	rootCmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file merged over the built-in one")
	rootCmd.Flags().StringVar(&outDir, "out", "", "Optional directory for one scenario CSV per city and profile")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(catalogPath, outDir string) error {
	cat, err := catalog.Open(catalogPath)
	if err != nil {
		return err
	}
	engine := evaluation.New(cat, nil)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CITY\tPROFILE\tKWP\tBATTERY KWH\tBEST\tSCORE\tWORST")
	wins := map[model.ScenarioID]int{}

	for _, city := range cat.ListCities() {
		for _, prof := range cat.ListProfiles() {
			p, err := config.ResolveParameters(config.ParametersConfig{City: city.ID, Profile: prof.ID}, cat)
			if err != nil {
				return err
			}
			res, err := engine.Run(p)
			if err != nil {
				return fmt.Errorf("%s/%s: %w", city.ID, prof.ID, err)
			}
			rec := res.Recommendation
			wins[rec.BestScenario]++
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%s\t%.1f\t%s\n", city.Name, prof.ID,
				res.Sizing.PVPowerKWp, res.Sizing.BatteryCapacityKWh, rec.BestScenario, rec.BestScore, rec.WorstScenario)

			if outDir != "" {
				path := filepath.Join(outDir, fmt.Sprintf("%s_%s.csv", city.ID, prof.ID))
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					return err
				}
				if err := report.WriteScenariosCSV(path, res.Scenarios); err != nil {
					return err
				}
			}
		}
	}
	w.Flush()

	fmt.Println()
	for _, id := range model.Scenarios {
		if n := wins[id]; n > 0 {
			fmt.Printf("%s (%s) recommended %d times\n", id, id.Description(), n)
		}
	}
	return nil
}
