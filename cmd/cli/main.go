package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"pv-battery-sizing/internal/catalog"
	"pv-battery-sizing/internal/config"
	"pv-battery-sizing/internal/evaluation"
	"pv-battery-sizing/internal/model"
	"pv-battery-sizing/internal/pricing"
	"pv-battery-sizing/internal/report"
	"pv-battery-sizing/internal/scoring"
	"pv-battery-sizing/internal/sizing"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "pvsizing",
		Short:        "Size a PV + battery installation and compare five supply scenarios",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(evaluateCmd())
	rootCmd.AddCommand(sizeCmd())
	rootCmd.AddCommand(catalogCmd())
	rootCmd.AddCommand(billCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig returns the config at path, or an empty config with the
// built-in defaults when path is empty.
func loadConfig(path string) (*config.Config, *catalog.Catalog, error) {
	cfg := &config.Config{}
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, nil, err
		}
	}
	if cfg.CatalogFile == "" {
		cfg.CatalogFile = catalog.DefaultPath()
	}
	cat, err := cfg.Catalog()
	if err != nil {
		return nil, nil, err
	}
	return cfg, cat, nil
}

func evaluateCmd() *cobra.Command {
	var cfgPath, csvPath, jsonPath string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Run sizing, the five scenarios, scoring and the recommendation",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, cat, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			resolved, err := cfg.Resolve(cat)
			if err != nil {
				return err
			}

			scorer, err := scoring.New(resolved.Weights, resolved.Costs)
			if err != nil {
				return err
			}
			res, err := evaluation.New(cat, scorer).Run(resolved.Parameters)
			if err != nil {
				return err
			}

			printResult(res)
			if cfg.Tariff != "" {
				if err := printSavings(cat, cfg.Tariff, res); err != nil {
					return err
				}
			}
			if cfg.Subsidy != "" {
				best, _ := res.Outcome(res.Recommendation.BestScenario)
				amount := pricing.SubsidyFor(cat, cfg.Subsidy, best.TotalCost)
				fmt.Printf("Subsidy %s on %s investment (%.0f): %s\n", cfg.Subsidy, best.Scenario, best.TotalCost, amount)
			}

			if csvPath != "" {
				if err := ensureDir(csvPath); err != nil {
					return err
				}
				if err := report.WriteScenariosCSV(csvPath, res.Scenarios); err != nil {
					return err
				}
				fmt.Printf("Wrote %d rows to %s\n", len(res.Scenarios), csvPath)
			}
			if jsonPath != "" {
				if err := ensureDir(jsonPath); err != nil {
					return err
				}
				if err := report.WriteJSON(jsonPath, res); err != nil {
					return err
				}
				fmt.Printf("Wrote %s\n", jsonPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to YAML config (default: built-in household)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Write scenario outcomes as CSV")
	cmd.Flags().StringVar(&jsonPath, "json", "", "Write the full result as JSON")
	return cmd
}

func sizeCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "size",
		Short: "Compute PV power, annual yield and battery capacity",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, cat, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			p, err := config.ResolveParameters(cfg.Parameters, cat)
			if err != nil {
				return err
			}
			s, err := evaluation.New(cat, nil).Size(p)
			if err != nil {
				return err
			}

			moduleType := cfg.Parameters.ModuleType
			if moduleType == "" {
				moduleType = config.DefaultModuleType
			}
			module, err := cat.Module(moduleType)
			if err != nil {
				return err
			}

			daily := sizing.DailyConsumptionKWh(p.AnnualConsumptionKWh)
			fmt.Printf("Daily consumption:  %.2f kWh (average %.2f kW)\n", daily, sizing.AveragePowerKW(daily))
			fmt.Printf("PV power:           %.2f kWp\n", s.PVPowerKWp)
			fmt.Printf("Annual yield:       %.0f kWh\n", s.AnnualYieldKWh)
			fmt.Printf("Modules (%s):  %d, %.1f m²\n", module.ID,
				sizing.ModuleCount(s.PVPowerKWp, module), sizing.ArrayAreaM2(s.PVPowerKWp, module))
			fmt.Printf("Battery (%s):   %.2f kWh\n", p.BatteryTech, s.BatteryCapacityKWh)
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to YAML config (default: built-in household)")
	return cmd
}

func catalogCmd() *cobra.Command {
	var catalogPath, dumpPath string

	cmd := &cobra.Command{
		Use:       "catalog [batteries|modules|inverters|cities|profiles|tariffs|subsidies]",
		Short:     "List catalog entries",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"batteries", "modules", "inverters", "cities", "profiles", "tariffs", "subsidies"},
		RunE: func(_ *cobra.Command, args []string) error {
			if catalogPath == "" {
				catalogPath = catalog.DefaultPath()
			}
			cat, err := catalog.Open(catalogPath)
			if err != nil {
				return err
			}
			if dumpPath != "" {
				if err := cat.Save(dumpPath); err != nil {
					return err
				}
				fmt.Printf("Wrote catalog to %s\n", dumpPath)
				return nil
			}

			section := "batteries"
			if len(args) == 1 {
				section = args[0]
			}
			return printCatalog(cat, section)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file merged over the built-in one (default: $CATALOG_FILE)")
	cmd.Flags().StringVar(&dumpPath, "dump", "", "Write the merged catalog as YAML and exit")
	return cmd
}

func billCmd() *cobra.Command {
	var consumption, gridImport float64
	var tariffID string

	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Estimate an annual electricity bill",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalog.Open(catalog.DefaultPath())
			if err != nil {
				return err
			}
			tariff, err := cat.Tariff(tariffID)
			if err != nil {
				return err
			}
			bill, err := pricing.EstimateBill(consumption, tariff)
			if err != nil {
				return err
			}

			fmt.Printf("Tariff:        %s\n", tariff.Name)
			fmt.Printf("Fixed charges: %s\n", bill.FixedCharge)
			fmt.Printf("Energy:        %s\n", bill.EnergyCharge)
			fmt.Printf("Total:         %s\n", bill.Total)

			if cmd.Flags().Changed("grid-import") {
				saved, err := pricing.AnnualSavings(consumption, gridImport, tariff)
				if err != nil {
					return err
				}
				fmt.Printf("Savings:       %s\n", saved)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&consumption, "consumption", 4500, "Annual consumption (kWh)")
	cmd.Flags().Float64Var(&gridImport, "grid-import", 0, "Annual grid import after PV (kWh); reports savings")
	cmd.Flags().StringVar(&tariffID, "tariff", "residential_low", "Tariff id")
	return cmd
}

func printResult(res *evaluation.Result) {
	fmt.Printf("PV power %.2f kWp, annual yield %.0f kWh, battery %.2f kWh\n\n",
		res.Sizing.PVPowerKWp, res.Sizing.AnnualYieldKWh, res.Sizing.BatteryCapacityKWh)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tGRID IMPORT\tSELF-CONS %\tCOVERAGE %\tGRID RED %\tCOST\tSCORE")
	for _, o := range res.Scenarios {
		fmt.Fprintf(w, "%s\t%.0f\t%.1f\t%.1f\t%.1f\t%.0f\t%.1f\n",
			o.Scenario, o.GridImport, o.SelfConsumptionRate, o.CoverageRate, o.GridReduction, o.TotalCost, o.Score)
	}
	w.Flush()

	fmt.Println()
	fmt.Println(res.Recommendation.Justification)
	fmt.Printf("Lowest score: %s (%.1f)\n", res.Recommendation.WorstScenario, res.Recommendation.WorstScore)
}

func printSavings(cat *catalog.Catalog, tariffID string, res *evaluation.Result) error {
	tariff, err := cat.Tariff(tariffID)
	if err != nil {
		return err
	}
	fmt.Printf("\nAnnual savings (%s):\n", tariff.Name)
	for _, o := range res.Scenarios {
		if o.Scenario == model.ScenarioGridOnly {
			continue
		}
		saved, err := pricing.AnnualSavings(res.Parameters.AnnualConsumptionKWh, o.GridImport, tariff)
		if err != nil {
			return err
		}
		fmt.Printf("  %s  %s\n", o.Scenario, saved)
	}
	return nil
}

func printCatalog(cat *catalog.Catalog, section string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	switch strings.ToLower(section) {
	case "batteries":
		fmt.Fprintln(w, "ID\tNAME\tDOD\tEFFICIENCY\tCYCLES\tCOST/KWH")
		for _, b := range cat.ListBatteries() {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%d\t%.0f\n", b.ID, b.Name, b.DoD, b.Efficiency, b.LifetimeCycles, b.CostPerKWh)
		}
	case "modules":
		fmt.Fprintln(w, "ID\tNAME\tEFFICIENCY\tKWP/MODULE\tM²/MODULE\tCOST/KWP")
		for _, m := range cat.ListModules() {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.1f\t%.0f\n", m.ID, m.Name, m.EfficiencyTypical, m.PowerPerModuleKWp, m.AreaPerModuleM2, m.CostPerKWp)
		}
	case "inverters":
		fmt.Fprintln(w, "ID\tNAME\tEFFICIENCY\tCOST/KW\tLIFETIME")
		for _, i := range cat.ListInverters() {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%.0f\t%d\n", i.ID, i.Name, i.Efficiency, i.CostPerKW, i.LifetimeYears)
		}
	case "cities":
		fmt.Fprintln(w, "ID\tNAME\tIRRADIATION")
		for _, c := range cat.ListCities() {
			fmt.Fprintf(w, "%s\t%s\t%.0f\n", c.ID, c.Name, c.Irradiation)
		}
	case "profiles":
		fmt.Fprintln(w, "ID\tNAME\tANNUAL KWH\tDAY FRACTION")
		for _, p := range cat.ListProfiles() {
			fmt.Fprintf(w, "%s\t%s\t%.0f\t%.2f\n", p.ID, p.Name, p.AnnualConsumptionKWh, p.DayFraction)
		}
	case "tariffs":
		fmt.Fprintln(w, "ID\tNAME\tFIXED/MONTH\tBLOCKS")
		for _, t := range cat.ListTariffs() {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\n", t.ID, t.Name, t.FixedMonthly, len(t.Blocks))
		}
	case "subsidies":
		fmt.Fprintln(w, "ID\tNAME\tRATE\tMAX")
		for _, s := range cat.ListSubsidies() {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%.0f\n", s.ID, s.Name, s.Rate, s.MaxAmount)
		}
	default:
		return fmt.Errorf("unknown catalog section %q", section)
	}
	return nil
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
