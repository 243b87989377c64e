package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"eshop-catalog/core/catalog"
	"eshop-catalog/core/config"
	"eshop-catalog/core/logger"
	"eshop-catalog/feature/games"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Load the catalog once and report on it",
	Long:  `Fetches both regional catalogs and their prices, merges them, prints summary metrics and exits. With --json the merged catalog is saved to a file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()

		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		provider, err := newProvider(cfg, logg)
		if err != nil {
			return err
		}

		store := catalog.NewStore()
		svc := games.NewService(provider, store, logg, cfg.Eshop)

		logg.Info("Loading catalog (this might take a while)...")
		if err := svc.Init(ctx); err != nil {
			return fmt.Errorf("catalog load failed: %w", err)
		}

		summary := store.Summarize()
		executionTime := time.Since(startTime)

		if jsonOutput {
			filename := fmt.Sprintf("catalog_%d.json", time.Now().Unix())
			data, err := json.MarshalIndent(store.Snapshot(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
			logg.Info("Catalog JSON saved", zap.String("file", filename), zap.Int("games", summary.TotalGames))
		}

		fmt.Println("\n=== Catalog Metrics ===")
		fmt.Printf("Total Games: %d\n", summary.TotalGames)
		fmt.Printf("Americas Only: %d\n", summary.AmericasOnly)
		fmt.Printf("Europe Only: %d\n", summary.EuropeOnly)
		fmt.Printf("Both Regions: %d\n", summary.BothRegions)
		fmt.Printf("Unsold: %d\n", summary.Unsold)
		fmt.Printf("Missing Release Date: %d\n", summary.MissingReleaseDate)
		fmt.Printf("Missing Art: %d\n", summary.MissingArt)
		for _, country := range summary.Countries() {
			fmt.Printf("Priced (%s): %d\n", country, summary.PricedByCountry[country])
		}
		fmt.Printf("Execution Time: %s\n", executionTime.String())

		logg.Info("Catalog report completed",
			zap.Int("total", summary.TotalGames),
			zap.Int("both_regions", summary.BothRegions),
			zap.Duration("execution_time", executionTime),
		)
		return nil
	},
}

func init() {
	catalogCmd.Flags().Bool("json", false, "Save the merged catalog as JSON")
	RootCmd.AddCommand(catalogCmd)
}
