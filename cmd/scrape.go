package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/pictorialkey/internal/fetcher"
	"github.com/arcanaland/pictorialkey/internal/scraper"
)

// scrapeCmd represents the scrape command
var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Fetch all cards and write the JSON files",
	Long: `Scrape fetches the major arcana page and the 56 minor arcana pages one after
another, parses each card's meanings and writes three files to the output directory:
the card data file, the minor arcana text dump and the major arcana text dump.

Cards whose page cannot be fetched or parsed are skipped with a warning.

Examples:
  pictorialkey scrape
  pictorialkey scrape --output ./data --timeout 0
  pictorialkey scrape --fetcher colly`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		// Flags override the config file
		flags := cmd.Flags()
		if flags.Changed("output") {
			cfg.OutputDir, _ = flags.GetString("output")
		}
		if flags.Changed("timeout") {
			cfg.TimeoutSeconds, _ = flags.GetInt("timeout")
		}
		if flags.Changed("fetcher") {
			cfg.Fetcher, _ = flags.GetString("fetcher")
		}

		f, err := fetcher.New(cfg.Fetcher, fetcher.Options{
			Timeout:   cfg.Timeout(),
			UserAgent: cfg.UserAgent,
		})
		if err != nil {
			return err
		}

		start := time.Now()
		result, err := scraper.New(f, cfg, logger).Run(cmd.Context())
		if err != nil {
			return err
		}
		if err := cmd.Context().Err(); err != nil {
			return fmt.Errorf("scrape interrupted: %w", err)
		}

		if err := result.Write(cfg); err != nil {
			return err
		}
		logger.Debug("scrape finished", "seconds", time.Since(start).Seconds())

		fmt.Printf("%s %d cards written to %s\n", color.GreenString("✓"), len(result.Cards), cfg.CardDataPath())
		fmt.Printf("  major text: %s\n", cfg.MajorTextPath())
		fmt.Printf("  minor text: %s\n", cfg.MinorTextPath())
		if len(result.Skipped) > 0 {
			fmt.Printf("%s %d cards skipped\n", color.YellowString("!"), len(result.Skipped))
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringP("output", "o", "", "Directory to write the JSON files to")
	scrapeCmd.Flags().Int("timeout", 60, "Per-request timeout in seconds, 0 for none")
	scrapeCmd.Flags().String("fetcher", "resty", "HTTP fetcher to use (resty or colly)")
}
