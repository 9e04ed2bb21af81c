package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/pictorialkey/internal/card"
	"github.com/arcanaland/pictorialkey/internal/config"
	"github.com/arcanaland/pictorialkey/internal/deck"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Browse and manage the scraped deck",
	Long:  `Commands for listing scraped cards and managing where they are written.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the cards in the card data file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataFlag, _ := cmd.Flags().GetString("data")
		path, err := dataPath(dataFlag)
		if err != nil {
			return err
		}

		d, err := deck.LoadDeck(path)
		if err != nil {
			return fmt.Errorf("error loading deck: %w", err)
		}

		suit, _ := cmd.Flags().GetString("suit")
		if major, _ := cmd.Flags().GetBool("major"); major {
			suit = card.TypeMajor
		} else if suit != "" {
			if _, ok := card.SuitByName(suit); !ok {
				return fmt.Errorf("unknown suit: %s", suit)
			}
		}

		cards := d.Filter(suit)
		if len(cards) == 0 {
			fmt.Println("No cards found.")
			fmt.Println("Run 'pictorialkey scrape' to fetch them.")
			return nil
		}

		for _, c := range cards {
			fmt.Printf("  %-24s %s  %s\n", c.ID(), color.CyanString(c.NameShort), c.Name)
		}

		return nil
	},
}

// deckSetOutputCmd represents the deck set-output command
var deckSetOutputCmd = &cobra.Command{
	Use:   "set-output [dir]",
	Short: "Set the directory scraped files are written to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]

		if err := config.SetOutputDir(configPath, dir); err != nil {
			return fmt.Errorf("error setting output directory: %w", err)
		}

		fmt.Printf("Output directory set to: %s\n", dir)
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the config file and output directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Initialize config
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		path := configPath
		if path == "" {
			path = config.GetConfigFilePath()
		}
		fmt.Println("Config file initialized at:", path)

		// Create the output directory if it doesn't exist
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}

		fmt.Println("Output directory ready at:", cfg.OutputDir)
		fmt.Println("Run 'pictorialkey scrape' to fetch the cards.")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckSetOutputCmd)
	deckCmd.AddCommand(deckInitCmd)

	deckListCmd.Flags().String("data", "", "Card data file (default from config)")
	deckListCmd.Flags().StringP("suit", "s", "", "Only list cards of this suit")
	deckListCmd.Flags().Bool("major", false, "Only list the major arcana")
}
