package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/pictorialkey/internal/card"
	"github.com/arcanaland/pictorialkey/internal/deck"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display the meanings of a scraped card",
	Long: `Show displays the description and divinatory meanings of a scraped card.
Use canonical card IDs like 'major_arcana.00' or 'minor_arcana.wands.ace',
or short codes like 'ar00' or 'waac'.

Examples:
  pictorialkey show major_arcana.00
  pictorialkey show cuki
  pictorialkey show --data ./data/card_data_tmp.json minor_arcana.swords.ten`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cardID := args[0]

		dataFlag, _ := cmd.Flags().GetString("data")
		path, err := dataPath(dataFlag)
		if err != nil {
			return err
		}

		d, err := deck.LoadDeck(path)
		if err != nil {
			return fmt.Errorf("error loading deck: %v", err)
		}

		c, err := d.GetCard(cardID)
		if err != nil {
			return fmt.Errorf("error getting card: %v", err)
		}

		displayCard(os.Stdout, c, terminalWidth())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().String("data", "", "Card data file (default from config)")
}

// terminalWidth returns the width of stdout, or 80 when it isn't a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

func getSuitSymbol(suit string) string {
	switch suit {
	case "wands":
		return "♣"
	case "cups":
		return "♥"
	case "swords":
		return "♠"
	case "pentacles":
		return "♦"
	default:
		return "•"
	}
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			// First word on the line, always add it
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// displayCard writes the card information, wrapping long text to width
func displayCard(w io.Writer, c *card.Card, width int) {
	textWidth := width - 4
	if textWidth < 20 {
		textWidth = 20
	}

	var lines []string
	lines = append(lines, colorize.CyanString("Card: ")+colorize.HiWhiteString("%s", c.Name))
	lines = append(lines, colorize.CyanString("ID:   ")+colorize.HiWhiteString("%s · %s", c.ID(), c.NameShort))

	if c.IsMajor() {
		lines = append(lines, colorize.CyanString("Type: ")+colorize.HiWhiteString("Major Arcana · %d", c.ValueInt))
	} else {
		lines = append(lines, colorize.CyanString("Type: ")+colorize.HiWhiteString("Minor Arcana"))
		lines = append(lines, colorize.CyanString("Suit: ")+
			colorize.HiWhiteString("%s · %s", c.Suit, getSuitSymbol(c.Suit)))
		lines = append(lines, colorize.CyanString("Rank: ")+colorize.HiWhiteString("%s · %d", c.Value, c.ValueInt))
	}

	section := func(title, text string) {
		if text == "" {
			return
		}
		lines = append(lines, "", colorize.CyanString(title))
		lines = append(lines, wrapText(text, textWidth)...)
	}
	section("Description:", c.Desc)
	section("Upright:", c.MeaningUp)
	section("Reversed:", c.MeaningRev)

	fmt.Fprintln(w)
	for _, line := range lines {
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintln(w)
}
