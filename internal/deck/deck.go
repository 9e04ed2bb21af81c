package deck

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/arcanaland/pictorialkey/internal/card"
)

// Deck is a scraped card data file loaded for lookup
type Deck struct {
	Path  string
	Count int // Count recorded in the file
	Cards []*card.Card

	// Card maps for lookup
	MajorArcana map[int]*card.Card
	MinorArcana map[string]map[string]*card.Card // suit -> rank name -> card
	byShortCode map[string]*card.Card
}

// LoadDeck loads a card data file
func LoadDeck(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading card data: %w", err)
	}

	var collection card.Collection
	if err := json.Unmarshal(data, &collection); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	return NewDeck(path, collection), nil
}

// NewDeck indexes the cards of a collection
func NewDeck(path string, collection card.Collection) *Deck {
	d := &Deck{
		Path:        path,
		Count:       collection.Count,
		MajorArcana: make(map[int]*card.Card),
		MinorArcana: make(map[string]map[string]*card.Card),
		byShortCode: make(map[string]*card.Card),
	}

	for i := range collection.Cards {
		c := &collection.Cards[i]
		d.Cards = append(d.Cards, c)
		d.byShortCode[c.NameShort] = c

		if c.IsMajor() {
			d.MajorArcana[c.ValueInt] = c
			continue
		}

		if d.MinorArcana[c.Suit] == nil {
			d.MinorArcana[c.Suit] = make(map[string]*card.Card)
		}
		d.MinorArcana[c.Suit][card.RankByValue(c.ValueInt).Name] = c
	}

	return d
}

// GetCard gets a card by its canonical ID (major_arcana.00,
// minor_arcana.wands.ace) or its short code (ar00, waac)
func (d *Deck) GetCard(cardID string) (*card.Card, error) {
	if c, ok := d.byShortCode[cardID]; ok {
		return c, nil
	}

	parts := strings.Split(cardID, ".")
	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid card ID format: %s", cardID)
	}

	if parts[0] == "major_arcana" && len(parts) == 2 {
		var number int
		if _, err := fmt.Sscanf(parts[1], "%d", &number); err != nil {
			return nil, fmt.Errorf("invalid card ID format: %s", cardID)
		}
		c, ok := d.MajorArcana[number]
		if !ok {
			return nil, fmt.Errorf("card not found: %s", cardID)
		}
		return c, nil
	} else if parts[0] == "minor_arcana" && len(parts) == 3 {
		suitMap, ok := d.MinorArcana[parts[1]]
		if !ok {
			return nil, fmt.Errorf("suit not found: %s", parts[1])
		}
		c, ok := suitMap[parts[2]]
		if !ok {
			return nil, fmt.Errorf("card not found: %s", cardID)
		}
		return c, nil
	}

	return nil, fmt.Errorf("invalid card ID format: %s", cardID)
}

// Filter returns the cards of the given suit, or the majors when suit is
// "major". An empty suit returns every card.
func (d *Deck) Filter(suit string) []*card.Card {
	if suit == "" {
		return d.Cards
	}

	var cards []*card.Card
	for _, c := range d.Cards {
		if suit == card.TypeMajor && c.IsMajor() {
			cards = append(cards, c)
		} else if !c.IsMajor() && c.Suit == suit {
			cards = append(cards, c)
		}
	}
	return cards
}
