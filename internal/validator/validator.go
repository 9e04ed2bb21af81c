package validator

import (
	"fmt"
	"strings"

	"github.com/arcanaland/pictorialkey/internal/card"
	"github.com/arcanaland/pictorialkey/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	DataPath string
	Results  ValidationResults

	deck *deck.Deck
}

func NewValidator(dataPath string) *Validator {
	return &Validator{
		DataPath: dataPath,
		Results:  ValidationResults{},
	}
}

// Validate loads the card data file and checks it. An error is returned only
// when the file cannot be read at all.
func (v *Validator) Validate() (ValidationResults, error) {
	d, err := deck.LoadDeck(v.DataPath)
	if err != nil {
		return v.Results, err
	}
	v.deck = d

	v.validateCount()
	v.validateCards()
	v.validateMajorArcana()
	v.validateMinorArcana()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// validateCount checks the recorded count against the cards present
func (v *Validator) validateCount() {
	if v.deck.Count != len(v.deck.Cards) {
		v.errorf("count is %d but the file holds %d cards", v.deck.Count, len(v.deck.Cards))
	}
}

// validateCards checks the fields of every card
func (v *Validator) validateCards() {
	seen := make(map[string]bool)

	for i, c := range v.deck.Cards {
		label := c.NameShort
		if label == "" {
			v.errorf("card %d has no name_short", i)
			label = fmt.Sprintf("#%d", i)
		} else if seen[c.NameShort] {
			v.errorf("duplicate name_short: %s", c.NameShort)
		}
		seen[c.NameShort] = true

		if c.ValueInt < 0 {
			v.errorf("%s: negative value_int %d", label, c.ValueInt)
		}

		switch c.Type {
		case card.TypeMajor:
			if c.ValueInt > card.MaxMajorValue {
				v.errorf("%s: major value_int %d above %d", label, c.ValueInt, card.MaxMajorValue)
			}
		case card.TypeMinor:
			if _, ok := card.SuitByName(c.Suit); !ok {
				v.errorf("%s: unknown suit %q", label, c.Suit)
			}
			if strings.TrimSpace(c.Desc) == "" {
				v.warnf("%s: empty desc", label)
			}
		default:
			v.errorf("%s: unknown type %q", label, c.Type)
		}

		if strings.TrimSpace(c.MeaningUp) == "" {
			v.warnf("%s: empty meaning_up", label)
		}
		if strings.TrimSpace(c.MeaningRev) == "" {
			v.warnf("%s: empty meaning_rev", label)
		}
	}
}

// validateMajorArcana checks that all 22 major arcana cards (00-21) exist
func (v *Validator) validateMajorArcana() {
	missingCards := []string{}
	for i, name := range card.MajorNames {
		c, ok := v.deck.MajorArcana[i]
		if !ok {
			missingCards = append(missingCards, fmt.Sprintf("%02d", i))
			continue
		}

		if !strings.EqualFold(c.Name, name) {
			v.warnf("%s: name %q differs from %q", c.NameShort, c.Name, name)
		}
	}

	if len(missingCards) > 0 {
		v.errorf("missing major arcana cards: %s", strings.Join(missingCards, ", "))
	}
}

// validateMinorArcana checks that all 14 cards of the four suits exist
func (v *Validator) validateMinorArcana() {
	for _, suit := range card.Suits {
		suitMap, ok := v.deck.MinorArcana[suit.Name]
		if !ok {
			v.errorf("missing suit: %s", suit.Name)
			continue
		}

		missingCards := []string{}
		for _, rank := range card.Ranks {
			if _, ok := suitMap[rank.Name]; !ok {
				missingCards = append(missingCards, rank.Name)
			}
		}

		if len(missingCards) > 0 {
			v.errorf("missing cards in %s suit: %s", suit.Name, strings.Join(missingCards, ", "))
		}
	}
}
