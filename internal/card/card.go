package card

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Card types
const (
	TypeMajor = "major"
	TypeMinor = "minor"
)

// Card represents a scraped tarot card. Major and minor cards share the
// record; Suit and Desc only belong to the minor arcana and are written
// for every minor card, empty or not.
type Card struct {
	Value      string `json:"value"`      // Ordinal token (major) or rank word (minor), lower case
	ValueInt   int    `json:"value_int"`  // 0-21 for major, 1-14 for minor
	Name       string `json:"name"`       // Display name
	NameShort  string `json:"name_short"` // Short code (e.g., ar01, waac)
	Suit       string `json:"suit"`
	MeaningUp  string `json:"meaning_up"`
	MeaningRev string `json:"meaning_rev"`
	Type       string `json:"type"` // major or minor
	Desc       string `json:"desc"`
}

type majorJSON struct {
	Value      string `json:"value"`
	ValueInt   int    `json:"value_int"`
	Name       string `json:"name"`
	NameShort  string `json:"name_short"`
	MeaningUp  string `json:"meaning_up"`
	MeaningRev string `json:"meaning_rev"`
	Type       string `json:"type"`
}

type minorJSON struct {
	Value      string `json:"value"`
	ValueInt   int    `json:"value_int"`
	Name       string `json:"name"`
	NameShort  string `json:"name_short"`
	Suit       string `json:"suit"`
	MeaningUp  string `json:"meaning_up"`
	MeaningRev string `json:"meaning_rev"`
	Type       string `json:"type"`
	Desc       string `json:"desc"`
}

// MarshalJSON writes the record layout of the card's type
func (c Card) MarshalJSON() ([]byte, error) {
	if c.IsMajor() {
		return json.Marshal(majorJSON{
			Value:      c.Value,
			ValueInt:   c.ValueInt,
			Name:       c.Name,
			NameShort:  c.NameShort,
			MeaningUp:  c.MeaningUp,
			MeaningRev: c.MeaningRev,
			Type:       c.Type,
		})
	}
	return json.Marshal(minorJSON(c))
}

// IsMajor reports whether the card belongs to the major arcana
func (c *Card) IsMajor() bool {
	return c.Type == TypeMajor
}

// ID returns the canonical ID of the card (e.g., major_arcana.00, minor_arcana.wands.ace)
func (c *Card) ID() string {
	if c.IsMajor() {
		return fmt.Sprintf("major_arcana.%02d", c.ValueInt)
	}
	return fmt.Sprintf("minor_arcana.%s.%s", c.Suit, RankByValue(c.ValueInt).Name)
}

// MajorText is the raw paragraph a major card was parsed from
type MajorText struct {
	NameShort string `json:"name_short"`
	Name      string `json:"name"`
	Text      string `json:"text"`
	Value     string `json:"value"`
}

// MinorText is the raw paragraph a minor card was parsed from
type MinorText struct {
	NameShort string `json:"name_short"`
	Text      string `json:"text"`
	ValueLong string `json:"value_long"`
	ValueInt  int    `json:"value_int"`
	Name      string `json:"name"`
}

// Suit of the minor arcana
type Suit struct {
	Code string // Page code on the source site
	Name string
}

// Rank of a minor arcana card
type Rank struct {
	Code  string
	Name  string
	Value int
}

// Suits in fetch order
var Suits = []Suit{
	{"wa", "wands"},
	{"cu", "cups"},
	{"pe", "pentacles"},
	{"sw", "swords"},
}

// Ranks in fetch order, courts first as the source site lists them
var Ranks = []Rank{
	{"pa", "page", 11},
	{"kn", "knight", 12},
	{"qu", "queen", 13},
	{"ki", "king", 14},
	{"ac", "ace", 1},
	{"02", "two", 2},
	{"03", "three", 3},
	{"04", "four", 4},
	{"05", "five", 5},
	{"06", "six", 6},
	{"07", "seven", 7},
	{"08", "eight", 8},
	{"09", "nine", 9},
	{"10", "ten", 10},
}

// SuitByName looks up a suit by its lower-case name
func SuitByName(name string) (Suit, bool) {
	for _, s := range Suits {
		if s.Name == name {
			return s, true
		}
	}
	return Suit{}, false
}

// RankByValue looks up a rank by its numeric value. Unknown values yield a
// zero Rank.
func RankByValue(value int) Rank {
	for _, r := range Ranks {
		if r.Value == value {
			return r
		}
	}
	return Rank{}
}

// MinorName builds the display name of a minor card, e.g. "Two of Wands"
func MinorName(rank Rank, suit Suit) string {
	return capitalize(rank.Name) + " of " + capitalize(suit.Name)
}

// MinorShortCode builds the short code of a minor card, e.g. "wa02"
func MinorShortCode(rank Rank, suit Suit) string {
	return suit.Code + rank.Code
}

// MaxMajorValue is the highest major arcana ordinal
const MaxMajorValue = 21

// MajorShortCode builds the short code of a major card, e.g. "ar07"
func MajorShortCode(value int) string {
	return fmt.Sprintf("ar%02d", value)
}

// MajorNames holds the conventional Rider-Waite names, indexed by ordinal
var MajorNames = [...]string{
	"The Fool",
	"The Magician",
	"The High Priestess",
	"The Empress",
	"The Emperor",
	"The Hierophant",
	"The Lovers",
	"The Chariot",
	"Strength",
	"The Hermit",
	"Wheel of Fortune",
	"Justice",
	"The Hanged Man",
	"Death",
	"Temperance",
	"The Devil",
	"The Tower",
	"The Star",
	"The Moon",
	"The Sun",
	"Judgement",
	"The World",
}

// capitalize upper-cases the first letter and lower-cases the rest
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// Collection is the card data file layout
type Collection struct {
	Count int    `json:"count"`
	Cards []Card `json:"cards"`
}
