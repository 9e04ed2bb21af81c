package parser

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/arcanaland/pictorialkey/internal/card"
)

// Literal markers splitting a card paragraph into its spans
const (
	MarkerDivinatory = "Divinatory Meanings"
	MarkerReversed   = "Reversed"
)

var (
	// ErrNoMatch is returned when a page or paragraph holds no card
	ErrNoMatch = errors.New("no card paragraph found")
	// ErrMarkerNotFound is returned when a card paragraph lacks a marker
	ErrMarkerNotFound = errors.New("marker not found")
)

// MarkerError reports a card paragraph missing one of its markers
type MarkerError struct {
	Name      string // Card name as found in the paragraph
	NameShort string
	Marker    string
}

func (e *MarkerError) Error() string {
	return fmt.Sprintf("%s: %q: %v", e.Name, e.Marker, ErrMarkerNotFound)
}

func (e *MarkerError) Unwrap() error {
	return ErrMarkerNotFound
}

// majorPattern matches a leading ordinal and the card name up to the next
// period, e.g. "1. THE MAGICIAN.--" or "ZERO. THE FOOL.--"
var majorPattern = regexp.MustCompile(`^([0-9]+|ZERO)(\..[^.]*)\.`)

var whitespace = regexp.MustCompile(`[\s\x{00a0}]+`)

// separators left behind once a paragraph is cut at a marker
const separators = " .-–—:;,"

// Normalize collapses whitespace runs to a single space and trims the ends
func Normalize(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// cleanSpan trims whitespace and leading separator punctuation from a span
func cleanSpan(s string) string {
	return strings.TrimSpace(strings.TrimLeft(s, separators))
}

// Paragraphs returns the normalized text of every <p> in the document
func Paragraphs(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var paragraphs []string
	doc.Find("p").Each(func(i int, s *goquery.Selection) {
		paragraphs = append(paragraphs, Normalize(s.Text()))
	})

	return paragraphs, nil
}

// MinorParagraph returns the normalized text of the paragraph holding a
// minor card's description and meanings: the third <p> of the page.
func MinorParagraph(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	sel := doc.Find("p:nth-of-type(3)").First()
	if sel.Length() == 0 {
		return "", ErrNoMatch
	}

	return Normalize(sel.Text()), nil
}

// ParseMajor parses a majors page paragraph. Paragraphs without a leading
// ordinal in 0-21 yield ErrNoMatch; a card without its Reversed marker
// yields a *MarkerError.
func ParseMajor(text string) (*card.Card, *card.MajorText, error) {
	m := majorPattern.FindStringSubmatchIndex(text)
	if m == nil {
		return nil, nil, ErrNoMatch
	}

	value := text[m[2]:m[3]]
	rawName := strings.TrimSpace(text[m[4]+1 : m[5]])

	valueInt := 0
	if value != "ZERO" {
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid ordinal %q: %w", value, ErrNoMatch)
		}
		valueInt = n
	}
	if valueInt > card.MaxMajorValue {
		return nil, nil, fmt.Errorf("ordinal %d out of range: %w", valueInt, ErrNoMatch)
	}

	shortCode := card.MajorShortCode(valueInt)
	rest := text[m[5]:]
	idx := strings.Index(rest, MarkerReversed)
	if idx < 0 {
		return nil, nil, &MarkerError{Name: rawName, NameShort: shortCode, Marker: MarkerReversed}
	}

	c := &card.Card{
		Value:      strings.ToLower(value),
		ValueInt:   valueInt,
		Name:       cases.Title(language.English).String(rawName),
		NameShort:  shortCode,
		MeaningUp:  cleanSpan(rest[:idx]),
		MeaningRev: cleanSpan(rest[idx+len(MarkerReversed):]),
		Type:       card.TypeMajor,
	}
	entry := &card.MajorText{
		NameShort: shortCode,
		Name:      rawName,
		Text:      text,
		Value:     value,
	}

	return c, entry, nil
}

// ParseMinor parses the paragraph of a minor card page into the card of the
// given suit and rank.
func ParseMinor(text string, suit card.Suit, rank card.Rank) (*card.Card, *card.MinorText, error) {
	name := card.MinorName(rank, suit)
	shortCode := card.MinorShortCode(rank, suit)

	div := strings.Index(text, MarkerDivinatory)
	if div < 0 {
		return nil, nil, &MarkerError{Name: name, NameShort: shortCode, Marker: MarkerDivinatory}
	}
	meanings := text[div+len(MarkerDivinatory):]

	rev := strings.Index(meanings, MarkerReversed)
	if rev < 0 {
		return nil, nil, &MarkerError{Name: name, NameShort: shortCode, Marker: MarkerReversed}
	}

	c := &card.Card{
		Value:      rank.Name,
		ValueInt:   rank.Value,
		Name:       name,
		NameShort:  shortCode,
		Suit:       suit.Name,
		MeaningUp:  cleanSpan(meanings[:rev]),
		MeaningRev: cleanSpan(meanings[rev+len(MarkerReversed):]),
		Type:       card.TypeMinor,
		Desc:       cleanSpan(text[:div]),
	}
	entry := &card.MinorText{
		NameShort: shortCode,
		Text:      text,
		ValueLong: rank.Name,
		ValueInt:  rank.Value,
		Name:      rank.Name + " of " + suit.Name,
	}

	return c, entry, nil
}
