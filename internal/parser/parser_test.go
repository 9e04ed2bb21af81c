package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/pictorialkey/internal/card"
)

const majorsPage = `<html><body>
<h3>SECTION 2</h3>
<p>The Trumps Major, and their divinatory meanings.</p>
<p>1. THE MAGICIAN.--Skill, diplomacy, address, subtlety; sickness, pain,
loss, disaster, snares of enemies; self-confidence, will; the Querent, if male.
<i>Reversed</i>: Physician, Magus, mental disease, disgrace, disquiet.</p>
<p>10. WHEEL OF FORTUNE.--Destiny, fortune, success, elevation, luck, felicity.
Reversed: Increase, abundance, superfluity.</p>
<p>ZERO. THE FOOL.--Folly, mania, extravagance, intoxication, delirium, frenzy,
bewrayment. Reversed: Negligence, absence, distribution, carelessness, apathy,
nullity, vanity.</p>
</body></html>`

const minorPage = `<html><body>
<p><a href="index.htm">Index</a></p>
<p><img src="img/waac.jpg" alt="Ace of Wands"></p>
<p><b>ACE.</b> A hand issuing from a cloud grasps a stout wand or club.
<i>Divinatory Meanings</i>: Creation, invention, enterprise, the powers which
result in these; principle, beginning, source. <i>Reversed</i>: Fall, decadence,
ruin, perdition, to perish; also a certain clouded joy.</p>
</body></html>`

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"collapse newlines", "a\nb\n\nc", "a b c"},
		{"collapse tabs", "a\t\tb", "a b"},
		{"non-breaking space", "a\u00a0b", "a b"},
		{"trim", "  a b  ", "a b"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestParagraphs(t *testing.T) {
	paragraphs, err := Paragraphs(strings.NewReader(majorsPage))
	require.NoError(t, err)
	require.Len(t, paragraphs, 4)
	assert.Equal(t, "The Trumps Major, and their divinatory meanings.", paragraphs[0])
	assert.True(t, strings.HasPrefix(paragraphs[1], "1. THE MAGICIAN.--Skill"))
}

func TestParseMajor(t *testing.T) {
	paragraphs, err := Paragraphs(strings.NewReader(majorsPage))
	require.NoError(t, err)

	tests := []struct {
		name       string
		text       string
		value      string
		valueInt   int
		cardName   string
		rawName    string
		nameShort  string
		meaningUp  string
		meaningRev string
	}{
		{
			name:       "magician",
			text:       paragraphs[1],
			value:      "1",
			valueInt:   1,
			cardName:   "The Magician",
			rawName:    "THE MAGICIAN",
			nameShort:  "ar01",
			meaningUp:  "Skill, diplomacy, address, subtlety; sickness, pain, loss, disaster, snares of enemies; self-confidence, will; the Querent, if male.",
			meaningRev: "Physician, Magus, mental disease, disgrace, disquiet.",
		},
		{
			name:       "wheel of fortune",
			text:       paragraphs[2],
			value:      "10",
			valueInt:   10,
			cardName:   "Wheel Of Fortune",
			rawName:    "WHEEL OF FORTUNE",
			nameShort:  "ar10",
			meaningUp:  "Destiny, fortune, success, elevation, luck, felicity.",
			meaningRev: "Increase, abundance, superfluity.",
		},
		{
			name:       "fool",
			text:       paragraphs[3],
			value:      "zero",
			valueInt:   0,
			cardName:   "The Fool",
			rawName:    "THE FOOL",
			nameShort:  "ar00",
			meaningUp:  "Folly, mania, extravagance, intoxication, delirium, frenzy, bewrayment.",
			meaningRev: "Negligence, absence, distribution, carelessness, apathy, nullity, vanity.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, entry, err := ParseMajor(tt.text)
			require.NoError(t, err)

			assert.Equal(t, tt.value, c.Value)
			assert.Equal(t, tt.valueInt, c.ValueInt)
			assert.Equal(t, tt.cardName, c.Name)
			assert.Equal(t, tt.nameShort, c.NameShort)
			assert.Equal(t, tt.meaningUp, c.MeaningUp)
			assert.Equal(t, tt.meaningRev, c.MeaningRev)
			assert.Equal(t, card.TypeMajor, c.Type)
			assert.Empty(t, c.Suit)
			assert.Empty(t, c.Desc)

			assert.Equal(t, tt.nameShort, entry.NameShort)
			assert.Equal(t, tt.rawName, entry.Name)
			assert.Equal(t, tt.text, entry.Text)
			assert.Equal(t, tt.value, strings.ToLower(entry.Value))
		})
	}
}

func TestParseMajorNoMatch(t *testing.T) {
	for _, text := range []string{
		"The Trumps Major, and their divinatory meanings.",
		"",
		"One. THE MAGICIAN.--Skill. Reversed: Physician.",
		"12 THE HANGED MAN",
		"22. THE EXTRA.--Nothing. Reversed: Nothing.",
		"99. BOGUS.--x. Reversed: y.",
		"99999999999999999999. HUGE.--x. Reversed: y.",
	} {
		_, _, err := ParseMajor(text)
		assert.ErrorIs(t, err, ErrNoMatch, "text %q", text)
	}
}

func TestParseMajorMissingReversed(t *testing.T) {
	_, _, err := ParseMajor("13. DEATH.--End, mortality, destruction, corruption.")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMarkerNotFound))
	assert.Contains(t, err.Error(), "DEATH")

	var markerErr *MarkerError
	require.ErrorAs(t, err, &markerErr)
	assert.Equal(t, "ar13", markerErr.NameShort)
	assert.Equal(t, MarkerReversed, markerErr.Marker)
}

func TestParseMajorLastTrump(t *testing.T) {
	c, _, err := ParseMajor("21. THE WORLD.--Assured success. Reversed: Inertia.")
	require.NoError(t, err)
	assert.Equal(t, 21, c.ValueInt)
	assert.Equal(t, "ar21", c.NameShort)
}

func TestMinorParagraph(t *testing.T) {
	text, err := MinorParagraph(strings.NewReader(minorPage))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "ACE. A hand issuing from a cloud"))

	_, err = MinorParagraph(strings.NewReader("<html><body><p>one</p><p>two</p></body></html>"))
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestParseMinor(t *testing.T) {
	text, err := MinorParagraph(strings.NewReader(minorPage))
	require.NoError(t, err)

	suit, ok := card.SuitByName("wands")
	require.True(t, ok)
	rank := card.RankByValue(1)

	c, entry, err := ParseMinor(text, suit, rank)
	require.NoError(t, err)

	assert.Equal(t, "ace", c.Value)
	assert.Equal(t, 1, c.ValueInt)
	assert.Equal(t, "Ace of Wands", c.Name)
	assert.Equal(t, "waac", c.NameShort)
	assert.Equal(t, "wands", c.Suit)
	assert.Equal(t, card.TypeMinor, c.Type)
	assert.Equal(t, "ACE. A hand issuing from a cloud grasps a stout wand or club.", c.Desc)
	assert.Equal(t, "Creation, invention, enterprise, the powers which result in these; principle, beginning, source.", c.MeaningUp)
	assert.Equal(t, "Fall, decadence, ruin, perdition, to perish; also a certain clouded joy.", c.MeaningRev)
	assert.Equal(t, "minor_arcana.wands.ace", c.ID())

	assert.Equal(t, "waac", entry.NameShort)
	assert.Equal(t, "ace", entry.ValueLong)
	assert.Equal(t, 1, entry.ValueInt)
	assert.Equal(t, "ace of wands", entry.Name)
	assert.Equal(t, text, entry.Text)
}

func TestParseMinorReversedInDescription(t *testing.T) {
	suit, _ := card.SuitByName("cups")
	text := "A figure with a reversed cup. Reversed vessels lie about. Divinatory Meanings: Joy. Reversed: Sorrow."

	c, _, err := ParseMinor(text, suit, card.RankByValue(5))
	require.NoError(t, err)
	assert.Equal(t, "A figure with a reversed cup. Reversed vessels lie about.", c.Desc)
	assert.Equal(t, "Joy.", c.MeaningUp)
	assert.Equal(t, "Sorrow.", c.MeaningRev)
}

func TestParseMinorMissingMarkers(t *testing.T) {
	suit, _ := card.SuitByName("swords")
	rank := card.RankByValue(14)

	tests := []struct {
		name   string
		text   string
		marker string
	}{
		{"no divinatory meanings", "He sits in judgment. Reversed: Cruelty.", MarkerDivinatory},
		{"no reversed", "He sits in judgment. Divinatory Meanings: Power.", MarkerReversed},
		{"reversed only before meanings", "Reversed sword. Divinatory Meanings: Power.", MarkerReversed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseMinor(tt.text, suit, rank)
			require.ErrorIs(t, err, ErrMarkerNotFound)
			assert.Contains(t, err.Error(), tt.marker)
			assert.Contains(t, err.Error(), "King of Swords")

			var markerErr *MarkerError
			require.ErrorAs(t, err, &markerErr)
			assert.Equal(t, "swki", markerErr.NameShort)
		})
	}
}
