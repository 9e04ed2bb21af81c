package deck

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/pictorialkey/internal/card"
)

func sampleCollection() card.Collection {
	cards := []card.Card{
		{Value: "zero", ValueInt: 0, Name: "The Fool", NameShort: "ar00", Type: card.TypeMajor},
		{Value: "1", ValueInt: 1, Name: "The Magician", NameShort: "ar01", Type: card.TypeMajor},
		{Value: "ace", ValueInt: 1, Name: "Ace of Wands", NameShort: "waac", Suit: "wands", Type: card.TypeMinor},
		{Value: "king", ValueInt: 14, Name: "King of Cups", NameShort: "cuki", Suit: "cups", Type: card.TypeMinor},
	}
	return card.Collection{Count: len(cards), Cards: cards}
}

func writeCollection(t *testing.T, collection card.Collection) string {
	path := filepath.Join(t.TempDir(), "card_data_tmp.json")
	data, err := json.Marshal(collection)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestLoadDeck(t *testing.T) {
	path := writeCollection(t, sampleCollection())

	d, err := LoadDeck(path)
	require.NoError(t, err)
	assert.Equal(t, path, d.Path)
	assert.Equal(t, 4, d.Count)
	assert.Len(t, d.Cards, 4)
	assert.Len(t, d.MajorArcana, 2)
	assert.Len(t, d.MinorArcana, 2)
}

func TestLoadDeckErrors(t *testing.T) {
	_, err := LoadDeck(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	_, err = LoadDeck(path)
	require.Error(t, err)
}

func TestGetCard(t *testing.T) {
	d := NewDeck("", sampleCollection())

	tests := []struct {
		id       string
		expected string
		wantErr  bool
	}{
		{"major_arcana.00", "The Fool", false},
		{"major_arcana.01", "The Magician", false},
		{"minor_arcana.wands.ace", "Ace of Wands", false},
		{"minor_arcana.cups.king", "King of Cups", false},
		{"ar01", "The Magician", false},
		{"cuki", "King of Cups", false},
		{"major_arcana.13", "", true},
		{"major_arcana.xx", "", true},
		{"minor_arcana.coins.ace", "", true},
		{"minor_arcana.wands.two", "", true},
		{"fool", "", true},
		{"custom_cards.major_arcana.squirrel", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			c, err := d.GetCard(tt.id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c.Name)
		})
	}
}

func TestFilter(t *testing.T) {
	d := NewDeck("", sampleCollection())

	assert.Len(t, d.Filter(""), 4)
	assert.Len(t, d.Filter("major"), 2)
	assert.Len(t, d.Filter("wands"), 1)
	assert.Empty(t, d.Filter("swords"))
}
