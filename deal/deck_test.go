package deal

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	t.Parallel()

	deck := NewDeck()
	require.Len(t, deck, 52)

	// All 52 cards are distinct.
	seen := make(map[string]bool)
	for _, c := range deck {
		assert.False(t, seen[c.String()], "duplicate card %s", c)
		seen[c.String()] = true
	}
}

func TestShuffleWithIsDeterministic(t *testing.T) {
	t.Parallel()

	first := NewDeck()
	first.ShuffleWith(rand.New(rand.NewPCG(42, 42)))

	second := NewDeck()
	second.ShuffleWith(rand.New(rand.NewPCG(42, 42)))

	assert.Equal(t, first, second)

	third := NewDeck()
	third.ShuffleWith(rand.New(rand.NewPCG(7, 7)))
	assert.NotEqual(t, first, third)
}

func TestShuffleKeepsCards(t *testing.T) {
	t.Parallel()

	deck := NewDeck()
	deck.Shuffle()
	require.Len(t, deck, 52)

	seen := make(map[string]bool)
	for _, c := range deck {
		seen[c.String()] = true
	}
	assert.Len(t, seen, 52)
}
