package bridge

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectAscending(h Holding) []Rank {
	var ranks []Rank
	for r := range h.Ranks() {
		ranks = append(ranks, r)
	}
	return ranks
}

func collectDescending(h Holding) []Rank {
	var ranks []Rank
	for r := range h.RanksDesc() {
		ranks = append(ranks, r)
	}
	return ranks
}

func TestHoldingIterBitPattern(t *testing.T) {
	t.Parallel()

	// 0b100100100: ranks 2, 5 and 8 set.
	h := Holding(0x124)
	assert.Equal(t, []Rank{2, 5, 8}, collectAscending(h))
	assert.Equal(t, []Rank{8, 5, 2}, collectDescending(h))
}

func TestHoldingSetSemantics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ranks    []Rank
		expected []Rank
	}{
		{name: "Empty", ranks: nil, expected: nil},
		{name: "Single", ranks: []Rank{RankA}, expected: []Rank{RankA}},
		{name: "Unordered", ranks: []Rank{RankK, Rank2, Rank7}, expected: []Rank{Rank2, Rank7, RankK}},
		{name: "Duplicates", ranks: []Rank{Rank5, Rank5, Rank5, Rank9}, expected: []Rank{Rank5, Rank9}},
		{
			name:     "Full suit",
			ranks:    []Rank{Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8, Rank9, Rank10, RankJ, RankQ, RankK, RankA},
			expected: []Rank{Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8, Rank9, Rank10, RankJ, RankQ, RankK, RankA},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := NewHolding(tt.ranks...)
			ascending := collectAscending(h)
			assert.Equal(t, tt.expected, ascending)
			assert.Equal(t, len(ascending), h.Count())

			descending := collectDescending(h)
			slices.Reverse(descending)
			assert.Equal(t, ascending, descending)
		})
	}
}

func TestHoldingAddRemoveContains(t *testing.T) {
	t.Parallel()

	var h Holding
	assert.False(t, h.Contains(RankQ))

	h.Add(RankQ)
	assert.True(t, h.Contains(RankQ))
	assert.Equal(t, 1, h.Count())

	// Adding a held rank changes nothing.
	h.Add(RankQ)
	assert.Equal(t, 1, h.Count())

	h.Remove(RankQ)
	assert.False(t, h.Contains(RankQ))
	assert.Zero(t, h.Count())

	// Removing an absent rank changes nothing.
	h.Remove(RankQ)
	assert.Zero(t, h.Count())
}

func TestHoldingIterEmptyAndMixed(t *testing.T) {
	t.Parallel()

	// An empty holding is exhausted immediately from both ends.
	it := NewHolding().Iter()
	_, ok := it.Next()
	assert.False(t, ok)
	_, ok = it.NextBack()
	assert.False(t, ok)

	// Front and back consume the same sequence without overlap.
	mixed := NewHolding(Rank2, Rank5, Rank8, RankJ).Iter()
	front, ok := mixed.Next()
	require.True(t, ok)
	assert.Equal(t, Rank2, front)

	back, ok := mixed.NextBack()
	require.True(t, ok)
	assert.Equal(t, RankJ, back)

	back, ok = mixed.NextBack()
	require.True(t, ok)
	assert.Equal(t, Rank8, back)

	front, ok = mixed.Next()
	require.True(t, ok)
	assert.Equal(t, Rank5, front)

	_, ok = mixed.Next()
	assert.False(t, ok)
	_, ok = mixed.NextBack()
	assert.False(t, ok)
}

func TestHoldingRanksRestartable(t *testing.T) {
	t.Parallel()

	h := NewHolding(Rank3, Rank10, RankA)
	first := collectAscending(h)
	second := collectAscending(h)
	assert.Equal(t, first, second)
}

func TestHoldingString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		holding  Holding
		expected string
	}{
		{name: "Void", holding: NewHolding(), expected: "-"},
		{name: "Descending chars", holding: NewHolding(Rank7, Rank2, RankQ, RankA, RankK), expected: "AKQ72"},
		{name: "Ten as T", holding: NewHolding(Rank10, Rank9, Rank8), expected: "T98"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.holding.String())
		})
	}
}

func TestParseHolding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Holding
		hasError bool
	}{
		{name: "Void dash", input: "-", expected: NewHolding()},
		{name: "Void empty", input: "", expected: NewHolding()},
		{name: "Ordered", input: "AKQ72", expected: NewHolding(RankA, RankK, RankQ, Rank7, Rank2)},
		{name: "Unordered with duplicates", input: "27QKAA", expected: NewHolding(RankA, RankK, RankQ, Rank7, Rank2)},
		{name: "Ten spelled out", input: "A104", expected: NewHolding(RankA, Rank10, Rank4)},
		{name: "Invalid character", input: "AK1", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, err := ParseHolding(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, h)
			}
		})
	}
}

func TestHoldingTextRoundTrip(t *testing.T) {
	t.Parallel()

	holdings := []Holding{
		NewHolding(),
		NewHolding(RankA),
		NewHolding(Rank2, Rank5, Rank8),
		Holding(0x7FFC), // all thirteen ranks
	}

	for _, h := range holdings {
		text, err := h.MarshalText()
		require.NoError(t, err)

		var decoded Holding
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, h, decoded)
	}
}
