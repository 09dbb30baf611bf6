package deal

import (
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/contract-bridge/bridge"
)

func dealBoard(t *testing.T, number int, seed uint64) Board {
	t.Helper()
	deck := NewDeck()
	deck.ShuffleWith(rand.New(rand.NewPCG(seed, seed)))
	board, err := NewBoard(number, deck)
	require.NoError(t, err)
	return board
}

func TestNewBoardDealsThirteenEach(t *testing.T) {
	t.Parallel()

	board := dealBoard(t, 1, 42)
	assert.NotEmpty(t, board.ID)

	totalHCP := 0
	seen := make(map[string]bool)
	for _, seat := range bridge.Seats {
		hand := board.Hands.Get(seat)
		assert.Equal(t, 13, hand.Count(), "seat %s", seat)
		totalHCP += hand.HCP()

		// Hands are disjoint; together they cover the whole deck.
		for _, suit := range bridge.Suits {
			for rank := range hand.Holding(suit).Ranks() {
				card := bridge.Card{Rank: rank, Suit: suit}
				assert.False(t, seen[card.String()], "card %s dealt twice", card)
				seen[card.String()] = true
			}
		}
	}
	assert.Len(t, seen, 52)
	assert.Equal(t, 40, totalHCP)
}

func TestNewBoardSeededReproducible(t *testing.T) {
	t.Parallel()

	first := dealBoard(t, 3, 7)
	second := dealBoard(t, 3, 7)
	assert.Equal(t, first.Hands, second.Hands)

	// Board IDs stay unique even for identical deals.
	assert.NotEqual(t, first.ID, second.ID)
}

func TestNewBoardRejectsBadDecks(t *testing.T) {
	t.Parallel()

	_, err := NewBoard(1, NewDeck()[:51])
	assert.Error(t, err)

	duplicated := NewDeck()
	duplicated[1] = duplicated[0]
	_, err = NewBoard(1, duplicated)
	assert.Error(t, err)
}

func TestNewBoardRejectsBadNumbers(t *testing.T) {
	t.Parallel()

	for _, number := range []int{0, -1} {
		_, err := NewBoard(number, NewDeck())
		assert.Error(t, err, "number %d", number)
	}
}

func TestDealerAndVulnerabilityNeverPanic(t *testing.T) {
	t.Parallel()

	// Out-of-convention board numbers stay in the cycle instead of
	// indexing out of range.
	for _, number := range []int{0, -1, -15, -16} {
		assert.NotPanics(t, func() {
			DealerOf(number)
			VulnerabilityOf(number)
		}, "number %d", number)
	}
	assert.Equal(t, DealerOf(4), DealerOf(0))
	assert.Equal(t, VulnerabilityOf(16), VulnerabilityOf(0))
}

func TestDealerCycle(t *testing.T) {
	t.Parallel()

	expected := []bridge.Seat{bridge.North, bridge.East, bridge.South, bridge.West}
	for number := 1; number <= 8; number++ {
		assert.Equal(t, expected[(number-1)%4], DealerOf(number), "board %d", number)
	}
}

func TestVulnerabilityCycle(t *testing.T) {
	t.Parallel()

	expected := []Vulnerability{
		VulNone, VulNS, VulEW, VulBoth,
		VulNS, VulEW, VulBoth, VulNone,
		VulEW, VulBoth, VulNone, VulNS,
		VulBoth, VulNone, VulNS, VulEW,
	}
	for number := 1; number <= 16; number++ {
		assert.Equal(t, expected[number-1], VulnerabilityOf(number), "board %d", number)
	}

	// Board 17 starts the cycle again.
	assert.Equal(t, VulnerabilityOf(1), VulnerabilityOf(17))
}

func TestVulnerabilitySides(t *testing.T) {
	t.Parallel()

	tests := []struct {
		vul Vulnerability
		ns  bool
		ew  bool
	}{
		{VulNone, false, false},
		{VulNS, true, false},
		{VulEW, false, true},
		{VulBoth, true, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.ns, tt.vul.IsVulnerable(bridge.NS))
		assert.Equal(t, tt.ew, tt.vul.IsVulnerable(bridge.EW))
		assert.Equal(t, bridge.PerSide[bool]{NS: tt.ns, EW: tt.ew}, tt.vul.PerSide())
	}
}

func TestVulnerabilityTextRoundTrip(t *testing.T) {
	t.Parallel()

	for _, vul := range []Vulnerability{VulNone, VulNS, VulEW, VulBoth} {
		text, err := vul.MarshalText()
		require.NoError(t, err)

		var decoded Vulnerability
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, vul, decoded)
	}

	_, err := ParseVulnerability("Both")
	assert.Error(t, err)
}

func TestBoardJSONRoundTrip(t *testing.T) {
	t.Parallel()

	board := dealBoard(t, 5, 11)
	data, err := json.Marshal(board)
	require.NoError(t, err)

	var decoded Board
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, board, decoded)
}
