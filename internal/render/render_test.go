package render

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/contract-bridge/bridge"
	"github.com/palemoky/contract-bridge/deal"
)

func TestSuitLine(t *testing.T) {
	t.Parallel()

	holding, err := bridge.ParseHolding("AKQ72")
	require.NoError(t, err)

	line := SuitLine(bridge.Spades, holding)
	assert.Contains(t, line, "♠")
	assert.Contains(t, line, "A K Q 7 2")

	// Ten renders as 10 in diagrams.
	ten, err := bridge.ParseHolding("T9")
	require.NoError(t, err)
	assert.Contains(t, SuitLine(bridge.Hearts, ten), "10 9")

	// A void renders as a dash.
	assert.Contains(t, SuitLine(bridge.Clubs, bridge.NewHolding()), "—")
}

func TestDiagram(t *testing.T) {
	t.Parallel()

	deck := deal.NewDeck()
	deck.ShuffleWith(rand.New(rand.NewPCG(42, 42)))
	board, err := deal.NewBoard(2, deck)
	require.NoError(t, err)

	diagram := Diagram(board)
	assert.Contains(t, diagram, "第 2 副")
	assert.Contains(t, diagram, "发牌: 东")
	assert.Contains(t, diagram, "南北有局")
	for _, label := range []string{"北", "东", "南", "西"} {
		assert.Contains(t, diagram, label)
	}

	// Every suit symbol shows up once per hand.
	for _, suit := range bridge.Suits {
		assert.Equal(t, 4, strings.Count(diagram, suit.String()), "suit %s", suit)
	}
}
