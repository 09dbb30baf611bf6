// Package deal 提供发牌相关的领域模型：一副牌、按花色分组的整手牌、
// 局况以及带编号的牌副。
package deal

import (
	"math/rand/v2"

	"github.com/palemoky/contract-bridge/bridge"
)

// Deck 定义一副牌
type Deck []bridge.Card

// NewDeck 构造按花色与点数顺序排列的 52 张牌
func NewDeck() Deck {
	deck := make(Deck, 0, 52)
	for _, s := range bridge.Suits {
		for r := bridge.Rank2; r <= bridge.RankA; r++ {
			deck = append(deck, bridge.Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// Shuffle 原地洗牌
func (d Deck) Shuffle() {
	rand.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// ShuffleWith 用指定随机源原地洗牌，相同种子产生相同牌副
func (d Deck) ShuffleWith(rng *rand.Rand) {
	rng.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}
