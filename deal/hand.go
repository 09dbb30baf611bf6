package deal

import (
	"fmt"
	"strings"

	"github.com/palemoky/contract-bridge/bridge"
)

// Hand 定义一家的整手牌：每门花色各一个持牌集合
type Hand bridge.PerSuit[bridge.Holding]

// hcpValues 大牌点映射表：A=4 K=3 Q=2 J=1
var hcpValues = map[bridge.Rank]int{
	bridge.RankA: 4,
	bridge.RankK: 3,
	bridge.RankQ: 2,
	bridge.RankJ: 1,
}

// holding 返回指定花色持牌的指针，供原地修改
func (h *Hand) holding(s bridge.Suit) *bridge.Holding {
	switch s {
	case bridge.Spades:
		return &h.Spades
	case bridge.Hearts:
		return &h.Hearts
	case bridge.Diamonds:
		return &h.Diamonds
	case bridge.Clubs:
		return &h.Clubs
	}
	panic(fmt.Sprintf("非法花色: %d", int(s)))
}

// Holding 返回指定花色的持牌
func (h Hand) Holding(s bridge.Suit) bridge.Holding {
	return bridge.PerSuit[bridge.Holding](h).Get(s)
}

// Add 加入一张牌，已持有时无变化
func (h *Hand) Add(c bridge.Card) {
	h.holding(c.Suit).Add(c.Rank)
}

// Remove 移除一张牌，未持有时无变化
func (h *Hand) Remove(c bridge.Card) {
	h.holding(c.Suit).Remove(c.Rank)
}

// Has 判断是否持有指定的牌
func (h Hand) Has(c bridge.Card) bool {
	return h.Holding(c.Suit).Contains(c.Rank)
}

// Count 返回整手牌张数
func (h Hand) Count() int {
	return bridge.SumPerSuit(bridge.MapPerSuit(bridge.PerSuit[bridge.Holding](h), bridge.Holding.Count))
}

// HCP 返回整手牌的大牌点
func (h Hand) HCP() int {
	return bridge.SumPerSuit(bridge.MapPerSuit(bridge.PerSuit[bridge.Holding](h), holdingHCP))
}

// holdingHCP 统计单门持牌的大牌点
func holdingHCP(holding bridge.Holding) int {
	total := 0
	for r := range holding.Ranks() {
		total += hcpValues[r]
	}
	return total
}

// Shape 返回各门花色的张数
func (h Hand) Shape() bridge.PerSuit[int] {
	return bridge.MapPerSuit(bridge.PerSuit[bridge.Holding](h), bridge.Holding.Count)
}

// IsBalanced 判断牌型是否均型：没有缺门或单张，双张至多一门
func (h Hand) IsBalanced() bool {
	doubletons := 0
	for length := range h.Shape().Values() {
		if length < 2 {
			return false
		}
		if length == 2 {
			doubletons++
		}
	}
	return doubletons <= 1
}

// String 按规范花色顺序渲染整手牌，门与门之间以 '.' 分隔，
// 缺门为 "-"，如 "AKQ72.T98.Q54.J3"
func (h Hand) String() string {
	parts := make([]string, 0, len(bridge.Suits))
	for _, s := range bridge.Suits {
		parts = append(parts, h.Holding(s).String())
	}
	return strings.Join(parts, ".")
}

// ParseHand 解析整手牌文本，String 的逆操作
func ParseHand(text string) (Hand, error) {
	parts := strings.Split(text, ".")
	if len(parts) != len(bridge.Suits) {
		return Hand{}, fmt.Errorf("手牌必须包含四门花色: %s", text)
	}

	var h Hand
	for i, s := range bridge.Suits {
		holding, err := bridge.ParseHolding(parts[i])
		if err != nil {
			return Hand{}, err
		}
		*h.holding(s) = holding
	}
	return h, nil
}

// MarshalText 编码为点分隔的手牌文本
func (h Hand) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText 从点分隔的手牌文本解码
func (h *Hand) UnmarshalText(text []byte) error {
	parsed, err := ParseHand(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
