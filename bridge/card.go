package bridge

import (
	"fmt"
	"strings"
)

// Card 定义一张牌，点数与花色的简单组合，类型本身不做校验
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// String 返回花色符号加点数，如 "♠A"、"♥10"
func (c Card) String() string {
	return c.Suit.String() + c.Rank.String()
}

// ParseCard 解析字母代码形式的牌，如 "SA"、"HT"、"H10"
func ParseCard(text string) (Card, error) {
	if len(text) < 2 {
		return Card{}, fmt.Errorf("无法识别的牌: %s", text)
	}
	suit, err := ParseSuit(text[:1])
	if err != nil {
		return Card{}, err
	}
	rankText := strings.ReplaceAll(text[1:], "10", "T")
	if len(rankText) != 1 {
		return Card{}, fmt.Errorf("无法识别的牌: %s", text)
	}
	rank, err := RankFromChar(rune(rankText[0]))
	if err != nil {
		return Card{}, err
	}
	return Card{Rank: rank, Suit: suit}, nil
}
