// Package bridge 定义桥牌的基础领域模型：花色、定约品级、方位、阵营、
// 单门持牌（Holding）以及按各枚举索引的定长容器。
//
// 本包不做 I/O，不持有全局可变状态，所有操作均为同步纯操作。
package bridge

import "fmt"

// Suit 定义花色
type Suit int

// CardColor 定义牌的颜色
type CardColor int

const (
	Black CardColor = iota
	Red
)

const (
	Spades   Suit = iota // 黑桃
	Hearts               // 红心
	Diamonds             // 方块
	Clubs                // 梅花
)

// Suits 花色的规范顺序（从大到小）
var Suits = [4]Suit{Spades, Hearts, Diamonds, Clubs}

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Spades:   "♠",
	Hearts:   "♥",
	Diamonds: "♦",
	Clubs:    "♣",
}

// suitLetters 花色字母代码映射表（用于定约表示与结构化交换）
var suitLetters = map[Suit]string{
	Spades:   "S",
	Hearts:   "H",
	Diamonds: "D",
	Clubs:    "C",
}

// suitRank 花色大小查找表：黑桃最大，梅花最小。
// 桥牌的花色大小不等于声明顺序，比较必须走这张表。
var suitRank = map[Suit]int{
	Spades:   4,
	Hearts:   3,
	Diamonds: 2,
	Clubs:    1,
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

// Letter 返回花色的单字母代码（S/H/D/C）
func (s Suit) Letter() string {
	if letter, ok := suitLetters[s]; ok {
		return letter
	}
	return ""
}

// Color 返回花色的颜色：红心和方块为红色
func (s Suit) Color() CardColor {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Compare 按桥牌花色大小比较，s 大于 other 时返回正数
func (s Suit) Compare(other Suit) int {
	return suitRank[s] - suitRank[other]
}

// Less 判断 s 是否小于 other
func (s Suit) Less(other Suit) bool {
	return s.Compare(other) < 0
}

// Strain 返回该花色对应的定约品级（无损转换）
func (s Suit) Strain() Strain {
	switch s {
	case Spades:
		return StrainSpades
	case Hearts:
		return StrainHearts
	case Diamonds:
		return StrainDiamonds
	case Clubs:
		return StrainClubs
	}
	panic(fmt.Sprintf("非法花色: %d", int(s)))
}

// ParseSuit 解析花色，接受字母代码或花色符号
func ParseSuit(text string) (Suit, error) {
	for _, s := range Suits {
		if text == s.Letter() || text == s.String() {
			return s, nil
		}
	}
	return -1, fmt.Errorf("无法识别的花色: %s", text)
}

// MarshalText 编码为字母代码
func (s Suit) MarshalText() ([]byte, error) {
	return []byte(s.Letter()), nil
}

// UnmarshalText 从字母代码或符号解码
func (s *Suit) UnmarshalText(text []byte) error {
	parsed, err := ParseSuit(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
