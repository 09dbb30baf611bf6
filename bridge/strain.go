package bridge

import "fmt"

// Strain 定义定约品级：无将或某一花色
type Strain int

const (
	NoTrump        Strain = iota // 无将
	StrainSpades                 // 黑桃
	StrainHearts                 // 红心
	StrainDiamonds               // 方块
	StrainClubs                  // 梅花
)

// Strains 品级的规范顺序（从大到小）
var Strains = [5]Strain{NoTrump, StrainSpades, StrainHearts, StrainDiamonds, StrainClubs}

// strainCodes 品级文本代码映射表
var strainCodes = map[Strain]string{
	NoTrump:        "NT",
	StrainSpades:   "S",
	StrainHearts:   "H",
	StrainDiamonds: "D",
	StrainClubs:    "C",
}

// strainRank 品级大小查找表：无将高于所有花色，花色之间沿用花色大小
var strainRank = map[Strain]int{
	NoTrump:        5,
	StrainSpades:   4,
	StrainHearts:   3,
	StrainDiamonds: 2,
	StrainClubs:    1,
}

func (s Strain) String() string {
	if code, ok := strainCodes[s]; ok {
		return code
	}
	return ""
}

// Compare 按叫牌品级大小比较，s 大于 other 时返回正数
func (s Strain) Compare(other Strain) int {
	return strainRank[s] - strainRank[other]
}

// Less 判断 s 是否小于 other
func (s Strain) Less(other Strain) bool {
	return s.Compare(other) < 0
}

// Suit 返回品级对应的花色；无将返回 false
func (s Strain) Suit() (Suit, bool) {
	switch s {
	case StrainSpades:
		return Spades, true
	case StrainHearts:
		return Hearts, true
	case StrainDiamonds:
		return Diamonds, true
	case StrainClubs:
		return Clubs, true
	}
	return -1, false
}

// ParseStrain 解析品级文本代码
func ParseStrain(text string) (Strain, error) {
	for _, s := range Strains {
		if text == s.String() {
			return s, nil
		}
	}
	return -1, fmt.Errorf("无法识别的定约品级: %s", text)
}

// MarshalText 编码为品级代码
func (s Strain) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText 从品级代码解码
func (s *Strain) UnmarshalText(text []byte) error {
	parsed, err := ParseStrain(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
