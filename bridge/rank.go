package bridge

import (
	"fmt"
	"strconv"
)

// Rank 定义点数，取值范围 [2,14]，11..14 对应 J/Q/K/A
type Rank int

const (
	Rank2 Rank = iota + 2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
	RankA // Ace
)

// rankNames 点数字符串映射表
var rankNames = map[Rank]string{
	Rank2:  "2",
	Rank3:  "3",
	Rank4:  "4",
	Rank5:  "5",
	Rank6:  "6",
	Rank7:  "7",
	Rank8:  "8",
	Rank9:  "9",
	Rank10: "10",
	RankJ:  "J",
	RankQ:  "Q",
	RankK:  "K",
	RankA:  "A",
}

// rankChars 点数的紧凑单字符形式，10 写作 T（用于持牌与牌的文本表示）
var rankChars = map[Rank]rune{
	Rank2:  '2',
	Rank3:  '3',
	Rank4:  '4',
	Rank5:  '5',
	Rank6:  '6',
	Rank7:  '7',
	Rank8:  '8',
	Rank9:  '9',
	Rank10: 'T',
	RankJ:  'J',
	RankQ:  'Q',
	RankK:  'K',
	RankA:  'A',
}

// charToRank 用于快速查找字符对应的 Rank
var charToRank = map[rune]Rank{
	'2': Rank2,
	'3': Rank3,
	'4': Rank4,
	'5': Rank5,
	'6': Rank6,
	'7': Rank7,
	'8': Rank8,
	'9': Rank9,
	'T': Rank10,
	'J': RankJ,
	'Q': RankQ,
	'K': RankK,
	'A': RankA,
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// Char 返回点数的紧凑单字符形式
func (r Rank) Char() rune {
	if char, ok := rankChars[r]; ok {
		return char
	}
	return '?'
}

// RankFromChar 从紧凑字符解析点数
func RankFromChar(char rune) (Rank, error) {
	if rank, ok := charToRank[char]; ok {
		return rank, nil
	}
	return -1, fmt.Errorf("无法识别的点数: %c", char)
}
