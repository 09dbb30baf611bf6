package bridge

import (
	"fmt"
	"strings"
)

// Doubling 定义定约的加倍状态，声明顺序即大小顺序
type Doubling int

const (
	Undoubled Doubling = iota // 未加倍
	Doubled                   // 加倍
	Redoubled                 // 再加倍
)

// doublingSuffixes 加倍状态的定约后缀映射表
var doublingSuffixes = map[Doubling]string{
	Undoubled: "",
	Doubled:   "x",
	Redoubled: "xx",
}

// String 返回定约后缀：""、"x" 或 "xx"
func (d Doubling) String() string {
	if suffix, ok := doublingSuffixes[d]; ok {
		return suffix
	}
	return ""
}

// ParseDoubling 解析加倍后缀，大小写均可
func ParseDoubling(text string) (Doubling, error) {
	switch strings.ToLower(text) {
	case "":
		return Undoubled, nil
	case "x":
		return Doubled, nil
	case "xx":
		return Redoubled, nil
	}
	return -1, fmt.Errorf("无法识别的加倍状态: %s", text)
}

// MarshalText 编码为加倍后缀
func (d Doubling) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText 从加倍后缀解码
func (d *Doubling) UnmarshalText(text []byte) error {
	parsed, err := ParseDoubling(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Contract 定义定约：线位、品级与加倍状态。
// 线位按惯例取 [1,7]，类型本身不做校验。
type Contract struct {
	Level    int
	Strain   Strain
	Doubling Doubling
}

// String 按 <线位><品级代码><加倍后缀> 渲染，如 "4NT"、"3Sx"、"7Cxx"
func (c Contract) String() string {
	return fmt.Sprintf("%d%s%s", c.Level, c.Strain, c.Doubling)
}

// Compare 比较两个定约所叫品级的大小：先比线位，再比品级。
// 加倍状态不影响叫品大小。
func (c Contract) Compare(other Contract) int {
	if c.Level != other.Level {
		return c.Level - other.Level
	}
	return c.Strain.Compare(other.Strain)
}

// ParseContract 解析定约文本，String 的逆操作，加倍后缀大小写均可
func ParseContract(text string) (Contract, error) {
	if len(text) < 2 {
		return Contract{}, fmt.Errorf("无法识别的定约: %s", text)
	}
	level := int(text[0] - '0')
	if level < 1 || level > 9 {
		return Contract{}, fmt.Errorf("无法识别的定约线位: %s", text)
	}
	rest := text[1:]
	matched := ""
	for _, code := range strainCodes {
		if strings.HasPrefix(rest, code) && len(code) > len(matched) {
			matched = code
		}
	}
	strain, err := ParseStrain(matched)
	if err != nil {
		return Contract{}, fmt.Errorf("无法识别的定约品级: %s", text)
	}
	doubling, err := ParseDoubling(rest[len(matched):])
	if err != nil {
		return Contract{}, err
	}
	return Contract{Level: level, Strain: strain, Doubling: doubling}, nil
}

// MarshalText 编码为定约文本
func (c Contract) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText 从定约文本解码
func (c *Contract) UnmarshalText(text []byte) error {
	parsed, err := ParseContract(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
