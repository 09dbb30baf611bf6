package deal

import (
	"fmt"

	"github.com/palemoky/contract-bridge/bridge"
)

// Vulnerability 定义一副牌的局况
type Vulnerability int

const (
	VulNone Vulnerability = iota // 双方无局
	VulNS                        // 南北有局
	VulEW                        // 东西有局
	VulBoth                      // 双方有局
)

// vulNames 局况名称映射表，取 PBN 的写法
var vulNames = map[Vulnerability]string{
	VulNone: "None",
	VulNS:   "NS",
	VulEW:   "EW",
	VulBoth: "All",
}

func (v Vulnerability) String() string {
	if name, ok := vulNames[v]; ok {
		return name
	}
	return ""
}

// IsVulnerable 判断指定阵营是否有局
func (v Vulnerability) IsVulnerable(side bridge.Side) bool {
	switch v {
	case VulNone:
		return false
	case VulNS:
		return side == bridge.NS
	case VulEW:
		return side == bridge.EW
	case VulBoth:
		return true
	}
	return false
}

// PerSide 按阵营展开局况
func (v Vulnerability) PerSide() bridge.PerSide[bool] {
	return bridge.PerSide[bool]{
		NS: v.IsVulnerable(bridge.NS),
		EW: v.IsVulnerable(bridge.EW),
	}
}

// ParseVulnerability 解析局况名称
func ParseVulnerability(text string) (Vulnerability, error) {
	for v, name := range vulNames {
		if text == name {
			return v, nil
		}
	}
	return -1, fmt.Errorf("无法识别的局况: %s", text)
}

// MarshalText 编码为局况名称
func (v Vulnerability) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText 从局况名称解码
func (v *Vulnerability) UnmarshalText(text []byte) error {
	parsed, err := ParseVulnerability(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
