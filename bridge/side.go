package bridge

import "fmt"

// Side 定义阵营：南北方或东西方
type Side int

const (
	NS Side = iota // 南北方
	EW             // 东西方
)

// Sides 阵营的规范顺序
var Sides = [2]Side{NS, EW}

// sideNames 阵营名称映射表
var sideNames = map[Side]string{
	NS: "NS",
	EW: "EW",
}

func (s Side) String() string {
	if name, ok := sideNames[s]; ok {
		return name
	}
	return ""
}

// Opponents 返回对方阵营；连续调用两次回到自身
func (s Side) Opponents() Side {
	switch s {
	case NS:
		return EW
	case EW:
		return NS
	}
	panic(fmt.Sprintf("非法阵营: %d", int(s)))
}

// ParseSide 解析阵营代码
func ParseSide(text string) (Side, error) {
	for _, s := range Sides {
		if text == s.String() {
			return s, nil
		}
	}
	return -1, fmt.Errorf("无法识别的阵营: %s", text)
}

// MarshalText 编码为阵营代码
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText 从阵营代码解码
func (s *Side) UnmarshalText(text []byte) error {
	parsed, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
