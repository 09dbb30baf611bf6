package bridge

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// CallKind 定义叫牌动作的种类
type CallKind int

const (
	CallPass     CallKind = iota // 不叫
	CallBid                      // 叫品
	CallDouble                   // 加倍
	CallRedouble                 // 再加倍
)

// callKindNames 叫牌种类的标签映射表，用于结构化交换
var callKindNames = map[CallKind]string{
	CallPass:     "pass",
	CallBid:      "bid",
	CallDouble:   "double",
	CallRedouble: "redouble",
}

// Call 定义一次叫牌动作。Level 与 Strain 仅在 Kind 为 CallBid 时有意义，
// 其余种类下为零值，使 Call 可直接用 == 比较。
type Call struct {
	Kind   CallKind
	Level  int
	Strain Strain
}

// Pass 构造不叫
func Pass() Call {
	return Call{Kind: CallPass}
}

// Bid 构造一次叫品
func Bid(level int, strain Strain) Call {
	return Call{Kind: CallBid, Level: level, Strain: strain}
}

// Double 构造加倍
func Double() Call {
	return Call{Kind: CallDouble}
}

// Redouble 构造再加倍
func Redouble() Call {
	return Call{Kind: CallRedouble}
}

// String 返回叫牌的惯用文本："Pass"、"X"、"XX" 或如 "3H" 的叫品
func (c Call) String() string {
	switch c.Kind {
	case CallPass:
		return "Pass"
	case CallBid:
		return fmt.Sprintf("%d%s", c.Level, c.Strain)
	case CallDouble:
		return "X"
	case CallRedouble:
		return "XX"
	}
	return ""
}

// ParseCall 解析叫牌文本，String 的逆操作
func ParseCall(text string) (Call, error) {
	switch text {
	case "Pass":
		return Pass(), nil
	case "X":
		return Double(), nil
	case "XX":
		return Redouble(), nil
	}
	if len(text) >= 2 {
		level, err := strconv.Atoi(text[:1])
		if err == nil {
			strain, err := ParseStrain(text[1:])
			if err == nil {
				return Bid(level, strain), nil
			}
		}
	}
	return Call{}, fmt.Errorf("无法识别的叫牌: %s", text)
}

// callJSON 叫牌的带类型标签的交换形式
type callJSON struct {
	Type   string  `json:"type"`
	Level  int     `json:"level,omitempty"`
	Strain *Strain `json:"strain,omitempty"`
}

// MarshalJSON 编码为带类型标签的对象，
// 如 {"type":"bid","level":3,"strain":"H"}
func (c Call) MarshalJSON() ([]byte, error) {
	payload := callJSON{Type: callKindNames[c.Kind]}
	if c.Kind == CallBid {
		strain := c.Strain
		payload.Level = c.Level
		payload.Strain = &strain
	}
	return json.Marshal(payload)
}

// UnmarshalJSON 从带类型标签的对象解码，未知类型报错
func (c *Call) UnmarshalJSON(data []byte) error {
	var payload callJSON
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	switch payload.Type {
	case "pass":
		*c = Pass()
	case "double":
		*c = Double()
	case "redouble":
		*c = Redouble()
	case "bid":
		if payload.Strain == nil {
			return fmt.Errorf("叫品缺少品级")
		}
		*c = Bid(payload.Level, *payload.Strain)
	default:
		return fmt.Errorf("无法识别的叫牌类型: %s", payload.Type)
	}
	return nil
}
