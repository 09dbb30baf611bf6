package bridge

import "fmt"

// Seat 定义方位，按出牌轮转顺序 北→东→南→西→北 循环
type Seat int

const (
	North Seat = iota // 北
	East              // 东
	South             // 南
	West              // 西
)

// Seats 方位的规范顺序（轮转顺序）
var Seats = [4]Seat{North, East, South, West}

// SeatRelation 定义某方位相对于参照方位的关系
type SeatRelation int

const (
	Me      SeatRelation = iota // 自己
	LHO                         // 左手敌方
	Partner                     // 同伴
	RHO                         // 右手敌方
)

// seatNames 方位名称映射表
var seatNames = map[Seat]string{
	North: "North",
	East:  "East",
	South: "South",
	West:  "West",
}

// seatLetters 方位字母代码映射表
var seatLetters = map[Seat]string{
	North: "N",
	East:  "E",
	South: "S",
	West:  "W",
}

// relationNames 方位关系名称映射表
var relationNames = map[SeatRelation]string{
	Me:      "Me",
	LHO:     "LHO",
	Partner: "Partner",
	RHO:     "RHO",
}

func (s Seat) String() string {
	if name, ok := seatNames[s]; ok {
		return name
	}
	return ""
}

// Letter 返回方位的单字母代码（N/E/S/W）
func (s Seat) Letter() string {
	if letter, ok := seatLetters[s]; ok {
		return letter
	}
	return ""
}

// Next 返回轮转顺序的下一家，与 LHO 相同
func (s Seat) Next() Seat {
	switch s {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	}
	panic(fmt.Sprintf("非法方位: %d", int(s)))
}

// LHO 返回左手敌方，与 Next 相同
func (s Seat) LHO() Seat {
	return s.Next()
}

// Partner 返回同伴，即对面方位；连续调用两次回到自身
func (s Seat) Partner() Seat {
	switch s {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	}
	panic(fmt.Sprintf("非法方位: %d", int(s)))
}

// RHO 返回右手敌方，是 Next 的逆操作
func (s Seat) RHO() Seat {
	switch s {
	case North:
		return West
	case East:
		return North
	case South:
		return East
	case West:
		return South
	}
	panic(fmt.Sprintf("非法方位: %d", int(s)))
}

// Side 返回方位所属的阵营
func (s Seat) Side() Side {
	switch s {
	case North, South:
		return NS
	case East, West:
		return EW
	}
	panic(fmt.Sprintf("非法方位: %d", int(s)))
}

// RelationTo 判定 s 相对于 other 的关系。
// 四个方位恰好被划分为 Me/LHO/Partner/RHO 四类，不重不漏。
func (s Seat) RelationTo(other Seat) SeatRelation {
	switch {
	case s == other:
		return Me
	case s == other.Next():
		return LHO
	case s == other.Partner():
		return Partner
	default:
		return RHO
	}
}

// ParseSeat 解析方位，接受字母代码或全名
func ParseSeat(text string) (Seat, error) {
	for _, s := range Seats {
		if text == s.Letter() || text == s.String() {
			return s, nil
		}
	}
	return -1, fmt.Errorf("无法识别的方位: %s", text)
}

// MarshalText 编码为字母代码
func (s Seat) MarshalText() ([]byte, error) {
	return []byte(s.Letter()), nil
}

// UnmarshalText 从字母代码或全名解码
func (s *Seat) UnmarshalText(text []byte) error {
	parsed, err := ParseSeat(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (r SeatRelation) String() string {
	if name, ok := relationNames[r]; ok {
		return name
	}
	return ""
}

// ParseSeatRelation 解析方位关系名称
func ParseSeatRelation(text string) (SeatRelation, error) {
	for _, r := range []SeatRelation{Me, LHO, Partner, RHO} {
		if text == r.String() {
			return r, nil
		}
	}
	return -1, fmt.Errorf("无法识别的方位关系: %s", text)
}

// MarshalText 编码为关系名称
func (r SeatRelation) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText 从关系名称解码
func (r *SeatRelation) UnmarshalText(text []byte) error {
	parsed, err := ParseSeatRelation(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
