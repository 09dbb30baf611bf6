package deal

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/palemoky/contract-bridge/bridge"
)

// vulCycle 标准 16 副循环的局况表，第 17 副回到第 1 副
var vulCycle = [16]Vulnerability{
	VulNone, VulNS, VulEW, VulBoth,
	VulNS, VulEW, VulBoth, VulNone,
	VulEW, VulBoth, VulNone, VulNS,
	VulBoth, VulNone, VulNS, VulEW,
}

// Board 定义一副牌：唯一标识、副号与四家手牌
type Board struct {
	ID     string               `json:"id"`
	Number int                  `json:"number"`
	Hands  bridge.PerSeat[Hand] `json:"hands"`
}

// NewBoard 从一副完整的牌构造牌副：从北家起逐张轮转发牌。
// 牌必须恰好 52 张且互不相同。
func NewBoard(number int, d Deck) (Board, error) {
	if number < 1 {
		return Board{}, fmt.Errorf("副号必须从 1 开始，实际 %d", number)
	}
	if len(d) != 52 {
		return Board{}, fmt.Errorf("发牌需要 52 张牌，实际 %d 张", len(d))
	}

	seen := make(map[bridge.Card]bool, len(d))
	hands := bridge.NewPerSeat(Hand{})
	seat := bridge.North
	for _, c := range d {
		if seen[c] {
			return Board{}, fmt.Errorf("牌 %s 重复出现", c)
		}
		seen[c] = true

		hand := hands.Get(seat)
		hand.Add(c)
		hands.Set(seat, hand)
		seat = seat.Next()
	}

	return Board{
		ID:     uuid.NewString(),
		Number: number,
		Hands:  hands,
	}, nil
}

// DealerOf 返回指定副号的发牌人：第 1 副北家开叫，逐副轮转。
// 取模结果归一化为非负，副号小于 1 时也不会越界。
func DealerOf(number int) bridge.Seat {
	return bridge.Seats[((number-1)%4+4)%4]
}

// VulnerabilityOf 返回指定副号的局况，按标准 16 副循环。
// 取模结果归一化为非负，副号小于 1 时也不会越界。
func VulnerabilityOf(number int) Vulnerability {
	return vulCycle[((number-1)%16+16)%16]
}

// Dealer 返回本副的发牌人
func (b Board) Dealer() bridge.Seat {
	return DealerOf(b.Number)
}

// Vulnerability 返回本副的局况
func (b Board) Vulnerability() Vulnerability {
	return VulnerabilityOf(b.Number)
}
