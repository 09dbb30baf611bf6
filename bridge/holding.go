package bridge

import (
	"iter"
	"math/bits"
	"strings"
)

// Holding 定义单门花色的持牌集合，以位模式表示：
// 第 r 位置位表示持有点数 r，有效点数范围 [2,14]。
// [2,14] 之外的位不被任何已定义操作读取，对其置位是无效但无害的。
type Holding uint16

// NewHolding 从任意点数序列构造持牌，重复与顺序均被忽略（集合语义）
func NewHolding(ranks ...Rank) Holding {
	var h Holding
	for _, r := range ranks {
		h.Add(r)
	}
	return h
}

// Add 加入一张点数，已持有时无变化。
// 不检查取值范围，调用方须保证点数在 [2,14] 内。
func (h *Holding) Add(rank Rank) {
	*h |= 1 << rank
}

// Remove 移除一张点数，未持有时无变化。
// 不检查取值范围，调用方须保证点数在 [2,14] 内。
func (h *Holding) Remove(rank Rank) {
	*h &^= 1 << rank
}

// Contains 判断是否持有指定点数
func (h Holding) Contains(rank Rank) bool {
	return h&(1<<rank) != 0
}

// Count 返回持牌张数
func (h Holding) Count() int {
	return bits.OnesCount16(uint16(h))
}

// HoldingIter 双向游标迭代器：front 从最小点数向上扫描，back 从最大点数
// 向下扫描，两端消费同一个序列，front 越过 back 即耗尽。游标建立在
// Holding 值的快照上，持牌后续变化不影响已创建的迭代器。
type HoldingIter struct {
	holding Holding
	front   Rank
	back    Rank
}

// Iter 创建一个独立的双向迭代器
func (h Holding) Iter() HoldingIter {
	front := Rank2
	for front < 15 && !h.Contains(front) {
		front++
	}
	back := RankA
	for back > 1 && !h.Contains(back) {
		back--
	}
	return HoldingIter{holding: h, front: front, back: back}
}

// Next 按升序取出下一个点数，耗尽时返回 false
func (it *HoldingIter) Next() (Rank, bool) {
	if it.front > it.back {
		return 0, false
	}
	rank := it.front
	it.front++
	for it.front < 15 && !it.holding.Contains(it.front) {
		it.front++
	}
	return rank, true
}

// NextBack 按降序从尾端取出下一个点数，耗尽时返回 false
func (it *HoldingIter) NextBack() (Rank, bool) {
	if it.front > it.back {
		return 0, false
	}
	rank := it.back
	it.back--
	for it.back > 1 && !it.holding.Contains(it.back) {
		it.back--
	}
	return rank, true
}

// Ranks 按升序迭代持牌点数，每次 range 创建独立游标，可重复遍历
func (h Holding) Ranks() iter.Seq[Rank] {
	return func(yield func(Rank) bool) {
		it := h.Iter()
		for rank, ok := it.Next(); ok; rank, ok = it.Next() {
			if !yield(rank) {
				return
			}
		}
	}
}

// RanksDesc 按降序迭代持牌点数，每次 range 创建独立游标，可重复遍历
func (h Holding) RanksDesc() iter.Seq[Rank] {
	return func(yield func(Rank) bool) {
		it := h.Iter()
		for rank, ok := it.NextBack(); ok; rank, ok = it.NextBack() {
			if !yield(rank) {
				return
			}
		}
	}
}

// String 返回按降序排列的紧凑点数字符，缺门为 "-"，如 "AKQ72"
func (h Holding) String() string {
	if h.Count() == 0 {
		return "-"
	}
	var sb strings.Builder
	for rank := range h.RanksDesc() {
		sb.WriteRune(rank.Char())
	}
	return sb.String()
}

// ParseHolding 解析持牌文本，"" 与 "-" 均表示缺门，
// 点数字符的顺序与重复不影响结果，"10" 按 T 处理
func ParseHolding(text string) (Holding, error) {
	var h Holding
	if text == "" || text == "-" {
		return h, nil
	}
	cleanText := strings.ReplaceAll(text, "10", "T")
	for _, char := range cleanText {
		rank, err := RankFromChar(char)
		if err != nil {
			return 0, err
		}
		h.Add(rank)
	}
	return h, nil
}

// MarshalText 编码为紧凑点数字符
func (h Holding) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText 从紧凑点数字符解码
func (h *Holding) UnmarshalText(text []byte) error {
	parsed, err := ParseHolding(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
