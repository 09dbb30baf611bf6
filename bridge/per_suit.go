package bridge

import (
	"fmt"
	"iter"
)

// Numeric 约束可相加求和的数值类型
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// PerSuit 按花色索引的定长记录：每个花色恒有且仅有一个值，
// 键集合在类型层面固定，构造后不增不减。
type PerSuit[T any] struct {
	Spades   T `json:"spades"`
	Hearts   T `json:"hearts"`
	Diamonds T `json:"diamonds"`
	Clubs    T `json:"clubs"`
}

// NewPerSuit 构造每个花色都取同一初值的记录
func NewPerSuit[T any](value T) PerSuit[T] {
	return PerSuit[T]{
		Spades:   value,
		Hearts:   value,
		Diamonds: value,
		Clubs:    value,
	}
}

// NewPerSuitWith 按规范花色顺序逐键调用 produce 构造记录
func NewPerSuitWith[T any](produce func() T) PerSuit[T] {
	return PerSuit[T]{
		Spades:   produce(),
		Hearts:   produce(),
		Diamonds: produce(),
		Clubs:    produce(),
	}
}

// Get 读取指定花色的值，任何花色键都有效
func (p PerSuit[T]) Get(s Suit) T {
	switch s {
	case Spades:
		return p.Spades
	case Hearts:
		return p.Hearts
	case Diamonds:
		return p.Diamonds
	case Clubs:
		return p.Clubs
	}
	panic(fmt.Sprintf("非法花色: %d", int(s)))
}

// Set 写入指定花色的值
func (p *PerSuit[T]) Set(s Suit, value T) {
	switch s {
	case Spades:
		p.Spades = value
	case Hearts:
		p.Hearts = value
	case Diamonds:
		p.Diamonds = value
	case Clubs:
		p.Clubs = value
	default:
		panic(fmt.Sprintf("非法花色: %d", int(s)))
	}
}

// Values 按规范花色顺序迭代所有值，可重复遍历
func (p PerSuit[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, s := range Suits {
			if !yield(p.Get(s)) {
				return
			}
		}
	}
}

// MapPerSuit 对每个花色的值独立应用 f，键值对应关系不变
func MapPerSuit[T, U any](p PerSuit[T], f func(T) U) PerSuit[U] {
	return PerSuit[U]{
		Spades:   f(p.Spades),
		Hearts:   f(p.Hearts),
		Diamonds: f(p.Diamonds),
		Clubs:    f(p.Clubs),
	}
}

// MapPerSuitWith 与 MapPerSuit 相同，但 f 额外接收花色键
func MapPerSuitWith[T, U any](p PerSuit[T], f func(Suit, T) U) PerSuit[U] {
	return PerSuit[U]{
		Spades:   f(Spades, p.Spades),
		Hearts:   f(Hearts, p.Hearts),
		Diamonds: f(Diamonds, p.Diamonds),
		Clubs:    f(Clubs, p.Clubs),
	}
}

// SumPerSuit 按规范花色顺序从左到右累加四个值
func SumPerSuit[T Numeric](p PerSuit[T]) T {
	return p.Spades + p.Hearts + p.Diamonds + p.Clubs
}
