package bridge

import (
	"fmt"
	"iter"
)

// PerSeat 按方位索引的定长记录：每个方位恒有且仅有一个值，
// 键集合在类型层面固定，构造后不增不减。
type PerSeat[T any] struct {
	North T `json:"north"`
	East  T `json:"east"`
	South T `json:"south"`
	West  T `json:"west"`
}

// NewPerSeat 构造每个方位都取同一初值的记录
func NewPerSeat[T any](value T) PerSeat[T] {
	return PerSeat[T]{
		North: value,
		East:  value,
		South: value,
		West:  value,
	}
}

// NewPerSeatWith 按规范方位顺序逐键调用 produce 构造记录
func NewPerSeatWith[T any](produce func() T) PerSeat[T] {
	return PerSeat[T]{
		North: produce(),
		East:  produce(),
		South: produce(),
		West:  produce(),
	}
}

// Get 读取指定方位的值，任何方位键都有效
func (p PerSeat[T]) Get(s Seat) T {
	switch s {
	case North:
		return p.North
	case East:
		return p.East
	case South:
		return p.South
	case West:
		return p.West
	}
	panic(fmt.Sprintf("非法方位: %d", int(s)))
}

// Set 写入指定方位的值
func (p *PerSeat[T]) Set(s Seat, value T) {
	switch s {
	case North:
		p.North = value
	case East:
		p.East = value
	case South:
		p.South = value
	case West:
		p.West = value
	default:
		panic(fmt.Sprintf("非法方位: %d", int(s)))
	}
}

// Values 按规范方位顺序迭代所有值，可重复遍历
func (p PerSeat[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, s := range Seats {
			if !yield(p.Get(s)) {
				return
			}
		}
	}
}

// MapPerSeat 对每个方位的值独立应用 f，键值对应关系不变
func MapPerSeat[T, U any](p PerSeat[T], f func(T) U) PerSeat[U] {
	return PerSeat[U]{
		North: f(p.North),
		East:  f(p.East),
		South: f(p.South),
		West:  f(p.West),
	}
}

// MapPerSeatWith 与 MapPerSeat 相同，但 f 额外接收方位键
func MapPerSeatWith[T, U any](p PerSeat[T], f func(Seat, T) U) PerSeat[U] {
	return PerSeat[U]{
		North: f(North, p.North),
		East:  f(East, p.East),
		South: f(South, p.South),
		West:  f(West, p.West),
	}
}
