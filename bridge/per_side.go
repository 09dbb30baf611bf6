package bridge

import (
	"fmt"
	"iter"
)

// PerSide 按阵营索引的定长记录：每个阵营恒有且仅有一个值，
// 键集合在类型层面固定，构造后不增不减。
type PerSide[T any] struct {
	NS T `json:"ns"`
	EW T `json:"ew"`
}

// NewPerSide 构造两个阵营都取同一初值的记录
func NewPerSide[T any](value T) PerSide[T] {
	return PerSide[T]{NS: value, EW: value}
}

// NewPerSideWith 按规范阵营顺序逐键调用 produce 构造记录
func NewPerSideWith[T any](produce func() T) PerSide[T] {
	return PerSide[T]{NS: produce(), EW: produce()}
}

// Get 读取指定阵营的值，任何阵营键都有效
func (p PerSide[T]) Get(s Side) T {
	switch s {
	case NS:
		return p.NS
	case EW:
		return p.EW
	}
	panic(fmt.Sprintf("非法阵营: %d", int(s)))
}

// Set 写入指定阵营的值
func (p *PerSide[T]) Set(s Side, value T) {
	switch s {
	case NS:
		p.NS = value
	case EW:
		p.EW = value
	default:
		panic(fmt.Sprintf("非法阵营: %d", int(s)))
	}
}

// Values 按规范阵营顺序迭代所有值，可重复遍历
func (p PerSide[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, s := range Sides {
			if !yield(p.Get(s)) {
				return
			}
		}
	}
}

// MapPerSide 对每个阵营的值独立应用 f，键值对应关系不变
func MapPerSide[T, U any](p PerSide[T], f func(T) U) PerSide[U] {
	return PerSide[U]{NS: f(p.NS), EW: f(p.EW)}
}

// MapPerSideWith 与 MapPerSide 相同，但 f 额外接收阵营键
func MapPerSideWith[T, U any](p PerSide[T], f func(Side, T) U) PerSide[U] {
	return PerSide[U]{NS: f(NS, p.NS), EW: f(EW, p.EW)}
}
