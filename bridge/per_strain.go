package bridge

import (
	"fmt"
	"iter"
)

// PerStrain 按定约品级索引的定长记录：每个品级恒有且仅有一个值，
// 键集合在类型层面固定，构造后不增不减。
type PerStrain[T any] struct {
	NoTrump  T `json:"notrump"`
	Spades   T `json:"spades"`
	Hearts   T `json:"hearts"`
	Diamonds T `json:"diamonds"`
	Clubs    T `json:"clubs"`
}

// NewPerStrain 构造每个品级都取同一初值的记录
func NewPerStrain[T any](value T) PerStrain[T] {
	return PerStrain[T]{
		NoTrump:  value,
		Spades:   value,
		Hearts:   value,
		Diamonds: value,
		Clubs:    value,
	}
}

// NewPerStrainWith 按规范品级顺序逐键调用 produce 构造记录
func NewPerStrainWith[T any](produce func() T) PerStrain[T] {
	return PerStrain[T]{
		NoTrump:  produce(),
		Spades:   produce(),
		Hearts:   produce(),
		Diamonds: produce(),
		Clubs:    produce(),
	}
}

// Get 读取指定品级的值，任何品级键都有效
func (p PerStrain[T]) Get(s Strain) T {
	switch s {
	case NoTrump:
		return p.NoTrump
	case StrainSpades:
		return p.Spades
	case StrainHearts:
		return p.Hearts
	case StrainDiamonds:
		return p.Diamonds
	case StrainClubs:
		return p.Clubs
	}
	panic(fmt.Sprintf("非法定约品级: %d", int(s)))
}

// Set 写入指定品级的值
func (p *PerStrain[T]) Set(s Strain, value T) {
	switch s {
	case NoTrump:
		p.NoTrump = value
	case StrainSpades:
		p.Spades = value
	case StrainHearts:
		p.Hearts = value
	case StrainDiamonds:
		p.Diamonds = value
	case StrainClubs:
		p.Clubs = value
	default:
		panic(fmt.Sprintf("非法定约品级: %d", int(s)))
	}
}

// Values 按规范品级顺序迭代所有值，可重复遍历
func (p PerStrain[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, s := range Strains {
			if !yield(p.Get(s)) {
				return
			}
		}
	}
}

// MapPerStrain 对每个品级的值独立应用 f，键值对应关系不变
func MapPerStrain[T, U any](p PerStrain[T], f func(T) U) PerStrain[U] {
	return PerStrain[U]{
		NoTrump:  f(p.NoTrump),
		Spades:   f(p.Spades),
		Hearts:   f(p.Hearts),
		Diamonds: f(p.Diamonds),
		Clubs:    f(p.Clubs),
	}
}

// MapPerStrainWith 与 MapPerStrain 相同，但 f 额外接收品级键
func MapPerStrainWith[T, U any](p PerStrain[T], f func(Strain, T) U) PerStrain[U] {
	return PerStrain[U]{
		NoTrump:  f(NoTrump, p.NoTrump),
		Spades:   f(StrainSpades, p.Spades),
		Hearts:   f(StrainHearts, p.Hearts),
		Diamonds: f(StrainDiamonds, p.Diamonds),
		Clubs:    f(StrainClubs, p.Clubs),
	}
}
