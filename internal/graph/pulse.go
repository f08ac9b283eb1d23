package graph

import (
	"cmp"
	"slices"
	"sort"
)

// Pulse associates a value with the tick it takes effect at.
type Pulse[T any] struct {
	Y Tick
	V T
}

// ByPulse is an ascending list of values keyed by start tick.
type ByPulse[T any] []Pulse[T]

func (b ByPulse[T]) search(tick Tick) (int, bool) {
	return slices.BinarySearchFunc(b, tick, func(p Pulse[T], t Tick) int {
		return cmp.Compare(p.Y, t)
	})
}

// At returns the value in effect at tick: the one starting exactly there, or
// the most recent one before it. def is returned when nothing has started yet.
func (b ByPulse[T]) At(tick Tick, def T) T {
	i, found := b.search(tick)
	switch {
	case found:
		return b[i].V
	case i > 0:
		return b[i-1].V
	}
	return def
}

// ManualTilt is a set of independently placed tilt curves. A curve applies
// from its start tick through its last point; outside every curve there is no
// manual tilt.
type ManualTilt ByPulse[SectionPoints]

// section returns the curve whose span contains tick.
func (m ManualTilt) section(tick float64) (Pulse[SectionPoints], bool) {
	key := ToTick(tick)
	i := sort.Search(len(m), func(i int) bool { return m[i].Y > key })
	if i == 0 {
		return Pulse[SectionPoints]{}, false
	}
	s := m[i-1]
	if key-s.Y > s.V.Last() {
		return Pulse[SectionPoints]{}, false
	}
	return s, true
}

func (m ManualTilt) ValueAt(tick float64) (float64, bool) {
	s, ok := m.section(tick)
	if !ok {
		return 0, false
	}
	return s.V.ValueAt(tick - float64(s.Y))
}

func (m ManualTilt) DirectionAt(tick float64) (float64, bool) {
	s, ok := m.section(tick)
	if !ok {
		return 0, false
	}
	return s.V.DirectionAt(tick - float64(s.Y))
}

func (m ManualTilt) WideAt(float64) uint32 {
	return 1
}
