package graph

import (
	"cmp"
	"slices"
)

// GraphSectionPoint is a point positioned relative to the start of the
// section that owns it.
type GraphSectionPoint struct {
	RY Tick
	Point
}

// Rel creates a linear point ry ticks into a section.
func Rel(ry Tick, v float64) GraphSectionPoint {
	return GraphSectionPoint{RY: ry, Point: Point{V: v}}
}

func (g GraphSectionPoint) Slam(vf float64) GraphSectionPoint {
	g.VF = &vf
	return g
}

func (g GraphSectionPoint) Curved(a, b float64) GraphSectionPoint {
	g.A, g.B = &a, &b
	return g
}

// SectionPoints is an ascending sequence of section relative points. It only
// has a value between its first and last point.
type SectionPoints []GraphSectionPoint

func (p SectionPoints) search(tick float64) (int, bool) {
	return slices.BinarySearchFunc(p, ToTick(tick), func(g GraphSectionPoint, t Tick) int {
		return cmp.Compare(g.RY, t)
	})
}

func (p SectionPoints) ValueAt(tick float64) (float64, bool) {
	i, found := p.search(tick)
	if found {
		return p[i].V, true
	}
	if i == 0 || i >= len(p) {
		return 0, false
	}

	start, end := p[i-1], p[i]
	x := (tick - float64(start.RY)) / float64(end.RY-start.RY)
	return interpolate(start.Point, end.Point, x), true
}

// DirectionAt mirrors Points.DirectionAt. A section is flat outside its
// points rather than absent.
func (p SectionPoints) DirectionAt(tick float64) (float64, bool) {
	i, found := p.search(tick)
	if found {
		if i+1 < len(p) {
			return slope(p[i].Point, p[i+1].Point, p[i].RY, p[i+1].RY), true
		}
		return 0, true
	}
	if i == 0 || i >= len(p) {
		return 0, true
	}
	return slope(p[i-1].Point, p[i].Point, p[i-1].RY, p[i].RY), true
}

func (p SectionPoints) WideAt(float64) uint32 {
	return 1
}

// Last returns the relative tick of the final point, 0 when empty.
func (p SectionPoints) Last() Tick {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1].RY
}

// LaserSection is a curve anchored at Start, covering [Start, Start+last RY].
type LaserSection struct {
	Start  Tick
	Points SectionPoints
	Wide   uint8 // 0 reads as 1
}

func (s *LaserSection) ValueAt(tick float64) (float64, bool) {
	return s.Points.ValueAt(tick - float64(s.Start))
}

func (s *LaserSection) DirectionAt(tick float64) (float64, bool) {
	return s.Points.DirectionAt(tick - float64(s.Start))
}

func (s *LaserSection) WideAt(float64) uint32 {
	if s.Wide == 0 {
		return 1
	}
	return uint32(s.Wide)
}

// End is the absolute tick of the last point.
func (s *LaserSection) End() Tick {
	return s.Start + s.Points.Last()
}

// Segments calls fn for every adjacent pair of points.
func (s *LaserSection) Segments(fn func(start, end GraphSectionPoint)) {
	for i := 1; i < len(s.Points); i++ {
		fn(s.Points[i-1], s.Points[i])
	}
}

// Lane is the ascending, non-overlapping list of sections on one laser track.
// Between sections the lane has no value.
type Lane []LaserSection

// section finds the section that started most recently at or before tick.
func (l Lane) section(tick float64) *LaserSection {
	i, found := slices.BinarySearchFunc(l, ToTick(tick), func(s LaserSection, t Tick) int {
		return cmp.Compare(s.Start, t)
	})
	switch {
	case found:
		return &l[i]
	case i > 0:
		return &l[i-1]
	}
	return nil
}

func (l Lane) ValueAt(tick float64) (float64, bool) {
	s := l.section(tick)
	if s == nil {
		return 0, false
	}
	return s.ValueAt(tick)
}

func (l Lane) DirectionAt(tick float64) (float64, bool) {
	s := l.section(tick)
	if s == nil {
		return 0, false
	}
	return s.DirectionAt(tick)
}

func (l Lane) WideAt(tick float64) uint32 {
	s := l.section(tick)
	if s == nil {
		return 1
	}
	return s.WideAt(tick)
}

// Next returns the index of the first section starting at or after tick.
func (l Lane) Next(tick Tick) int {
	i, _ := slices.BinarySearchFunc(l, tick, func(s LaserSection, t Tick) int {
		return cmp.Compare(s.Start, t)
	})
	return i
}
