// Package graph evaluates the time-indexed curves of a chart: camera zoom and
// rotation, tilt, laser positions and effect parameter automation.
//
// Curves are stored as ascending point sequences keyed by tick. Queries take
// a fractional tick from the playback clock and return the interpolated value
// and the local slope. Evaluation never mutates the points, so one chart can
// be queried from several goroutines at once.
package graph

import (
	"cmp"
	"math"
	"slices"
)

// Tick is a position on the chart timeline, in pulses.
type Tick uint32

// Graph is a curve that has a value at every tick.
type Graph interface {
	ValueAt(tick float64) float64
	DirectionAt(tick float64) float64
	WideAt(tick float64) uint32
}

// PartialGraph is a curve that can be absent at a tick. The bool result is
// false where no curve is active.
type PartialGraph interface {
	ValueAt(tick float64) (float64, bool)
	DirectionAt(tick float64) (float64, bool)
	WideAt(tick float64) uint32
}

// Point is the value part shared by absolute and section relative points.
type Point struct {
	V  float64  // value arriving at the point
	VF *float64 // value leaving the point, set for slams
	A  *float64 // curve shape of the segment starting here
	B  *float64
}

// Out is the value the segment after the point starts from.
func (p Point) Out() float64 {
	if p.VF != nil {
		return *p.VF
	}
	return p.V
}

// IsSlam reports whether the point jumps from V to VF.
func (p Point) IsSlam() bool {
	return p.VF != nil
}

// Curve returns the shape parameters of the segment starting at p. ok is
// false when the segment is linear.
func (p Point) Curve() (a, b float64, ok bool) {
	if p.A == nil || p.B == nil {
		return 0, 0, false
	}
	a, b = *p.A, *p.B
	return a, b, math.Abs(a-b) > epsilon
}

// GraphPoint is a point at an absolute tick.
type GraphPoint struct {
	Y Tick
	Point
}

// At creates a linear point at tick y.
func At(y Tick, v float64) GraphPoint {
	return GraphPoint{Y: y, Point: Point{V: v}}
}

// Slam sets the value the next segment starts from.
func (g GraphPoint) Slam(vf float64) GraphPoint {
	g.VF = &vf
	return g
}

// Curved sets the shape of the segment starting at g.
func (g GraphPoint) Curved(a, b float64) GraphPoint {
	g.A, g.B = &a, &b
	return g
}

// Points is an ascending sequence of absolute points.
type Points []GraphPoint

func (p Points) search(tick float64) (int, bool) {
	return slices.BinarySearchFunc(p, ToTick(tick), func(g GraphPoint, t Tick) int {
		return cmp.Compare(g.Y, t)
	})
}

// ValueAt returns the curve value at tick. Before the first point it holds
// the first value, after the last point it holds the last outgoing value, and
// an empty sequence is 0.
func (p Points) ValueAt(tick float64) float64 {
	i, found := p.search(tick)
	switch {
	case found:
		return p[i].V
	case len(p) == 0:
		return 0
	case i == 0:
		return p[0].V
	case i >= len(p):
		return p[len(p)-1].Out()
	}

	start, end := p[i-1], p[i]
	x := (tick - float64(start.Y)) / float64(end.Y-start.Y)
	return interpolate(start.Point, end.Point, x)
}

// DirectionAt returns the slope in value per tick. On a point it is the slope
// of the outgoing segment; outside the sequence it is 0. Curved segments
// report the slope of their chord.
func (p Points) DirectionAt(tick float64) float64 {
	i, found := p.search(tick)
	if found {
		if i+1 < len(p) {
			return slope(p[i].Point, p[i+1].Point, p[i].Y, p[i+1].Y)
		}
		return 0
	}
	if i == 0 || i >= len(p) {
		return 0
	}
	return slope(p[i-1].Point, p[i].Point, p[i-1].Y, p[i].Y)
}

func (p Points) WideAt(float64) uint32 {
	return 1
}

// ToTick truncates a query position to the tick used for searching. Negative
// and NaN positions map to 0, positions past the last tick saturate.
func ToTick(tick float64) Tick {
	switch {
	case !(tick > 0):
		return 0
	case tick >= math.MaxUint32:
		return math.MaxUint32
	}
	return Tick(tick)
}

func interpolate(start, end Point, x float64) float64 {
	sv := start.Out()
	width := end.V - sv
	if a, b, ok := start.Curve(); ok {
		return math.FMA(DoCurve(x, a, b), width, sv)
	}
	return math.FMA(x, width, sv)
}

func slope(start, end Point, from, to Tick) float64 {
	return (end.V - start.Out()) / float64(to-from)
}
