package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionPointsBounds(t *testing.T) {
	p := SectionPoints{Rel(10, 0.2), Rel(20, 0.4).Slam(0.8), Rel(40, 0)}

	_, ok := p.ValueAt(5)
	assert.False(t, ok, "before first point")
	_, ok = p.ValueAt(41)
	assert.False(t, ok, "after last point")

	v, ok := p.ValueAt(20)
	require.True(t, ok)
	assert.Equal(t, 0.4, v)

	v, ok = p.ValueAt(30)
	require.True(t, ok)
	assert.InDelta(t, 0.4, v, 1e-12)

	d, ok := p.DirectionAt(5)
	assert.True(t, ok)
	assert.Equal(t, 0.0, d)

	d, ok = p.DirectionAt(20)
	assert.True(t, ok)
	assert.InDelta(t, -0.04, d, 1e-12)

	_, ok = SectionPoints{}.ValueAt(0)
	assert.False(t, ok)
}

func TestLaneScenario(t *testing.T) {
	lane := Lane{{Start: 100, Points: SectionPoints{Rel(0, 0), Rel(50, 1)}}}

	v, ok := lane.ValueAt(125)
	require.True(t, ok)
	assert.Equal(t, 0.5, v)

	_, ok = lane.ValueAt(99)
	assert.False(t, ok)
	_, ok = lane.ValueAt(300)
	assert.False(t, ok)
}

func TestLaneGaps(t *testing.T) {
	lane := Lane{
		{Start: 0, Points: SectionPoints{Rel(0, 0), Rel(100, 1)}},
		{Start: 200, Points: SectionPoints{Rel(0, 1).Slam(0), Rel(50, 0.5)}, Wide: 2},
		{Start: 400, Points: SectionPoints{Rel(0, 0.5), Rel(10, 0.5)}},
	}

	tests := []struct {
		name  string
		tick  float64
		value float64
		ok    bool
	}{
		{"inside first", 50, 0.5, true},
		{"end of first", 100, 1, true},
		{"gap after first", 150, 0, false},
		{"start of second", 200, 1, true},
		{"second after slam", 225, 0.25, true},
		{"gap after second", 399, 0, false},
		{"third", 405, 0.5, true},
		{"past everything", 5000, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := lane.ValueAt(tt.tick)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.value, v, 1e-12)
		})
	}

	assert.Equal(t, uint32(1), lane.WideAt(-1))
	assert.Equal(t, uint32(1), lane.WideAt(50))
	assert.Equal(t, uint32(2), lane.WideAt(210))
	assert.Equal(t, uint32(2), lane.WideAt(399))
	assert.Equal(t, 1, lane.Next(1))
	assert.Equal(t, 3, lane.Next(401))
}

func TestLaneDirection(t *testing.T) {
	lane := Lane{
		{Start: 100, Points: SectionPoints{Rel(0, 1).Slam(0), Rel(100, 0.5)}},
	}

	d, ok := lane.DirectionAt(100)
	require.True(t, ok)
	assert.InDelta(t, 0.005, d, 1e-12, "section start reports the outgoing slope")

	d, ok = lane.DirectionAt(150)
	require.True(t, ok)
	assert.InDelta(t, 0.005, d, 1e-12)

	_, ok = lane.DirectionAt(50)
	assert.False(t, ok)

	d, ok = lane.DirectionAt(900)
	assert.True(t, ok)
	assert.Equal(t, 0.0, d)
}

func TestLaserSectionAccessors(t *testing.T) {
	s := LaserSection{Start: 30, Points: SectionPoints{Rel(0, 0), Rel(12, 1), Rel(20, 0)}}
	assert.Equal(t, Tick(50), s.End())
	assert.Equal(t, uint32(1), s.WideAt(0))

	var pairs int
	s.Segments(func(start, end GraphSectionPoint) {
		assert.Less(t, uint32(start.RY), uint32(end.RY))
		pairs++
	})
	assert.Equal(t, 2, pairs)
}

func TestEmptyLane(t *testing.T) {
	var lane Lane
	_, ok := lane.ValueAt(10)
	assert.False(t, ok)
	_, ok = lane.DirectionAt(10)
	assert.False(t, ok)
	assert.Equal(t, uint32(1), lane.WideAt(10))
}
