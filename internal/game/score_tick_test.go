package game_test

import (
	"testing"

	"git.lost.host/meutraa/kson/internal/game"
	"git.lost.host/meutraa/kson/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateScoreTicks(t *testing.T) {
	ticks := game.GenerateScoreTicks(fixture(t))
	require.Len(t, ticks, 12)

	expected := []struct {
		y    graph.Tick
		kind game.TickKind
		lane int
	}{
		{0, game.TickChip, 0},
		{60, game.TickLaser, 0},
		{120, game.TickLaser, 0},
		{180, game.TickLaser, 0},
		{240, game.TickChip, 0},
		{540, game.TickHold, 0},
		{600, game.TickHold, 0},
		{660, game.TickHold, 0},
		{960, game.TickChip, 1},
		{960, game.TickSlam, 1},
		{1020, game.TickLaser, 1},
		{1500, game.TickHold, 4},
	}
	for i, e := range expected {
		assert.Equal(t, e.y, ticks[i].Y, "tick %d", i)
		assert.Equal(t, e.kind, ticks[i].Kind, "tick %d", i)
		assert.Equal(t, e.lane, ticks[i].Lane, "tick %d", i)
	}

	assert.InDelta(t, 0.5, ticks[2].Pos, 1e-12)
	assert.InDelta(t, 0.25, ticks[10].Pos, 1e-12)
	assert.Equal(t, 1.0, ticks[9].Start)
	assert.Equal(t, 0.0, ticks[9].End)
	assert.Equal(t, graph.Tick(480), ticks[5].HoldStart)
	assert.Equal(t, graph.Tick(1440), ticks[11].HoldStart)
}

func TestShortHoldsStillTick(t *testing.T) {
	chart := &game.Chart{}
	chart.Note.BT[2] = []game.Interval{{Y: 100, L: 30}}
	chart.Note.Laser[0] = graph.Lane{{Start: 200, Points: graph.SectionPoints{graph.Rel(0, 0), graph.Rel(40, 1)}}}

	ticks := game.GenerateScoreTicks(chart)
	require.Len(t, ticks, 2)
	assert.Equal(t, graph.Tick(115), ticks[0].Y)
	assert.Equal(t, game.TickHold, ticks[0].Kind)
	assert.Equal(t, graph.Tick(220), ticks[1].Y)
	assert.Equal(t, game.TickLaser, ticks[1].Kind)
	assert.InDelta(t, 0.5, ticks[1].Pos, 1e-12)
}

func TestFastHoldStep(t *testing.T) {
	chart := &game.Chart{}
	chart.Beat.BPM = graph.ByPulse[float64]{{Y: 0, V: 300}}
	chart.Note.BT[0] = []game.Interval{{Y: 0, L: 480}}

	ticks := game.GenerateScoreTicks(chart)
	require.Len(t, ticks, 3)
	for i, y := range []graph.Tick{120, 240, 360} {
		assert.Equal(t, y, ticks[i].Y)
	}
}

func TestTrailingSlam(t *testing.T) {
	chart := &game.Chart{}
	chart.Note.Laser[1] = graph.Lane{{Start: 0, Points: graph.SectionPoints{graph.Rel(0, 0), graph.Rel(240, 1).Slam(0)}}}

	ticks := game.GenerateScoreTicks(chart)
	last := ticks[len(ticks)-1]
	assert.Equal(t, game.TickSlam, last.Kind)
	assert.Equal(t, graph.Tick(240), last.Y)
}

func TestSummaryAndCombo(t *testing.T) {
	ticks := game.GenerateScoreTicks(fixture(t))

	assert.Equal(t, game.ScoreTickSummary{Chips: 3, Holds: 4, Lasers: 4, Slams: 1, Total: 12}, ticks.Summary())

	combos := map[graph.Tick]uint32{0: 1, 1: 1, 60: 2, 959: 8, 960: 9, 961: 10, 5000: 12}
	for y, expected := range combos {
		assert.Equal(t, expected, ticks.ComboAt(y), "y %d", y)
	}
	assert.Equal(t, uint32(0), game.ScoreTicks{}.ComboAt(10))
}

func TestTickKindText(t *testing.T) {
	for _, k := range []game.TickKind{game.TickChip, game.TickHold, game.TickLaser, game.TickSlam} {
		text, err := k.MarshalText()
		require.NoError(t, err)
		var back game.TickKind
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, k, back)
	}

	var k game.TickKind
	assert.Error(t, k.UnmarshalText([]byte("button")))
	_, err := game.TickKind(9).MarshalText()
	assert.Error(t, err)
}
