package game

import (
	"fmt"
	"sort"

	"git.lost.host/meutraa/kson/internal/graph"
)

type TickKind uint8

const (
	TickChip TickKind = iota
	TickHold
	TickLaser
	TickSlam
)

var tickKindNames = [...]string{"chip", "hold", "laser", "slam"}

func (k TickKind) String() string {
	if int(k) < len(tickKindNames) {
		return tickKindNames[k]
	}
	return fmt.Sprintf("TickKind(%d)", k)
}

func (k TickKind) MarshalText() ([]byte, error) {
	if int(k) >= len(tickKindNames) {
		return nil, fmt.Errorf("unknown tick kind %d", k)
	}
	return []byte(k.String()), nil
}

func (k *TickKind) UnmarshalText(text []byte) error {
	for i, name := range tickKindNames {
		if name == string(text) {
			*k = TickKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown tick kind %q", text)
}

// ScoreTick is a judged event. Lane is 0-3 for bt, 4-5 for fx and 0-1 for
// lasers. Pos is the laser position for Laser ticks; Start and End are the
// slam values; HoldStart is the tick the owning hold begins at.
type ScoreTick struct {
	Kind      TickKind   `json:"kind"`
	Lane      int        `json:"lane"`
	Pos       float64    `json:"pos,omitempty"`
	Start     float64    `json:"start,omitempty"`
	End       float64    `json:"end,omitempty"`
	HoldStart graph.Tick `json:"hold_start,omitempty"`
}

type PlacedScoreTick struct {
	Y graph.Tick `json:"y"`
	ScoreTick
}

type ScoreTicks []PlacedScoreTick

type ScoreTickSummary struct {
	Chips  uint32
	Holds  uint32
	Lasers uint32
	Slams  uint32
	Total  uint32
}

func (c *Chart) holdStepAt(y graph.Tick) graph.Tick {
	if c.BPMAt(y) > 255 {
		return Resolution / 2
	}
	return Resolution / 4
}

func (c *Chart) intervalTicks(in Interval, lane int) ScoreTicks {
	if in.IsChip() {
		return ScoreTicks{{Y: in.Y, ScoreTick: ScoreTick{Kind: TickChip, Lane: lane}}}
	}

	hold := ScoreTick{Kind: TickHold, Lane: lane, HoldStart: in.Y}
	var ticks ScoreTicks
	step := c.holdStepAt(in.Y)
	y := in.Y + step
	y -= y % step
	for y+step <= in.End() {
		ticks = append(ticks, PlacedScoreTick{Y: y, ScoreTick: hold})
		step = c.holdStepAt(y)
		y += step
	}

	if len(ticks) == 0 {
		ticks = append(ticks, PlacedScoreTick{Y: in.Y + in.L/2, ScoreTick: hold})
	}
	return ticks
}

func slamTick(p graph.GraphSectionPoint, lane int, start graph.Tick) (PlacedScoreTick, bool) {
	if !p.IsSlam() {
		return PlacedScoreTick{}, false
	}
	return PlacedScoreTick{
		Y:         start + p.RY,
		ScoreTick: ScoreTick{Kind: TickSlam, Lane: lane, Start: p.V, End: *p.VF},
	}, true
}

func (c *Chart) laserTicks(section *graph.LaserSection, lane int) ScoreTicks {
	var ticks ScoreTicks
	laserAt := func(y graph.Tick) PlacedScoreTick {
		pos, _ := section.ValueAt(float64(y))
		return PlacedScoreTick{Y: y, ScoreTick: ScoreTick{Kind: TickLaser, Lane: lane, Pos: pos}}
	}

	first := true
	section.Segments(func(s, e graph.GraphSectionPoint) {
		if t, ok := slamTick(s, lane, section.Start); ok {
			ticks = append(ticks, t)
		}

		y := section.Start + s.RY
		step := c.holdStepAt(y)
		if s.IsSlam() || first {
			y += step
		}
		y -= y % step
		for y+step <= section.Start+e.RY {
			if n := len(ticks); n > 0 && ticks[n-1].Y == y {
				step = c.holdStepAt(y)
				y += step
				continue
			}
			ticks = append(ticks, laserAt(y))
			step = c.holdStepAt(y)
			y += step
		}
		first = false
	})

	if n := len(section.Points); n > 0 {
		if t, ok := slamTick(section.Points[n-1], lane, section.Start); ok {
			ticks = append(ticks, t)
		}
	}

	if len(ticks) == 0 && len(section.Points) >= 2 {
		ticks = append(ticks, laserAt(section.Start+section.Points.Last()/2))
	}
	return ticks
}

// GenerateScoreTicks lists every judged event of the chart in tick order.
// Holds and lasers tick every sixteenth note, or every eighth above 255 bpm,
// and always produce at least one tick.
func GenerateScoreTicks(c *Chart) ScoreTicks {
	var ticks ScoreTicks
	for lane, notes := range c.Note.BT {
		for _, in := range notes {
			ticks = append(ticks, c.intervalTicks(in, lane)...)
		}
	}
	for lane, notes := range c.Note.FX {
		for _, in := range notes {
			ticks = append(ticks, c.intervalTicks(in, lane+4)...)
		}
	}
	for lane := range c.Note.Laser {
		for i := range c.Note.Laser[lane] {
			ticks = append(ticks, c.laserTicks(&c.Note.Laser[lane][i], lane)...)
		}
	}

	sort.SliceStable(ticks, func(i, j int) bool { return ticks[i].Y < ticks[j].Y })
	return ticks
}

func (t ScoreTicks) Summary() ScoreTickSummary {
	var s ScoreTickSummary
	for _, tick := range t {
		s.Total++
		switch tick.Kind {
		case TickChip:
			s.Chips++
		case TickHold:
			s.Holds++
		case TickLaser:
			s.Lasers++
		case TickSlam:
			s.Slams++
		}
	}
	return s
}

// ComboAt is the maximum combo reachable by tick y.
func (t ScoreTicks) ComboAt(y graph.Tick) uint32 {
	i := sort.Search(len(t), func(i int) bool { return t[i].Y >= y })
	if i < len(t) && t[i].Y == y {
		return uint32(i) + 1
	}
	return uint32(i)
}
