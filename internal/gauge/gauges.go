package gauge

import (
	"errors"
	"slices"

	"git.lost.host/meutraa/kson/internal/game"
)

var (
	ErrEmptyChart  = errors.New("chart has no score ticks")
	ErrUnknownType = errors.New("unknown gauge type")
)

// gainTotal is the gauge a perfect play gains over the whole chart.
const gainTotal = 2.10 + 1.1920929e-07

// Gains derives the per tick gauge gain of a chart. Long ticks (holds and
// lasers) are worth a quarter of a short tick when both kinds are present.
func Gains(s game.ScoreTickSummary) (chip, tick float64, err error) {
	if s.Total == 0 {
		return 0, 0, ErrEmptyChart
	}
	long := float64(s.Holds + s.Lasers)
	short := float64(s.Chips + s.Slams)

	switch {
	case long == 0 && short != 0:
		return gainTotal / short, 0, nil
	case long != 0 && short == 0:
		return 0, gainTotal / long, nil
	}
	gain := gainTotal * 20 / (5 * (long + 4*short))
	return gain, gain / 4, nil
}

// SampleIndex maps a position in the chart to a sample slot.
func SampleIndex(tick, duration float64) int {
	if !(duration > 0) || !(tick > 0) {
		return 0
	}
	return min(int(SampleCount*tick/duration), SampleCount-1)
}

// Gauges is the active gauge and the gauges it falls back to when it dies.
// Fallback gauges are updated alongside the active one so they take over with
// the value they would have had all along.
type Gauges struct {
	active   Gauge
	fallback []Gauge
	failed   []Gauge
}

func New(active Gauge, fallback ...Gauge) *Gauges {
	return &Gauges{active: active, fallback: slices.Clone(fallback)}
}

// NewGauges builds the chain for a play starting on start. A Normal
// fallback is added when enabled and start supports it.
func NewGauges(start Type, fallback bool, chipGain, tickGain float64) *Gauges {
	g := New(start.Gauge(chipGain, tickGain))
	if fallback && start.FallbackSupported() {
		g.fallback = append(g.fallback, Normal.Gauge(chipGain, tickGain))
	}
	return g
}

func (g *Gauges) Active() *Gauge {
	return &g.active
}

func (g *Gauges) Fallback() []Gauge {
	return g.fallback
}

// Failed lists the gauges that died, oldest first.
func (g *Gauges) Failed() []Gauge {
	return g.failed
}

func (g *Gauges) OnHit(r game.HitRating) {
	for i := range g.fallback {
		g.fallback[i].OnHit(r)
	}
	g.active.OnHit(r)

	if g.active.IsDead() && len(g.fallback) > 0 {
		g.failed = append(g.failed, g.active)
		g.active = g.fallback[0]
		g.fallback = g.fallback[1:]
	}
}

func (g *Gauges) UpdateSample(index int) {
	for i := range g.fallback {
		g.fallback[i].UpdateSample(index)
	}
	g.active.UpdateSample(index)
}

func (g *Gauges) IsCleared() bool {
	return g.active.IsCleared()
}

func (g *Gauges) IsDead() bool {
	return g.active.IsDead() && len(g.fallback) == 0
}
