// Package gauge tracks the life gauge of a play: a Normal gauge fills towards
// the 70% clear line, a Hard gauge starts full and fails for good at zero.
package gauge

import (
	"fmt"
	"math"
	"strings"

	"git.lost.host/meutraa/kson/internal/game"
)

// SampleCount is the number of history samples kept per gauge.
const SampleCount = 128

type Type uint8

const (
	None Type = iota
	Normal
	Hard
)

var typeNames = [...]string{"none", "normal", "hard"}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", t)
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "normal":
		*t = Normal
	case "hard":
		*t = Hard
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, text)
	}
	return nil
}

// FallbackSupported reports whether a failed gauge of this type hands over
// to a Normal gauge.
func (t Type) FallbackSupported() bool {
	switch t {
	case Hard:
		return true
	case None, Normal:
		return false
	}
	return false
}

func (t Type) gainRate() float64 {
	switch t {
	case Hard:
		return 12.0 / 21.0
	case None, Normal:
		return 1
	}
	return 1
}

// Gauge builds a fresh gauge of this type from the chart gains.
func (t Type) Gauge(chipGain, tickGain float64) Gauge {
	g := Gauge{
		typ:      t,
		chipGain: chipGain * t.gainRate(),
		tickGain: tickGain * t.gainRate(),
	}
	if t == Hard {
		g.value = 1
	}
	return g
}

// Gauge is the zero value None gauge, or a Normal or Hard gauge built by
// Type.Gauge. A None gauge ignores every update.
type Gauge struct {
	typ      Type
	chipGain float64
	tickGain float64
	value    float64
	samples  [SampleCount]float64
}

func (g *Gauge) Type() Type {
	return g.typ
}

func (g *Gauge) Value() float64 {
	return g.value
}

func (g *Gauge) ChipGain() float64 {
	return g.chipGain
}

func (g *Gauge) TickGain() float64 {
	return g.tickGain
}

// Samples returns the sample history, nil for a None gauge.
func (g *Gauge) Samples() []float64 {
	if g.typ == None {
		return nil
	}
	return g.samples[:]
}

// MissDrain is the value lost on a missed chip or slam.
func (g *Gauge) MissDrain() float64 {
	switch g.typ {
	case Hard:
		return 0.09
	case None, Normal:
		return 0.02
	}
	return 0.02
}

func hardDrainMultiplier(value float64) float64 {
	return min(max(math.FMA(0.3-value, -2, 1), 0.5), 1)
}

func (g *Gauge) gain(r game.HitRating) float64 {
	switch r.Kind {
	case game.HitCrit:
		if r.Short() {
			return g.chipGain
		}
		return g.tickGain
	case game.HitGood:
		return g.chipGain / 3
	case game.HitMiss, game.HitNone:
	}
	return 0
}

func (g *Gauge) drain(r game.HitRating) float64 {
	if r.Kind != game.HitMiss {
		return 0
	}
	d := g.MissDrain()
	if !r.Short() {
		d /= 4
	}
	if g.typ == Hard {
		d *= hardDrainMultiplier(g.value)
	}
	return d
}

// OnHit applies a judgement. A dead Hard gauge no longer changes.
func (g *Gauge) OnHit(r game.HitRating) {
	switch g.typ {
	case None:
		return
	case Normal:
	case Hard:
		if !(g.value > 0) {
			return
		}
	}

	g.value += g.gain(r) - g.drain(r)
	g.value = min(max(g.value, 0), 1)
}

func (g *Gauge) IsCleared() bool {
	switch g.typ {
	case Normal:
		return g.value >= 0.7
	case Hard:
		return g.value >= 0
	case None:
	}
	return false
}

// IsDead is only ever true for a Hard gauge at exactly 0. Check it before
// IsCleared, which also holds there.
func (g *Gauge) IsDead() bool {
	switch g.typ {
	case Hard:
		return g.value == 0
	case None, Normal:
	}
	return false
}

// UpdateSample stores the current value at index, clamped to the last slot.
func (g *Gauge) UpdateSample(index int) {
	if g.typ == None {
		return
	}
	g.samples[min(max(index, 0), SampleCount-1)] = g.value
}
