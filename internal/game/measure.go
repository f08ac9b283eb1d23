package game

import "git.lost.host/meutraa/kson/internal/graph"

// TimeSignature is [beats per measure, beat note value], 4/4 is {4, 4}.
type TimeSignature [2]uint32

// ticksPerMeasure is 0 for a malformed signature.
func (t TimeSignature) ticksPerMeasure() uint32 {
	if t[1] == 0 {
		return 0
	}
	return Resolution * 4 * t[0] / t[1]
}

// TickToMeasure returns the index of the measure containing tick.
func (c *Chart) TickToMeasure(tick graph.Tick) uint32 {
	sigs := c.Beat.TimeSig
	if len(sigs) == 0 {
		return 0
	}

	var measure uint32
	remaining := uint32(tick)
	prevIndex := uint32(sigs[0].Y)
	perMeasure := sigs[0].V.ticksPerMeasure()
	if perMeasure == 0 {
		return 0
	}
	for _, sig := range sigs[1:] {
		count := uint32(sig.Y) - prevIndex
		ticks := count * perMeasure
		if ticks > remaining {
			break
		}
		measure += count
		remaining -= ticks
		prevIndex = uint32(sig.Y)
		perMeasure = sig.V.ticksPerMeasure()
		if perMeasure == 0 {
			return measure
		}
	}
	return measure + remaining/perMeasure
}

// MeasureToTick returns the tick a measure starts at.
func (c *Chart) MeasureToTick(measure uint32) graph.Tick {
	sigs := c.Beat.TimeSig
	if len(sigs) == 0 {
		return 0
	}

	var tick uint32
	remaining := measure
	prevIndex := uint32(sigs[0].Y)
	perMeasure := sigs[0].V.ticksPerMeasure()
	for _, sig := range sigs[1:] {
		count := uint32(sig.Y) - prevIndex
		if count > remaining {
			break
		}
		tick += count * perMeasure
		remaining -= count
		prevIndex = uint32(sig.Y)
		perMeasure = sig.V.ticksPerMeasure()
	}
	return graph.Tick(tick + remaining*perMeasure)
}
