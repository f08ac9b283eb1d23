package game

import (
	"math"
	"sort"

	"git.lost.host/meutraa/kson/internal/graph"
)

// Resolution is the number of ticks in a quarter note.
const Resolution = 240

const defaultBPM = 120.0

type Chart struct {
	Meta    Meta       `json:"meta"`
	Note    NoteInfo   `json:"note"`
	Beat    BeatInfo   `json:"beat"`
	Camera  CameraInfo `json:"camera"`
	Version string     `json:"version,omitempty"`
}

type NoteInfo struct {
	BT    [4][]Interval `json:"bt"`
	FX    [2][]Interval `json:"fx"`
	Laser [2]graph.Lane `json:"laser"`
}

type BeatInfo struct {
	BPM         graph.ByPulse[float64]       `json:"bpm"`
	TimeSig     graph.ByPulse[TimeSignature] `json:"time_sig"` // keyed by measure index
	ScrollSpeed graph.Points                 `json:"scroll_speed"`
}

func BeatInMs(bpm float64) float64 {
	return 60000 / bpm
}

func TickInMs(bpm float64, resolution uint32) float64 {
	return BeatInMs(bpm) / float64(resolution)
}

func TicksFromMs(ms, bpm float64, resolution uint32) float64 {
	return ms * bpm * float64(resolution) / 60000
}

func MsFromTicks(ticks int64, bpm float64, resolution uint32) float64 {
	return float64(ticks) * 60000 / (bpm * float64(resolution))
}

// BPMAt returns the tempo in effect at tick.
func (c *Chart) BPMAt(tick graph.Tick) float64 {
	bpm := c.Beat.BPM
	if len(bpm) == 0 {
		return defaultBPM
	}
	return bpm.At(tick, bpm[0].V)
}

// TickToMs returns the chart time of tick, following every tempo change
// before it.
func (c *Chart) TickToMs(tick graph.Tick) float64 {
	prev := graph.Pulse[float64]{Y: 0, V: defaultBPM}
	if len(c.Beat.BPM) > 0 {
		prev = c.Beat.BPM[0]
	}

	ms := 0.0
	for _, b := range c.Beat.BPM {
		if b.Y > tick {
			break
		}
		ms += MsFromTicks(int64(b.Y)-int64(prev.Y), prev.V, Resolution)
		prev = b
	}
	return ms + MsFromTicks(int64(tick)-int64(prev.Y), prev.V, Resolution)
}

// MsToTickF is the inverse of TickToMs, keeping the fraction of a tick.
func (c *Chart) MsToTickF(ms float64) float64 {
	if !(ms > 0) {
		return 0
	}
	bpm := c.Beat.BPM
	if len(bpm) == 0 {
		return TicksFromMs(ms, defaultBPM, Resolution)
	}

	i := sort.Search(len(bpm), func(i int) bool { return c.TickToMs(bpm[i].Y) > ms })
	if i > 0 {
		i--
	}
	b := bpm[i]
	return float64(b.Y) + TicksFromMs(ms-c.TickToMs(b.Y), b.V, Resolution)
}

// tickSnap is how close to the next whole tick a conversion lands on it.
const tickSnap = 1e-9

// MsToTick returns the tick at ms. Results within tickSnap below a whole
// tick round up to it.
func (c *Chart) MsToTick(ms float64) graph.Tick {
	t := c.MsToTickF(ms)
	if up := math.Ceil(t); up-t < tickSnap {
		t = up
	}
	return graph.ToTick(t)
}

// LastTick is the end of the last note or laser section.
func (c *Chart) LastTick() graph.Tick {
	var last graph.Tick
	for _, lane := range c.Note.BT {
		if n := len(lane); n > 0 {
			last = max(last, lane[n-1].End())
		}
	}
	for _, lane := range c.Note.FX {
		if n := len(lane); n > 0 {
			last = max(last, lane[n-1].End())
		}
	}
	for _, lane := range c.Note.Laser {
		for i := range lane {
			last = max(last, lane[i].End())
		}
	}
	return last
}

// Duration is the chart length in milliseconds.
func (c *Chart) Duration() float64 {
	return c.TickToMs(c.LastTick())
}
