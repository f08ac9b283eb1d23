// Package automation drives effect parameters of an audio stream from chart
// graphs.
package automation

import (
	"time"

	"git.lost.host/meutraa/kson/internal/game"
	"git.lost.host/meutraa/kson/internal/graph"
	"github.com/faiface/beep"
)

// ParamStreamer scales the wrapped stream by the value of Graph at the chart
// position of every sample.
type ParamStreamer struct {
	Streamer beep.Streamer
	Graph    graph.Graph
	Chart    *game.Chart
	Rate     beep.SampleRate

	// Offset is the song time of the first sample.
	Offset time.Duration

	pos int
}

func (p *ParamStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = p.Streamer.Stream(samples)
	for i := range samples[:n] {
		ms := float64(p.Rate.D(p.pos+i)+p.Offset) / float64(time.Millisecond)
		v := p.Graph.ValueAt(p.Chart.MsToTickF(ms))
		samples[i][0] *= v
		samples[i][1] *= v
	}
	p.pos += n
	return n, ok
}

func (p *ParamStreamer) Err() error {
	return p.Streamer.Err()
}

// Position is the number of samples streamed so far.
func (p *ParamStreamer) Position() int {
	return p.pos
}

// Fill evaluates a partial graph, such as a laser lane, as a Graph. Where
// the graph has no value the result is Rest.
type Fill struct {
	Graph graph.PartialGraph
	Rest  float64
}

func (f Fill) ValueAt(tick float64) float64 {
	if v, ok := f.Graph.ValueAt(tick); ok {
		return v
	}
	return f.Rest
}

func (f Fill) DirectionAt(tick float64) float64 {
	d, _ := f.Graph.DirectionAt(tick)
	return d
}

func (f Fill) WideAt(tick float64) uint32 {
	return f.Graph.WideAt(tick)
}
