package score

import (
	"time"

	"git.lost.host/meutraa/kson/internal/game"
	"git.lost.host/meutraa/kson/internal/gauge"
	"github.com/google/uuid"
)

type Scorer interface {
	Init(chart *game.Chart, opts Options) error

	// Apply a judgement to the gauges and the hit summary
	Apply(rating game.HitRating)

	// Sample the gauges at a chart position
	Sample(tick float64)

	// Replay ratings in order until the gauges die, returning how many were applied
	Replay(ratings []game.HitRating) int

	Failed() bool
	Result() Result
}

type Options struct {
	Start    gauge.Type
	Fallback bool
	Windows  Windows
}

// Windows are the timing windows of a chip, in absolute distance from the
// note.
type Windows struct {
	Perfect time.Duration
	Good    time.Duration
	Hold    time.Duration
	Miss    time.Duration
}

var DefaultWindows = Windows{
	Perfect: 46 * time.Millisecond,
	Good:    92 * time.Millisecond,
	Hold:    138 * time.Millisecond,
	Miss:    250 * time.Millisecond,
}

type Result struct {
	ID       uuid.UUID
	Gauge    gauge.Gauge
	Failed   []gauge.Gauge
	Cleared  bool
	Dead     bool
	Hits     game.HitSummary
	Ticks    game.ScoreTickSummary
	ChartSum string
}

type History struct {
	Sum     string
	Ratings []game.HitRating
}
