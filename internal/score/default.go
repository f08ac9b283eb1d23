package score

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"sort"
	"time"

	"git.lost.host/meutraa/kson/internal/game"
	"git.lost.host/meutraa/kson/internal/gauge"
	"git.lost.host/meutraa/kson/internal/graph"
	"github.com/google/uuid"
)

type DefaultScorer struct {
	ID uuid.UUID

	ticks    game.ScoreTicks
	gauges   *gauge.Gauges
	hits     game.HitSummary
	duration float64
	sum      string
}

// RatingsCompact holds the ratings of one lane. Ratings without a tick are
// kept on lane 0.
type RatingsCompact struct {
	Lane    int
	Ratings []game.HitRating
}

func compactRatings(ratings []game.HitRating) []RatingsCompact {
	laneCount := 0
	for _, r := range ratings {
		if r.Tick.Lane >= laneCount {
			laneCount = r.Tick.Lane + 1
		}
	}
	lanes := make([]RatingsCompact, laneCount)
	for i := range lanes {
		lanes[i].Lane = i
		lanes[i].Ratings = []game.HitRating{}
	}
	for _, r := range ratings {
		lanes[r.Tick.Lane].Ratings = append(lanes[r.Tick.Lane].Ratings, r)
	}
	return lanes
}

// uncompactRatings restores judgement order across lanes.
func uncompactRatings(lanes []RatingsCompact) []game.HitRating {
	ratings := []game.HitRating{}
	for _, l := range lanes {
		ratings = append(ratings, l.Ratings...)
	}
	sort.SliceStable(ratings, func(i, j int) bool { return ratings[i].Time < ratings[j].Time })
	return ratings
}

func hashChart(c *game.Chart) string {
	data, err := json.Marshal(c)
	if nil != err {
		log.Println("unable to hash chart", err)
		return ""
	}
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}

var ErrBadLane = errors.New("judgement on a negative lane")

type historyFile struct {
	Sum   string           `json:"sum"`
	Lanes []RatingsCompact `json:"lanes"`
}

// WriteHistory stores the ratings of a play on chart.
func WriteHistory(w io.Writer, c *game.Chart, ratings []game.HitRating) error {
	h := historyFile{Sum: hashChart(c), Lanes: compactRatings(ratings)}
	if err := json.NewEncoder(w).Encode(h); nil != err {
		return fmt.Errorf("unable to write history: %w", err)
	}
	return nil
}

func LoadHistory(r io.Reader) (History, error) {
	var h historyFile
	if err := json.NewDecoder(r).Decode(&h); nil != err {
		return History{}, fmt.Errorf("unable to read history: %w", err)
	}
	for _, l := range h.Lanes {
		for _, r := range l.Ratings {
			if r.Tick.Lane < 0 {
				return History{}, fmt.Errorf("unable to read history: %w: %d", ErrBadLane, r.Tick.Lane)
			}
		}
	}
	return History{Sum: h.Sum, Ratings: uncompactRatings(h.Lanes)}, nil
}

func (s *DefaultScorer) Init(c *game.Chart, opts Options) error {
	s.ID = uuid.New()
	s.ticks = game.GenerateScoreTicks(c)
	s.duration = float64(c.LastTick())
	s.hits = game.HitSummary{}
	s.sum = hashChart(c)

	chipGain, tickGain, err := gauge.Gains(s.ticks.Summary())
	if nil != err {
		return fmt.Errorf("unable to derive gauge gains: %w", err)
	}
	s.gauges = gauge.NewGauges(opts.Start, opts.Fallback, chipGain, tickGain)
	return nil
}

func (s *DefaultScorer) Ticks() game.ScoreTicks {
	return s.ticks
}

func (s *DefaultScorer) Gauges() *gauge.Gauges {
	return s.gauges
}

func (s *DefaultScorer) Apply(r game.HitRating) {
	s.hits.Add(r)
	s.gauges.OnHit(r)
}

func (s *DefaultScorer) Sample(tick float64) {
	s.gauges.UpdateSample(gauge.SampleIndex(tick, s.duration))
}

func (s *DefaultScorer) Replay(ratings []game.HitRating) int {
	for i, r := range ratings {
		s.Apply(r)
		if r.Kind != game.HitNone {
			s.Sample(float64(r.Tick.Y))
		}
		if s.Failed() {
			return i + 1
		}
	}
	s.Sample(s.duration)
	return len(ratings)
}

func (s *DefaultScorer) Failed() bool {
	return s.gauges.IsDead()
}

func (s *DefaultScorer) Result() Result {
	dead := s.gauges.IsDead()
	return Result{
		ID:       s.ID,
		Gauge:    *s.gauges.Active(),
		Failed:   append([]gauge.Gauge(nil), s.gauges.Failed()...),
		Cleared:  !dead && s.gauges.IsCleared(),
		Dead:     dead,
		Hits:     s.hits,
		Ticks:    s.ticks.Summary(),
		ChartSum: s.sum,
	}
}

// Distance returns the signed error in ms of a hit at hitMs against tick y,
// negative when early.
func Distance(c *game.Chart, y graph.Tick, hitMs float64) float64 {
	return hitMs - c.TickToMs(y)
}

// Judge rates a hit that is delta away from its chip. Only chips can be
// Good; every other tick is either held or missed.
func (w Windows) Judge(kind game.TickKind, delta time.Duration) game.HitKind {
	d := delta
	if d < 0 {
		d = -d
	}

	switch kind {
	case game.TickChip:
		switch {
		case d <= w.Perfect:
			return game.HitCrit
		case d <= w.Good:
			return game.HitGood
		case d <= w.Miss:
			return game.HitMiss
		}
		return game.HitNone
	case game.TickHold, game.TickLaser, game.TickSlam:
		if d <= w.Hold {
			return game.HitCrit
		}
		return game.HitMiss
	}
	return game.HitNone
}

// Autoplay hits every tick offset late, judged by w.
func Autoplay(c *game.Chart, ticks game.ScoreTicks, w Windows, offset time.Duration) []game.HitRating {
	ratings := make([]game.HitRating, 0, len(ticks))
	late := float64(offset) / float64(time.Millisecond)
	for _, t := range ticks {
		kind := w.Judge(t.Kind, offset)
		if kind == game.HitNone {
			kind = game.HitMiss
		}
		hit := math.Max(c.TickToMs(t.Y)+late, 0)
		ratings = append(ratings, game.HitRating{Kind: kind, Tick: t, Delta: Distance(c, t.Y, hit), Time: hit})
	}
	return ratings
}
