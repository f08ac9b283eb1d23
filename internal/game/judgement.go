package game

import (
	"fmt"
	"math"
)

type HitKind uint8

const (
	HitNone HitKind = iota
	HitCrit
	HitGood
	HitMiss
)

var hitKindNames = [...]string{"none", "crit", "good", "miss"}

func (k HitKind) String() string {
	if int(k) < len(hitKindNames) {
		return hitKindNames[k]
	}
	return fmt.Sprintf("HitKind(%d)", k)
}

func (k HitKind) MarshalText() ([]byte, error) {
	if int(k) >= len(hitKindNames) {
		return nil, fmt.Errorf("unknown hit kind %d", k)
	}
	return []byte(k.String()), nil
}

func (k *HitKind) UnmarshalText(text []byte) error {
	for i, name := range hitKindNames {
		if name == string(text) {
			*k = HitKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown hit kind %q", text)
}

// HitRating is the judged outcome of one score tick. Delta is the timing
// error and Time the song time of the judgement, both in ms. A HitNone
// rating carries no tick.
type HitRating struct {
	Kind  HitKind         `json:"rating"`
	Tick  PlacedScoreTick `json:"tick"`
	Delta float64         `json:"delta"`
	Time  float64         `json:"time"`
}

func Crit(tick PlacedScoreTick, delta, time float64) HitRating {
	return HitRating{Kind: HitCrit, Tick: tick, Delta: delta, Time: time}
}

func Good(tick PlacedScoreTick, delta, time float64) HitRating {
	return HitRating{Kind: HitGood, Tick: tick, Delta: delta, Time: time}
}

func Miss(tick PlacedScoreTick, delta, time float64) HitRating {
	return HitRating{Kind: HitMiss, Tick: tick, Delta: delta, Time: time}
}

// Short reports whether the rated tick is a chip or a slam.
func (r HitRating) Short() bool {
	switch r.Tick.Kind {
	case TickChip, TickSlam:
		return true
	case TickHold, TickLaser:
		return false
	}
	return false
}

// TimingDelta is NaN for HitNone.
func (r HitRating) TimingDelta() float64 {
	if r.Kind == HitNone {
		return math.NaN()
	}
	return r.Delta
}

type HitSummary struct {
	Crit uint32
	Good uint32
	Miss uint32
}

func Summarize(ratings []HitRating) HitSummary {
	var s HitSummary
	for _, r := range ratings {
		s.Add(r)
	}
	return s
}

func (s *HitSummary) Add(r HitRating) {
	switch r.Kind {
	case HitCrit:
		s.Crit++
	case HitGood:
		s.Good++
	case HitMiss:
		s.Miss++
	case HitNone:
	}
}

func (s HitSummary) Perfect() bool {
	return s.Good == 0 && s.Miss == 0
}

func (s HitSummary) FullCombo() bool {
	return s.Miss == 0
}
