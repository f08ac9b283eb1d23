package game_test

import (
	"encoding/json"
	"math"
	"testing"

	"git.lost.host/meutraa/kson/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var chip = game.PlacedScoreTick{Y: 10, ScoreTick: game.ScoreTick{Kind: game.TickChip}}
var hold = game.PlacedScoreTick{Y: 20, ScoreTick: game.ScoreTick{Kind: game.TickHold, HoldStart: 5}}

func TestShort(t *testing.T) {
	tests := map[game.TickKind]bool{
		game.TickChip:  true,
		game.TickSlam:  true,
		game.TickHold:  false,
		game.TickLaser: false,
	}
	for kind, short := range tests {
		r := game.Crit(game.PlacedScoreTick{ScoreTick: game.ScoreTick{Kind: kind}}, 0, 0)
		assert.Equal(t, short, r.Short(), kind.String())
	}
}

func TestSummarize(t *testing.T) {
	ratings := []game.HitRating{
		game.Crit(chip, 1, 100),
		game.Good(chip, 30, 200),
		game.Crit(hold, 0, 300),
		{},
		game.Miss(chip, 0, 400),
	}

	s := game.Summarize(ratings)
	assert.Equal(t, game.HitSummary{Crit: 2, Good: 1, Miss: 1}, s)
	assert.False(t, s.Perfect())
	assert.False(t, s.FullCombo())

	s = game.Summarize(ratings[:3])
	assert.False(t, s.Perfect())
	assert.True(t, s.FullCombo())

	s = game.Summarize(nil)
	assert.True(t, s.Perfect())
}

func TestTimingDelta(t *testing.T) {
	assert.True(t, math.IsNaN(game.HitRating{}.TimingDelta()))
	assert.Equal(t, -12.5, game.Good(chip, -12.5, 0).TimingDelta())
}

func TestHitRatingJSON(t *testing.T) {
	data, err := json.Marshal(game.Miss(hold, 40, 900))
	require.NoError(t, err)
	assert.JSONEq(t, `{"rating":"miss","tick":{"y":20,"kind":"hold","lane":0,"hold_start":5},"delta":40,"time":900}`, string(data))

	var r game.HitRating
	require.NoError(t, json.Unmarshal(data, &r))
	assert.Equal(t, game.Miss(hold, 40, 900), r)

	assert.Error(t, json.Unmarshal([]byte(`{"rating":"great"}`), &r))
}
