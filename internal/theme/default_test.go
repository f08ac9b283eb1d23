package theme

import (
	"math"
	"testing"

	"git.lost.host/meutraa/kson/internal/game"
	"git.lost.host/meutraa/kson/internal/gauge"
	"github.com/stretchr/testify/assert"
)

func TestSpark(t *testing.T) {
	th := &DefaultTheme{}
	tests := map[float64]string{
		0:     " ",
		1:     "█",
		0.5:   "▄",
		-3:    " ",
		7:     "█",
		0.124: "▁",
	}
	for v, expected := range tests {
		assert.Equal(t, expected, th.Spark(v), "value %v", v)
	}
	assert.Equal(t, " ", th.Spark(math.NaN()))
}

func TestColors(t *testing.T) {
	var th Theme = &DefaultTheme{}
	assert.Equal(t, failColor, th.GaugeColor(gauge.Hard, false))
	assert.NotEqual(t, th.GaugeColor(gauge.Normal, true), th.GaugeColor(gauge.Hard, true))
	assert.Equal(t, gaugeColors[gauge.None], th.GaugeColor(gauge.Type(9), true))
	assert.Equal(t, hitColors[game.HitNone], th.HitColor(game.HitKind(9)))
}
