package theme

import (
	"image/color"
	"math"

	"git.lost.host/meutraa/kson/internal/game"
	"git.lost.host/meutraa/kson/internal/gauge"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) GaugeColor(typ gauge.Type, cleared bool) color.RGBA {
	if !cleared {
		return failColor
	}
	col, ok := gaugeColors[typ]
	if !ok {
		return gaugeColors[gauge.None]
	}
	return col
}

func (t *DefaultTheme) HitColor(k game.HitKind) color.RGBA {
	col, ok := hitColors[k]
	if !ok {
		return hitColors[game.HitNone]
	}
	return col
}

// Spark returns the bar for a value in [0, 1].
func (t *DefaultTheme) Spark(v float64) string {
	if math.IsNaN(v) {
		return sparks[0]
	}
	i := int(math.Round(v * float64(len(sparks)-1)))
	return sparks[min(max(i, 0), len(sparks)-1)]
}

var (
	sparks      = [...]string{" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}
	failColor   = color.RGBA{106, 106, 106, 255} // grey
	gaugeColors = map[gauge.Type]color.RGBA{
		gauge.Normal: {0, 118, 236, 255},   // blue
		gauge.Hard:   {236, 30, 0, 255},    // red
		gauge.None:   {255, 255, 255, 255}, // white
	}
	hitColors = map[game.HitKind]color.RGBA{
		game.HitCrit: {236, 195, 0, 255},   // yellow
		game.HitGood: {0, 236, 128, 255},   // green
		game.HitMiss: {236, 30, 0, 255},    // red
		game.HitNone: {106, 106, 106, 255}, // grey
	}
)
