package theme

import (
	"image/color"

	"git.lost.host/meutraa/kson/internal/game"
	"git.lost.host/meutraa/kson/internal/gauge"
)

type Theme interface {
	GaugeColor(t gauge.Type, cleared bool) color.RGBA
	HitColor(k game.HitKind) color.RGBA
	Spark(v float64) string
}
