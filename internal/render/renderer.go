package render

import (
	"git.lost.host/meutraa/kson/internal/score"
)

type Renderer interface {
	// Report writes the result of a play
	Report(result score.Result) error
	// Curve writes one row per evaluated graph position
	Curve(rows []CurveRow) error
}

type CurveRow struct {
	Tick      float64
	Value     float64
	Direction float64
	Wide      uint32
	Active    bool
}
