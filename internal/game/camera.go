package game

import (
	"math"

	"git.lost.host/meutraa/kson/internal/graph"
)

type CameraInfo struct {
	Tilt TiltInfo `json:"tilt"`
	Cam  CamInfo  `json:"cam"`
}

type CamInfo struct {
	Body CamGraphs `json:"body"`
}

type CamGraphs struct {
	Zoom        graph.Points `json:"zoom"`
	ShiftX      graph.Points `json:"shift_x"`
	RotationX   graph.Points `json:"rotation_x"`
	RotationZ   graph.Points `json:"rotation_z"`
	RotationZHW graph.Points `json:"rotation_z.highway"`
	RotationZJL graph.Points `json:"rotation_z.jdgline"`
	Split       graph.Points `json:"split"`
}

type TiltInfo struct {
	Scale  graph.ByPulse[float64] `json:"scale"`
	Manual graph.ManualTilt       `json:"manual"`
	Keep   graph.ByPulse[bool]    `json:"keep"`
}

type RollKind uint8

const (
	RollNone RollKind = iota
	RollLaser
	RollManual
)

// Roll is the highway tilt the camera is heading towards.
type Roll struct {
	Kind  RollKind
	Value float64
}

// TiltScaleAt returns the tilt multiplier in effect at tick.
func (c *Chart) TiltScaleAt(tick graph.Tick) float64 {
	return c.Camera.Tilt.Scale.At(tick, 1)
}

// LaserTargets returns the position of both lasers at tick, if active.
func (c *Chart) LaserTargets(tick float64) (targets [2]float64, active [2]bool) {
	for i, lane := range c.Note.Laser {
		targets[i], active[i] = lane.ValueAt(tick)
	}
	return targets, active
}

// TargetRoll computes the roll for tick. Manual tilt overrides the lasers.
// While keep is set a laser roll holds its largest magnitude until the lasers
// tilt the other way.
func (c *Chart) TargetRoll(tick float64, current Roll) Roll {
	if v, ok := c.Camera.Tilt.Manual.ValueAt(tick); ok {
		return Roll{Kind: RollManual, Value: v}
	}

	next := Roll{Kind: RollLaser}
	switch l, on := c.LaserTargets(tick); {
	case on[0] && on[1]:
		next.Value = l[1] + l[0] - 1
	case on[0]:
		next.Value = l[0]
	case on[1]:
		next.Value = l[1] - 1
	default:
		next.Kind = RollNone
	}

	if !c.Camera.Tilt.Keep.At(graph.ToTick(tick), false) {
		return next
	}

	switch {
	case current.Kind == RollLaser && next.Kind == RollNone,
		current.Kind == RollManual && next.Kind == RollNone:
		return Roll{Kind: RollLaser, Value: current.Value}
	case current.Kind == RollNone && next.Kind == RollLaser:
		return next
	case current.Kind != RollNone && next.Kind == RollLaser:
		cv, nv := current.Value, next.Value
		switch {
		case math.Abs(cv) < epsilon:
			return next
		case math.Signbit(cv) == math.Signbit(nv):
			return Roll{Kind: RollLaser, Value: math.Copysign(max(math.Abs(cv), math.Abs(nv)), cv)}
		}
		return Roll{Kind: RollLaser, Value: cv}
	}
	return Roll{}
}

const epsilon = 2.220446049250313e-16
