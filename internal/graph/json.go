package graph

import (
	"encoding/json"
	"errors"
	"fmt"
)

// kson stores points as tuples: [y, v], [y, [v, vf]] and, for curved
// segments, [y, v | [v, vf], [a, b]].

var errShortTuple = errors.New("tuple is too short")

func decodePoint(data []byte) (Tick, Point, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); nil != err {
		return 0, Point{}, err
	}
	if len(raw) < 2 {
		return 0, Point{}, fmt.Errorf("graph point %s: %w", data, errShortTuple)
	}

	var y Tick
	if err := json.Unmarshal(raw[0], &y); nil != err {
		return 0, Point{}, fmt.Errorf("graph point tick: %w", err)
	}

	var p Point
	if err := json.Unmarshal(raw[1], &p.V); nil != err {
		var pair [2]float64
		if err := json.Unmarshal(raw[1], &pair); nil != err {
			return 0, Point{}, fmt.Errorf("graph point value: %w", err)
		}
		p.V = pair[0]
		p.VF = &pair[1]
	}

	if len(raw) > 2 {
		var ab [2]float64
		if err := json.Unmarshal(raw[2], &ab); nil != err {
			return 0, Point{}, fmt.Errorf("graph point curve: %w", err)
		}
		p.A, p.B = &ab[0], &ab[1]
	}
	return y, p, nil
}

func encodePoint(y Tick, p Point) ([]byte, error) {
	tuple := []any{y, p.V}
	if p.VF != nil {
		tuple[1] = [2]float64{p.V, *p.VF}
	}
	if a, b, ok := p.Curve(); ok {
		tuple = append(tuple, [2]float64{a, b})
	}
	return json.Marshal(tuple)
}

func (g *GraphPoint) UnmarshalJSON(data []byte) error {
	y, p, err := decodePoint(data)
	if nil != err {
		return err
	}
	g.Y, g.Point = y, p
	return nil
}

func (g GraphPoint) MarshalJSON() ([]byte, error) {
	return encodePoint(g.Y, g.Point)
}

func (g *GraphSectionPoint) UnmarshalJSON(data []byte) error {
	ry, p, err := decodePoint(data)
	if nil != err {
		return err
	}
	g.RY, g.Point = ry, p
	return nil
}

func (g GraphSectionPoint) MarshalJSON() ([]byte, error) {
	return encodePoint(g.RY, g.Point)
}

// LaserSection is [y, [points...]] with an optional trailing wide value.
func (s *LaserSection) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); nil != err {
		return err
	}
	if len(raw) < 2 {
		return fmt.Errorf("laser section %s: %w", data, errShortTuple)
	}
	if err := json.Unmarshal(raw[0], &s.Start); nil != err {
		return fmt.Errorf("laser section tick: %w", err)
	}
	if err := json.Unmarshal(raw[1], &s.Points); nil != err {
		return fmt.Errorf("laser section at %d: %w", s.Start, err)
	}
	s.Wide = 1
	if len(raw) > 2 {
		if err := json.Unmarshal(raw[2], &s.Wide); nil != err {
			return fmt.Errorf("laser section wide: %w", err)
		}
	}
	return nil
}

func (s LaserSection) MarshalJSON() ([]byte, error) {
	points := s.Points
	if points == nil {
		points = SectionPoints{}
	}
	if s.Wide > 1 {
		return json.Marshal([]any{s.Start, points, s.Wide})
	}
	return json.Marshal([]any{s.Start, points})
}

func (p *Pulse[T]) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); nil != err {
		return err
	}
	if len(raw) < 2 {
		return fmt.Errorf("by pulse entry %s: %w", data, errShortTuple)
	}
	if err := json.Unmarshal(raw[0], &p.Y); nil != err {
		return err
	}
	return json.Unmarshal(raw[1], &p.V)
}

func (p Pulse[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.Y, p.V})
}
