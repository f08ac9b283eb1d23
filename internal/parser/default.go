package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"git.lost.host/meutraa/kson/internal/game"
	"git.lost.host/meutraa/kson/internal/graph"
)

var (
	ErrNoChart  = errors.New("no chart data")
	ErrUnsorted = errors.New("not in ascending order")
	ErrBadTempo = errors.New("tempo must be positive")
)

// DefaultParser reads kson charts. Sequences are checked for ascending
// order here so evaluation never has to.
type DefaultParser struct{}

func (p *DefaultParser) Parse(file string) (*game.Chart, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	chart, err := p.Read(f)
	if nil != err {
		return nil, fmt.Errorf("unable to parse %s: %w", file, err)
	}
	return chart, nil
}

func (p *DefaultParser) Read(r io.Reader) (*game.Chart, error) {
	data, err := io.ReadAll(r)
	if nil != err {
		return nil, err
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoChart
	}

	var chart game.Chart
	if err := json.Unmarshal(data, &chart); nil != err {
		return nil, err
	}
	if err := validate(&chart); nil != err {
		return nil, err
	}
	return &chart, nil
}

func ascending[T any](name string, items []T, key func(T) graph.Tick) error {
	for i := 1; i < len(items); i++ {
		if a, b := key(items[i-1]), key(items[i]); a >= b {
			return fmt.Errorf("%s at %d: %w", name, b, ErrUnsorted)
		}
	}
	return nil
}

func pointY(p graph.GraphPoint) graph.Tick { return p.Y }
func sectionY(p graph.GraphSectionPoint) graph.Tick { return p.RY }
func intervalY(i game.Interval) graph.Tick { return i.Y }

func pulseY[T any](p graph.Pulse[T]) graph.Tick { return p.Y }

func validate(c *game.Chart) error {
	if len(c.Beat.BPM) == 0 {
		c.Beat.BPM = graph.ByPulse[float64]{{Y: 0, V: 120}}
	}
	for _, b := range c.Beat.BPM {
		if !(b.V > 0) {
			return fmt.Errorf("bpm at %d: %w", b.Y, ErrBadTempo)
		}
	}

	checks := []error{
		ascending("bpm", c.Beat.BPM, pulseY[float64]),
		ascending("time signature", c.Beat.TimeSig, pulseY[game.TimeSignature]),
		ascending("scroll speed", c.Beat.ScrollSpeed, pointY),
		ascending("tilt scale", c.Camera.Tilt.Scale, pulseY[float64]),
		ascending("tilt keep", c.Camera.Tilt.Keep, pulseY[bool]),
		ascending("manual tilt", c.Camera.Tilt.Manual, pulseY[graph.SectionPoints]),
	}
	for i, lane := range c.Note.BT {
		checks = append(checks, ascending(fmt.Sprintf("bt %d", i), lane, intervalY))
	}
	for i, lane := range c.Note.FX {
		checks = append(checks, ascending(fmt.Sprintf("fx %d", i), lane, intervalY))
	}
	for i, lane := range c.Note.Laser {
		checks = append(checks, ascending(fmt.Sprintf("laser %d", i), lane, func(s graph.LaserSection) graph.Tick { return s.Start }))
		for _, s := range lane {
			checks = append(checks, ascending(fmt.Sprintf("laser %d section %d", i, s.Start), s.Points, sectionY))
		}
	}
	for _, s := range c.Camera.Tilt.Manual {
		checks = append(checks, ascending(fmt.Sprintf("manual tilt %d", s.Y), s.V, sectionY))
	}

	body := c.Camera.Cam.Body
	checks = append(checks,
		ascending("zoom", body.Zoom, pointY),
		ascending("shift_x", body.ShiftX, pointY),
		ascending("rotation_x", body.RotationX, pointY),
		ascending("rotation_z", body.RotationZ, pointY),
		ascending("rotation_z.highway", body.RotationZHW, pointY),
		ascending("rotation_z.jdgline", body.RotationZJL, pointY),
		ascending("split", body.Split, pointY),
	)

	return errors.Join(checks...)
}
