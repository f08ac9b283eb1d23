package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"git.lost.host/meutraa/kson/internal/game"
	"git.lost.host/meutraa/kson/internal/gauge"
	"git.lost.host/meutraa/kson/internal/score"
	"git.lost.host/meutraa/kson/internal/theme"
	"golang.org/x/term"
)

const defaultWidth = 64

type DefaultRenderer struct {
	Out   io.Writer
	Theme theme.Theme
	Color bool
	Width int // sparkline columns

	buffer strings.Builder
}

// NewRenderer writes to f, with colour and width taken from the terminal
// when f is one.
func NewRenderer(f *os.File, th theme.Theme, width int) *DefaultRenderer {
	r := &DefaultRenderer{Out: f, Theme: th, Width: width}
	if fd := int(f.Fd()); term.IsTerminal(fd) {
		r.Color = true
		if cols, _, err := term.GetSize(fd); nil == err && (r.Width <= 0 || r.Width > cols-10) {
			r.Width = cols - 10
		}
	}
	if r.Width <= 0 {
		r.Width = defaultWidth
	}
	return r
}

func (r *DefaultRenderer) Fill(message string) {
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) FillColor(c color.RGBA, message string) {
	if !r.Color {
		r.buffer.WriteString(message)
		return
	}
	r.buffer.WriteString("\033[38;2;")
	r.buffer.WriteString(strconv.FormatInt(int64(c.R), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.G), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.B), 10))
	r.buffer.WriteString("m")
	r.buffer.WriteString(message)
	r.buffer.WriteString("\033[0m")
}

// Resample averages samples down, or repeats them up, to width columns.
func Resample(samples []float64, width int) []float64 {
	if width <= 0 || len(samples) == 0 {
		return nil
	}
	out := make([]float64, width)
	for i := range out {
		from := i * len(samples) / width
		to := max((i+1)*len(samples)/width, from+1)
		sum := 0.0
		for _, s := range samples[from:to] {
			sum += s
		}
		out[i] = sum / float64(to-from)
	}
	return out
}

func (r *DefaultRenderer) sparkline(g *gauge.Gauge, cleared bool) {
	line := strings.Builder{}
	for _, v := range Resample(g.Samples(), r.Width) {
		line.WriteString(r.Theme.Spark(v))
	}
	r.FillColor(r.Theme.GaugeColor(g.Type(), cleared), line.String())
}

func (r *DefaultRenderer) Report(res score.Result) error {
	state := "failed"
	switch {
	case res.Dead:
	case res.Cleared && res.Hits.Perfect():
		state = "perfect"
	case res.Cleared && res.Hits.FullCombo():
		state = "full combo"
	case res.Cleared:
		state = "cleared"
	}

	r.Fill(fmt.Sprintf("play    %s\n", res.ID))
	r.Fill(fmt.Sprintf("chart   %s\n", res.ChartSum))
	r.Fill(fmt.Sprintf("gauge   %s %6.2f%% ", res.Gauge.Type(), res.Gauge.Value()*100))
	r.FillColor(r.Theme.GaugeColor(res.Gauge.Type(), res.Cleared), state)
	r.Fill("\n")
	r.Fill(fmt.Sprintf("ticks   %d chip %d hold %d laser %d slam\n", res.Ticks.Chips, res.Ticks.Holds, res.Ticks.Lasers, res.Ticks.Slams))
	r.Fill("hits    ")
	r.FillColor(r.Theme.HitColor(game.HitCrit), fmt.Sprintf("%d crit ", res.Hits.Crit))
	r.FillColor(r.Theme.HitColor(game.HitGood), fmt.Sprintf("%d good ", res.Hits.Good))
	r.FillColor(r.Theme.HitColor(game.HitMiss), fmt.Sprintf("%d miss", res.Hits.Miss))
	r.Fill("\n")

	r.Fill("        ")
	r.sparkline(&res.Gauge, res.Cleared)
	r.Fill("\n")
	for i := range res.Failed {
		g := &res.Failed[i]
		r.Fill(fmt.Sprintf("%-8s", g.Type()))
		r.sparkline(g, false)
		r.Fill("\n")
	}
	return r.flush()
}

func (r *DefaultRenderer) Curve(rows []CurveRow) error {
	r.Fill(fmt.Sprintf("%10s %12s %12s %4s\n", "tick", "value", "direction", "wide"))
	for _, row := range rows {
		if !row.Active {
			r.Fill(fmt.Sprintf("%10.2f %12s %12s %4d\n", row.Tick, "-", "-", row.Wide))
			continue
		}
		r.Fill(fmt.Sprintf("%10.2f %12.6f %12.6f %4d\n", row.Tick, row.Value, row.Direction, row.Wide))
	}
	return r.flush()
}

func (r *DefaultRenderer) flush() error {
	_, err := io.WriteString(r.Out, r.buffer.String())
	r.buffer.Reset()
	return err
}
