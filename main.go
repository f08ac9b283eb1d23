package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"git.lost.host/meutraa/kson/internal/automation"
	"git.lost.host/meutraa/kson/internal/config"
	"git.lost.host/meutraa/kson/internal/game"
	"git.lost.host/meutraa/kson/internal/graph"
	"git.lost.host/meutraa/kson/internal/parser"
	"git.lost.host/meutraa/kson/internal/render"
	"git.lost.host/meutraa/kson/internal/score"
	"git.lost.host/meutraa/kson/internal/theme"
	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

func run(args []string) error {
	cmd, err := config.Parse(args)
	if nil != err {
		return err
	}

	settings, err := config.LoadSettings(*config.SettingsFile)
	if nil != err {
		return err
	}
	if err := settings.ApplyFlags(); nil != err {
		return err
	}

	var psr parser.Parser = &parser.DefaultParser{}
	var th theme.Theme = &theme.DefaultTheme{}

	switch cmd {
	case config.PlayCommand:
		chart, err := psr.Parse(*config.PlayChart)
		if nil != err {
			return err
		}
		var r render.Renderer = render.NewRenderer(os.Stdout, th, settings.SampleCount)
		return play(chart, &settings, r)
	case config.EvalCommand:
		chart, err := psr.Parse(*config.EvalChart)
		if nil != err {
			return err
		}
		var r render.Renderer = render.NewRenderer(os.Stdout, th, settings.SampleCount)
		return eval(chart, r)
	case config.RenderCommand:
		chart, err := psr.Parse(*config.RenderChart)
		if nil != err {
			return err
		}
		return renderAudio(chart)
	}
	return fmt.Errorf("unknown command %v", cmd)
}

func play(chart *game.Chart, settings *config.Settings, r render.Renderer) error {
	s := &score.DefaultScorer{}
	if err := s.Init(chart, score.Options{
		Start:    settings.StartGauge,
		Fallback: settings.FallbackGauge,
		Windows:  score.DefaultWindows,
	}); nil != err {
		return fmt.Errorf("unable to start play: %w", err)
	}

	var ratings []game.HitRating
	if "" != *config.PlayLog {
		f, err := os.Open(*config.PlayLog)
		if nil != err {
			return fmt.Errorf("unable to open judgement log: %w", err)
		}
		history, err := score.LoadHistory(f)
		f.Close()
		if nil != err {
			return err
		}
		if history.Sum != s.Result().ChartSum {
			log.Println("judgement log was recorded against a different chart")
		}
		ratings = history.Ratings
	} else {
		ratings = score.Autoplay(chart, s.Ticks(), score.DefaultWindows, settings.Offset())
	}

	if applied := s.Replay(ratings); applied < len(ratings) {
		log.Printf("gauge died after %d of %d judgements\n", applied, len(ratings))
	}

	if "" != *config.SaveLog {
		if err := saveLog(*config.SaveLog, chart, ratings); nil != err {
			return err
		}
	}

	return r.Report(s.Result())
}

func saveLog(path string, chart *game.Chart, ratings []game.HitRating) error {
	f, err := os.Create(path)
	if nil != err {
		return fmt.Errorf("unable to create judgement log: %w", err)
	}
	defer f.Close()
	return score.WriteHistory(f, chart, ratings)
}

// partial looks up a chart graph by its command line name.
func partial(chart *game.Chart, name string) (graph.PartialGraph, error) {
	body := chart.Camera.Cam.Body
	switch name {
	case config.GraphZoom:
		return always{body.Zoom}, nil
	case config.GraphShiftX:
		return always{body.ShiftX}, nil
	case config.GraphRotationX:
		return always{body.RotationX}, nil
	case config.GraphRotationZ:
		return always{body.RotationZ}, nil
	case config.GraphSplit:
		return always{body.Split}, nil
	case config.GraphScroll:
		return always{chart.Beat.ScrollSpeed}, nil
	case config.GraphLaserLeft:
		return chart.Note.Laser[0], nil
	case config.GraphLaserRight:
		return chart.Note.Laser[1], nil
	case config.GraphTilt:
		return chart.Camera.Tilt.Manual, nil
	}
	return nil, fmt.Errorf("unknown graph %v", name)
}

// always is a graph that is active at every tick.
type always struct {
	graph.Graph
}

func (a always) ValueAt(tick float64) (float64, bool) {
	return a.Graph.ValueAt(tick), true
}

func (a always) DirectionAt(tick float64) (float64, bool) {
	return a.Graph.DirectionAt(tick), true
}

func eval(chart *game.Chart, r render.Renderer) error {
	g, err := partial(chart, *config.Graph)
	if nil != err {
		return err
	}

	start, step := *config.Tick, *config.Step
	rows := make([]render.CurveRow, 0, *config.Count)
	for i := uint(0); i < *config.Count; i++ {
		tick := start + float64(i)*step
		v, ok := g.ValueAt(tick)
		d, _ := g.DirectionAt(tick)
		rows = append(rows, render.CurveRow{
			Tick:      tick,
			Value:     v,
			Direction: d,
			Wide:      g.WideAt(tick),
			Active:    ok,
		})
	}
	return r.Curve(rows)
}

func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if nil != err {
		return nil, beep.Format{}, fmt.Errorf("unable to open audio: %w", err)
	}

	var s beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		s, format, err = mp3.Decode(f)
	case ".ogg":
		s, format, err = vorbis.Decode(f)
	case ".wav":
		s, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("unsupported audio file %v", path)
	}
	if nil != err {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("unable to decode audio: %w", err)
	}
	return s, format, nil
}

func renderAudio(chart *game.Chart) error {
	g, err := partial(chart, *config.RenderGraph)
	if nil != err {
		return err
	}

	streamer, format, err := decode(*config.RenderAudio)
	if nil != err {
		return err
	}
	defer streamer.Close()

	param := &automation.ParamStreamer{
		Streamer: streamer,
		Graph:    automation.Fill{Graph: g, Rest: 1},
		Chart:    chart,
		Rate:     format.SampleRate,
		Offset:   *config.AudioOffset,
	}

	if "" != *config.RenderOutput {
		out, err := os.Create(*config.RenderOutput)
		if nil != err {
			return fmt.Errorf("unable to create %v: %w", *config.RenderOutput, err)
		}
		defer out.Close()
		if err := wav.Encode(out, param, format); nil != err {
			return fmt.Errorf("unable to encode wav: %w", err)
		}
		return param.Err()
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); nil != err {
		return fmt.Errorf("unable to initialise speaker: %w", err)
	}
	done := make(chan bool)
	speaker.Play(beep.Seq(param, beep.Callback(func() {
		done <- true
	})))
	<-done
	return param.Err()
}
