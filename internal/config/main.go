package config

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	PlayCommand   = "play"
	EvalCommand   = "eval"
	RenderCommand = "render"
)

var (
	app = kingpin.New("kson", "Evaluate kson chart graphs and replay gauge results").Version("0.3.0")

	SettingsFile = app.Flag("settings", "YAML settings file").Short('c').Default("").String()
	Gauge        = app.Flag("gauge", "Starting gauge, overrides the settings file (normal, hard)").Short('g').Default("").String()
	NoFallback   = app.Flag("no-fallback", "Disable the fallback gauge").Default("false").Bool()
	Width        = app.Flag("width", "Sparkline width, overrides the settings file").Short('w').Default("0").Int()

	play      = app.Command(PlayCommand, "Replay a judgement log, or autoplay, and report the gauge")
	PlayChart = play.Arg("chart", "kson chart file").Required().ExistingFile()
	PlayLog   = play.Flag("log", "Judgement log to replay").Short('l').Default("").String()
	SaveLog   = play.Flag("save", "Write the replayed judgements to a log").Short('s').Default("").String()
	Offset    = play.Flag("offset", "Autoplay hit offset, overrides the settings file").Short('o').Default("0s").Duration()

	eval      = app.Command(EvalCommand, "Print the value of a chart graph")
	EvalChart = eval.Arg("chart", "kson chart file").Required().ExistingFile()
	Graph     = eval.Flag("graph", "Graph to evaluate").Default(GraphZoom).Enum(Graphs...)
	Tick      = eval.Flag("tick", "First tick").Short('t').Default("0").Float64()
	Count     = eval.Flag("count", "Number of rows").Short('n').Default("1").Uint()
	Step      = eval.Flag("step", "Ticks between rows").Default("240").Float64()

	render       = app.Command(RenderCommand, "Apply a chart graph as gain automation to an audio file")
	RenderChart  = render.Arg("chart", "kson chart file").Required().ExistingFile()
	RenderAudio  = render.Arg("audio", "Audio file (mp3, ogg, wav)").Required().ExistingFile()
	RenderOutput = render.Flag("out", "Write a wav file instead of playing").Short('O').Default("").String()
	RenderGraph  = render.Flag("graph", "Graph driving the gain").Default(GraphLaserLeft).Enum(Graphs...)
	AudioOffset  = render.Flag("audio-offset", "Song time of the first audio sample").Default("0s").Duration()
)

const (
	GraphZoom       = "zoom"
	GraphShiftX     = "shift-x"
	GraphRotationX  = "rotation-x"
	GraphRotationZ  = "rotation-z"
	GraphSplit      = "split"
	GraphLaserLeft  = "laser-left"
	GraphLaserRight = "laser-right"
	GraphTilt       = "tilt"
	GraphScroll     = "scroll-speed"
)

var Graphs = []string{
	GraphZoom, GraphShiftX, GraphRotationX, GraphRotationZ, GraphSplit,
	GraphLaserLeft, GraphLaserRight, GraphTilt, GraphScroll,
}

// Parse reads the command line and returns the selected command.
func Parse(args []string) (string, error) {
	return app.Parse(args)
}
