package main

import (
	"testing"

	"git.lost.host/meutraa/kson/internal/config"
	"git.lost.host/meutraa/kson/internal/render"
	"git.lost.host/meutraa/kson/internal/score"
	"git.lost.host/meutraa/kson/internal/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	rows   []render.CurveRow
	result *score.Result
}

func (r *recorder) Report(res score.Result) error {
	r.result = &res
	return nil
}

func (r *recorder) Curve(rows []render.CurveRow) error {
	r.rows = rows
	return nil
}

func TestPartial(t *testing.T) {
	chart, err := testdata.GetChart()
	require.NoError(t, err)

	for _, name := range config.Graphs {
		g, err := partial(chart, name)
		require.NoError(t, err, name)
		require.NotNil(t, g, name)
	}

	_, err = partial(chart, "volume")
	assert.Error(t, err)

	zoom, _ := partial(chart, config.GraphZoom)
	v, ok := zoom.ValueAt(480)
	assert.True(t, ok)
	assert.Greater(t, v, 50.0)

	left, _ := partial(chart, config.GraphLaserLeft)
	v, ok = left.ValueAt(120)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, v, 1e-9)
	_, ok = left.ValueAt(600)
	assert.False(t, ok)
}

func TestEval(t *testing.T) {
	chart, err := testdata.GetChart()
	require.NoError(t, err)

	*config.Graph = config.GraphLaserRight
	*config.Tick = 960
	*config.Step = 60
	*config.Count = 4

	r := &recorder{}
	require.NoError(t, eval(chart, r))
	require.Len(t, r.rows, 4)
	assert.True(t, r.rows[0].Active)
	assert.Equal(t, uint32(2), r.rows[0].Wide)
	assert.Equal(t, 1080.0, r.rows[2].Tick)
	assert.False(t, r.rows[3].Active)
}

func TestPlayAutoplay(t *testing.T) {
	chart, err := testdata.GetChart()
	require.NoError(t, err)

	*config.PlayLog, *config.SaveLog = "", ""
	settings := config.DefaultSettings()

	r := &recorder{}
	require.NoError(t, play(chart, &settings, r))
	require.NotNil(t, r.result)
	assert.True(t, r.result.Cleared)
	assert.True(t, r.result.Hits.Perfect())
}
