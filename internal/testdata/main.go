package testdata

import (
	"encoding/json"

	"git.lost.host/meutraa/kson/internal/game"
)

// Chart runs at 120 bpm for two 4/4 measures, then 240 bpm in 3/4. It has
// chips, holds, one fx hold, a plain left laser and a wide right laser that
// opens with a slam.
const Chart = `{
	"version": "0.8.0",
	"meta": {
		"title": "fixture",
		"artist": "nobody",
		"chart_author": "tests",
		"difficulty": 2,
		"level": 17,
		"disp_bpm": "120-240"
	},
	"beat": {
		"bpm": [[0, 120], [1920, 240]],
		"time_sig": [[0, [4, 4]], [2, [3, 4]]],
		"scroll_speed": [[0, 1]]
	},
	"note": {
		"bt": [[0, 240, [480, 240]], [960], [], []],
		"fx": [[[1440, 120]], []],
		"laser": [
			[[0, [[0, 0], [240, 1]]]],
			[[960, [[0, [1, 0]], [120, 0.5]], 2]]
		]
	},
	"camera": {
		"tilt": {
			"scale": [[0, 1.5]],
			"manual": [[1920, [[0, 0], [240, 1]]]],
			"keep": [[0, true]]
		},
		"cam": {
			"body": {
				"zoom": [[0, 0, [0.2, 0.8]], [960, 100]],
				"rotation_x": [[0, 0], [480, [1, 0]]]
			}
		}
	}
}`

func GetChart() (*game.Chart, error) {
	var chart game.Chart
	if err := json.Unmarshal([]byte(Chart), &chart); nil != err {
		return nil, err
	}
	return &chart, nil
}
