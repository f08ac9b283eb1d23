package game

type Meta struct {
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	ChartAuthor string `json:"chart_author"`
	Difficulty  uint8  `json:"difficulty"`
	Level       uint8  `json:"level"`
	DispBPM     string `json:"disp_bpm"`
}

var DifficultyNames = [...]string{"light", "challenge", "extended", "infinite"}

// DifficultyName returns the display name of the difficulty slot.
func (m Meta) DifficultyName() string {
	if int(m.Difficulty) < len(DifficultyNames) {
		return DifficultyNames[m.Difficulty]
	}
	return "unknown"
}
