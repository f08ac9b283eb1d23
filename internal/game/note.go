package game

import (
	"encoding/json"
	"fmt"

	"git.lost.host/meutraa/kson/internal/graph"
)

// Interval is a button note. A zero length is a chip, anything longer is a
// hold.
type Interval struct {
	Y graph.Tick
	L graph.Tick
}

func (i Interval) IsChip() bool {
	return i.L == 0
}

func (i Interval) End() graph.Tick {
	return i.Y + i.L
}

// Chips are stored as a bare tick, holds as [y, l].
func (i *Interval) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &i.Y); nil == err {
		i.L = 0
		return nil
	}
	var pair [2]graph.Tick
	if err := json.Unmarshal(data, &pair); nil != err {
		return fmt.Errorf("unable to decode interval %s: %w", data, err)
	}
	i.Y, i.L = pair[0], pair[1]
	return nil
}

func (i Interval) MarshalJSON() ([]byte, error) {
	if i.IsChip() {
		return json.Marshal(i.Y)
	}
	return json.Marshal([2]graph.Tick{i.Y, i.L})
}
