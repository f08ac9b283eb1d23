package score

import (
	"math"
	"testing"
	"time"

	"git.lost.host/meutraa/kson/internal/game"
	"git.lost.host/meutraa/kson/internal/graph"
	"git.lost.host/meutraa/kson/internal/testdata"
)

var result float64

func BenchmarkDistance(b *testing.B) {
	chart, err := testdata.GetChart()
	if nil != err {
		b.Fatal(err)
	}
	total := 0.0
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		total += Distance(chart, graph.Tick(n%2400), 4000)
	}

	result = total
}

func TestDistance(t *testing.T) {
	chart, err := testdata.GetChart()
	if nil != err {
		t.Fatal(err)
	}
	for i := -500; i < 500; i++ {
		y := graph.Tick((i + 500) * 3)
		expected := float64(i)
		hit := chart.TickToMs(y) + expected
		d := Distance(chart, y, hit)
		if math.Abs(d-expected) > 1e-9 {
			t.Log("    Tick:", y)
			t.Log("     Hit:", hit)
			t.Log("Distance:", d)
			t.Log("Expected:", expected)
			t.Fail()
		}
	}
}

func expectedJudgement(kind game.TickKind, d time.Duration) game.HitKind {
	if d < 0 {
		d = -d
	}
	if kind != game.TickChip {
		if d > 138*time.Millisecond {
			return game.HitMiss
		}
		return game.HitCrit
	}
	switch {
	case d > 250*time.Millisecond:
		return game.HitNone
	case d > 92*time.Millisecond:
		return game.HitMiss
	case d > 46*time.Millisecond:
		return game.HitGood
	}
	return game.HitCrit
}

func TestJudge(t *testing.T) {
	for _, kind := range []game.TickKind{game.TickChip, game.TickHold, game.TickLaser, game.TickSlam} {
		for i := -500; i < 500; i++ {
			d := time.Duration(i) * time.Millisecond
			got := DefaultWindows.Judge(kind, d)
			if expected := expectedJudgement(kind, d); got != expected {
				t.Log("    Kind:", kind)
				t.Log("   Delta:", d)
				t.Log("     Got:", got)
				t.Log("Expected:", expected)
				t.Fail()
			}
		}
	}
}
