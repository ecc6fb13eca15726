// Package bench_test verifies the stopwatch helpers: measured durations,
// repetition counting in Best, and the budget-fitting heuristic.
package bench_test

import (
	"errors"
	"testing"
	"time"

	"github.com/lavrin/pathfind/bench"
)

func TestOnce_MeasuresAtLeastTheSleep(t *testing.T) {
	const nap = 5 * time.Millisecond
	elapsed := bench.Once(func() { time.Sleep(nap) })
	if elapsed < nap {
		t.Errorf("Once = %v; want at least %v", elapsed, nap)
	}
}

func TestBest_RunsExactlyNTimes(t *testing.T) {
	var calls int
	best, err := bench.Best(7, func() { calls++ })
	if err != nil {
		t.Fatal(err)
	}
	if calls != 7 {
		t.Errorf("f was called %d times; want 7", calls)
	}
	if best < 0 {
		t.Errorf("Best = %v; want non-negative", best)
	}
}

func TestBest_ReturnsTheMinimum(t *testing.T) {
	// The first run sleeps, later runs do not: the minimum must reflect the
	// cheap runs, not the expensive first one.
	var first = true
	best, err := bench.Best(3, func() {
		if first {
			first = false
			time.Sleep(10 * time.Millisecond)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if best >= 10*time.Millisecond {
		t.Errorf("Best = %v; want well under the 10ms outlier", best)
	}
}

func TestBest_NoIterations(t *testing.T) {
	if _, err := bench.Best(0, func() {}); !errors.Is(err, bench.ErrNoIterations) {
		t.Fatalf("Expected ErrNoIterations for 0, got %v", err)
	}
	if _, err := bench.Best(-3, func() {}); !errors.Is(err, bench.ErrNoIterations) {
		t.Fatalf("Expected ErrNoIterations for -3, got %v", err)
	}
}

func TestFitIterations(t *testing.T) {
	cases := []struct {
		name   string
		sample time.Duration
		budget time.Duration
		want   int
	}{
		// 1s/1000 = 1ms is no longer strictly above the 1ms sample, so the
		// growth stops at 1000 and halving yields 500.
		{"millisecond into second", time.Millisecond, time.Second, 500},
		// One order of magnitude: stops at 10, halved to 5.
		{"tenth of budget", 100 * time.Millisecond, time.Second, 5},
		// A sample already at (or beyond) the budget fits zero times.
		{"sample equals budget", time.Second, time.Second, 0},
		{"sample exceeds budget", 2 * time.Second, time.Second, 0},
		// Degenerate samples never loop forever.
		{"zero sample", 0, time.Second, 0},
		{"negative sample", -time.Millisecond, time.Second, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := bench.FitIterations(tc.sample, tc.budget); got != tc.want {
				t.Errorf("FitIterations(%v, %v) = %d; want %d", tc.sample, tc.budget, got, tc.want)
			}
		})
	}
}
