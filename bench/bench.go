// Package bench provides tiny stopwatch helpers for measuring how long a
// function takes: a single measurement, the best of N repeated measurements,
// and a heuristic for fitting a repetition count into a time budget.
//
// These helpers are deliberately simpler than the testing package's
// Benchmark machinery: they measure an arbitrary closure inline, without a
// test harness, which suits demos and quick comparisons.
//
// Errors:
//
//	ErrNoIterations - Best called with a non-positive iteration count.
package bench

import (
	"errors"
	"time"
)

// ErrNoIterations indicates Best was asked for zero or fewer measurements,
// leaving no minimum to return.
var ErrNoIterations = errors.New("bench: iterations must be positive")

// Once measures a single execution of f and returns the elapsed wall time.
func Once(f func()) time.Duration {
	started := time.Now()
	f()

	return time.Since(started)
}

// Best measures f iterations times and returns the lowest elapsed time,
// thereby minimizing the influence of OS scheduling noise on the result.
// Returns ErrNoIterations if iterations < 1.
func Best(iterations int, f func()) (time.Duration, error) {
	if iterations < 1 {
		return 0, ErrNoIterations
	}

	best := Once(f)
	for i := 1; i < iterations; i++ {
		if elapsed := Once(f); elapsed < best {
			best = elapsed
		}
	}

	return best, nil
}

// FitIterations calculates how many Once measurements of a function that
// takes roughly sample can be executed within budget. The count grows in
// powers of ten while a single share of the budget still exceeds sample,
// then is halved: in practice a measured run takes about twice the isolated
// sample, and the halving keeps the total near the budget.
//
// Returns 0 when sample is non-positive or already exceeds the budget.
func FitIterations(sample, budget time.Duration) int {
	if sample <= 0 {
		return 0
	}

	div := 1
	for budget/time.Duration(div) > sample {
		div *= 10
	}

	return div / 2
}
