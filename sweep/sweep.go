// Package sweep evaluates the pipeline across a parameter range and
// summarizes how the strength score responds.
package sweep

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/levtools/levcalc/pipeline"
	"github.com/levtools/levcalc/trade"
)

// Point is one evaluated leverage step.
type Point struct {
	Leverage float64
	Metrics  pipeline.Metrics
}

// Report holds the per-step results plus summary statistics over the
// aggregate strength score.
type Report struct {
	Points []Point

	MeanScore   float64
	MinScore    float64
	MaxScore    float64
	ScoreStdDev float64
}

// Leverage sweeps the leverage from from to to (inclusive) in step
// increments, recomputing the full pipeline at each step.
func Leverage(in trade.Inputs, targetRatio, from, to, step float64) (Report, error) {
	if step <= 0 {
		return Report{}, fmt.Errorf("sweep: step must be positive, got %v", step)
	}
	if to < from {
		return Report{}, fmt.Errorf("sweep: range end %v below start %v", to, from)
	}

	var r Report
	var scores []float64
	for lev := from; lev <= to+step/1e6; lev += step {
		cur := in
		cur.Leverage = lev
		m := pipeline.Compute(cur, targetRatio)
		r.Points = append(r.Points, Point{Leverage: lev, Metrics: m})
		scores = append(scores, float64(m.Strength.Score))
	}

	var err error
	if r.MeanScore, err = stats.Mean(scores); err != nil {
		return Report{}, fmt.Errorf("sweep: %w", err)
	}
	if r.MinScore, err = stats.Min(scores); err != nil {
		return Report{}, fmt.Errorf("sweep: %w", err)
	}
	if r.MaxScore, err = stats.Max(scores); err != nil {
		return Report{}, fmt.Errorf("sweep: %w", err)
	}
	if r.ScoreStdDev, err = stats.StandardDeviation(scores); err != nil {
		return Report{}, fmt.Errorf("sweep: %w", err)
	}
	return r, nil
}
