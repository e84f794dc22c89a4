// Package stats contains score calculations and reporting.
package stats

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/tberndt/keydash/internal/model"
)

// ErrInvalidDuration reports a non-positive elapsed time.
var ErrInvalidDuration = errors.New("elapsed time must be positive")

const sparkChars = " .:-=+*#%@"

// Compute builds the score snapshot for a session. WPM follows the standard
// convention of five characters per word; accuracy is a percentage and is
// 100 when nothing was typed.
func Compute(correct, incorrect int, elapsed time.Duration) (model.Result, error) {
	if elapsed <= 0 {
		return model.Result{}, ErrInvalidDuration
	}
	minutes := elapsed.Minutes()
	accuracy := 100.0
	if total := correct + incorrect; total > 0 {
		accuracy = float64(correct) / float64(total) * 100
	}
	return model.Result{
		ElapsedSeconds: elapsed.Seconds(),
		CorrectChars:   correct,
		IncorrectChars: incorrect,
		WPM:            (float64(correct) / 5.0) / minutes,
		Accuracy:       accuracy,
	}, nil
}

// AggregateMetrics computes WPM and accuracy for a stored session row.
func AggregateMetrics(agg model.SessionAggregate) (wpm, accuracy float64) {
	if agg.DurationMs <= 0 {
		return 0, 0
	}
	result, err := Compute(agg.Correct, agg.Incorrect, time.Duration(agg.DurationMs)*time.Millisecond)
	if err != nil {
		return 0, 0
	}
	return result.WPM, result.Accuracy
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
