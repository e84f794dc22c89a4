package stats

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestComputeWPM(t *testing.T) {
	result, err := Compute(14, 0, 12*time.Second)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if math.Abs(result.WPM-14.0) > 1e-9 {
		t.Fatalf("expected 14.0 WPM, got %f", result.WPM)
	}
	if math.Abs(result.ElapsedSeconds-12.0) > 1e-9 {
		t.Fatalf("expected 12s elapsed, got %f", result.ElapsedSeconds)
	}
}

func TestComputeAccuracy(t *testing.T) {
	result, err := Compute(30, 10, time.Minute)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if math.Abs(result.Accuracy-75.0) > 1e-9 {
		t.Fatalf("expected 75%% accuracy, got %f", result.Accuracy)
	}
}

func TestComputeAllCorrectIsFullAccuracy(t *testing.T) {
	result, err := Compute(10, 0, time.Minute)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if result.Accuracy != 100.0 {
		t.Fatalf("expected 100%% accuracy, got %f", result.Accuracy)
	}
}

func TestComputeNothingTypedIsFullAccuracy(t *testing.T) {
	result, err := Compute(0, 0, time.Minute)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if result.Accuracy != 100.0 {
		t.Fatalf("expected 100%% accuracy for empty input, got %f", result.Accuracy)
	}
	if result.WPM != 0 {
		t.Fatalf("expected 0 WPM for empty input, got %f", result.WPM)
	}
}

func TestComputeRejectsNonPositiveElapsed(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		if _, err := Compute(10, 2, d); !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("elapsed %v: expected ErrInvalidDuration, got %v", d, err)
		}
	}
}

func TestMovingAverage(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	out := MovingAverage(values, 2)
	want := []float64{1, 1.5, 2.5, 3.5, 4.5}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-9 {
			t.Fatalf("index %d: expected %f, got %f", i, want[i], out[i])
		}
	}
}

func TestMovingAverageSmallWindowCopies(t *testing.T) {
	values := []float64{3, 1, 2}
	out := MovingAverage(values, 1)
	for i := range values {
		if out[i] != values[i] {
			t.Fatalf("window 1 should copy values, index %d differs", i)
		}
	}
}

func TestSparklineFlatSeries(t *testing.T) {
	out := Sparkline([]float64{2, 2, 2})
	if len(out) != 3 {
		t.Fatalf("expected 3 chars, got %d", len(out))
	}
	if out[0] != out[1] || out[1] != out[2] {
		t.Fatalf("flat series should render uniformly: %q", out)
	}
}

func TestSparklineRange(t *testing.T) {
	out := Sparkline([]float64{0, 5, 10})
	if len(out) != 3 {
		t.Fatalf("expected 3 chars, got %d", len(out))
	}
	if out[0] != ' ' || out[2] != '@' {
		t.Fatalf("expected min/max glyphs at the ends: %q", out)
	}
}
