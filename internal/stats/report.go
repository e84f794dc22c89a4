package stats

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/tberndt/keydash/internal/model"
)

const (
	terminalWidthBackup = 80
	minCurveWidth       = 10
	curveLabelWidth     = 24
)

// RenderReport writes the full plain-text history report.
func RenderReport(w io.Writer, sessions []model.SessionAggregate, window int) error {
	if err := RenderSummary(w, sessions); err != nil {
		return err
	}
	if len(sessions) == 0 {
		return nil
	}
	if err := RenderHistory(w, sessions); err != nil {
		return err
	}
	return RenderCurve(w, sessions, window, terminalWidth()-curveLabelWidth)
}

// RenderSummary prints aggregate numbers for the given sessions.
func RenderSummary(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	var totalWPM, totalAcc, bestWPM float64
	for _, s := range sessions {
		wpm, acc := AggregateMetrics(s)
		totalWPM += wpm
		totalAcc += acc
		if wpm > bestWPM {
			bestWPM = wpm
		}
	}
	count := float64(len(sessions))
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Sessions: %d\n", len(sessions)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg WPM: %.2f\n", totalWPM/count); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best WPM: %.2f\n", bestWPM); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Accuracy: %.2f%%\n", totalAcc/count); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderHistory prints one row per session, newest last.
func RenderHistory(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "History"); err != nil {
		return err
	}
	headers := []string{"Date", "WPM", "Accuracy", "Words", "Correct", "Incorrect", "Duration"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		wpm, acc := AggregateMetrics(s)
		rows = append(rows, []string{
			s.EndedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%.1f", wpm),
			fmt.Sprintf("%.1f%%", acc),
			fmt.Sprintf("%d", s.WordsTyped),
			fmt.Sprintf("%d", s.Correct),
			fmt.Sprintf("%d", s.Incorrect),
			(time.Duration(s.DurationMs) * time.Millisecond).Round(time.Second).String(),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true, 6: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderCurve prints WPM and accuracy progressions as sparklines, smoothed
// with a moving average and resampled to the given width.
func RenderCurve(w io.Writer, sessions []model.SessionAggregate, window, width int) error {
	if len(sessions) == 0 {
		return nil
	}
	if width < minCurveWidth {
		width = minCurveWidth
	}
	wpms := make([]float64, len(sessions))
	accs := make([]float64, len(sessions))
	for i, s := range sessions {
		wpms[i], accs[i] = AggregateMetrics(s)
	}
	wpms = resample(MovingAverage(wpms, window), width)
	accs = resample(MovingAverage(accs, window), width)

	if _, err := fmt.Fprintln(w, "Progress"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "WPM      %s  (%.1f-%.1f)\n", Sparkline(wpms), minOf(wpms), maxOf(wpms)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Accuracy %s  (%.1f%%-%.1f%%)\n", Sparkline(accs), minOf(accs), maxOf(accs)); err != nil {
		return err
	}
	return nil
}

func resample(values []float64, width int) []float64 {
	if len(values) <= width {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, width)
	for i := 0; i < width; i++ {
		pos := float64(i) * float64(len(values)-1) / float64(width-1)
		out[i] = values[int(pos)]
	}
	return out
}

func minOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
