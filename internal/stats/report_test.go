package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/tberndt/keydash/internal/model"
)

func testSessions() []model.SessionAggregate {
	base := time.Unix(0, 0)
	out := make([]model.SessionAggregate, 0, 3)
	for i := 0; i < 3; i++ {
		out = append(out, model.SessionAggregate{
			SessionID:  int64(i + 1),
			EndedAt:    base.Add(time.Duration(i) * time.Minute),
			Correct:    100 + 10*i,
			Incorrect:  5,
			DurationMs: 30_000,
			WordsTyped: 20 + i,
		})
	}
	return out
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, testSessions()); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	out := buf.String()
	for _, needle := range []string{"Summary", "Sessions: 3", "Avg WPM:", "Best WPM:", "Avg Accuracy:"} {
		if !strings.Contains(out, needle) {
			t.Fatalf("summary missing %q:\n%s", needle, out)
		}
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, nil); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	if !strings.Contains(buf.String(), "No sessions found.") {
		t.Fatalf("expected empty notice, got %q", buf.String())
	}
}

func TestRenderHistory(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHistory(&buf, testSessions()); err != nil {
		t.Fatalf("render history: %v", err)
	}
	out := buf.String()
	for _, needle := range []string{"History", "Date", "WPM", "Accuracy", "Words", "30s"} {
		if !strings.Contains(out, needle) {
			t.Fatalf("history missing %q:\n%s", needle, out)
		}
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Title + header + three rows.
	if len(lines) < 5 {
		t.Fatalf("expected at least 5 lines, got %d:\n%s", len(lines), out)
	}
}

func TestRenderCurve(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderCurve(&buf, testSessions(), 2, 40); err != nil {
		t.Fatalf("render curve: %v", err)
	}
	out := buf.String()
	for _, needle := range []string{"Progress", "WPM", "Accuracy"} {
		if !strings.Contains(out, needle) {
			t.Fatalf("curve missing %q:\n%s", needle, out)
		}
	}
}

func TestResampleDownsamples(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i)
	}
	out := resample(values, 10)
	if len(out) != 10 {
		t.Fatalf("expected 10 samples, got %d", len(out))
	}
	if out[0] != 0 || out[len(out)-1] != 99 {
		t.Fatalf("resample should keep the endpoints, got %v", out)
	}
}

func TestFormatTableAlignment(t *testing.T) {
	lines := formatTable(
		[]string{"Name", "Value"},
		[][]string{{"a", "1"}, {"longer", "22"}},
		map[int]bool{1: true},
	)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "a      ") {
		t.Fatalf("expected left-aligned padded first column: %q", lines[1])
	}
	if !strings.HasSuffix(lines[1], "    1") {
		t.Fatalf("expected right-aligned second column: %q", lines[1])
	}
}

func TestFormatTablePadsByDisplayWidth(t *testing.T) {
	lines := formatTable(
		[]string{"Char", "N"},
		[][]string{{"字", "1"}, {"x", "22"}},
		map[int]bool{1: true},
	)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	// "字" is two cells wide, so it gets two pad spaces to fill the
	// four-cell column, then the separator before the right-aligned "1".
	if !strings.Contains(lines[1], "字    1") {
		t.Fatalf("expected wide rune padded to display width: %q", lines[1])
	}
	if !strings.Contains(lines[2], "x    22") {
		t.Fatalf("expected narrow rune padded to display width: %q", lines[2])
	}
}
