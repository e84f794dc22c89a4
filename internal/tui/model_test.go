package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/tberndt/keydash/internal/model"
	"github.com/tberndt/keydash/internal/session"
)

type seqSource struct {
	words []string
	pos   int
}

func (s *seqSource) Next() string {
	w := s.words[s.pos%len(s.words)]
	s.pos++
	return w
}

func (s *seqSource) Fill(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, s.Next())
	}
	return out
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	clock, err := session.NewClock(30 * time.Second)
	if err != nil {
		t.Fatalf("new clock: %v", err)
	}
	sess := session.New(&seqSource{words: []string{"one", "two", "three"}}, clock, 3)
	return NewModel(model.Config{DurationSeconds: 30}, nil, sess, "dict.txt")
}

func TestRenderFooterBeforeStart(t *testing.T) {
	m := newTestModel(t)
	out := m.renderFooter()
	if !strings.Contains(out, "30s") {
		t.Fatalf("expected full countdown in footer: %q", out)
	}
	if !strings.Contains(out, "esc quit") {
		t.Fatalf("expected quit hint in footer: %q", out)
	}
}

func TestRenderResultShowsScore(t *testing.T) {
	m := newTestModel(t)
	m.result = model.Result{
		ElapsedSeconds: 30,
		CorrectChars:   120,
		IncorrectChars: 4,
		WPM:            48.0,
		Accuracy:       96.8,
	}
	m.hasResult = true
	out := m.renderResult()
	for _, needle := range []string{"48.0", "WPM", "96.8%", "accuracy", "120 correct", "4 incorrect"} {
		if !strings.Contains(out, needle) {
			t.Fatalf("result view missing %q:\n%s", needle, out)
		}
	}
}

func TestRenderPromptShowsQueue(t *testing.T) {
	m := newTestModel(t)
	out := m.renderPrompt()
	for _, needle := range []string{"o", "n", "e"} {
		if !strings.Contains(out, needle) {
			t.Fatalf("prompt missing %q:\n%s", needle, out)
		}
	}
}
