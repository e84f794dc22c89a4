package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tberndt/keydash/internal/model"
	"github.com/tberndt/keydash/internal/session"
	"github.com/tberndt/keydash/internal/store"
)

const (
	tickInterval = 100 * time.Millisecond
	visibleWords = 24
)

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	resultTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	resultValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	resultLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// Model implements the Bubble Tea typing UI.
type Model struct {
	cfg      model.Config
	store    *store.Store
	sess     *session.Session
	dictPath string

	timer        timer.Model
	timerRunning bool

	width  int
	height int

	result    model.Result
	hasResult bool
	saved     bool
}

// NewModel constructs a typing TUI model.
func NewModel(cfg model.Config, st *store.Store, sess *session.Session, dictPath string) *Model {
	return &Model{
		cfg:      cfg,
		store:    st,
		sess:     sess,
		dictPath: dictPath,
		timer:    timer.NewWithInterval(sess.Clock().Duration(), tickInterval),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case timer.TickMsg:
		m.sess.Tick(time.Now())
		if m.sess.State() == session.TimeExpired {
			m.finishSession(time.Now())
		}
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd
	case timer.StartStopMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd
	case timer.TimeoutMsg:
		m.sess.Tick(time.Now())
		m.finishSession(time.Now())
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyBackspace, tea.KeyDelete:
		m.sess.Backspace()
		return m, nil
	case tea.KeyEnter:
		if m.hasResult {
			return m, m.restart()
		}
		m.sess.Submit(now)
		return m, nil
	case tea.KeySpace:
		return m, m.typeRunes([]rune{' '}, now)
	case tea.KeyRunes:
		return m, m.typeRunes(msg.Runes, now)
	default:
		return m, nil
	}
}

func (m *Model) typeRunes(runes []rune, now time.Time) tea.Cmd {
	if m.hasResult {
		return nil
	}
	var cmd tea.Cmd
	for _, r := range runes {
		m.sess.Type(r, now)
	}
	if !m.timerRunning && m.sess.Clock().Started() {
		m.timerRunning = true
		cmd = m.timer.Init()
	}
	return cmd
}

func (m *Model) restart() tea.Cmd {
	m.sess.Restart()
	m.timer = timer.NewWithInterval(m.sess.Clock().Duration(), tickInterval)
	m.timerRunning = false
	m.hasResult = false
	m.saved = false
	return nil
}

func (m *Model) finishSession(now time.Time) {
	if m.hasResult {
		return
	}
	result, err := m.sess.Result(now)
	if err != nil {
		// No keystroke ever started the clock; nothing to score.
		result = model.Result{Accuracy: 100}
	}
	m.result = result
	m.hasResult = true
	m.saveSession(now, err == nil)
}

func (m *Model) saveSession(now time.Time, scored bool) {
	if m.saved || m.store == nil || !scored {
		return
	}
	m.saved = true
	rec := m.sess.Record(m.dictPath, now)
	ctx := context.Background()
	if _, err := m.store.InsertSession(ctx, rec); err != nil {
		logErrf("failed to save session: %v\n", err)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	if m.hasResult {
		content = m.renderResult()
	} else {
		content = m.renderPrompt()
	}
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		if footer == "" {
			return content
		}
		return content + "\n" + footer
	}
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 1
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderPrompt() string {
	queue := m.sess.Queue()
	visible := queue
	if len(visible) > visibleWords {
		visible = visible[:visibleWords]
	}
	targetRunes := []rune(strings.Join(visible, " "))
	currentWordEnd := len([]rune(queue[0]))
	styledRunes := buildPromptRunes(targetRunes, m.sess.Typed(), currentWordEnd)
	if m.width == 0 {
		return renderStyledRunes(styledRunes)
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	wrapped := wrapStyledRunes(styledRunes, contentWidth)
	return lipgloss.NewStyle().Width(contentWidth).Render(wrapped)
}

func (m *Model) renderResult() string {
	lines := []string{
		resultTitleStyle.Render("Time's up"),
		"",
		fmt.Sprintf("%s %s", resultValueStyle.Render(fmt.Sprintf("%.1f", m.result.WPM)), resultLabelStyle.Render("WPM")),
		fmt.Sprintf("%s %s", resultValueStyle.Render(fmt.Sprintf("%.1f%%", m.result.Accuracy)), resultLabelStyle.Render("accuracy")),
		resultLabelStyle.Render(fmt.Sprintf("%d correct · %d incorrect · %d words",
			m.result.CorrectChars, m.result.IncorrectChars, m.sess.WordsTyped())),
		"",
		footerStyle.Render("enter restart · esc quit"),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	if m.hasResult {
		return ""
	}
	now := time.Now()
	remaining := m.sess.Clock().Remaining(now)
	segments := []string{fmt.Sprintf("%ds", int(remaining.Round(time.Second).Seconds()))}
	if result, err := m.sess.Result(now); err == nil {
		segments = append(segments, fmt.Sprintf("~%.0f WPM", result.WPM))
	}
	segments = append(segments, "esc quit")
	return footerStyle.Render(strings.Join(segments, "  "))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
