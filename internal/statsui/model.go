// Package statsui provides the Bubble Tea history interface.
package statsui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tberndt/keydash/internal/model"
	"github.com/tberndt/keydash/internal/stats"
	"github.com/tberndt/keydash/internal/store"
)

const (
	tabOverview = iota
	tabHistory
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// Model implements the Bubble Tea history UI.
type Model struct {
	store *store.Store
	cfg   model.StatsConfig

	sessions []model.SessionAggregate
	errMsg   string

	tabs      []string
	activeTab int
	history   table.Model
	overview  viewport.Model

	width  int
	height int
}

// NewModel constructs a history UI model.
func NewModel(st *store.Store, cfg model.StatsConfig) *Model {
	m := &Model{
		store: st,
		cfg:   cfg,
		tabs:  []string{"Overview", "History"},
	}
	m.history = table.New(
		table.WithColumns(historyColumns()),
		table.WithFocused(true),
	)
	m.overview = viewport.New(0, 0)
	m.refresh()
	return m
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
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l", "tab":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "=":
			m.cfg.Window = nextWindow(m.cfg.Window)
			m.refresh()
			return m, nil
		case "-":
			m.cfg.Window = prevWindow(m.cfg.Window)
			m.refresh()
			return m, nil
		case "g", "home":
			if m.activeTab == tabHistory {
				m.history.GotoTop()
			} else {
				m.overview.GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabHistory {
				m.history.GotoBottom()
			} else {
				m.overview.GotoBottom()
			}
			return m, nil
		default:
			var cmd tea.Cmd
			if m.activeTab == tabHistory {
				m.history, cmd = m.history.Update(msg)
			} else {
				m.overview, cmd = m.overview.Update(msg)
			}
			return m, cmd
		}
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderNav())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	if m.activeTab == tabHistory {
		b.WriteString(m.history.View())
	} else {
		b.WriteString(m.overview.View())
	}
	b.WriteString("\n")
	b.WriteString(headerStyle.Render("←/→ tabs · =/- smoothing · q quit"))
	return b.String()
}

func (m *Model) moveTab(delta int) {
	m.activeTab = (m.activeTab + delta + len(m.tabs)) % len(m.tabs)
}

func (m *Model) renderNav() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (m *Model) refresh() {
	sessions, err := m.store.ListSessions(context.Background(), m.cfg)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load sessions: %v", err)
		return
	}
	m.errMsg = ""
	m.sessions = sessions
	m.history.SetRows(historyRows(sessions))
	m.overview.SetContent(m.renderOverview())
}

func (m *Model) updateLayout() {
	contentHeight := m.height - 5
	if contentHeight < 3 {
		contentHeight = 3
	}
	m.history.SetHeight(contentHeight)
	m.overview.Width = m.width
	m.overview.Height = contentHeight
	m.overview.SetContent(m.renderOverview())
}

func (m *Model) renderOverview() string {
	if len(m.sessions) == 0 {
		return "No sessions yet. Run keydash to record one."
	}
	var totalWPM, totalAcc, bestWPM float64
	for _, s := range m.sessions {
		wpm, acc := stats.AggregateMetrics(s)
		totalWPM += wpm
		totalAcc += acc
		if wpm > bestWPM {
			bestWPM = wpm
		}
	}
	count := float64(len(m.sessions))
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		renderCard("Sessions", fmt.Sprintf("%d", len(m.sessions))),
		renderCard("Avg WPM", fmt.Sprintf("%.1f", totalWPM/count)),
		renderCard("Best WPM", fmt.Sprintf("%.1f", bestWPM)),
		renderCard("Avg Accuracy", fmt.Sprintf("%.1f%%", totalAcc/count)),
	)

	curveWidth := m.width - 12
	if curveWidth < 10 {
		curveWidth = 40
	}
	var curves strings.Builder
	if err := stats.RenderCurve(&curves, m.sessions, m.cfg.Window, curveWidth); err != nil {
		curves.Reset()
		curves.WriteString(fmt.Sprintf("failed to render curves: %v", err))
	}
	return cards + "\n\n" + curves.String()
}

func renderCard(title, value string) string {
	return cardStyle.Render(cardTitleStyle.Render(title) + "\n" + cardValueStyle.Render(value))
}

func historyColumns() []table.Column {
	return []table.Column{
		{Title: "Date", Width: 16},
		{Title: "WPM", Width: 7},
		{Title: "Accuracy", Width: 9},
		{Title: "Words", Width: 6},
		{Title: "Correct", Width: 8},
		{Title: "Incorrect", Width: 9},
		{Title: "Duration", Width: 9},
	}
}

func historyRows(sessions []model.SessionAggregate) []table.Row {
	rows := make([]table.Row, 0, len(sessions))
	// Newest first in the table.
	for i := len(sessions) - 1; i >= 0; i-- {
		s := sessions[i]
		wpm, acc := stats.AggregateMetrics(s)
		rows = append(rows, table.Row{
			s.EndedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%.1f", wpm),
			fmt.Sprintf("%.1f%%", acc),
			fmt.Sprintf("%d", s.WordsTyped),
			fmt.Sprintf("%d", s.Correct),
			fmt.Sprintf("%d", s.Incorrect),
			(time.Duration(s.DurationMs) * time.Millisecond).Round(time.Second).String(),
		})
	}
	return rows
}

func nextWindow(window int) int {
	switch {
	case window < 5:
		return 5
	case window < 10:
		return 10
	case window < 20:
		return 20
	default:
		return 50
	}
}

func prevWindow(window int) int {
	switch {
	case window > 20:
		return 20
	case window > 10:
		return 10
	case window > 5:
		return 5
	default:
		return 1
	}
}
