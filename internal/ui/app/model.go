package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	practicedto "tempo/internal/modules/practice/dto"
	apperrors "tempo/internal/platform/errors"
	"tempo/internal/ui/theme"
	dashboardview "tempo/internal/ui/views/dashboard"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type practicePort interface {
	View(ctx context.Context, rangeLabel string) (practicedto.SeriesView, error)
	Refresh(ctx context.Context) (practicedto.RefreshOutput, error)
}

// ─── async messages ───────────────────────────────────────────────────────────

type refreshedMsg struct {
	out practicedto.RefreshOutput
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Refresh key.Binding
	Range   key.Binding
	Hover   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh calendar")),
		Range:   key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "cycle range")),
		Hover:   key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "inspect day")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Range, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Refresh, k.Range, k.Hover},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns the refresh busy flag and the
// status bar; all series state lives in the dashboard sub-view, which is
// replaced wholesale when a new snapshot arrives.
type Model struct {
	practice practicePort
	dash     dashboardview.Model

	keys       keyMap
	help       help.Model
	showHelp   bool
	refreshing bool
	status     string
	width      int
	height     int
}

func NewModel(practice practicePort) Model {
	return Model{
		practice: practice,
		dash:     dashboardview.New(practice),
		keys:     defaultKeys(),
		help:     help.New(),
		status:   "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return m.dash.Init()
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		var cmd tea.Cmd
		m.dash, cmd = m.dash.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height - 2})
		return m, cmd

	case refreshedMsg:
		// The busy flag clears on every completion, success or failure.
		m.refreshing = false
		if msg.err != nil {
			m.status = refreshNotice(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("merged %d new session(s), %d duplicate(s) skipped", msg.out.Added, msg.out.Duplicates)
		return m, m.dash.Reload()

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "?":
			m.showHelp = true
			return m, nil
		case "r":
			if m.refreshing {
				m.status = "refresh already in progress"
				return m, nil
			}
			m.refreshing = true
			m.status = "fetching calendar…"
			return m, m.refreshCmd()
		}
	}

	var cmd tea.Cmd
	m.dash, cmd = m.dash.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	if m.showHelp {
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	} else {
		content = m.dash.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.refreshing {
		left = theme.Hot.Render("● syncing") + "  " + left
	}
	right := theme.Muted.Render("r:refresh  [/]:range  ?:help  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.practice.Refresh(context.Background())
		return refreshedMsg{out: out, err: err}
	}
}

func refreshNotice(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrCalendarNotFound):
		return "refresh failed: " + err.Error() + " (check calendar name in config.yaml)"
	case errors.Is(err, apperrors.ErrNotAuthorized):
		return "refresh failed: not authorized (run `tempo calendar login`)"
	default:
		return "refresh failed: " + err.Error()
	}
}
