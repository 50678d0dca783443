package dashboard

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tempo/internal/modules/practice/domain"
	practicedto "tempo/internal/modules/practice/dto"
	"tempo/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type PracticePort interface {
	View(ctx context.Context, rangeLabel string) (practicedto.SeriesView, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type ViewLoadedMsg struct {
	View practicedto.SeriesView
	Err  error
}

// ─── model ───────────────────────────────────────────────────────────────────

const baselineDataSet = "baseline"

// Model renders the day-series as a ticker-style chart: a header with the
// current (or hovered) value and trend delta, the chart with a reference
// line at the window's first value, and the range selector bar. Hover state
// is transient; it never touches the underlying series.
type Model struct {
	port PracticePort

	view  practicedto.SeriesView
	rng   domain.Range
	hover int // index into view.Entries, -1 = current-day display

	chart     timeserieslinechart.Model
	haveChart bool
	spinner   spinner.Model
	loading   bool
	err       error

	width  int
	height int
}

func New(port PracticePort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		rng:     domain.RangeAll,
		hover:   -1,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// Reload refetches the current range, e.g. after a calendar refresh merged
// new sessions.
func (m Model) Reload() tea.Cmd {
	return m.loadCmd()
}

func (m Model) RangeLabel() string {
	return m.rng.Label()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildChart()

	case ViewLoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.view = msg.View
			m.hover = -1
			m.rebuildChart()
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "]":
			m.rng = m.rng.Next()
			m.loading = true
			return m, tea.Batch(m.loadCmd(), m.spinner.Tick)
		case "[":
			m.rng = m.rng.Prev()
			m.loading = true
			return m, tea.Batch(m.loadCmd(), m.spinner.Tick)
		case "1", "2", "3", "4", "5":
			ranges := domain.Ranges()
			if idx := int(msg.String()[0] - '1'); idx < len(ranges) {
				m.rng = ranges[idx]
			}
			m.loading = true
			return m, tea.Batch(m.loadCmd(), m.spinner.Tick)
		case "left":
			if len(m.view.Entries) == 0 {
				break
			}
			if m.hover < 0 {
				m.hover = len(m.view.Entries) - 1
			} else if m.hover > 0 {
				m.hover--
			}
		case "right":
			switch {
			case m.hover < 0:
			case m.hover < len(m.view.Entries)-1:
				m.hover++
			default:
				m.hover = -1
			}
		case "esc":
			m.hover = -1
		}
	}

	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading practice data…")
	}
	if m.err != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Down.Render("dashboard: "+m.err.Error()))
	}
	if len(m.view.Entries) == 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render("No sessions recorded yet"))
	}

	var chart string
	if m.haveChart {
		chart = m.chart.View()
	} else {
		chart = theme.Muted.Render("window too small for chart")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		chart,
		m.renderRangeBar(),
	)
}

func (m Model) renderHeader() string {
	entries := m.view.Entries
	displayed := entries[len(entries)-1]
	dayLabel := "today"
	if m.hover >= 0 {
		displayed = entries[m.hover]
		dayLabel = displayed.Display
	}

	value := theme.Title.Render(domain.FormatSeconds(displayed.AvgSec) + "/day")
	total := theme.Muted.Render("day total ") + domain.FormatSeconds(float64(displayed.TotalSec))

	arrow, style := "▲", theme.Up
	if !m.view.Positive {
		arrow, style = "▼", theme.Down
	}
	trend := style.Render(fmt.Sprintf("%s %s", arrow, domain.FormatSeconds(math.Abs(m.view.Delta))))

	line1 := theme.Hot.Render("tempo") + "  " + value + "  " + trend
	line2 := theme.Muted.Render(dayLabel) + "  " + total + "  " +
		theme.Muted.Render(fmt.Sprintf("ref %s", domain.FormatSeconds(m.view.First)))
	return line1 + "\n" + line2 + "\n"
}

func (m Model) renderRangeBar() string {
	ranges := domain.Ranges()
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		if r == m.rng {
			parts[i] = theme.Hot.Render("[" + r.Label() + "]")
		} else {
			parts[i] = theme.Muted.Render(" " + r.Label() + " ")
		}
	}
	hint := theme.Muted.Render("  ←/→: inspect day  esc: today  [/]: range")
	return "\n" + strings.Join(parts, " ") + hint
}

// ─── chart ───────────────────────────────────────────────────────────────────

func (m *Model) rebuildChart() {
	m.haveChart = false
	entries := m.view.Entries
	chartW, chartH := m.width, m.height-5
	if len(entries) == 0 || chartW < 16 || chartH < 4 {
		return
	}

	lineStyle := theme.Up
	if !m.view.Positive {
		lineStyle = theme.Down
	}

	c := timeserieslinechart.New(chartW, chartH)
	c.AxisStyle = theme.Muted
	c.LabelStyle = theme.Muted
	c.SetStyle(lineStyle)
	c.SetDataSetStyle(baselineDataSet, theme.Muted)

	minT := entries[0].Date
	maxT := entries[len(entries)-1].Date
	if !maxT.After(minT) {
		maxT = minT.Add(24 * time.Hour)
	}
	c.SetTimeRange(minT, maxT)
	c.SetViewTimeRange(minT, maxT)

	minY, maxY := yBounds(entries, m.view.First)
	c.SetYRange(minY, maxY)
	c.SetViewYRange(minY, maxY)

	for _, e := range entries {
		c.Push(timeserieslinechart.TimePoint{Time: e.Date, Value: e.AvgSec})
	}
	// Reference line: flat baseline at the window's first value.
	c.PushDataSet(baselineDataSet, timeserieslinechart.TimePoint{Time: minT, Value: m.view.First})
	c.PushDataSet(baselineDataSet, timeserieslinechart.TimePoint{Time: maxT, Value: m.view.First})

	c.DrawBrailleAll()
	m.chart = c
	m.haveChart = true
}

func yBounds(entries []practicedto.DayEntryOutput, baseline float64) (float64, float64) {
	minY, maxY := baseline, baseline
	for _, e := range entries {
		if e.AvgSec < minY {
			minY = e.AvgSec
		}
		if e.AvgSec > maxY {
			maxY = e.AvgSec
		}
	}
	if maxY == minY {
		maxY = minY + 1
	}
	pad := (maxY - minY) * 0.1
	minY -= pad
	if minY < 0 {
		minY = 0
	}
	return minY, maxY + pad
}

func (m Model) loadCmd() tea.Cmd {
	label := m.rng.Label()
	return func() tea.Msg {
		view, err := m.port.View(context.Background(), label)
		return ViewLoadedMsg{View: view, Err: err}
	}
}
