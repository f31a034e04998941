package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/izayahhudnut/detailerpro/internal/calendar"
	"github.com/izayahhudnut/detailerpro/internal/cli/formatter"
	"github.com/izayahhudnut/detailerpro/internal/contract"
)

type scheduleKeyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Today   key.Binding
	Day     key.Binding
	Week    key.Binding
	Month   key.Binding
	Year    key.Binding
	Refresh key.Binding
	Up      key.Binding
	Down    key.Binding
	Quit    key.Binding
}

func defaultScheduleKeyMap() scheduleKeyMap {
	return scheduleKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l", "next"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Day: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "day"),
		),
		Week: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "week"),
		),
		Month: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "month"),
		),
		Year: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "year"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type snapshotLoadedMsg struct {
	snap *contract.ScheduleSnapshot
	err  error
}

// scheduleModel is the interactive calendar. It loads the job snapshot once
// (and again on explicit refresh); every navigation key is a pure layout
// recompute over that snapshot, never a database round trip.
type scheduleModel struct {
	app      *App
	state    calendar.ViewState
	keys     scheduleKeyMap
	viewport viewport.Model
	snapshot *contract.ScheduleSnapshot
	err      error
	loading  bool
	ready    bool
	width    int
}

func newScheduleModel(app *App, anchor time.Time, granularity calendar.Granularity) *scheduleModel {
	return &scheduleModel{
		app:     app,
		state:   calendar.ViewState{Anchor: anchor, Granularity: granularity},
		keys:    defaultScheduleKeyMap(),
		loading: true,
	}
}

func (m *scheduleModel) fetchSnapshot() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.app.Schedule.GetSnapshot(context.Background())
		return snapshotLoadedMsg{snap: snap, err: err}
	}
}

func (m *scheduleModel) Init() tea.Cmd {
	return m.fetchSnapshot()
}

func (m *scheduleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 3
		footerHeight := 2
		m.width = msg.Width
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.refreshContent()
		return m, nil

	case snapshotLoadedMsg:
		m.loading = false
		m.snapshot = msg.snap
		m.err = msg.err
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.state.Previous()
			m.refreshContent()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.state.Next()
			m.refreshContent()
			return m, nil
		case key.Matches(msg, m.keys.Today):
			m.state.Today(time.Now())
			m.refreshContent()
			return m, nil
		case key.Matches(msg, m.keys.Day):
			return m.setGranularity(calendar.GranularityDay)
		case key.Matches(msg, m.keys.Week):
			return m.setGranularity(calendar.GranularityWeek)
		case key.Matches(msg, m.keys.Month):
			return m.setGranularity(calendar.GranularityMonth)
		case key.Matches(msg, m.keys.Year):
			return m.setGranularity(calendar.GranularityYear)
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.fetchSnapshot()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *scheduleModel) setGranularity(g calendar.Granularity) (tea.Model, tea.Cmd) {
	if m.state.Granularity == g {
		return m, nil
	}
	m.state.SetGranularity(g)
	m.refreshContent()
	return m, nil
}

func (m *scheduleModel) refreshContent() {
	if !m.ready {
		return
	}
	switch {
	case m.err != nil:
		m.viewport.SetContent(formatter.StyleRed.Render("Error: " + m.err.Error()))
	case m.snapshot == nil:
		m.viewport.SetContent(formatter.Dim("Loading..."))
	default:
		resp := m.app.Schedule.Layout(m.snapshot, m.state)
		m.viewport.SetContent(formatter.FormatSchedule(resp, m.state.Anchor))
	}
}

func (m *scheduleModel) headerView() string {
	title := formatter.Header(fmt.Sprintf("Schedule · %s", m.rangeLabel()))
	if m.loading {
		title += " " + formatter.Dim("(loading)")
	}
	return title
}

func (m *scheduleModel) rangeLabel() string {
	a := m.state.Anchor
	switch m.state.Granularity {
	case calendar.GranularityDay:
		return a.Format("Monday, Jan 2, 2006")
	case calendar.GranularityWeek:
		start := calendar.WeekStart(a)
		end := start.AddDate(0, 0, 6)
		return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
	case calendar.GranularityMonth:
		return a.Format("January 2006")
	case calendar.GranularityYear:
		return a.Format("2006")
	}
	return a.Format("Jan 2, 2006")
}

func (m *scheduleModel) footerView() string {
	help := []string{
		"h/l prev/next", "t today", "d/w/m/y view", "j/k scroll", "r refresh", "q quit",
	}
	return formatter.Dim(strings.Join(help, " · "))
}

func (m *scheduleModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		"",
		m.viewport.View(),
		"",
		m.footerView(),
	)
}
