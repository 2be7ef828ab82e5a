package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/forgebuild/xcfs/internal/project"
)

//nolint:gochecknoglobals
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

type copyProgressMsg struct {
	data    project.Progress
	waiting bool
}

// teaModel is a single-progress-bar rendering of a [project.CopyFilesBuildPhase]'s
// run, paired with a scrolling log viewport.
type teaModel struct {
	width  int
	height int

	cancel context.CancelFunc

	phaseFunc  func() *project.CopyFilesBuildPhase
	logHandler *teaLogWriter

	fullWidthWithBorders int

	data     project.Progress
	progress progress.Model

	logsViewport viewport.Model
	logs         []string

	ready   bool
	waiting bool
}

func newTeaModel(phaseFunc func() *project.CopyFilesBuildPhase, logHandler *teaLogWriter, cancel context.CancelFunc) teaModel {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(80))
	logsViewport := viewport.New(80, 20)

	return teaModel{
		phaseFunc:    phaseFunc,
		logHandler:   logHandler,
		progress:     bar,
		logsViewport: logsViewport,
		logs:         make([]string, 0, 100),
		cancel:       cancel,
		waiting:      true,
	}
}

func (m teaModel) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		updateCopyProgress(m.phaseFunc),
	)
}

const copyProgressTick = 100 * time.Millisecond

// updateCopyProgress polls phaseFunc rather than a bound phase: the driver
// goroutine and the UI goroutine start together, so the phase this renders
// may not exist for the first few ticks.
func updateCopyProgress(phaseFunc func() *project.CopyFilesBuildPhase) tea.Cmd {
	return tea.Tick(copyProgressTick, func(time.Time) tea.Msg {
		phase := phaseFunc()
		if phase == nil {
			return copyProgressMsg{waiting: true}
		}

		return copyProgressMsg{data: phase.Progress()}
	})
}

//nolint:ireturn
func (m teaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()

			return m, tea.Quit
		case "q":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.fullWidthWithBorders = m.width - 2
		m.progress.Width = m.fullWidthWithBorders

		upperHeight := m.height / 4
		lowerHeight := m.height - upperHeight
		viewportHeight := lowerHeight - 3

		m.logsViewport.Width = m.fullWidthWithBorders
		m.logsViewport.Height = viewportHeight

		if len(m.logs) > 0 {
			m.logsViewport.SetContent(strings.Join(m.logs, ""))
		}

		m.ready = true

	case copyProgressMsg:
		m.waiting = msg.waiting

		if !msg.waiting {
			m.data = msg.data
			cmds = append(cmds, m.progress.SetPercent(m.data.Pct()/100))
		}

		if msg.waiting || !m.data.HasFinished {
			cmds = append(cmds, updateCopyProgress(m.phaseFunc))
		}

	case logMsg:
		if len(m.logs) >= 100 {
			m.logs = m.logs[1:]
		}

		m.logs = append(m.logs, string(msg))
		m.logsViewport.SetContent(strings.Join(m.logs, ""))
		m.logsViewport.GotoBottom()

	case progress.FrameMsg:
		updated, cmd := m.progress.Update(msg)
		if bar, ok := updated.(progress.Model); ok {
			m.progress = bar
		}

		cmds = append(cmds, cmd)
	}

	m.logsViewport, cmd = m.logsViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m teaModel) View() string {
	if !m.ready {
		return "Loading the GUI..."
	}

	var s strings.Builder

	progressSection := borderStyle.
		Width(m.fullWidthWithBorders).
		Render(m.formatProgressView())

	logsSection := borderStyle.
		Width(m.fullWidthWithBorders).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(m.fullWidthWithBorders).Render("Process Information"),
				lipgloss.NewStyle().Width(m.fullWidthWithBorders).Render(m.logsViewport.View()),
			),
		)

	helpSection := helpStyle.
		Width(m.fullWidthWithBorders).
		Render("q: quit gui • ctrl+c: quit program")

	s.WriteString(lipgloss.JoinVertical(
		lipgloss.Left,
		progressSection,
		logsSection,
		helpSection,
	))

	return s.String()
}

func (m teaModel) formatProgressView() string {
	if m.waiting {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			titleStyle.Width(m.fullWidthWithBorders).Render("Copy Files"),
			"",
			infoStyle.Width(m.fullWidthWithBorders).Render("Waiting for the copy phase to start..."),
		)
	}

	details := fmt.Sprintf(
		"Progress: %.2f%% (%d/%d)\nSuccess=%d, Skipped=%d\n",
		m.data.Pct(),
		m.data.ProcessedItems,
		m.data.TotalItems,
		m.data.SuccessItems,
		m.data.SkippedItems,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Width(m.fullWidthWithBorders).Render("Copy Files"),
		"",
		m.progress.View(),
		"",
		infoStyle.Width(m.fullWidthWithBorders).Render(details),
	)
}
