// Package logwatch provides the live view behind logstats --watch: a Bubble
// Tea model that re-runs the log analysis whenever the watched file changes.
package logwatch

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"drills/internal/loganalyzer"
)

type status int

const (
	statusWatching status = iota
	statusReloading
	statusError
)

// maxNotes bounds the diagnostics footer
const maxNotes = 5

// Model is the Bubble Tea model for the live log statistics view.
type Model struct {
	filePath string
	parser   *loganalyzer.Parser

	status      status
	lastUpdate  time.Time
	err         error
	table       string
	issueReport string
	notes       []string

	width  int
	height int
}

type fileChangedMsg struct{}

type reloadDoneMsg struct {
	table       string
	issueReport string
	err         error
}

type logNoteMsg struct {
	line string
}

// NewModel creates a model that analyzes filePath with the given parser.
func NewModel(filePath string, parser *loganalyzer.Parser) Model {
	return Model{
		filePath: filePath,
		parser:   parser,
		status:   statusReloading,
	}
}

// FileChanged returns the message that triggers a reload.
func FileChanged() tea.Msg {
	return fileChangedMsg{}
}

// LogNote converts a forwarded slog record into a footer message.
func LogNote(record slog.Record) tea.Msg {
	line := record.Message
	record.Attrs(func(a slog.Attr) bool {
		line += fmt.Sprintf(" %s=%v", a.Key, a.Value.Any())
		return true
	})
	return logNoteMsg{line: fmt.Sprintf("%s %s", record.Level, line)}
}

func (m Model) Init() tea.Cmd {
	return m.reload()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case fileChangedMsg:
		m.status = statusReloading
		return m, m.reload()

	case reloadDoneMsg:
		m.lastUpdate = time.Now()
		if msg.err != nil {
			m.status = statusError
			m.err = msg.err
			return m, nil
		}
		m.status = statusWatching
		m.err = nil
		m.table = msg.table
		m.issueReport = msg.issueReport
		return m, nil

	case logNoteMsg:
		m.notes = append(m.notes, msg.line)
		if len(m.notes) > maxNotes {
			m.notes = m.notes[len(m.notes)-maxNotes:]
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	var s strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		MarginBottom(1)
	s.WriteString(headerStyle.Render("Drills - log statistics"))
	s.WriteString("\n\n")

	fileStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	s.WriteString(fileStyle.Render(fmt.Sprintf("Watching: %s", m.filePath)))
	s.WriteString("\n\n")

	if m.table != "" {
		s.WriteString(m.table)
		s.WriteString("\n\n")
	}
	if m.issueReport != "" {
		s.WriteString(m.issueReport)
		s.WriteString("\n\n")
	}

	statusStyle := lipgloss.NewStyle().Bold(true)
	switch m.status {
	case statusWatching:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("10")).Render("Watching for changes..."))
		if !m.lastUpdate.IsZero() {
			s.WriteString(fileStyle.Render(fmt.Sprintf(" (updated %s)", m.lastUpdate.Format("15:04:05"))))
		}
	case statusReloading:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("11")).Render("Reloading..."))
	case statusError:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("9")).Render("Error: "))
		if m.err != nil {
			s.WriteString(m.err.Error())
		}
	}
	s.WriteString("\n")

	if len(m.notes) > 0 {
		s.WriteString("\n")
		for _, note := range m.notes {
			s.WriteString(fileStyle.Render(note))
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(fileStyle.Render("Press 'q' to quit"))

	return s.String()
}

func (m Model) reload() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.parser.Load(m.filePath)
		if err != nil {
			return reloadDoneMsg{err: err}
		}

		stats := loganalyzer.CountByLevel(entries)
		return reloadDoneMsg{
			table:       loganalyzer.RenderCounts(stats),
			issueReport: loganalyzer.RenderIssueReport(entries, stats, true),
		}
	}
}
