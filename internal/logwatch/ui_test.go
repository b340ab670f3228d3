package logwatch

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"drills/internal/loganalyzer"
)

func TestModelReloadDone(t *testing.T) {
	m := NewModel("app.log", loganalyzer.NewParser(false))

	updated, _ := m.Update(reloadDoneMsg{table: "Log Level | Count", issueReport: "There were no issues with your logs."})
	got := updated.(Model)

	if got.status != statusWatching {
		t.Errorf("status = %d, expected watching", got.status)
	}
	view := got.View()
	for _, want := range []string{"Log Level | Count", "Watching: app.log", "no issues"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModelReloadError(t *testing.T) {
	m := NewModel("app.log", loganalyzer.NewParser(false))

	updated, _ := m.Update(reloadDoneMsg{err: fmt.Errorf("file 'app.log' does not exist")})
	got := updated.(Model)

	if got.status != statusError {
		t.Errorf("status = %d, expected error", got.status)
	}
	if !strings.Contains(got.View(), "does not exist") {
		t.Error("view does not show the error")
	}
}

func TestModelFileChangedTriggersReload(t *testing.T) {
	m := NewModel("app.log", loganalyzer.NewParser(false))

	updated, cmd := m.Update(FileChanged())
	if updated.(Model).status != statusReloading {
		t.Error("expected reloading status")
	}
	if cmd == nil {
		t.Error("expected a reload command")
	}
}

func TestModelQuitKeys(t *testing.T) {
	m := NewModel("app.log", loganalyzer.NewParser(false))

	for _, key := range []string{"q", "ctrl+c"} {
		var msg tea.Msg
		if key == "q" {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		}
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Errorf("key %s should quit", key)
		}
	}
}

func TestModelNotesBounded(t *testing.T) {
	m := NewModel("app.log", loganalyzer.NewParser(false))

	var updated tea.Model = m
	for i := 0; i < maxNotes+3; i++ {
		updated, _ = updated.(Model).Update(logNoteMsg{line: fmt.Sprintf("note %d", i)})
	}

	got := updated.(Model)
	if len(got.notes) != maxNotes {
		t.Errorf("expected %d notes, got %d", maxNotes, len(got.notes))
	}
	if got.notes[0] != "note 3" {
		t.Errorf("oldest notes should be dropped, got %q first", got.notes[0])
	}
}
