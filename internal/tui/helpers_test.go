package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collect runs cmd and flattens batches into the produced messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func isRouted(msg tea.Msg) bool {
	switch msg.(type) {
	case NavigateTo, LoginResult, SessionStarted, FeedsLoaded:
		return true
	}
	return false
}

// drive feeds msg to m and keeps feeding back the reader's own messages
// produced by the returned commands. Timers and cursor blinks are dropped.
func drive(t *testing.T, m tea.Model, msg tea.Msg) (tea.Model, []tea.Msg) {
	t.Helper()
	queue := []tea.Msg{msg}
	var seen []tea.Msg

	for steps := 0; len(queue) > 0; steps++ {
		if steps > 50 {
			t.Fatal("message loop did not settle")
		}
		next := queue[0]
		queue = queue[1:]
		seen = append(seen, next)

		var cmd tea.Cmd
		m, cmd = m.Update(next)
		for _, produced := range collect(cmd) {
			if isRouted(produced) {
				queue = append(queue, produced)
			}
		}
	}
	return m, seen
}
