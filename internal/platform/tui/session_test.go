package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/gifteroids/internal/games/gifteroids"
)

func sessionStep(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected SessionModel", next)
	}
	return sm
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), Options{})
	if len(m.menu.items) != 2 {
		t.Fatalf("menu items = %d, expected both modes", len(m.menu.items))
	}

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.current != screenGame || m.game == nil {
		t.Fatal("enter should start the selected mode")
	}

	m = sessionStep(t, m, TickMsg{})
	m = sessionStep(t, m, runeKey('p'))
	m = sessionStep(t, m, TickMsg{})
	if !m.game.State().Paused {
		t.Fatal("game should be paused")
	}

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.current != screenMenu || m.game != nil {
		t.Error("back while paused should return to the menu")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), Options{})

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.current != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	if m.View() == "" {
		t.Error("scoreboard should render inside the session")
	}

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.current != screenMenu || m.quitting {
		t.Error("back should return to the menu without quitting")
	}
}
