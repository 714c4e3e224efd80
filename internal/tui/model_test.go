package tui

import (
	"strings"
	"testing"

	"massiohealth/internal/bmi"

	tea "github.com/charmbracelet/bubbletea"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", next)
	}
	return nm, cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func fill(t *testing.T, weight, height string) Model {
	t.Helper()
	m := New()
	m = typeText(t, m, weight)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, height)
	return m
}

func TestTypingFillsForm(t *testing.T) {
	m := fill(t, "70", "1.75")

	form := m.Form()
	if form.Weight != "70" || form.Height != "1.75" {
		t.Fatalf("expected 70/1.75, got %q/%q", form.Weight, form.Height)
	}
	if !form.CanCalculate() {
		t.Fatal("expected Calculate to be enabled")
	}
}

func TestEnterCalculates(t *testing.T) {
	m := fill(t, "70", "1.75")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	res := m.Form().Result
	if res == nil {
		t.Fatal("expected a result")
	}
	if res.Value != 22.9 || res.Category != bmi.Normal {
		t.Fatalf("expected 22.9/Normal, got %v/%q", res.Value, res.Category)
	}

	view := m.View()
	for _, want := range []string{"22.9", "Your BMI Score", "Normal Weight", "Great!", "BMI Categories:", "≥ 30.0"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestEnterWithMissingFieldDoesNothing(t *testing.T) {
	m := New()
	m = typeText(t, m, "70")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Form().Result != nil {
		t.Fatalf("expected no result, got %+v", m.Form().Result)
	}
	if strings.Contains(m.View(), "Your BMI Score") {
		t.Fatal("expected no result block in view")
	}
}

func TestEnterWithZeroDoesNothing(t *testing.T) {
	m := fill(t, "0", "1.75")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Form().Result != nil {
		t.Fatalf("expected no result, got %+v", m.Form().Result)
	}
}

func TestNonNumericInputIgnored(t *testing.T) {
	m := New()
	m = typeText(t, m, "7")
	m = typeText(t, m, "kg")
	m = typeText(t, m, "0")

	if got := m.Form().Weight; got != "70" {
		t.Fatalf("expected weight %q, got %q", "70", got)
	}
}

func TestResetClearsEverything(t *testing.T) {
	m := fill(t, "90", "1.70")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Form().Result == nil {
		t.Fatal("expected a result before reset")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})

	form := m.Form()
	if form.Weight != "" || form.Height != "" || form.Result != nil {
		t.Fatalf("expected empty form after reset, got %+v", form)
	}
	if m.focus != fieldWeight {
		t.Fatalf("expected weight field focused after reset, got %d", m.focus)
	}
}

func TestFocusCycles(t *testing.T) {
	m := New()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != fieldHeight {
		t.Fatalf("expected height focus after tab, got %d", m.focus)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != fieldWeight {
		t.Fatalf("expected focus to wrap to weight, got %d", m.focus)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != fieldHeight {
		t.Fatalf("expected height focus after shift+tab, got %d", m.focus)
	}
}

func TestEscQuits(t *testing.T) {
	m, cmd := update(t, New(), tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Fatal("expected empty view after quitting")
	}
}
