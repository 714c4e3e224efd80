// Package tui is the interactive terminal version of the BMI form.
package tui

import (
	"fmt"
	"strings"

	"massiohealth/internal/bmi"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type field int

const (
	fieldWeight field = iota
	fieldHeight
	fieldCount
)

const disclaimer = "Disclaimer: This BMI calculator is for informational purposes only. " +
	"Please consult with a healthcare professional for personalized medical advice."

// Model is the bubbletea model of the BMI form.
type Model struct {
	inputs [fieldCount]textinput.Model
	focus  field
	form   bmi.Form
	styles Styles

	quitting bool
}

// New returns a form with the weight field focused.
func New() Model {
	weight := textinput.New()
	weight.Placeholder = "Enter weight in kg"
	weight.CharLimit = 8
	weight.Width = 20
	weight.Focus()

	height := textinput.New()
	height.Placeholder = "Enter height in meters"
	height.CharLimit = 6
	height.Width = 20

	return Model{
		inputs: [fieldCount]textinput.Model{weight, height},
		focus:  fieldWeight,
		styles: DefaultStyles(),
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Form returns a copy of the current form state.
func (m Model) Form() bmi.Form {
	return m.form
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "tab", "down":
		cmd := m.setFocus((m.focus + 1) % fieldCount)
		return m, cmd
	case "shift+tab", "up":
		cmd := m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, cmd
	case "enter":
		m.sync()
		m.form.Calculate()
		return m, nil
	case "ctrl+r":
		m.reset()
		cmd := m.setFocus(fieldWeight)
		return m, cmd
	}

	if keyMsg.Type == tea.KeyRunes && !numeric(keyMsg.Runes) {
		return m, nil
	}
	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.sync()
	return m, cmd
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.focus = f
	var cmd tea.Cmd
	for i := range m.inputs {
		if field(i) == f {
			cmd = m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
	return cmd
}

func (m *Model) sync() {
	m.form.Weight = m.inputs[fieldWeight].Value()
	m.form.Height = m.inputs[fieldHeight].Value()
}

func (m *Model) reset() {
	m.form.Reset()
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
}

func numeric(runes []rune) bool {
	for _, r := range runes {
		if (r < '0' || r > '9') && r != '.' && r != ',' {
			return false
		}
	}
	return true
}

// View renders the form.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("♥ MassioHealth · BMI Calculator"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Enter your weight and height to calculate your Body Mass Index"))
	b.WriteString("\n\n")

	labels := [fieldCount]string{"Weight (kg)", "Height (m)"}
	for i := range m.inputs {
		style := m.styles.Label
		if field(i) == m.focus {
			style = m.styles.Focused
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, style.Render(labels[i]), " ", m.inputs[i].View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.form.CanCalculate() {
		b.WriteString(m.styles.Button.Render("Calculate BMI"))
	} else {
		b.WriteString(m.styles.Disabled.Render("Calculate BMI"))
	}
	b.WriteString("  ")
	b.WriteString(m.styles.Help.Render("enter calculate • ctrl+r reset • tab switch field • esc quit"))
	b.WriteString("\n")

	if res := m.form.Result; res != nil {
		b.WriteString("\n")
		b.WriteString(m.renderResult(*res))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render(disclaimer))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderResult(res bmi.Result) string {
	var b strings.Builder

	b.WriteString(m.styles.Score.Render(fmt.Sprintf("%.1f", res.Value)))
	b.WriteString("  Your BMI Score\n\n")

	block := res.Category.Label() + "\n" + res.Category.Description()
	b.WriteString(m.styles.CategoryStyle(res.Category.Color()).Width(60).Render(block))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Score.Render("BMI Categories:"))
	b.WriteString("\n")
	for _, band := range bmi.Reference() {
		b.WriteString(fmt.Sprintf("  %-13s %s\n", band.Category.String()+":", band.Range))
	}

	return b.String()
}
