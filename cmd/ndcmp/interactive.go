package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/ndkit/ndarray"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	opStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateInputArrays modelState = iota
	stateSelectOp
	stateShowResult
)

var ops = []ndarray.Op{
	ndarray.OpEQ,
	ndarray.OpNE,
	ndarray.OpLT,
	ndarray.OpLE,
	ndarray.OpGT,
	ndarray.OpGE,
}

const (
	fieldDType = iota
	fieldAVals
	fieldAShape
	fieldBVals
	fieldBShape
	numFields
)

type interactiveModel struct {
	err      error
	result   string
	inputs   []textinput.Model
	focusIdx int
	selected int
	state    modelState
}

func newInteractiveModel() *interactiveModel {
	labels := []struct {
		prompt, placeholder, initial string
	}{
		{"dtype:   ", "float64, int64, S<width>", "float64"},
		{"a:       ", "1,2,3", ""},
		{"a shape: ", "optional, e.g. 3,1", ""},
		{"b:       ", "2,2,2", ""},
		{"b shape: ", "optional, e.g. 1,4", ""},
	}

	inputs := make([]textinput.Model, numFields)
	for i, l := range labels {
		ti := textinput.New()
		ti.Prompt = l.prompt
		ti.Placeholder = l.placeholder
		ti.SetValue(l.initial)
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[fieldDType].Focus()

	return &interactiveModel{
		inputs: inputs,
		state:  stateInputArrays,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

type compareMsg struct {
	err    error
	result string
}

func (m *interactiveModel) compareArrays() tea.Msg {
	a, err := buildArray(m.inputs[fieldDType].Value(), m.inputs[fieldAVals].Value(), m.inputs[fieldAShape].Value())
	if err != nil {
		return compareMsg{err: fmt.Errorf("operand a: %w", err)}
	}
	b, err := buildArray(m.inputs[fieldDType].Value(), m.inputs[fieldBVals].Value(), m.inputs[fieldBShape].Value())
	if err != nil {
		return compareMsg{err: fmt.Errorf("operand b: %w", err)}
	}

	op := ops[m.selected]
	res, err := ndarray.RichCompare(a, b, op, ndarray.WithDefaultAscending())
	if err != nil {
		return compareMsg{err: err}
	}
	mask, ok := res.Comparable()
	if !ok {
		return compareMsg{result: "operands are not comparable"}
	}

	opts := formatOptions()
	var sb strings.Builder
	sb.WriteString("a      = " + ndarray.Format(a, opts) + "\n")
	sb.WriteString("b      = " + ndarray.Format(b, opts) + "\n")
	sb.WriteString(fmt.Sprintf("a %s b = %s", op, ndarray.Format(mask, opts)))
	return compareMsg{result: sb.String()}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateInputArrays || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectOp && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectOp && m.selected < len(ops)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateInputArrays:
				m.state = stateSelectOp
			case stateSelectOp:
				return m, m.compareArrays
			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArrays {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateSelectOp:
				m.state = stateInputArrays
			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}
		}

	case compareMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArrays {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ndcmp"))
	b.WriteString(" elementwise array comparison\n\n")

	switch m.state {
	case stateInputArrays:
		b.WriteString("Enter the operands:\n\n")
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter choose operator • ctrl+c quit"))

	case stateSelectOp:
		b.WriteString("Select an operator:\n\n")
		for i, op := range ops {
			line := fmt.Sprintf("a %s b", op)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + opStyle.Render(line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter compare • esc back • q quit"))

	case stateShowResult:
		b.WriteString(labelStyle.Render(fmt.Sprintf("Result of a %s b:", ops[m.selected])))
		b.WriteString("\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
