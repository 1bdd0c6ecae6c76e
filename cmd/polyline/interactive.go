package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	polylineffi "github.com/flatroute/polyline-ffi"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2E8B57")).
			Padding(0, 1)

	opStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2E8B57"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectOp modelState = iota
	stateInputArgs
	stateShowResult
)

type opInfo struct {
	name  string
	hint  string
	value string
}

type interactiveModel struct {
	err       error
	result    string
	ops       []opInfo
	inputs    []textinput.Model
	precision uint32
	selected  int
	focusIdx  int
	state     modelState
}

type opResultMsg struct {
	err    error
	result string
}

func newInteractiveModel(precision uint32) *interactiveModel {
	return &interactiveModel{
		precision: precision,
		state:     stateSelectOp,
		ops: []opInfo{
			{name: "decode", hint: "polyline text -> coordinate pairs", value: "polyline"},
			{name: "encode", hint: "coordinate pairs -> polyline text", value: "x1,y1 x2,y2 ..."},
		},
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateInputArgs || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectOp && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectOp && m.selected < len(m.ops)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectOp:
				m.prepareInputs()
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.runOp

			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectOp
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}
		}

	case opResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
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

func (m *interactiveModel) prepareInputs() {
	op := m.ops[m.selected]

	value := textinput.New()
	value.Placeholder = op.value
	value.Prompt = op.name + ": "
	value.Width = 60
	value.Focus()

	precision := textinput.New()
	precision.Placeholder = "5"
	precision.Prompt = "precision: "
	precision.SetValue(strconv.FormatUint(uint64(m.precision), 10))
	precision.Width = 4

	m.inputs = []textinput.Model{value, precision}
	m.focusIdx = 0
}

func (m *interactiveModel) runOp() tea.Msg {
	precision := m.precision
	if v := m.inputs[1].Value(); v != "" {
		p, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return opResultMsg{err: fmt.Errorf("precision %q: %w", v, err)}
		}
		precision = uint32(p)
	}

	value := m.inputs[0].Value()
	switch m.ops[m.selected].name {
	case "decode":
		coords, err := polylineffi.DecodeCoords(value, precision)
		if err != nil {
			return opResultMsg{err: err}
		}
		var b strings.Builder
		for _, c := range coords {
			fmt.Fprintf(&b, "%v,%v\n", c[0], c[1])
		}
		return opResultMsg{result: strings.TrimSuffix(b.String(), "\n")}

	case "encode":
		coords, err := parseCoords(value)
		if err != nil {
			return opResultMsg{err: err}
		}
		s, err := polylineffi.EncodeCoords(coords, precision)
		if err != nil {
			return opResultMsg{err: err}
		}
		return opResultMsg{result: s}
	}

	return opResultMsg{err: fmt.Errorf("unknown operation")}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Polyline Inspector"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectOp:
		b.WriteString("Select an operation:\n\n")
		for i, op := range m.ops {
			line := opStyle.Render(op.name) + "  " + hintStyle.Render(op.hint)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + op.name))
				b.WriteString("  " + hintStyle.Render(op.hint))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter confirm • q quit"))

	case stateInputArgs:
		op := m.ops[m.selected]
		b.WriteString(fmt.Sprintf("Operation %s\n\n", opStyle.Render(op.name)))
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter run • esc back"))

	case stateShowResult:
		op := m.ops[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", opStyle.Render(op.name)))
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

func runInteractive(precision uint32) error {
	p := tea.NewProgram(newInteractiveModel(precision), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
