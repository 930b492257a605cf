package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// focus represents which panel/mode has keyboard input.
type focus int

const (
	focusView focus = iota
	focusInput
	focusMenu
	focusAngle
)

// Model is the TUI application state.
type Model struct {
	gates   []Gate
	history []*StateVector
	vectors []BlochVector
	step    int // highlighted history index

	seqInput  textinput.Model
	focus     focus
	width     int
	height    int
	statusMsg string // transient status (errors, save confirmations)
	statusErr bool

	// Gate-picker state
	menuIdx     int
	pendingGate string
	angleInput  string
}

func initialModel(gates []Gate) Model {
	ti := textinput.New()
	ti.Placeholder = "H,RY:pi/2,X"
	ti.CharLimit = 256

	m := Model{gates: gates, seqInput: ti, focus: focusView}
	m.recompute()
	m.step = len(m.history) - 1
	return m
}

// recompute re-evolves the gate list and refreshes trajectory and input.
func (m *Model) recompute() {
	history, err := EvolveSteps(m.gates)
	if err != nil {
		m.statusMsg = err.Error()
		m.statusErr = true
		return
	}
	vectors, err := BlochTrajectory(history)
	if err != nil {
		m.statusMsg = err.Error()
		m.statusErr = true
		return
	}
	m.history = history
	m.vectors = vectors
	if m.step >= len(m.history) {
		m.step = len(m.history) - 1
	}
	m.seqInput.SetValue(FormatSequence(m.gates))
}

// appendGate adds a gate and jumps the view to the new final state.
func (m *Model) appendGate(g Gate) {
	m.gates = append(m.gates, g)
	m.recompute()
	m.step = len(m.history) - 1
}

// ──────────────────────────── Init / Update ────────────────────────────

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.seqInput.Width = max(msg.Width-sphereW-16, 20)

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.focus {
		case focusView:
			m.statusMsg = ""
			m.statusErr = false
			switch key {
			case "q":
				return m, tea.Quit
			case "tab", "i":
				m.focus = focusInput
				m.seqInput.Focus()
				cmds = append(cmds, textinput.Blink)
			case "left", "h":
				if m.step > 0 {
					m.step--
				}
			case "right", "l":
				if m.step < len(m.history)-1 {
					m.step++
				}
			case "home", "g":
				m.step = 0
			case "end", "G":
				m.step = len(m.history) - 1
			case "a":
				m.focus = focusMenu
				m.menuIdx = 0
			case "backspace", "delete":
				if len(m.gates) > 0 {
					m.gates = m.gates[:len(m.gates)-1]
					m.recompute()
					m.step = len(m.history) - 1
				}
			case "ctrl+r":
				m.gates = nil
				m.recompute()
				m.step = 0
			case "ctrl+s":
				frame := RenderSphere(m.vectors[:m.step+1], m.step, false)
				if err := os.WriteFile("bloch.txt", []byte(frame+"\n"), 0644); err != nil {
					m.statusMsg = fmt.Sprintf("Save error: %v", err)
					m.statusErr = true
				} else {
					m.statusMsg = "Saved bloch.txt"
				}
			}

		case focusInput:
			switch key {
			case "esc":
				m.focus = focusView
				m.seqInput.Blur()
				m.seqInput.SetValue(FormatSequence(m.gates))
			case "enter":
				gates, err := ParseSequence(m.seqInput.Value())
				if err == nil {
					err = ValidateGates(gates)
				}
				if err != nil {
					m.statusMsg = err.Error()
					m.statusErr = true
					break
				}
				m.gates = gates
				m.recompute()
				m.step = len(m.history) - 1
				m.focus = focusView
				m.seqInput.Blur()
				m.statusMsg = ""
				m.statusErr = false
			default:
				var cmd tea.Cmd
				m.seqInput, cmd = m.seqInput.Update(msg)
				cmds = append(cmds, cmd)
			}

		case focusMenu:
			switch key {
			case "esc":
				m.focus = focusView
			case "up", "k":
				if m.menuIdx > 0 {
					m.menuIdx--
				}
			case "down", "j":
				if m.menuIdx < len(gateMenu)-1 {
					m.menuIdx++
				}
			case "enter":
				item := gateMenu[m.menuIdx]
				if item.needsAngle {
					m.pendingGate = item.gateType
					m.angleInput = ""
					m.focus = focusAngle
				} else {
					m.appendGate(Gate{Type: item.gateType})
					m.focus = focusView
				}
			}

		case focusAngle:
			switch key {
			case "esc":
				m.focus = focusView
				m.pendingGate = ""
				m.angleInput = ""
			case "backspace":
				if len(m.angleInput) > 0 {
					m.angleInput = m.angleInput[:len(m.angleInput)-1]
				}
			case "enter":
				val, ok := parseAngleExpr(m.angleInput)
				if !ok {
					m.statusMsg = "Invalid angle — use numbers or pi expressions (e.g. pi/2, 3*pi/4)"
					m.statusErr = true
					break
				}
				m.appendGate(Gate{Type: m.pendingGate, Params: []float64{val}})
				m.pendingGate = ""
				m.angleInput = ""
				m.focus = focusView
				m.statusMsg = ""
				m.statusErr = false
			default:
				if len(key) == 1 {
					ch := key[0]
					if (ch >= '0' && ch <= '9') || ch == '.' || ch == '-' || ch == '+' ||
						ch == 'e' || ch == 'E' || ch == 'p' || ch == 'i' || ch == '*' || ch == '/' {
						m.angleInput += key
					}
				}
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// ──────────────────────────── View ────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	spherePanel := m.renderSpherePanel()
	readoutW := max(m.width-lipgloss.Width(spherePanel)-4, 34)
	readoutPanel := m.renderReadoutPanel(readoutW)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, spherePanel, readoutPanel)
	frame := lipgloss.JoinVertical(lipgloss.Left, topRow, m.renderControlsPanel(m.width-4))

	if m.focus == focusMenu {
		frame = overlayAt(frame, m.renderMenu(), 4, 2)
	}
	if m.focus == focusAngle {
		frame = overlayAt(frame, m.renderAngleInput(), 4, 2)
	}

	return frame
}

// renderSpherePanel renders the sphere with the trajectory up to the
// current step.
func (m Model) renderSpherePanel() string {
	var sb strings.Builder
	title := fmt.Sprintf("Bloch Sphere — step %d/%d", m.step, max(len(m.history)-1, 0))
	sb.WriteString(titleStyle.Render(padCenter(title, sphereW)))
	sb.WriteString("\n")
	if len(m.vectors) > 0 {
		sb.WriteString(RenderSphere(m.vectors[:m.step+1], m.step, true))
	}
	return sphereStyle.Render(sb.String())
}

// renderReadoutPanel renders the sequence line and the numeric state of the
// current step.
func (m Model) renderReadoutPanel(width int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("State"))
	sb.WriteString("\n\n")

	sb.WriteString(statusStyle.Render("Sequence: "))
	if m.focus == focusInput {
		sb.WriteString(m.seqInput.View())
	} else if len(m.gates) == 0 {
		sb.WriteString(dimStyle.Render("(none — initial |0⟩)"))
	} else {
		sb.WriteString(gateStyle.Render(FormatSequence(m.gates)))
	}
	sb.WriteString("\n\n")

	if m.step < len(m.history) {
		state := m.history[m.step]
		v := m.vectors[m.step]

		applied := "initial |0⟩"
		if m.step > 0 {
			applied = "after " + FormatSequence(m.gates[m.step-1:m.step])
		}
		sb.WriteString(gateStyle.Render(applied))
		sb.WriteString("\n\n")
		fmt.Fprintf(&sb, "α = %s\n", formatAmplitude(state.Amplitudes[0]))
		fmt.Fprintf(&sb, "β = %s\n\n", formatAmplitude(state.Amplitudes[1]))
		fmt.Fprintf(&sb, "x = %+.4f\ny = %+.4f\nz = %+.4f\n\n", v.X, v.Y, v.Z)
		fmt.Fprintf(&sb, "norm = %.9f", state.Norm())
	}

	if m.statusMsg != "" {
		sb.WriteString("\n\n")
		if m.statusErr {
			sb.WriteString(errorStyle.Render(m.statusMsg))
		} else {
			sb.WriteString(statusStyle.Render(m.statusMsg))
		}
	}

	return readoutStyle.Width(width).Render(sb.String())
}

// renderControlsPanel renders the bottom help bar.
func (m Model) renderControlsPanel(width int) string {
	var sb strings.Builder

	sb.WriteString(statusStyle.Render("Navigate: "))
	sb.WriteString("←→/hl Step  g/G First/Last  ")
	sb.WriteString(statusStyle.Render("a"))
	sb.WriteString(" Add gate  Bksp Drop last\n")

	sb.WriteString(statusStyle.Render("Actions:  "))
	sb.WriteString("Tab Edit sequence  ^R Reset  ^S Save  q/^C Quit")

	return controlsStyle.Width(width).Render(sb.String())
}
