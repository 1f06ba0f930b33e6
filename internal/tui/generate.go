// Package tui provides the interactive pad generator console.
package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/lyneport/tlofgen/internal/infer"
	"github.com/lyneport/tlofgen/internal/tlof"
)

const spinnerInterval = 100 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// phase is the screen state machine.
type phase int

const (
	phaseInput phase = iota
	phaseGenerating
	phaseResult
	phaseFailed
	phaseSaved
)

// spinnerTickMsg animates the loading spinner.
type spinnerTickMsg time.Time

// generatedMsg carries a successful generation back to the UI.
type generatedMsg struct {
	config *tlof.Configuration
	raw    string
}

// generateFailedMsg carries a failed generation back to the UI.
type generateFailedMsg struct {
	err error
}

// savedMsg reports the result of saving the configuration.
type savedMsg struct {
	path string
	err  error
}

// Model is the interactive generator screen.
type Model struct {
	service   *infer.Service
	modelName string

	input   textinput.Model
	phase   phase
	width   int
	height  int
	tick    int
	started time.Time

	description string
	config      *tlof.Configuration
	rendered    string
	savedPath   string
	err         error
}

// New creates the interactive generator around an inference service.
func New(service *infer.Service, modelName string) Model {
	ti := textinput.New()
	ti.Placeholder = "rectangular TLOF for helicopter, 25x30m, elevation 10m, blue H marker"
	ti.Focus()

	return Model{
		service:   service,
		modelName: modelName,
		input:     ti,
	}
}

func (m Model) Init() tea.Cmd {
	return m.input.Focus()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinnerTickMsg:
		if m.phase != phaseGenerating {
			return m, nil
		}
		m.tick++
		return m, spinnerTick()

	case generatedMsg:
		m.phase = phaseResult
		m.config = msg.config
		m.rendered = renderConfig(msg.config)
		return m, nil

	case generateFailedMsg:
		m.phase = phaseFailed
		m.err = msg.err
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.phase = phaseFailed
			m.err = msg.err
			return m, nil
		}
		m.phase = phaseSaved
		m.savedPath = msg.path
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	if m.phase == phaseInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseInput:
		if key == "esc" {
			return m, tea.Quit
		}
		if key == "enter" {
			desc := strings.TrimSpace(m.input.Value())
			if desc == "" {
				return m, nil
			}
			m.description = desc
			m.phase = phaseGenerating
			m.started = time.Now()
			return m, tea.Batch(spinnerTick(), m.generate(desc))
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case phaseResult:
		switch key {
		case "s":
			return m, m.save()
		case "n":
			return m.reset()
		case "q", "esc":
			return m, tea.Quit
		}

	case phaseFailed, phaseSaved:
		switch key {
		case "n", "enter":
			return m.reset()
		case "q", "esc":
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) reset() (tea.Model, tea.Cmd) {
	m.phase = phaseInput
	m.config = nil
	m.rendered = ""
	m.savedPath = ""
	m.err = nil
	m.input.SetValue("")
	return m, m.input.Focus()
}

func (m Model) generate(description string) tea.Cmd {
	service := m.service
	return func() tea.Msg {
		cfg, raw, err := service.Generate(context.Background(), description)
		if err != nil {
			return generateFailedMsg{err: err}
		}
		return generatedMsg{config: cfg, raw: raw}
	}
}

func (m Model) save() tea.Cmd {
	config := m.config
	return func() tea.Msg {
		path, err := infer.SaveConfiguration(config, "")
		return savedMsg{path: path, err: err}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func renderConfig(cfg *tlof.Configuration) string {
	blob, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Sprintf("render error: %v", err)
	}
	return string(blob)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("TLOF Configuration Generator"))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("model: " + m.modelName))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseInput:
		b.WriteString(bodyStyle.Render("Describe your landing pad:"))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("enter generate · esc quit"))

	case phaseGenerating:
		frame := spinnerFrames[m.tick%len(spinnerFrames)]
		elapsed := time.Since(m.started).Round(time.Second)
		b.WriteString(spinnerStyle.Render(frame))
		b.WriteString(bodyStyle.Render(" generating configuration... "))
		b.WriteString(hintStyle.Render(elapsed.String()))

	case phaseResult:
		b.WriteString(okStyle.Render("✓ configuration generated"))
		b.WriteString("\n\n")
		b.WriteString(cardStyle.Render(m.rendered))
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("s save · n new · q quit"))

	case phaseFailed:
		b.WriteString(errStyle.Render("✗ generation failed"))
		b.WriteString("\n\n")
		b.WriteString(bodyStyle.Render(m.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("n try again · q quit"))

	case phaseSaved:
		b.WriteString(okStyle.Render("✓ saved to " + m.savedPath))
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("n new · q quit"))
	}

	content := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Run starts the interactive generator and blocks until it exits.
func Run(service *infer.Service, modelName string) error {
	p := tea.NewProgram(New(service, modelName), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
