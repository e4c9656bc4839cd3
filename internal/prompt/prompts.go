// Package prompt asks the user for configuration values, merge and tag
// messages, and confirmations.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrInteractiveDisabled is returned when a prompt is needed but prompting is turned off
var ErrInteractiveDisabled = errors.New("interactive prompts are disabled (use --defaults or GITFLOW_NO_INTERACTIVE is set)")

// ErrCanceled is returned when the user aborts a prompt
var ErrCanceled = errors.New("canceled")

// checkInteractiveAllowed returns an error if interactive mode is disabled
func checkInteractiveAllowed() error {
	if os.Getenv("GITFLOW_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// textInputModel is a simple text input prompt model
type textInputModel struct {
	textInput textinput.Model
	prompt    string
	done      bool
	err       error
}

func newTextInputModel(prompt, defaultValue string) textInputModel {
	ti := textinput.New()
	ti.Placeholder = defaultValue
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 80

	return textInputModel{textInput: ti, prompt: prompt}
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrCanceled
			m.done = true
			return m, tea.Quit
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textInputModel) View() string {
	if m.done {
		return ""
	}
	styleObj := lipgloss.NewStyle().Margin(1, 0)
	return styleObj.Render(fmt.Sprintf("%s\n%s\n\n(Press Enter to submit, Ctrl+C to cancel)", m.prompt, m.textInput.View()))
}

// Value returns the entered text. An empty string means the default was accepted.
func (m textInputModel) Value() string {
	return strings.TrimSpace(m.textInput.Value())
}

// Terminal prompts on a terminal with bubbletea
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

// NewTerminal creates a Terminal prompter on stdin and stdout
func NewTerminal() *Terminal {
	return &Terminal{In: os.Stdin, Out: os.Stdout}
}

// Prompt asks question, showing defaultValue. An empty answer returns "".
func (t *Terminal) Prompt(question, defaultValue string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	m := newTextInputModel(fmt.Sprintf("%s [%s]", question, defaultValue), defaultValue)
	p := tea.NewProgram(m, tea.WithInput(t.In), tea.WithOutput(t.Out))
	model, err := p.Run()
	if err != nil {
		return "", err
	}

	if finalModel, ok := model.(textInputModel); ok {
		if finalModel.err != nil {
			return "", finalModel.err
		}
		return finalModel.Value(), nil
	}

	return "", fmt.Errorf("unexpected model type")
}

// Defaults answers every prompt with its default
type Defaults struct{}

// Prompt implements config.Prompter
func (Defaults) Prompt(_, defaultValue string) (string, error) {
	return defaultValue, nil
}

// Scripted answers prompts from a fixed list, then with defaults
type Scripted struct {
	Answers []string
	Asked   []string
}

// Prompt implements config.Prompter
func (s *Scripted) Prompt(question, _ string) (string, error) {
	s.Asked = append(s.Asked, question)
	if len(s.Answers) == 0 {
		return "", nil
	}
	a := s.Answers[0]
	s.Answers = s.Answers[1:]
	return a, nil
}
