package prompt

import (
	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/engine"
)

// Messages asks for merge messages and tag names through a Prompter,
// offering the engine defaults as suggestions
type Messages struct {
	Prompter config.Prompter
}

// MergeMessage implements engine.MessageProvider
func (m Messages) MergeMessage(source, target string) (string, error) {
	def, _ := engine.DefaultMessages{}.MergeMessage(source, target)
	answer, err := m.Prompter.Prompt("Merge message", def)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// TagName implements engine.MessageProvider
func (m Messages) TagName(suggested string) (string, error) {
	answer, err := m.Prompter.Prompt("Tag name", suggested)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return suggested, nil
	}
	return answer, nil
}

// TagMessage implements engine.MessageProvider
func (m Messages) TagMessage(tag string) (string, error) {
	def, _ := engine.DefaultMessages{}.TagMessage(tag)
	answer, err := m.Prompter.Prompt("Tag message", def)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

var _ engine.MessageProvider = Messages{}
