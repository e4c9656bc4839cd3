package prompt

import (
	"github.com/AlecAivazis/survey/v2"
)

// Confirmer asks yes/no questions
type Confirmer interface {
	Confirm(message string, defaultValue bool) (bool, error)
}

// SurveyConfirmer confirms on the terminal with survey
type SurveyConfirmer struct{}

// Confirm implements Confirmer
func (SurveyConfirmer) Confirm(message string, defaultValue bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	answer := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, err
	}
	return answer, nil
}

// AlwaysYes confirms everything
type AlwaysYes struct{}

// Confirm implements Confirmer
func (AlwaysYes) Confirm(string, bool) (bool, error) {
	return true, nil
}
