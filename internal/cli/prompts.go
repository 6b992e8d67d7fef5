package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// PromptForSymptoms prompts the user to describe their symptoms in free text.
func PromptForSymptoms() (string, error) {
	var rawText string
	prompt := &survey.Multiline{
		Message: "Describe what's been bothering you, in your own words:",
		Help:    "Write freely, like you would tell a friend. Mention how long it's been going on and how bad it feels if you can.",
	}

	err := survey.AskOne(prompt, &rawText, survey.WithValidator(func(val interface{}) error {
		str := strings.TrimSpace(val.(string))
		if len(str) == 0 {
			return fmt.Errorf("symptom description cannot be empty")
		}
		if len(str) < 10 {
			return fmt.Errorf("please write a bit more so the note has something to work with")
		}
		return nil
	}))

	if err != nil {
		return "", err
	}

	return strings.TrimSpace(rawText), nil
}

// CollectAnswers asks the clarifying questions one at a time. Skipped
// questions are recorded as unanswered rather than dropped, so the answer
// list always lines up with the question list.
func CollectAnswers(questions []string) ([]string, error) {
	if len(questions) == 0 {
		return []string{}, nil
	}

	fmt.Println()
	fmt.Println(stepStyle.Render(fmt.Sprintf("A few follow-up questions (%d) to make your note more useful:", len(questions))))
	fmt.Println()

	answers := make([]string, len(questions))
	for i, question := range questions {
		var answer string
		prompt := &survey.Input{
			Message: fmt.Sprintf("[%d/%d] %s", i+1, len(questions), question),
			Help:    "Press Enter to skip a question you can't answer.",
		}

		if err := survey.AskOne(prompt, &answer); err != nil {
			return nil, err
		}

		answer = strings.TrimSpace(answer)
		if answer == "" {
			answer = "(No answer provided)"
		}
		answers[i] = answer
	}

	return answers, nil
}

// PromptForRestartOrExit prompts the user when a session completes.
func PromptForRestartOrExit() (bool, error) {
	var choice string
	prompt := &survey.Select{
		Message: "Your visit note is ready. What would you like to do next?",
		Options: []string{
			"Describe another concern",
			"Exit NiraCare",
		},
		Default: "Exit NiraCare",
	}

	err := survey.AskOne(prompt, &choice)
	if err != nil {
		return false, err
	}

	return choice == "Describe another concern", nil
}
