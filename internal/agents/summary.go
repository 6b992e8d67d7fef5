package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"

	"github.com/mihikajadhav02/NiraCare/internal/session"
)

// Summary synthesizes the raw description, structured symptoms and the
// clarifying Q&A into a doctor-ready visit note. Output is plain text,
// returned verbatim (trimmed), never parsed as JSON.
type Summary struct {
	agent
}

func NewSummary(cm model.BaseChatModel) *Summary {
	return &Summary{agent{name: "summary", cm: cm}}
}

func (a *Summary) Run(ctx context.Context, rawText string, symptoms []session.Symptom, questions, answers []string) (string, error) {
	var qa strings.Builder
	for i, q := range questions {
		answer := "(No answer provided)"
		if i < len(answers) && strings.TrimSpace(answers[i]) != "" {
			answer = answers[i]
		}
		fmt.Fprintf(&qa, "Q: %s\nA: %s\n", q, answer)
	}

	prompt := fmt.Sprintf(`Original user input:
%s

Structured symptoms:
%s

Clarifying Q&A:
%s
Create a doctor-ready visit note based on the above information.`, rawText, formatSymptoms(symptoms), qa.String())

	reply, err := a.generate(ctx, summaryInstruction, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}
