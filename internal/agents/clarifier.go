package agents

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"

	"github.com/mihikajadhav02/NiraCare/internal/jsonx"
	"github.com/mihikajadhav02/NiraCare/internal/session"
)

// Clarifier generates the follow-up questions a doctor would ask to fill
// gaps in the extracted symptoms.
type Clarifier struct {
	agent
}

func NewClarifier(cm model.BaseChatModel) *Clarifier {
	return &Clarifier{agent{name: "clarifier", cm: cm}}
}

func (a *Clarifier) Run(ctx context.Context, rawText string, symptoms []session.Symptom) ([]string, error) {
	prompt := fmt.Sprintf(`Original user input:
%s

Structured symptoms extracted:
%s

Based on the above, what follow-up questions would help clarify the symptoms?`, rawText, formatSymptoms(symptoms))

	reply, err := a.generate(ctx, clarifierInstruction, prompt)
	if err != nil {
		return nil, err
	}

	var out struct {
		Questions []string `json:"questions"`
	}
	if err := jsonx.Unmarshal(reply, &out); err != nil {
		return nil, err
	}
	if out.Questions == nil {
		out.Questions = []string{}
	}
	return out.Questions, nil
}
