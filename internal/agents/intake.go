package agents

import (
	"context"

	"github.com/cloudwego/eino/components/model"

	"github.com/mihikajadhav02/NiraCare/internal/jsonx"
	"github.com/mihikajadhav02/NiraCare/internal/session"
)

// Intake extracts a structured symptom list from the raw description.
type Intake struct {
	agent
}

func NewIntake(cm model.BaseChatModel) *Intake {
	return &Intake{agent{name: "intake", cm: cm}}
}

func (a *Intake) Run(ctx context.Context, rawText string) ([]session.Symptom, error) {
	reply, err := a.generate(ctx, intakeInstruction, rawText)
	if err != nil {
		return nil, err
	}

	var out struct {
		Symptoms []session.Symptom `json:"symptoms"`
	}
	if err := jsonx.Unmarshal(reply, &out); err != nil {
		return nil, err
	}
	if out.Symptoms == nil {
		out.Symptoms = []session.Symptom{}
	}
	return out.Symptoms, nil
}
