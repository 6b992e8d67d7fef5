package agents

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"

	"github.com/mihikajadhav02/NiraCare/internal/jsonx"
	"github.com/mihikajadhav02/NiraCare/internal/session"
)

// Routing suggests practitioner types and general test categories. It gives
// routing guidance only, never a diagnosis.
type Routing struct {
	agent
}

func NewRouting(cm model.BaseChatModel) *Routing {
	return &Routing{agent{name: "routing", cm: cm}}
}

func (a *Routing) Run(ctx context.Context, rawText string, symptoms []session.Symptom) (*session.RoutingGuidance, error) {
	prompt := fmt.Sprintf(`Based on the following symptom information, suggest appropriate doctor types and general test categories.

User description:
%s

Structured symptoms:
%s

Provide routing guidance in the specified JSON format.`, rawText, formatSymptoms(symptoms))

	reply, err := a.generate(ctx, routingInstruction, prompt)
	if err != nil {
		return nil, err
	}

	var out session.RoutingGuidance
	if err := jsonx.Unmarshal(reply, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
