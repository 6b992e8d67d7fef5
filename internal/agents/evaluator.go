package agents

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"

	"github.com/mihikajadhav02/NiraCare/internal/jsonx"
	"github.com/mihikajadhav02/NiraCare/internal/session"
)

// Evaluator is the critic stage: it scores the generated visit note and
// lists what is missing.
type Evaluator struct {
	agent
}

func NewEvaluator(cm model.BaseChatModel) *Evaluator {
	return &Evaluator{agent{name: "eval", cm: cm}}
}

func (a *Evaluator) Run(ctx context.Context, note string) (*session.Evaluation, error) {
	prompt := fmt.Sprintf(`Evaluate the following visit note:

%s

Provide your evaluation in the specified JSON format.`, note)

	reply, err := a.generate(ctx, evalInstruction, prompt)
	if err != nil {
		return nil, err
	}

	var out session.Evaluation
	if err := jsonx.Unmarshal(reply, &out); err != nil {
		return nil, err
	}
	if out.MissingFields == nil {
		out.MissingFields = []string{}
	}
	return &out, nil
}
