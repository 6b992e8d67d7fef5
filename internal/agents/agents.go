// Package agents holds the five pipeline stages. Each stage is one fixed
// instruction plus the accumulated session fields, sent to the chat model
// in a single synchronous round trip, with the reply parsed into a typed
// result. Stages never retry: transport and parse failures abort the stage
// and surface to the orchestrator.
package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/mihikajadhav02/NiraCare/internal/session"
)

type agent struct {
	name string
	cm   model.BaseChatModel
}

// generate performs the stage's single model round trip and returns the
// reply text. An empty reply is an error, matching the transport-failure
// handling of every stage.
func (a *agent) generate(ctx context.Context, instruction, userPrompt string) (string, error) {
	msgs := []*schema.Message{
		schema.SystemMessage(instruction),
		schema.UserMessage(userPrompt),
	}

	resp, err := a.cm.Generate(ctx, msgs)
	if err != nil {
		return "", fmt.Errorf("%s: model call failed: %w", a.name, err)
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", fmt.Errorf("%s: no response received from model", a.name)
	}
	return resp.Content, nil
}

// formatSymptoms renders the structured symptom list for inclusion in a
// downstream stage's prompt.
func formatSymptoms(symptoms []session.Symptom) string {
	data, err := json.MarshalIndent(map[string]any{"symptoms": symptoms}, "", "  ")
	if err != nil {
		return `{"symptoms": []}`
	}
	return string(data)
}
