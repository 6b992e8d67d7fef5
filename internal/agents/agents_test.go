package agents

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/mihikajadhav02/NiraCare/internal/jsonx"
	"github.com/mihikajadhav02/NiraCare/internal/session"
)

// scriptedModel replays canned replies in order and records every prompt it
// receives, so tests can assert both parsing and prompt assembly.
type scriptedModel struct {
	replies []string
	err     error
	calls   [][]*schema.Message
}

func (m *scriptedModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	m.calls = append(m.calls, input)
	if m.err != nil {
		return nil, m.err
	}
	if len(m.replies) == 0 {
		return nil, errors.New("scripted model exhausted")
	}
	reply := m.replies[0]
	m.replies = m.replies[1:]
	return schema.AssistantMessage(reply, nil), nil
}

func (m *scriptedModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := m.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}

func lastUserPrompt(t *testing.T, m *scriptedModel) string {
	t.Helper()
	if len(m.calls) == 0 {
		t.Fatal("no model calls recorded")
	}
	msgs := m.calls[len(m.calls)-1]
	return msgs[len(msgs)-1].Content
}

func TestIntakeParsesSymptoms(t *testing.T) {
	cm := &scriptedModel{replies: []string{"```json\n{\"symptoms\": [{\"name\": \"headache\", \"severity\": \"moderate\", \"frequency\": \"daily\", \"since_when\": \"2 weeks ago\", \"cycle_related\": \"no\", \"notes\": \"worse in the morning\"}]}\n```"}}

	symptoms, err := NewIntake(cm).Run(context.Background(), "I've had headaches every day for two weeks")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(symptoms) != 1 {
		t.Fatalf("expected 1 symptom, got %d", len(symptoms))
	}
	s := symptoms[0]
	if s.Name != "headache" || s.Severity != "moderate" || s.SinceWhen != "2 weeks ago" {
		t.Fatalf("unexpected symptom: %+v", s)
	}
}

func TestIntakeEmptySymptoms(t *testing.T) {
	cm := &scriptedModel{replies: []string{`{"symptoms": []}`}}
	symptoms, err := NewIntake(cm).Run(context.Background(), "feeling great")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if symptoms == nil || len(symptoms) != 0 {
		t.Fatalf("expected empty symptom list, got %v", symptoms)
	}
}

func TestIntakeMalformedOutput(t *testing.T) {
	cm := &scriptedModel{replies: []string{"I cannot produce JSON right now."}}
	_, err := NewIntake(cm).Run(context.Background(), "headaches")
	var perr *jsonx.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if !strings.Contains(perr.Raw, "cannot produce JSON") {
		t.Fatalf("ParseError should carry raw text: %q", perr.Raw)
	}
}

func TestIntakeTransportFailure(t *testing.T) {
	cm := &scriptedModel{err: errors.New("connection reset")}
	_, err := NewIntake(cm).Run(context.Background(), "headaches")
	if err == nil || !strings.Contains(err.Error(), "connection reset") {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
}

func TestClarifierThreadsSymptomsIntoPrompt(t *testing.T) {
	cm := &scriptedModel{replies: []string{`{"questions": ["Since when?", "Any triggers?"]}`}}

	questions, err := NewClarifier(cm).Run(context.Background(), "tired all the time", []session.Symptom{{Name: "fatigue", Severity: "moderate"}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(questions) != 2 || questions[0] != "Since when?" {
		t.Fatalf("unexpected questions: %v", questions)
	}

	prompt := lastUserPrompt(t, cm)
	if !strings.Contains(prompt, "tired all the time") {
		t.Fatal("raw text missing from clarifier prompt")
	}
	if !strings.Contains(prompt, "fatigue") {
		t.Fatal("structured symptoms missing from clarifier prompt")
	}
}

func TestSummaryReturnsTrimmedText(t *testing.T) {
	cm := &scriptedModel{replies: []string{"\n\nCHIEF COMPLAINT:\nDaily headaches for two weeks.\n\n"}}

	note, err := NewSummary(cm).Run(context.Background(), "headaches",
		[]session.Symptom{{Name: "headache"}},
		[]string{"Since when?"}, []string{"two weeks"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.HasPrefix(note, "CHIEF COMPLAINT:") {
		t.Fatalf("note not trimmed: %q", note)
	}

	prompt := lastUserPrompt(t, cm)
	if !strings.Contains(prompt, "Q: Since when?") || !strings.Contains(prompt, "A: two weeks") {
		t.Fatalf("Q&A missing from summary prompt:\n%s", prompt)
	}
}

func TestSummaryFillsMissingAnswers(t *testing.T) {
	cm := &scriptedModel{replies: []string{"note"}}
	_, err := NewSummary(cm).Run(context.Background(), "headaches", nil,
		[]string{"Since when?", "Any triggers?"}, []string{"two weeks", ""})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	prompt := lastUserPrompt(t, cm)
	if !strings.Contains(prompt, "A: (No answer provided)") {
		t.Fatalf("blank answer should be marked as unanswered:\n%s", prompt)
	}
}

func TestRoutingParsesGuidance(t *testing.T) {
	cm := &scriptedModel{replies: []string{`{
  "recommended_doctors": [{"type": "Gynecologist", "reason": "For period-related concerns"}],
  "possible_test_categories": [{"category": "Blood tests", "purpose": "To check hormone levels"}],
  "urgency_note": "Not urgent unless symptoms are severe."
}`}}

	guidance, err := NewRouting(cm).Run(context.Background(), "irregular periods", []session.Symptom{{Name: "irregular periods"}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(guidance.RecommendedDoctors) != 1 || guidance.RecommendedDoctors[0].Type != "Gynecologist" {
		t.Fatalf("unexpected doctors: %+v", guidance.RecommendedDoctors)
	}
	if len(guidance.PossibleTestCategories) != 1 || guidance.PossibleTestCategories[0].Category != "Blood tests" {
		t.Fatalf("unexpected tests: %+v", guidance.PossibleTestCategories)
	}
	if guidance.UrgencyNote == "" {
		t.Fatal("urgency note missing")
	}
}

func TestEvaluatorParsesVerdict(t *testing.T) {
	cm := &scriptedModel{replies: []string{`{"score": 7.5, "missing_fields": ["onset"], "suggested_improvement": "Add onset details."}`}}

	eval, err := NewEvaluator(cm).Run(context.Background(), "CHIEF COMPLAINT: headaches")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if eval.Score != 7.5 {
		t.Fatalf("score = %v", eval.Score)
	}
	if len(eval.MissingFields) != 1 || eval.MissingFields[0] != "onset" {
		t.Fatalf("missing fields = %v", eval.MissingFields)
	}

	prompt := lastUserPrompt(t, cm)
	if !strings.Contains(prompt, "CHIEF COMPLAINT: headaches") {
		t.Fatal("note missing from eval prompt")
	}
}

func TestEmptyReplyIsError(t *testing.T) {
	cm := &scriptedModel{replies: []string{"   "}}
	_, err := NewEvaluator(cm).Run(context.Background(), "note")
	if err == nil || !strings.Contains(err.Error(), "no response") {
		t.Fatalf("expected empty-reply error, got %v", err)
	}
}
