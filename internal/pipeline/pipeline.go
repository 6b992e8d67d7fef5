// Package pipeline runs the five stages strictly in order: intake,
// clarifier, (answer collection), summary, routing, eval. There is no
// branching, no retry and no backtracking; a stage failure halts the run
// and the partially populated session record is returned for inspection.
package pipeline

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"go.uber.org/zap"

	"github.com/mihikajadhav02/NiraCare/internal/agents"
	"github.com/mihikajadhav02/NiraCare/internal/session"
)

// AnswerFunc collects answers to the clarifying questions between the
// clarifier and summary stages. The interactive CLI passes a prompt-backed
// collector; demo runs pass AutoAnswers.
type AnswerFunc func(questions []string) ([]string, error)

// AutoAnswers fills every question with a placeholder so the pipeline can
// run end to end without a user present.
func AutoAnswers(questions []string) ([]string, error) {
	answers := make([]string, len(questions))
	for i, q := range questions {
		answers[i] = "Demo answer for: " + q
	}
	return answers, nil
}

type Runner struct {
	intake    *agents.Intake
	clarifier *agents.Clarifier
	summary   *agents.Summary
	routing   *agents.Routing
	eval      *agents.Evaluator
	log       *zap.SugaredLogger
}

func NewRunner(cm model.BaseChatModel, log *zap.SugaredLogger) *Runner {
	return &Runner{
		intake:    agents.NewIntake(cm),
		clarifier: agents.NewClarifier(cm),
		summary:   agents.NewSummary(cm),
		routing:   agents.NewRouting(cm),
		eval:      agents.NewEvaluator(cm),
		log:       log,
	}
}

// Run executes the full pipeline for one symptom description. The returned
// session always reflects every stage that completed, including when err is
// non-nil.
func (r *Runner) Run(ctx context.Context, rawText string, collect AnswerFunc) (*session.Session, error) {
	sess := session.New(rawText)

	r.log.Infow("stage start", "stage", "intake")
	symptoms, err := r.intake.Run(ctx, rawText)
	if err != nil {
		r.log.Errorw("stage failed", "stage", "intake", "err", err)
		return sess, fmt.Errorf("intake stage: %w", err)
	}
	if err := sess.SetSymptoms(symptoms); err != nil {
		return sess, err
	}
	r.log.Infow("stage done", "stage", "intake", "symptoms", len(symptoms))

	r.log.Infow("stage start", "stage", "clarifier")
	questions, err := r.clarifier.Run(ctx, rawText, sess.Symptoms)
	if err != nil {
		r.log.Errorw("stage failed", "stage", "clarifier", "err", err)
		return sess, fmt.Errorf("clarifier stage: %w", err)
	}
	if err := sess.SetQuestions(questions); err != nil {
		return sess, err
	}
	r.log.Infow("stage done", "stage", "clarifier", "questions", len(questions))

	answers, err := collect(sess.Questions)
	if err != nil {
		return sess, fmt.Errorf("collect answers: %w", err)
	}
	if err := sess.SetAnswers(answers); err != nil {
		return sess, err
	}

	r.log.Infow("stage start", "stage", "summary")
	note, err := r.summary.Run(ctx, rawText, sess.Symptoms, sess.Questions, sess.Answers)
	if err != nil {
		r.log.Errorw("stage failed", "stage", "summary", "err", err)
		return sess, fmt.Errorf("summary stage: %w", err)
	}
	if err := sess.SetDoctorNote(note); err != nil {
		return sess, err
	}
	r.log.Infow("stage done", "stage", "summary")

	// Routing failure is non-fatal: guidance is a bonus, the note and its
	// evaluation still stand without it.
	r.log.Infow("stage start", "stage", "routing")
	guidance, err := r.routing.Run(ctx, rawText, sess.Symptoms)
	if err != nil {
		r.log.Warnw("stage failed", "stage", "routing", "err", err)
	} else if err := sess.SetRouting(guidance); err != nil {
		return sess, err
	} else {
		r.log.Infow("stage done", "stage", "routing", "doctors", len(guidance.RecommendedDoctors))
	}

	r.log.Infow("stage start", "stage", "eval")
	verdict, err := r.eval.Run(ctx, sess.DoctorNote)
	if err != nil {
		r.log.Errorw("stage failed", "stage", "eval", "err", err)
		return sess, fmt.Errorf("eval stage: %w", err)
	}
	if err := sess.SetEval(verdict); err != nil {
		return sess, err
	}
	r.log.Infow("stage done", "stage", "eval", "score", verdict.Score)

	return sess, nil
}
