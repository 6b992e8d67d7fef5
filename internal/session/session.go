package session

import "fmt"

// Symptom is one structured entry extracted by the intake stage.
type Symptom struct {
	Name         string `json:"name"`
	Severity     string `json:"severity"`      // mild|moderate|severe|unknown
	Frequency    string `json:"frequency"`     // e.g. "daily", "3 times per week"
	SinceWhen    string `json:"since_when"`    // e.g. "2 weeks ago"
	CycleRelated string `json:"cycle_related"` // yes|no|unknown
	Notes        string `json:"notes"`
}

// DoctorSuggestion is one recommended practitioner type from the routing stage.
type DoctorSuggestion struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

// TestCategory is one general test category from the routing stage.
type TestCategory struct {
	Category string `json:"category"`
	Purpose  string `json:"purpose"`
}

// RoutingGuidance is the routing stage output.
type RoutingGuidance struct {
	RecommendedDoctors     []DoctorSuggestion `json:"recommended_doctors"`
	PossibleTestCategories []TestCategory     `json:"possible_test_categories"`
	UrgencyNote            string             `json:"urgency_note"`
}

// Evaluation is the eval stage verdict on the generated note.
type Evaluation struct {
	Score                float64  `json:"score"`
	MissingFields        []string `json:"missing_fields"`
	SuggestedImprovement string   `json:"suggested_improvement"`
}

// Session accumulates the output of every pipeline stage for one run.
// Fields are write-once: setters refuse a second assignment, so a stage
// can never revise what an earlier stage produced.
type Session struct {
	RawText    string
	Symptoms   []Symptom
	Questions  []string
	Answers    []string
	DoctorNote string
	Routing    *RoutingGuidance
	Eval       *Evaluation

	symptomsSet  bool
	questionsSet bool
	answersSet   bool
}

func New(rawText string) *Session {
	return &Session{RawText: rawText}
}

func (s *Session) SetSymptoms(symptoms []Symptom) error {
	if s.symptomsSet {
		return fmt.Errorf("session: symptoms already set")
	}
	s.Symptoms = symptoms
	s.symptomsSet = true
	return nil
}

func (s *Session) SetQuestions(questions []string) error {
	if s.questionsSet {
		return fmt.Errorf("session: questions already set")
	}
	s.Questions = questions
	s.questionsSet = true
	return nil
}

// SetAnswers records the user answers, positionally matched to Questions.
func (s *Session) SetAnswers(answers []string) error {
	if s.answersSet {
		return fmt.Errorf("session: answers already set")
	}
	if len(answers) != len(s.Questions) {
		return fmt.Errorf("session: %d answers for %d questions", len(answers), len(s.Questions))
	}
	s.Answers = answers
	s.answersSet = true
	return nil
}

func (s *Session) SetDoctorNote(note string) error {
	if s.DoctorNote != "" {
		return fmt.Errorf("session: doctor note already set")
	}
	s.DoctorNote = note
	return nil
}

func (s *Session) SetRouting(g *RoutingGuidance) error {
	if s.Routing != nil {
		return fmt.Errorf("session: routing guidance already set")
	}
	s.Routing = g
	return nil
}

func (s *Session) SetEval(e *Evaluation) error {
	if s.Eval != nil {
		return fmt.Errorf("session: evaluation already set")
	}
	s.Eval = e
	return nil
}

// Snapshot returns the record contents as a map for inspection.
func (s *Session) Snapshot() map[string]any {
	return map[string]any{
		"raw_text":    s.RawText,
		"symptoms":    s.Symptoms,
		"questions":   s.Questions,
		"answers":     s.Answers,
		"doctor_note": s.DoctorNote,
		"routing":     s.Routing,
		"eval":        s.Eval,
	}
}
