package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/UtkarshSachan777/Glow-AI/internal/model"
)

// WizardService drives the skin analysis questionnaire: a fixed step
// sequence, Next/Previous transitions gated on answer-presence invariants,
// and a terminal Analyzing -> Complete phase that runs the personalization
// engine. Sessions live in memory; each session's state is owned exclusively
// by its client, the mutex only guards the session map and per-session
// mutation against concurrent HTTP requests.
type WizardService struct {
	personalization *PersonalizationService
	steps           []model.WizardStep
	analysisDelay   time.Duration

	mu       sync.Mutex
	sessions map[string]*wizardEntry

	now func() time.Time
}

// wizardEntry pairs a session with its computed result.
type wizardEntry struct {
	session *model.WizardSession
	profile *model.PersonalizedProfile
}

// WizardServiceConfig holds configuration for the wizard service
type WizardServiceConfig struct {
	Personalization *PersonalizationService
	// AnalysisDelay is how long a finished session reads as Analyzing
	// before Complete. Zero is valid.
	AnalysisDelay time.Duration
}

// NewWizardService creates a new wizard service
func NewWizardService(cfg WizardServiceConfig) *WizardService {
	return &WizardService{
		personalization: cfg.Personalization,
		steps:           model.WizardSteps(),
		analysisDelay:   cfg.AnalysisDelay,
		sessions:        make(map[string]*wizardEntry),
		now:             time.Now,
	}
}

// Steps returns the fixed step sequence.
func (s *WizardService) Steps() []model.WizardStep {
	return s.steps
}

// Start creates a new wizard session. profileKey is the identity the
// eventual profile will be persisted under.
func (s *WizardService) Start(profileKey string) *model.WizardSession {
	session := &model.WizardSession{
		ID:         uuid.New().String(),
		State:      model.WizardStateStep,
		StepIndex:  0,
		Answers:    make(map[string]model.WizardAnswer),
		ProfileKey: profileKey,
		CreatedOn:  s.now().UTC(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = &wizardEntry{session: session}
	s.mu.Unlock()

	return session
}

// Get returns the session, refreshing the Analyzing -> Complete transition
// if the processing deadline has passed.
func (s *WizardService) Get(id string) (*model.WizardSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return nil, ErrWizardNotFound
	}
	s.refresh(entry.session)
	return entry.session, nil
}

// Answer records the answer for the session's current step. The answer must
// match the step kind; scale values must lie in [0,10].
func (s *WizardService) Answer(id string, answer model.WizardAnswer) (*model.WizardSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return nil, ErrWizardNotFound
	}
	session := entry.session
	s.refresh(session)

	if session.State != model.WizardStateStep {
		return nil, ErrWizardComplete
	}

	step := s.steps[session.StepIndex]
	if !step.Answered(answer) {
		return nil, ErrInvalidAnswer
	}
	if step.Kind == model.StepKindScale {
		for _, v := range answer.Scales {
			if v < model.ScaleMin || v > model.ScaleMax {
				return nil, ErrScaleOutOfRange
			}
		}
	}

	session.Answers[step.ID] = answer
	return session, nil
}

// Next advances the wizard. The transition is allowed only when the current
// step's answer-presence invariant holds. The final Next moves the session
// to Analyzing and runs the engine; after the configured delay the session
// reads as Complete.
func (s *WizardService) Next(ctx context.Context, id string) (*model.WizardSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return nil, ErrWizardNotFound
	}
	session := entry.session
	s.refresh(session)

	if session.State != model.WizardStateStep {
		return nil, ErrWizardComplete
	}

	step := s.steps[session.StepIndex]
	answer, ok := session.Answers[step.ID]
	if !ok || !step.Answered(answer) {
		return nil, ErrStepNotAnswered
	}

	if session.StepIndex < len(s.steps)-1 {
		session.StepIndex++
		return session, nil
	}

	session.State = model.WizardStateAnalyzing
	session.AnalyzingUntil = s.now().Add(s.analysisDelay)
	entry.profile = s.personalization.Analyze(ctx, session.ProfileKey, s.toResponse(session))
	s.refresh(session)
	return session, nil
}

// Previous moves the wizard one step back, clamped at the first step.
func (s *WizardService) Previous(id string) (*model.WizardSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return nil, ErrWizardNotFound
	}
	session := entry.session
	s.refresh(session)

	if session.State != model.WizardStateStep {
		return nil, ErrWizardComplete
	}

	if session.StepIndex > 0 {
		session.StepIndex--
	}
	return session, nil
}

// Result returns the computed profile once the session reads Complete.
func (s *WizardService) Result(id string) (*model.PersonalizedProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return nil, ErrWizardNotFound
	}
	s.refresh(entry.session)

	switch entry.session.State {
	case model.WizardStateComplete:
		return entry.profile, nil
	case model.WizardStateAnalyzing:
		return nil, ErrAnalysisPending
	default:
		return nil, ErrAnalysisPending
	}
}

// refresh applies the deadline-based Analyzing -> Complete transition.
// No transition ever leaves Complete.
func (s *WizardService) refresh(session *model.WizardSession) {
	if session.State == model.WizardStateAnalyzing && !s.now().Before(session.AnalyzingUntil) {
		session.State = model.WizardStateComplete
	}
}

// toResponse assembles the engine input from the collected answers. Missing
// answers become empty sets or midpoint defaults downstream; the mapping
// never fails.
func (s *WizardService) toResponse(session *model.WizardSession) *model.QuestionnaireResponse {
	q := &model.QuestionnaireResponse{
		ScaleAnswers: map[string]int{},
	}

	if a, ok := session.Answers[model.WizardStepAssessment]; ok {
		for trait, v := range a.Scales {
			q.ScaleAnswers[trait] = v
		}
	}
	if a, ok := session.Answers[model.WizardStepConcerns]; ok {
		q.SelectedConcerns = a.Values
	}
	if a, ok := session.Answers[model.WizardStepEnvironment]; ok && a.Value != "" {
		q.EnvironmentFactors = []string{a.Value}
	}
	if a, ok := session.Answers[model.WizardStepDemographics]; ok && a.Value != "" {
		q.Demographics = []string{a.Value}
	}
	if a, ok := session.Answers[model.WizardStepRoutine]; ok && a.Value != "" {
		q.RoutineHabits = []string{a.Value}
	}
	if a, ok := session.Answers[model.WizardStepGoals]; ok {
		q.Goals = a.Values
	}
	if a, ok := session.Answers[model.WizardStepPreferences]; ok {
		q.Preferences = a.Values
	}

	return q
}
