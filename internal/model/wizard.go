package model

import "time"

// Wizard step kinds. The kind decides which answer-presence invariant gates
// the Next transition.
const (
	StepKindSingle   = "single"
	StepKindMultiple = "multiple"
	StepKindScale    = "scale"
)

// Wizard lifecycle states. While answering, the state is the zero-based step
// index rendered as "step"; Analyzing and Complete are terminal-phase states.
const (
	WizardStateStep      = "step"
	WizardStateAnalyzing = "analyzing"
	WizardStateComplete  = "complete"
)

// WizardStep is one screen of the analysis questionnaire.
type WizardStep struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Question string   `json:"question"`
	Kind     string   `json:"kind"`
	Options  []string `json:"options,omitempty"`
	// Traits is set for scale steps: every listed trait must be answered.
	Traits []string `json:"traits,omitempty"`
}

// WizardAnswer holds the answer for a single step. Exactly one field is
// populated, matching the step kind.
type WizardAnswer struct {
	Value  string         `json:"value,omitempty"`
	Values []string       `json:"values,omitempty"`
	Scales map[string]int `json:"scales,omitempty"`
}

// WizardSession is a wizard's progression state. Each session owns its answer
// set exclusively; there is no cross-session shared state.
type WizardSession struct {
	ID    string `json:"id"`
	State string `json:"state"`
	// StepIndex is meaningful only while State == WizardStateStep.
	StepIndex int                     `json:"step_index"`
	Answers   map[string]WizardAnswer `json:"answers"`
	// AnalyzingUntil is the deadline after which an Analyzing session
	// reads as Complete.
	AnalyzingUntil time.Time `json:"analyzing_until"`
	// ProfileKey is the identity key the computed profile is persisted
	// under; never exposed to clients.
	ProfileKey string    `json:"-"`
	CreatedOn  time.Time `json:"created_on"`
}

// Wizard step IDs.
const (
	WizardStepAssessment   = "skin-assessment"
	WizardStepConcerns     = "concerns"
	WizardStepEnvironment  = "environment"
	WizardStepDemographics = "demographics"
	WizardStepRoutine      = "routine"
	WizardStepGoals        = "goals"
	WizardStepPreferences  = "preferences"
)

// WizardSteps returns the fixed step sequence of the skin analysis.
func WizardSteps() []WizardStep {
	return []WizardStep{
		{
			ID:       WizardStepAssessment,
			Title:    "Skin Assessment",
			Question: "Rate each characteristic of your skin from 0 to 10",
			Kind:     StepKindScale,
			Traits:   ScaleTraits,
		},
		{
			ID:       WizardStepConcerns,
			Title:    "Skin Concerns",
			Question: "What are your main skin concerns? (Select all that apply)",
			Kind:     StepKindMultiple,
			Options: []string{
				ConcernAcne, ConcernFineLines, ConcernDarkSpots,
				ConcernLargePores, ConcernDullness, ConcernRedness,
				ConcernTexture, ConcernDryness,
			},
		},
		{
			ID:       WizardStepEnvironment,
			Title:    "Environment",
			Question: "Which climate do you live in?",
			Kind:     StepKindSingle,
			Options:  []string{"Humid", "Dry", "Tropical", "Temperate", "Cold"},
		},
		{
			ID:       WizardStepDemographics,
			Title:    "About You",
			Question: "Which age group are you in?",
			Kind:     StepKindSingle,
			Options:  []string{"Under 20", "20s", "30s", "40s", "50+"},
		},
		{
			ID:       WizardStepRoutine,
			Title:    "Current Routine",
			Question: "How extensive is your current skincare routine?",
			Kind:     StepKindSingle,
			Options: []string{
				"Just cleanser",
				"Basic (cleanser + moisturizer)",
				"Moderate (3-5 products)",
				"Extensive (6+ products)",
			},
		},
		{
			ID:       WizardStepGoals,
			Title:    "Goals",
			Question: "What do you want to achieve with your skincare routine?",
			Kind:     StepKindMultiple,
			Options: []string{
				"Prevent aging", "Clear acne", "Brighten skin",
				"Hydrate skin", "Minimize pores", "Even skin tone",
			},
		},
		{
			ID:       WizardStepPreferences,
			Title:    "Preferences",
			Question: "Any product preferences? (Select all that apply)",
			Kind:     StepKindMultiple,
			Options: []string{
				PreferencePregnancySafe, PreferenceFragranceFree,
				PreferenceScienceBacked, PreferenceSimpleRoutine,
				"No preference",
			},
		},
	}
}

// Answered reports whether the answer satisfies the step's presence
// invariant: single-select needs a non-empty value, multi-select a non-empty
// set, scale steps an entry for every required trait.
func (s *WizardStep) Answered(a WizardAnswer) bool {
	switch s.Kind {
	case StepKindSingle:
		return a.Value != ""
	case StepKindMultiple:
		return len(a.Values) > 0
	case StepKindScale:
		for _, trait := range s.Traits {
			if _, ok := a.Scales[trait]; !ok {
				return false
			}
		}
		return true
	}
	return false
}
