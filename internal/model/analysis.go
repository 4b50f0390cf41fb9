package model

// Scale trait keys for the 0-10 self-reported skin ratings.
const (
	TraitOiliness     = "oiliness"
	TraitDryness      = "dryness"
	TraitSensitivity  = "sensitivity"
	TraitBreakouts    = "breakouts"
	TraitAgingSigns   = "aging_signs"
	TraitPoreSize     = "pore_size"
	TraitPigmentation = "pigmentation"
)

// ScaleTraits lists every trait the questionnaire collects, in display order.
var ScaleTraits = []string{
	TraitOiliness,
	TraitDryness,
	TraitSensitivity,
	TraitBreakouts,
	TraitAgingSigns,
	TraitPoreSize,
	TraitPigmentation,
}

// Scale bounds and the neutral midpoint substituted for missing answers.
const (
	ScaleMin      = 0
	ScaleMax      = 10
	ScaleMidpoint = 5
)

// Well-known concern labels. Concerns outside this list are still accepted
// and scored with the default priority.
const (
	ConcernAcne       = "Active acne/breakouts"
	ConcernFineLines  = "Fine lines & wrinkles"
	ConcernDarkSpots  = "Dark spots & pigmentation"
	ConcernLargePores = "Large pores"
	ConcernDullness   = "Dullness & uneven tone"
	ConcernRedness    = "Redness & irritation"
	ConcernTexture    = "Uneven texture"
	ConcernDryness    = "Dryness & dehydration"
)

// QuestionnaireResponse is the engine's input, assembled by the wizard or
// posted directly by the presentation layer. It is consumed once per analysis.
type QuestionnaireResponse struct {
	// ScaleAnswers maps trait name to a 0-10 rating. Missing traits are
	// read as the neutral midpoint.
	ScaleAnswers map[string]int `json:"scale_answers"`
	// SelectedConcerns is in user-selection order, not priority order.
	// Duplicates are not allowed.
	SelectedConcerns   []string `json:"selected_concerns"`
	EnvironmentFactors []string `json:"environment_factors,omitempty"`
	Demographics       []string `json:"demographics,omitempty"`
	RoutineHabits      []string `json:"routine_habits,omitempty"`
	Goals              []string `json:"goals,omitempty"`
	Preferences        []string `json:"preferences,omitempty"`
}

// Scale returns the answered value for a trait, clamped to [0,10], or the
// neutral midpoint when the trait was not answered. Incomplete input is a
// silent-recovery case, never an error.
func (q *QuestionnaireResponse) Scale(trait string) float64 {
	v, ok := q.ScaleAnswers[trait]
	if !ok {
		return ScaleMidpoint
	}
	if v < ScaleMin {
		return ScaleMin
	}
	if v > ScaleMax {
		return ScaleMax
	}
	return float64(v)
}

// HasPreference reports whether the user selected the given preference label.
func (q *QuestionnaireResponse) HasPreference(label string) bool {
	for _, p := range q.Preferences {
		if p == label {
			return true
		}
	}
	return false
}

// Preference labels consumed by the risk assessor and recommender.
const (
	PreferencePregnancySafe = "Pregnancy-safe"
	PreferenceFragranceFree = "Fragrance-free"
	PreferenceScienceBacked = "Science-backed formulas"
	PreferenceSimpleRoutine = "Minimal routine"
)
