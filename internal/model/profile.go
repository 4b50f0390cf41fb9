package model

import "time"

// Skin type labels produced by the classifier.
const (
	SkinTypeNormal      = "normal"
	SkinTypeOily        = "oily"
	SkinTypeDry         = "dry"
	SkinTypeCombination = "combination"
	SkinTypeSensitive   = "sensitive"
)

// SkinTypes lists every classifiable type.
var SkinTypes = []string{
	SkinTypeNormal,
	SkinTypeOily,
	SkinTypeDry,
	SkinTypeCombination,
	SkinTypeSensitive,
}

// Confidence bounds for the classifier output.
const (
	MinConfidence = 0.70
	MaxConfidence = 0.98
)

// SkinTypeClassification is the classifier's result. Type is always the
// argmax of ScorePerType; Confidence grows with the gap between the top two
// scores, clamped to [MinConfidence, MaxConfidence].
type SkinTypeClassification struct {
	Type         string             `json:"type"`
	Confidence   float64            `json:"confidence"`
	ScorePerType map[string]float64 `json:"score_per_type"`
}

// Urgency levels for a prioritized concern.
const (
	UrgencyLow      = "low"
	UrgencyMedium   = "medium"
	UrgencyHigh     = "high"
	UrgencyCritical = "critical"
)

// Treatment complexity derived from how many concerns were selected.
const (
	ComplexitySimple   = "simple"
	ComplexityModerate = "moderate"
	ComplexityComplex  = "complex"
)

// TreatmentComplexity buckets the selected-concern count.
func TreatmentComplexity(concernCount int) string {
	switch {
	case concernCount <= 2:
		return ComplexitySimple
	case concernCount <= 4:
		return ComplexityModerate
	default:
		return ComplexityComplex
	}
}

// PrioritizedConcern is one entry of the ranked concern list.
type PrioritizedConcern struct {
	Concern string  `json:"concern"`
	Score   float64 `json:"score"`
	Urgency string  `json:"urgency"`
}

// ConcernPriority is the prioritizer's result: the selected concerns ranked
// descending by score (stable on ties), plus the overall complexity bucket.
type ConcernPriority struct {
	Ranked              []PrioritizedConcern `json:"ranked"`
	TreatmentComplexity string               `json:"treatment_complexity"`
}

// Concerns returns just the ranked concern labels, in priority order.
func (c *ConcernPriority) Concerns() []string {
	out := make([]string, len(c.Ranked))
	for i, pc := range c.Ranked {
		out[i] = pc.Concern
	}
	return out
}

// IngredientRecommendation is one recommended ingredient with its computed
// match percentage. MatchPercent is an integer in [0, 98].
type IngredientRecommendation struct {
	Name                    string   `json:"name"`
	MatchPercent            int      `json:"match_percent"`
	Rationale               string   `json:"rationale"`
	ScientificEvidenceScore int      `json:"scientific_evidence_score"`
	SynergyPartners         []string `json:"synergy_partners,omitempty"`
	MatchedConcerns         []string `json:"matched_concerns,omitempty"`
}

// Time-of-day markers for routine steps.
const (
	TimeAM   = "AM"
	TimePM   = "PM"
	TimeBoth = "AM/PM"
)

// Routine step product categories.
const (
	StepCategoryCleanser    = "cleanser"
	StepCategorySerum       = "serum"
	StepCategoryTreatment   = "treatment"
	StepCategoryMoisturizer = "moisturizer"
	StepCategorySunscreen   = "sunscreen"
	StepCategoryNightCream  = "night cream"
)

// MoisturizerClass reports whether a step category counts as the occlusive
// final layer of a routine (moisturizer, night cream, or SPF).
func MoisturizerClass(category string) bool {
	switch category {
	case StepCategoryMoisturizer, StepCategoryNightCream, StepCategorySunscreen:
		return true
	}
	return false
}

// RoutineStep is one ordered step of the generated routine.
type RoutineStep struct {
	StepName        string `json:"step_name"`
	ProductCategory string `json:"product_category"`
	Rationale       string `json:"rationale"`
	TimeOfDay       string `json:"time_of_day"`
	ApplicationNote string `json:"application_note,omitempty"`
}

// Routine is the generated AM and PM sequence.
type Routine struct {
	Morning []RoutineStep `json:"morning"`
	Evening []RoutineStep `json:"evening"`
}

// OutcomeBucket is one entry of the predicted timeline.
type OutcomeBucket struct {
	Week       int      `json:"week"`
	Statements []string `json:"statements"`
}

// RiskAssessment flags ingredient conflicts and sensitivity concerns.
// OverTreatmentRisk is an integer in [0, 100].
type RiskAssessment struct {
	IngredientConflicts []string `json:"ingredient_conflicts,omitempty"`
	OverTreatmentRisk   int      `json:"over_treatment_risk"`
	SensitivityAlerts   []string `json:"sensitivity_alerts,omitempty"`
}

// PersonalizedProfile is the engine's aggregate output. It is created on each
// questionnaire completion and supersedes (never merges with) any previously
// persisted profile for the same key.
type PersonalizedProfile struct {
	Classification       SkinTypeClassification     `json:"classification"`
	ConcernPriority      ConcernPriority            `json:"concern_priority"`
	Ingredients          []IngredientRecommendation `json:"ingredients"`
	Routine              Routine                    `json:"routine"`
	OutcomeTimeline      []OutcomeBucket            `json:"outcome_timeline"`
	Risk                 RiskAssessment             `json:"risk"`
	PersonalizationScore int                        `json:"personalization_score"`
	AIInsights           []string                   `json:"ai_insights,omitempty"`
	// Products is the optional catalog enrichment; empty when the catalog
	// store was unavailable at scoring time.
	Products  []ScoredProduct `json:"products,omitempty"`
	CreatedOn time.Time       `json:"created_on"`
}

// HasIngredient reports whether the named ingredient was recommended.
func (p *PersonalizedProfile) HasIngredient(name string) bool {
	for _, ing := range p.Ingredients {
		if ing.Name == name {
			return true
		}
	}
	return false
}
