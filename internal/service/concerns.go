package service

import (
	"sort"

	"github.com/UtkarshSachan777/Glow-AI/internal/model"
)

// concernFormula maps a concern to a linear combination of scale traits and
// the single trait its urgency thresholds read.
type concernFormula struct {
	terms        []traitWeight
	urgencyTrait string
}

// Priority formulas per concern. Coefficients sum to 1.0 so priority scores
// stay on the 0-10 scale. Concerns not in this table score the default.
var concernFormulas = map[string]concernFormula{
	model.ConcernAcne: {
		terms: []traitWeight{
			{model.TraitBreakouts, 0.4},
			{model.TraitOiliness, 0.3},
			{model.TraitPoreSize, 0.3},
		},
		urgencyTrait: model.TraitBreakouts,
	},
	model.ConcernFineLines: {
		terms: []traitWeight{
			{model.TraitAgingSigns, 0.6},
			{model.TraitDryness, 0.2},
			{model.TraitPigmentation, 0.2},
		},
		urgencyTrait: model.TraitAgingSigns,
	},
	model.ConcernDarkSpots: {
		terms: []traitWeight{
			{model.TraitPigmentation, 0.7},
			{model.TraitAgingSigns, 0.2},
			{model.TraitSensitivity, 0.1},
		},
		urgencyTrait: model.TraitPigmentation,
	},
	model.ConcernLargePores: {
		terms: []traitWeight{
			{model.TraitPoreSize, 0.5},
			{model.TraitOiliness, 0.3},
			{model.TraitBreakouts, 0.2},
		},
		urgencyTrait: model.TraitPoreSize,
	},
	model.ConcernDullness: {
		terms: []traitWeight{
			{model.TraitPigmentation, 0.4},
			{model.TraitDryness, 0.3},
			{model.TraitAgingSigns, 0.3},
		},
		urgencyTrait: model.TraitPigmentation,
	},
	model.ConcernRedness: {
		terms: []traitWeight{
			{model.TraitSensitivity, 0.7},
			{model.TraitDryness, 0.3},
		},
		urgencyTrait: model.TraitSensitivity,
	},
	model.ConcernTexture: {
		terms: []traitWeight{
			{model.TraitPoreSize, 0.3},
			{model.TraitBreakouts, 0.3},
			{model.TraitAgingSigns, 0.2},
			{model.TraitDryness, 0.2},
		},
		urgencyTrait: model.TraitPoreSize,
	},
	model.ConcernDryness: {
		terms: []traitWeight{
			{model.TraitDryness, 0.7},
			{model.TraitSensitivity, 0.3},
		},
		urgencyTrait: model.TraitDryness,
	},
}

// defaultPriorityScore is used for concerns with no formula entry. Unknown
// labels are accepted, never rejected.
const defaultPriorityScore = 5.0

// Urgency thresholds on the concern's urgency trait.
const (
	urgencyCriticalAt = 9
	urgencyHighAt     = 7
	urgencyMediumAt   = 4
)

// PrioritizeConcerns ranks the user-selected concerns descending by their
// computed priority score. The sort is stable: equal scores keep the user's
// original selection order. Duplicate labels are dropped, keeping the first
// occurrence. The output is always a permutation of the (deduplicated) input.
func PrioritizeConcerns(q *model.QuestionnaireResponse) model.ConcernPriority {
	seen := make(map[string]bool, len(q.SelectedConcerns))
	ranked := make([]model.PrioritizedConcern, 0, len(q.SelectedConcerns))

	for _, concern := range q.SelectedConcerns {
		if seen[concern] {
			continue
		}
		seen[concern] = true

		ranked = append(ranked, model.PrioritizedConcern{
			Concern: concern,
			Score:   concernScore(q, concern),
			Urgency: concernUrgency(q, concern),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return model.ConcernPriority{
		Ranked:              ranked,
		TreatmentComplexity: model.TreatmentComplexity(len(ranked)),
	}
}

func concernScore(q *model.QuestionnaireResponse, concern string) float64 {
	formula, ok := concernFormulas[concern]
	if !ok {
		return defaultPriorityScore
	}

	var score float64
	for _, tw := range formula.terms {
		score += q.Scale(tw.trait) * tw.weight
	}
	return score
}

func concernUrgency(q *model.QuestionnaireResponse, concern string) string {
	formula, ok := concernFormulas[concern]
	if !ok {
		return model.UrgencyMedium
	}

	switch v := q.Scale(formula.urgencyTrait); {
	case v >= urgencyCriticalAt:
		return model.UrgencyCritical
	case v >= urgencyHighAt:
		return model.UrgencyHigh
	case v >= urgencyMediumAt:
		return model.UrgencyMedium
	default:
		return model.UrgencyLow
	}
}
