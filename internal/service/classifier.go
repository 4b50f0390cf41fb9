package service

import (
	"math"

	"github.com/UtkarshSachan777/Glow-AI/internal/model"
)

// traitWeight pairs a scale trait with its coefficient in a type score.
type traitWeight struct {
	trait  string
	weight float64
}

// Weight tables for the weighted skin-type scores. Each type combines its
// primary trait with secondary correlated traits; coefficients per type sum
// to 1.0 so scores stay on the 0-10 scale.
var skinTypeWeights = map[string][]traitWeight{
	model.SkinTypeOily: {
		{model.TraitOiliness, 0.5},
		{model.TraitBreakouts, 0.3},
		{model.TraitPoreSize, 0.2},
	},
	model.SkinTypeDry: {
		{model.TraitDryness, 0.6},
		{model.TraitSensitivity, 0.2},
		{model.TraitAgingSigns, 0.2},
	},
	model.SkinTypeSensitive: {
		{model.TraitSensitivity, 0.7},
		{model.TraitDryness, 0.15},
		{model.TraitPigmentation, 0.15},
	},
}

// Combination skin is a binary signal: a wide oiliness/dryness gap means the
// T-zone and cheeks behave differently.
const (
	combinationGapThreshold = 3
	combinationHighBase     = 8.0
	combinationLowBase      = 2.0
	combinationWeight       = 0.9
)

// Normal skin scores by closeness to the midpoint on the three balance
// traits; weights for the mean absolute deviation.
var normalDeviationWeights = []traitWeight{
	{model.TraitOiliness, 0.4},
	{model.TraitDryness, 0.3},
	{model.TraitSensitivity, 0.3},
}

// classifierTieBreak is the fixed priority order used when two types score
// exactly equal. The first listed type wins.
var classifierTieBreak = []string{
	model.SkinTypeOily,
	model.SkinTypeDry,
	model.SkinTypeSensitive,
	model.SkinTypeCombination,
	model.SkinTypeNormal,
}

// Confidence scaling: the base confidence plus a term proportional to the
// gap between the two best-scoring types.
const (
	confidenceBase  = 0.70
	confidenceSlope = 0.28
)

// ClassifySkinType computes a weighted score for each candidate skin type
// from the seven scale traits and returns the argmax with a confidence
// derived from the gap between the top two scores. Missing traits read as
// the neutral midpoint, so classification never fails.
func ClassifySkinType(q *model.QuestionnaireResponse) model.SkinTypeClassification {
	scores := make(map[string]float64, len(model.SkinTypes))

	for skinType, weights := range skinTypeWeights {
		var score float64
		for _, tw := range weights {
			score += q.Scale(tw.trait) * tw.weight
		}
		scores[skinType] = score
	}

	gap := math.Abs(q.Scale(model.TraitOiliness) - q.Scale(model.TraitDryness))
	base := combinationLowBase
	if gap > combinationGapThreshold {
		base = combinationHighBase
	}
	scores[model.SkinTypeCombination] = base * combinationWeight

	var deviation float64
	for _, tw := range normalDeviationWeights {
		deviation += math.Abs(q.Scale(tw.trait)-model.ScaleMidpoint) * tw.weight
	}
	scores[model.SkinTypeNormal] = model.ScaleMax - deviation

	best, second := rankScores(scores)

	confidence := confidenceBase + confidenceSlope*(scores[best]-second)/model.ScaleMax
	confidence = math.Min(model.MaxConfidence, math.Max(model.MinConfidence, confidence))

	return model.SkinTypeClassification{
		Type:         best,
		Confidence:   confidence,
		ScorePerType: scores,
	}
}

// rankScores returns the winning type and the runner-up score. Exact ties
// resolve by the fixed classifierTieBreak order, never by map iteration.
func rankScores(scores map[string]float64) (best string, second float64) {
	best = classifierTieBreak[0]
	for _, t := range classifierTieBreak[1:] {
		if scores[t] > scores[best] {
			best = t
		}
	}

	second = math.Inf(-1)
	for _, t := range classifierTieBreak {
		if t == best {
			continue
		}
		if scores[t] > second {
			second = scores[t]
		}
	}
	return best, second
}
