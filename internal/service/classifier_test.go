package service

import (
	"testing"

	"github.com/UtkarshSachan777/Glow-AI/internal/model"
)

// ============================================================================
// Helper Functions
// ============================================================================

func oilyQuestionnaire() *model.QuestionnaireResponse {
	return &model.QuestionnaireResponse{
		ScaleAnswers: map[string]int{
			model.TraitOiliness:     8,
			model.TraitDryness:      2,
			model.TraitSensitivity:  3,
			model.TraitBreakouts:    7,
			model.TraitAgingSigns:   1,
			model.TraitPoreSize:     7,
			model.TraitPigmentation: 2,
		},
		SelectedConcerns: []string{model.ConcernAcne, model.ConcernLargePores},
	}
}

// ============================================================================
// ClassifySkinType
// ============================================================================

func TestClassifySkinType_MidpointAnswersClassifyNormal(t *testing.T) {
	q := &model.QuestionnaireResponse{ScaleAnswers: map[string]int{}}

	result := ClassifySkinType(q)

	if result.Type != model.SkinTypeNormal {
		t.Errorf("expected normal for all-midpoint answers, got %s", result.Type)
	}
	if result.ScorePerType[model.SkinTypeNormal] != 10 {
		t.Errorf("expected normal score 10, got %f", result.ScorePerType[model.SkinTypeNormal])
	}
}

func TestClassifySkinType_OilyProfile(t *testing.T) {
	result := ClassifySkinType(oilyQuestionnaire())

	if result.Type != model.SkinTypeOily {
		t.Errorf("expected oily, got %s", result.Type)
	}
	if got := result.ScorePerType[model.SkinTypeOily]; got != 7.5 {
		t.Errorf("expected oily score 7.5, got %f", got)
	}
}

func TestClassifySkinType_ScoresAllFiveTypes(t *testing.T) {
	result := ClassifySkinType(oilyQuestionnaire())

	if len(result.ScorePerType) != len(model.SkinTypes) {
		t.Fatalf("expected %d type scores, got %d", len(model.SkinTypes), len(result.ScorePerType))
	}
	for _, skinType := range model.SkinTypes {
		if _, ok := result.ScorePerType[skinType]; !ok {
			t.Errorf("missing score for %s", skinType)
		}
	}
}

func TestClassifySkinType_ConfidenceWithinBounds(t *testing.T) {
	cases := []*model.QuestionnaireResponse{
		{ScaleAnswers: map[string]int{}},
		oilyQuestionnaire(),
		{ScaleAnswers: map[string]int{
			model.TraitOiliness:  10,
			model.TraitBreakouts: 10,
			model.TraitPoreSize:  10,
		}},
		{ScaleAnswers: map[string]int{
			model.TraitDryness:     10,
			model.TraitSensitivity: 10,
		}},
	}

	for _, q := range cases {
		result := ClassifySkinType(q)
		if result.Confidence < model.MinConfidence || result.Confidence > model.MaxConfidence {
			t.Errorf("confidence %f outside [%f, %f]", result.Confidence, model.MinConfidence, model.MaxConfidence)
		}
	}
}

func TestClassifySkinType_Deterministic(t *testing.T) {
	q := oilyQuestionnaire()

	first := ClassifySkinType(q)
	for i := 0; i < 50; i++ {
		again := ClassifySkinType(q)
		if again.Type != first.Type {
			t.Fatalf("classification changed between runs: %s vs %s", first.Type, again.Type)
		}
		if again.Confidence != first.Confidence {
			t.Fatalf("confidence changed between runs: %f vs %f", first.Confidence, again.Confidence)
		}
	}
}

func TestClassifySkinType_SensitiveProfile(t *testing.T) {
	q := &model.QuestionnaireResponse{
		ScaleAnswers: map[string]int{
			model.TraitSensitivity:  10,
			model.TraitOiliness:     2,
			model.TraitDryness:      4,
			model.TraitBreakouts:    1,
			model.TraitAgingSigns:   2,
			model.TraitPoreSize:     2,
			model.TraitPigmentation: 3,
		},
	}

	result := ClassifySkinType(q)

	if result.Type != model.SkinTypeSensitive {
		t.Errorf("expected sensitive, got %s", result.Type)
	}
}

// ============================================================================
// rankScores
// ============================================================================

func TestRankScores_TieResolvesByFixedOrder(t *testing.T) {
	scores := map[string]float64{
		model.SkinTypeOily:        7,
		model.SkinTypeDry:         7,
		model.SkinTypeSensitive:   3,
		model.SkinTypeCombination: 2,
		model.SkinTypeNormal:      5,
	}

	best, second := rankScores(scores)

	if best != model.SkinTypeOily {
		t.Errorf("expected oily to win the tie, got %s", best)
	}
	if second != 7 {
		t.Errorf("expected runner-up score 7, got %f", second)
	}
}

func TestRankScores_SecondIsRunnerUp(t *testing.T) {
	scores := map[string]float64{
		model.SkinTypeOily:        9,
		model.SkinTypeDry:         1,
		model.SkinTypeSensitive:   4,
		model.SkinTypeCombination: 6,
		model.SkinTypeNormal:      5,
	}

	best, second := rankScores(scores)

	if best != model.SkinTypeOily {
		t.Errorf("expected oily, got %s", best)
	}
	if second != 6 {
		t.Errorf("expected runner-up score 6, got %f", second)
	}
}
