package service

import "github.com/UtkarshSachan777/Glow-AI/internal/model"

// Outcome timeline weeks, fixed four-bucket structure.
var outcomeWeeks = []int{1, 4, 8, 12}

// Base statements every timeline includes, per week.
var baseOutcomes = map[int][]string{
	1:  {"Skin adjusts to the new routine; mild purging is normal"},
	4:  {"First visible improvements in overall skin condition"},
	8:  {"Consistent use starts showing structural improvements"},
	12: {"Full routine benefits established; reassess and adjust"},
}

// Conditional statements gated on which ingredients were recommended.
var ingredientOutcomes = map[int][]struct {
	ingredient string
	statement  string
}{
	1: {
		{"Hyaluronic Acid", "Noticeably plumper, better-hydrated skin within days"},
		{"Ceramides", "Reduced tightness as the moisture barrier recovers"},
	},
	4: {
		{"Niacinamide", "Pores appear smaller and oil production balances out"},
		{"Salicylic Acid", "Fewer new breakouts and clearer congestion"},
		{"Azelaic Acid", "Redness and post-blemish marks begin to fade"},
	},
	8: {
		{"Vitamin C", "Visible brightening and more even skin tone"},
		{"Kojic Acid", "Dark spots lighten progressively"},
		{"Glycolic Acid", "Smoother texture and improved radiance"},
	},
	12: {
		{"Retinol", "Softened fine lines and refined texture"},
		{"Peptides", "Improved firmness and elasticity"},
	},
}

// PredictOutcomes builds the four-bucket timeline: base statements for each
// week plus the statements gated on recommended ingredients. Fully
// deterministic for a given recommendation set.
func PredictOutcomes(recs []model.IngredientRecommendation) []model.OutcomeBucket {
	recommended := make(map[string]bool, len(recs))
	for _, rec := range recs {
		recommended[rec.Name] = true
	}

	timeline := make([]model.OutcomeBucket, 0, len(outcomeWeeks))
	for _, week := range outcomeWeeks {
		statements := append([]string{}, baseOutcomes[week]...)
		for _, gated := range ingredientOutcomes[week] {
			if recommended[gated.ingredient] {
				statements = append(statements, gated.statement)
			}
		}
		timeline = append(timeline, model.OutcomeBucket{
			Week:       week,
			Statements: statements,
		})
	}
	return timeline
}
