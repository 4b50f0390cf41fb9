package service

import (
	"fmt"
	"strings"

	"github.com/UtkarshSachan777/Glow-AI/internal/model"
)

// Risk rule constants. All increments are fixed, nothing is learned.
const (
	// perActiveRisk is the baseline risk contribution per recommended active.
	perActiveRisk = 10
	// maxSafeActives is how many actives can be combined before the
	// over-treatment rule fires.
	maxSafeActives = 2
	// overTreatmentIncrement is added once when the rule fires.
	overTreatmentIncrement = 30
	maxRisk                = 100
)

// AssessRisk evaluates ingredient conflicts and sensitivity concerns for the
// recommendation set. More than two actives triggers the over-treatment
// warning; a sensitive classification combined with retinol or salicylic
// acid raises specific alerts; a pregnancy-safe preference conflicts with
// retinol.
func AssessRisk(skinType string, recs []model.IngredientRecommendation, q *model.QuestionnaireResponse) model.RiskAssessment {
	assessment := model.RiskAssessment{}

	actives := ActiveIngredients(recs)
	assessment.OverTreatmentRisk = perActiveRisk * len(actives)

	if len(actives) > maxSafeActives {
		assessment.OverTreatmentRisk += overTreatmentIncrement
		assessment.IngredientConflicts = append(assessment.IngredientConflicts,
			fmt.Sprintf("%s are all potent actives; introduce one at a time and never layer them in a single session",
				strings.Join(actives, ", ")))
	}
	if assessment.OverTreatmentRisk > maxRisk {
		assessment.OverTreatmentRisk = maxRisk
	}

	if skinType == model.SkinTypeSensitive {
		for _, rec := range recs {
			switch rec.Name {
			case "Retinol":
				assessment.SensitivityAlerts = append(assessment.SensitivityAlerts,
					"Retinol can trigger irritation on sensitive skin; patch test and buffer with moisturizer")
			case "Salicylic Acid":
				assessment.SensitivityAlerts = append(assessment.SensitivityAlerts,
					"Salicylic acid may sting on sensitive skin; limit to 2-3 applications per week")
			}
		}
	}

	if q.HasPreference(model.PreferencePregnancySafe) {
		for _, rec := range recs {
			if rec.Name == "Retinol" {
				assessment.IngredientConflicts = append(assessment.IngredientConflicts,
					"Retinol is not recommended during pregnancy; substitute bakuchiol or azelaic acid")
				break
			}
		}
	}

	return assessment
}
