package service

import "github.com/UtkarshSachan777/Glow-AI/internal/model"

// Cleanser choice per classified skin type, shared by the AM and PM rules.
var cleanserByType = map[string]struct {
	name      string
	rationale string
}{
	model.SkinTypeOily:        {"Gel Cleanser", "Oil-free gel formula removes excess sebum without stripping"},
	model.SkinTypeDry:         {"Cream Cleanser", "Cream base cleans without disturbing the moisture barrier"},
	model.SkinTypeCombination: {"Balancing Cleanser", "Balances the oily T-zone against drier cheeks"},
	model.SkinTypeSensitive:   {"Gentle pH-Balanced Cleanser", "Fragrance-free, pH-balanced formula avoids triggering reactivity"},
	model.SkinTypeNormal:      {"Foam Cleanser", "Light daily foam keeps skin fresh without overcorrecting"},
}

// Moisturizer choice per classified skin type.
var moisturizerByType = map[string]struct {
	name      string
	rationale string
}{
	model.SkinTypeOily:        {"Lightweight Gel Moisturizer", "Non-comedogenic hydration that won't clog pores"},
	model.SkinTypeDry:         {"Rich Barrier Cream", "Occlusive cream restores and seals the moisture barrier"},
	model.SkinTypeCombination: {"Dual-Action Moisturizer", "Hydrates dry zones while staying light on the T-zone"},
	model.SkinTypeSensitive:   {"Soothing Moisturizer", "Minimal ingredient list with barrier-repairing ceramides"},
	model.SkinTypeNormal:      {"Daily Moisturizer", "Maintains healthy hydration levels"},
}

// GenerateRoutine assembles the AM and PM routine from fixed rule tables.
// The order is significant: cleansing first, treatments in the middle, a
// moisturizer-class step last in both sub-sequences.
func GenerateRoutine(skinType string, priority model.ConcernPriority) model.Routine {
	concerns := priority.Concerns()

	hasAcne := containsString(concerns, model.ConcernAcne)
	hasAging := containsString(concerns, model.ConcernFineLines)
	hasPigment := containsString(concerns, model.ConcernDarkSpots) ||
		containsString(concerns, model.ConcernDullness)

	cleanser := cleanserByType[skinType]
	moisturizer := moisturizerByType[skinType]

	morning := []model.RoutineStep{
		{
			StepName:        cleanser.name,
			ProductCategory: model.StepCategoryCleanser,
			Rationale:       cleanser.rationale,
			TimeOfDay:       model.TimeAM,
			ApplicationNote: "Massage onto damp skin for 30 seconds, rinse with lukewarm water",
		},
	}

	if hasPigment {
		morning = append(morning, model.RoutineStep{
			StepName:        "Brightening Antioxidant Serum",
			ProductCategory: model.StepCategorySerum,
			Rationale:       "Vitamin C protects against daytime free-radical damage and fades discoloration",
			TimeOfDay:       model.TimeAM,
			ApplicationNote: "Apply 3-4 drops to dry skin before moisturizer",
		})
	}

	morning = append(morning,
		model.RoutineStep{
			StepName:        moisturizer.name,
			ProductCategory: model.StepCategoryMoisturizer,
			Rationale:       moisturizer.rationale,
			TimeOfDay:       model.TimeBoth,
			ApplicationNote: "Apply while skin is still slightly damp",
		},
		model.RoutineStep{
			StepName:        "Broad-Spectrum SPF 30+",
			ProductCategory: model.StepCategorySunscreen,
			Rationale:       "Daily UV protection prevents new damage and lets treatments work",
			TimeOfDay:       model.TimeAM,
			ApplicationNote: "Two finger-lengths for face and neck, reapply every 2 hours outdoors",
		},
	)

	evening := []model.RoutineStep{
		{
			StepName:        "Double Cleanse",
			ProductCategory: model.StepCategoryCleanser,
			Rationale:       "Oil cleanser dissolves sunscreen and buildup before the water-based cleanse",
			TimeOfDay:       model.TimePM,
			ApplicationNote: "Oil cleanser first, then your " + cleanser.name,
		},
	}

	// BHA and retinol are scheduled on alternating nights so they never
	// layer in the same session.
	treatmentNote := "Start 2-3 nights per week, increase as tolerated"
	if hasAcne && hasAging {
		treatmentNote = "Alternate nights with your other treatment, never layer both"
	}

	if hasAcne {
		evening = append(evening, model.RoutineStep{
			StepName:        "BHA Treatment",
			ProductCategory: model.StepCategoryTreatment,
			Rationale:       "Salicylic acid clears congestion inside pores overnight",
			TimeOfDay:       model.TimePM,
			ApplicationNote: treatmentNote,
		})
	}
	if hasAging {
		evening = append(evening, model.RoutineStep{
			StepName:        "Retinol Treatment",
			ProductCategory: model.StepCategoryTreatment,
			Rationale:       "Retinol stimulates collagen and accelerates cell turnover while you sleep",
			TimeOfDay:       model.TimePM,
			ApplicationNote: treatmentNote,
		})
	}

	evening = append(evening, model.RoutineStep{
		StepName:        "Night Moisturizer",
		ProductCategory: model.StepCategoryNightCream,
		Rationale:       "Richer overnight formula supports repair during the skin's recovery window",
		TimeOfDay:       model.TimePM,
		ApplicationNote: "Final step; wait a few minutes after treatments before applying",
	})

	return model.Routine{Morning: morning, Evening: evening}
}
