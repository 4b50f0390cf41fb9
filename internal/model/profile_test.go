package model

import "testing"

func TestTreatmentComplexity_Buckets(t *testing.T) {
	tests := []struct {
		count    int
		expected string
	}{
		{0, ComplexitySimple},
		{2, ComplexitySimple},
		{3, ComplexityModerate},
		{4, ComplexityModerate},
		{5, ComplexityComplex},
		{8, ComplexityComplex},
	}

	for _, tt := range tests {
		if got := TreatmentComplexity(tt.count); got != tt.expected {
			t.Errorf("count %d: expected %s, got %s", tt.count, tt.expected, got)
		}
	}
}

func TestMoisturizerClass(t *testing.T) {
	for _, category := range []string{StepCategoryMoisturizer, StepCategoryNightCream, StepCategorySunscreen} {
		if !MoisturizerClass(category) {
			t.Errorf("expected %s to be moisturizer-class", category)
		}
	}
	for _, category := range []string{StepCategoryCleanser, StepCategorySerum, StepCategoryTreatment} {
		if MoisturizerClass(category) {
			t.Errorf("expected %s not to be moisturizer-class", category)
		}
	}
}

func TestConcernPriority_Concerns(t *testing.T) {
	priority := ConcernPriority{
		Ranked: []PrioritizedConcern{
			{Concern: ConcernAcne},
			{Concern: ConcernLargePores},
		},
	}

	labels := priority.Concerns()
	if len(labels) != 2 || labels[0] != ConcernAcne || labels[1] != ConcernLargePores {
		t.Errorf("expected labels in rank order, got %v", labels)
	}
}

func TestHasIngredient(t *testing.T) {
	profile := &PersonalizedProfile{
		Ingredients: []IngredientRecommendation{{Name: "Niacinamide"}},
	}

	if !profile.HasIngredient("Niacinamide") {
		t.Error("expected recommended ingredient reported")
	}
	if profile.HasIngredient("Retinol") {
		t.Error("expected missing ingredient not reported")
	}
}
