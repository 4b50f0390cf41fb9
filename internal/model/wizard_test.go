package model

import "testing"

func TestWizardSteps_FixedSequence(t *testing.T) {
	steps := WizardSteps()

	expected := []string{
		WizardStepAssessment, WizardStepConcerns, WizardStepEnvironment,
		WizardStepDemographics, WizardStepRoutine, WizardStepGoals,
		WizardStepPreferences,
	}
	if len(steps) != len(expected) {
		t.Fatalf("expected %d steps, got %d", len(expected), len(steps))
	}
	for i, id := range expected {
		if steps[i].ID != id {
			t.Errorf("step %d: expected %s, got %s", i, id, steps[i].ID)
		}
	}
}

func TestWizardStep_Answered(t *testing.T) {
	single := WizardStep{Kind: StepKindSingle}
	if single.Answered(WizardAnswer{}) {
		t.Error("single: empty value should not count as answered")
	}
	if !single.Answered(WizardAnswer{Value: "Humid"}) {
		t.Error("single: non-empty value should count as answered")
	}

	multiple := WizardStep{Kind: StepKindMultiple}
	if multiple.Answered(WizardAnswer{}) {
		t.Error("multiple: empty set should not count as answered")
	}
	if !multiple.Answered(WizardAnswer{Values: []string{ConcernAcne}}) {
		t.Error("multiple: non-empty set should count as answered")
	}

	scale := WizardStep{Kind: StepKindScale, Traits: []string{TraitOiliness, TraitDryness}}
	if scale.Answered(WizardAnswer{Scales: map[string]int{TraitOiliness: 5}}) {
		t.Error("scale: missing trait should not count as answered")
	}
	if !scale.Answered(WizardAnswer{Scales: map[string]int{TraitOiliness: 5, TraitDryness: 2}}) {
		t.Error("scale: every trait present should count as answered")
	}
}
