package service

import (
	"context"
	"errors"
	"testing"

	"github.com/UtkarshSachan777/Glow-AI/internal/model"
)

// ============================================================================
// Mock Lookup
// ============================================================================

type mockProductLookup struct {
	getFunc func(ctx context.Context, id string) (*model.Product, error)
}

func (m *mockProductLookup) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

// oilyProfile is a minimal computed profile for scoring tests: oily skin with
// acne and large pores as ranked concerns.
func oilyProfile() *model.PersonalizedProfile {
	return &model.PersonalizedProfile{
		Classification: model.SkinTypeClassification{Type: model.SkinTypeOily},
		ConcernPriority: model.ConcernPriority{
			Ranked: []model.PrioritizedConcern{
				{Concern: model.ConcernAcne},
				{Concern: model.ConcernLargePores},
			},
		},
	}
}

// ============================================================================
// ScoreProduct
// ============================================================================

func TestScoreProduct_FullOverlapExplicitType(t *testing.T) {
	product := &model.Product{
		Name:                  "Exfoliating Toner",
		Rating:                4.4,
		Benefits:              []string{"acne-fighting", "pore-minimizing"},
		SkinTypes:             []string{model.SkinTypeOily},
		ClinicalEvidenceScore: 92,
	}

	// 2/2 overlap (40) + evidence 92*0.25 (23) + rating 4.4*4 (17.6) + type (15)
	percent, reasons := ScoreProduct(product, oilyProfile())

	if percent != 96 {
		t.Errorf("expected match 96, got %d", percent)
	}
	if len(reasons) == 0 || reasons[0] != "Exceptional compatibility with your skin profile" {
		t.Errorf("expected exceptional tier reason, got %v", reasons)
	}
	if len(reasons) != 3 {
		t.Errorf("expected 3 reasons, got %d", len(reasons))
	}
}

func TestScoreProduct_PartialOverlap(t *testing.T) {
	product := &model.Product{
		Name:                  "Spot Gel",
		Rating:                4.4,
		Benefits:              []string{"acne-fighting"},
		SkinTypes:             []string{model.SkinTypeOily},
		ClinicalEvidenceScore: 92,
	}

	// 1/2 overlap (20) + 23 + 17.6 + 15 = 75.6
	percent, reasons := ScoreProduct(product, oilyProfile())

	if percent != 76 {
		t.Errorf("expected match 76, got %d", percent)
	}
	hasConcernReason := false
	hasTypeReason := false
	for _, r := range reasons {
		if r == "Targets your primary skin concerns" {
			hasConcernReason = true
		}
		if r == "Formulated for oily skin" {
			hasTypeReason = true
		}
	}
	if !hasConcernReason || !hasTypeReason {
		t.Errorf("expected concern and type reasons, got %v", reasons)
	}
}

func TestScoreProduct_CappedAtMax(t *testing.T) {
	product := &model.Product{
		Name:                  "Perfect Serum",
		Rating:                5.0,
		Benefits:              []string{"acne-fighting", "pore-minimizing"},
		SkinTypes:             []string{model.SkinTypeOily},
		ClinicalEvidenceScore: 100,
	}

	percent, _ := ScoreProduct(product, oilyProfile())

	if percent != maxMatchPercent {
		t.Errorf("expected cap at %d, got %d", maxMatchPercent, percent)
	}
}

func TestScoreProduct_AllTypesBonus(t *testing.T) {
	product := &model.Product{
		Name:                  "Everyday Cleanser",
		Rating:                4.0,
		SkinTypes:             []string{model.SkinTypeAll},
		ClinicalEvidenceScore: 80,
	}
	profile := oilyProfile()
	profile.ConcernPriority.Ranked = nil

	// evidence 20 + rating 16 + all-types 8, no overlap term without concerns
	percent, _ := ScoreProduct(product, profile)

	if percent != 44 {
		t.Errorf("expected match 44, got %d", percent)
	}
}

// ============================================================================
// UsageTimeline
// ============================================================================

func TestUsageTimeline_Rules(t *testing.T) {
	tests := []struct {
		name     string
		product  model.Product
		expected string
	}{
		{"twice daily frequency", model.Product{Name: "Cleanser", UsageFrequency: model.UsageTwiceDaily},
			"Use morning and evening for optimal results"},
		{"weekly frequency", model.Product{Name: "Mask", UsageFrequency: model.UsageWeekly},
			"Use 1-2 times per week as a treatment"},
		{"serum by name", model.Product{Name: "Advanced Retinol Serum"},
			"Apply daily in the evening, introduce gradually"},
		{"moisturizer by name", model.Product{Name: "Renewal Night Moisturizer"},
			"Use twice daily as the final step in your routine"},
		{"default", model.Product{Name: "Exfoliating Toner"},
			"Use daily as part of your skincare routine"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UsageTimeline(&tt.product); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

// ============================================================================
// Search
// ============================================================================

func TestCatalogSearch_NoProfileKeepsRepositoryOrder(t *testing.T) {
	catalog := &mockCatalogStore{
		searchFunc: func(ctx context.Context, filter model.ProductFilter) ([]*model.Product, error) {
			return []*model.Product{
				{ID: "product:1", Name: "Gentle Foam Cleanser", Rating: 4.7},
				{ID: "product:2", Name: "Hydrating Face Mask", Rating: 4.5},
			}, nil
		},
	}
	svc := NewCatalogService(CatalogServiceConfig{Products: catalog})

	results, err := svc.Search(context.Background(), model.ProductFilter{}, nil)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Product.ID != "product:1" {
		t.Errorf("expected repository order preserved, got %s first", results[0].Product.ID)
	}
	if results[0].MatchPercent != 0 {
		t.Errorf("expected no match score without a profile, got %d", results[0].MatchPercent)
	}
	if results[0].UsageTimeline == "" {
		t.Error("expected usage timeline even without a profile")
	}
}

func TestCatalogSearch_WithProfileSortsByMatch(t *testing.T) {
	catalog := &mockCatalogStore{
		searchFunc: func(ctx context.Context, filter model.ProductFilter) ([]*model.Product, error) {
			return []*model.Product{
				{ID: "product:low", Name: "Plain Balm", Rating: 3.0, ClinicalEvidenceScore: 50},
				{ID: "product:high", Name: "Exfoliating Toner", Rating: 4.4,
					Benefits:              []string{"acne-fighting", "pore-minimizing"},
					SkinTypes:             []string{model.SkinTypeOily},
					ClinicalEvidenceScore: 92},
			}, nil
		},
	}
	svc := NewCatalogService(CatalogServiceConfig{Products: catalog})

	results, err := svc.Search(context.Background(), model.ProductFilter{}, oilyProfile())
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if results[0].Product.ID != "product:high" {
		t.Errorf("expected best match first, got %s", results[0].Product.ID)
	}
	if results[0].MatchPercent <= results[1].MatchPercent {
		t.Errorf("expected descending match order, got %d then %d",
			results[0].MatchPercent, results[1].MatchPercent)
	}
}

func TestCatalogSearch_StoreFailurePropagates(t *testing.T) {
	catalog := &mockCatalogStore{
		searchFunc: func(ctx context.Context, filter model.ProductFilter) ([]*model.Product, error) {
			return nil, errors.New("query timeout")
		},
	}
	svc := NewCatalogService(CatalogServiceConfig{Products: catalog})

	_, err := svc.Search(context.Background(), model.ProductFilter{}, nil)
	if err == nil {
		t.Error("expected store error to propagate")
	}
}

// ============================================================================
// Match
// ============================================================================

func TestCatalogMatch_RequiresProfile(t *testing.T) {
	svc := NewCatalogService(CatalogServiceConfig{Lookup: &mockProductLookup{}})

	_, err := svc.Match(context.Background(), "product:1", nil)
	if !errors.Is(err, ErrProfileRequired) {
		t.Errorf("expected ErrProfileRequired, got %v", err)
	}
}

func TestCatalogMatch_UnknownProduct(t *testing.T) {
	svc := NewCatalogService(CatalogServiceConfig{Lookup: &mockProductLookup{}})

	_, err := svc.Match(context.Background(), "product:missing", oilyProfile())
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCatalogMatch_ScoresProduct(t *testing.T) {
	lookup := &mockProductLookup{
		getFunc: func(ctx context.Context, id string) (*model.Product, error) {
			return &model.Product{
				ID: id, Name: "Exfoliating Toner", Rating: 4.4,
				Benefits:              []string{"acne-fighting", "pore-minimizing"},
				SkinTypes:             []string{model.SkinTypeOily},
				ClinicalEvidenceScore: 92,
			}, nil
		},
	}
	svc := NewCatalogService(CatalogServiceConfig{Lookup: lookup})

	scored, err := svc.Match(context.Background(), "product:1", oilyProfile())
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}

	if scored.MatchPercent != 96 {
		t.Errorf("expected match 96, got %d", scored.MatchPercent)
	}
	if scored.UsageTimeline == "" {
		t.Error("expected usage timeline")
	}
}
