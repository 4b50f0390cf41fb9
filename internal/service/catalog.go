package service

import (
	"context"
	"math"
	"strings"

	"github.com/UtkarshSachan777/Glow-AI/internal/model"
)

// CatalogService answers product queries, optionally enriched with the
// engine's per-product match scoring.
type CatalogService struct {
	products CatalogStore
	byID     ProductLookup
}

// ProductLookup fetches a single catalog record.
type ProductLookup interface {
	GetByID(ctx context.Context, id string) (*model.Product, error)
}

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	Products CatalogStore
	Lookup   ProductLookup
}

// NewCatalogService creates a new catalog service
func NewCatalogService(cfg CatalogServiceConfig) *CatalogService {
	return &CatalogService{
		products: cfg.Products,
		byID:     cfg.Lookup,
	}
}

// Search returns catalog products for the filter. When a profile is given,
// each product carries its match score and the result is re-sorted by match
// descending; without a profile the repository order (rating) is kept.
func (s *CatalogService) Search(ctx context.Context, filter model.ProductFilter, profile *model.PersonalizedProfile) ([]model.ScoredProduct, error) {
	products, err := s.products.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	if profile == nil {
		scored := make([]model.ScoredProduct, 0, len(products))
		for _, product := range products {
			scored = append(scored, model.ScoredProduct{
				Product:       *product,
				UsageTimeline: UsageTimeline(product),
			})
		}
		return scored, nil
	}

	return scoreProducts(products, profile), nil
}

// Match scores a single product against the profile.
func (s *CatalogService) Match(ctx context.Context, productID string, profile *model.PersonalizedProfile) (*model.ScoredProduct, error) {
	if profile == nil {
		return nil, ErrProfileRequired
	}

	product, err := s.byID.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	percent, reasons := ScoreProduct(product, profile)
	return &model.ScoredProduct{
		Product:       *product,
		MatchPercent:  percent,
		MatchReasons:  reasons,
		UsageTimeline: UsageTimeline(product),
	}, nil
}

// concernBenefits maps a concern label to the catalog benefit tags that
// address it.
var concernBenefits = map[string][]string{
	model.ConcernAcne:       {"acne-fighting", "oil-control", "exfoliating"},
	model.ConcernFineLines:  {"anti-aging", "firming"},
	model.ConcernDarkSpots:  {"brightening", "even-tone"},
	model.ConcernLargePores: {"pore-minimizing", "oil-control"},
	model.ConcernDullness:   {"brightening", "exfoliating"},
	model.ConcernRedness:    {"soothing", "barrier-repair"},
	model.ConcernTexture:    {"exfoliating", "smoothing"},
	model.ConcernDryness:    {"hydrating", "barrier-repair"},
}

// Product match formula constants. Every term is deterministic: concern
// coverage, clinical evidence, community rating, and skin-type fit.
const (
	productOverlapWeight  = 40.0
	productEvidenceWeight = 0.25
	productRatingWeight   = 4.0
	productTypeBonus      = 15.0
	productAllTypesBonus  = 8.0
)

// ScoreProduct computes the AI match percentage and the match reasons for a
// product against a computed profile.
func ScoreProduct(product *model.Product, profile *model.PersonalizedProfile) (int, []string) {
	concerns := profile.ConcernPriority.Concerns()

	matched := 0
	for _, concern := range concerns {
		for _, benefit := range concernBenefits[concern] {
			if product.HasBenefit(benefit) {
				matched++
				break
			}
		}
	}

	score := float64(product.ClinicalEvidenceScore)*productEvidenceWeight +
		product.Rating*productRatingWeight
	if len(concerns) > 0 {
		score += float64(matched) / float64(len(concerns)) * productOverlapWeight
	}

	skinType := profile.Classification.Type
	explicit := containsString(product.SkinTypes, skinType)
	switch {
	case explicit:
		score += productTypeBonus
	case containsString(product.SkinTypes, model.SkinTypeAll):
		score += productAllTypesBonus
	}

	percent := int(math.Round(math.Min(maxMatchPercent, score)))
	return percent, matchReasons(percent, matched, explicit, profile)
}

// matchReasons generates up to three reason texts for a score, mirroring the
// storefront's messaging tiers.
func matchReasons(percent, matchedConcerns int, typeMatch bool, profile *model.PersonalizedProfile) []string {
	var reasons []string

	switch {
	case percent > 90:
		reasons = append(reasons, "Exceptional compatibility with your skin profile")
	case percent > 80:
		reasons = append(reasons, "High compatibility with your skin type")
	case percent > 70:
		reasons = append(reasons, "Good match for your skin profile")
	}

	if matchedConcerns > 1 {
		reasons = append(reasons, "Addresses several of your top concerns simultaneously")
	} else if matchedConcerns == 1 {
		reasons = append(reasons, "Targets your primary skin concerns")
	}

	if typeMatch {
		reasons = append(reasons, "Formulated for "+profile.Classification.Type+" skin")
	}

	if len(reasons) > 3 {
		reasons = reasons[:3]
	}
	return reasons
}

// UsageTimeline builds the usage guidance text from the product's usage
// frequency, falling back to name-based rules.
func UsageTimeline(product *model.Product) string {
	switch product.UsageFrequency {
	case model.UsageTwiceDaily:
		return "Use morning and evening for optimal results"
	case model.UsageWeekly:
		return "Use 1-2 times per week as a treatment"
	}

	name := strings.ToLower(product.Name)
	switch {
	case strings.Contains(name, "serum"):
		return "Apply daily in the evening, introduce gradually"
	case strings.Contains(name, "moisturizer"):
		return "Use twice daily as the final step in your routine"
	}

	return "Use daily as part of your skincare routine"
}
