package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/UtkarshSachan777/Glow-AI/internal/model"
)

// CatalogStore is the catalog port consumed by the engine for product
// enrichment. The engine issues at most one search per scoring pass and
// degrades gracefully when it fails.
type CatalogStore interface {
	Search(ctx context.Context, filter model.ProductFilter) ([]*model.Product, error)
}

/// ProfileStore is the persistence port for computed profiles: an idempotent
// last-write-wins upsert keyed by session/user identity.
type ProfileStore interface {
	Save(ctx context.Context, key string, profile *model.PersonalizedProfile) error
	Load(ctx context.Context, key string) (*model.PersonalizedProfile, error)
}

// PersonalizationService runs the scoring pipeline and handles optional
// catalog enrichment and profile persistence. The scoring itself is a pure
// function of the questionnaire response and the static reference tables.
type PersonalizationService struct {
	catalog  CatalogStore
	profiles ProfileStore
}

// PersonalizationServiceConfig holds configuration for the personalization service
type PersonalizationServiceConfig struct {
	Catalog  CatalogStore
	Profiles ProfileStore
}

// NewPersonalizationService creates a new personalization service
func NewPersonalizationService(cfg PersonalizationServiceConfig) *PersonalizationService {
	return &PersonalizationService{
		catalog:  cfg.Catalog,
		profiles: cfg.Profiles,
	}
}

// Personalization score weights: classifier confidence, mean ingredient
// match, and concern coverage, scaled to 0-100.
const (
	scoreConfidenceWeight = 40.0
	scoreMatchWeight      = 0.4
	scoreCoverageWeight   = 20.0
)

// BuildProfile is the pure scoring pass: identical input always yields an
// identical profile. No randomness, no clock, no I/O.
func BuildProfile(q *model.QuestionnaireResponse) *model.PersonalizedProfile {
	classification := ClassifySkinType(q)
	priority := PrioritizeConcerns(q)
	recs := RecommendIngredients(classification.Type, priority)
	routine := GenerateRoutine(classification.Type, priority)
	timeline := PredictOutcomes(recs)
	risk := AssessRisk(classification.Type, recs, q)

	return &model.PersonalizedProfile{
		Classification:       classification,
		ConcernPriority:      priority,
		Ingredients:          recs,
		Routine:              routine,
		OutcomeTimeline:      timeline,
		Risk:                 risk,
		PersonalizationScore: personalizationScore(classification, priority, recs),
		AIInsights:           buildInsights(classification, priority, q),
	}
}

// Analyze runs a full scoring pass for the given identity key: the pure
// profile build, then best-effort product enrichment and profile
// persistence. Store failures are logged and recovered; Analyze always
// returns a usable profile.
func (s *PersonalizationService) Analyze(ctx context.Context, key string, q *model.QuestionnaireResponse) *model.PersonalizedProfile {
	profile := BuildProfile(q)
	profile.CreatedOn = time.Now().UTC()

	if s.catalog != nil {
		products, err := s.catalog.Search(ctx, model.ProductFilter{
			SkinType: profile.Classification.Type,
			Limit:    model.DefaultProductLimit,
		})
		if err != nil {
			slog.Warn("catalog enrichment unavailable, returning engine-only profile",
				slog.String("error", err.Error()))
		} else {
			profile.Products = scoreProducts(products, profile)
		}
	}

	if s.profiles != nil && key != "" {
		if err := s.profiles.Save(ctx, key, profile); err != nil {
			slog.Warn("profile persistence failed",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
	}

	return profile
}

// LastProfile loads the last persisted profile for the identity key.
// Returns (nil, nil) when no analysis has been completed yet.
func (s *PersonalizationService) LastProfile(ctx context.Context, key string) (*model.PersonalizedProfile, error) {
	if s.profiles == nil || key == "" {
		return nil, nil
	}
	return s.profiles.Load(ctx, key)
}

// personalizationScore combines classifier confidence, mean ingredient match
// and concern coverage into a single 0-100 score.
func personalizationScore(c model.SkinTypeClassification, priority model.ConcernPriority, recs []model.IngredientRecommendation) int {
	score := c.Confidence * scoreConfidenceWeight

	if len(recs) > 0 {
		var sum float64
		for _, rec := range recs {
			sum += float64(rec.MatchPercent)
		}
		score += sum / float64(len(recs)) * scoreMatchWeight
	}

	total := len(priority.Ranked)
	if total > 0 {
		covered := make(map[string]bool)
		for _, rec := range recs {
			for _, concern := range rec.MatchedConcerns {
				covered[concern] = true
			}
		}
		score += float64(len(covered)) / float64(total) * scoreCoverageWeight
	}

	result := int(math.Round(score))
	if result > 100 {
		result = 100
	}
	if result < 0 {
		result = 0
	}
	return result
}

// buildInsights generates the deterministic insight texts shown with the
// profile. Ordered: skin type, top concern, complexity, environment.
func buildInsights(c model.SkinTypeClassification, priority model.ConcernPriority, q *model.QuestionnaireResponse) []string {
	insights := []string{
		fmt.Sprintf("Your skin profile is %s with %d%% classification confidence",
			c.Type, int(math.Round(c.Confidence*100))),
	}

	if len(priority.Ranked) > 0 {
		top := priority.Ranked[0]
		insights = append(insights, fmt.Sprintf(
			"%s is your highest-priority concern (%s urgency); your routine is built around it",
			top.Concern, top.Urgency))
	}

	switch priority.TreatmentComplexity {
	case model.ComplexitySimple:
		insights = append(insights, "A focused routine of a few well-chosen products will cover your needs")
	case model.ComplexityModerate:
		insights = append(insights, "Your concerns call for a layered routine; introduce new products one at a time")
	case model.ComplexityComplex:
		insights = append(insights, "With this many concerns, consistency matters more than product count; prioritize the top two")
	}

	for _, env := range q.EnvironmentFactors {
		switch env {
		case "Humid", "Tropical":
			insights = append(insights, "In your humid climate, prefer gel-based, lightweight formulations")
		case "Dry", "Cold":
			insights = append(insights, "In your dry climate, richer occlusive formulations will hold moisture better")
		}
	}

	return insights
}

// scoreProducts ranks catalog products against the profile, dropping
// products with no benefit overlap and sorting descending by match.
func scoreProducts(products []*model.Product, profile *model.PersonalizedProfile) []model.ScoredProduct {
	scored := make([]model.ScoredProduct, 0, len(products))
	for _, product := range products {
		percent, reasons := ScoreProduct(product, profile)
		scored = append(scored, model.ScoredProduct{
			Product:       *product,
			MatchPercent:  percent,
			MatchReasons:  reasons,
			UsageTimeline: UsageTimeline(product),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchPercent > scored[j].MatchPercent
	})
	return scored
}
