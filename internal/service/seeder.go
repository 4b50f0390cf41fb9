package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UtkarshSachan777/Glow-AI/internal/model"
)

// SeedStore is the catalog port used by the launch seeder.
type SeedStore interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, product *model.Product) error
}

// SeedCatalog loads the launch product set into an empty catalog. A non-empty
// catalog is left untouched so the seeder is safe to run on every startup.
func SeedCatalog(ctx context.Context, store SeedStore) error {
	count, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting catalog: %w", err)
	}
	if count > 0 {
		slog.Debug("catalog already seeded", slog.Int("products", count))
		return nil
	}

	for i := range launchCatalog {
		if err := store.Create(ctx, &launchCatalog[i]); err != nil {
			return fmt.Errorf("seeding product %q: %w", launchCatalog[i].Name, err)
		}
	}

	slog.Info("catalog seeded", slog.Int("products", len(launchCatalog)))
	return nil
}

func intPtr(v int) *int { return &v }

// launchCatalog is the launch product set. Prices are in cents.
var launchCatalog = []model.Product{
	{
		Name:                  "Hydrating Vitamin C Serum",
		Brand:                 "GlowLab",
		Category:              model.CategorySerums,
		Description:           "Brightening serum with 20% Vitamin C for radiant skin",
		Price:                 3999,
		OriginalPrice:         intPtr(5399),
		Rating:                4.8,
		ReviewCount:           1247,
		Benefits:              []string{"brightening", "even-tone", "anti-aging"},
		SkinTypes:             []string{model.SkinTypeNormal, model.SkinTypeOily, model.SkinTypeCombination},
		Ingredients:           []string{"Vitamin C", "Hyaluronic Acid"},
		ClinicalEvidenceScore: 93,
		UsageFrequency:        model.UsageDaily,
		Tags:                  []string{"Best Seller", "AI Recommended"},
	},
	{
		Name:                  "Renewal Night Moisturizer",
		Brand:                 "PureSkin",
		Category:              model.CategoryMoisturizers,
		Description:           "Rich moisturizer with retinol and peptides",
		Price:                 5199,
		Rating:                4.9,
		ReviewCount:           856,
		Benefits:              []string{"anti-aging", "firming", "hydrating"},
		SkinTypes:             []string{model.SkinTypeDry, model.SkinTypeNormal},
		Ingredients:           []string{"Retinol", "Peptides", "Ceramides"},
		ClinicalEvidenceScore: 95,
		UsageFrequency:        model.UsageDaily,
		Tags:                  []string{"Premium", "Anti-Aging"},
	},
	{
		Name:                  "Gentle Foam Cleanser",
		Brand:                 "CleanBeauty",
		Category:              model.CategoryCleansers,
		Description:           "pH-balanced cleanser for all skin types",
		Price:                 2299,
		Rating:                4.7,
		ReviewCount:           2341,
		Benefits:              []string{"soothing", "barrier-repair"},
		SkinTypes:             []string{model.SkinTypeAll},
		Ingredients:           []string{"Centella Asiatica", "Ceramides"},
		ClinicalEvidenceScore: 80,
		UsageFrequency:        model.UsageTwiceDaily,
		Tags:                  []string{"Sensitive Skin", "Daily Use"},
	},
	{
		Name:                  "Advanced Retinol Serum",
		Brand:                 "GlowLab",
		Category:              model.CategorySerums,
		Description:           "Powerful retinol formula for fine lines and wrinkles",
		Price:                 4599,
		Rating:                4.6,
		ReviewCount:           932,
		Benefits:              []string{"anti-aging", "firming", "smoothing"},
		SkinTypes:             []string{model.SkinTypeNormal, model.SkinTypeDry},
		Ingredients:           []string{"Retinol", "Squalane"},
		ClinicalEvidenceScore: 95,
		UsageFrequency:        model.UsageDaily,
		Tags:                  []string{"Anti-Aging", "Night Use"},
	},
	{
		Name:                  "Hydrating Face Mask",
		Brand:                 "PureSkin",
		Category:              model.CategoryTreatments,
		Description:           "Intensive hydrating mask with hyaluronic acid",
		Price:                 2899,
		Rating:                4.5,
		ReviewCount:           654,
		Benefits:              []string{"hydrating", "barrier-repair", "soothing"},
		SkinTypes:             []string{model.SkinTypeDry, model.SkinTypeSensitive},
		Ingredients:           []string{"Hyaluronic Acid", "Ceramides"},
		ClinicalEvidenceScore: 88,
		UsageFrequency:        model.UsageWeekly,
		Tags:                  []string{"Hydrating", "Weekly Use"},
	},
	{
		Name:                  "Exfoliating Toner",
		Brand:                 "CleanBeauty",
		Category:              model.CategoryToners,
		Description:           "Gentle exfoliating toner with salicylic acid",
		Price:                 1999,
		Rating:                4.4,
		ReviewCount:           1203,
		Benefits:              []string{"exfoliating", "oil-control", "acne-fighting", "pore-minimizing"},
		SkinTypes:             []string{model.SkinTypeOily, model.SkinTypeCombination},
		Ingredients:           []string{"Salicylic Acid", "Zinc PCA"},
		ClinicalEvidenceScore: 92,
		UsageFrequency:        model.UsageDaily,
		Tags:                  []string{"Exfoliating", "BHA"},
	},
}
