package service

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/UtkarshSachan777/Glow-AI/internal/model"
)

// Ingredient is a static reference entry for the recommender.
type Ingredient struct {
	Name            string
	Concerns        []string
	CompatibleTypes []string
	EvidenceScore   int
	SynergyPartners []string
	Contraindicated []string
	Rationale       string
	// Active marks potent actives counted by the over-treatment rule.
	Active bool
}

// ingredientTable is the fixed ingredient reference database. Evidence
// scores are static editorial values on a 0-100 scale.
var ingredientTable = []Ingredient{
	{
		Name:            "Salicylic Acid",
		Concerns:        []string{model.ConcernAcne, model.ConcernLargePores, model.ConcernTexture},
		CompatibleTypes: []string{model.SkinTypeOily, model.SkinTypeCombination},
		EvidenceScore:   92,
		SynergyPartners: []string{"Niacinamide", "Zinc PCA"},
		Contraindicated: []string{model.SkinTypeDry},
		Rationale:       "Oil-soluble BHA that clears inside pores and calms active breakouts",
		Active:          true,
	},
	{
		Name:            "Niacinamide",
		Concerns:        []string{model.ConcernAcne, model.ConcernLargePores, model.ConcernRedness, model.ConcernDullness, model.ConcernDarkSpots},
		CompatibleTypes: []string{model.SkinTypeAll},
		EvidenceScore:   90,
		SynergyPartners: []string{"Salicylic Acid", "Hyaluronic Acid", "Retinol"},
		Rationale:       "Regulates sebum, refines pores, and strengthens the skin barrier",
	},
	{
		Name:            "Retinol",
		Concerns:        []string{model.ConcernFineLines, model.ConcernTexture, model.ConcernAcne, model.ConcernDarkSpots},
		CompatibleTypes: []string{model.SkinTypeNormal, model.SkinTypeOily, model.SkinTypeCombination, model.SkinTypeDry},
		EvidenceScore:   95,
		SynergyPartners: []string{"Niacinamide", "Hyaluronic Acid", "Peptides"},
		Contraindicated: []string{model.SkinTypeSensitive},
		Rationale:       "Gold-standard retinoid for collagen production and cell turnover",
		Active:          true,
	},
	{
		Name:            "Hyaluronic Acid",
		Concerns:        []string{model.ConcernDryness, model.ConcernFineLines, model.ConcernDullness},
		CompatibleTypes: []string{model.SkinTypeAll},
		EvidenceScore:   88,
		SynergyPartners: []string{"Ceramides", "Vitamin C"},
		Rationale:       "Humectant that binds up to 1000x its weight in water for deep hydration",
	},
	{
		Name:            "Vitamin C",
		Concerns:        []string{model.ConcernDarkSpots, model.ConcernDullness, model.ConcernFineLines},
		CompatibleTypes: []string{model.SkinTypeNormal, model.SkinTypeOily, model.SkinTypeCombination, model.SkinTypeDry},
		EvidenceScore:   93,
		SynergyPartners: []string{"Hyaluronic Acid", "Ferulic Acid"},
		Contraindicated: []string{model.SkinTypeSensitive},
		Rationale:       "Antioxidant that brightens tone and fades hyperpigmentation",
		Active:          true,
	},
	{
		Name:            "Glycolic Acid",
		Concerns:        []string{model.ConcernTexture, model.ConcernDullness, model.ConcernDarkSpots},
		CompatibleTypes: []string{model.SkinTypeNormal, model.SkinTypeOily, model.SkinTypeCombination},
		EvidenceScore:   89,
		SynergyPartners: []string{"Hyaluronic Acid"},
		Contraindicated: []string{model.SkinTypeSensitive, model.SkinTypeDry},
		Rationale:       "AHA that exfoliates dead surface cells for smoother, brighter skin",
		Active:          true,
	},
	{
		Name:            "Azelaic Acid",
		Concerns:        []string{model.ConcernRedness, model.ConcernAcne, model.ConcernDarkSpots},
		CompatibleTypes: []string{model.SkinTypeAll},
		EvidenceScore:   85,
		SynergyPartners: []string{"Niacinamide"},
		Rationale:       "Gentle multitasker for redness, blemishes, and post-acne marks",
	},
	{
		Name:            "Ceramides",
		Concerns:        []string{model.ConcernDryness, model.ConcernRedness},
		CompatibleTypes: []string{model.SkinTypeAll},
		EvidenceScore:   87,
		SynergyPartners: []string{"Hyaluronic Acid", "Squalane"},
		Rationale:       "Replenishes the lipid barrier to lock in moisture and reduce reactivity",
	},
	{
		Name:            "Peptides",
		Concerns:        []string{model.ConcernFineLines, model.ConcernTexture},
		CompatibleTypes: []string{model.SkinTypeAll},
		EvidenceScore:   78,
		SynergyPartners: []string{"Retinol", "Hyaluronic Acid"},
		Rationale:       "Signal molecules that support firmness and elasticity",
	},
	{
		Name:            "Centella Asiatica",
		Concerns:        []string{model.ConcernRedness, model.ConcernDryness},
		CompatibleTypes: []string{model.SkinTypeAll},
		EvidenceScore:   76,
		SynergyPartners: []string{"Ceramides"},
		Rationale:       "Soothing botanical that calms irritation and supports repair",
	},
	{
		Name:            "Zinc PCA",
		Concerns:        []string{model.ConcernAcne, model.ConcernLargePores},
		CompatibleTypes: []string{model.SkinTypeOily, model.SkinTypeCombination},
		EvidenceScore:   72,
		SynergyPartners: []string{"Niacinamide", "Salicylic Acid"},
		Rationale:       "Balances oil production and keeps blemish-causing bacteria in check",
	},
	{
		Name:            "Benzoyl Peroxide",
		Concerns:        []string{model.ConcernAcne},
		CompatibleTypes: []string{model.SkinTypeOily},
		EvidenceScore:   94,
		SynergyPartners: []string{},
		Contraindicated: []string{model.SkinTypeSensitive, model.SkinTypeDry},
		Rationale:       "Antibacterial treatment with strong clinical backing for acne",
		Active:          true,
	},
	{
		Name:            "Squalane",
		Concerns:        []string{model.ConcernDryness, model.ConcernRedness},
		CompatibleTypes: []string{model.SkinTypeAll},
		EvidenceScore:   75,
		SynergyPartners: []string{"Retinol", "Ceramides"},
		Rationale:       "Lightweight emollient that mimics skin's own lipids",
	},
	{
		Name:            "Kojic Acid",
		Concerns:        []string{model.ConcernDarkSpots, model.ConcernDullness},
		CompatibleTypes: []string{model.SkinTypeNormal, model.SkinTypeOily, model.SkinTypeCombination},
		EvidenceScore:   70,
		SynergyPartners: []string{"Vitamin C"},
		Contraindicated: []string{model.SkinTypeSensitive},
		Rationale:       "Tyrosinase inhibitor that gradually fades stubborn dark spots",
	},
}

// Match score formula constants. The overlap term scales with the fraction
// of prioritized concerns the ingredient addresses; the type bonus applies
// only for an explicit compatible-type listing, not the "all" wildcard.
const (
	maxMatchPercent     = 98
	overlapMatchWeight  = 40.0
	evidenceMatchWeight = 0.4
	typeMatchBonus      = 20.0
	maxRecommendations  = 6
)

// RecommendIngredients selects ingredients for the classified skin type and
// prioritized concerns. An ingredient is included only when it is not
// contraindicated for the skin type, its compatible set covers the type, and
// it addresses at least one prioritized concern. Results are sorted
// descending by match percentage and truncated to the top six.
func RecommendIngredients(skinType string, priority model.ConcernPriority) []model.IngredientRecommendation {
	concerns := priority.Concerns()
	total := len(concerns)
	if total == 0 {
		return nil
	}

	recs := make([]model.IngredientRecommendation, 0, len(ingredientTable))

	for _, ing := range ingredientTable {
		if containsString(ing.Contraindicated, skinType) {
			continue
		}
		explicitMatch := containsString(ing.CompatibleTypes, skinType)
		if !explicitMatch && !containsString(ing.CompatibleTypes, model.SkinTypeAll) {
			continue
		}

		matched := intersect(ing.Concerns, concerns)
		if len(matched) == 0 {
			continue
		}

		score := float64(len(matched))/float64(total)*overlapMatchWeight +
			float64(ing.EvidenceScore)*evidenceMatchWeight
		if explicitMatch {
			score += typeMatchBonus
		}
		percent := int(math.Round(math.Min(maxMatchPercent, score)))

		recs = append(recs, model.IngredientRecommendation{
			Name:                    ing.Name,
			MatchPercent:            percent,
			Rationale:               ingredientRationale(ing, matched),
			ScientificEvidenceScore: ing.EvidenceScore,
			SynergyPartners:         ing.SynergyPartners,
			MatchedConcerns:         matched,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchPercent > recs[j].MatchPercent
	})

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// ingredientRationale prefers the fixed per-ingredient text and falls back
// to a generated sentence naming the matched concerns.
func ingredientRationale(ing Ingredient, matched []string) string {
	if ing.Rationale != "" {
		return ing.Rationale
	}
	return fmt.Sprintf("Targets %s", strings.Join(matched, " and "))
}

// ActiveIngredients filters the recommendations down to the fixed
// active-ingredient set used by the risk assessor.
func ActiveIngredients(recs []model.IngredientRecommendation) []string {
	var actives []string
	for _, rec := range recs {
		for _, ing := range ingredientTable {
			if ing.Name == rec.Name && ing.Active {
				actives = append(actives, ing.Name)
				break
			}
		}
	}
	return actives
}

// containsString reports whether list contains s
func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// intersect returns the elements of a that also appear in b, keeping a's order
func intersect(a, b []string) []string {
	var out []string
	for _, item := range a {
		if containsString(b, item) {
			out = append(out, item)
		}
	}
	return out
}
