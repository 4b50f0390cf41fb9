package model

import "time"

// Product is a catalog record. Prices are in cents.
type Product struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Brand                 string    `json:"brand"`
	Category              string    `json:"category"`
	Description           string    `json:"description"`
	Price                 int       `json:"price"`
	OriginalPrice         *int      `json:"original_price,omitempty"`
	Rating                float64   `json:"rating"`
	ReviewCount           int       `json:"review_count"`
	Benefits              []string  `json:"benefits,omitempty"`
	SkinTypes             []string  `json:"skin_types,omitempty"`
	Ingredients           []string  `json:"ingredients,omitempty"`
	ClinicalEvidenceScore int       `json:"clinical_evidence_score"`
	UsageFrequency        string    `json:"usage_frequency,omitempty"`
	Tags                  []string  `json:"tags,omitempty"`
	CreatedOn             time.Time `json:"created_on"`
}

// Product categories used by the storefront.
const (
	CategorySerums       = "Serums"
	CategoryMoisturizers = "Moisturizers"
	CategoryCleansers    = "Cleansers"
	CategoryToners       = "Toners"
	CategoryTreatments   = "Treatments"
	CategorySunscreens   = "Sunscreens"
)

// Usage frequency values stored on products.
const (
	UsageTwiceDaily = "twice-daily"
	UsageDaily      = "daily"
	UsageWeekly     = "weekly"
)

// SkinTypeAll marks a product or ingredient suitable for every skin type.
const SkinTypeAll = "all"

// ProductFilter narrows a catalog query. Zero values mean "no constraint".
type ProductFilter struct {
	Search    string   `json:"search,omitempty"`
	Category  string   `json:"category,omitempty"`
	SkinType  string   `json:"skin_type,omitempty"`
	MinPrice  int      `json:"min_price,omitempty"`
	MaxPrice  int      `json:"max_price,omitempty"`
	MinRating float64  `json:"min_rating,omitempty"`
	Benefits  []string `json:"benefits,omitempty"`
	Limit     int      `json:"limit,omitempty"`
}

// DefaultProductLimit caps catalog queries when no limit is given.
const DefaultProductLimit = 20

// ScoredProduct is a catalog product enriched with the engine's match score
// for a specific profile.
type ScoredProduct struct {
	Product       Product  `json:"product"`
	MatchPercent  int      `json:"match_percent"`
	MatchReasons  []string `json:"match_reasons,omitempty"`
	UsageTimeline string   `json:"usage_timeline,omitempty"`
}

// SuitableFor reports whether the product is marked for the given skin type,
// either explicitly or via the "all" wildcard.
func (p *Product) SuitableFor(skinType string) bool {
	for _, t := range p.SkinTypes {
		if t == skinType || t == SkinTypeAll {
			return true
		}
	}
	return false
}

// HasBenefit reports whether the product lists the given benefit tag.
func (p *Product) HasBenefit(benefit string) bool {
	for _, b := range p.Benefits {
		if b == benefit {
			return true
		}
	}
	return false
}
