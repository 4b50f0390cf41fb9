package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/UtkarshSachan777/Glow-AI/internal/database"
	"github.com/UtkarshSachan777/Glow-AI/internal/model"
)

// ProductRepository handles catalog data access
type ProductRepository struct {
	db database.Database
}

// NewProductRepository creates a new product repository
func NewProductRepository(db database.Database) *ProductRepository {
	return &ProductRepository{db: db}
}

// Search retrieves products matching the filter, sorted by rating descending.
// Zero-valued filter fields are ignored.
func (r *ProductRepository) Search(ctx context.Context, filter model.ProductFilter) ([]*model.Product, error) {
	var conditions []string
	vars := map[string]interface{}{}

	if filter.Search != "" {
		conditions = append(conditions,
			"(string::lowercase(name) CONTAINS $search OR string::lowercase(brand) CONTAINS $search OR string::lowercase(description) CONTAINS $search)")
		vars["search"] = strings.ToLower(filter.Search)
	}
	if filter.Category != "" {
		conditions = append(conditions, "category = $category")
		vars["category"] = filter.Category
	}
	if filter.SkinType != "" {
		conditions = append(conditions, "($skin_type IN skin_types OR 'all' IN skin_types)")
		vars["skin_type"] = filter.SkinType
	}
	if filter.MinPrice > 0 {
		conditions = append(conditions, "price >= $min_price")
		vars["min_price"] = filter.MinPrice
	}
	if filter.MaxPrice > 0 {
		conditions = append(conditions, "price <= $max_price")
		vars["max_price"] = filter.MaxPrice
	}
	if filter.MinRating > 0 {
		conditions = append(conditions, "rating >= $min_rating")
		vars["min_rating"] = filter.MinRating
	}

	query := "SELECT * FROM product"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = model.DefaultProductLimit
	}
	query += fmt.Sprintf(" ORDER BY rating DESC LIMIT %d", limit)

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return r.parseProductsResult(result)
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.parseProductResult(result)
}

// Create inserts a new product record
func (r *ProductRepository) Create(ctx context.Context, product *model.Product) error {
	query := `
		CREATE product CONTENT {
			name: $name,
			brand: $brand,
			category: $category,
			description: $description,
			price: $price,
			original_price: $original_price,
			rating: $rating,
			review_count: $review_count,
			benefits: $benefits,
			skin_types: $skin_types,
			ingredients: $ingredients,
			clinical_evidence_score: $clinical_evidence_score,
			usage_frequency: $usage_frequency,
			tags: $tags,
			created_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"name":                    product.Name,
		"brand":                   product.Brand,
		"category":                product.Category,
		"description":             product.Description,
		"price":                   product.Price,
		"original_price":          product.OriginalPrice,
		"rating":                  product.Rating,
		"review_count":            product.ReviewCount,
		"benefits":                product.Benefits,
		"skin_types":              product.SkinTypes,
		"ingredients":             product.Ingredients,
		"clinical_evidence_score": product.ClinicalEvidenceScore,
		"usage_frequency":         product.UsageFrequency,
		"tags":                    product.Tags,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	records := unwrapResults(result)
	if len(records) > 0 {
		if data, ok := records[0].(map[string]interface{}); ok {
			product.ID = convertSurrealID(data["id"])
			product.CreatedOn = getTime(data, "created_on")
		}
	}
	return nil
}

// Count returns the number of products in the catalog
func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	result, err := r.db.QueryOne(ctx, `SELECT count() AS count FROM product GROUP ALL`, nil)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	if data, ok := result.(map[string]interface{}); ok {
		return getInt(data, "count"), nil
	}
	return 0, nil
}

func (r *ProductRepository) parseProductResult(result interface{}) (*model.Product, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, database.ErrNotFound
		}
		result = arr[0]
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	product := &model.Product{
		ID:                    convertSurrealID(data["id"]),
		Name:                  getString(data, "name"),
		Brand:                 getString(data, "brand"),
		Category:              getString(data, "category"),
		Description:           getString(data, "description"),
		Price:                 getInt(data, "price"),
		OriginalPrice:         getIntPtr(data, "original_price"),
		Rating:                getFloat(data, "rating"),
		ReviewCount:           getInt(data, "review_count"),
		Benefits:              getStringSlice(data, "benefits"),
		SkinTypes:             getStringSlice(data, "skin_types"),
		Ingredients:           getStringSlice(data, "ingredients"),
		ClinicalEvidenceScore: getInt(data, "clinical_evidence_score"),
		UsageFrequency:        getString(data, "usage_frequency"),
		Tags:                  getStringSlice(data, "tags"),
		CreatedOn:             getTime(data, "created_on"),
	}

	return product, nil
}

func (r *ProductRepository) parseProductsResult(result []interface{}) ([]*model.Product, error) {
	products := make([]*model.Product, 0)

	for _, item := range unwrapResults(result) {
		product, err := r.parseProductResult(item)
		if err != nil {
			continue
		}
		products = append(products, product)
	}

	return products, nil
}
