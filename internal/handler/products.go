package handler

import (
	"net/http"
	"strconv"

	"github.com/UtkarshSachan777/Glow-AI/internal/middleware"
	"github.com/UtkarshSachan777/Glow-AI/internal/model"
	"github.com/UtkarshSachan777/Glow-AI/internal/service"
)

// ProductsHandler handles catalog endpoints
type ProductsHandler struct {
	catalogService  *service.CatalogService
	personalization *service.PersonalizationService
}

// NewProductsHandler creates a new products handler
func NewProductsHandler(catalogService *service.CatalogService, personalization *service.PersonalizationService) *ProductsHandler {
	return &ProductsHandler{
		catalogService:  catalogService,
		personalization: personalization,
	}
}

// List handles GET /v1/products. Requests with a session that has a computed
// skin profile get per-product match scores; anonymous requests get the plain
// catalog ordered by rating.
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, pd := parseProductFilter(r)
	if pd != nil {
		WriteError(w, pd)
		return
	}

	profile := h.sessionProfile(r)

	products, err := h.catalogService.Search(r.Context(), filter, profile)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "search products"))
		return
	}

	WriteCollection(w, http.StatusOK, products, len(products), nil)
}

// Match handles GET /v1/products/{productId}/match
func (h *ProductsHandler) Match(w http.ResponseWriter, r *http.Request) {
	profile := h.sessionProfile(r)

	scored, err := h.catalogService.Match(r.Context(), r.PathValue("productId"), profile)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, scored, map[string]string{
		"product": "/v1/products/" + scored.Product.ID,
	})
}

// sessionProfile loads the last computed profile for the request's session.
// Returns nil for anonymous requests or sessions without an analysis.
func (h *ProductsHandler) sessionProfile(r *http.Request) *model.PersonalizedProfile {
	key := middleware.GetProfileKey(r.Context())
	if key == "" {
		return nil
	}
	profile, err := h.personalization.LastProfile(r.Context(), key)
	if err != nil {
		return nil
	}
	return profile
}

func parseProductFilter(r *http.Request) (model.ProductFilter, *model.ProblemDetails) {
	q := r.URL.Query()
	filter := model.ProductFilter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		SkinType: q.Get("skin_type"),
	}

	for param, dst := range map[string]*int{
		"min_price": &filter.MinPrice,
		"max_price": &filter.MaxPrice,
		"limit":     &filter.Limit,
	} {
		raw := q.Get(param)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return filter, model.NewBadRequestError("invalid " + param + " parameter")
		}
		*dst = v
	}

	if raw := q.Get("min_rating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 5 {
			return filter, model.NewBadRequestError("invalid min_rating parameter")
		}
		filter.MinRating = v
	}

	if filter.Limit == 0 || filter.Limit > model.DefaultProductLimit {
		filter.Limit = model.DefaultProductLimit
	}

	return filter, nil
}
