package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"mealgate/web-svc/internal/action"
	"mealgate/web-svc/internal/client"

	"github.com/gorilla/mux"
)

// Catalog reads are the only cached surface. Personalized and mutating
// requests always go straight to the backend.

func (h *Handler) pageGet(ctx context.Context, key string) ([]byte, bool) {
	if h.Pages == nil {
		return nil, false
	}
	return h.Pages.Get(ctx, key)
}

func (h *Handler) pageSet(ctx context.Context, key string, payload []byte, tags ...string) {
	if h.Pages == nil {
		return
	}
	h.Pages.Set(ctx, key, payload, tags...)
}

func (h *Handler) writeCached(w http.ResponseWriter, r *http.Request, v any, tags ...string) {
	payload, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.pageSet(r.Context(), r.URL.RequestURI(), payload, tags...)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request) bool {
	payload, ok := h.pageGet(r.Context(), r.URL.RequestURI())
	if !ok {
		return false
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
	return true
}

func mealsParamsFromQuery(query url.Values) client.MealsListParams {
	params := client.MealsListParams{
		Query:      query.Get("q"),
		ProviderID: query.Get("providerId"),
		CategoryID: query.Get("categoryId"),
		Cuisine:    query.Get("cuisine"),
	}
	if page, err := strconv.Atoi(query.Get("page")); err == nil && page > 0 {
		params.Page = page
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit > 0 {
		params.Limit = limit
	}
	if raw := query.Get("isAvailable"); raw != "" {
		if available, err := strconv.ParseBool(raw); err == nil {
			params.Available = &available
		}
	}
	return params
}

func (h *Handler) getMeals(w http.ResponseWriter, r *http.Request) {
	if h.serveCached(w, r) {
		return
	}

	meals, err := h.Meals.GetAll(r.Context(), mealsParamsFromQuery(r.URL.Query()))
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeCached(w, r, meals, action.TagMeals)
}

func (h *Handler) getMeal(w http.ResponseWriter, r *http.Request) {
	if h.serveCached(w, r) {
		return
	}

	mealID := mux.Vars(r)["id"]
	meal, err := h.Meals.GetByID(r.Context(), mealID)
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeCached(w, r, meal, action.TagMeals, action.TagMeal(mealID))
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	if h.serveCached(w, r) {
		return
	}

	categories, err := h.Categories.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeCached(w, r, categories, action.TagCategories)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	if h.serveCached(w, r) {
		return
	}

	category, err := h.Categories.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeCached(w, r, category, action.TagCategories)
}

func (h *Handler) getProviders(w http.ResponseWriter, r *http.Request) {
	if h.serveCached(w, r) {
		return
	}

	providers, err := h.Providers.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeCached(w, r, providers, action.TagProviders)
}

func (h *Handler) getProvider(w http.ResponseWriter, r *http.Request) {
	if h.serveCached(w, r) {
		return
	}

	provider, err := h.Providers.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeCached(w, r, provider, action.TagProviders)
}

func (h *Handler) getReviews(w http.ResponseWriter, r *http.Request) {
	if h.serveCached(w, r) {
		return
	}

	reviews, err := h.Reviews.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeCached(w, r, reviews, action.TagReviews)
}
