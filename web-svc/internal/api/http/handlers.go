package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"mealgate/web-svc/internal/action"
	"mealgate/web-svc/internal/cache"
	"mealgate/web-svc/internal/client"

	"github.com/gorilla/mux"
	"github.com/skip2/go-qrcode"
)

// Fixed delivery fee charged at checkout, in BDT.
const DeliveryFee = 50

type Handler struct {
	Sessions   client.SessionServiceInterface
	Meals      client.MealsServiceInterface
	Categories client.CategoriesServiceInterface
	Providers  client.ProvidersServiceInterface
	Users      client.UsersServiceInterface
	Reviews    client.ReviewsServiceInterface
	Orders     client.OrdersServiceInterface
	Items      client.OrderItemsServiceInterface

	CartActions     *action.CartActions
	OrderActions    *action.OrderActions
	MealActions     *action.MealActions
	CategoryActions *action.CategoryActions
	ProviderActions *action.ProviderActions
	ReviewActions   *action.ReviewActions
	UserActions     *action.UserActions

	// Pages caches public catalog payloads; nil disables caching.
	Pages cache.TagCache

	// PublicURL is the storefront's externally visible base, used for
	// order-tracking QR codes.
	PublicURL string
}

// NewHandler wires the full proxy and action stack on top of one API client.
func NewHandler(api *client.Client, pages cache.TagCache, tags action.CacheInvalidator) *Handler {
	meals := client.NewMealsService(api)
	categories := client.NewCategoriesService(api)
	providers := client.NewProvidersService(api)
	users := client.NewUsersService(api)
	reviews := client.NewReviewsService(api)
	orders := client.NewOrdersService(api)
	items := client.NewOrderItemsService(api)

	return &Handler{
		Sessions:   client.NewSessionService(api),
		Meals:      meals,
		Categories: categories,
		Providers:  providers,
		Users:      users,
		Reviews:    reviews,
		Orders:     orders,
		Items:      items,

		CartActions:     action.NewCartActions(items, tags),
		OrderActions:    action.NewOrderActions(orders, tags),
		MealActions:     action.NewMealActions(meals, tags),
		CategoryActions: action.NewCategoryActions(categories, tags),
		ProviderActions: action.NewProviderActions(providers, tags),
		ReviewActions:   action.NewReviewActions(reviews, tags),
		UserActions:     action.NewUserActions(users, tags),

		Pages: pages,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/session", h.getSession).Methods("GET")

	r.HandleFunc("/api/meals", h.getMeals).Methods("GET")
	r.HandleFunc("/api/meals", h.createMeal).Methods("POST")
	r.HandleFunc("/api/meals/{id}", h.getMeal).Methods("GET")
	r.HandleFunc("/api/meals/{id}", h.deleteMeal).Methods("DELETE")

	r.HandleFunc("/api/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/categories", h.createCategory).Methods("POST")
	r.HandleFunc("/api/categories/{id}", h.getCategory).Methods("GET")
	r.HandleFunc("/api/categories/{id}", h.deleteCategory).Methods("DELETE")

	r.HandleFunc("/api/providers", h.getProviders).Methods("GET")
	r.HandleFunc("/api/providers", h.createProvider).Methods("POST")
	r.HandleFunc("/api/providers/{id}", h.getProvider).Methods("GET")
	r.HandleFunc("/api/provider/orders", h.getProviderOrders).Methods("GET")

	r.HandleFunc("/api/reviews", h.getReviews).Methods("GET")
	r.HandleFunc("/api/reviews", h.createReview).Methods("POST")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.addToCart).Methods("POST")
	r.HandleFunc("/api/cart/{id}", h.updateCartItem).Methods("PATCH")
	r.HandleFunc("/api/cart/{id}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")

	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/me", h.getMyOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PATCH")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/users", h.getUsers).Methods("GET")
	r.HandleFunc("/api/users/me", h.getMe).Methods("GET")
	r.HandleFunc("/api/users/{id}/role", h.updateUserRole).Methods("PATCH")
	r.HandleFunc("/api/users/{id}/status", h.updateUserStatus).Methods("PATCH")
	r.HandleFunc("/api/users/{id}", h.deleteUser).Methods("DELETE")
}

// SetupRoutes builds the router with request-id and session middleware
// applied.
func (h *Handler) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	h.RegisterRoutes(r)
	return requestIDMiddleware(h.sessionMiddleware(r))
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "web-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	// Confirm the caller can actually see the order before rendering.
	if _, err := h.Orders.GetByID(r.Context(), orderID); err != nil {
		writeError(w, err)
		return
	}

	png, err := qrcode.Encode(h.PublicURL+"/orders/"+orderID, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	body := map[string]any{"message": err.Error()}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != nil {
		body["detail"] = apiErr.Detail
	}
	writeJSON(w, statusFor(err), map[string]any{"error": body})
}

// statusFor maps the error taxonomy onto response codes: local validation is
// the client's fault, upstream rejections keep their status, anything else is
// a bad gateway.
func statusFor(err error) int {
	if errors.Is(err, action.ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	var vErr action.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}

func writeResult(w http.ResponseWriter, r *http.Request, res action.Result) {
	switch res.Kind {
	case action.KindRedirect:
		http.Redirect(w, r, res.To, http.StatusSeeOther)
	case action.KindError:
		writeError(w, res.Err)
	default:
		writeJSON(w, http.StatusOK, res.Data)
	}
}
