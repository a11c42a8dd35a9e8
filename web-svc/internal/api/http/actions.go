package httpapi

import (
	"encoding/json"
	"net/http"

	"mealgate/web-svc/internal/action"
	"mealgate/web-svc/internal/client"
	"mealgate/web-svc/internal/domain"

	"github.com/gorilla/mux"
)

// Mutation endpoints. Each decodes the form payload, hands it to the action
// layer with the resolved session, and renders the tagged result.

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var input struct {
		MealID   string `json:"mealId"`
		Quantity int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := h.CartActions.AddToDraftCart(r.Context(), sessionFrom(r), action.AddToCartInput{
		MealID:   input.MealID,
		Quantity: input.Quantity,
	})
	writeResult(w, r, res)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := h.CartActions.UpdateDraftItemQuantity(r.Context(), sessionFrom(r), mux.Vars(r)["id"], input.Quantity)
	writeResult(w, r, res)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	res := h.CartActions.RemoveDraftItem(r.Context(), sessionFrom(r), mux.Vars(r)["id"])
	writeResult(w, r, res)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var input struct {
		DeliveryAddress string `json:"deliveryAddress"`
		Phone           string `json:"phone"`
		Note            string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := h.OrderActions.CreateOrderFromDrafts(r.Context(), sessionFrom(r), action.CheckoutInput{
		DeliveryAddress: input.DeliveryAddress,
		Phone:           input.Phone,
		Note:            input.Note,
		DeliveryFee:     DeliveryFee,
	})
	writeResult(w, r, res)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := h.OrderActions.UpdateOrderStatus(r.Context(), sessionFrom(r), mux.Vars(r)["id"], input.Status)
	writeResult(w, r, res)
}

func (h *Handler) createMeal(w http.ResponseWriter, r *http.Request) {
	var input client.CreateMealInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := h.MealActions.CreateMeal(r.Context(), sessionFrom(r), input)
	writeResult(w, r, res)
}

func (h *Handler) deleteMeal(w http.ResponseWriter, r *http.Request) {
	res := h.MealActions.DeleteMeal(r.Context(), sessionFrom(r), mux.Vars(r)["id"])
	writeResult(w, r, res)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var input client.CreateCategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := h.CategoryActions.CreateCategory(r.Context(), sessionFrom(r), input)
	writeResult(w, r, res)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	res := h.CategoryActions.DeleteCategory(r.Context(), sessionFrom(r), mux.Vars(r)["id"])
	writeResult(w, r, res)
}

func (h *Handler) createProvider(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ShopName    string `json:"shopName"`
		Description string `json:"description"`
		Address     string `json:"address"`
		Phone       string `json:"phone"`
		LogoURL     string `json:"logoUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := h.ProviderActions.CreateProvider(r.Context(), sessionFrom(r), action.CreateProviderInput{
		ShopName:    input.ShopName,
		Description: input.Description,
		Address:     input.Address,
		Phone:       input.Phone,
		LogoURL:     input.LogoURL,
	})
	writeResult(w, r, res)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var input struct {
		MealID  string `json:"mealId"`
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := h.ReviewActions.CreateReview(r.Context(), sessionFrom(r), action.CreateReviewInput{
		MealID:  input.MealID,
		Rating:  input.Rating,
		Comment: input.Comment,
	})
	writeResult(w, r, res)
}

func (h *Handler) updateUserRole(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Role domain.Role `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := h.UserActions.UpdateUserRole(r.Context(), sessionFrom(r), mux.Vars(r)["id"], input.Role)
	writeResult(w, r, res)
}

func (h *Handler) updateUserStatus(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Status domain.UserStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := h.UserActions.UpdateUserStatus(r.Context(), sessionFrom(r), mux.Vars(r)["id"], input.Status)
	writeResult(w, r, res)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	res := h.UserActions.DeleteUser(r.Context(), sessionFrom(r), mux.Vars(r)["id"])
	writeResult(w, r, res)
}
