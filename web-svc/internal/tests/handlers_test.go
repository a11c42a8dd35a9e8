package tests

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mealgate/web-svc/internal/action"
	httpapi "mealgate/web-svc/internal/api/http"
	"mealgate/web-svc/internal/client"
	"mealgate/web-svc/internal/domain"
	"mealgate/web-svc/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixture struct {
	handler  *httpapi.Handler
	sessions *mocks.SessionServiceInterface
	meals    *mocks.MealsServiceInterface
	users    *mocks.UsersServiceInterface
	reviews  *mocks.ReviewsServiceInterface
	orders   *mocks.OrdersServiceInterface
	items    *mocks.OrderItemsServiceInterface
	inv      *mocks.CacheInvalidator
	pages    *mocks.TagCache
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	f := &handlerFixture{
		sessions: mocks.NewSessionServiceInterface(t),
		meals:    mocks.NewMealsServiceInterface(t),
		users:    mocks.NewUsersServiceInterface(t),
		reviews:  mocks.NewReviewsServiceInterface(t),
		orders:   mocks.NewOrdersServiceInterface(t),
		items:    mocks.NewOrderItemsServiceInterface(t),
		inv:      mocks.NewCacheInvalidator(t),
		pages:    mocks.NewTagCache(t),
	}
	f.handler = &httpapi.Handler{
		Sessions: f.sessions,
		Meals:    f.meals,
		Users:    f.users,
		Reviews:  f.reviews,
		Orders:   f.orders,
		Items:    f.items,

		CartActions:  action.NewCartActions(f.items, f.inv),
		OrderActions: action.NewOrderActions(f.orders, f.inv),
		MealActions:  action.NewMealActions(f.meals, f.inv),
		UserActions:  action.NewUserActions(f.users, f.inv),

		Pages:     f.pages,
		PublicURL: "http://shop.test",
	}
	return f
}

func (f *handlerFixture) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.handler.SetupRoutes().ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	f := newHandlerFixture(t)
	f.sessions.On("Get", mock.Anything).Return(nil, errors.New("no session"))

	rec := f.serve(httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestCheckoutRespondsSeeOther(t *testing.T) {
	f := newHandlerFixture(t)
	f.sessions.On("Get", mock.Anything).Return(customerSession("u1"), nil)
	f.orders.On("CreateFromDrafts", mock.Anything, client.CreateOrderFromDraftsInput{
		DeliveryAddress: "12 Lake Rd",
		Phone:           "01711111111",
		DeliveryFee:     httpapi.DeliveryFee,
	}).Return(&domain.Order{ID: "o1"}, nil)
	f.inv.On("Invalidate", mock.Anything, []string{action.TagCart, action.TagOrders})

	req := httptest.NewRequest("POST", "/api/checkout",
		strings.NewReader(`{"deliveryAddress":"12 Lake Rd","phone":"01711111111"}`))
	rec := f.serve(req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/customer-dashboard/customer-order", rec.Header().Get("Location"))
}

func TestAddToCartRejectsAnonymous(t *testing.T) {
	f := newHandlerFixture(t)
	f.sessions.On("Get", mock.Anything).Return(nil, errors.New("no session"))

	req := httptest.NewRequest("POST", "/api/cart", strings.NewReader(`{"mealId":"m1","quantity":1}`))
	rec := f.serve(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "unauthorized")
	f.items.AssertNotCalled(t, "Create")
}

func TestAddToCartValidationMapsToBadRequest(t *testing.T) {
	f := newHandlerFixture(t)
	f.sessions.On("Get", mock.Anything).Return(customerSession("u1"), nil)

	req := httptest.NewRequest("POST", "/api/cart", strings.NewReader(`{"mealId":"","quantity":1}`))
	rec := f.serve(req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "meal is required")
}

func TestUpstreamStatusIsPreserved(t *testing.T) {
	f := newHandlerFixture(t)
	f.sessions.On("Get", mock.Anything).Return(customerSession("u1"), nil)
	f.items.On("Create", mock.Anything, mock.Anything).
		Return(nil, &client.APIError{Op: "create order item", Status: http.StatusConflict, Detail: map[string]any{"message": "meal unavailable"}})

	req := httptest.NewRequest("POST", "/api/cart", strings.NewReader(`{"mealId":"m1","quantity":1}`))
	rec := f.serve(req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "create order item failed (HTTP 409)")
	assert.Contains(t, rec.Body.String(), "meal unavailable")
}

func TestTransportErrorMapsToBadGateway(t *testing.T) {
	f := newHandlerFixture(t)
	f.sessions.On("Get", mock.Anything).Return(customerSession("u1"), nil)
	f.items.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("dial tcp: connection refused"))

	req := httptest.NewRequest("POST", "/api/cart", strings.NewReader(`{"mealId":"m1","quantity":1}`))
	rec := f.serve(req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestMealsCacheMissPopulatesTaggedEntry(t *testing.T) {
	f := newHandlerFixture(t)
	f.sessions.On("Get", mock.Anything).Return(nil, errors.New("no session"))
	f.pages.On("Get", mock.Anything, "/api/meals").Return(nil, false)
	f.meals.On("GetAll", mock.Anything, client.MealsListParams{}).
		Return([]domain.Meal{{ID: "m1", Title: "Beef Tehari"}}, nil)
	f.pages.On("Set", mock.Anything, "/api/meals", mock.Anything, []string{action.TagMeals}).Return(nil)

	rec := f.serve(httptest.NewRequest("GET", "/api/meals", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Beef Tehari")
}

func TestMealsCacheHitSkipsBackend(t *testing.T) {
	f := newHandlerFixture(t)
	f.sessions.On("Get", mock.Anything).Return(nil, errors.New("no session"))
	f.pages.On("Get", mock.Anything, "/api/meals").Return([]byte(`[{"id":"m1"}]`), true)

	rec := f.serve(httptest.NewRequest("GET", "/api/meals", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"m1"}]`, rec.Body.String())
	f.meals.AssertNotCalled(t, "GetAll")
}

func TestMealCacheKeyIncludesQuery(t *testing.T) {
	f := newHandlerFixture(t)
	f.sessions.On("Get", mock.Anything).Return(nil, errors.New("no session"))
	f.pages.On("Get", mock.Anything, "/api/meals?categoryId=c1").Return(nil, false)
	f.meals.On("GetAll", mock.Anything, client.MealsListParams{CategoryID: "c1"}).
		Return([]domain.Meal{}, nil)
	f.pages.On("Set", mock.Anything, "/api/meals?categoryId=c1", mock.Anything, []string{action.TagMeals}).Return(nil)

	rec := f.serve(httptest.NewRequest("GET", "/api/meals?categoryId=c1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReviewsCacheMissPopulatesTaggedEntry(t *testing.T) {
	f := newHandlerFixture(t)
	f.sessions.On("Get", mock.Anything).Return(nil, errors.New("no session"))
	f.pages.On("Get", mock.Anything, "/api/reviews").Return(nil, false)
	f.reviews.On("GetAll", mock.Anything).
		Return([]domain.Review{{ID: "r1", Rating: 5, Comment: "excellent"}}, nil)
	f.pages.On("Set", mock.Anything, "/api/reviews", mock.Anything, []string{action.TagReviews}).Return(nil)

	rec := f.serve(httptest.NewRequest("GET", "/api/reviews", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "excellent")
}

func TestReviewsCacheHitSkipsBackend(t *testing.T) {
	f := newHandlerFixture(t)
	f.sessions.On("Get", mock.Anything).Return(nil, errors.New("no session"))
	f.pages.On("Get", mock.Anything, "/api/reviews").Return([]byte(`[{"id":"r1"}]`), true)

	rec := f.serve(httptest.NewRequest("GET", "/api/reviews", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"r1"}]`, rec.Body.String())
	f.reviews.AssertNotCalled(t, "GetAll")
}

func TestMyOrdersRouteTakesPrecedenceOverOrderID(t *testing.T) {
	f := newHandlerFixture(t)
	f.sessions.On("Get", mock.Anything).Return(customerSession("u1"), nil)
	f.orders.On("GetMine", mock.Anything).Return([]domain.Order{{ID: "o1"}}, nil)

	rec := f.serve(httptest.NewRequest("GET", "/api/orders/me", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	f.orders.AssertNotCalled(t, "GetByID")
}

func TestAdminListUsersForbiddenForCustomers(t *testing.T) {
	f := newHandlerFixture(t)
	f.sessions.On("Get", mock.Anything).Return(customerSession("u1"), nil)

	rec := f.serve(httptest.NewRequest("GET", "/api/users", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	f.users.AssertNotCalled(t, "GetAll")
}

func TestUpdateUserStatusEndpoint(t *testing.T) {
	f := newHandlerFixture(t)
	f.sessions.On("Get", mock.Anything).Return(sessionWithRole("a1", domain.RoleAdmin), nil)
	f.users.On("Update", mock.Anything, "u2", client.UpdateUserInput{Status: domain.UserSuspended}).
		Return(&domain.User{ID: "u2", Status: domain.UserSuspended}, nil)
	f.inv.On("Invalidate", mock.Anything, []string{action.TagUsers})

	req := httptest.NewRequest("PATCH", "/api/users/u2/status", strings.NewReader(`{"status":"SUSPENDED"}`))
	rec := f.serve(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "SUSPENDED")
}

func TestOrderQRCode(t *testing.T) {
	f := newHandlerFixture(t)
	f.sessions.On("Get", mock.Anything).Return(customerSession("u1"), nil)
	f.orders.On("GetByID", mock.Anything, "o1").Return(&domain.Order{ID: "o1"}, nil)

	rec := f.serve(httptest.NewRequest("GET", "/api/orders/o1/qrcode", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))
}

func TestOrderQRCodeRequiresVisibleOrder(t *testing.T) {
	f := newHandlerFixture(t)
	f.sessions.On("Get", mock.Anything).Return(customerSession("u1"), nil)
	f.orders.On("GetByID", mock.Anything, "o9").
		Return(nil, &client.APIError{Op: "fetch order", Status: http.StatusNotFound})

	rec := f.serve(httptest.NewRequest("GET", "/api/orders/o9/qrcode", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
