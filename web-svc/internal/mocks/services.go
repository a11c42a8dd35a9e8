package mocks

import (
	"context"

	"mealgate/web-svc/internal/client"
	"mealgate/web-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MealsServiceInterface struct {
	mock.Mock
}

func NewMealsServiceInterface(t testingT) *MealsServiceInterface {
	m := &MealsServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MealsServiceInterface) GetAll(ctx context.Context, params client.MealsListParams) ([]domain.Meal, error) {
	ret := m.Called(ctx, params)
	var meals []domain.Meal
	if ret.Get(0) != nil {
		meals = ret.Get(0).([]domain.Meal)
	}
	return meals, ret.Error(1)
}

func (m *MealsServiceInterface) GetByID(ctx context.Context, id string) (*domain.Meal, error) {
	ret := m.Called(ctx, id)
	var meal *domain.Meal
	if ret.Get(0) != nil {
		meal = ret.Get(0).(*domain.Meal)
	}
	return meal, ret.Error(1)
}

func (m *MealsServiceInterface) Create(ctx context.Context, input client.CreateMealInput) (*domain.Meal, error) {
	ret := m.Called(ctx, input)
	var meal *domain.Meal
	if ret.Get(0) != nil {
		meal = ret.Get(0).(*domain.Meal)
	}
	return meal, ret.Error(1)
}

func (m *MealsServiceInterface) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type CategoriesServiceInterface struct {
	mock.Mock
}

func NewCategoriesServiceInterface(t testingT) *CategoriesServiceInterface {
	m := &CategoriesServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CategoriesServiceInterface) GetAll(ctx context.Context) ([]domain.Category, error) {
	ret := m.Called(ctx)
	var categories []domain.Category
	if ret.Get(0) != nil {
		categories = ret.Get(0).([]domain.Category)
	}
	return categories, ret.Error(1)
}

func (m *CategoriesServiceInterface) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	ret := m.Called(ctx, id)
	var category *domain.Category
	if ret.Get(0) != nil {
		category = ret.Get(0).(*domain.Category)
	}
	return category, ret.Error(1)
}

func (m *CategoriesServiceInterface) Create(ctx context.Context, input client.CreateCategoryInput) (*domain.Category, error) {
	ret := m.Called(ctx, input)
	var category *domain.Category
	if ret.Get(0) != nil {
		category = ret.Get(0).(*domain.Category)
	}
	return category, ret.Error(1)
}

func (m *CategoriesServiceInterface) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type ProvidersServiceInterface struct {
	mock.Mock
}

func NewProvidersServiceInterface(t testingT) *ProvidersServiceInterface {
	m := &ProvidersServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ProvidersServiceInterface) GetAll(ctx context.Context) ([]domain.Provider, error) {
	ret := m.Called(ctx)
	var providers []domain.Provider
	if ret.Get(0) != nil {
		providers = ret.Get(0).([]domain.Provider)
	}
	return providers, ret.Error(1)
}

func (m *ProvidersServiceInterface) GetByID(ctx context.Context, id string) (*domain.Provider, error) {
	ret := m.Called(ctx, id)
	var provider *domain.Provider
	if ret.Get(0) != nil {
		provider = ret.Get(0).(*domain.Provider)
	}
	return provider, ret.Error(1)
}

func (m *ProvidersServiceInterface) Create(ctx context.Context, input client.CreateProviderInput) (*domain.Provider, error) {
	ret := m.Called(ctx, input)
	var provider *domain.Provider
	if ret.Get(0) != nil {
		provider = ret.Get(0).(*domain.Provider)
	}
	return provider, ret.Error(1)
}

type UsersServiceInterface struct {
	mock.Mock
}

func NewUsersServiceInterface(t testingT) *UsersServiceInterface {
	m := &UsersServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UsersServiceInterface) GetMe(ctx context.Context) (*domain.User, error) {
	ret := m.Called(ctx)
	var user *domain.User
	if ret.Get(0) != nil {
		user = ret.Get(0).(*domain.User)
	}
	return user, ret.Error(1)
}

func (m *UsersServiceInterface) GetAll(ctx context.Context) ([]domain.User, error) {
	ret := m.Called(ctx)
	var users []domain.User
	if ret.Get(0) != nil {
		users = ret.Get(0).([]domain.User)
	}
	return users, ret.Error(1)
}

func (m *UsersServiceInterface) Update(ctx context.Context, id string, input client.UpdateUserInput) (*domain.User, error) {
	ret := m.Called(ctx, id, input)
	var user *domain.User
	if ret.Get(0) != nil {
		user = ret.Get(0).(*domain.User)
	}
	return user, ret.Error(1)
}

func (m *UsersServiceInterface) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type ReviewsServiceInterface struct {
	mock.Mock
}

func NewReviewsServiceInterface(t testingT) *ReviewsServiceInterface {
	m := &ReviewsServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ReviewsServiceInterface) GetAll(ctx context.Context) ([]domain.Review, error) {
	ret := m.Called(ctx)
	var reviews []domain.Review
	if ret.Get(0) != nil {
		reviews = ret.Get(0).([]domain.Review)
	}
	return reviews, ret.Error(1)
}

func (m *ReviewsServiceInterface) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	ret := m.Called(ctx, id)
	var review *domain.Review
	if ret.Get(0) != nil {
		review = ret.Get(0).(*domain.Review)
	}
	return review, ret.Error(1)
}

func (m *ReviewsServiceInterface) Create(ctx context.Context, input client.CreateReviewInput) (*domain.Review, error) {
	ret := m.Called(ctx, input)
	var review *domain.Review
	if ret.Get(0) != nil {
		review = ret.Get(0).(*domain.Review)
	}
	return review, ret.Error(1)
}

type OrdersServiceInterface struct {
	mock.Mock
}

func NewOrdersServiceInterface(t testingT) *OrdersServiceInterface {
	m := &OrdersServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrdersServiceInterface) GetAll(ctx context.Context) ([]domain.Order, error) {
	ret := m.Called(ctx)
	var orders []domain.Order
	if ret.Get(0) != nil {
		orders = ret.Get(0).([]domain.Order)
	}
	return orders, ret.Error(1)
}

func (m *OrdersServiceInterface) GetMine(ctx context.Context) ([]domain.Order, error) {
	ret := m.Called(ctx)
	var orders []domain.Order
	if ret.Get(0) != nil {
		orders = ret.Get(0).([]domain.Order)
	}
	return orders, ret.Error(1)
}

func (m *OrdersServiceInterface) GetByProvider(ctx context.Context) ([]domain.Order, error) {
	ret := m.Called(ctx)
	var orders []domain.Order
	if ret.Get(0) != nil {
		orders = ret.Get(0).([]domain.Order)
	}
	return orders, ret.Error(1)
}

func (m *OrdersServiceInterface) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	ret := m.Called(ctx, id)
	var order *domain.Order
	if ret.Get(0) != nil {
		order = ret.Get(0).(*domain.Order)
	}
	return order, ret.Error(1)
}

func (m *OrdersServiceInterface) CreateFromDrafts(ctx context.Context, input client.CreateOrderFromDraftsInput) (*domain.Order, error) {
	ret := m.Called(ctx, input)
	var order *domain.Order
	if ret.Get(0) != nil {
		order = ret.Get(0).(*domain.Order)
	}
	return order, ret.Error(1)
}

func (m *OrdersServiceInterface) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	ret := m.Called(ctx, id, status)
	var order *domain.Order
	if ret.Get(0) != nil {
		order = ret.Get(0).(*domain.Order)
	}
	return order, ret.Error(1)
}

type OrderItemsServiceInterface struct {
	mock.Mock
}

func NewOrderItemsServiceInterface(t testingT) *OrderItemsServiceInterface {
	m := &OrderItemsServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderItemsServiceInterface) GetDrafts(ctx context.Context) ([]domain.OrderItem, error) {
	ret := m.Called(ctx)
	var items []domain.OrderItem
	if ret.Get(0) != nil {
		items = ret.Get(0).([]domain.OrderItem)
	}
	return items, ret.Error(1)
}

func (m *OrderItemsServiceInterface) Create(ctx context.Context, input client.CreateOrderItemInput) (*domain.OrderItem, error) {
	ret := m.Called(ctx, input)
	var item *domain.OrderItem
	if ret.Get(0) != nil {
		item = ret.Get(0).(*domain.OrderItem)
	}
	return item, ret.Error(1)
}

func (m *OrderItemsServiceInterface) UpdateQuantity(ctx context.Context, itemID string, quantity int) (*domain.OrderItem, error) {
	ret := m.Called(ctx, itemID, quantity)
	var item *domain.OrderItem
	if ret.Get(0) != nil {
		item = ret.Get(0).(*domain.OrderItem)
	}
	return item, ret.Error(1)
}

func (m *OrderItemsServiceInterface) Remove(ctx context.Context, itemID string) error {
	return m.Called(ctx, itemID).Error(0)
}

type SessionServiceInterface struct {
	mock.Mock
}

func NewSessionServiceInterface(t testingT) *SessionServiceInterface {
	m := &SessionServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SessionServiceInterface) Get(ctx context.Context) (*domain.Session, error) {
	ret := m.Called(ctx)
	var sess *domain.Session
	if ret.Get(0) != nil {
		sess = ret.Get(0).(*domain.Session)
	}
	return sess, ret.Error(1)
}
