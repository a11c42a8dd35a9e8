package domain

import "time"

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleProvider Role = "PROVIDER"
	RoleAdmin    Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleProvider, RoleAdmin:
		return true
	}
	return false
}

type UserStatus string

const (
	UserActive    UserStatus = "ACTIVE"
	UserSuspended UserStatus = "SUSPENDED"
)

func (s UserStatus) Valid() bool {
	return s == UserActive || s == UserSuspended
}

// Order status transitions happen only on the backend; the values here are
// what it is known to emit.
type OrderStatus string

const (
	OrderPlaced    OrderStatus = "PLACED"
	OrderPreparing OrderStatus = "PREPARING"
	OrderReady     OrderStatus = "READY"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPlaced, OrderPreparing, OrderReady, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type User struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	EmailVerified bool       `json:"emailVerified"`
	Image         string     `json:"image,omitempty"`
	Role          Role       `json:"role"`
	Status        UserStatus `json:"status"`
	Phone         string     `json:"phone,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Provider struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	ShopName    string    `json:"shopName"`
	Description string    `json:"description,omitempty"`
	Address     string    `json:"address,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	LogoURL     string    `json:"logoUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	User        *User     `json:"user,omitempty"`
}

type Meal struct {
	ID          string    `json:"id"`
	ProviderID  string    `json:"providerId"`
	CategoryID  string    `json:"categoryId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Cuisine     string    `json:"cuisine,omitempty"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Provider    *Provider `json:"provider,omitempty"`
	Category    *Category `json:"category,omitempty"`
}

// OrderItem is a single order line. An empty OrderID marks a draft cart entry
// that has not yet been committed into an order.
type OrderItem struct {
	ID         string  `json:"id"`
	OrderID    string  `json:"orderId,omitempty"`
	CustomerID string  `json:"customerId"`
	MealID     string  `json:"mealId"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	LineTotal  float64 `json:"lineTotal"`
	Meal       *Meal   `json:"meal,omitempty"`
}

func (i OrderItem) IsDraft() bool {
	return i.OrderID == ""
}

type Order struct {
	ID              string      `json:"id"`
	Status          OrderStatus `json:"status"`
	DeliveryAddress string      `json:"deliveryAddress"`
	Phone           string      `json:"phone"`
	Note            string      `json:"note,omitempty"`
	SubTotal        float64     `json:"subTotal"`
	DeliveryFee     float64     `json:"deliveryFee"`
	Total           float64     `json:"total"`
	Items           []OrderItem `json:"items"`
	Customer        *User       `json:"customer,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

type Review struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	MealID     string    `json:"mealId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	Customer   *User     `json:"customer,omitempty"`
}

type SessionInfo struct {
	UserID    string    `json:"userId"`
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Session is the payload returned by the auth provider's session endpoint.
// Shapes vary between versions: some carry the user id on the session record,
// some only on the user object.
type Session struct {
	User    *User        `json:"user"`
	Session *SessionInfo `json:"session"`
}

func (s *Session) UserID() string {
	if s == nil {
		return ""
	}
	if s.Session != nil && s.Session.UserID != "" {
		return s.Session.UserID
	}
	if s.User != nil {
		return s.User.ID
	}
	return ""
}

func (s *Session) Role() Role {
	if s == nil || s.User == nil {
		return ""
	}
	return s.User.Role
}
