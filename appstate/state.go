// Package appstate holds the client application state: the signed-in user,
// cart, wishlist, search and filter inputs, and transient notifications.
// All mutation goes through Store methods, which serialize under one mutex.
package appstate

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is the client-side view of the authenticated profile.
type User struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
}

// Product is the subset of catalog data the cart and wishlist carry.
type Product struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Slug  string          `json:"slug"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

type CartEntry struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type WishlistEntry struct {
	Product Product `json:"product"`
}

const (
	NotificationSuccess = "success"
	NotificationError   = "error"
	NotificationWarning = "warning"
	NotificationInfo    = "info"
)

type Notification struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type Filters struct {
	Category   string `json:"category"`
	PriceRange string `json:"price_range"`
	Brand      string `json:"brand"`
}

// FilterPatch updates only the fields that are set. Nil fields keep the
// current value.
type FilterPatch struct {
	Category   *string
	PriceRange *string
	Brand      *string
}

// State is a point-in-time snapshot of the store.
type State struct {
	User            *User
	IsAuthenticated bool
	Cart            []CartEntry
	Wishlist        []WishlistEntry
	SearchQuery     string
	Filters         Filters
	IsLoading       bool
	Notifications   []Notification
}
