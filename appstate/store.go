package appstate

import (
	"encoding/json"
	"sync"
	"time"
)

const defaultNotificationTTL = 5 * time.Second

// Store is the client application state container. Every action is a method
// that mutates state synchronously under the store mutex, so callers always
// observe a consistent snapshot.
type Store struct {
	mu      sync.Mutex
	state   State
	session SessionStore

	ttl    time.Duration
	now    func() time.Time
	lastID int64

	expiry expiryQueue
	kick   chan struct{}
	done   chan struct{}
}

type Option func(*Store)

// WithTTL overrides how long a notification stays before auto-expiry.
func WithTTL(d time.Duration) Option {
	return func(s *Store) { s.ttl = d }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(session SessionStore, opts ...Option) *Store {
	s := &Store{
		session: session,
		ttl:     defaultNotificationTTL,
		now:     time.Now,
		kick:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.restoreSession()
	go s.expiryLoop()
	return s
}

// Close stops the notification expiry goroutine.
func (s *Store) Close() {
	close(s.done)
}

// restoreSession rebuilds the signed-in state from persisted data. Anything
// unreadable is purged and treated as no session.
func (s *Store) restoreSession() {
	if s.session == nil {
		return
	}

	token, ok := s.session.Get(SessionKeyToken)
	if !ok || token == "" {
		return
	}

	raw, ok := s.session.Get(SessionKeyProfile)
	if !ok {
		s.clearSessionKeys()
		return
	}

	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.clearSessionKeys()
		return
	}

	s.state.User = &user
	s.state.IsAuthenticated = true
}

func (s *Store) clearSessionKeys() {
	if s.session == nil {
		return
	}
	s.session.Delete(SessionKeyToken)
	s.session.Delete(SessionKeyProfile)
}

// Snapshot returns a copy of the current state. Slices are cloned so the
// caller can iterate without holding the store lock.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Cart = append([]CartEntry(nil), s.state.Cart...)
	st.Wishlist = append([]WishlistEntry(nil), s.state.Wishlist...)
	st.Notifications = append([]Notification(nil), s.state.Notifications...)
	if s.state.User != nil {
		u := *s.state.User
		st.User = &u
	}
	return st
}

// Token returns the persisted auth token, if any.
func (s *Store) Token() string {
	if s.session == nil {
		return ""
	}
	token, _ := s.session.Get(SessionKeyToken)
	return token
}

func (s *Store) SetUser(user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.User = user
	s.state.IsAuthenticated = user != nil
}

// Login records the authenticated user and persists the session.
func (s *Store) Login(user User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.User = &user
	s.state.IsAuthenticated = true

	if s.session == nil {
		return nil
	}
	if err := s.session.Set(SessionKeyToken, token); err != nil {
		return err
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.session.Set(SessionKeyProfile, string(raw))
}

// Logout clears the identity, cart and wishlist, and evicts the session.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.User = nil
	s.state.IsAuthenticated = false
	s.state.Cart = nil
	s.state.Wishlist = nil

	s.clearSessionKeys()
}

// AddToCart increments the quantity for a product already in the cart, or
// appends it with quantity 1.
func (s *Store) AddToCart(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Cart {
		if s.state.Cart[i].Product.ID == p.ID {
			s.state.Cart[i].Quantity++
			s.addNotificationLocked(NotificationSuccess, "Added to cart", p.Name)
			return
		}
	}
	s.state.Cart = append(s.state.Cart, CartEntry{Product: p, Quantity: 1})
	s.addNotificationLocked(NotificationSuccess, "Added to cart", p.Name)
}

func (s *Store) RemoveFromCart(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeFromCartLocked(productID)
}

func (s *Store) removeFromCartLocked(productID uint) {
	for i := range s.state.Cart {
		if s.state.Cart[i].Product.ID == productID {
			s.state.Cart = append(s.state.Cart[:i], s.state.Cart[i+1:]...)
			return
		}
	}
}

// UpdateCartQuantity sets the quantity for a cart line. Zero or negative
// removes the line.
func (s *Store) UpdateCartQuantity(productID uint, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeFromCartLocked(productID)
		return
	}
	for i := range s.state.Cart {
		if s.state.Cart[i].Product.ID == productID {
			s.state.Cart[i].Quantity = quantity
			return
		}
	}
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Cart = nil
}

// AddToWishlist is idempotent: a product already on the list is left alone.
func (s *Store) AddToWishlist(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Wishlist {
		if s.state.Wishlist[i].Product.ID == p.ID {
			return
		}
	}
	s.state.Wishlist = append(s.state.Wishlist, WishlistEntry{Product: p})
	s.addNotificationLocked(NotificationSuccess, "Added to wishlist", p.Name)
}

func (s *Store) RemoveFromWishlist(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Wishlist {
		if s.state.Wishlist[i].Product.ID == productID {
			s.state.Wishlist = append(s.state.Wishlist[:i], s.state.Wishlist[i+1:]...)
			return
		}
	}
}

func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SearchQuery = query
}

// SetFilters merges the patch into the current filters. Only set fields
// change.
func (s *Store) SetFilters(patch FilterPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Category != nil {
		s.state.Filters.Category = *patch.Category
	}
	if patch.PriceRange != nil {
		s.state.Filters.PriceRange = *patch.PriceRange
	}
	if patch.Brand != nil {
		s.state.Filters.Brand = *patch.Brand
	}
}

func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.IsLoading = loading
}

// AddNotification appends a notification and schedules its expiry. The id is
// derived from the clock and bumped on collision, so ids are unique and
// monotonic within a store.
func (s *Store) AddNotification(kind, title, message string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addNotificationLocked(kind, title, message)
}

func (s *Store) addNotificationLocked(kind, title, message string) int64 {
	now := s.now()
	id := now.UnixNano()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	s.state.Notifications = append(s.state.Notifications, Notification{
		ID:        id,
		Kind:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: now,
	})
	s.scheduleExpiryLocked(id)
	return id
}

// RemoveNotification drops a notification by id. Unknown ids are ignored;
// the pending expiry entry becomes a no-op.
func (s *Store) RemoveNotification(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeNotificationLocked(id)
}

func (s *Store) removeNotificationLocked(id int64) {
	for i := range s.state.Notifications {
		if s.state.Notifications[i].ID == id {
			s.state.Notifications = append(s.state.Notifications[:i], s.state.Notifications[i+1:]...)
			return
		}
	}
}
