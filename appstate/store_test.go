package appstate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()

	session := NewFileSessionStore(filepath.Join(t.TempDir(), "session.json"))
	s := New(session, opts...)
	t.Cleanup(s.Close)
	return s
}

func pump() Product {
	return Product{ID: 1, Name: "Centrifugal Pump", Slug: "centrifugal-pump", Price: decimal.NewFromInt(100)}
}

func valve() Product {
	return Product{ID: 2, Name: "Gate Valve", Slug: "gate-valve", Price: decimal.NewFromInt(50)}
}

func TestAddToCartIncrementsExistingLine(t *testing.T) {
	s := newTestStore(t)

	s.AddToCart(pump())
	s.AddToCart(valve())
	s.AddToCart(pump())

	cart := s.Snapshot().Cart
	if len(cart) != 2 {
		t.Fatalf("cart lines = %d, want 2", len(cart))
	}
	if cart[0].Product.ID != 1 || cart[0].Quantity != 2 {
		t.Errorf("line 0 = product %d qty %d, want product 1 qty 2", cart[0].Product.ID, cart[0].Quantity)
	}
	if cart[1].Product.ID != 2 || cart[1].Quantity != 1 {
		t.Errorf("line 1 = product %d qty %d, want product 2 qty 1", cart[1].Product.ID, cart[1].Quantity)
	}
}

func TestUpdateCartQuantityZeroRemoves(t *testing.T) {
	s := newTestStore(t)

	s.AddToCart(pump())
	s.AddToCart(valve())

	s.UpdateCartQuantity(1, 5)
	if cart := s.Snapshot().Cart; cart[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", cart[0].Quantity)
	}

	// Zero quantity behaves exactly like removal.
	s.UpdateCartQuantity(1, 0)
	cart := s.Snapshot().Cart
	if len(cart) != 1 || cart[0].Product.ID != 2 {
		t.Errorf("cart = %+v, want only product 2", cart)
	}

	s.RemoveFromCart(2)
	if cart := s.Snapshot().Cart; len(cart) != 0 {
		t.Errorf("cart = %+v, want empty", cart)
	}

	// Removing again is a no-op.
	s.RemoveFromCart(2)
	s.UpdateCartQuantity(99, 0)
}

func TestWishlistIdempotent(t *testing.T) {
	s := newTestStore(t)

	s.AddToWishlist(pump())
	s.AddToWishlist(pump())

	wishlist := s.Snapshot().Wishlist
	if len(wishlist) != 1 {
		t.Fatalf("wishlist = %d entries, want 1", len(wishlist))
	}

	s.RemoveFromWishlist(1)
	s.RemoveFromWishlist(1)
	if wishlist := s.Snapshot().Wishlist; len(wishlist) != 0 {
		t.Errorf("wishlist = %+v, want empty", wishlist)
	}
}

func TestSetFiltersShallowMerge(t *testing.T) {
	s := newTestStore(t)

	category := "pumps"
	brand := "acme"
	s.SetFilters(FilterPatch{Category: &category, Brand: &brand})

	priceRange := "100-500"
	s.SetFilters(FilterPatch{PriceRange: &priceRange})

	filters := s.Snapshot().Filters
	if filters.Category != "pumps" || filters.Brand != "acme" || filters.PriceRange != "100-500" {
		t.Errorf("filters = %+v, want pumps/acme/100-500", filters)
	}
}

func TestNotificationExpiry(t *testing.T) {
	s := newTestStore(t, WithTTL(30*time.Millisecond))

	id := s.AddNotification(NotificationInfo, "Heads up", "something happened")
	if len(s.Snapshot().Notifications) != 1 {
		t.Fatal("notification not added")
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(s.Snapshot().Notifications) == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Errorf("notification %d still present after TTL", id)
}

func TestRemoveNotificationCancelsExpiry(t *testing.T) {
	s := newTestStore(t, WithTTL(30*time.Millisecond))

	id := s.AddNotification(NotificationError, "Oops", "details")
	s.RemoveNotification(id)
	s.RemoveNotification(id) // idempotent

	if n := s.Snapshot().Notifications; len(n) != 0 {
		t.Errorf("notifications = %+v, want empty", n)
	}

	// The stale expiry entry must not disturb later notifications.
	time.Sleep(60 * time.Millisecond)
	s.AddNotification(NotificationSuccess, "Fine", "still works")
	if n := s.Snapshot().Notifications; len(n) != 1 {
		t.Errorf("notifications = %d, want 1", len(n))
	}
}

func TestNotificationIDsUnique(t *testing.T) {
	s := newTestStore(t, WithClock(func() time.Time {
		return time.Unix(0, 42) // frozen clock forces collisions
	}))

	a := s.AddNotification(NotificationInfo, "a", "")
	b := s.AddNotification(NotificationInfo, "b", "")
	if a == b {
		t.Errorf("ids collide: %d", a)
	}
	if b <= a {
		t.Errorf("ids not monotonic: %d then %d", a, b)
	}
}

func TestLoginPersistsAndLogoutClears(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	session := NewFileSessionStore(path)

	s := New(session)
	s.AddToCart(pump())
	s.AddToWishlist(valve())

	user := User{ID: 7, FirstName: "Ada", Email: "ada@example.com"}
	if err := s.Login(user, "token-123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if s.Token() != "token-123" {
		t.Errorf("token = %q, want token-123", s.Token())
	}
	s.Close()

	// A fresh store over the same file restores the identity, not the cart.
	s2 := New(NewFileSessionStore(path))
	st := s2.Snapshot()
	if !st.IsAuthenticated || st.User == nil || st.User.ID != 7 {
		t.Fatalf("restored state = %+v, want user 7 authenticated", st)
	}
	if len(st.Cart) != 0 || len(st.Wishlist) != 0 {
		t.Error("cart and wishlist must not survive restarts")
	}

	s2.AddToCart(pump())
	s2.Logout()
	st = s2.Snapshot()
	if st.IsAuthenticated || st.User != nil {
		t.Error("logout kept the identity")
	}
	if len(st.Cart) != 0 {
		t.Error("logout kept the cart")
	}
	if s2.Token() != "" {
		t.Error("logout kept the token")
	}
	s2.Close()

	// Logout before a later login leaves no stale cart behind.
	s3 := New(NewFileSessionStore(path))
	defer s3.Close()
	if err := s3.Login(user, "token-456"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if cart := s3.Snapshot().Cart; len(cart) != 0 {
		t.Errorf("cart after fresh login = %+v, want empty", cart)
	}
}

func TestCorruptSessionPurged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := New(NewFileSessionStore(path))
	defer s.Close()

	st := s.Snapshot()
	if st.IsAuthenticated || st.User != nil {
		t.Errorf("state = %+v, want signed out", st)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt session file not purged")
	}
}

func TestCorruptProfilePurgesSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	raw, _ := json.Marshal(map[string]string{
		SessionKeyToken:   "token-123",
		SessionKeyProfile: "{broken",
	})
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	session := NewFileSessionStore(path)
	s := New(session)
	defer s.Close()

	if st := s.Snapshot(); st.IsAuthenticated {
		t.Error("unparseable profile must mean no session")
	}
	if _, ok := session.Get(SessionKeyToken); ok {
		t.Error("token survived a corrupt profile")
	}
}
