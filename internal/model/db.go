package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Order lifecycle statuses. Status and PaymentStatus evolve independently;
// no transition table is enforced.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
	OrderReturned   = "returned"
)

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

const (
	CategoryTypeProduct = "product"
	CategoryTypeBlog    = "blog"
)

// StringList stores a JSON array of strings in a single text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"size:255" json:"first_name"`
	LastName     string    `gorm:"size:255" json:"last_name"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Phone        string    `gorm:"size:64" json:"phone"`
	Company      string    `gorm:"size:255" json:"company"`
	IsAdmin      bool      `gorm:"index;not null;default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Category is shared by products and blog posts; Type separates the two
// taxonomies inside one table.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Slug        string    `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Type        string    `gorm:"size:32;index;not null;default:product" json:"type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Product struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	Slug          string          `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description   string          `gorm:"type:text" json:"description"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	StockQuantity int             `gorm:"not null;default:0" json:"stock_quantity"`
	CategoryID    uint            `gorm:"index;not null" json:"category_id"`
	Category      *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Images        StringList      `gorm:"type:text" json:"images"`
	MetaTitle     string          `gorm:"size:255" json:"meta_title"`
	MetaDesc      string          `gorm:"size:512" json:"meta_description"`
	MetaKeywords  string          `gorm:"size:512" json:"meta_keywords"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type Blog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Slug       string    `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Excerpt    string    `gorm:"size:512" json:"excerpt"`
	Content    string    `gorm:"type:text" json:"content"`
	CategoryID uint      `gorm:"index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Published  bool      `gorm:"index;not null;default:false" json:"published"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Project struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Slug        string    `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	ClientName  string    `gorm:"size:255" json:"client_name"`
	Status      string    `gorm:"size:64" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Order struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	UserID           *uint           `gorm:"index" json:"user_id"`
	User             *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ShippingAddress  string          `gorm:"type:text" json:"shipping_address"`
	BillingAddress   string          `gorm:"type:text" json:"billing_address"`
	SubTotal         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"sub_total"`
	VatAmount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"vat_amount"`
	ShippingCost     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"shipping_cost"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	Status           string          `gorm:"size:32;index;not null;default:pending" json:"status"`
	PaymentMethod    string          `gorm:"size:64" json:"payment_method"`
	PaymentStatus    string          `gorm:"size:32;index;not null;default:pending" json:"payment_status"`
	PaymentReference string          `gorm:"size:128" json:"payment_reference"`
	Notes            string          `gorm:"type:text" json:"notes"`
	Items            []OrderItem     `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	OrderID    uint            `gorm:"index;not null" json:"order_id"`
	ProductID  uint            `gorm:"index;not null" json:"product_id"`
	Product    *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

type QuoteRequest struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"size:255;not null" json:"name"`
	Email              string    `gorm:"size:255;not null" json:"email"`
	Phone              string    `gorm:"size:64" json:"phone"`
	Company            string    `gorm:"size:255" json:"company"`
	ServiceOfInterest  string    `gorm:"size:255" json:"service_of_interest"`
	ProjectDescription string    `gorm:"type:text;not null" json:"project_description"`
	EstimatedBudget    string    `gorm:"size:255" json:"estimated_budget"`
	Timeline           string    `gorm:"size:255" json:"timeline"`
	ProductServiceName string    `gorm:"size:255" json:"product_service_name"`
	Status             string    `gorm:"size:32;index;not null;default:pending" json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type ContactSubmission struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Phone     string    `gorm:"size:64" json:"phone"`
	Subject   string    `gorm:"size:255" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type NewsletterSubscription struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
