package apiclient

import (
	"time"

	"github.com/shopspring/decimal"
)

// The request and response types below mirror the server's JSON wire format.
// They are defined here, not shared with the server, so the package stays
// importable by programs outside this module.

type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type User struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type Category struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type Product struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	CategoryID    uint            `json:"category_id"`
	Category      *Category       `json:"category,omitempty"`
	Images        []string        `json:"images"`
	MetaTitle     string          `json:"meta_title"`
	MetaDesc      string          `json:"meta_description"`
	MetaKeywords  string          `json:"meta_keywords"`
	CreatedAt     time.Time       `json:"created_at"`
}

type ProductListResponse struct {
	Products []*Product `json:"products"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PerPage  int        `json:"per_page"`
}

type Blog struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Excerpt    string    `json:"excerpt"`
	Content    string    `json:"content"`
	CategoryID uint      `json:"category_id"`
	Category   *Category `json:"category,omitempty"`
	Published  bool      `json:"published"`
	CreatedAt  time.Time `json:"created_at"`
}

type Project struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	ClientName  string    `json:"client_name"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type QuoteRequestInput struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Company            string `json:"company"`
	ServiceOfInterest  string `json:"service_of_interest"`
	ProjectDescription string `json:"project_description"`
	EstimatedBudget    string `json:"estimated_budget"`
	Timeline           string `json:"timeline"`
	ProductServiceName string `json:"product_service_name"`
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type OrderItemInput struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type CreateOrderRequest struct {
	Items           []OrderItemInput `json:"items"`
	ShippingAddress string           `json:"shipping_address"`
	BillingAddress  string           `json:"billing_address"`
	PaymentMethod   string           `json:"payment_method"`
	Notes           string           `json:"notes"`
}

type OrderItem struct {
	ID         uint            `json:"id"`
	OrderID    uint            `json:"order_id"`
	ProductID  uint            `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type Order struct {
	ID               uint            `json:"id"`
	UserID           *uint           `json:"user_id"`
	ShippingAddress  string          `json:"shipping_address"`
	BillingAddress   string          `json:"billing_address"`
	SubTotal         decimal.Decimal `json:"sub_total"`
	VatAmount        decimal.Decimal `json:"vat_amount"`
	ShippingCost     decimal.Decimal `json:"shipping_cost"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Status           string          `json:"status"`
	PaymentMethod    string          `json:"payment_method"`
	PaymentStatus    string          `json:"payment_status"`
	PaymentReference string          `json:"payment_reference"`
	Notes            string          `json:"notes"`
	Items            []OrderItem     `json:"items,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

type CategorySales struct {
	CategoryName string          `json:"category_name"`
	TotalSales   decimal.Decimal `json:"total_sales"`
}

type DashboardStats struct {
	TotalOrders        int64           `json:"totalOrders"`
	PendingOrders      int64           `json:"pendingOrders"`
	ConfirmedOrders    int64           `json:"confirmedOrders"`
	CancelledOrders    int64           `json:"cancelledOrders"`
	ShippedOrders      int64           `json:"shippedOrders"`
	DeliveredOrders    int64           `json:"deliveredOrders"`
	ReturnedOrders     int64           `json:"returnedOrders"`
	TotalCustomers     int64           `json:"totalCustomers"`
	TotalQuoteRequests int64           `json:"totalQuoteRequests"`
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
}

type DashboardProduct struct {
	ID     uint            `json:"id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Images []string        `json:"images"`
}

type DashboardOrder struct {
	ID          uint            `json:"id"`
	UserID      *uint           `json:"user_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"created_at"`
	User        *User           `json:"user"`
}

type DashboardResponse struct {
	Stats               DashboardStats     `json:"stats"`
	TopCategories       []CategorySales    `json:"topCategories"`
	LatestProducts      []DashboardProduct `json:"latestProducts"`
	RecentOrders        []DashboardOrder   `json:"recentOrders"`
	SelectedSalesPeriod string             `json:"selectedSalesPeriod"`
}
