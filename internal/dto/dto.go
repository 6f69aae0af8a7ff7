package dto

import (
	"engistore/internal/model"
	"engistore/internal/repository"

	"github.com/shopspring/decimal"
)

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

type AuthResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

type ProductRequest struct {
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	CategoryID    uint            `json:"category_id"`
	Images        []string        `json:"images"`
	MetaTitle     string          `json:"meta_title"`
	MetaDesc      string          `json:"meta_description"`
	MetaKeywords  string          `json:"meta_keywords"`
}

type CategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type BlogRequest struct {
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Excerpt    string `json:"excerpt"`
	Content    string `json:"content"`
	CategoryID uint   `json:"category_id"`
	Published  bool   `json:"published"`
}

type ProjectRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ClientName  string `json:"client_name"`
	Status      string `json:"status"`
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

type NewsletterInput struct {
	Email string `json:"email"`
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

type UpdateOrderStatusRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

type UpdateQuoteStatusRequest struct {
	Status string `json:"status"`
}

type ProductListResponse struct {
	Products []*model.Product `json:"products"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PerPage  int              `json:"per_page"`
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
	ID     uint             `json:"id"`
	Name   string           `json:"name"`
	Price  decimal.Decimal  `json:"price"`
	Images model.StringList `json:"images"`
}

type DashboardOrder struct {
	ID          uint            `json:"id"`
	UserID      *uint           `json:"user_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"created_at"`
	User        *model.User     `json:"user"`
}

type DashboardResponse struct {
	Stats               DashboardStats             `json:"stats"`
	TopCategories       []repository.CategorySales `json:"topCategories"`
	LatestProducts      []DashboardProduct         `json:"latestProducts"`
	RecentOrders        []DashboardOrder           `json:"recentOrders"`
	SelectedSalesPeriod string                     `json:"selectedSalesPeriod"`
}
