package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// -------- auth --------

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// -------- catalog --------

type ProductQuery struct {
	CategoryID uint
	Search     string
	Page       int
	PerPage    int
}

func (c *Client) ListProducts(ctx context.Context, q ProductQuery) (*ProductListResponse, error) {
	query := url.Values{}
	if q.CategoryID != 0 {
		query.Set("category_id", strconv.FormatUint(uint64(q.CategoryID), 10))
	}
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(q.PerPage))
	}

	var resp ProductListResponse
	if err := c.do(ctx, http.MethodGet, "/api/products", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetProduct(ctx context.Context, slug string) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(slug), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) ListCategories(ctx context.Context, categoryType string) ([]*Category, error) {
	query := url.Values{}
	if categoryType != "" {
		query.Set("type", categoryType)
	}

	var categories []*Category
	if err := c.do(ctx, http.MethodGet, "/api/categories", query, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// -------- content --------

func (c *Client) ListBlogs(ctx context.Context) ([]*Blog, error) {
	var blogs []*Blog
	if err := c.do(ctx, http.MethodGet, "/api/blogs", nil, nil, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (c *Client) GetBlog(ctx context.Context, slug string) (*Blog, error) {
	var blog Blog
	if err := c.do(ctx, http.MethodGet, "/api/blogs/"+url.PathEscape(slug), nil, nil, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

func (c *Client) ListProjects(ctx context.Context) ([]*Project, error) {
	var projects []*Project
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) GetProject(ctx context.Context, slug string) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodGet, "/api/projects/"+url.PathEscape(slug), nil, nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// -------- submissions --------

func (c *Client) CreateQuoteRequest(ctx context.Context, req QuoteRequestInput) error {
	return c.do(ctx, http.MethodPost, "/api/quote-requests", nil, req, nil)
}

func (c *Client) CreateContact(ctx context.Context, req ContactInput) error {
	return c.do(ctx, http.MethodPost, "/api/contact", nil, req, nil)
}

func (c *Client) SubscribeNewsletter(ctx context.Context, email string) error {
	body := struct {
		Email string `json:"email"`
	}{Email: email}
	return c.do(ctx, http.MethodPost, "/api/newsletter/subscribe", nil, body, nil)
}

// -------- orders --------

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", nil, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]*Order, error) {
	var orders []*Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id uint) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+strconv.FormatUint(uint64(id), 10), nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// -------- admin --------

func (c *Client) Dashboard(ctx context.Context, salesPeriod string) (*DashboardResponse, error) {
	query := url.Values{}
	if salesPeriod != "" {
		query.Set("sales_period", salesPeriod)
	}

	var resp DashboardResponse
	if err := c.do(ctx, http.MethodGet, "/api/admin/dashboard", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
