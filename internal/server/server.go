package server

import (
	"engistore/internal/config"
	"engistore/internal/handler"
	appmiddleware "engistore/internal/middleware"
	"engistore/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Server struct {
	echo              *echo.Echo
	jwtSecret         string
	authHandler       *handler.AuthHandler
	catalogHandler    *handler.CatalogHandler
	contentHandler    *handler.ContentHandler
	orderHandler      *handler.OrderHandler
	submissionHandler *handler.SubmissionHandler
	dashboardHandler  *handler.DashboardHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	authService service.AuthService,
	catalogService service.CatalogService,
	contentService service.ContentService,
	orderService service.OrderService,
	submissionService service.SubmissionService,
	dashboardService service.DashboardService,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(appmiddleware.Metrics())

	s := &Server{
		echo:              e,
		jwtSecret:         cfg.JWT.Secret,
		authHandler:       handler.NewAuthHandler(authService),
		catalogHandler:    handler.NewCatalogHandler(catalogService),
		contentHandler:    handler.NewContentHandler(contentService),
		orderHandler:      handler.NewOrderHandler(orderService),
		submissionHandler: handler.NewSubmissionHandler(submissionService),
		dashboardHandler:  handler.NewDashboardHandler(dashboardService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- auth --------
	auth := api.Group("/auth")
	auth.POST("/register", s.authHandler.Register)
	auth.POST("/login", s.authHandler.Login)
	auth.GET("/me", s.authHandler.Me, appmiddleware.JWT(s.jwtSecret))

	// -------- public storefront --------
	api.GET("/products", s.catalogHandler.ListProducts)
	api.GET("/products/:slug", s.catalogHandler.GetProduct)
	api.GET("/categories", s.catalogHandler.ListCategories)
	api.GET("/blogs", s.contentHandler.ListBlogs)
	api.GET("/blogs/:slug", s.contentHandler.GetBlog)
	api.GET("/projects", s.contentHandler.ListProjects)
	api.GET("/projects/:slug", s.contentHandler.GetProject)

	// -------- public submissions --------
	api.POST("/quote-requests", s.submissionHandler.CreateQuoteRequest)
	api.POST("/contact", s.submissionHandler.CreateContact)
	api.POST("/newsletter/subscribe", s.submissionHandler.SubscribeNewsletter)

	// -------- orders --------
	orders := api.Group("/orders", appmiddleware.JWT(s.jwtSecret))
	orders.POST("", s.orderHandler.Create)
	orders.GET("", s.orderHandler.List)
	orders.GET("/:id", s.orderHandler.Get)

	// -------- admin --------
	admin := api.Group("/admin", appmiddleware.JWT(s.jwtSecret), appmiddleware.AdminOnly())
	admin.GET("/dashboard", s.dashboardHandler.Overview)

	admin.POST("/products", s.catalogHandler.CreateProduct)
	admin.PUT("/products/:id", s.catalogHandler.UpdateProduct)
	admin.DELETE("/products/:id", s.catalogHandler.DeleteProduct)

	admin.POST("/categories", s.catalogHandler.CreateCategory)
	admin.PUT("/categories/:id", s.catalogHandler.UpdateCategory)
	admin.DELETE("/categories/:id", s.catalogHandler.DeleteCategory)

	admin.GET("/blogs", s.contentHandler.AdminListBlogs)
	admin.POST("/blogs", s.contentHandler.CreateBlog)
	admin.PUT("/blogs/:id", s.contentHandler.UpdateBlog)
	admin.DELETE("/blogs/:id", s.contentHandler.DeleteBlog)

	admin.POST("/projects", s.contentHandler.CreateProject)
	admin.PUT("/projects/:id", s.contentHandler.UpdateProject)
	admin.DELETE("/projects/:id", s.contentHandler.DeleteProject)

	admin.GET("/quote-requests", s.submissionHandler.AdminListQuoteRequests)
	admin.PUT("/quote-requests/:id/status", s.submissionHandler.AdminUpdateQuoteStatus)
	admin.GET("/contact-submissions", s.submissionHandler.AdminListContacts)

	admin.GET("/orders", s.orderHandler.AdminList)
	admin.PUT("/orders/:id/status", s.orderHandler.AdminUpdateStatus)
}

// Echo exposes the router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
