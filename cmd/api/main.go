package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"engistore/internal/cache"
	"engistore/internal/client"
	"engistore/internal/config"
	"engistore/internal/logging"
	"engistore/internal/queue"
	"engistore/internal/repository"
	"engistore/internal/server"
	"engistore/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := client.InitMysqlClient(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}

	// Redis is an optimization; a failed connection degrades to DB reads.
	rdb, err := client.InitRedisClient(&cfg.Redis)
	if err != nil {
		logger.Warn("redis unavailable, product cache disabled", zap.Error(err))
		rdb = nil
	}

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	quoteRepo := repository.NewQuoteRequestRepository(db)
	contactRepo := repository.NewContactRepository(db)
	newsletterRepo := repository.NewNewsletterRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	var publisher queue.Publisher
	q, err := queue.New(&cfg.RabbitMQ, logger)
	if err != nil {
		logger.Warn("rabbitmq unavailable, notifications disabled", zap.Error(err))
	} else {
		defer q.Close()
		if err := q.SetupQueues(); err != nil {
			logger.Fatal("queue setup failed", zap.Error(err))
		}

		mailer := client.NewMailClient(&cfg.Mail)
		notifier := queue.NewNotifier(mailer, orderRepo, quoteRepo, contactRepo, logger)
		if err := q.StartConsumers(notifier); err != nil {
			logger.Fatal("queue consumers failed", zap.Error(err))
		}
		publisher = q
	}

	catalogCache := cache.NewCatalogCache(rdb)

	authService := service.NewAuthService(userRepo, &cfg.JWT)
	catalogService := service.NewCatalogService(productRepo, categoryRepo, catalogCache, logger)
	contentService := service.NewContentService(blogRepo, projectRepo)
	orderService := service.NewOrderService(db, orderRepo, productRepo, publisher, logger)
	submissionService := service.NewSubmissionService(quoteRepo, contactRepo, newsletterRepo, publisher, logger)
	dashboardService := service.NewDashboardService(dashboardRepo)

	srv := server.NewServer(cfg, logger,
		authService,
		catalogService,
		contentService,
		orderService,
		submissionService,
		dashboardService,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	logger.Info("starting HTTP server", zap.String("addr", serverAddr))
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		logger.Fatal("HTTP server shutdown error", zap.Error(err))
	}
}
