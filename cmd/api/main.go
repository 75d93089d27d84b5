package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"rackline/internal/adapter/api"
	"rackline/internal/adapter/api/handler"
	apimiddleware "rackline/internal/adapter/api/middleware"
	"rackline/internal/adapter/api/router"
	"rackline/internal/adapter/repository"
	"rackline/internal/domain/entity"
	"rackline/internal/infrastructure/localstore"
	"rackline/internal/infrastructure/upstream"
	"rackline/internal/infrastructure/websocket"
	"rackline/internal/productcache"
	"rackline/internal/usecase"
	"rackline/pkg/config"
	"rackline/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	store, err := localstore.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open local store: %v", err)
	}

	upstreamClient := upstream.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamAPIKey)

	contentRepo := repository.NewLocalstoreContentRepository(store)
	productRepo := repository.NewLocalstoreProductRepository(store)
	orderRepo := repository.NewLocalstoreOrderRepository(store)
	submissionRepo := repository.NewLocalstoreSubmissionRepository(store)

	hub := websocket.NewHub()
	hub.Start(ctx)

	cache := productcache.New(upstreamClient, cfg.ProductCacheTTL)

	contentUseCase := usecase.NewContentUseCase(contentRepo, upstreamClient)
	productUseCase := usecase.NewProductUseCase(upstreamClient, cache, productRepo)
	categoryUseCase := usecase.NewCategoryUseCase(contentUseCase)
	blogUseCase := usecase.NewBlogUseCase(contentUseCase)
	orderUseCase := usecase.NewOrderUseCase(upstreamClient, orderRepo, hub)
	quoteUseCase := usecase.NewQuoteUseCase(upstreamClient, submissionRepo)
	trackingUseCase := usecase.NewTrackingUseCase(upstreamClient)

	// Surface settings changes that affect the rendered storefront.
	contentUseCase.Subscribe(func(state entity.ContentState) {
		logger.Debug("content changed: siteTitle=%q favicon=%q",
			state.Settings.SiteTitle, state.Settings.Favicon)
	})

	// The local-seeded state serves requests while the first upstream
	// sync runs in the background.
	go contentUseCase.Load(ctx)

	handler.Setup(
		contentUseCase,
		productUseCase,
		categoryUseCase,
		blogUseCase,
		orderUseCase,
		quoteUseCase,
		trackingUseCase,
		upstreamClient,
	)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(cfg.JWTSecret)
	adminMiddleware := apimiddleware.NewAdminMiddleware()

	wsHandler := handler.NewWebSocketHandler(hub, trackingUseCase, cfg.TrackPollEvery)

	router.Setup(e, authMiddleware, adminMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
