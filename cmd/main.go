package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/eriju-studio/storefront-service/internal/app"
	"github.com/eriju-studio/storefront-service/internal/cart"
	"github.com/eriju-studio/storefront-service/internal/config"
	"github.com/eriju-studio/storefront-service/internal/events"
	"github.com/eriju-studio/storefront-service/internal/handler"
	"github.com/eriju-studio/storefront-service/internal/notifier"
	"github.com/eriju-studio/storefront-service/internal/postgres"
	storeredis "github.com/eriju-studio/storefront-service/internal/redis"
	"github.com/eriju-studio/storefront-service/internal/repo"
	"github.com/eriju-studio/storefront-service/internal/service"
	"github.com/eriju-studio/storefront-service/pkg/cache"
	"github.com/eriju-studio/storefront-service/pkg/trm"

	_ "github.com/eriju-studio/storefront-service/docs"
	"github.com/joho/godotenv"
)

// @title           Storefront Service API
// @version         1.0
// @description     Catalog, cart, checkout and order lifecycle HTTP API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	redisClient, err := storeredis.New(ctx, conf.Redis)
	panicIfErr("failed to connect to redis", err)
	defer redisClient.Close()
	logger.Info("redis connected")

	ordersRepo := repo.NewOrdersRepo(db)
	productsRepo := repo.NewProductsRepo(db)
	txManager := trm.NewManager(db)
	listingCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	cartStore := cart.NewStore(logger, redisClient, conf.Redis.CartTTL)

	webhook := notifier.NewWebhookSender(logger, conf.Webhook)
	publisher := events.NewPublisher(logger, conf.Kafka)

	productService := service.NewProductService(logger, productsRepo, listingCache)
	cartService := service.NewCartService(logger, productsRepo, cartStore)
	orderService := service.NewOrderService(logger, txManager, ordersRepo, productsRepo, cartStore, webhook, publisher)

	httpHandler := handler.NewHTTPHandler(logger, orderService, cartService, productService)
	adminHandler := handler.NewAdminHandler(logger, conf.Admin.Key, orderService, productService)
	handler.RegisterMetrics()

	application := app.New(logger, conf)
	application.SetHTTPHandlers(httpHandler, adminHandler)
	application.SetStarters(listingCache, catalogWarmUpAdapter{svc: productService})
	application.SetClosers(publisher)

	panicIfErr("failed to start app", application.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", application.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type catalogWarmer interface {
	WarmUpCatalog(ctx context.Context) error
}

type catalogWarmUpAdapter struct {
	svc catalogWarmer
}

func (a catalogWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCatalog(ctx)
}
