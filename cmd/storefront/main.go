package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/LahiruMudith/mack-trading-fn/internal/backend"
	"github.com/LahiruMudith/mack-trading-fn/internal/cache"
	"github.com/LahiruMudith/mack-trading-fn/internal/events"
	h "github.com/LahiruMudith/mack-trading-fn/internal/http"
	"github.com/LahiruMudith/mack-trading-fn/internal/payhere"
	"github.com/LahiruMudith/mack-trading-fn/internal/wizard"
)

type Config struct {
	HTTPPort        string
	BackendAPIURL   string
	BackendAPIToken string
	UserCacheKey    string
	RedisAddr       string
	KafkaBrokers    string
	PayhereLoaded   bool
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		BackendAPIURL:   getEnv("BACKEND_API_URL", "http://localhost:5000/mack-trading/api/v1"),
		BackendAPIToken: getEnv("BACKEND_API_TOKEN", ""),
		UserCacheKey:    getEnv("USER_CACHE_KEY", "default"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		KafkaBrokers:    getEnv("KAFKA_BROKERS", ""),
		PayhereLoaded:   getEnv("PAYHERE_ENABLED", "true") == "true",
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()

	apiClient := backend.NewClient(cfg.BackendAPIURL, backend.StaticToken(cfg.BackendAPIToken), cfg.RequestTimeout)

	var (
		addressProvider wizard.AddressProvider = apiClient
		cartProvider    wizard.CartProvider    = apiClient
		orderInitiator  wizard.OrderInitiator  = apiClient
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer redisClient.Close()

		cached := backend.NewCachedReader(apiClient, cache.NewRedisCache(redisClient), cfg.UserCacheKey)
		addressProvider, cartProvider, orderInitiator = cached, cached, cached
		log.Printf("read cache enabled via redis at %s", cfg.RedisAddr)
	}

	var publisher *events.Publisher
	if cfg.KafkaBrokers != "" {
		publisher = events.NewPublisher(strings.Split(cfg.KafkaBrokers, ",")...)
		defer publisher.Close()
		log.Printf("checkout events enabled via kafka at %s", cfg.KafkaBrokers)
	}

	widget := payhere.NewHostedWidget(cfg.PayhereLoaded)
	sessions := wizard.NewStore()
	buildWizard := func(id string) *wizard.Wizard {
		return wizard.New(id, addressProvider, cartProvider, orderInitiator, payhere.NewBridge(widget), publisher)
	}

	checkoutHandler := h.NewCheckoutHandler(sessions, buildWizard, cfg.RequestTimeout)
	paymentHandler := h.NewPaymentHandler(sessions)
	ordersHandler := h.NewOrdersHandler(apiClient, cfg.RequestTimeout)
	chatHandler := h.NewChatHandler(apiClient, cfg.RequestTimeout)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(h.RequestIDMiddleware)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", checkoutHandler.CreateSession)
			r.Route("/{session_id}", func(r chi.Router) {
				r.Get("/", checkoutHandler.GetSession)
				r.Put("/address", checkoutHandler.UpdateAddress)
				r.Post("/advance", checkoutHandler.Advance)
				r.Post("/back", checkoutHandler.Back)
				r.Post("/pay", checkoutHandler.Pay)
				r.Delete("/", checkoutHandler.CloseSession)
			})
		})
		r.Route("/payment", func(r chi.Router) {
			r.Get("/return", paymentHandler.Return)
			r.Get("/cancel", paymentHandler.Cancel)
			r.Post("/notify", paymentHandler.Notify)
		})
		r.Get("/orders", ordersHandler.ListOrders)
		r.Post("/chat/message", chatHandler.SendMessage)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(r, "storefront"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("storefront BFF starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
