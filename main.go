package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cardforge/cardforge/handlers"
	"github.com/cardforge/cardforge/internal/bootstrap"
	"github.com/cardforge/cardforge/internal/cards"
	"github.com/cardforge/cardforge/internal/config"
	"github.com/cardforge/cardforge/internal/generation"
	"github.com/cardforge/cardforge/pkg/logger"
	"github.com/cardforge/cardforge/pkg/metrics"
	"github.com/cardforge/cardforge/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.RegisterSecret(cfg.OpenAI.APIKey)
	logger.RegisterSecret(cfg.Redis.Password)
	logger.Infof("config loaded: mongo=%v redis=%v model=%s", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.OpenAI.Model)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Lightweight CORS middleware: set common headers and respond to OPTIONS.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	ctx := context.Background()
	stores := bootstrap.OpenStores(ctx, cfg, 5)
	defer stores.Close()

	// generate and share are throttled; reads are not
	var throttle []gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && stores.Redis != nil {
			throttle = append(throttle, middleware.RedisRateLimitMiddleware(stores.Redis, "api", cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.Window))
			logger.Infof("rate limiter: redis (%.2f rps, burst %d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		} else {
			throttle = append(throttle, middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
			logger.Infof("rate limiter: memory (%.2f rps, burst %d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		}
	}

	client := generation.NewOpenAIClient(generation.OpenAIConfig{
		APIKey:       cfg.OpenAI.APIKey,
		Model:        cfg.OpenAI.Model,
		ResponsesURL: cfg.OpenAI.ResponsesURL,
		HTTPClient:   &http.Client{Timeout: cfg.OpenAI.Timeout},
	})
	h := handlers.NewCardHandler(generation.NewService(client), cards.NewService(stores.Cards))
	h.Register(r.Group("/"), throttle...)

	handlers.RegisterHealth(r, handlers.Status{Tiers: stores.Cards.Names(), Generation: cfg.OpenAI.APIKey != ""})
	handlers.RegisterSwagger(r)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("Starting card service on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infof("shutting down")

	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		logger.Errorf("shutdown: %v", err)
	}
}
