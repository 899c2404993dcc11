package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/zakihadj/souq/internal/config"
	"github.com/zakihadj/souq/internal/es"
	"github.com/zakihadj/souq/internal/handlers"
	"github.com/zakihadj/souq/internal/logging"
	"github.com/zakihadj/souq/internal/mykafka"
	"github.com/zakihadj/souq/internal/service/token"
	"github.com/zakihadj/souq/internal/store"
	httpserver "github.com/zakihadj/souq/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	ctx := logging.IntoContext(context.Background(), logger)
	db, err := store.Open(ctx, configuration.DATABASE_URL)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}

	st, err := store.New(db)
	if err != nil {
		log.Fatalf("store init error: %v", err)
	}
	if err := st.Seed(ctx); err != nil {
		log.Fatalf("seed error: %v", err)
	}

	var prod *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		prod, err = mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})
		if err != nil {
			log.Fatal(err)
		}
	} else {
		logger.Info("KAFKA_ADDRESS not set, events disabled")
	}

	tokens := &token.TokenService{
		DB:            db,
		JWTSecret:     []byte(configuration.JWT_SECRET),
		RefreshSecret: []byte(configuration.REFRESH_SECRET),
	}

	deps := httpserver.Deps{
		CategoryHandler: &handlers.CategoryHandler{Store: st},
		ProductHandler:  &handlers.ProductHandler{Store: st, Producer: prod},
		CartHandler:     &handlers.CartHandler{Store: st, Producer: prod},
		OrderHandler:    &handlers.OrderHandler{Store: st, Producer: prod, Tokens: tokens},
		AuthHandler:     &handlers.AuthHandler{Store: st, Producer: prod, Tokens: tokens},
		AdminHandler:    &handlers.AdminHandler{Store: st},
		TokenService:    tokens,
	}

	if configuration.ES_URL != "" {
		esClient, err := es.NewClient(configuration)
		if err != nil {
			log.Fatal(err)
		}
		deps.SearchHandler = handlers.NewSearchHandler(esClient, "products")
	} else {
		logger.Info("ES_URL not set, search endpoint disabled")
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.APP_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", configuration.APP_ADDR)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	logger.Info("shutdown complete")
}
