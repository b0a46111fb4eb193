package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/shooid/shoo-shop/internal/accounts"
	"github.com/shooid/shoo-shop/internal/cart"
	"github.com/shooid/shoo-shop/internal/catalog"
	"github.com/shooid/shoo-shop/internal/checkout"
	"github.com/shooid/shoo-shop/internal/config"
	"github.com/shooid/shoo-shop/internal/httpx"
	kafkax "github.com/shooid/shoo-shop/internal/kafka"
	"github.com/shooid/shoo-shop/internal/orders"
	"github.com/shooid/shoo-shop/internal/postgres"
	"github.com/shooid/shoo-shop/internal/redisx"
	"github.com/shooid/shoo-shop/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	if cfg.RunMigrations {
		if err := postgres.RunMigrations(cfg.PostgresDSN); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer db.Close()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer
	prod := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderCreated, 1024)
	prod.Start(ctx)

	// Repos & stores
	products := &catalog.Repo{DB: db}
	if err := products.Seed(ctx); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}
	orderLog := &orders.Repo{DB: db}
	carts := &cart.Store{RDB: rdb}

	h := &httpx.Handler{
		Accounts: &accounts.Repo{DB: db},
		Sessions: &session.Store{RDB: rdb},
		Products: products,
		Carts:    carts,
		Checkout: &checkout.Service{
			Carts:         carts,
			Orders:        orderLog,
			Producer:      prod,
			Redis:         rdb,
			ServiceName:   cfg.ServiceName,
			DanaNumber:    cfg.DanaNumber,
			GopayNumber:   cfg.GopayNumber,
			AdminWhatsApp: cfg.AdminWhatsApp,
		},
		Orders: orderLog,
	}
	router := httpx.NewRouter()
	h.Register(router)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close()
	cancel()
	prod.WaitClosed()
}
