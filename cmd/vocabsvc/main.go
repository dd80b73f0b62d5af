package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"

	config "github.com/kosakata/vocab-services/configs"
	"github.com/kosakata/vocab-services/internal/nats"
	"github.com/kosakata/vocab-services/internal/vocabsvc/broker"
	svcconfig "github.com/kosakata/vocab-services/internal/vocabsvc/config"
	"github.com/kosakata/vocab-services/internal/vocabsvc/db"
	handlers "github.com/kosakata/vocab-services/internal/vocabsvc/handlers"
	"github.com/kosakata/vocab-services/internal/vocabsvc/service"
	"github.com/kosakata/vocab-services/internal/vocabsvc/store"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "vocab"

func init() {
	config.Logging(SERVICE_NAME + "_service")
	config.LoadEnv(SERVICE_NAME)
	config.CreateUniqueInstance(SERVICE_NAME)
}

func main() {
	cfg := svcconfig.Load()

	// pg connection, schema applied on connect
	dbpool, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.ClosePool()
	log.Printf("pg connection established successfully")

	userStore := store.NewUserStore(dbpool)
	userService := service.NewUserService(userStore)

	wordStore := store.NewWordStore(dbpool)
	wordService := service.NewWordService(wordStore)

	reviewStore := store.NewReviewStore(dbpool)
	sessionStore := store.NewSessionStore(dbpool)

	// Connect to NATS
	n, err := nats.Connect()
	if err != nil {
		log.Errorf("Error: unable to connect to NATS server %v", err)
		os.Exit(0)
	}

	defer n.Conn.Close()
	log.Printf("NATS connection established successfully %s", n.Url)

	// event publisher for the analytics consumer
	b := broker.NewBroker(n.Conn)

	sessionService := service.NewSessionService(wordStore, reviewStore, sessionStore, b)
	typingService := service.NewTypingService(wordStore, reviewStore, b)
	statsService := service.NewStatsService(wordStore, reviewStore, sessionStore)

	// Setup router
	r := chi.NewRouter()
	c := config.CORS()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(config.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(c.Handler)

	// to protect the service api from any over requests
	r.Use(httprate.LimitByIP(cfg.RateLimit, 1*time.Minute))

	// Init handlers and routes
	h := handlers.NewHandler(dbpool, userService, wordService, sessionService, typingService, statsService)
	h.InitAuth()
	h.SetRoutes(r)

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service running at port %s", SERVICE_NAME, server.Addr)

	// Wait for interrupt signal to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
