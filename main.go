package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fiufit-users/internal/app"
	"fiufit-users/internal/config"
	"fiufit-users/internal/metrics"
	"fiufit-users/internal/repositories"
	"fiufit-users/internal/services"
	"fiufit-users/pkg/authservice"
	"fiufit-users/pkg/payments"
	"fiufit-users/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Relational store ---
	db, err := repositories.OpenPostgres(cfg.DatabaseDSN())
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := repositories.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Geo store ---
	var locations repositories.LocationRepository
	if cfg.Mongo.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL()))
		if err != nil {
			cancel()
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				log.Printf("Error disconnecting MongoDB: %v", err)
			}
		}()
		mongoRepo := repositories.NewMongoLocationRepository(
			mongoClient.Database(cfg.Mongo.Database).Collection(repositories.LocationCollection),
		)
		if err := mongoRepo.EnsureIndexes(ctx); err != nil {
			cancel()
			log.Fatalf("Failed to create location indexes: %v", err)
		}
		cancel()
		locations = mongoRepo
	} else {
		log.Println("MongoDB disabled, keeping trainer locations in memory")
		locations = repositories.NewMemoryLocationRepository()
	}

	// --- Usage metrics queue ---
	var recorder metrics.Recorder = metrics.Nop{}
	if cfg.RabbitMQ.Enabled {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:    cfg.RabbitMQ.URL,
			Queues: []string{rabbitmq.MetricsQueue},
		})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		queue := metrics.NewQueue(mqClient)
		defer queue.Wait()
		recorder = queue
	}

	// --- Collaborators ---
	authClient := authservice.NewClient(authservice.Config{Host: cfg.Auth.Host, Timeout: cfg.HTTP.Timeout})
	var (
		verifier services.CredentialVerifier = authClient
		tokens   services.TokenIssuer        = authClient
	)
	if cfg.Auth.Mode == config.AuthModeLocal {
		local := services.NewLocalTokenService(cfg.Auth.JWTSecret)
		verifier, tokens = local, local
	}
	paymentsClient := payments.NewClient(payments.Config{Host: cfg.Payments.Host, Timeout: cfg.HTTP.Timeout})

	// --- Prometheus ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	requests := metrics.NewRequestCounter(registry)

	// --- Fiber apps ---
	application := app.New(app.Deps{
		DB:          db,
		Locations:   locations,
		Verifier:    verifier,
		Tokens:      tokens,
		Identity:    authClient,
		Payments:    paymentsClient,
		Metrics:     recorder,
		Requests:    requests,
		LogRequests: cfg.LogRequests(),
	})
	exposition := metrics.NewExpositionApp(registry)

	// --- Start HTTP Servers ---
	log.Printf("Starting server on port %s", cfg.Port)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := application.Listen(cfg.Port); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()
	go func() {
		if err := exposition.Listen(":" + cfg.PrometheusPort); err != nil {
			log.Printf("Metrics server stopped: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the servers
	<-quit
	log.Println("Shutting down server...")

	shutdown(application, exposition)

	// Queue and store connections are closed by the deferred calls
	log.Println("Server gracefully stopped")
}

func shutdown(apps ...*fiber.App) {
	for _, a := range apps {
		if err := a.ShutdownWithTimeout(5 * time.Second); err != nil {
			log.Printf("Error during Fiber shutdown: %v", err)
		}
	}
}
