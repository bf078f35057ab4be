package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jeopardai/internal/cache"
	"jeopardai/internal/config"
	"jeopardai/internal/repository"
	"jeopardai/internal/rules"
	"jeopardai/internal/service"
	"jeopardai/internal/transport/rest"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// AI config: a missing credential or judge model must keep the process
	// from serving.
	aiConfig := config.DefaultAIConfig()
	if err := aiConfig.Validate(); err != nil {
		log.Fatal("AI config: ", err)
	}
	log.Printf("AI Config:")
	log.Printf("  Judge model: %s", aiConfig.Model)
	log.Printf("  Endpoint:    %s", aiConfig.BaseURL)
	log.Printf("  Timeout:     %dms", aiConfig.TimeoutMS)

	// Special rules: malformed definitions are fatal at startup.
	ruleTable, err := rules.LoadDefault()
	if err != nil {
		log.Fatal("Failed to load special rules: ", err)
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories and caches
	clueRepo := repository.NewClueRepo(db)
	clueCache := cache.NewClueCache(rdb)
	verdictCache := cache.NewVerdictCache(rdb)

	// Initialize services
	evaluator, err := service.NewEvaluatorService(aiConfig)
	if err != nil {
		log.Fatal("Failed to initialize evaluator: ", err)
	}
	matcher := rules.NewMatcher(ruleTable)
	judgeSvc := service.NewJudgeService(clueRepo, clueCache, verdictCache, matcher, evaluator)
	boardSvc := service.NewBoardService(clueRepo)

	router := rest.NewRouter(&rest.Container{
		BoardService: boardSvc,
		JudgeService: judgeSvc,
		CORSOrigin:   cfg.CORSOrigin,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  GET  /v1/rounds/{round}")
		log.Println("  POST /v1/answers")
		log.Println("  GET  /health")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
