package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fixly/config"
	"fixly/cron"
	"fixly/database"
	bookingRepoPkg "fixly/database/repository/booking"
	handymanRepoPkg "fixly/database/repository/handyman"
	taskRepoPkg "fixly/database/repository/task"
	userRepoPkg "fixly/database/repository/user"
	"fixly/handlers"
	"fixly/routes"
	"fixly/services/booking"
	"fixly/services/handyman"
	"fixly/services/search"
	"fixly/services/task"
	"fixly/services/user"
	"fixly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Repositories.
	handymanRepo := handymanRepoPkg.NewMongoHandymanRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	taskRepo := taskRepoPkg.NewMongoTaskRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	type indexer interface {
		EnsureIndexes() error
	}
	for _, repo := range []any{handymanRepo, userRepo, bookingRepo} {
		if idx, ok := repo.(indexer); ok {
			if err := idx.EnsureIndexes(); err != nil {
				logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
			}
		}
	}

	// Services.
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		AuthCache: utils.GetAuthCacheClient(),
	}
	handymanService := &handyman.DefaultHandymanService{
		Repo: handymanRepo,
	}
	searchService := &search.DefaultSearchService{
		Repo:  handymanRepo,
		Cache: utils.GetCacheClient(),
	}
	taskService := &task.DefaultTaskService{
		Repo: taskRepo,
	}
	bookingService := &booking.DefaultBookingService{
		HandymanRepo: handymanRepo,
		BookingRepo:  bookingRepo,
	}

	// Handlers.
	handlerBundle := handlers.NewHandlerBundle(
		userRepo,
		handymanRepo,
		&handlers.UserHandler{UserService: userService},
		&handlers.HandymanHandler{HandymanService: handymanService, SearchService: searchService},
		&handlers.TaskHandler{TaskService: taskService},
		&handlers.BookingHandler{BookingService: bookingService},
	)

	routes.RegisterRoutes(router, handlerBundle)

	// Background jobs.
	pruner := cron.StartBlackoutPruner(handymanRepo)
	defer pruner.Stop()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
