// File: shutterbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shutterbook/config"
	"shutterbook/cron"
	"shutterbook/database"
	availabilityRepo "shutterbook/database/repository/availability"
	bookingRepo "shutterbook/database/repository/booking"
	serviceRepo "shutterbook/database/repository/service"
	"shutterbook/handlers"
	"shutterbook/middleware"
	"shutterbook/routes"
	"shutterbook/services/scheduling"
	"shutterbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.StartHealthMonitor([]*redis.Client{utils.CacheClient, utils.AuthCacheClient}, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	bkRepo := bookingRepo.NewMongoBookingRepo()
	svcRepo := serviceRepo.NewMongoServiceRepo()

	// reminder queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()
	cron.InitReminderWorker(bkRepo)

	// services.
	schedulingService := &scheduling.DefaultSchedulingService{
		Availability: availRepo,
		Bookings:     bkRepo,
		Services:     svcRepo,
		Cache:        scheduling.NewSlotCache(utils.GetCacheClient(), time.Duration(config.AppConfig.SlotCacheTTLSeconds)*time.Second),
		Reminders:    scheduling.NewReminderScheduler(asynqClient, time.Duration(config.AppConfig.ReminderLeadHours)*time.Hour),
		Logger:       logger,
	}

	availabilityHandler := handlers.NewAvailabilityHandler(schedulingService, logger)
	bookingHandler := handlers.NewBookingHandler(schedulingService, logger)

	// Register routes.
	routes.RegisterRoutes(router, availabilityHandler, bookingHandler)

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
