// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"pitchside/config"
	"pitchside/cron"
	"pitchside/database"
	adminRepoPkg "pitchside/database/repository/admin"
	bookingRepoPkg "pitchside/database/repository/booking"
	coachRepoPkg "pitchside/database/repository/coach"
	contentRepoPkg "pitchside/database/repository/content"
	programRepoPkg "pitchside/database/repository/program"
	"pitchside/handlers"
	"pitchside/middleware"
	"pitchside/models"
	"pitchside/routes"
	adminSvc "pitchside/services/admin"
	bookingSvc "pitchside/services/booking"
	coachSvc "pitchside/services/coach"
	contentSvc "pitchside/services/content"
	"pitchside/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	coachRepo := coachRepoPkg.NewMongoCoachRepo()
	programRepo := programRepoPkg.NewMongoProgramRepo()
	adminRepo := adminRepoPkg.NewMongoAdminRepo()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := bookingRepo.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}
	cancel()

	// services.
	bookingService := &bookingSvc.DefaultBookingService{
		Repo: bookingRepo,
		Grid: models.SlotGrid{
			DayStartHour: config.AppConfig.SlotDayStartHour,
			DayEndHour:   config.AppConfig.SlotDayEndHour,
			SlotMinutes:  config.AppConfig.SlotMinutes,
		},
		Reminders: bookingSvc.NewReminderScheduler(),
	}
	coachService := &coachSvc.DefaultCoachService{Repo: coachRepo}
	contentService := &contentSvc.DefaultContentService{
		Programs:     programRepo,
		Facilities:   contentRepoPkg.NewMongoFacilityRepo(),
		Testimonials: contentRepoPkg.NewMongoTestimonialRepo(),
		Gallery:      contentRepoPkg.NewMongoGalleryRepo(),
		Achievements: contentRepoPkg.NewMongoAchievementRepo(),
		Contacts:     contentRepoPkg.NewMongoContactRepo(),
		Storage:      storageService,
	}
	adminService := &adminSvc.DefaultAdminService{Repo: adminRepo}

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := adminService.Seed(seedCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to seed bootstrap admin: %v", err)
	}
	seedCancel()

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(
		bookingService,
		coachService,
		contentService,
		adminService,
		storageService,
	)
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker and dependency health monitor.
	cron.InitReminderWorker()
	utils.StartHealthMonitor(utils.GetAuthCacheClient(), database.MongoClient)

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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
