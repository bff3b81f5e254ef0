// File: conectcliente/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"conectcliente/config"
	"conectcliente/cron"
	"conectcliente/database"
	bookingRepoPkg "conectcliente/database/repository/booking"
	clientRepoPkg "conectcliente/database/repository/client"
	feedbackRepoPkg "conectcliente/database/repository/feedback"
	"conectcliente/handlers"
	"conectcliente/middleware"
	"conectcliente/routes"
	clientSvc "conectcliente/services/client"
	"conectcliente/services/feedback"
	"conectcliente/services/notification"
	"conectcliente/services/schedule"
	"conectcliente/services/tasks"
	"conectcliente/services/wizard"
	"conectcliente/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	clientRepo := clientRepoPkg.NewMongoClientRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	feedbackRepo := feedbackRepoPkg.NewMongoFeedbackRepo()

	// services.
	clientService := &clientSvc.DefaultClientService{
		Repo: clientRepo,
	}
	handlers.SetClientService(clientService)

	notificationService, err := notification.NewDefaultNotificationService(clientService)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}
	reminderScheduler := tasks.NewReminderScheduler()

	wizardService := &wizard.DefaultWizardService{
		Identity:  wizard.IdentityFunc(middleware.ClientIDFromContext),
		Store:     wizard.NewMongoRecordStore(clientRepo, bookingRepo),
		Cache:     utils.GetSessionCacheClient(),
		Notifier:  notificationService,
		Reminders: reminderScheduler,
	}

	scheduleService := &schedule.DefaultScheduleService{
		Repo: bookingRepo,
	}
	feedbackService := &feedback.DefaultFeedbackService{
		Repo:    feedbackRepo,
		Clients: clientService,
	}

	wizardHandler := handlers.NewWizardHandler(wizardService, logger)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService, logger)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ClientRepo: clientRepo,

		// Client endpoints.
		RegisterClientHandler:        handlers.RegisterClientHandler,
		AuthenticateClientHandler:    handlers.AuthenticateClientHandler,
		GetClientHandler:             handlers.GetClientHandler,
		UpdateFCMTokenHandler:        handlers.UpdateFCMTokenHandler,
		RevokeClientAuthTokenHandler: handlers.RevokeClientAuthTokenHandler,
		DeleteClientHandler:          handlers.DeleteClientHandler,

		// Wizard endpoints.
		StartSession:   wizardHandler.StartSession,
		GetSession:     wizardHandler.GetSession,
		SubmitAnswer:   wizardHandler.SubmitAnswer,
		SelectDate:     wizardHandler.SelectDate,
		SelectTime:     wizardHandler.SelectTime,
		RestartSession: wizardHandler.RestartSession,

		// Schedule endpoints.
		ScheduleOverview: scheduleHandler.Overview,
		MyBookings:       scheduleHandler.MyBookings,

		// Feedback endpoints.
		SubmitFeedback: feedbackHandler.Submit,
		ListFeedback:   feedbackHandler.List,

		// Catalogue endpoint.
		ListServices: handlers.ListServicesHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and health monitoring.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor([]*redis.Client{utils.GetSessionCacheClient()}, database.MongoClient)

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
