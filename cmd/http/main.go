package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicport-service/internal/app/config"
	"clinicport-service/internal/app/delivery/http/controllers"
	"clinicport-service/internal/app/delivery/http/middlewares"
	"clinicport-service/internal/app/delivery/http/routers"
	"clinicport-service/internal/app/drivers/database"
	"clinicport-service/internal/app/drivers/logger"
	"clinicport-service/internal/app/drivers/messaging"
	"clinicport-service/internal/app/drivers/storage"
	"clinicport-service/internal/app/services/core/auth"
	"clinicport-service/internal/app/services/core/bookings"
	"clinicport-service/internal/app/services/core/feedback"
	"clinicport-service/internal/app/services/core/patients"
	"clinicport-service/internal/app/services/core/providers"
	"clinicport-service/internal/app/services/shared/locker"
	"clinicport-service/internal/app/services/shared/mailer"
	"clinicport-service/internal/app/services/shared/redis"
	"clinicport-service/internal/app/services/shared/session"
	sharedStorage "clinicport-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	driverLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("failed to load timezone location", zap.Error(err))
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig, driverLog)
	redisClient := database.NewRedisClient(driverConfig, driverLog)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig, driverLog)
	minioClient := storage.NewMinio(driverConfig, driverLog)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Mongo:          mongoClient,
		Redis:          redisClient,
		Logger:         log,
		RabbitMQ:       rabbitMQConnection,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	bootstrapTheApp(&bootstrap, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	log.Info("server started", zap.String("address", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info("shutdown signal received, draining in-flight requests")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to close dependencies cleanly", zap.Error(err))
	}

	log.Info("server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, minioClient *minio.Client) {
	log := bootstrap.Logger

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig, log)
	lockerService := locker.NewLockService(redisRepository, log)
	minioStorage := sharedStorage.NewMinioStorage(minioClient)

	mailerService, err := mailer.NewMailerService(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQMailerQueue)
	if err != nil {
		log.Fatal("failed to initialize mailer publisher", zap.Error(err))
	}

	// Repositories
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	patientRepository := patients.NewPatientMongoRepository(bootstrap.Mongo, dbName)
	providerRepository := providers.NewProviderMongoRepository(bootstrap.Mongo, dbName)
	bookingRepository := bookings.NewBookingMongoRepository(bootstrap.Mongo, dbName)
	feedbackRepository := feedback.NewFeedbackMongoRepository(bootstrap.Mongo, dbName)

	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if repo, ok := bookingRepository.(*bookings.BookingMongoRepository); ok {
		if err := repo.EnsureIndexes(indexCtx); err != nil {
			log.Fatal("failed to ensure booking indexes", zap.Error(err))
		}
	}

	calendarCache := providers.NewCalendarRedisCache(redisRepository)

	// Usecases
	authUsecase := auth.NewAuthUsecase(sessionService, patientRepository, redisRepository, mailerService, bootstrap.InternalConfig, log)
	patientUsecase := patients.NewPatientUsecase(sessionService, patientRepository, minioStorage, bootstrap.InternalConfig, bootstrap.DriverConfig, log)
	providerUsecase := providers.NewProviderUsecase(providerRepository, bookingRepository, redisRepository, calendarCache, bootstrap.InternalConfig, log)
	bookingUsecase := bookings.NewBookingUsecase(sessionService, bookingRepository, providerRepository, redisRepository, calendarCache, mailerService, bootstrap.InternalConfig, log)
	feedbackUsecase := feedback.NewFeedbackUsecase(sessionService, feedbackRepository, log)

	// Background calendar warmer
	calendarWorker := providers.NewCalendarWorker(log, bootstrap.InternalConfig, lockerService, providerRepository, providerUsecase)
	calendarWorker.Start(context.Background())
	bootstrap.WorkerStop = calendarWorker.Stop

	// Delivery
	middlewareInstance := middlewares.NewMiddlewares(log, sessionService, bootstrap.InternalConfig)

	authController := controllers.NewAuthController(log, authUsecase)
	patientController := controllers.NewPatientController(log, patientUsecase)
	providerController := controllers.NewProviderController(log, providerUsecase)
	bookingController := controllers.NewBookingController(log, bookingUsecase)
	feedbackController := controllers.NewFeedbackController(log, feedbackUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareInstance,
		authController,
		patientController,
		providerController,
		bookingController,
		feedbackController,
	)
}
