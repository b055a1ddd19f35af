package main

import (
	"context"
	"os/signal"
	"syscall"

	"clinicport-service/internal/app/config"
	"clinicport-service/internal/app/drivers/logger"
	smtpdriver "clinicport-service/internal/app/drivers/mailer"
	"clinicport-service/internal/app/drivers/messaging"
	"clinicport-service/internal/app/services/shared/mailer"

	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	driverLog := logger.NewLogrusLogger(internalConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig, driverLog)
	defer rabbitMQConnection.Close()

	smtpClient := smtpdriver.NewSMTPClient(driverConfig)

	relay, err := mailer.NewRelay(
		smtpClient,
		rabbitMQConnection,
		internalConfig.App.RabbitMQMailerQueue,
		internalConfig.App.MailerSendRatePerSecond,
		log,
	)
	if err != nil {
		log.Fatal("failed to initialize mailer relay", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := relay.Run(ctx); err != nil && err != context.Canceled {
		log.Fatal("mailer relay stopped", zap.Error(err))
	}

	log.Info("mailer relay exiting")
}
