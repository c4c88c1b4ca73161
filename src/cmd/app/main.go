package main

import (
	"fmt"
	"os"
	"os/signal"

	"storefront-service/src/internal/config"
	"storefront-service/src/internal/gateway/mailer"
	"storefront-service/src/internal/usecase"
	"storefront-service/src/pkg/log"

	"github.com/hibiken/asynq"
)

func main() {

	viperConfig := config.NewViper()
	viperConfig.SetDefault("log.level", "DEBUG")
	viperConfig.SetDefault("app.name", "STOREFRONT_SERVICE")
	viperConfig.SetDefault("app.currency", "XAF")
	viperConfig.SetDefault("order.number_prefix", "CMD")
	viperConfig.SetDefault("web.port", 8080)
	log.InitLogger(viperConfig)
	config.NewKafkaConfig(viperConfig)
	logger := log.GetLogger()
	config.LoadRedisConfig(viperConfig)
	db := config.NewDatabase(viperConfig, logger)
	redisClient := config.NewRedis()
	producer := config.NewKafkaProducer(viperConfig, logger)
	validate := config.NewValidator(viperConfig)
	paymentGateway := config.NewPaymentGateway(viperConfig, logger)
	objectStorage := config.NewObjectStorage(viperConfig, logger)
	mailSender := mailer.NewMailer(viperConfig, logger)
	asynqClient := config.NewAsynqClient(viperConfig)
	asynqServer := config.NewAsynqServer(viperConfig)
	asynqMux := asynq.NewServeMux()
	app := config.NewFiber(viperConfig)

	config.Bootstrap(&config.BootstrapConfig{
		DB:             db,
		App:            app,
		Log:            logger,
		Validate:       validate,
		Config:         viperConfig,
		Producer:       producer,
		Redis:          redisClient,
		PaymentGateway: paymentGateway,
		Mailer:         mailSender,
		Storage:        objectStorage,
		AsynqClient:    asynqClient,
		Async:          asynqMux,
	})

	go func() {
		if err := asynqServer.Run(asynqMux); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start task server: %v", err), "main", "")
		}
	}()

	scheduler := config.NewAsynqScheduler(viperConfig, usecase.TypeReconcilePayments)
	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start scheduler: %v", err), "main", "")
		}
	}()

	go func() {
		webPort := viperConfig.GetInt("web.port")
		if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
			logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	logger.Info("main", "Server storefront-service is shutting down...", "graceful", "")

	scheduler.Shutdown()
	asynqServer.Shutdown()
	if err := app.Shutdown(); err != nil {
		logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
	}
	if err := asynqClient.Close(); err != nil {
		logger.Error("main", fmt.Sprintf("Error closing task client: %v", err), "graceful", "")
	}
	if producer != nil {
		producer.Close()
	}

	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "graceful", "")
}
