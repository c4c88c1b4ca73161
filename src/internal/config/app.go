package config

import (
	"storefront-service/src/internal/delivery/http"
	"storefront-service/src/internal/delivery/http/middleware"
	"storefront-service/src/internal/delivery/http/route"
	"storefront-service/src/internal/gateway/mailer"
	"storefront-service/src/internal/gateway/messaging"
	"storefront-service/src/internal/gateway/payment"
	"storefront-service/src/internal/gateway/storage"
	"storefront-service/src/internal/repository"
	"storefront-service/src/internal/usecase"
	"storefront-service/src/pkg/databases/mysql"
	kafkaPkgConfluent "storefront-service/src/pkg/kafka/confluent"
	"storefront-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	DB             mysql.DBInterface
	App            *fiber.App
	Log            log.Log
	Validate       *validator.Validate
	Config         *viper.Viper
	Producer       kafkaPkgConfluent.Producer
	Redis          redis.UniversalClient
	PaymentGateway payment.Gateway
	Mailer         *mailer.Mailer
	Storage        *storage.ObjectStorage
	AsynqClient    *asynq.Client
	Async          *asynq.ServeMux
}

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	orderRepository := repository.NewOrderRepository(config.DB)
	restaurantRepository := repository.NewRestaurantRepository(config.DB)
	dishRepository := repository.NewDishRepository(config.DB)
	menuRepository := repository.NewMenuRepository(config.DB)
	complementRepository := repository.NewComplementRepository(config.DB)
	deliveryRepository := repository.NewDeliveryRepository(config.DB)
	paymentMethodRepository := repository.NewPaymentMethodRepository(config.DB)
	adminUserRepository := repository.NewAdminUserRepository(config.DB)

	var orderProducer usecase.OrderEventPublisher
	if config.Producer != nil {
		orderProducer = messaging.NewOrderProducer(config.Producer, config.Log)
	}

	// setup use cases
	cartUseCase := usecase.NewCartUseCase(
		config.Log,
		config.Validate,
		menuRepository,
		complementRepository,
		config.Config,
		config.Redis,
	)

	reconcileUseCase := usecase.NewReconcileUseCase(
		config.Log,
		orderRepository,
		config.PaymentGateway,
		orderProducer,
		config.AsynqClient,
		config.Config,
	)

	checkoutUseCase := usecase.NewCheckoutUseCase(
		config.Log,
		config.Validate,
		cartUseCase,
		orderRepository,
		deliveryRepository,
		paymentMethodRepository,
		config.PaymentGateway,
		orderProducer,
		config.AsynqClient,
		reconcileUseCase,
		config.Config,
	)

	catalogUseCase := usecase.NewCatalogUseCase(
		config.Log,
		config.Validate,
		restaurantRepository,
		dishRepository,
		menuRepository,
		complementRepository,
		deliveryRepository,
		paymentMethodRepository,
	)

	authUseCase := usecase.NewAuthUseCase(
		config.Log,
		config.Validate,
		adminUserRepository,
		config.Config,
		config.AsynqClient,
	)

	adminUseCase := usecase.NewAdminUseCase(
		config.Log,
		config.Validate,
		restaurantRepository,
		dishRepository,
		menuRepository,
		complementRepository,
		deliveryRepository,
		paymentMethodRepository,
		config.Storage,
		config.Config,
	)

	adminOrderUseCase := usecase.NewAdminOrderUseCase(
		config.Log,
		config.Validate,
		orderRepository,
		orderProducer,
		config.AsynqClient,
	)

	notificationUseCase := usecase.NewNotificationUseCase(
		config.Log,
		orderRepository,
		config.Mailer,
		config.Config,
	)

	// setup controllers
	catalogController := http.NewCatalogController(catalogUseCase, config.Log)
	cartController := http.NewCartController(cartUseCase, config.Log)
	checkoutController := http.NewCheckoutController(checkoutUseCase, config.Log)
	adminController := http.NewAdminController(authUseCase, adminUseCase, adminOrderUseCase, config.Log)

	// setup middleware
	authMiddleware := middleware.VerifyBearer(config.Config, config.Log)

	// background task handlers
	config.Async.HandleFunc(usecase.TypeReconcilePayments, reconcileUseCase.HandleReconcile)
	config.Async.HandleFunc(usecase.TypeEmailOrderCreated, notificationUseCase.HandleOrderCreated)
	config.Async.HandleFunc(usecase.TypeEmailStatusChange, notificationUseCase.HandleStatusChanged)
	config.Async.HandleFunc(usecase.TypeEmailAdminSignup, notificationUseCase.HandleAdminSignup)
	config.Async.HandleFunc(usecase.TypeEmailStalePending, notificationUseCase.HandleStalePending)

	routeConfig := route.RouteConfig{
		App:                config.App,
		Log:                config.Log,
		CatalogController:  catalogController,
		CartController:     cartController,
		CheckoutController: checkoutController,
		AdminController:    adminController,
		AuthMiddleware:     authMiddleware,
	}
	routeConfig.Setup()
}
