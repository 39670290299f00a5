package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/swiftment/payment-service/internal/client"
	"github.com/swiftment/payment-service/internal/config"
	deliveryhttp "github.com/swiftment/payment-service/internal/delivery/http"
	"github.com/swiftment/payment-service/internal/delivery/http/handlers"
	"github.com/swiftment/payment-service/internal/infrastructure/clock"
	"github.com/swiftment/payment-service/internal/infrastructure/kafka"
	"github.com/swiftment/payment-service/internal/infrastructure/metrics"
	"github.com/swiftment/payment-service/internal/infrastructure/migrate"
	"github.com/swiftment/payment-service/internal/infrastructure/postgres"
	"github.com/swiftment/payment-service/internal/infrastructure/postgres/repository"
	"github.com/swiftment/payment-service/internal/infrastructure/subaccount"
	"github.com/swiftment/payment-service/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.PaymentDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.PaymentDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := kafka.NewDefaultKafkaPublisher(brokers)

	// Init repositories
	configRepo := repository.NewDefaultConfigRepository(db)
	merchantRepo := repository.NewDefaultMerchantRepository(db)
	userRepo := repository.NewDefaultUserRepository(db)
	subscriptionRepo := repository.NewDefaultSubscriptionRepository(db)
	purchaseRepo := repository.NewDefaultPurchaseRepository(db)
	withdrawalRepo := repository.NewDefaultWithdrawalRepository(db)
	txManager := repository.NewTxManager(db)

	// Init collaborators
	ledgerClient, err := client.NewHTTPTokenLedgerClient(fmt.Sprintf("http://%s:%s", cfg.TokenLedgerService.Host, cfg.TokenLedgerService.Port))
	if err != nil {
		log.Fatalf("failed to init token ledger client: %v", err)
	}
	deriver := subaccount.NewDeriver()
	systemClock := clock.NewSystemClock()
	paymentMetrics := metrics.NewPaymentMetrics()

	// Init usecases
	platformUC := usecase.NewDefaultPlatformUsecase(configRepo)
	merchantUC := usecase.NewDefaultMerchantUsecase(merchantRepo, configRepo, deriver, txManager)
	userUC := usecase.NewDefaultUserUsecase(userRepo)
	subscriptionUC := usecase.NewDefaultSubscriptionUsecase(subscriptionRepo, userRepo, merchantRepo, systemClock)
	paymentUC := usecase.NewDefaultPaymentUsecase(
		configRepo,
		userRepo,
		merchantRepo,
		subscriptionRepo,
		purchaseRepo,
		ledgerClient,
		deriver,
		systemClock,
		txManager,
		pub,
		paymentMetrics,
	)
	withdrawalUC := usecase.NewDefaultWithdrawalUsecase(
		configRepo,
		merchantRepo,
		withdrawalRepo,
		ledgerClient,
		deriver,
		systemClock,
		txManager,
		pub,
		paymentMetrics,
	)

	// HTTP delivery
	router := deliveryhttp.NewRouter(
		handlers.NewPlatformHandler(platformUC),
		handlers.NewMerchantHandler(merchantUC),
		handlers.NewUserHandler(userUC),
		handlers.NewSubscriptionHandler(subscriptionUC),
		handlers.NewPaymentHandler(paymentUC),
		handlers.NewWithdrawalHandler(withdrawalUC),
	)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("payment service started on %s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
