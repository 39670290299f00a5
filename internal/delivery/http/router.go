package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/swiftment/payment-service/internal/delivery/http/handlers"
)

func NewRouter(
	platformHandler *handlers.PlatformHandler,
	merchantHandler *handlers.MerchantHandler,
	userHandler *handlers.UserHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	paymentHandler *handlers.PaymentHandler,
	withdrawalHandler *handlers.WithdrawalHandler,
) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/platform", func(r chi.Router) {
			r.Post("/initialize", platformHandler.Initialize)
			r.Get("/config", platformHandler.GetConfig)
		})

		r.Route("/merchants", func(r chi.Router) {
			r.Post("/register", merchantHandler.Register)
			r.Get("/{authority}", merchantHandler.GetByAuthority)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/register", userHandler.Register)
			r.Get("/{owner}", userHandler.GetByOwner)
		})

		r.Route("/subscriptions", func(r chi.Router) {
			r.Post("/opt-in", subscriptionHandler.OptIn)
			r.Put("/limit", subscriptionHandler.SetDailyLimit)
			r.Get("/{user}/{merchant}", subscriptionHandler.GetStatus)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Post("/pay", paymentHandler.Pay)
			r.Get("/user/{user}", paymentHandler.ListByUser)
			r.Get("/merchant/{merchant}", paymentHandler.ListByMerchant)
		})

		r.Route("/withdrawals", func(r chi.Router) {
			r.Post("/withdraw", withdrawalHandler.Withdraw)
			r.Get("/merchant/{merchant}", withdrawalHandler.ListByMerchant)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
