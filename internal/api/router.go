package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/melisaydin/shop-backend/internal/api/handlers"
	"github.com/melisaydin/shop-backend/internal/config"
	"github.com/melisaydin/shop-backend/internal/metrics"
	"github.com/melisaydin/shop-backend/internal/middleware"
	"github.com/melisaydin/shop-backend/internal/services"
)

type Deps struct {
	Cfg        config.Config
	AuthMW     *middleware.AuthMiddleware
	UserSvc    *services.UserService
	CartSvc    *services.CartService
	OrderSvc   *services.OrderService
	CatalogSvc *services.CatalogService
	ContactSvc *services.ContactService
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(d.Cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	authH := handlers.NewAuthHandler(d.UserSvc)
	cartH := handlers.NewCartHandler(d.CartSvc)
	orderH := handlers.NewOrderHandler(d.OrderSvc)
	productH := handlers.NewProductHandler(d.CatalogSvc)
	contactH := handlers.NewContactHandler(d.ContactSvc)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authH.Register)
			r.Post("/login", authH.Login)
			r.Post("/forgot-password", authH.ForgotPassword)
			r.Post("/reset-password", authH.ResetPassword)

			r.Group(func(r chi.Router) {
				r.Use(d.AuthMW.Auth)
				r.Post("/logout", authH.Logout)
				r.Get("/users", authH.ListUsers)
			})
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(d.AuthMW.Auth)
			r.Post("/add", cartH.Add)
			r.Get("/", cartH.Get)
			r.Put("/update", cartH.Update)
			r.Delete("/remove", cartH.Remove)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orderH.Create)
			r.Get("/", orderH.List)
			r.Get("/{id}", orderH.GetByID)
			r.Put("/{id}", orderH.Update)
			r.Delete("/{id}", orderH.Delete)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productH.List)
			r.Get("/{id}", productH.GetByID)

			r.Group(func(r chi.Router) {
				r.Use(d.AuthMW.Auth, middleware.RequireRole("admin"))
				r.Post("/", productH.Create)
				r.Put("/{id}", productH.Update)
				r.Delete("/{id}", productH.Delete)
			})
		})

		r.Route("/subscribe", func(r chi.Router) {
			r.Post("/", contactH.Subscribe)
			r.Get("/", contactH.ListSubscribers)
			r.Delete("/{id}", contactH.DeleteSubscriber)
		})

		r.Post("/contact", contactH.Create)
	})

	return r
}
