package magazinesubscriptions

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/magazine-subscriptions/internal/http/handlers/auth/deactivate"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/http/handlers/auth/me"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/http/handlers/auth/refresh"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/http/handlers/auth/resetpassword"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/http/handlers/auth/userlist"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/http/handlers/health"
	magazinecreate "github.com/magabrotheeeer/magazine-subscriptions/internal/http/handlers/magazine/create"
	magazinelist "github.com/magabrotheeeer/magazine-subscriptions/internal/http/handlers/magazine/list"
	magazineread "github.com/magabrotheeeer/magazine-subscriptions/internal/http/handlers/magazine/read"
	magazineremove "github.com/magabrotheeeer/magazine-subscriptions/internal/http/handlers/magazine/remove"
	magazineupdate "github.com/magabrotheeeer/magazine-subscriptions/internal/http/handlers/magazine/update"
	plancreate "github.com/magabrotheeeer/magazine-subscriptions/internal/http/handlers/plan/create"
	planlist "github.com/magabrotheeeer/magazine-subscriptions/internal/http/handlers/plan/list"
	planread "github.com/magabrotheeeer/magazine-subscriptions/internal/http/handlers/plan/read"
	planremove "github.com/magabrotheeeer/magazine-subscriptions/internal/http/handlers/plan/remove"
	planupdate "github.com/magabrotheeeer/magazine-subscriptions/internal/http/handlers/plan/update"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/http/handlers/subscription/create"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/http/handlers/subscription/list"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/http/handlers/subscription/read"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/http/handlers/subscription/remove"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/http/handlers/subscription/update"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/magazine-subscriptions/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/magazine-subscriptions/internal/services/catalog"
	subservice "github.com/magabrotheeeer/magazine-subscriptions/internal/services/subscription"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authService *authservice.Service,
	catalogService *catalogservice.Service,
	subscriptionService *subservice.Service,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/token", login.New(logger, authService).ServeHTTP)
		r.Post("/token/refresh", refresh.New(logger, authService).ServeHTTP)
		r.Post("/reset-password", resetpassword.New(logger, authService).ServeHTTP)
		r.Get("/health", health.New())

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Get("/users/me", me.New(logger, authService).ServeHTTP)
			r.Get("/users", userlist.New(logger, authService).ServeHTTP)
			r.Delete("/users/{username}", deactivate.New(logger, authService).ServeHTTP)

			r.Post("/magazines", magazinecreate.New(logger, catalogService).ServeHTTP)
			r.Get("/magazines", magazinelist.New(logger, catalogService).ServeHTTP)
			r.Get("/magazines/{id}", magazineread.New(logger, catalogService).ServeHTTP)
			r.Put("/magazines/{id}", magazineupdate.New(logger, catalogService).ServeHTTP)
			r.Delete("/magazines/{id}", magazineremove.New(logger, catalogService).ServeHTTP)

			r.Post("/plans", plancreate.New(logger, catalogService).ServeHTTP)
			r.Get("/plans", planlist.New(logger, catalogService).ServeHTTP)
			r.Get("/plans/{id}", planread.New(logger, catalogService).ServeHTTP)
			r.Put("/plans/{id}", planupdate.New(logger, catalogService).ServeHTTP)
			r.Delete("/plans/{id}", planremove.New(logger, catalogService).ServeHTTP)

			r.Post("/subscriptions", create.New(logger, subscriptionService).ServeHTTP)
			r.Get("/subscriptions", list.New(logger, subscriptionService).ServeHTTP)
			r.Get("/subscriptions/{id}", read.New(logger, subscriptionService).ServeHTTP)
			r.Put("/subscriptions/{id}", update.New(logger, subscriptionService).ServeHTTP)
			r.Delete("/subscriptions/{id}", remove.New(logger, subscriptionService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
