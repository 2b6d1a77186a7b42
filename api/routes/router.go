package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/amakha/storefront-backend/api/controllers"
	"github.com/amakha/storefront-backend/api/middleware"
	authsvc "github.com/amakha/storefront-backend/internal/auth"
	cartsvc "github.com/amakha/storefront-backend/internal/cart"
	catalogsvc "github.com/amakha/storefront-backend/internal/catalog"
	checkoutsvc "github.com/amakha/storefront-backend/internal/checkout"
	ordersvc "github.com/amakha/storefront-backend/internal/orders"
	"github.com/amakha/storefront-backend/pkg/auth/session"
	"github.com/amakha/storefront-backend/pkg/config"
	"github.com/amakha/storefront-backend/pkg/logger"
	"github.com/amakha/storefront-backend/pkg/metrics"
)

// Deps collects everything the router wires into handlers.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	Sessions    session.AccessSessionChecker
	HTTPMetrics *metrics.HTTPMetrics
	Registry    prometheus.Gatherer
	Probes      []controllers.ReadinessProbe
	Catalog     catalogsvc.Service
	Cart        cartsvc.Service
	Checkout    checkoutsvc.Service
	Orders      ordersvc.Service
	Auth        authsvc.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(cfg.CORS),
	)

	authed := middleware.Auth(cfg.JWT, deps.Sessions, logg)
	adminOnly := middleware.RequireAdmin(logg)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.Probes...))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(deps.Catalog, logg))
			r.Get("/{productID}", controllers.GetProduct(deps.Catalog, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(deps.Cart, logg))
			r.Delete("/", controllers.ClearCart(deps.Cart, logg))
			r.Post("/items", controllers.AddCartItem(deps.Cart, logg))
			r.Patch("/items/{productID}", controllers.UpdateCartItem(deps.Cart, logg))
			r.Delete("/items/{productID}", controllers.RemoveCartItem(deps.Cart, logg))
		})

		r.Post("/checkout", controllers.Checkout(deps.Checkout, logg))

		r.Route("/orders", func(r chi.Router) {
			r.With(middleware.OptionalAuth(cfg.JWT, deps.Sessions, logg)).
				Get("/", controllers.FindOrders(deps.Orders, logg))
			r.Get("/{orderID}", controllers.GetOrder(deps.Orders, logg))
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", controllers.Login(deps.Auth, logg))
			r.Post("/register", controllers.Register(deps.Auth, logg))
			r.With(authed).Post("/logout", controllers.Logout(deps.Auth, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Post("/auth/login", controllers.AdminLogin(deps.Auth, logg))

		r.Group(func(r chi.Router) {
			r.Use(authed, adminOnly)

			r.Route("/products", func(r chi.Router) {
				r.Post("/", controllers.AdminCreateProduct(deps.Catalog, logg))
				r.Patch("/{productID}", controllers.AdminUpdateProduct(deps.Catalog, logg))
				r.Delete("/{productID}", controllers.AdminDeleteProduct(deps.Catalog, logg))
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.AdminListOrders(deps.Orders, logg))
				r.Patch("/{orderID}/status", controllers.AdminUpdateOrderStatus(deps.Orders, logg))
			})
		})
	})

	return r
}
