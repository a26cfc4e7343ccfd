package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/divinelits/storefront/api-gateway/config"
	"github.com/divinelits/storefront/api-gateway/health"
	"github.com/divinelits/storefront/api-gateway/middleware"
	"github.com/divinelits/storefront/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix       string
	ServiceName  string
	Description  string
	RequireAuth  bool // Requires authentication
	RequireAdmin bool // Requires admin email
}

// Routes holds all route definitions
var Routes = []RouteDefinition{
	// Public catalog routes
	{
		Prefix:       "/api/products",
		ServiceName:  "catalog",
		Description:  "Product listing, lookup by id and slug, random picks",
		RequireAuth:  false,
		RequireAdmin: false,
	},
	{
		Prefix:       "/api/categories",
		ServiceName:  "catalog",
		Description:  "Category pages",
		RequireAuth:  false,
		RequireAdmin: false,
	},
	{
		Prefix:       "/api/search",
		ServiceName:  "catalog",
		Description:  "Product search and filtering",
		RequireAuth:  false,
		RequireAdmin: false,
	},

	// Admin catalog routes
	{
		Prefix:       "/api/admin",
		ServiceName:  "catalog",
		Description:  "Product management (create, update, delete)",
		RequireAuth:  true,
		RequireAdmin: true,
	},

	// Cart service routes
	{
		Prefix:       "/api/cart",
		ServiceName:  "cart",
		Description:  "Cart line items",
		RequireAuth:  true,
		RequireAdmin: false,
	},
	{
		Prefix:       "/api/wishlist",
		ServiceName:  "cart",
		Description:  "Wishlist items",
		RequireAuth:  true,
		RequireAdmin: false,
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig) {
	reverseProxy := proxy.NewReverseProxy(cfg)
	healthChecker := health.NewHealthChecker(cfg)

	// Gateway quick health check (no downstream checks)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe (for Kubernetes)
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks downstream services)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllServices(ctx)

		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(healthStatus)
	})

	// Detailed service health checks
	app.Get("/health/services", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllServices(ctx)
		return c.JSON(healthStatus)
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Storefront API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	for _, route := range Routes {
		registerServiceRoutes(app, route, reverseProxy)
	}
}

// registerServiceRoutes registers all HTTP methods for a service prefix
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy) {
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c, route.ServiceName)
	}

	var middlewares []fiber.Handler

	if route.RequireAdmin {
		// Admin routes need both auth and the admin email check
		middlewares = append(middlewares, middleware.AuthMiddleware(), middleware.AdminMiddleware())
	} else if route.RequireAuth {
		middlewares = append(middlewares, middleware.AuthMiddleware())
	}
	// Public routes have no middleware

	group := app.Group(route.Prefix, middlewares...)

	// Handle all HTTP methods with wildcard path
	group.All("/*", handler)

	// Also handle the exact prefix path (without /*)
	if len(middlewares) > 0 {
		app.All(route.Prefix, append(middlewares, handler)...)
	} else {
		app.All(route.Prefix, handler)
	}
}
