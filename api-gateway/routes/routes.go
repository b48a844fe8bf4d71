package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/dhaba/restaurant-pos/api-gateway/config"
	"github.com/dhaba/restaurant-pos/api-gateway/health"
	"github.com/dhaba/restaurant-pos/api-gateway/middleware"
	"github.com/dhaba/restaurant-pos/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix       string
	Description  string
	RequireAuth  bool
	RequireAdmin bool
}

// Routes holds all route definitions. Auth is enforced again at the POS
// service; the gateway gate keeps unauthenticated traffic off the floor.
var Routes = []RouteDefinition{
	{
		Prefix:      "/api/auth",
		Description: "Authentication endpoints (login, register)",
	},
	{
		Prefix:      "/api/menu",
		Description: "Menu browsing (public)",
	},
	{
		Prefix:      "/api/users",
		Description: "Staff management",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/tables",
		Description: "Floor plan and table status",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/cart",
		Description: "Terminal carts",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/orders",
		Description: "Orders and kitchen status",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/payments",
		Description: "Payments",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/inventory",
		Description: "Inventory",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/reservations",
		Description: "Reservations",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/customers",
		Description: "Customer directory",
		RequireAuth: true,
	},
	{
		Prefix:       "/api/collections",
		Description:  "Daily collections (admin)",
		RequireAuth:  true,
		RequireAdmin: true,
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig, redisClient *redis.Client) {
	reverseProxy := proxy.NewReverseProxy(cfg)
	healthChecker := health.NewHealthChecker(cfg)

	// Gateway quick health check (no downstream probes)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks POS instances)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllInstances(ctx)
		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}
		return c.Status(statusCode).JSON(healthStatus)
	})

	// Load balancer stats
	app.Get("/gateway/stats", func(c *fiber.Ctx) error {
		return c.JSON(reverseProxy.GetLoadBalancer().GetStats())
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Restaurant POS Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	handler := func(c *fiber.Ctx) error {
		return reverseProxy.ProxyRequest(c)
	}

	// Invalidate the menu cache when menu mutations pass through
	menuInvalidation := func(c *fiber.Ctx) error {
		err := c.Next()
		if redisClient != nil && c.Method() != fiber.MethodGet && c.Response().StatusCode() < 300 {
			if invErr := middleware.InvalidateCache(redisClient, "cache:*"); invErr != nil {
				return err
			}
		}
		return err
	}

	for _, route := range Routes {
		var middlewares []fiber.Handler
		if route.RequireAdmin {
			middlewares = append(middlewares, middleware.AuthMiddleware(), middleware.AdminMiddleware())
		} else if route.RequireAuth {
			middlewares = append(middlewares, middleware.AuthMiddleware())
		}
		if route.Prefix == "/api/menu" {
			middlewares = append(middlewares, menuInvalidation)
		}

		group := app.Group(route.Prefix, middlewares...)
		group.All("/*", handler)

		if len(middlewares) > 0 {
			app.All(route.Prefix, append(middlewares, handler)...)
		} else {
			app.All(route.Prefix, handler)
		}
	}
}
