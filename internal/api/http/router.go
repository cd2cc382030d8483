package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/scaffold-rental-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Customers *handlers.CustomersHandler
	Employees *handlers.EmployeesHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	customers := app.Group("/customers")
	customers.Post("", cfg.Customers.Create)
	customers.Get("", cfg.Customers.List)
	customers.Get("/active-count", cfg.Customers.ActiveCount)
	customers.Get("/search", cfg.Customers.Search)
	customers.Get("/:id", cfg.Customers.Get)
	customers.Delete("/:id", cfg.Customers.SoftDelete)
	customers.Put("/:id/name", cfg.Customers.UpdateName)
	customers.Put("/:id/nic", cfg.Customers.UpdateNic)
	customers.Put("/:id/email", cfg.Customers.UpdateEmail)
	customers.Put("/:id/phone", cfg.Customers.UpdatePhone)
	customers.Put("/:id/first-deal-date", cfg.Customers.UpdateFirstDealDate)
	customers.Put("/:id/last-deal-date", cfg.Customers.UpdateLastDealDate)
	customers.Put("/:id/address", cfg.Customers.UpdateAddress)

	employees := app.Group("/employees")
	employees.Post("", cfg.Employees.Create)
	employees.Post("/login", cfg.Employees.Login)
	employees.Get("", cfg.Employees.List)
	employees.Get("/search", cfg.Employees.Search)
	employees.Get("/:id", cfg.Employees.Get)
	employees.Delete("/:id", cfg.Employees.Delete)
	employees.Put("/:id/role", cfg.Employees.UpdateRole)
	employees.Put("/:id/name", cfg.Employees.UpdateName)
	employees.Put("/:id/nic", cfg.Employees.UpdateNic)
	employees.Put("/:id/email", cfg.Employees.UpdateEmail)
	employees.Put("/:id/phone", cfg.Employees.UpdatePhone)
	employees.Put("/:id/password", cfg.Employees.UpdatePassword)
	employees.Put("/:id/address", cfg.Employees.UpdateAddress)
}
