package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/freezer-api/internal/application/auth"
	"github.com/jhoicas/freezer-api/internal/application/checkout"
	"github.com/jhoicas/freezer-api/internal/application/inventory"
	"github.com/jhoicas/freezer-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	InventoryUC *inventory.UseCase
	ReportUC    *inventory.ReportUseCase
	CheckoutUC  *checkout.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
//
// Permisos:
//   - Lecturas y préstamos: cualquier usuario autenticado (student incluido).
//   - Altas y ediciones del inventario, reporte: admin o superadmin.
//   - Listado de usuarios: admin o superadmin (admins solo visibles para superadmin).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	staff := RequireRole(entity.RoleAdmin, entity.RoleSuperadmin)

	// Inventario (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Post("/", staff, inventoryHandler.Create)
	invGroup.Get("/:id", inventoryHandler.GetByID)
	invGroup.Patch("/:id", staff, inventoryHandler.Update)

	// Préstamos (protegido; cualquier rol autenticado puede prestar y devolver)
	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC)
	invGroup.Post("/:id/checkout", checkoutHandler.Checkout)
	invGroup.Post("/:id/return", checkoutHandler.Return)
	invGroup.Get("/:id/checkouts", checkoutHandler.History)

	// Congelador: mapa y reporte (protegido)
	freezer := protected.Group("/freezer")
	freezerHandler := NewFreezerHandler(deps.InventoryUC, deps.ReportUC)
	freezer.Get("/map", freezerHandler.Map)
	freezer.Get("/report", staff, freezerHandler.Report)

	// Usuarios (protegido, solo staff)
	users := protected.Group("/users", staff)
	userHandler := NewUserHandler(deps.AuthUC)
	users.Get("/", userHandler.List)
}
