package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/membership"
	"github.com/jhoicas/almacen-api/internal/application/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	LedgerUC     *inventory.LedgerUseCase
	MembershipUC *membership.MembershipUseCase
	Sessions     *session.Registry
	PDFGenerator ShipmentPDFGenerator
	CookieName   string
	SessionTTL   time.Duration
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público: register y login emiten la cookie de sesión)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.CookieName, deps.SessionTTL)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren cookie de sesión vigente)
	protected := api.Group("/", SessionMiddleware(deps.Sessions, deps.CookieName))

	authGroup2 := protected.Group("/auth")
	authGroup2.Get("/me", authHandler.Me)

	// Estado del ledger (cualquier rol, incluido viewer)
	inventoryHandler := NewInventoryHandler(deps.LedgerUC, deps.PDFGenerator)
	protected.Get("/state", inventoryHandler.State)

	// Productos (escritura: owner o manager)
	products := protected.Group("/products", RequireWrite())
	productHandler := NewProductHandler(deps.LedgerUC)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Put("/:id/price", productHandler.UpdatePrice)
	products.Delete("/:id", productHandler.Delete)

	// Ingresos (escritura: owner o manager)
	receipts := protected.Group("/receipts", RequireWrite())
	receipts.Post("/", inventoryHandler.CreateReceipt)
	receipts.Delete("/:id", inventoryHandler.DeleteReceipt)

	// Despachos: la nota de entrega es lectura, las mutaciones son escritura
	shipments := protected.Group("/shipments")
	shipments.Get("/:id/pdf", inventoryHandler.ShipmentPDF)
	shipments.Post("/", RequireWrite(), inventoryHandler.CreateShipment)
	shipments.Delete("/:id", RequireWrite(), inventoryHandler.DeleteShipment)

	// Membresías (sólo owner)
	memberships := protected.Group("/memberships", RequireOwner())
	membershipHandler := NewMembershipHandler(deps.MembershipUC)
	memberships.Post("/role", membershipHandler.ChangeRole)
}
