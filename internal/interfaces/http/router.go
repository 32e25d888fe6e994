package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ulule/limiter/v3"

	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/application/usecase"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC        *usecase.CatalogUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	Balances         *inventory.BalanceUseCase
	Reports          *inventory.ReportUseCase
	JWTSecret        string
	RateLimiter      *limiter.Limiter // nil = sin límite
}

// Router registra las rutas de la API.
// Lecturas públicas; escrituras con Bearer Token, límite de peticiones y rol.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	auth := AuthMiddleware(deps.JWTSecret)
	limit := RateLimitMiddleware(deps.RateLimiter)
	writers := RequireRole(jwt.RoleAdmin, jwt.RoleOperator)
	admins := RequireRole(jwt.RoleAdmin)

	// Catálogo: products y locations comparten handler
	for path, kind := range map[string]entity.Kind{
		"/products":  entity.KindProduct,
		"/locations": entity.KindLocation,
	} {
		h := NewCatalogHandler(deps.CatalogUC, kind)
		api.Get(path, h.List)
		api.Post(path, auth, limit, writers, h.Create)
		api.Put(path+"/:id", auth, limit, writers, h.Rename)
		api.Delete(path+"/:id", auth, limit, admins, h.Delete)
	}

	// Libro de movimientos
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.Balances)
	api.Get("/movements", movementHandler.ListRecent)
	api.Post("/movements", auth, limit, writers, movementHandler.Record)

	// Reportes
	reportHandler := NewReportHandler(deps.Balances, deps.Reports)
	api.Get("/report", reportHandler.Report)
	api.Get("/report/pdf", reportHandler.PDF)
	api.Get("/report/csv", reportHandler.CSV)
}
