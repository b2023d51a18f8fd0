package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zonik811/serviadmin-api/internal/application/analytics"
	"github.com/zonik811/serviadmin-api/internal/infrastructure/pdf"
	"github.com/zonik811/serviadmin-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EstadisticasUC *analytics.EstadisticasUseCase
	ReportePDF     *pdf.ReportePDFGenerator
	Log            *logger.Logger
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())
	app.Use(AccessLog(deps.Log))

	api := app.Group("/api")

	// Dashboard (protegido: cualquier rol del back-office)
	dashboard := api.Group("/dashboard", AuthMiddleware(deps.JWTSecret))
	handler := NewEstadisticasHandler(deps.EstadisticasUC, deps.ReportePDF)
	dashboard.Get("/estadisticas", handler.GetEstadisticas)
	// La exportación a PDF queda restringida a administración.
	dashboard.Get("/estadisticas/pdf", RequireRole("admin"), handler.GetEstadisticasPDF)
}
