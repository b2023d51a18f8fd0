package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zonik811/serviadmin-api/internal/application/analytics"
	"github.com/zonik811/serviadmin-api/internal/infrastructure/pdf"
)

// EstadisticasHandler maneja los endpoints del dashboard.
type EstadisticasHandler struct {
	uc  *analytics.EstadisticasUseCase
	pdf *pdf.ReportePDFGenerator
}

// NewEstadisticasHandler construye el handler.
func NewEstadisticasHandler(uc *analytics.EstadisticasUseCase, gen *pdf.ReportePDFGenerator) *EstadisticasHandler {
	return &EstadisticasHandler{uc: uc, pdf: gen}
}

// GetEstadisticas devuelve el objeto consolidado de estadísticas.
// GET /api/dashboard/estadisticas
//
// Respuesta: EstadisticasDTO (ventas, clientes, empleados, inventario).
// Nunca responde error por fallos de agregación: ante cualquier fallo de
// consulta el use case entrega el mismo objeto con todo en ceros y el
// dashboard se pinta vacío.
func (h *EstadisticasHandler) GetEstadisticas(c *fiber.Ctx) error {
	return c.JSON(h.uc.ObtenerEstadisticas(c.Context()))
}

// GetEstadisticasPDF devuelve el reporte de estadísticas en PDF.
// GET /api/dashboard/estadisticas/pdf
func (h *EstadisticasHandler) GetEstadisticasPDF(c *fiber.Ctx) error {
	est := h.uc.ObtenerEstadisticas(c.Context())

	generado := time.Now()
	contenido, err := h.pdf.GenerarReporte(c.Context(), est, generado)
	if err != nil {
		return responderError(c, "PDF_GENERATION", err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="estadisticas-%s.pdf"`, generado.Format("2006-01-02")))
	return c.Send(contenido)
}
