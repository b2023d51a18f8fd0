package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/zonik811/serviadmin-api/pkg/logger"
)

// LocalRequestID key del id de petición en c.Locals.
const LocalRequestID = "request_id"

// RequestID asigna un id único a cada petición y lo propaga en la cabecera
// X-Request-ID para correlación con los logs.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set("X-Request-ID", id)
		return c.Next()
	}
}

// AccessLog registra cada petición atendida con método, ruta, estado y latencia.
func AccessLog(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		err := c.Next()

		evento := log.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			evento = log.Error().Err(err)
		}
		evento.
			Str("request_id", GetRequestID(c)).
			Str("metodo", c.Method()).
			Str("ruta", c.Path()).
			Int("estado", c.Response().StatusCode()).
			Dur("latencia", time.Since(inicio)).
			Msg("petición atendida")
		return err
	}
}

// GetRequestID devuelve el id de la petición (después de RequestID).
func GetRequestID(c *fiber.Ctx) string {
	v := c.Locals(LocalRequestID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
