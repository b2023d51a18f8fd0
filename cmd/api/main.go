package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/zonik811/serviadmin-api/internal/application/analytics"
	"github.com/zonik811/serviadmin-api/internal/infrastructure/mongodb"
	infrapdf "github.com/zonik811/serviadmin-api/internal/infrastructure/pdf"
	httpRouter "github.com/zonik811/serviadmin-api/internal/interfaces/http"
	"github.com/zonik811/serviadmin-api/pkg/config"
	"github.com/zonik811/serviadmin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	db, err := mongodb.NewDatabase(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		if err := db.Client().Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("desconexión de MongoDB")
		}
	}()

	estadisticasUC := analytics.NewEstadisticasUseCase(analytics.Deps{
		POS:         mongodb.NewOrdenPOSRepository(db),
		Citas:       mongodb.NewCitaRepository(db),
		OTs:         mongodb.NewOrdenTrabajoRepository(db),
		Catalogo:    mongodb.NewPedidoCatalogoRepository(db),
		Empleados:   mongodb.NewEmpleadoRepository(db),
		Asistencias: mongodb.NewAsistenciaRepository(db),
		Permisos:    mongodb.NewPermisoRepository(db),
		Productos:   mongodb.NewProductoRepository(db),
		Clientes:    mongodb.NewClienteRepository(db),

		Log:            log.Componente("estadisticas"),
		OffsetHoras:    cfg.Dashboard.OffsetHoras,
		LimiteConsulta: cfg.Dashboard.LimiteConsulta,
	})

	reportePDF := infrapdf.NewReportePDFGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ServiAdmin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EstadisticasUC: estadisticasUC,
		ReportePDF:     reportePDF,
		Log:            log.Componente("http"),
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
