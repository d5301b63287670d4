package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/iqnext-api/internal/application/auth"
	"github.com/jhoicas/iqnext-api/internal/application/execution"
	"github.com/jhoicas/iqnext-api/internal/application/usecase"
	"github.com/jhoicas/iqnext-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/iqnext-api/internal/interfaces/http"
	"github.com/jhoicas/iqnext-api/pkg/config"
	"github.com/jhoicas/iqnext-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	processRepo := postgres.NewProcessRepository(pool)
	executionRepo := postgres.NewExecutionRepository(pool)
	userRepo := postgres.NewCompanyUserRepository(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	processUC := usecase.NewProcessUseCase(processRepo, companyRepo)
	registerExecutionUC := execution.NewRegisterExecutionUseCase(processRepo, executionRepo)
	listExecutionsUC := execution.NewListExecutionsUseCase(executionRepo)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, bcrypt.DefaultCost)

	app := fiber.New(fiber.Config{
		AppName:                 cfg.App.Name,
		ReadTimeout:             time.Second * 10,
		WriteTimeout:            time.Second * 10,
		IdleTimeout:             time.Second * 60,
		ProxyHeader:             cfg.Proxy.Header,
		EnableTrustedProxyCheck: len(cfg.Proxy.TrustedProxies) > 0,
		TrustedProxies:          cfg.Proxy.TrustedProxies,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.Origins(),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Swagger UI: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Swagger.FilePath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Swagger.FilePath,
			Path:     "docs",
			Title:    "Iqnext API",
		}))
	} else {
		log.Warn().Str("file", cfg.Swagger.FilePath).Msg("documento swagger no encontrado, /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName:       cfg.App.Name,
		DB:                pool,
		CompanyUC:         companyUC,
		ProcessUC:         processUC,
		RegisterExecution: registerExecutionUC,
		ListExecutions:    listExecutionsUC,
		AuthUC:            authUC,
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
