package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/iqnext-api/internal/application/auth"
	"github.com/jhoicas/iqnext-api/internal/application/execution"
	"github.com/jhoicas/iqnext-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName       string
	DB                Pinger
	CompanyUC         *usecase.CompanyUseCase
	ProcessUC         *usecase.ProcessUseCase
	RegisterExecution *execution.RegisterExecutionUseCase
	ListExecutions    *execution.ListExecutionsUseCase
	AuthUC            *auth.AuthUseCase
}

// Router registra las rutas de la API. Las rutas viven en la raíz del servidor
// porque los clientes de automatización ya las tienen configuradas así.
func Router(app *fiber.App, deps RouterDeps) {
	health := NewHealthHandler(deps.ServiceName, deps.DB)
	app.Get("/health", health.Live)
	app.Get("/health/db", health.DB)

	// Empresas y procesos
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	app.Get("/GetEmpresas", companyHandler.List)

	processHandler := NewProcessHandler(deps.ProcessUC)
	app.Get("/GetProcesoEmpresas/:empresaId", processHandler.ListByCompany)
	app.Post("/CrearProceso", processHandler.Create)
	app.Get("/GetRegistrarCurl/:procesoId", processHandler.RegisterCurl)

	// Ejecuciones
	executionHandler := NewExecutionHandler(deps.RegisterExecution, deps.ListExecutions)
	app.Get("/GetEjecucionesProcesos/:procesoId", executionHandler.ListByProcess)
	app.Post("/RegistrarEjecucion", executionHandler.Register)

	// Usuarios de empresa
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/CrearUsuarioEmpresa", authHandler.CreateCompanyUser)
	app.Post("/Login", authHandler.Login)
	app.Post("/CambiarPassword", authHandler.ChangePassword)
}
