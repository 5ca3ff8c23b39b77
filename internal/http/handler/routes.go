package handler

import (
	"github.com/gofiber/fiber/v2"

	"hvsrweb/internal/hvsr"
	"hvsrweb/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; everything consequential lives in the services.
func RegisterRoutes(app *fiber.App, proc hvsr.Processor, records service.RecordService, calcs service.CalculationService) {
	app.Get("/", Index())

	app.Get("/health", HealthCheck(proc))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	api.Post("/records", UploadRecord(records))
	api.Post("/records/demo", LoadDemo(records))
	api.Get("/records/:id", GetRecord(records))
	api.Post("/records/:id/calculations", Calculate(calcs))

	api.Get("/settings", SettingsSchema())
	api.Post("/settings/validate", ValidateSettings())

	api.Get("/calculations/:id", GetCalculation(calcs))
	api.Get("/calculations/:id/export", ExportCalculation(calcs))
	api.Get("/calculations/:id/figure", ExportFigure(calcs))
}
