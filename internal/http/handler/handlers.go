package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hvsrweb/internal/hvsr"
	"hvsrweb/internal/model"
	"hvsrweb/internal/service"
)

const healthTimeout = 2 * time.Second

// validationResponse is the body of POST /api/settings/validate. Flags
// never block a calculation; the processor has the final say.
type validationResponse struct {
	Valid bool               `json:"valid"`
	Flags []model.FieldError `json:"flags"`
}

// UploadRecord godoc
// @Summary Upload a waveform record
// @Description Accepts a three-component miniSEED or SAC file and keeps it for the session.
// @Tags records
// @Accept mpfd
// @Produce json
// @Param file formData file true "waveform file (.miniseed, .mseed, .sac)"
// @Success 201 {object} model.Record
// @Failure 400 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /api/records [post]
func UploadRecord(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_READ_ERROR", "cannot read uploaded file")
		}

		rec, err := svc.Upload(c.UserContext(), fh.Filename, data)
		if err != nil {
			return writeRecordError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}

// LoadDemo godoc
// @Summary Load the bundled demonstration record
// @Tags records
// @Produce json
// @Success 201 {object} model.Record
// @Failure 503 {object} errorPayload
// @Router /api/records/demo [post]
func LoadDemo(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, err := svc.Demo(c.UserContext())
		if err != nil {
			return writeRecordError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}

// GetRecord godoc
// @Summary Get record metadata
// @Tags records
// @Produce json
// @Param id path string true "record ID"
// @Success 200 {object} model.Record
// @Failure 404 {object} errorPayload
// @Router /api/records/{id} [get]
func GetRecord(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		rec, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeRecordError(c, err)
		}
		return c.JSON(rec)
	}
}

// SettingsSchema godoc
// @Summary Get settings defaults and ranges
// @Description Returns the defaults plus per-field ranges and choices that drive the settings form.
// @Tags settings
// @Produce json
// @Success 200 {object} model.SettingsSchema
// @Router /api/settings [get]
func SettingsSchema() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(model.Schema())
	}
}

// ValidateSettings godoc
// @Summary Validate processing settings
// @Description Flags out-of-range values. Flags are advisory; a flagged calculation may still be submitted.
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body model.Settings true "settings to check"
// @Success 200 {object} validationResponse
// @Failure 400 {object} errorPayload
// @Router /api/settings/validate [post]
func ValidateSettings() fiber.Handler {
	return func(c *fiber.Ctx) error {
		settings, err := parseSettings(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed settings payload")
		}

		flags := settings.Validate()
		if flags == nil {
			flags = []model.FieldError{}
		}
		return c.JSON(validationResponse{Valid: len(flags) == 0, Flags: flags})
	}
}

// Calculate godoc
// @Summary Run an HVSR calculation
// @Description Sends the record and settings to the processor and stores the outcome for the session.
// @Tags calculations
// @Accept json
// @Produce json
// @Param id path string true "record ID"
// @Param settings body model.Settings true "processing settings"
// @Success 201 {object} model.Calculation
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /api/records/{id}/calculations [post]
func Calculate(svc service.CalculationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		settings, err := parseSettings(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed settings payload")
		}

		calc, err := svc.Calculate(c.UserContext(), id, settings)
		if err != nil {
			return writeCalculationError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(calc)
	}
}

// GetCalculation godoc
// @Summary Get a stored calculation
// @Tags calculations
// @Produce json
// @Param id path string true "calculation ID"
// @Success 200 {object} model.Calculation
// @Failure 404 {object} errorPayload
// @Router /api/calculations/{id} [get]
func GetCalculation(svc service.CalculationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		calc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeCalculationError(c, err)
		}
		return c.JSON(calc)
	}
}

// ExportCalculation godoc
// @Summary Download a calculation as text
// @Description Renders the stored result in hvsrpy, geopsy or json format as a file attachment.
// @Tags calculations
// @Produce plain
// @Param id path string true "calculation ID"
// @Param format query string false "hvsrpy | geopsy | json" default(hvsrpy)
// @Success 200 {string} string "file content"
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/calculations/{id}/export [get]
func ExportCalculation(svc service.CalculationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		format := c.Query("format", service.ExportHvsrpy)
		file, err := svc.Export(c.UserContext(), id, format)
		if err != nil {
			return writeCalculationError(c, err)
		}
		return sendAttachment(c, file)
	}
}

// ExportFigure godoc
// @Summary Download the calculation figure
// @Description Renders the stored result as a PNG figure.
// @Tags calculations
// @Produce png
// @Param id path string true "calculation ID"
// @Success 200 {file} binary "PNG image"
// @Failure 404 {object} errorPayload
// @Router /api/calculations/{id}/figure [get]
func ExportFigure(svc service.CalculationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		file, err := svc.Figure(c.UserContext(), id)
		if err != nil {
			return writeCalculationError(c, err)
		}
		return sendAttachment(c, file)
	}
}

// HealthCheck godoc
// @Summary Health of the service and its processor
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(proc hvsr.Processor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()
		if err := proc.Ping(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "processor unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe godoc
// @Summary Liveness probe
// @Tags health
// @Success 200 {string} string "OK"
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// parseSettings decodes the request body over the defaults, so absent
// fields keep their default values.
func parseSettings(c *fiber.Ctx) (model.Settings, error) {
	settings := model.DefaultSettings()
	if len(c.Body()) == 0 {
		return settings, nil
	}
	if err := c.BodyParser(&settings); err != nil {
		return settings, err
	}
	return settings, nil
}

func sendAttachment(c *fiber.Ctx, file *service.ExportFile) error {
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Name))
	return c.Status(fiber.StatusOK).Send(file.Data)
}

func procMessage(e *hvsr.Error, fallback string) string {
	if e.Message != "" {
		return e.Message
	}
	return fallback
}

// writeRecordError maps record service errors onto the HTTP envelope.
func writeRecordError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrEmptyFile):
		return writeError(c, fiber.StatusBadRequest, "EMPTY_FILE", "uploaded file is empty")
	case errors.Is(err, service.ErrTooLarge):
		return writeError(c, fiber.StatusBadRequest, "RECORD_TOO_LARGE", "uploaded file exceeds the size limit")
	case errors.Is(err, service.ErrUnsupportedFormat):
		return writeError(c, fiber.StatusBadRequest, "UNSUPPORTED_FORMAT", "file must be miniSEED or SAC")
	case errors.Is(err, service.ErrRecordNotFound):
		return writeError(c, fiber.StatusNotFound, "RECORD_NOT_FOUND", "record not found or expired")
	case errors.Is(err, service.ErrDemoUnavailable):
		return writeError(c, fiber.StatusServiceUnavailable, "DEMO_UNAVAILABLE", "demo record is not available")
	case errors.Is(err, service.ErrSessionFull):
		return writeError(c, fiber.StatusServiceUnavailable, "SESSION_FULL", "session store is full, retry later")
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// writeCalculationError maps calculation service and processor errors
// onto the HTTP envelope. Processor messages pass through verbatim so
// the user sees what the processor saw.
func writeCalculationError(c *fiber.Ctx, err error) error {
	var procErr *hvsr.Error
	if errors.As(err, &procErr) {
		switch {
		case errors.Is(err, hvsr.ErrRejectedInput):
			return writeError(c, fiber.StatusBadRequest, "REJECTED_INPUT", procMessage(procErr, "processor rejected the input"))
		case errors.Is(err, hvsr.ErrProcessing):
			return writeError(c, fiber.StatusUnprocessableEntity, "PROCESSING_FAILED", procMessage(procErr, "processing failed"))
		default:
			return writeError(c, fiber.StatusServiceUnavailable, "PROCESSOR_UNAVAILABLE", "processor unavailable")
		}
	}

	switch {
	case errors.Is(err, service.ErrCalcNotFound):
		return writeError(c, fiber.StatusNotFound, "CALC_NOT_FOUND", "calculation not found or expired")
	case errors.Is(err, service.ErrRecordNotFound):
		return writeError(c, fiber.StatusNotFound, "RECORD_NOT_FOUND", "record not found or expired")
	case errors.Is(err, service.ErrUnsupportedExport):
		return writeError(c, fiber.StatusBadRequest, "UNSUPPORTED_EXPORT", err.Error())
	case errors.Is(err, service.ErrSessionFull):
		return writeError(c, fiber.StatusServiceUnavailable, "SESSION_FULL", "session store is full, retry later")
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
