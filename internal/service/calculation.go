package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hvsrweb/internal/export"
	"hvsrweb/internal/hvsr"
	"hvsrweb/internal/model"
	"hvsrweb/internal/session"
)

var (
	ErrCalcNotFound      = errors.New("calculation not found")
	ErrUnsupportedExport = errors.New("unsupported export format")
)

// Export format names accepted by Export.
const (
	ExportHvsrpy = "hvsrpy"
	ExportGeopsy = "geopsy"
	ExportJSON   = "json"
)

// ExportFile is a rendered download: name, MIME type and content.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// CalculationService defines the use cases around running the processor
// and serializing what it returned.
type CalculationService interface {
	// Calculate sends the record and settings to the processor and
	// stores the outcome. Processor failures come back as *hvsr.Error.
	Calculate(ctx context.Context, recordID string, settings model.Settings) (*model.Calculation, error)

	// Get returns a stored calculation by its ID.
	Get(ctx context.Context, id string) (*model.Calculation, error)

	// Export renders the calculation in the named text format.
	Export(ctx context.Context, id, format string) (*ExportFile, error)

	// Figure renders the calculation's summary figure as a PNG.
	Figure(ctx context.Context, id string) (*ExportFile, error)
}

type calculationService struct {
	store     session.Store
	processor hvsr.Processor
	log       *zap.Logger
}

// NewCalculationService constructs a new CalculationService.
func NewCalculationService(store session.Store, processor hvsr.Processor, log *zap.Logger) CalculationService {
	return &calculationService{store: store, processor: processor, log: log}
}

func (s *calculationService) Calculate(ctx context.Context, recordID string, settings model.Settings) (*model.Calculation, error) {
	if recordID == "" {
		return nil, ErrIDRequired
	}
	rec, err := s.store.Record(ctx, recordID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("load record: %w", err)
	}

	// Out-of-range values are advisory only. The processor is the
	// authority on what it will accept.
	if flags := settings.Validate(); len(flags) > 0 {
		s.log.Debug("settings flagged",
			zap.String("record_id", recordID),
			zap.Int("flags", len(flags)))
	}

	start := time.Now()
	res, err := s.processor.Process(ctx, rec, settings)
	if err != nil {
		s.log.Warn("processing failed",
			zap.String("record_id", recordID),
			zap.String("method", settings.Method),
			zap.Error(err))
		return nil, err
	}

	// The stored copy drops the raw waveform bytes; exports and the
	// figure work from the result alone.
	recCopy := *rec
	recCopy.Data = nil

	calc := &model.Calculation{
		ID:        uuid.New().String(),
		Record:    recCopy,
		Settings:  settings,
		Result:    res,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.PutCalculation(ctx, calc); err != nil {
		if errors.Is(err, session.ErrFull) {
			return nil, ErrSessionFull
		}
		return nil, fmt.Errorf("store calculation: %w", err)
	}

	s.log.Info("calculation stored",
		zap.String("calculation_id", calc.ID),
		zap.String("record_id", recordID),
		zap.String("method", settings.Method),
		zap.Int("accepted_windows", res.AcceptedWindows),
		zap.Duration("elapsed", time.Since(start)))
	return calc, nil
}

func (s *calculationService) Get(ctx context.Context, id string) (*model.Calculation, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	calc, err := s.store.Calculation(ctx, id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrCalcNotFound
		}
		return nil, fmt.Errorf("load calculation: %w", err)
	}
	return calc, nil
}

func (s *calculationService) Export(ctx context.Context, id, format string) (*ExportFile, error) {
	calc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	base := export.BaseName(calc.Record.Filename)
	var buf bytes.Buffer

	switch format {
	case ExportHvsrpy:
		if err := export.WriteHvsrpy(&buf, calc); err != nil {
			return nil, fmt.Errorf("render hvsrpy export: %w", err)
		}
		return &ExportFile{Name: base + ".hv", ContentType: "text/plain; charset=utf-8", Data: buf.Bytes()}, nil
	case ExportGeopsy:
		if err := export.WriteGeopsy(&buf, calc); err != nil {
			if errors.Is(err, export.ErrRotateUnsupported) {
				return nil, fmt.Errorf("%w: %s", ErrUnsupportedExport, err)
			}
			return nil, fmt.Errorf("render geopsy export: %w", err)
		}
		return &ExportFile{Name: base + "_geopsy.hv", ContentType: "text/plain; charset=utf-8", Data: buf.Bytes()}, nil
	case ExportJSON:
		if err := export.WriteJSON(&buf, calc); err != nil {
			return nil, fmt.Errorf("render json export: %w", err)
		}
		return &ExportFile{Name: base + ".json", ContentType: "application/json", Data: buf.Bytes()}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExport, format)
	}
}

func (s *calculationService) Figure(ctx context.Context, id string) (*ExportFile, error) {
	calc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := export.Figure(calc)
	if err != nil {
		return nil, fmt.Errorf("render figure: %w", err)
	}
	return &ExportFile{Name: export.BaseName(calc.Record.Filename) + ".png", ContentType: "image/png", Data: png}, nil
}
