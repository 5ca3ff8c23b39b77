package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hvsrweb/internal/config"
	"hvsrweb/internal/model"
	"hvsrweb/internal/session"
	"hvsrweb/internal/waveform"
)

var (
	ErrIDRequired        = errors.New("id is required")
	ErrEmptyFile         = errors.New("uploaded file is empty")
	ErrTooLarge          = errors.New("uploaded file exceeds the size limit")
	ErrUnsupportedFormat = errors.New("file must be miniSEED or SAC")
	ErrRecordNotFound    = errors.New("record not found")
	ErrDemoUnavailable   = errors.New("demo record is not available")
	ErrSessionFull       = errors.New("session store is full")
)

// RecordService defines the use cases for handling waveform records.
type RecordService interface {
	// Upload validates and stores an uploaded waveform. The filename is
	// kept for format detection and export naming only.
	Upload(ctx context.Context, filename string, data []byte) (*model.Record, error)

	// Demo loads the bundled demonstration record from disk.
	Demo(ctx context.Context) (*model.Record, error)

	// Get returns a stored record by its ID.
	Get(ctx context.Context, id string) (*model.Record, error)
}

type recordService struct {
	store  session.Store
	upload config.UploadConfig
	demo   config.DemoConfig
	log    *zap.Logger
}

// NewRecordService constructs a new RecordService.
func NewRecordService(store session.Store, upload config.UploadConfig, demo config.DemoConfig, log *zap.Logger) RecordService {
	return &recordService{store: store, upload: upload, demo: demo, log: log}
}

func (s *recordService) Upload(ctx context.Context, filename string, data []byte) (*model.Record, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if s.upload.MaxBytes > 0 && int64(len(data)) > s.upload.MaxBytes {
		return nil, fmt.Errorf("%w (limit %d bytes)", ErrTooLarge, s.upload.MaxBytes)
	}

	format, err := waveform.Detect(filename, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(filename))
	}

	rec := &model.Record{
		ID:         uuid.New().String(),
		Filename:   filepath.Base(filename),
		Size:       int64(len(data)),
		Format:     format,
		Source:     model.SourceUpload,
		UploadedAt: time.Now().UTC(),
		Data:       data,
	}
	if err := s.put(ctx, rec); err != nil {
		return nil, err
	}

	s.log.Info("record stored",
		zap.String("record_id", rec.ID),
		zap.String("filename", rec.Filename),
		zap.String("format", rec.Format),
		zap.Int64("size", rec.Size))
	return rec, nil
}

func (s *recordService) Demo(ctx context.Context) (*model.Record, error) {
	path := filepath.Join(s.demo.Dir, s.demo.File)
	data, err := os.ReadFile(path)
	if err != nil {
		s.log.Warn("demo record missing", zap.String("path", path), zap.Error(err))
		return nil, ErrDemoUnavailable
	}
	if len(data) == 0 {
		return nil, ErrDemoUnavailable
	}

	format, err := waveform.Detect(s.demo.File, data)
	if err != nil {
		s.log.Warn("demo record has unknown format", zap.String("path", path))
		return nil, ErrDemoUnavailable
	}

	rec := &model.Record{
		ID:         uuid.New().String(),
		Filename:   s.demo.File,
		Size:       int64(len(data)),
		Format:     format,
		Source:     model.SourceDemo,
		UploadedAt: time.Now().UTC(),
		Data:       data,
	}
	if err := s.put(ctx, rec); err != nil {
		return nil, err
	}

	s.log.Info("demo record stored", zap.String("record_id", rec.ID), zap.Int64("size", rec.Size))
	return rec, nil
}

func (s *recordService) Get(ctx context.Context, id string) (*model.Record, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	rec, err := s.store.Record(ctx, id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("load record: %w", err)
	}
	return rec, nil
}

func (s *recordService) put(ctx context.Context, rec *model.Record) error {
	if err := s.store.PutRecord(ctx, rec); err != nil {
		if errors.Is(err, session.ErrFull) {
			return ErrSessionFull
		}
		return fmt.Errorf("store record: %w", err)
	}
	return nil
}
