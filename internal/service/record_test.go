package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hvsrweb/internal/config"
	"hvsrweb/internal/model"
	"hvsrweb/internal/session"
	sessionmocks "hvsrweb/internal/session/mocks"
)

func newRecordService(t *testing.T, upload config.UploadConfig, demo config.DemoConfig) RecordService {
	t.Helper()
	store := session.NewMemoryStore(config.SessionConfig{TTL: time.Minute})
	return NewRecordService(store, upload, demo, zap.NewNop())
}

func TestRecordServiceUpload(t *testing.T) {
	svc := newRecordService(t, config.UploadConfig{MaxBytes: 1 << 20}, config.DemoConfig{})

	data := []byte("three component ambient noise")
	rec, err := svc.Upload(context.Background(), "UT.STN11.A2_C150.miniseed", data)
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "UT.STN11.A2_C150.miniseed", rec.Filename)
	assert.Equal(t, int64(len(data)), rec.Size)
	assert.Equal(t, model.FormatMiniSEED, rec.Format)
	assert.Equal(t, model.SourceUpload, rec.Source)
	assert.Equal(t, data, rec.Data)
	assert.WithinDuration(t, time.Now().UTC(), rec.UploadedAt, time.Minute)

	got, err := svc.Get(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
}

func TestRecordServiceUploadStripsPath(t *testing.T) {
	svc := newRecordService(t, config.UploadConfig{}, config.DemoConfig{})

	rec, err := svc.Upload(context.Background(), "uploads/site/./survey.mseed", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "survey.mseed", rec.Filename)
}

func TestRecordServiceUploadErrors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		max      int64
		wantErr  error
	}{
		{
			name:     "empty file",
			filename: "empty.miniseed",
			data:     nil,
			wantErr:  ErrEmptyFile,
		},
		{
			name:     "over the size limit",
			filename: "big.miniseed",
			data:     []byte("0123456789"),
			max:      8,
			wantErr:  ErrTooLarge,
		},
		{
			name:     "unknown format",
			filename: "notes.txt",
			data:     []byte("plain text"),
			wantErr:  ErrUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newRecordService(t, config.UploadConfig{MaxBytes: tt.max}, config.DemoConfig{})
			_, err := svc.Upload(context.Background(), tt.filename, tt.data)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecordServiceUploadSessionFull(t *testing.T) {
	store := new(sessionmocks.MockStore)
	store.On("PutRecord", mock.Anything, mock.Anything).Return(session.ErrFull)

	svc := NewRecordService(store, config.UploadConfig{}, config.DemoConfig{}, zap.NewNop())
	_, err := svc.Upload(context.Background(), "full.miniseed", []byte("x"))
	assert.ErrorIs(t, err, ErrSessionFull)
	store.AssertExpectations(t)
}

func TestRecordServiceDemo(t *testing.T) {
	dir := t.TempDir()
	content := []byte("demo waveform bytes")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "demo.miniseed"), content, 0o644))

	svc := newRecordService(t, config.UploadConfig{}, config.DemoConfig{Dir: dir, File: "demo.miniseed"})

	rec, err := svc.Demo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "demo.miniseed", rec.Filename)
	assert.Equal(t, model.SourceDemo, rec.Source)
	assert.Equal(t, model.FormatMiniSEED, rec.Format)
	assert.Equal(t, content, rec.Data)

	got, err := svc.Get(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
}

func TestRecordServiceDemoMissing(t *testing.T) {
	svc := newRecordService(t, config.UploadConfig{}, config.DemoConfig{Dir: t.TempDir(), File: "absent.miniseed"})

	_, err := svc.Demo(context.Background())
	assert.ErrorIs(t, err, ErrDemoUnavailable)
}

func TestRecordServiceGet(t *testing.T) {
	svc := newRecordService(t, config.UploadConfig{}, config.DemoConfig{})

	_, err := svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrIDRequired)

	_, err = svc.Get(context.Background(), "2f3a1c44-5a10-4a3c-9f2b-6a86b3b64d26")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
