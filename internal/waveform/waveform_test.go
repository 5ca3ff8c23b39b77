package waveform

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"hvsrweb/internal/model"
)

// miniSEEDHeader builds a minimal fixed data header with the given
// sequence number and quality indicator.
func miniSEEDHeader(seq string, quality byte) []byte {
	data := make([]byte, 64)
	copy(data, seq)
	data[6] = quality
	data[7] = ' '
	copy(data[8:], "STN11")
	return data
}

// sacHeader builds a minimal binary SAC header with the given sample
// interval, in the given byte order.
func sacHeader(delta float32, order binary.ByteOrder) []byte {
	data := make([]byte, sacHeaderLen)
	order.PutUint32(data, math.Float32bits(delta))
	order.PutUint32(data[sacVersionOffset:], uint32(6))
	return data
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name       string
		filename   string
		data       []byte
		wantFormat string
		wantErr    error
	}{
		{
			name:       "miniseed by content",
			filename:   "record.bin",
			data:       miniSEEDHeader("000001", 'D'),
			wantFormat: model.FormatMiniSEED,
		},
		{
			name:       "miniseed with space padded sequence",
			filename:   "record.bin",
			data:       miniSEEDHeader("     1", 'Q'),
			wantFormat: model.FormatMiniSEED,
		},
		{
			name:       "sac little endian by content",
			filename:   "record.bin",
			data:       sacHeader(0.01, binary.LittleEndian),
			wantFormat: model.FormatSAC,
		},
		{
			name:       "sac big endian by content",
			filename:   "record.bin",
			data:       sacHeader(0.005, binary.BigEndian),
			wantFormat: model.FormatSAC,
		},
		{
			name:       "truncated miniseed recovered by extension",
			filename:   "UT.STN11.A2_C150.miniseed",
			data:       []byte("0001"),
			wantFormat: model.FormatMiniSEED,
		},
		{
			name:       "mseed extension",
			filename:   "noise.MSEED",
			data:       []byte{},
			wantFormat: model.FormatMiniSEED,
		},
		{
			name:       "sac extension",
			filename:   "noise.sac",
			data:       []byte("short"),
			wantFormat: model.FormatSAC,
		},
		{
			name:     "plain text rejected",
			filename: "readme.txt",
			data:     []byte("not a waveform at all, just words"),
			wantErr:  ErrUnknownFormat,
		},
		{
			name:     "bad quality indicator rejected",
			filename: "record.bin",
			data:     miniSEEDHeader("000001", 'X'),
			wantErr:  ErrUnknownFormat,
		},
		{
			name:     "sac with zero delta rejected",
			filename: "record.bin",
			data:     sacHeader(0, binary.LittleEndian),
			wantErr:  ErrUnknownFormat,
		},
		{
			name:     "empty input rejected",
			filename: "",
			data:     nil,
			wantErr:  ErrUnknownFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := Detect(tt.filename, tt.data)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, format)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantFormat, format)
			}
		})
	}
}

func TestDetectContentBeatsExtension(t *testing.T) {
	// A well-formed miniSEED header wins even under a misleading name.
	format, err := Detect("record.sac", miniSEEDHeader("000001", 'D'))
	assert.NoError(t, err)
	assert.Equal(t, model.FormatMiniSEED, format)
}
