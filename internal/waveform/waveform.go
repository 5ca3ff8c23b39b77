// Package waveform identifies the on-disk format of uploaded seismic
// records. It looks at header bytes only; samples are never decoded
// here, that is the processor's job.
package waveform

import (
	"encoding/binary"
	"errors"
	"math"
	"path/filepath"
	"strings"

	"hvsrweb/internal/model"
)

// ErrUnknownFormat is returned when neither the content nor the
// filename extension identifies a supported waveform format.
var ErrUnknownFormat = errors.New("unknown waveform format")

const (
	mseedFixedHeaderLen = 48
	sacHeaderLen        = 632
	sacVersionOffset    = 76 * 4
)

// Detect returns the waveform format of data. Content sniffing wins;
// the filename extension is only a fallback for truncated files.
func Detect(filename string, data []byte) (string, error) {
	if looksLikeMiniSEED(data) {
		return model.FormatMiniSEED, nil
	}
	if looksLikeSAC(data) {
		return model.FormatSAC, nil
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".miniseed", ".mseed":
		return model.FormatMiniSEED, nil
	case ".sac":
		return model.FormatSAC, nil
	}
	return "", ErrUnknownFormat
}

// looksLikeMiniSEED checks the fixed section of a miniSEED data record
// header: a six character sequence number (digits, space padded),
// a data quality indicator in {D, R, Q, M}, and a reserved byte.
func looksLikeMiniSEED(data []byte) bool {
	if len(data) < mseedFixedHeaderLen {
		return false
	}

	digits := 0
	for _, b := range data[:6] {
		switch {
		case b >= '0' && b <= '9':
			digits++
		case b == ' ':
		default:
			return false
		}
	}
	if digits == 0 {
		return false
	}

	switch data[6] {
	case 'D', 'R', 'Q', 'M':
	default:
		return false
	}
	return data[7] == ' ' || data[7] == 0
}

// looksLikeSAC checks the binary SAC header: the internal header
// version must be 6 and the sample interval a positive finite float.
// Both byte orders are tried since SAC files carry no magic.
func looksLikeSAC(data []byte) bool {
	if len(data) < sacHeaderLen {
		return false
	}

	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		if int32(order.Uint32(data[sacVersionOffset:])) != 6 {
			continue
		}
		delta := float64(math.Float32frombits(order.Uint32(data)))
		if delta > 0 && !math.IsInf(delta, 0) && !math.IsNaN(delta) {
			return true
		}
	}
	return false
}
