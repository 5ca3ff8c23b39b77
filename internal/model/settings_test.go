package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	flags := DefaultSettings().Validate()
	assert.Empty(t, flags)
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(s *Settings)
		wantFields []string
	}{
		{
			name:       "window length below range",
			mutate:     func(s *Settings) { s.WindowLength = 10 },
			wantFields: []string{"window_length"},
		},
		{
			name:       "window length above range",
			mutate:     func(s *Settings) { s.WindowLength = 601 },
			wantFields: []string{"window_length"},
		},
		{
			name:       "taper width above range",
			mutate:     func(s *Settings) { s.TaperWidth = 1.5 },
			wantFields: []string{"taper_width"},
		},
		{
			name: "filter bounds ignored while filter disabled",
			mutate: func(s *Settings) {
				s.FilterEnabled = false
				s.FilterLow = -1
				s.FilterHigh = 100000
			},
			wantFields: nil,
		},
		{
			name: "filter low must stay below filter high",
			mutate: func(s *Settings) {
				s.FilterEnabled = true
				s.FilterLow = 50
				s.FilterHigh = 10
			},
			wantFields: []string{"filter_low"},
		},
		{
			name: "min frequency must stay below max frequency",
			mutate: func(s *Settings) {
				s.MinFrequency = 25
				s.MaxFrequency = 20
			},
			wantFields: []string{"min_frequency"},
		},
		{
			name:       "sample count below range",
			mutate:     func(s *Settings) { s.SampleCount = 16 },
			wantFields: []string{"sample_count"},
		},
		{
			name:       "unknown method",
			mutate:     func(s *Settings) { s.Method = "vector-sum" },
			wantFields: []string{"method"},
		},
		{
			name: "azimuth checked only for the azimuth method",
			mutate: func(s *Settings) {
				s.Method = MethodGeometricMean
				s.Azimuth = 500
			},
			wantFields: nil,
		},
		{
			name: "azimuth out of range",
			mutate: func(s *Settings) {
				s.Method = MethodAzimuth
				s.Azimuth = 180
			},
			wantFields: []string{"azimuth"},
		},
		{
			name: "azimuth interval out of range",
			mutate: func(s *Settings) {
				s.Method = MethodRotate
				s.AzimuthInterval = 60
			},
			wantFields: []string{"azimuth_interval"},
		},
		{
			name:       "unknown distribution",
			mutate:     func(s *Settings) { s.F0Distribution = "uniform" },
			wantFields: []string{"f0_distribution"},
		},
		{
			name: "rejection bounds ignored while rejection disabled",
			mutate: func(s *Settings) {
				s.RejectionEnabled = false
				s.RejectionStdDevs = 99
			},
			wantFields: nil,
		},
		{
			name: "rejection stddevs out of range",
			mutate: func(s *Settings) {
				s.RejectionEnabled = true
				s.RejectionStdDevs = 0.5
			},
			wantFields: []string{"rejection_stddevs"},
		},
		{
			name: "multiple violations reported together",
			mutate: func(s *Settings) {
				s.WindowLength = 1
				s.SmoothingBandwidth = 5
				s.Sampling = "cubic"
			},
			wantFields: []string{"window_length", "smoothing_bandwidth", "sampling"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)

			flags := s.Validate()

			var fields []string
			for _, f := range flags {
				fields = append(fields, f.Field)
				assert.NotEmpty(t, f.Message)
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}

func TestSchemaCoversEverySettingsField(t *testing.T) {
	schema := Schema()

	// Every field of the Settings struct must be driven by exactly one
	// schema section, otherwise the form cannot render it.
	want := map[string]bool{
		"window_length": true, "taper_width": true,
		"filter_enabled": true, "filter_low": true, "filter_high": true, "filter_order": true,
		"smoothing_bandwidth": true,
		"min_frequency":       true, "max_frequency": true, "sample_count": true, "sampling": true,
		"method": true, "azimuth": true, "azimuth_interval": true,
		"f0_distribution": true, "curve_distribution": true,
		"rejection_enabled": true, "rejection_stddevs": true, "rejection_max_iterations": true,
	}

	got := map[string]bool{}
	for k := range schema.Numbers {
		got[k] = true
	}
	for k := range schema.Choices {
		got[k] = true
	}
	for k := range schema.Booleans {
		got[k] = true
	}

	assert.Equal(t, want, got)
	assert.Equal(t, DefaultSettings(), schema.Defaults)
}

func TestSchemaDefaultsMatchRanges(t *testing.T) {
	schema := Schema()
	for field, r := range schema.Numbers {
		assert.GreaterOrEqual(t, r.Default, r.Min, field)
		assert.LessOrEqual(t, r.Default, r.Max, field)
	}
	for field, c := range schema.Choices {
		assert.Contains(t, c.Choices, c.Default, field)
	}
}
