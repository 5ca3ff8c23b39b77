package model

import "fmt"

// Methods for combining the horizontal components.
const (
	MethodGeometricMean  = "geometric-mean"
	MethodSquaredAverage = "squared-average"
	MethodAzimuth        = "azimuth"
	MethodRotate         = "rotate"
)

// Distributions assumed for f0 and for the median curve.
const (
	DistributionLogNormal = "log-normal"
	DistributionNormal    = "normal"
)

// Frequency resampling types.
const (
	SamplingLog    = "log"
	SamplingLinear = "linear"
)

// Settings carries every processing parameter forwarded to the HVSR
// processor. JSON names double as form field names and as the keys of
// Schema(), so the three always agree.
type Settings struct {
	WindowLength float64 `json:"window_length"`
	TaperWidth   float64 `json:"taper_width"`

	FilterEnabled bool    `json:"filter_enabled"`
	FilterLow     float64 `json:"filter_low"`
	FilterHigh    float64 `json:"filter_high"`
	FilterOrder   int     `json:"filter_order"`

	SmoothingBandwidth float64 `json:"smoothing_bandwidth"`

	MinFrequency float64 `json:"min_frequency"`
	MaxFrequency float64 `json:"max_frequency"`
	SampleCount  int     `json:"sample_count"`
	Sampling     string  `json:"sampling"`

	Method          string  `json:"method"`
	Azimuth         float64 `json:"azimuth"`
	AzimuthInterval float64 `json:"azimuth_interval"`

	F0Distribution    string `json:"f0_distribution"`
	CurveDistribution string `json:"curve_distribution"`

	RejectionEnabled       bool    `json:"rejection_enabled"`
	RejectionStdDevs       float64 `json:"rejection_stddevs"`
	RejectionMaxIterations int     `json:"rejection_max_iterations"`
}

// DefaultSettings returns the parameter set the form starts from.
func DefaultSettings() Settings {
	return Settings{
		WindowLength:           60,
		TaperWidth:             0.1,
		FilterEnabled:          false,
		FilterLow:              0.1,
		FilterHigh:             30,
		FilterOrder:            5,
		SmoothingBandwidth:     40,
		MinFrequency:           0.2,
		MaxFrequency:           20,
		SampleCount:            128,
		Sampling:               SamplingLog,
		Method:                 MethodGeometricMean,
		Azimuth:                90,
		AzimuthInterval:        15,
		F0Distribution:         DistributionLogNormal,
		CurveDistribution:      DistributionLogNormal,
		RejectionEnabled:       true,
		RejectionStdDevs:       2,
		RejectionMaxIterations: 50,
	}
}

// NumberField describes the allowed range of a numeric form field.
type NumberField struct {
	Default float64 `json:"default"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Unit    string  `json:"unit,omitempty"`
}

// ChoiceField describes an enumerated form field.
type ChoiceField struct {
	Default string   `json:"default"`
	Choices []string `json:"choices"`
}

// SettingsSchema drives the settings form: defaults plus the allowed
// range or choices of every field, keyed by JSON field name.
type SettingsSchema struct {
	Defaults Settings               `json:"defaults"`
	Numbers  map[string]NumberField `json:"numbers"`
	Choices  map[string]ChoiceField `json:"choices"`
	Booleans map[string]bool        `json:"booleans"`
}

var numberFields = map[string]NumberField{
	"window_length":            {Default: 60, Min: 30, Max: 600, Step: 1, Unit: "s"},
	"taper_width":              {Default: 0.1, Min: 0, Max: 1, Step: 0.1},
	"filter_low":               {Default: 0.1, Min: 0, Max: 1000, Step: 0.01, Unit: "Hz"},
	"filter_high":              {Default: 30, Min: 0, Max: 600, Step: 1, Unit: "Hz"},
	"filter_order":             {Default: 5, Min: 0, Max: 600, Step: 1},
	"smoothing_bandwidth":      {Default: 40, Min: 10, Max: 100, Step: 5},
	"min_frequency":            {Default: 0.2, Min: 0.01, Max: 30, Step: 0.01, Unit: "Hz"},
	"max_frequency":            {Default: 20, Min: 1, Max: 100, Step: 1, Unit: "Hz"},
	"sample_count":             {Default: 128, Min: 32, Max: 4096, Step: 1},
	"azimuth":                  {Default: 90, Min: 0, Max: 179, Step: 1, Unit: "deg"},
	"azimuth_interval":         {Default: 15, Min: 0, Max: 45, Step: 1, Unit: "deg"},
	"rejection_stddevs":        {Default: 2, Min: 1, Max: 4, Step: 0.5},
	"rejection_max_iterations": {Default: 50, Min: 5, Max: 75, Step: 1},
}

var choiceFields = map[string]ChoiceField{
	"sampling":           {Default: SamplingLog, Choices: []string{SamplingLog, SamplingLinear}},
	"method":             {Default: MethodGeometricMean, Choices: []string{MethodGeometricMean, MethodSquaredAverage, MethodAzimuth, MethodRotate}},
	"f0_distribution":    {Default: DistributionLogNormal, Choices: []string{DistributionLogNormal, DistributionNormal}},
	"curve_distribution": {Default: DistributionLogNormal, Choices: []string{DistributionLogNormal, DistributionNormal}},
}

// Schema returns the form schema for the current defaults.
func Schema() SettingsSchema {
	return SettingsSchema{
		Defaults: DefaultSettings(),
		Numbers:  numberFields,
		Choices:  choiceFields,
		Booleans: map[string]bool{
			"filter_enabled":    false,
			"rejection_enabled": true,
		},
	}
}

// FieldError flags a single out-of-range or inconsistent form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks numeric ranges, enum choices, and cross-field
// consistency. Violations come back as flags for inline form
// highlighting; they never block a calculation, the processor has the
// final word on what it accepts.
func (s Settings) Validate() []FieldError {
	var flags []FieldError

	number := func(field string, value float64) {
		r, ok := numberFields[field]
		if !ok {
			return
		}
		if value < r.Min || value > r.Max {
			flags = append(flags, FieldError{
				Field:   field,
				Message: fmt.Sprintf("must be between %g and %g", r.Min, r.Max),
			})
		}
	}
	choice := func(field, value string) {
		r, ok := choiceFields[field]
		if !ok {
			return
		}
		for _, c := range r.Choices {
			if value == c {
				return
			}
		}
		flags = append(flags, FieldError{Field: field, Message: "unknown choice " + value})
	}

	number("window_length", s.WindowLength)
	number("taper_width", s.TaperWidth)
	if s.FilterEnabled {
		number("filter_low", s.FilterLow)
		number("filter_high", s.FilterHigh)
		number("filter_order", float64(s.FilterOrder))
		if s.FilterLow >= s.FilterHigh {
			flags = append(flags, FieldError{Field: "filter_low", Message: "must be below filter_high"})
		}
	}
	number("smoothing_bandwidth", s.SmoothingBandwidth)
	number("min_frequency", s.MinFrequency)
	number("max_frequency", s.MaxFrequency)
	if s.MinFrequency >= s.MaxFrequency {
		flags = append(flags, FieldError{Field: "min_frequency", Message: "must be below max_frequency"})
	}
	number("sample_count", float64(s.SampleCount))
	choice("sampling", s.Sampling)
	choice("method", s.Method)
	switch s.Method {
	case MethodAzimuth:
		number("azimuth", s.Azimuth)
	case MethodRotate:
		number("azimuth_interval", s.AzimuthInterval)
	}
	choice("f0_distribution", s.F0Distribution)
	choice("curve_distribution", s.CurveDistribution)
	if s.RejectionEnabled {
		number("rejection_stddevs", s.RejectionStdDevs)
		number("rejection_max_iterations", float64(s.RejectionMaxIterations))
	}

	return flags
}
