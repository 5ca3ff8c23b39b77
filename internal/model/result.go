package model

// Result is the processor's answer, decoded from JSON and re-serialized
// for the browser and the export writers. Nothing in here is ever
// recomputed locally; the processor owns the numbers.
type Result struct {
	// Resampled frequency axis shared by every curve below.
	Frequency []float64 `json:"frequency"`

	Windows         []WindowCurve `json:"windows"`
	TotalWindows    int           `json:"total_windows"`
	AcceptedWindows int           `json:"accepted_windows"`

	// Curve and F0 describe the current state, after rejection when it
	// was performed.
	Curve CurveStats `json:"curve"`
	F0    F0Stats    `json:"f0"`

	BeforeRejection *Snapshot         `json:"before_rejection,omitempty"`
	Rejection       *Rejection        `json:"rejection,omitempty"`
	Azimuthal       *AzimuthalSurface `json:"azimuthal,omitempty"`
	TimeRecords     []TimeRecord      `json:"time_records,omitempty"`

	ProcessorVersion string  `json:"processor_version,omitempty"`
	ElapsedSeconds   float64 `json:"elapsed_seconds,omitempty"`
}

// WindowCurve is the HVSR curve of a single time window.
type WindowCurve struct {
	Index         int       `json:"index"`
	Amplitude     []float64 `json:"amplitude"`
	PeakFrequency float64   `json:"peak_frequency"`
	PeakAmplitude float64   `json:"peak_amplitude"`
	Rejected      bool      `json:"rejected,omitempty"`
}

// CurveStats is a combined curve with its one-standard-deviation band
// and peak. Under a log-normal distribution the center is the median,
// under a normal distribution the mean.
type CurveStats struct {
	Amplitude     []float64 `json:"amplitude"`
	Lower         []float64 `json:"lower"`
	Upper         []float64 `json:"upper"`
	PeakFrequency float64   `json:"peak_frequency"`
	PeakAmplitude float64   `json:"peak_amplitude"`
}

// F0Stats summarizes the per-window peak frequencies. Lower and Upper
// bound the one-standard-deviation interval under the requested
// distribution.
type F0Stats struct {
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Snapshot preserves the combined statistics as they stood before the
// window-rejection pass.
type Snapshot struct {
	Curve CurveStats `json:"curve"`
	F0    F0Stats    `json:"f0"`
}

// Rejection reports what the frequency-domain window-rejection pass did.
type Rejection struct {
	StdDevs       float64 `json:"stddevs"`
	Iterations    int     `json:"iterations"`
	MaxIterations int     `json:"max_iterations"`
	RejectedCount int     `json:"rejected_count"`
}

// AzimuthalSurface holds the per-azimuth median curves produced by the
// rotate method. Curves has one row per azimuth, each row aligned with
// Result.Frequency.
type AzimuthalSurface struct {
	Azimuths        []float64   `json:"azimuths"`
	Curves          [][]float64 `json:"curves"`
	PeakFrequencies []float64   `json:"peak_frequencies"`
	PeakAmplitudes  []float64   `json:"peak_amplitudes"`
}

// TimeRecord is a decimated, normalized preview of one component of the
// input record, used for the time-domain panels.
type TimeRecord struct {
	Component string    `json:"component"`
	Time      []float64 `json:"time"`
	Amplitude []float64 `json:"amplitude"`
}
