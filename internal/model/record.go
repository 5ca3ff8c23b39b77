package model

import "time"

// Waveform formats accepted by the upload handler.
const (
	FormatMiniSEED = "miniseed"
	FormatSAC      = "sac"
)

// Record sources.
const (
	SourceUpload = "upload"
	SourceDemo   = "demo"
)

// Record represents an uploaded three-component ambient-noise file.
// The raw bytes are held only for the lifetime of the session; they are
// forwarded verbatim to the processor and never parsed here beyond
// format sniffing.
type Record struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	Format     string    `json:"format"`
	Source     string    `json:"source"`
	UploadedAt time.Time `json:"uploaded_at"`

	Data []byte `json:"-"`
}

// Calculation ties a record to the settings used and the result the
// processor returned. Like records, calculations live in the session
// store only.
type Calculation struct {
	ID        string    `json:"id"`
	Record    Record    `json:"record"`
	Settings  Settings  `json:"settings"`
	Result    *Result   `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}
