package hvsr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"hvsrweb/internal/config"
	"hvsrweb/internal/model"
)

const (
	processPath = "/api/v1/hvsr"
	healthPath  = "/api/v1/health"

	// Error bodies larger than this are cut off before decoding.
	maxErrorBody = 1 << 20
)

// Client is the HTTP implementation of Processor.
type Client struct {
	baseURL    string
	httpClient *http.Client
	bufferPool sync.Pool
	tracer     trace.Tracer
}

// NewClient builds a Processor client with pooled connections.
// HVSR runs on long records take a while, so the request timeout comes
// from configuration rather than a constant.
func NewClient(cfg config.ProcessorConfig) *Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: cfg.Timeout,
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(transport),
		},
		// Request bodies carry whole waveform files; pool the
		// marshaling buffers instead of reallocating per call.
		bufferPool: sync.Pool{
			New: func() any { return bytes.NewBuffer(make([]byte, 0, 64<<10)) },
		},
		tracer: otel.Tracer("hvsrweb/internal/hvsr"),
	}
}

// processRequest is the wire shape of a processing call. Data travels
// base64-encoded, which is how encoding/json treats []byte.
type processRequest struct {
	FileName string         `json:"file_name"`
	Data     []byte         `json:"data"`
	Settings model.Settings `json:"settings"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) Process(ctx context.Context, rec *model.Record, settings model.Settings) (*model.Result, error) {
	ctx, span := c.tracer.Start(ctx, "hvsr.process", trace.WithAttributes(
		attribute.String("hvsr.file_name", rec.Filename),
		attribute.String("hvsr.method", settings.Method),
		attribute.Int64("hvsr.record_bytes", rec.Size),
	))
	defer span.End()

	buf := c.bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer c.bufferPool.Put(buf)

	payload := processRequest{
		FileName: rec.Filename,
		Data:     rec.Data,
		Settings: settings,
	}
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		return nil, fmt.Errorf("encode process request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+processPath, bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("build process request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, NewError(ErrUnavailable, 0, "UNREACHABLE", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		perr := decodeError(resp)
		span.RecordError(perr)
		return nil, perr
	}

	var result model.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, NewError(ErrUnavailable, resp.StatusCode, "BAD_RESPONSE", "processor returned malformed JSON")
	}
	return &result, nil
}

func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return NewError(ErrUnavailable, 0, "UNREACHABLE", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return NewError(ErrUnavailable, resp.StatusCode, "UNHEALTHY",
			fmt.Sprintf("health endpoint returned status %d", resp.StatusCode))
	}
	return nil
}

// decodeError maps a non-200 answer to an error category: 400 means
// the input was refused, 422 means the computation failed, anything
// else counts as the processor being unavailable.
func decodeError(resp *http.Response) *Error {
	var body errorResponse
	_ = json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&body)

	code, message := body.Error.Code, body.Error.Message
	switch resp.StatusCode {
	case http.StatusBadRequest:
		if code == "" {
			code = "REJECTED_INPUT"
		}
		return NewError(ErrRejectedInput, resp.StatusCode, code, message)
	case http.StatusUnprocessableEntity:
		if code == "" {
			code = "PROCESSING_FAILED"
		}
		return NewError(ErrProcessing, resp.StatusCode, code, message)
	default:
		if code == "" {
			code = "UNAVAILABLE"
		}
		return NewError(ErrUnavailable, resp.StatusCode, code, message)
	}
}
