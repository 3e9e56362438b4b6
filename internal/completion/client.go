// Package completion sends chat-completion requests to the external AI
// endpoint and decodes the response envelope.
package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"divinescribe/internal/jsonutil"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	DefaultEndpoint = "https://api.deepseek.com/chat/completions"
	DefaultModel    = "deepseek-chat"
)

// Feature names the caller of a completion, for logs and spans.
type Feature string

const (
	FeatureSermon Feature = "sermon"
	FeatureQuiz   Feature = "quiz"
)

// Request is one completion call: a fixed system prompt, a user prompt,
// and sampling parameters.
type Request struct {
	Feature      Feature
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
	MaxTokens    int
}

// Completer is implemented by Client. Generators depend on this so tests
// can substitute a fake.
type Completer interface {
	Complete(ctx context.Context, credential string, req Request) (string, error)
}

// Message is a single chat message in the wire format.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// Client posts chat-completion requests. It never retries.
type Client struct {
	endpoint   string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
	tracer     oteltrace.Tracer
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client (default: http.DefaultClient).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger (default: no-op).
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithTracer sets the tracer (default: the global provider's tracer).
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// WithTimeout sets a whole-request timeout. Zero keeps the platform default.
// It applies to whichever HTTP client is configured, regardless of option
// order.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// New creates a client for endpoint and model.
func New(endpoint, model string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if model == "" {
		model = DefaultModel
	}
	c := &Client{
		endpoint:   endpoint,
		model:      model,
		httpClient: http.DefaultClient,
		logger:     zap.NewNop(),
		tracer:     otel.Tracer("divinescribe/completion"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// Model returns the model name sent with each request.
func (c *Client) Model() string { return c.model }

type requestIDKey struct{}

// WithRequestID returns a context carrying id. Complete uses it for log and
// span correlation; callers use it to match results to the call they issued.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request id stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Complete sends req with credential as the bearer token and returns the
// first choice's message content. Errors are *ValidationError,
// *RequestError or *DecodeError.
func (c *Client) Complete(ctx context.Context, credential string, req Request) (string, error) {
	if credential == "" {
		return "", &ValidationError{Field: FieldCredential}
	}

	id := RequestID(ctx)
	if id == "" {
		id = uuid.NewString()
	}
	log := c.logger.With(
		zap.String("request_id", id),
		zap.String("feature", string(req.Feature)),
		zap.String("model", c.model),
	)

	ctx, span := c.tracer.Start(ctx, "completion.request", oteltrace.WithAttributes(
		attribute.String("divinescribe.feature", string(req.Feature)),
		attribute.String("divinescribe.model", c.model),
		attribute.String("divinescribe.request.id", id),
	))
	defer span.End()

	start := time.Now()
	log.Debug("completion request started")

	content, status, err := c.do(ctx, credential, req)
	if status != 0 {
		span.SetAttributes(attribute.Int("http.status_code", status))
	}
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			span.SetAttributes(attribute.String("divinescribe.decode.stage", string(de.Stage)))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		fields := []zap.Field{
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.Error(err),
		}
		if errors.Is(err, context.Canceled) {
			log.Debug("completion request canceled", fields...)
			return "", err
		}
		log.Error("completion request failed", fields...)
		return "", err
	}

	log.Info("completion request finished",
		zap.Int("status", status),
		zap.Duration("latency", time.Since(start)),
		zap.Int("content_len", len(content)),
	)
	return content, nil
}

// do performs the HTTP round trip and envelope decode.
func (c *Client) do(ctx context.Context, credential string, req Request) (string, int, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserPrompt},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", 0, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", 0, &RequestError{Err: err}
	}
	httpReq.Header.Set("Authorization", "Bearer "+credential)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", 0, &RequestError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return "", resp.StatusCode, &RequestError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, &RequestError{Err: fmt.Errorf("read body: %w", err)}
	}

	content, err := DecodeEnvelope(data)
	if err != nil {
		return "", resp.StatusCode, err
	}
	return content, resp.StatusCode, nil
}

// DecodeEnvelope extracts the first choice's message content from a
// chat-completion response body. An empty choices array yields "" with no
// error; a body that is not JSON or has no choices field is a DecodeError.
func DecodeEnvelope(body []byte) (string, error) {
	var resp chatResponse
	if err := jsonutil.UnmarshalWithContext(body, &resp, "completion envelope"); err != nil {
		return "", &DecodeError{Stage: StageEnvelope, Err: err}
	}
	if resp.Choices == nil {
		return "", &DecodeError{Stage: StageEnvelope, Err: errors.New("completion envelope: missing choices")}
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
