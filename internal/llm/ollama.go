package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	defaultOllamaEndpoint = "http://localhost:11434"
	defaultOllamaModel    = "llama3.2"
)

type ollamaClient struct {
	cfg        Config
	endpoint   string
	model      string
	httpClient *http.Client
	observer   Observer
}

// NewOllamaClient creates a client for a local Ollama server.
func NewOllamaClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultOllamaEndpoint
	}
	model := cfg.Model
	if model == "" {
		model = defaultOllamaModel
	}
	return &ollamaClient{
		cfg:      cfg,
		endpoint: strings.TrimRight(endpoint, "/"),
		model:    model,
		httpClient: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	System  string        `json:"system,omitempty"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func (c *ollamaClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	taskCfg := c.cfg.taskConfig(req.Task)

	temperature := taskCfg.Temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	maxTokens := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTokens = *req.MaxTokens
	}
	timeout := time.Duration(taskCfg.TimeoutMs) * time.Millisecond

	body := ollamaRequest{
		Model:  c.model,
		Prompt: req.UserPrompt,
		System: req.SystemPrompt,
		Stream: false,
		Options: ollamaOptions{
			Temperature: temperature,
			NumPredict:  maxTokens,
		},
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries
	for attempt := 0; attempt < attempts; attempt++ {
		start := time.Now()
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		resp, err := c.doRequest(attemptCtx, body)
		cancel()
		latency := time.Since(start).Milliseconds()

		event := LLMCallEvent{
			Timestamp: start,
			Task:      req.Task,
			Provider:  ProviderOllama,
			Model:     c.model,
			LatencyMs: latency,
			Attempt:   attempt + 1,
		}

		if err == nil {
			event.Status = "ok"
			c.observer.OnCallComplete(event)
			return &GenerateResponse{
				Text:      resp.Response,
				Model:     c.model,
				LatencyMs: latency,
			}, nil
		}

		event.Status = "error"
		event.ErrorCode = errorCode(err)
		c.observer.OnCallComplete(event)
		lastErr = err

		// Do not retry when the parent context is gone.
		if ctx.Err() != nil {
			return nil, fmt.Errorf("generate %s: %w", req.Task, ErrTimeout)
		}
	}

	return nil, fmt.Errorf("generate %s after %d attempts: %w: %w", req.Task, attempts, ErrRetryExhausted, lastErr)
}

func (c *ollamaClient) doRequest(ctx context.Context, body ollamaRequest) (*ollamaResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := c.endpoint + "/api/generate"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, ErrTimeout
		}
		if isConnectionError(err) {
			return nil, ErrUnavailable
		}
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(httpResp.Body, 512))
		return nil, fmt.Errorf("ollama returned %d: %s: %w", httpResp.StatusCode, string(data), ErrUnavailable)
	}

	var resp ollamaResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", ErrInvalidOutput)
	}
	if strings.TrimSpace(resp.Response) == "" {
		return nil, fmt.Errorf("empty response: %w", ErrInvalidOutput)
	}
	return &resp, nil
}

func (c *ollamaClient) Available(ctx context.Context) bool {
	checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(checkCtx, http.MethodGet, c.endpoint+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
