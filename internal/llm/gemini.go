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
	defaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultGeminiModel    = "gemini-2.0-flash"
)

type geminiClient struct {
	cfg        Config
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
	observer   Observer
}

// NewGeminiClient creates a client for the Gemini generateContent API.
func NewGeminiClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultGeminiEndpoint
	}
	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}
	return &geminiClient{
		cfg:      cfg,
		endpoint: strings.TrimRight(endpoint, "/"),
		model:    model,
		apiKey:   cfg.APIKey,
		observer: observer,
		httpClient: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig *geminiGenConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("generate %s: missing API key: %w", req.Task, ErrUnavailable)
	}

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

	// The generateContent API takes a single text blob, so the system
	// prompt rides in front of the user prompt.
	prompt := req.UserPrompt
	if req.SystemPrompt != "" {
		prompt = req.SystemPrompt + "\n\n" + req.UserPrompt
	}

	body := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: &geminiGenConfig{
			Temperature:     temperature,
			MaxOutputTokens: maxTokens,
		},
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries
	for attempt := 0; attempt < attempts; attempt++ {
		start := time.Now()
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		text, err := c.doRequest(attemptCtx, body)
		cancel()
		latency := time.Since(start).Milliseconds()

		event := LLMCallEvent{
			Timestamp: start,
			Task:      req.Task,
			Provider:  ProviderGemini,
			Model:     c.model,
			LatencyMs: latency,
			Attempt:   attempt + 1,
		}

		if err == nil {
			event.Status = "ok"
			c.observer.OnCallComplete(event)
			return &GenerateResponse{
				Text:      text,
				Model:     c.model,
				LatencyMs: latency,
			}, nil
		}

		event.Status = "error"
		event.ErrorCode = errorCode(err)
		c.observer.OnCallComplete(event)
		lastErr = err

		if ctx.Err() != nil {
			return nil, fmt.Errorf("generate %s: %w", req.Task, ErrTimeout)
		}
	}

	return nil, fmt.Errorf("generate %s after %d attempts: %w: %w", req.Task, attempts, ErrRetryExhausted, lastErr)
}

func (c *geminiClient) doRequest(ctx context.Context, body geminiRequest) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.endpoint, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", ErrTimeout
		}
		if isConnectionError(err) {
			return "", ErrUnavailable
		}
		return "", fmt.Errorf("http request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(httpResp.Body, 512))
		return "", fmt.Errorf("gemini returned %d: %s: %w", httpResp.StatusCode, string(data), ErrUnavailable)
	}

	var resp geminiResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("decode response: %w", ErrInvalidOutput)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("gemini error: %s: %w", resp.Error.Message, ErrUnavailable)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates: %w", ErrInvalidOutput)
	}
	text := resp.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty response: %w", ErrInvalidOutput)
	}
	return text, nil
}

func (c *geminiClient) Available(ctx context.Context) bool {
	if c.apiKey == "" {
		return false
	}
	checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	url := fmt.Sprintf("%s/%s?key=%s", c.endpoint, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(checkCtx, http.MethodGet, url, nil)
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
