package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/retodia/retodia-backend/internal/platform/logger"
)

// Content is one turn of the transcript sent to the model.
type Content struct {
	Role string // "user" | "model"
	Text string
}

// Client is the generative-service client used by the rest of the backend.
type Client interface {
	// GenerateStructured constrains the output to the given response schema
	// and returns the raw model text (expected to be a JSON document).
	GenerateStructured(ctx context.Context, system string, contents []Content, schema map[string]any) (string, error)

	// GenerateText returns a plain-text reply with no output schema.
	GenerateText(ctx context.Context, system string, contents []Content) (string, error)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(log *logger.Logger) (Client, error) {
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("missing GEMINI_API_KEY")
	}

	baseURL := strings.TrimSpace(os.Getenv("GEMINI_BASE_URL"))
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	baseURL = strings.TrimRight(baseURL, "/")

	model := strings.TrimSpace(os.Getenv("GEMINI_MODEL"))
	if model == "" {
		model = "gemini-2.5-flash"
	}

	timeoutSec := 120
	if v := os.Getenv("GEMINI_TIMEOUT_SECONDS"); v != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed > 0 {
			timeoutSec = parsed
		}
	}

	return &client{
		log:        log.With("client", "gemini"),
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}, nil
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

type generateRequest struct {
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	Contents          []content         `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
}

func (c *client) GenerateStructured(ctx context.Context, system string, contents []Content, schema map[string]any) (string, error) {
	if schema == nil {
		return "", fmt.Errorf("schema required")
	}
	return c.generate(ctx, system, contents, &generationConfig{
		ResponseMimeType: "application/json",
		ResponseSchema:   schema,
	})
}

func (c *client) GenerateText(ctx context.Context, system string, contents []Content) (string, error) {
	return c.generate(ctx, system, contents, nil)
}

func (c *client) generate(ctx context.Context, system string, contents []Content, genCfg *generationConfig) (string, error) {
	req := generateRequest{
		Contents:         make([]content, 0, len(contents)),
		GenerationConfig: genCfg,
	}
	if strings.TrimSpace(system) != "" {
		req.SystemInstruction = &content{Parts: []part{{Text: system}}}
	}
	for _, m := range contents {
		req.Contents = append(req.Contents, content{Role: m.Role, Parts: []part{{Text: m.Text}}})
	}

	body, err := json.Marshal(&req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return "", fmt.Errorf("read gemini response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("gemini non-2xx", "status", resp.StatusCode, "body", truncate(string(respBody), 512))
		return "", fmt.Errorf("gemini status %d: %s", resp.StatusCode, truncate(string(respBody), 512))
	}

	var out generateResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	if out.PromptFeedback != nil && out.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("gemini blocked prompt: %s", out.PromptFeedback.BlockReason)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("gemini returned empty text")
	}
	return text, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
