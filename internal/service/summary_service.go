package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/nasarali03/Portfolio/internal/config"
	"github.com/nasarali03/Portfolio/internal/models"
)

const summaryPrompt = `You are an expert at creating concise and compelling project card summaries for portfolio websites.

Given the project title and description below, generate a short summary (approximately 2-3 sentences) that highlights the key features, technologies used, and outcomes of the project. Reply with the summary only.`

type ChatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []ChatCompletionMessage `json:"messages"`
	Stream      bool                    `json:"stream"`
	Temperature *float64                `json:"temperature,omitempty"`
}

type ChatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message ChatCompletionMessage `json:"message"`
	} `json:"choices"`
}

// SummaryService drafts project card summaries through an OpenAI compatible
// chat completions API.
type SummaryService struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

func NewSummaryService(cfg config.LLMConfig) *SummaryService {
	return &SummaryService{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
	}
}

func (s *SummaryService) Enabled() bool {
	return s.baseURL != ""
}

// GenerateSummary returns a short card summary for a project. Nothing is
// stored; the admin copies the draft into the project form.
func (s *SummaryService) GenerateSummary(ctx context.Context, fields models.SummaryFields) (string, error) {
	if !s.Enabled() {
		return "", ErrSummaryOff
	}

	title := strings.TrimSpace(fields.Title)
	description := strings.TrimSpace(fields.Description)
	if title == "" || description == "" {
		verr := &models.ValidationError{}
		if title == "" {
			verr.Add("title", "title is required")
		}
		if description == "" {
			verr.Add("description", "description is required")
		}
		return "", verr
	}

	temperature := 0.4
	request := ChatCompletionRequest{
		Model: s.model,
		Messages: []ChatCompletionMessage{
			{Role: "system", Content: summaryPrompt},
			{Role: "user", Content: fmt.Sprintf("Title: %s\nDescription: %s\nSummary:", title, description)},
		},
		Temperature: &temperature,
	}

	response, err := s.sendChatRequest(ctx, request)
	if err != nil {
		summaryRequests.WithLabelValues("error").Inc()
		log.Printf("Summary generation for %q failed: %v", title, err)
		return "", fmt.Errorf("%w: %v", ErrSummaryFailed, err)
	}

	summary := ""
	if len(response.Choices) > 0 {
		summary = strings.TrimSpace(response.Choices[0].Message.Content)
	}
	if summary == "" {
		summaryRequests.WithLabelValues("empty").Inc()
		return "", fmt.Errorf("%w: empty completion", ErrSummaryFailed)
	}

	summaryRequests.WithLabelValues("success").Inc()
	return summary, nil
}

func (s *SummaryService) sendChatRequest(ctx context.Context, request ChatCompletionRequest) (*ChatCompletionResponse, error) {
	jsonData, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" && s.apiKey != "none" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("LLM API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response ChatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &response, nil
}
