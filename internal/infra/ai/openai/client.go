package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	domain "github.com/jagamangrove/jagamangrove/internal/domain/analisis"
	"github.com/jagamangrove/jagamangrove/internal/infra/ai/prompt"
)

const maxTokens = 1024

type Client struct {
	*openai.Client
	Model string
}

func NewClient(apiKey, model string) *Client {
	return &Client{Client: openai.NewClient(apiKey), Model: model}
}

// AnalyzeLaporan implementasi analisis.Client: kirim foto + teks laporan,
// minta JSON sesuai skema, lalu decode ke Hasil.
func (c *Client) AnalyzeLaporan(ctx context.Context, fotoURL, jenisLaporan, isiLaporan string) (domain.Hasil, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model(),
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.GetSystemPrompt()},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: prompt.GetUserPrompt(fotoURL, jenisLaporan, isiLaporan)},
					{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: fotoURL}},
				},
			},
		},
	}
	c.setTokenLimit(&req)

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return domain.Hasil{}, mapErr(err)
	}
	if len(resp.Choices) == 0 {
		return domain.Hasil{}, fmt.Errorf("jawaban AI kosong")
	}

	var hasil domain.Hasil
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &hasil); err != nil {
		return domain.Hasil{}, fmt.Errorf("decode hasil analisis: %w", err)
	}
	return hasil, nil
}

// Chat implementasi asisten publik /chat
func (c *Client) Chat(ctx context.Context, pertanyaan string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model(),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.GetChatSystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: pertanyaan},
		},
	}
	c.setTokenLimit(&req)

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", mapErr(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("jawaban AI kosong")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) model() string {
	if c.Model != "" {
		return c.Model
	}
	return "gpt-4o-mini"
}

// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
func (c *Client) setTokenLimit(req *openai.ChatCompletionRequest) {
	m := c.model()
	if strings.HasPrefix(m, "o1") || strings.HasPrefix(m, "o3") || strings.HasPrefix(m, "o4") || strings.HasPrefix(m, "gpt-5") {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}
}

func mapErr(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == 429 {
		return domain.ErrQuotaExceeded
	}
	return err
}
