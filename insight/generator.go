package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	openaiBaseURL = "https://api.openai.com/v1/chat/completions"

	// DefaultModel is the chat model used for summaries.
	DefaultModel = "gpt-4o-mini"

	// DefaultMaxChars bounds the summarizer's response length.
	DefaultMaxChars = 1500

	requestTimeout = 60 * time.Second
)

// persona is the fixed system instruction for the summarizer.
const persona = "You are a helpful assistant that analyzes coding " +
	"activity data and provides personalized insights and suggestions " +
	"for improvement."

// formatContract bounds the summarizer's output. Together with the
// built context it is a hard contract: short plain text, emoji
// permitted, exactly one reflective question at the end.
const formatContract = `Write a short, encouraging plain-text summary of the activity below (at most %d characters). Emojis are allowed. Do not use markdown. End with exactly one reflective question and nothing after it.`

// Generator produces a textual summary from a built context.
type Generator interface {
	Generate(ctx context.Context, activityContext string) (string, error)
}

// Prompt returns the user instruction that precedes the activity
// context in the summarizer request.
func Prompt(maxChars int) string {
	return fmt.Sprintf(formatContract, maxChars)
}

// Validate rejects summarizer output the core must not deliver: empty
// text or text exceeding the configured bound.
func Validate(text string, maxChars int) error {
	trimmed := strings.TrimSpace(text)

	if trimmed == "" {
		return errEmptyResponse
	}

	if len([]rune(trimmed)) > maxChars {
		return errOverlongResponse.Fmt(len([]rune(trimmed)), maxChars)
	}

	return nil
}

// OpenAIClient generates summaries through the OpenAI chat completions
// API.
type OpenAIClient struct {
	apiKey   string
	baseURL  string
	model    string
	maxChars int
	client   *http.Client
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type chatError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// NewOpenAIClient creates a new OpenAI chat client.
func NewOpenAIClient(apiKey, model string, maxChars int) *OpenAIClient {
	if model == "" {
		model = DefaultModel
	}

	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}

	return &OpenAIClient{
		apiKey:   apiKey,
		baseURL:  openaiBaseURL,
		model:    model,
		maxChars: maxChars,
		client:   &http.Client{Timeout: requestTimeout},
	}
}

func (c *OpenAIClient) Generate(
	ctx context.Context,
	activityContext string,
) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: persona},
			{
				Role:    "user",
				Content: Prompt(c.maxChars) + "\n\n" + activityContext,
			},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL,
		bytes.NewReader(payload),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", ErrGeneration.Wrap(err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", ErrGeneration.Wrap(err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr chatError

		if err := json.Unmarshal(body, &apiErr); err == nil &&
			apiErr.Error.Message != "" {
			return "", ErrGeneration.Wrap(
				fmt.Errorf(
					"%s (%s)",
					apiErr.Error.Message,
					apiErr.Error.Type,
				),
			)
		}

		return "", ErrGeneration.Wrap(
			fmt.Errorf("unexpected status %d", resp.StatusCode),
		)
	}

	var chatResp chatResponse

	err = json.Unmarshal(body, &chatResp)
	if err != nil {
		return "", ErrGeneration.Wrap(err)
	}

	if len(chatResp.Choices) == 0 {
		return "", errEmptyResponse
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}
