// Package llm implements the model-invocation boundary on the OpenAI
// chat completions API with JSON-schema constrained output.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/pkordes/holiday-planner/backend/internal/domain"
)

// Options configures the OpenAI client.
type Options struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint; empty uses the SDK default.
	BaseURL string
	Timeout time.Duration
	// MaxRetries is passed to the SDK. The planner does not retry on its
	// own, so the default of zero means a failed call fails the request.
	MaxRetries int
}

// OpenAIGenerator calls the chat completions endpoint with a json_schema
// response_format and returns the message content as raw JSON.
type OpenAIGenerator struct {
	client     openai.Client
	model      string
	configured bool
}

// NewOpenAIGenerator builds the client once; the generator is safe for
// concurrent use and is shared by all requests.
func NewOpenAIGenerator(opts Options) *OpenAIGenerator {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(opts.MaxRetries),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.Timeout > 0 {
		reqOpts = append(reqOpts, option.WithRequestTimeout(opts.Timeout))
	}

	return &OpenAIGenerator{
		client:     openai.NewClient(reqOpts...),
		model:      opts.Model,
		configured: opts.APIKey != "",
	}
}

// Generate sends one completion request. Provider auth failures wrap
// domain.ErrAIConfiguration. Every other failure, including a refusal or an
// empty or truncated answer, is a *domain.GenerationError.
//
// The schema is sent without strict mode, so the provider treats it as a
// guide only. Conformance is enforced by the caller (service.ParseDayPlan).
func (g *OpenAIGenerator) Generate(ctx context.Context, p domain.GenerationParams) ([]byte, error) {
	if !g.configured {
		return nil, fmt.Errorf("llm.OpenAIGenerator.Generate: %w: API key is not set", domain.ErrAIConfiguration)
	}

	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(p.SystemPrompt),
			openai.UserMessage(p.UserPrompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   p.SchemaName,
					Schema: p.Schema,
				},
			},
		},
		Temperature: openai.Float(p.Temperature),
		MaxTokens:   openai.Int(int64(p.MaxTokens)),
	})
	if err != nil {
		return nil, fmt.Errorf("llm.OpenAIGenerator.Generate: %w", classify(err))
	}

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("llm.OpenAIGenerator.Generate: %w", &domain.GenerationError{Reason: "no result from model"})
	}
	choice := completion.Choices[0]
	switch {
	case choice.Message.Refusal != "":
		return nil, fmt.Errorf("llm.OpenAIGenerator.Generate: %w", &domain.GenerationError{
			Reason: "model refused the request",
			Err:    errors.New(choice.Message.Refusal),
		})
	case choice.FinishReason == "length":
		return nil, fmt.Errorf("llm.OpenAIGenerator.Generate: %w", &domain.GenerationError{
			Reason: "model output was truncated",
			Err:    fmt.Errorf("stopped at %d tokens", p.MaxTokens),
		})
	case choice.Message.Content == "":
		return nil, fmt.Errorf("llm.OpenAIGenerator.Generate: %w", &domain.GenerationError{Reason: "no result from model"})
	}
	return []byte(choice.Message.Content), nil
}

// classify tags a client error with the matching domain sentinel while
// keeping the SDK error in the chain.
func classify(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusUnauthorized ||
			apiErr.StatusCode == http.StatusForbidden ||
			apiErr.Code == "invalid_api_key" {
			return fmt.Errorf("%w: %w", domain.ErrAIConfiguration, err)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &domain.GenerationError{Reason: "model request timed out", Err: err}
	}
	return &domain.GenerationError{Reason: "model request failed", Err: err}
}
