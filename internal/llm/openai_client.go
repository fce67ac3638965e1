package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cloudnine/sleep-debt-api/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const defaultSystemPrompt = `You are a non-medical sleep debt assistant.

You receive automated sleep debt calculations for a single user: cumulative debt over a period, a data quality assessment, the imputation strategy that was applied to untracked days, and rule-based recommendations. You must base your conclusions only on the provided data.

Your goals:
- Describe the user's sleep debt situation in clear, neutral language.
- Explain what the debt severity and efficiency numbers mean in practice.
- Compare the recent week to the longer history.
- When data quality is low, say clearly that the numbers are estimates and explain how the imputation strategy filled the gaps.
- Give practical, behavioral suggestions to pay the debt down and to improve tracking.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Focus only on behavior and routines (bedtime regularity, recovery nights, tracking habits).
- If data is limited or mixed, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the user's sleep debt, comparing the recent week to the longer history.",
  "observations": [
    "3-6 bullet points about debt size, severity, efficiency, missing days, and data quality.",
    "At least one item comparing the recent window to the longer history.",
    "If data quality is below a B grade, one item about how that limits confidence in the numbers."
  ],
  "guidance": [
    "3-5 concrete, non-medical suggestions tailored to these numbers.",
    "Include at least one suggestion about recovering the debt if it is moderate or worse.",
    "Include at least one suggestion about tracking habits if completeness or recency is low."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's automated sleep debt calculations.

- "goal" is why the user tracks sleep (motivation, health, accuracy, or balanced).
- "history" and "recent" each contain:
  - "debt": cumulative debt over the window, with per-day debt, missing days, efficiency, and a severity bucket,
  - "data_quality": completeness, consistency, recency, an overall score, and a letter grade,
  - "strategy": the imputation strategy applied to untracked days,
  - "recommendations": rule-based advisory items already shown to the user,
  - "is_reliable" and "confidence_level": how much to trust the numbers.

Use:
- "history" to understand the long-term baseline (about 30 days),
- "recent" to see the current trajectory (about 7 days).

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM is the interface for generating sleep debt insights using an LLM.
type InsightsLLM interface {
	// GenerateInsights takes a context object and returns LLM-generated insights.
	GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// An empty systemPrompt uses the built-in default; callers may pass a
// prompt fetched from Langfuse prompt management instead. Returns nil
// if apiKey is empty.
func NewOpenAIClient(apiKey, model, systemPrompt string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}
	if systemPrompt == "" {
		systemPrompt = defaultSystemPrompt
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// GenerateInsights calls OpenAI to generate sleep debt insights.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	// Serialize context to JSON
	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	// Call OpenAI
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	// Parse the JSON response
	var output domain.LLMInsightsOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
