package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const systemPrompt = `You are a financial news editor. Rewrite the given headline and summary into a short original news article.

Rules:
1. Neutral, factual tone. No urgency words, no ALL CAPS, no dramatic metaphors
2. Keep all facts: numbers, names, dates, percentages
3. The title must differ in wording from the original headline
4. The body is 2-3 short paragraphs expanding on the summary
5. Do not invent facts that are not in the input

Output as JSON only, no other text:
{
  "title": "rewritten title",
  "summary": "one-sentence summary",
  "body": "article body",
  "category": "one of: Stocks, Crypto, Economy, Earnings, Policy & Regulation, Company News, Others",
  "sentiment_score": 1-10 how emotional was the original (10 = very emotional)
}`

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client:    &client,
		model:     openai.ChatModelGPT4oMini,
		modelName: "gpt-4o-mini",
	}
}

func (c *OpenAIClient) Rewrite(input RewriteInput) (*RewriteResult, error) {
	userPrompt := fmt.Sprintf("Headline: %s\nSummary: %s", input.Headline, input.Summary)

	resp, err := c.client.Chat.Completions.New(context.Background(), openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from openai")
	}

	content := cleanJSONResponse(resp.Choices[0].Message.Content)

	var parsed struct {
		Title          string `json:"title"`
		Summary        string `json:"summary"`
		Body           string `json:"body"`
		Category       string `json:"category"`
		SentimentScore int    `json:"sentiment_score"`
	}

	err = json.Unmarshal([]byte(content), &parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}

	return &RewriteResult{
		Title:          parsed.Title,
		Summary:        parsed.Summary,
		Body:           parsed.Body,
		Category:       parsed.Category,
		SentimentScore: parsed.SentimentScore,
		ModelUsed:      c.modelName,
	}, nil
}
