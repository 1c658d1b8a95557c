package llm

type RewriteInput struct {
	Headline string
	Summary  string
}

type RewriteResult struct {
	Title          string
	Summary        string
	Body           string
	Category       string
	SentimentScore int
	ModelUsed      string
}

type LLMClient interface {
	Rewrite(input RewriteInput) (*RewriteResult, error)
}
