package agent

import (
	"context"
	"errors"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ErrMissingAPIKey signals that no OpenAI credential is configured in the
// process environment. Callers treat this as a service-misconfiguration
// condition, distinct from upstream call failures.
var ErrMissingAPIKey = errors.New("OpenAI API key not configured")

// Config holds minimal OpenAI configuration.
// Values can be left empty to fall back to environment variables:
//
//	OPENAI_API_KEY, OPENAI_BASE_URL, OPENAI_MODEL
type Config struct {
	Key     string
	BaseURL string // optional; for OpenAI-compatible endpoints
	Model   string
	Timeout time.Duration
}

// LoadEnv fills empty fields from environment variables. The key lookup is
// repeated on every agent construction so rotated credentials take effect
// without a process restart.
func (c *Config) LoadEnv() {
	if c.Key == "" {
		c.Key = os.Getenv("OPENAI_API_KEY")
	}
	if c.BaseURL == "" {
		c.BaseURL = os.Getenv("OPENAI_BASE_URL")
	}
	if c.Model == "" {
		c.Model = os.Getenv("OPENAI_MODEL")
	}
}

// Validate basic required fields.
func (c *Config) Validate() error {
	if c.Key == "" {
		return ErrMissingAPIKey
	}
	if c.Model == "" {
		return errors.New("missing model name")
	}
	return nil
}

// chatClient is the slice of the OpenAI client the agent needs.
// Narrow on purpose so tests can inject a fake.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Agent is a lightweight wrapper around the OpenAI client to simplify
// single-turn chat completion calls.
type Agent struct {
	cfg    Config
	client chatClient
}

// GetConfig returns a copy of the agent configuration (read-only for caller).
func (a *Agent) GetConfig() Config { return a.cfg }

// New creates a new Agent using the provided config (with env fallbacks).
func New(cfg Config) (*Agent, error) {
	cfg.LoadEnv()
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	oaiCfg := openai.DefaultConfig(cfg.Key)
	if cfg.BaseURL != "" {
		oaiCfg.BaseURL = cfg.BaseURL
	}
	client := openai.NewClientWithConfig(oaiCfg)
	return &Agent{cfg: cfg, client: client}, nil
}

// Option is a functional option to modify agent configuration before initialization.
type Option func(*Config)

// WithKey overrides the API key.
func WithKey(v string) Option { return func(c *Config) { c.Key = v } }

// WithBaseURL overrides the API endpoint.
func WithBaseURL(v string) Option { return func(c *Config) { c.BaseURL = v } }

// WithModel sets the model name.
func WithModel(v string) Option { return func(c *Config) { c.Model = v } }

// WithTimeout sets the per-call request timeout.
func WithTimeout(d time.Duration) Option { return func(c *Config) { c.Timeout = d } }

// NewAuto creates an Agent pulling defaults from environment variables first,
// then applying options. Usage: a, err := agent.NewAuto(agent.WithModel("gpt-4o-mini"))
func NewAuto(opts ...Option) (*Agent, error) {
	cfg := Config{}
	cfg.LoadEnv()
	for _, o := range opts {
		o(&cfg)
	}
	return New(cfg)
}

// ChatOption allows customizing a single Chat call.
type ChatOption func(*chatParams)

type chatParams struct {
	system      string
	temperature float32
	maxTokens   int
}

// WithSystem sets a system prompt.
func WithSystem(system string) ChatOption { return func(p *chatParams) { p.system = system } }

// WithTemperature sets sampling temperature (0-2, typical 0-1).
func WithTemperature(t float32) ChatOption { return func(p *chatParams) { p.temperature = t } }

// WithMaxTokens limits output tokens (0 lets API decide / defaults).
func WithMaxTokens(n int) ChatOption { return func(p *chatParams) { p.maxTokens = n } }

// Chat sends a single-turn user prompt and returns the assistant's reply text.
func (a *Agent) Chat(ctx context.Context, userPrompt string, opts ...ChatOption) (string, error) {
	if a == nil || a.client == nil {
		return "", errors.New("agent not initialized")
	}
	p := chatParams{temperature: 0.7}
	for _, o := range opts {
		o(&p)
	}
	msgs := make([]openai.ChatCompletionMessage, 0, 2)
	if p.system != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: p.system})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: userPrompt})

	req := openai.ChatCompletionRequest{
		Model:       a.cfg.Model,
		Messages:    msgs,
		Temperature: p.temperature,
	}
	if p.maxTokens > 0 {
		req.MaxTokens = p.maxTokens
	}
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()
	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty response choices")
	}
	return resp.Choices[0].Message.Content, nil
}
