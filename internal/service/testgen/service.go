package testgen

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/parinyadagon/diagtest/internal/config"
	"github.com/parinyadagon/diagtest/internal/service/agent"
	"github.com/parinyadagon/diagtest/internal/service/prompt"
)

// Chatter is the slice of the agent the pipeline needs.
type Chatter interface {
	Chat(ctx context.Context, userPrompt string, opts ...agent.ChatOption) (string, error)
}

// ChatterFactory builds a Chatter for a single generation call. The default
// factory constructs a fresh agent per call so the API key is re-read from
// the environment every time.
type ChatterFactory func() (Chatter, error)

// Service runs the generation pipeline:
// Validate -> BuildPrompt -> Invoke -> Clean -> Parse -> Assemble.
// Strictly linear; any stage failure short-circuits, nothing is retried.
type Service struct {
	cfg        *config.AppConfig
	newChatter ChatterFactory
}

// ServiceOption customizes Service construction.
type ServiceOption func(*Service)

// WithChatterFactory overrides how the completion client is built per call.
// Used by tests to inject a stub.
func WithChatterFactory(f ChatterFactory) ServiceOption {
	return func(s *Service) { s.newChatter = f }
}

// NewService creates a Service backed by the OpenAI agent.
func NewService(cfg *config.AppConfig, opts ...ServiceOption) *Service {
	s := &Service{
		cfg: cfg,
		newChatter: func() (Chatter, error) {
			return agent.NewAuto(
				agent.WithModel(cfg.OpenAIModel),
				agent.WithTimeout(cfg.OpenAITimeout),
			)
		},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Generate produces a diagnostic test for the request or fails with one of
// the typed pipeline errors.
func (s *Service) Generate(ctx context.Context, req TestRequest) (*TestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	chatter, err := s.newChatter()
	if err != nil {
		return nil, &ErrConfiguration{Err: err}
	}

	userPrompt := prompt.BuildTestPrompt(prompt.TestSpec{
		CourseName:       req.CourseName,
		Subject:          req.Subject,
		TargetGradeLevel: req.TargetGradeLevel,
		NumberOfMCQ:      req.NumberOfMCQ,
	})

	raw, err := chatter.Chat(ctx, userPrompt,
		agent.WithSystem(prompt.System),
		agent.WithTemperature(float32(s.cfg.OpenAITemperature)),
		agent.WithMaxTokens(s.cfg.OpenAIMaxTokens),
	)
	if err != nil {
		return nil, &ErrUpstream{Err: err}
	}

	questions, err := ParseQuestions(StripFences(raw))
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("course", req.CourseName).
		Int("requested", req.NumberOfMCQ).
		Int("generated", len(questions)).
		Msg("diagnostic test generated")

	return &TestResponse{
		CourseName:       req.CourseName,
		Subject:          req.Subject,
		TargetGradeLevel: req.TargetGradeLevel,
		// The count asked for, not len(questions). The model may deliver a
		// different number; the requested count is echoed regardless.
		TotalQuestions: req.NumberOfMCQ,
		Questions:      questions,
	}, nil
}
