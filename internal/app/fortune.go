package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/randomtoy/namefortune-go/internal/domain"
	"github.com/randomtoy/namefortune-go/internal/ports"
)

// Sampling parameters for live generation.
const (
	Temperature = 0.7
	MaxTokens   = 300
)

// FortuneService validates names and produces fortunes, either from the
// phrasebook's canned template (mock mode) or from the generator.
type FortuneService struct {
	generator  ports.Generator
	phrasebook domain.Phrasebook
	mock       bool
	clock      domain.Clock
}

func NewFortuneService(gen ports.Generator, pb domain.Phrasebook, mock bool, clock domain.Clock) *FortuneService {
	return &FortuneService{
		generator:  gen,
		phrasebook: pb,
		mock:       mock,
		clock:      clock,
	}
}

// Phrasebook returns the language the service writes in.
func (s *FortuneService) Phrasebook() domain.Phrasebook {
	return s.phrasebook
}

// Mocked reports whether fortunes come from the canned template.
func (s *FortuneService) Mocked() bool {
	return s.mock
}

// Tell validates rawName and returns its fortune.
func (s *FortuneService) Tell(ctx context.Context, rawName string) (domain.Fortune, error) {
	name, err := domain.ParseName(rawName)
	if err != nil {
		return domain.Fortune{}, err
	}

	if s.mock {
		return domain.Fortune{
			Name:      name,
			Text:      s.phrasebook.MockText(name),
			Mocked:    true,
			CreatedAt: s.clock.Now(),
		}, nil
	}

	text, err := s.generator.Generate(ctx, ports.ChatInput{
		System:      s.phrasebook.SystemInstruction(),
		User:        s.phrasebook.UserInstruction(name),
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
	})
	if err != nil {
		if !errors.Is(err, domain.ErrUpstreamLLM) && !errors.Is(err, domain.ErrGenerationFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrGenerationFailed, err)
		}
		return domain.Fortune{}, fmt.Errorf("generate: %w", err)
	}

	return domain.Fortune{
		Name:      name,
		Text:      s.phrasebook.Finalize(text),
		Mocked:    false,
		CreatedAt: s.clock.Now(),
	}, nil
}
