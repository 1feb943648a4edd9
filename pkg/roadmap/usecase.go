package roadmap

import (
	"context"

	"github.com/google/uuid"

	"github.com/artem13815/roadmap/pkg/llm"
	"github.com/artem13815/roadmap/pkg/logger"
)

type service struct {
	llm      llm.Completer
	log      *logger.Logger
	debugLog bool
}

// Option customizes the generator returned by NewService.
type Option func(*service)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *logger.Logger) Option {
	return func(s *service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithDebugLog enables logging of raw model output and rejected payloads.
func WithDebugLog(enabled bool) Option {
	return func(s *service) { s.debugLog = enabled }
}

// NewService creates the default roadmap generator.
func NewService(model llm.Completer, opts ...Option) UseCase {
	s := &service{llm: model, log: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate asks the model for a roadmap of target. Every call is independent:
// one completion request, no retry, no caching.
func (s *service) Generate(ctx context.Context, target string) (Roadmap, error) {
	log := s.log.With("roadmap_id", uuid.NewString(), "target", target)

	raw, err := s.llm.Complete(ctx, BuildPrompt(target))
	if err != nil {
		log.Error("roadmap completion failed", "error", err)
		return Roadmap{}, &RequestError{Cause: err}
	}
	if s.debugLog {
		log.Info("raw model response", "content", raw)
	}

	content := StripFences(raw)
	rm, err := Parse(content)
	if err != nil {
		switch Kind(err) {
		case KindParse:
			log.Warn("roadmap response is not JSON", "error", err, "content_bytes", len(content))
		default:
			log.Warn("invalid roadmap structure", "error", err)
		}
		if s.debugLog {
			log.Info("rejected roadmap payload", "content", content)
		}
		return Roadmap{}, err
	}

	log.Info("roadmap generated")
	return rm, nil
}
