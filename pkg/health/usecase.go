package health

import (
	"context"
	"fmt"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// CheckError reports which checker failed.
type CheckError struct {
	Checker string
	Err     error
}

func (e *CheckError) Error() string { return fmt.Sprintf("%s: %v", e.Checker, e.Err) }

func (e *CheckError) Unwrap() error { return e.Err }

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Ready(ctx context.Context) error
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers.
func NewService(checkers ...Checker) ReadinessUseCase {
	return &service{checkers: checkers}
}

func (s *service) Ready(ctx context.Context) error {
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			return &CheckError{Checker: ch.Name(), Err: err}
		}
	}
	return nil
}
