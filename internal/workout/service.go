package workout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gymello/gymello/internal/errors"
	"github.com/gymello/gymello/internal/profile"
	"github.com/gymello/gymello/internal/store"
)

// ErrUnknownSessionKey is returned when a plan edit names a session key that
// does not exist in the stored plan.
var ErrUnknownSessionKey = errors.NewSentinel("unknown session key")

// Service persists and regenerates workout plans.
type Service struct {
	store     *store.Store
	generator *Generator
	logger    *slog.Logger
}

// NewService wires a Service from its dependencies.
func NewService(st *store.Store, generator *Generator, logger *slog.Logger) *Service {
	return &Service{store: st, generator: generator, logger: logger}
}

// Plan returns the stored weekly plan. Propagates store.ErrNotFound when the
// user has no plan yet.
func (s *Service) Plan(ctx context.Context, username string) (Plan, error) {
	var plan Plan
	if err := s.store.Get(ctx, username, store.KindPlan, &plan); err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	return plan, nil
}

// SavePlan replaces the stored plan wholesale. Used for manual plan edits
// from the client.
func (s *Service) SavePlan(ctx context.Context, username string, plan Plan) error {
	if err := s.store.Set(ctx, username, store.KindPlan, plan); err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	return nil
}

// Generate builds a fresh plan for the profile and stores it, replacing any
// previous plan.
func (s *Service) Generate(ctx context.Context, p profile.Profile) (Plan, error) {
	plan, err := s.generator.Plan(p)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, p.Username, store.KindPlan, plan); err != nil {
		return nil, fmt.Errorf("save generated plan: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "generated workout plan",
		slog.String("username", p.Username),
		slog.Int("sessions", len(plan)))
	return plan, nil
}

// RegenerateDay rerolls the exercises of one session, keeping its day and
// title, and stores the updated plan.
func (s *Service) RegenerateDay(ctx context.Context, p profile.Profile, sessionKey string) (Plan, error) {
	plan, err := s.Plan(ctx, p.Username)
	if err != nil {
		return nil, err
	}
	session, ok := plan[sessionKey]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSessionKey, sessionKey)
	}

	plan[sessionKey] = s.generator.RegenerateSession(session.Title, session.Day, p)
	if err := s.store.Set(ctx, p.Username, store.KindPlan, plan); err != nil {
		return nil, fmt.Errorf("save regenerated plan: %w", err)
	}
	return plan, nil
}
