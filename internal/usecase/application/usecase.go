package application

import (
	"context"
	"fmt"

	"github.com/futig/touchdown/internal/entity"
	"github.com/futig/touchdown/internal/form"
	"github.com/futig/touchdown/internal/pkg/metrics"
	"github.com/futig/touchdown/internal/pkg/validator"
	"github.com/futig/touchdown/internal/repository"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// ApplicationUsecase hosts one form per visitor
type ApplicationUsecase struct {
	repo      repository.ApplicationRepository
	validator *validator.Validator
	relay     form.Relay
	logger    *zap.Logger
}

// NewUsecase creates a new application use case
func NewUsecase(
	repo repository.ApplicationRepository,
	validator *validator.Validator,
	relay form.Relay,
	logger *zap.Logger,
) *ApplicationUsecase {
	return &ApplicationUsecase{
		repo:      repo,
		validator: validator,
		relay:     relay,
		logger:    logger,
	}
}

// Start opens a new draft application
func (uc *ApplicationUsecase) Start(ctx context.Context) (*entity.ApplicationState, error) {
	id := uuid.New().String()
	f := form.New(uc.relay, uc.validator)

	if err := uc.repo.Create(ctx, id, f); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	metrics.ApplicationsStarted.Inc()
	ctxzap.Info(ctx, "application started",
		zap.String("application_id", id),
		zap.Int("active_applications", uc.repo.Count()),
	)

	return toState(id, f.Snapshot()), nil
}

func (uc *ApplicationUsecase) Get(ctx context.Context, id string) (*entity.ApplicationState, error) {
	f, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toState(id, f.Snapshot()), nil
}

func (uc *ApplicationUsecase) UpdateField(ctx context.Context, id string, field entity.Field, value string) (*entity.ApplicationState, error) {
	return uc.mutate(ctx, id, func(f *form.ApplicationForm) error {
		return f.UpdateField(field, value)
	})
}

func (uc *ApplicationUsecase) SelectSingle(ctx context.Context, id string, field entity.Field, option string) (*entity.ApplicationState, error) {
	return uc.mutate(ctx, id, func(f *form.ApplicationForm) error {
		return f.SelectSingle(field, option)
	})
}

func (uc *ApplicationUsecase) ToggleLoveLanguage(ctx context.Context, id string, option string) (*entity.ApplicationState, error) {
	return uc.mutate(ctx, id, func(f *form.ApplicationForm) error {
		return f.ToggleLoveLanguage(option)
	})
}

// Submit relays the application; a relay failure is reported through the state, not the error
func (uc *ApplicationUsecase) Submit(ctx context.Context, id string) (*entity.ApplicationState, error) {
	f, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := f.Submit(ctx); err != nil {
		return nil, err
	}

	state := f.Snapshot()
	switch {
	case state.Submitted():
		metrics.ApplicationsSubmitted.WithLabelValues(uc.submitMode()).Inc()
	case state.Error != "":
		ctxzap.Warn(ctx, "application submit failed, back to draft")
	}
	return toState(id, state), nil
}

func (uc *ApplicationUsecase) submitMode() string {
	if uc.relay != nil && uc.relay.Configured() {
		return metrics.ModeRelay
	}
	return metrics.ModeDemo
}

// Questions returns the questionnaire definition
func (uc *ApplicationUsecase) Questions(ctx context.Context) *entity.QuestionsResponse {
	return &entity.QuestionsResponse{
		Questions: entity.Questions(),
		Extra:     entity.ExtraQuestion,
	}
}

func (uc *ApplicationUsecase) mutate(ctx context.Context, id string, apply func(*form.ApplicationForm) error) (*entity.ApplicationState, error) {
	f, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := apply(f); err != nil {
		return nil, err
	}

	return toState(id, f.Snapshot()), nil
}
