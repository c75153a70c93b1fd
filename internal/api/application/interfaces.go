package application

import (
	"context"

	"github.com/futig/touchdown/internal/entity"
)

type ApplicationUsecase interface {
	Start(ctx context.Context) (*entity.ApplicationState, error)
	Get(ctx context.Context, id string) (*entity.ApplicationState, error)
	UpdateField(ctx context.Context, id string, field entity.Field, value string) (*entity.ApplicationState, error)
	SelectSingle(ctx context.Context, id string, field entity.Field, option string) (*entity.ApplicationState, error)
	ToggleLoveLanguage(ctx context.Context, id string, option string) (*entity.ApplicationState, error)
	Submit(ctx context.Context, id string) (*entity.ApplicationState, error)
	Questions(ctx context.Context) *entity.QuestionsResponse
}
