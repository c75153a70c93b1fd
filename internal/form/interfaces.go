package form

import (
	"context"

	"github.com/futig/touchdown/internal/entity"
)

// Relay delivers a submitted application to the form owner
type Relay interface {
	// Configured is false while the relay endpoint is still the placeholder
	Configured() bool
	Send(ctx context.Context, payload *entity.RelayPayload) error
}
