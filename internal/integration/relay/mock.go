package relay

import (
	"context"

	"github.com/futig/touchdown/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector accepts every application without network access
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Configured() bool {
	return true
}

func (m *MockConnector) Send(ctx context.Context, payload *entity.RelayPayload) error {
	ctxzap.Info(ctx, "[MOCK] relaying application",
		zap.String("applicant_name", payload.ApplicantName),
		zap.String("summary", payload.Summary),
	)
	return nil
}
