package relay

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/futig/touchdown/internal/config"
	"github.com/futig/touchdown/internal/entity"
	"github.com/futig/touchdown/internal/integration/common"
	"github.com/futig/touchdown/internal/pkg/metrics"
	pkghttp "github.com/futig/touchdown/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Connector posts applications to a Formspree-compatible relay
type Connector struct {
	config    config.RelayConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(cfg config.RelayConnectorConfig, logger *zap.Logger) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.Endpoint, cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Configured is false for an empty or placeholder endpoint
func (c *Connector) Configured() bool {
	return c.config.Configured()
}

// Send issues exactly one POST; there is no retry
func (c *Connector) Send(ctx context.Context, payload *entity.RelayPayload) error {
	ctxzap.Debug(ctx, "sending application to relay",
		zap.String("applicant_name", payload.ApplicantName),
	)

	start := time.Now()
	err := c.connector.DoRequest(ctx, http.MethodPost, "", payload, nil)
	metrics.RelayDuration.Observe(time.Since(start).Seconds())
	metrics.RelayRequests.WithLabelValues(outcome(err)).Inc()

	if err != nil {
		return fmt.Errorf("relay application: %w", err)
	}

	ctxzap.Info(ctx, "relay accepted application")
	return nil
}

func outcome(err error) string {
	var httpErr *pkghttp.HTTPError
	switch {
	case err == nil:
		return metrics.ResultAccepted
	case errors.As(err, &httpErr):
		return metrics.ResultRejected
	default:
		return metrics.ResultTransportFailure
	}
}
