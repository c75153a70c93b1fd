package builder

import (
	"github.com/futig/touchdown/internal/config"
	"github.com/futig/touchdown/internal/form"
	"github.com/futig/touchdown/internal/integration/relay"
	"go.uber.org/zap"
)

// setupRelay picks the relay connector for the configured environment
func setupRelay(cfg *config.Config, logger *zap.Logger) form.Relay {
	if cfg.EnableMocks {
		logger.Info("Using mock relay connector")
		return relay.NewMockConnector(logger)
	}

	conn := relay.NewConnector(cfg.RelayConnectorCfg, logger)
	if !conn.Configured() {
		logger.Warn("Relay endpoint is not configured, applications will be accepted without sending",
			zap.String("endpoint", cfg.RelayConnectorCfg.Endpoint),
		)
	} else {
		logger.Info("Using relay connector",
			zap.Duration("request_timeout", cfg.RelayConnectorCfg.RequestTimeout),
		)
	}
	return conn
}
