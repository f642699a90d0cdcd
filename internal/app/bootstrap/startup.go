// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/institutionhub/internal/app/system/metrics"
	"github.com/dalemusser/institutionhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup applies configured handler deadlines and registers collectors.
// It runs after the schema is in place and before BuildHandler.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{
		Short:  appCfg.TimeoutShort,
		Medium: appCfg.TimeoutMedium,
		Long:   appCfg.TimeoutLong,
	})
	metrics.Register()

	cur := timeouts.Current()
	logger.Info("institutionhub ready",
		zap.String("user_service_url", appCfg.UserServiceURL),
		zap.Duration("timeout_short", cur.Short),
		zap.Duration("timeout_medium", cur.Medium),
		zap.Duration("timeout_long", cur.Long),
	)
	return nil
}
