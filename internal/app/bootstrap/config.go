// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dalemusser/institutionhub/internal/app/system/limits"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for institutionhub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, user_service_url, etc.
//   - Environment variables: INSTITUTIONHUB_MONGO_URI, INSTITUTIONHUB_USER_SERVICE_URL, etc.
//   - Command-line flags: --mongo_uri, --user_service_url, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "institution_management", Desc: "MongoDB database name"},
	{Name: "mongo_connect_timeout", Default: "10s", Desc: "MongoDB connect and ping timeout"},

	{Name: "user_service_url", Default: "http://localhost:8081/api/v1/users", Desc: "Base URL of the remote user service"},
	{Name: "user_service_timeout", Default: "10s", Desc: "HTTP timeout for user service calls"},

	{Name: "write_rate_limit", Default: limits.DefaultWriteRate, Desc: "Writes allowed per client IP per window (0 disables)"},
	{Name: "write_rate_window", Default: "1m", Desc: "Window for write_rate_limit"},

	{Name: "cors_allowed_origins", Default: "*", Desc: "Comma-separated list of allowed CORS origins"},

	{Name: "timeout_short", Default: "5s", Desc: "Deadline for single-document operations"},
	{Name: "timeout_medium", Default: "10s", Desc: "Deadline for listings and composed reads"},
	{Name: "timeout_long", Default: "30s", Desc: "Deadline for operations that call the user service"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// Precedence is flags > env > files > defaults, as implemented by
// config.LoadWithAppConfig.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "INSTITUTIONHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:            appValues.String("mongo_uri"),
		MongoDatabase:       appValues.String("mongo_database"),
		MongoConnectTimeout: appValues.Duration("mongo_connect_timeout", 10*time.Second),

		UserServiceURL:     strings.TrimRight(appValues.String("user_service_url"), "/"),
		UserServiceTimeout: appValues.Duration("user_service_timeout", 10*time.Second),

		WriteRateLimit:  appValues.Int("write_rate_limit"),
		WriteRateWindow: appValues.Duration("write_rate_window", limits.DefaultWriteWindow),

		CORSAllowedOrigins: splitList(appValues.String("cors_allowed_origins")),

		TimeoutShort:  appValues.Duration("timeout_short", 5*time.Second),
		TimeoutMedium: appValues.Duration("timeout_medium", 10*time.Second),
		TimeoutLong:   appValues.Duration("timeout_long", 30*time.Second),
	}

	return coreCfg, appCfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ValidateConfig rejects configuration that would only fail later, on the
// first request: a malformed Mongo URI or a user service URL that is not an
// absolute http(s) URL.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if strings.TrimSpace(appCfg.MongoDatabase) == "" {
		return fmt.Errorf("mongo_database must not be empty")
	}
	if err := validateServiceURL(appCfg.UserServiceURL); err != nil {
		logger.Error("invalid user service URL", zap.String("url", appCfg.UserServiceURL), zap.Error(err))
		return fmt.Errorf("invalid user_service_url: %w", err)
	}
	if appCfg.UserServiceTimeout <= 0 {
		return fmt.Errorf("user_service_timeout must be positive")
	}
	if appCfg.WriteRateLimit < 0 {
		return fmt.Errorf("write_rate_limit must not be negative")
	}
	if appCfg.WriteRateLimit > 0 && appCfg.WriteRateWindow <= 0 {
		return fmt.Errorf("write_rate_window must be positive when write_rate_limit is set")
	}
	return nil
}

func validateServiceURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
