package logger

import (
	"fmt"

	"github.com/silverpath/funnel-api/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process logger. Production and the "json" format get
// the JSON encoder with ISO8601 timestamps; anything else gets the colored
// console encoder.
func NewLogger(cfg *config.LoggingConfig, appCfg *config.AppConfig) (*zap.Logger, error) {
	zapCfg := baseConfig(cfg.Format, appCfg.Environment)
	zapCfg.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Level))
	zapCfg.InitialFields = map[string]interface{}{
		"app":         appCfg.Name,
		"environment": appCfg.Environment,
	}

	log, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}

func baseConfig(format, environment string) zap.Config {
	if format == "json" || environment == "production" {
		c := zap.NewProductionConfig()
		c.EncoderConfig.TimeKey = "timestamp"
		c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		return c
	}

	c := zap.NewDevelopmentConfig()
	c.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return c
}

// parseLevel parses a level name; unknown names mean info
func parseLevel(level string) zapcore.Level {
	if parsed, err := zapcore.ParseLevel(level); err == nil {
		return parsed
	}
	return zapcore.InfoLevel
}

// WithRequest tags log lines with the HTTP request they belong to
func WithRequest(log *zap.Logger, method, path, requestID string) *zap.Logger {
	return log.With(
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", path),
	)
}

// WithCompany tags log lines with the funnel company they concern
func WithCompany(log *zap.Logger, companyID int64) *zap.Logger {
	return log.With(zap.Int64("company_id", companyID))
}
