package bootstrap

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/config"
)

// InitLogger initializes the zap logger with colored console output.
func InitLogger() (*zap.Logger, *zap.SugaredLogger, error) {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderConfig)

	core := zapcore.NewCore(
		consoleEncoder,
		zapcore.AddSync(os.Stdout),
		zapcore.DebugLevel,
	)

	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	return logger, logger.Sugar(), nil
}

// InitConfig loads and validates the application configuration. Missing
// required keys are all reported in a single banner so the operator fixes
// them in one pass instead of replaying the boot once per key.
func InitConfig(sugar *zap.SugaredLogger) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		var missing *config.MissingKeysError
		if errors.As(err, &missing) {
			fmt.Fprintf(os.Stderr, "\n========================================\n")
			fmt.Fprintf(os.Stderr, "FATAL: Incomplete Configuration\n")
			fmt.Fprintf(os.Stderr, "========================================\n")
			for _, key := range missing.Keys {
				fmt.Fprintf(os.Stderr, "  missing: %s\n", key)
			}
			fmt.Fprintf(os.Stderr, "Set the variables above and restart.\n")
			fmt.Fprintf(os.Stderr, "========================================\n\n")
		} else {
			fmt.Fprintf(os.Stderr, "FATAL: Failed to load config: %v\n", err)
		}
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	sugar.Infow("Config loaded",
		"environment", string(cfg.Environment),
		"listen_host", cfg.Server.Host,
		"listen_port", cfg.Server.Port,
		"database_host", cfg.Database.Host,
		"database_name", cfg.Database.Name,
		"static_dir", cfg.Static.Dir)

	if !cfg.IsDevelopment() && cfg.CORS.AllowedOrigin == "" {
		sugar.Warn("CORS_ORIGIN is not set in production; cross-origin requests will be rejected")
	}

	return cfg, nil
}
