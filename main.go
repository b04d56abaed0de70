package main

import (
	"os"

	"github.com/caarlos0/env"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/scheerer/lifx-hue-report/internal/logging"
	"github.com/scheerer/lifx-hue-report/internal/report"
)

var logger = logging.New("main")

type ReportConfig struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
}

const fallbackLevel = zapcore.WarnLevel

// loadConfig never fails: a bad setting only affects diagnostics, so it is
// logged and replaced by the fallback level.
func loadConfig() (ReportConfig, zapcore.Level) {
	config := ReportConfig{}
	if err := env.Parse(&config); err != nil {
		logger.With(zap.Error(err)).Warn("Failed to parse environment variables, using defaults")
		return ReportConfig{LogLevel: fallbackLevel.String()}, fallbackLevel
	}
	level, err := zapcore.ParseLevel(config.LogLevel)
	if err != nil {
		logger.With(zap.Error(err), zap.String("LOG_LEVEL", config.LogLevel)).
			Warn("Unknown LOG_LEVEL, using warn")
		return config, fallbackLevel
	}
	return config, level
}

func main() {
	defer logger.Sync()

	config, level := loadConfig()
	logging.GetLeveler().SetAll(level)

	logger.With(zap.Any("config", config)).Debug("Writing hue factor report")

	if err := report.Run(os.Stdout); err != nil {
		logger.With(zap.Error(err)).Fatal("Failed to write report")
	}
}
