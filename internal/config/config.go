package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppEnv   string
	LogLevel slog.Level

	StationID      string
	RecordInterval time.Duration
	// RecordCycles stops the recording loop after that many readings.
	// Zero runs until the process is signalled.
	RecordCycles int

	// SensorSeed makes the simulated readings reproducible when HasSensorSeed is set.
	SensorSeed    uint64
	HasSensorSeed bool
}

func LoadFromEnv() (Config, error) {
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	switch appEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", appEnv)
	}

	logLevelStr := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	level, err := parseLogLevel(logLevelStr)
	if err != nil {
		return Config{}, err
	}

	stationID := strings.TrimSpace(os.Getenv("STATION_ID"))
	if stationID == "" {
		stationID = "home"
	}

	recordIntervalStr := strings.TrimSpace(os.Getenv("RECORD_INTERVAL"))
	if recordIntervalStr == "" {
		recordIntervalStr = "1s"
	}
	recordInterval, err := time.ParseDuration(recordIntervalStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid RECORD_INTERVAL %q: %w", recordIntervalStr, err)
	}
	if recordInterval <= 0 {
		return Config{}, fmt.Errorf("RECORD_INTERVAL must be positive, got %v", recordInterval)
	}

	recordCyclesStr := strings.TrimSpace(os.Getenv("RECORD_CYCLES"))
	if recordCyclesStr == "" {
		recordCyclesStr = "0"
	}
	recordCycles, err := strconv.Atoi(recordCyclesStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid RECORD_CYCLES %q: %w", recordCyclesStr, err)
	}
	if recordCycles < 0 {
		return Config{}, fmt.Errorf("RECORD_CYCLES must not be negative, got %d", recordCycles)
	}

	var (
		sensorSeed    uint64
		hasSensorSeed bool
	)
	if sensorSeedStr := strings.TrimSpace(os.Getenv("SENSOR_SEED")); sensorSeedStr != "" {
		sensorSeed, err = strconv.ParseUint(sensorSeedStr, 0, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SENSOR_SEED %q: %w", sensorSeedStr, err)
		}
		hasSensorSeed = true
	}

	return Config{
		AppEnv:         appEnv,
		LogLevel:       level,
		StationID:      stationID,
		RecordInterval: recordInterval,
		RecordCycles:   recordCycles,
		SensorSeed:     sensorSeed,
		HasSensorSeed:  hasSensorSeed,
	}, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
