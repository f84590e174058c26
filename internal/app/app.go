package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cloudpico-weatherstation/internal/config"
	"cloudpico-weatherstation/internal/sensor"
	"cloudpico-weatherstation/internal/station"
)

// Recorder is the part of a station driven by the recording loop.
type Recorder interface {
	RecordReading()
	AverageTemperature() (float64, error)
	AveragePressure() (float64, error)
	Len() int
}

func Run(ctx context.Context, cfg config.Config) error {
	slog.Info("initializing weather station",
		"station_id", cfg.StationID,
		"record_interval", cfg.RecordInterval,
		"record_cycles", cfg.RecordCycles,
		"window", station.Capacity,
	)

	var s *sensor.Sensor
	if cfg.HasSensorSeed {
		s = sensor.NewSeeded(cfg.SensorSeed)
		slog.Info("sensor seeded", "seed", cfg.SensorSeed)
	} else {
		s = sensor.New(nil)
	}

	return record(ctx, cfg, station.New(s))
}

// record takes one reading per tick until ctx is done or cfg.RecordCycles
// readings have been taken.
func record(ctx context.Context, cfg config.Config, st Recorder) error {
	ticker := time.NewTicker(cfg.RecordInterval)
	defer ticker.Stop()

	sequence := 0
	for {
		select {
		case <-ctx.Done():
			logSummary(cfg, st, sequence)
			return ctx.Err()
		case <-ticker.C:
			st.RecordReading()
			sequence++

			if err := logAverages(cfg, st, sequence); err != nil {
				return err
			}

			if cfg.RecordCycles > 0 && sequence >= cfg.RecordCycles {
				logSummary(cfg, st, sequence)
				return nil
			}
		}
	}
}

func logAverages(cfg config.Config, st Recorder, sequence int) error {
	temp, err := st.AverageTemperature()
	if err != nil {
		return err
	}
	press, err := st.AveragePressure()
	if err != nil {
		return err
	}

	slog.Info("reading recorded",
		"station_id", cfg.StationID,
		"sequence", sequence,
		"window", st.Len(),
		"avg_temperature_c", temp,
		"avg_pressure_hpa", press,
	)
	return nil
}

func logSummary(cfg config.Config, st Recorder, sequence int) {
	temp, errT := st.AverageTemperature()
	press, errP := st.AveragePressure()
	if errors.Is(errT, station.ErrNoReadings) || errors.Is(errP, station.ErrNoReadings) {
		slog.Info("weather station stopped", "station_id", cfg.StationID, "readings", sequence)
		return
	}

	slog.Info("weather station stopped",
		"station_id", cfg.StationID,
		"readings", sequence,
		"window", st.Len(),
		"avg_temperature_c", temp,
		"avg_pressure_hpa", press,
	)
}
