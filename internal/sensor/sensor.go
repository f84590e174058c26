// Package sensor simulates a temperature/pressure sensor by sampling two
// independent uniform distributions.
package sensor

import (
	"math/rand/v2"

	"cloudpico-weatherstation/internal/station"
)

// Sampling bounds, both inclusive. Temperature in °C, pressure in hPa.
const (
	TemperatureMin = -10.0
	TemperatureMax = 40.0
	PressureMin    = 900.0
	PressureMax    = 1100.0
)

type Sensor struct {
	temperature *UniformDistribution
	pressure    *UniformDistribution
}

// New returns a sensor drawing both fields from src. A nil src uses the
// process-wide generator.
func New(src Source) *Sensor {
	return &Sensor{
		temperature: UD(TemperatureMin, TemperatureMax, src),
		pressure:    UD(PressureMin, PressureMax, src),
	}
}

// NewSeeded returns a sensor whose sequence of readings is fully determined
// by seed.
func NewSeeded(seed uint64) *Sensor {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func (s *Sensor) SampleTemperature() float64 {
	return s.temperature.Sample()
}

func (s *Sensor) SamplePressure() float64 {
	return s.pressure.Sample()
}

// GetReading samples temperature, then pressure.
func (s *Sensor) GetReading() station.Reading {
	temperature := s.SampleTemperature()
	pressure := s.SamplePressure()
	return station.Reading{
		Temperature: temperature,
		Pressure:    pressure,
	}
}
