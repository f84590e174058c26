package station

import (
	"errors"
	"sync"
)

// Capacity is the number of readings kept in the rolling window.
const Capacity = 10

// ErrNoReadings is returned by the averages while the window is empty.
var ErrNoReadings = errors.New("no readings are available yet")

// Station keeps the most recent readings of its sensor in a ring buffer.
// The sensor is borrowed; the caller owns its lifecycle.
type Station struct {
	sensor Sensor

	mu   sync.Mutex
	buf  [Capacity]Reading
	head int // index of the oldest reading
	n    int
}

func New(sensor Sensor) *Station {
	return &Station{sensor: sensor}
}

// RecordReading pulls one reading from the sensor. When the window is full
// the oldest reading is evicted before the new one is appended.
func (s *Station) RecordReading() {
	r := s.sensor.GetReading()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.n >= Capacity {
		s.head = (s.head + 1) % Capacity
		s.n--
	}
	s.buf[(s.head+s.n)%Capacity] = r
	s.n++
}

// AverageTemperature returns the mean temperature over the window.
func (s *Station) AverageTemperature() (float64, error) {
	return s.average(func(r Reading) float64 { return r.Temperature })
}

// AveragePressure returns the mean pressure over the window.
func (s *Station) AveragePressure() (float64, error) {
	return s.average(func(r Reading) float64 { return r.Pressure })
}

// Len returns the number of readings currently held.
func (s *Station) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.n
}

// Readings returns a copy of the window, oldest first.
func (s *Station) Readings() []Reading {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Reading, 0, s.n)
	for i := 0; i < s.n; i++ {
		out = append(out, s.buf[(s.head+i)%Capacity])
	}
	return out
}

func (s *Station) average(field func(Reading) float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.n == 0 {
		return 0, ErrNoReadings
	}

	var sum float64
	for i := 0; i < s.n; i++ {
		sum += field(s.buf[(s.head+i)%Capacity])
	}
	return sum / float64(s.n), nil
}
