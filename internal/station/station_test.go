package station

import (
	"errors"
	"sync"
	"testing"
)

// stubSensor replays scripted readings in order, wrapping around at the end.
type stubSensor struct {
	readings []Reading
	calls    int
}

func (s *stubSensor) GetReading() Reading {
	r := s.readings[s.calls%len(s.readings)]
	s.calls++
	return r
}

// countingSensor returns readings whose temperature is the call number.
type countingSensor struct {
	mu    sync.Mutex
	calls int
}

func (c *countingSensor) GetReading() Reading {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := Reading{Temperature: float64(c.calls), Pressure: 1000 + float64(c.calls)}
	c.calls++
	return r
}

func TestNew(t *testing.T) {
	st := New(&stubSensor{readings: []Reading{{}}})
	if st == nil {
		t.Fatal("New returned nil")
	}
	if got := st.Len(); got != 0 {
		t.Errorf("Len() = %d; want 0", got)
	}
	if got := st.Readings(); len(got) != 0 {
		t.Errorf("Readings() = %v; want empty", got)
	}
}

func TestRecordReading(t *testing.T) {
	sensor := &stubSensor{readings: []Reading{{Temperature: 12.5, Pressure: 1013.25}}}
	st := New(sensor)

	st.RecordReading()

	if got := st.Len(); got != 1 {
		t.Fatalf("Len() = %d; want 1", got)
	}
	if sensor.calls != 1 {
		t.Errorf("sensor calls = %d; want 1", sensor.calls)
	}
	got := st.Readings()[0]
	if got.Temperature != 12.5 || got.Pressure != 1013.25 {
		t.Errorf("Readings()[0] = %+v; want {12.5 1013.25}", got)
	}
}

func TestAverages_Empty(t *testing.T) {
	st := New(&stubSensor{readings: []Reading{{}}})

	tests := []struct {
		name string
		fn   func() (float64, error)
	}{
		{name: "temperature", fn: st.AverageTemperature},
		{name: "pressure", fn: st.AveragePressure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn()
			if !errors.Is(err, ErrNoReadings) {
				t.Fatalf("error = %v; want ErrNoReadings", err)
			}
			if err.Error() != "no readings are available yet" {
				t.Errorf("error message = %q; want %q", err.Error(), "no readings are available yet")
			}
		})
	}
}

func TestAverages_Scripted(t *testing.T) {
	st := New(&stubSensor{readings: []Reading{
		{Temperature: 10, Pressure: 1000},
		{Temperature: 20, Pressure: 1010},
		{Temperature: 30, Pressure: 990},
	}})
	for i := 0; i < 3; i++ {
		st.RecordReading()
	}

	temp, err := st.AverageTemperature()
	if err != nil {
		t.Fatalf("AverageTemperature() error = %v, want nil", err)
	}
	if temp != 20.0 {
		t.Errorf("AverageTemperature() = %v; want 20", temp)
	}

	press, err := st.AveragePressure()
	if err != nil {
		t.Fatalf("AveragePressure() error = %v, want nil", err)
	}
	if press != 1000.0 {
		t.Errorf("AveragePressure() = %v; want 1000", press)
	}
}

func TestRecordReading_EvictsOldest(t *testing.T) {
	tests := []struct {
		name    string
		records int
		wantLen int
		first   float64
	}{
		{name: "below capacity", records: 4, wantLen: 4, first: 0},
		{name: "exactly capacity", records: Capacity, wantLen: Capacity, first: 0},
		{name: "one over capacity", records: Capacity + 1, wantLen: Capacity, first: 1},
		{name: "fifteen", records: 15, wantLen: Capacity, first: 5},
		{name: "several wraps", records: 4*Capacity + 3, wantLen: Capacity, first: 3*Capacity + 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := New(&countingSensor{})
			for i := 0; i < tt.records; i++ {
				st.RecordReading()
				if st.Len() > Capacity {
					t.Fatalf("Len() = %d after %d records; exceeds capacity %d", st.Len(), i+1, Capacity)
				}
			}

			got := st.Readings()
			if len(got) != tt.wantLen {
				t.Fatalf("len(Readings()) = %d; want %d", len(got), tt.wantLen)
			}
			for i, r := range got {
				want := tt.first + float64(i)
				if r.Temperature != want {
					t.Errorf("Readings()[%d].Temperature = %v; want %v", i, r.Temperature, want)
				}
			}
		})
	}
}

func TestAverages_OnlyWindow(t *testing.T) {
	st := New(&countingSensor{})
	for i := 0; i < 15; i++ {
		st.RecordReading()
	}

	// Window holds calls 5..14.
	temp, err := st.AverageTemperature()
	if err != nil {
		t.Fatalf("AverageTemperature() error = %v, want nil", err)
	}
	if temp != 9.5 {
		t.Errorf("AverageTemperature() = %v; want 9.5", temp)
	}

	press, err := st.AveragePressure()
	if err != nil {
		t.Fatalf("AveragePressure() error = %v, want nil", err)
	}
	if press != 1009.5 {
		t.Errorf("AveragePressure() = %v; want 1009.5", press)
	}
}

func TestReadings_ReturnsCopy(t *testing.T) {
	st := New(&stubSensor{readings: []Reading{{Temperature: 1, Pressure: 2}}})
	st.RecordReading()

	got := st.Readings()
	got[0].Temperature = 99

	if again := st.Readings()[0].Temperature; again != 1 {
		t.Errorf("Readings()[0].Temperature = %v after mutating copy; want 1", again)
	}
}

func TestStation_ConcurrentUse(t *testing.T) {
	st := New(&countingSensor{})

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				st.RecordReading()
				if _, err := st.AverageTemperature(); err != nil {
					t.Errorf("AverageTemperature() error = %v, want nil", err)
					return
				}
				if n := st.Len(); n > Capacity {
					t.Errorf("Len() = %d; exceeds capacity %d", n, Capacity)
					return
				}
			}
		}()
	}
	wg.Wait()

	if got := st.Len(); got != Capacity {
		t.Errorf("Len() = %d; want %d", got, Capacity)
	}
}
