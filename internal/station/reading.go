package station

// Reading is a single temperature/pressure sample taken by a sensor.
type Reading struct {
	Temperature float64 `json:"temperature_c"`
	Pressure    float64 `json:"pressure_hpa"`
}

// Sensor produces one Reading per call.
type Sensor interface {
	GetReading() Reading
}
