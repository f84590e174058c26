package sensor

import "math/rand/v2"

// Source yields floats uniformly distributed in [0, 1).
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// globalSource draws from the process-wide generator.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// UniformDistribution models a uniform distribution over [Low, High].
type UniformDistribution struct {
	Low  float64
	High float64

	src Source
}

// UD creates a new uniform distribution with the given range. A nil src uses
// the process-wide generator.
func UD(low, high float64, src Source) *UniformDistribution {
	if src == nil {
		src = globalSource{}
	}
	return &UniformDistribution{
		Low:  low,
		High: high,
		src:  src,
	}
}

// Sample draws one value.
func (d *UniformDistribution) Sample() float64 {
	x := d.src.Float64()
	x *= d.High - d.Low
	x += d.Low
	return x
}
