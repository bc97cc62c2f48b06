package runningstat

import (
	"encoding/json"
	"math"

	"github.com/zyedidia/generic"
)

// Snapshot contains a snapshot of RunningStat reading.
// Mean, Min, Max are NaN if Count is zero; Variance and Stdev are NaN if Count is less than two.
type Snapshot struct {
	Count    uint64
	Mean     float64
	Variance float64
	Stdev    float64
	Min      float64
	Max      float64
	M1       float64
	M2       float64
}

// Add combines stats with another instance.
// This is associative and commutative up to floating point rounding.
func (s Snapshot) Add(o Snapshot) Snapshot {
	if s.Count == 0 {
		return o
	} else if o.Count == 0 {
		return s
	}
	n := s.Count + o.Count
	aN, bN, cN := float64(s.Count), float64(o.Count), float64(n)
	delta := o.M1 - s.M1
	m1 := (aN*s.M1 + bN*o.M1) / cN
	m2 := s.M2 + o.M2 + delta*delta*aN*bN/cN
	return newSnapshot(n, m1, m2, generic.Min(s.Min, o.Min), generic.Max(s.Max, o.Max))
}

// Scale multiplies every number by a ratio.
func (s Snapshot) Scale(ratio float64) Snapshot {
	min, max := s.Min*ratio, s.Max*ratio
	if ratio < 0 {
		min, max = max, min
	}
	return newSnapshot(s.Count, s.M1*ratio, s.M2*ratio*ratio, min, max)
}

// MarshalJSON implements json.Marshaler.
// NaN fields are omitted.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	m := map[string]any{"count": s.Count}
	addUnlessNaN := func(key string, value float64) {
		if !math.IsNaN(value) {
			m[key] = value
		}
	}
	addUnlessNaN("mean", s.Mean)
	addUnlessNaN("variance", s.Variance)
	addUnlessNaN("stdev", s.Stdev)
	addUnlessNaN("min", s.Min)
	addUnlessNaN("max", s.Max)
	return json.Marshal(m)
}
