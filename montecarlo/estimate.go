package montecarlo

import "time"

// Estimate is the outcome of a run.
type Estimate struct {
	Total   uint64        `json:"total"`
	Inside  uint64        `json:"inside"`
	Elapsed time.Duration `json:"elapsed"`
}

// Pi returns the π estimate 4*Inside/Total.
// ok is false when Total is zero, in which case the estimate is undefined.
func (est Estimate) Pi() (pi float64, ok bool) {
	if est.Total == 0 {
		return 0, false
	}
	return 4 * float64(est.Inside) / float64(est.Total), true
}

// Throughput returns iterations per second, or zero when Elapsed is not positive.
func (est Estimate) Throughput() float64 {
	if est.Elapsed <= 0 {
		return 0
	}
	return float64(est.Total) / est.Elapsed.Seconds()
}
