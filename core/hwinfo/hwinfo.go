// Package hwinfo gathers hardware information.
package hwinfo

import (
	"github.com/usnistgov/mcpi/core/logging"
	"github.com/zyedidia/generic"
)

var logger = logging.New("hwinfo")

// CoreInfo describes a logical CPU core.
type CoreInfo struct {
	ID           int `json:"id"`
	NumaSocket   int `json:"numaSocket"`
	PhysicalCore int `json:"physicalCore"`
}

// Cores contains information about CPU cores.
type Cores []CoreInfo

// MaxNumaSocket determines the maximum NUMA socket.
func (cores Cores) MaxNumaSocket() int {
	maxSocket := -1
	for _, core := range cores {
		maxSocket = generic.Max(maxSocket, core.NumaSocket)
	}
	return maxSocket
}

// CountPhysical returns the number of distinct physical cores.
func (cores Cores) CountPhysical() int {
	seen := map[[2]int]bool{}
	for _, core := range cores {
		seen[[2]int{core.NumaSocket, core.PhysicalCore}] = true
	}
	return len(seen)
}

// Provider provides information about hardware.
type Provider interface {
	// Cores provides information about CPU cores usable by this process.
	Cores() Cores
}

// Default is the default Provider implementation.
var Default Provider = &procinfoProvider{}

// NumWorkers returns the number of logical cores usable by this process, at least 1.
func NumWorkers(p Provider) int {
	return generic.Max(1, len(p.Cores()))
}
