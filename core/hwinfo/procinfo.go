package hwinfo

import (
	"fmt"
	"math/big"
	"runtime"
	"sync"

	procinfo "github.com/c9s/goprocinfo/linux"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

const (
	pathCPUInfo       = "/proc/cpuinfo"
	pathProcessStatus = "/proc/self/status"
	pathSystemNode    = "/sys/devices/system/node"
	maxNumaNode       = 32
)

type procinfoProvider struct {
	once        sync.Once
	cachedCores Cores
}

func (p *procinfoProvider) Cores() Cores {
	p.once.Do(func() {
		cores, e := p.read()
		if e != nil || len(cores) == 0 {
			logger.Warn("cannot read CPU information, assuming runtime.NumCPU() cores",
				zap.Error(e), zap.Int("ncpu", runtime.NumCPU()))
			cores = fallbackCores(runtime.NumCPU())
		}
		logger.Debug("CPU cores",
			zap.Int("logical", len(cores)),
			zap.Int("physical", cores.CountPhysical()),
			zap.Int("max-numa", cores.MaxNumaSocket()),
		)
		p.cachedCores = cores
	})
	return p.cachedCores
}

func (p *procinfoProvider) read() (cores Cores, e error) {
	status, e := procinfo.ReadProcessStatus(pathProcessStatus)
	if e != nil {
		return nil, fmt.Errorf("%s: %w", pathProcessStatus, e)
	}
	allowed := &big.Int{}
	for _, word := range status.CpusAllowed {
		allowed.Lsh(allowed, 32)
		allowed.Add(allowed, big.NewInt(int64(word)))
	}

	cpuInfo, e := procinfo.ReadCPUInfo(pathCPUInfo)
	if e != nil {
		return nil, fmt.Errorf("%s: %w", pathCPUInfo, e)
	}

	for _, processor := range cpuInfo.Processors {
		if allowed.Bit(int(processor.Id)) == 0 {
			continue
		}
		cores = append(cores, CoreInfo{
			ID:           int(processor.Id),
			NumaSocket:   p.findNumaSocket(processor),
			PhysicalCore: int(processor.CoreId),
		})
	}
	return cores, nil
}

func (*procinfoProvider) findNumaSocket(processor procinfo.Processor) int {
	for i := 0; i < maxNumaNode; i++ {
		path := fmt.Sprintf("%s/node%d/cpu%d", pathSystemNode, i, processor.Id)
		if unix.Access(path, unix.F_OK) == nil {
			return i
		}
	}
	return 0
}

func fallbackCores(n int) (cores Cores) {
	for i := 0; i < n; i++ {
		cores = append(cores, CoreInfo{ID: i, PhysicalCore: i})
	}
	return cores
}
