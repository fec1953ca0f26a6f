package metrics

import (
	"context"
	"os/exec"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const (
	cpuSampleWindow = 500 * time.Millisecond

	bytesPerKB = 1024
	bytesPerMB = 1024 * 1024
)

// Collector acquires metrics from the OS. Each reader samples its sources
// fresh per call and holds no state between calls. Every reader except
// CPUPercent reports absence instead of failing.
type Collector struct {
	procPath   string
	sysPath    string
	runSensors func() ([]byte, error)
	vmStat     func() (*mem.VirtualMemoryStat, error)
	cpuSample  func(ctx context.Context, interval time.Duration) ([]float64, error)
}

// Option overrides a Collector source, mainly for tests
type Option func(*Collector)

// WithProcPath overrides the /proc mount point
func WithProcPath(path string) Option {
	return func(c *Collector) {
		c.procPath = path
	}
}

// WithSysPath overrides the /sys mount point
func WithSysPath(path string) Option {
	return func(c *Collector) {
		c.sysPath = path
	}
}

// WithSensorsCommand overrides how the sensors tool output is obtained
func WithSensorsCommand(run func() ([]byte, error)) Option {
	return func(c *Collector) {
		c.runSensors = run
	}
}

// WithVirtualMemory overrides the virtual memory source
func WithVirtualMemory(stat func() (*mem.VirtualMemoryStat, error)) Option {
	return func(c *Collector) {
		c.vmStat = stat
	}
}

// WithCPUSampler overrides the CPU utilization sampler
func WithCPUSampler(sample func(ctx context.Context, interval time.Duration) ([]float64, error)) Option {
	return func(c *Collector) {
		c.cpuSample = sample
	}
}

func New(opts ...Option) *Collector {
	c := &Collector{
		procPath: "/proc",
		sysPath:  "/sys",
		runSensors: func() ([]byte, error) {
			return exec.Command("sensors").Output()
		},
		vmStat: mem.VirtualMemory,
		cpuSample: func(ctx context.Context, interval time.Duration) ([]float64, error) {
			return cpu.PercentWithContext(ctx, interval, false)
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}
