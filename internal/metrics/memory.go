package metrics

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"codeberg.org/mutker/sysline/internal/logger"
)

// Memory returns physical memory usage in megabytes. Used counts total
// minus available, so reclaimable caches are not reported as used. This
// reader has no absence case: the cache figure falls back internally and
// a broken virtual memory source yields a zero-value result.
func (c *Collector) Memory() MemoryUsage {
	vm, err := c.vmStat()
	if err != nil || vm == nil {
		logger.Warn().Err(err).Msg("virtual memory source unavailable")
		return MemoryUsage{}
	}

	cachedMB, ok := c.cachedFromMeminfo()
	if !ok {
		cachedMB = int64(vm.Cached) / bytesPerMB
	}

	return MemoryUsage{
		UsedMB:   int64(vm.Total-vm.Available) / bytesPerMB,
		TotalMB:  int64(vm.Total) / bytesPerMB,
		CachedMB: cachedMB,
	}
}

// cachedFromMeminfo computes the cache figure from /proc/meminfo as
// Cached + SReclaimable - Shmem, guarding against shared memory already
// counted in Cached. The difference is clamped at zero: a Shmem excess
// would otherwise render a negative cache size. Returns false when the
// file is unreadable or malformed so the caller can fall back.
func (c *Collector) cachedFromMeminfo() (int64, bool) {
	data, err := os.ReadFile(filepath.Join(c.procPath, "meminfo"))
	if err != nil {
		logger.Debug().Err(err).Msg("meminfo unreadable, using fallback cache figure")
		return 0, false
	}

	fields := make(map[string]int64)
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}

		key, rest, found := strings.Cut(line, ":")
		if !found {
			return 0, false
		}

		parts := strings.Fields(rest)
		if len(parts) == 0 {
			return 0, false
		}

		value, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return 0, false
		}

		fields[strings.TrimSpace(key)] = value
	}

	cachedKB := fields["Cached"] + fields["SReclaimable"] - fields["Shmem"]
	if cachedKB < 0 {
		logger.Debug().Int64("cached_kb", cachedKB).Msg("negative cache figure clamped to zero")
		cachedKB = 0
	}

	return cachedKB / bytesPerKB, true
}
