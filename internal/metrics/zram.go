package metrics

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"codeberg.org/mutker/sysline/internal/logger"
)

// Zram returns compressed-swap usage summed across all zram devices, or
// absence when no zram is active. The sysfs byte counters are preferred;
// systems without them fall back to the /proc/swaps accounting.
func (c *Collector) Zram() (CompressionUsage, bool) {
	if usage, ok := c.zramFromSysfs(); ok {
		return usage, true
	}

	return c.zramFromSwaps()
}

func (c *Collector) zramFromSysfs() (CompressionUsage, bool) {
	entries, err := os.ReadDir(filepath.Join(c.sysPath, "block"))
	if err != nil {
		logger.Debug().Err(err).Msg("block device listing unreadable")
		return CompressionUsage{}, false
	}

	var compressed, original int64
	found := false
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), "zram") {
			continue
		}
		found = true

		base := filepath.Join(c.sysPath, "block", entry.Name())
		comp, err := readIntFile(filepath.Join(base, "compr_data_size"))
		if err != nil {
			logger.Debug().Err(err).Str("device", entry.Name()).Msg("skipping zram device")
			continue
		}
		orig, err := readIntFile(filepath.Join(base, "orig_data_size"))
		if err != nil {
			logger.Debug().Err(err).Str("device", entry.Name()).Msg("skipping zram device")
			continue
		}

		compressed += comp
		original += orig
	}

	if found && original > 0 {
		return CompressionUsage{
			CompressedKB: compressed / bytesPerKB,
			OriginalKB:   original / bytesPerKB,
		}, true
	}

	return CompressionUsage{}, false
}

func (c *Collector) zramFromSwaps() (CompressionUsage, bool) {
	lines, ok := c.swapEntries()
	if !ok {
		return CompressionUsage{}, false
	}

	var usedKB, totalKB int64
	for _, line := range lines {
		if !strings.Contains(line, "zram") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 4 {
			return CompressionUsage{}, false
		}
		total, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return CompressionUsage{}, false
		}
		used, err := strconv.ParseInt(fields[3], 10, 64)
		if err != nil {
			return CompressionUsage{}, false
		}

		usedKB += used
		totalKB += total
	}

	if totalKB > 0 {
		return CompressionUsage{CompressedKB: usedKB, OriginalKB: totalKB}, true
	}

	return CompressionUsage{}, false
}

func readIntFile(path string) (int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
}
