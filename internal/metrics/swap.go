package metrics

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"codeberg.org/mutker/sysline/internal/logger"
)

// Swap returns usage of the first disk-backed swap area, or absence when
// none exists. Zram-backed areas are excluded by the path heuristic. Any
// read or parse failure also reports absence.
func (c *Collector) Swap() (SwapUsage, bool) {
	lines, ok := c.swapEntries()
	if !ok {
		return SwapUsage{}, false
	}

	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 || !isDiskSwap(fields[0]) {
			continue
		}

		// Only a malformed matching entry counts as absence
		if len(fields) < 4 {
			return SwapUsage{}, false
		}

		total, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return SwapUsage{}, false
		}
		used, err := strconv.ParseInt(fields[3], 10, 64)
		if err != nil {
			return SwapUsage{}, false
		}

		return SwapUsage{UsedKB: used, TotalKB: total}, true
	}

	return SwapUsage{}, false
}

// swapEntries reads the active swap areas listing, dropping the header
// line. Shared by the swap and zram fallback readers.
func (c *Collector) swapEntries() ([]string, bool) {
	data, err := os.ReadFile(filepath.Join(c.procPath, "swaps"))
	if err != nil {
		logger.Debug().Err(err).Msg("swap listing unreadable")
		return nil, false
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) < 2 {
		return nil, false
	}

	entries := make([]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, line)
	}

	return entries, true
}

// isDiskSwap reports whether a swap entry path names a real disk-backed
// swap area: a device or file ending in "swap", the conventional
// /swapfile, or anything under a /swap/ directory.
func isDiskSwap(path string) bool {
	return strings.HasSuffix(path, "swap") || path == "/swapfile" || strings.Contains(path, "/swap/")
}
