package format_test

import (
	"strings"
	"testing"

	"codeberg.org/mutker/sysline/internal/format"
	"codeberg.org/mutker/sysline/internal/metrics"
	"github.com/stretchr/testify/assert"
)

const (
	green  = "\x1b[32m"
	yellow = "\x1b[33m"
	red    = "\x1b[31m"
	reset  = "\x1b[0m"
)

func TestCPU(t *testing.T) {
	tests := []struct {
		name    string
		pct     float64
		minimal bool
		want    string
	}{
		{"ok below warn", 42.5, false, "🧠 " + green + "42.5" + reset + "%"},
		{"warning at threshold", 70.0, false, "🧠 " + yellow + "70.0" + reset + "%"},
		{"critical at threshold", 90.0, false, "🧠 " + red + "90.0" + reset + "%"},
		{"critical above", 99.9, false, "🧠 " + red + "99.9" + reset + "%"},
		{"minimal", 42.5, true, "cpu 42.5%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, format.CPU(tt.pct, tt.minimal))
		})
	}
}

func TestTemperature(t *testing.T) {
	tests := []struct {
		name    string
		celsius float64
		minimal bool
		want    string
	}{
		{"truncated and ok", 48.7, false, "🌡 " + green + "48" + reset + "°C"},
		{"warning", 72.9, false, "🌡 " + yellow + "72" + reset + "°C"},
		{"critical", 85.0, false, "🌡 " + red + "85" + reset + "°C"},
		{"minimal", 48.7, true, "temp 48°C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, format.Temperature(tt.celsius, tt.minimal))
		})
	}
}

func TestRAM(t *testing.T) {
	usage := metrics.MemoryUsage{UsedMB: 4096, TotalMB: 16384, CachedMB: 2048}

	assert.Equal(t,
		"💾 "+green+"4.0"+reset+"/16.0GB (cache 2.0GB)",
		format.RAM(usage, false, true))
	assert.Equal(t,
		"💾 "+green+"4.0"+reset+"/16.0GB",
		format.RAM(usage, false, false))
	assert.Equal(t, "ram 4.0/16.0GB (cache 2.0GB)", format.RAM(usage, true, true))
}

func TestRAMThresholdsScaleWithTotal(t *testing.T) {
	// warn at 75% and crit at 90% of this run's total
	warning := metrics.MemoryUsage{UsedMB: 12800, TotalMB: 16384} // 12.5/16.0GB, warn=12.0
	critical := metrics.MemoryUsage{UsedMB: 15360, TotalMB: 16384} // 15.0/16.0GB, crit=14.4

	assert.Contains(t, format.RAM(warning, false, false), yellow+"12.5"+reset)
	assert.Contains(t, format.RAM(critical, false, false), red+"15.0"+reset)
}

func TestZram(t *testing.T) {
	// 150MB compressed of 600MB original
	usage := metrics.CompressionUsage{CompressedKB: 150 * 1024, OriginalKB: 600 * 1024}

	assert.Equal(t, "📦 0.1/0.6GB", format.Zram(usage, false, false, false))
	assert.Equal(t,
		"📦 0.1/0.6GB ("+green+"4.0"+reset+":1)",
		format.Zram(usage, false, true, false))
	assert.Equal(t,
		"📦 0.1/0.6GB ("+green+"4.0"+reset+":1) Saved 75.0%",
		format.Zram(usage, false, true, true))
	assert.Equal(t, "zram 0.1/0.6GB (4.0:1) Saved 75.0%", format.Zram(usage, true, true, true))
}

func TestZramRatioColoring(t *testing.T) {
	// Ratio coloring is inverted: a low ratio is bad
	poor := metrics.CompressionUsage{CompressedKB: 2 * 1024 * 1024, OriginalKB: 3 * 1024 * 1024}  // 1.5:1
	fair := metrics.CompressionUsage{CompressedKB: 2 * 1024 * 1024, OriginalKB: 5 * 1024 * 1024}  // 2.5:1
	good := metrics.CompressionUsage{CompressedKB: 1 * 1024 * 1024, OriginalKB: 3 * 1024 * 1024}  // 3.0:1

	assert.Contains(t, format.Zram(poor, false, true, false), red+"1.5"+reset)
	assert.Contains(t, format.Zram(fair, false, true, false), yellow+"2.5"+reset)
	assert.Contains(t, format.Zram(good, false, true, false), green+"3.0"+reset)
}

func TestZramSuffixesNeedCompressedUsage(t *testing.T) {
	usage := metrics.CompressionUsage{CompressedKB: 0, OriginalKB: 1024}

	assert.Equal(t, "📦 0.0/0.0GB", format.Zram(usage, false, true, true))
}

func TestZramAbsent(t *testing.T) {
	assert.Equal(t, "📦 -", format.ZramAbsent(false))
	assert.Equal(t, "zram -", format.ZramAbsent(true))
}

func TestSwap(t *testing.T) {
	used := metrics.SwapUsage{UsedKB: 524288, TotalKB: 8388608}
	idle := metrics.SwapUsage{UsedKB: 0, TotalKB: 8388608}

	// Any usage at all renders critical
	assert.Equal(t, "💽 "+red+"0.5/8.0GB"+reset, format.Swap(used, false))
	assert.Equal(t, "💽 0.0/8.0GB", format.Swap(idle, false))
	assert.Equal(t, "SWP 0.5/8.0GB", format.Swap(used, true))
	assert.Equal(t, "SWP 0.0/8.0GB", format.Swap(idle, true))
}

func TestMinimalModeHasNoEscapesOrGlyphs(t *testing.T) {
	fragments := []string{
		format.CPU(95.0, true),
		format.Temperature(90.0, true),
		format.RAM(metrics.MemoryUsage{UsedMB: 16000, TotalMB: 16384, CachedMB: 1}, true, true),
		format.Zram(metrics.CompressionUsage{CompressedKB: 1024, OriginalKB: 1024}, true, true, true),
		format.ZramAbsent(true),
		format.Swap(metrics.SwapUsage{UsedKB: 1, TotalKB: 1024}, true),
	}

	for _, fragment := range fragments {
		assert.NotContains(t, fragment, "\x1b[", "minimal mode must not emit escape codes")
		for _, glyph := range []string{"🧠", "🌡", "💾", "📦", "💽"} {
			assert.False(t, strings.Contains(fragment, glyph), "minimal mode must not emit icon glyphs")
		}
	}
}
