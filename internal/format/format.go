// Package format turns raw metric values into the colored, unit-scaled
// text fragments making up the status line. All functions are pure; in
// minimal mode colors and icon glyphs are replaced by bare text tags.
package format

import (
	"math"
	"strconv"

	"codeberg.org/mutker/sysline/internal/metrics"
	"github.com/fatih/color"
)

const (
	ramWarnFraction = 0.75
	ramCritFraction = 0.90

	kbPerGB = 1024 * 1024
)

// scale maps a value onto the ok/warning/critical colors. Inverted scales
// treat low values as bad (compression ratios).
type scale struct {
	warn, crit float64
	inverted   bool
}

var scales = map[string]scale{
	"cpu":   {warn: 70, crit: 90},
	"temp":  {warn: 70, crit: 85},
	"ratio": {warn: 3, crit: 2, inverted: true},
}

var icons = map[string]string{
	"cpu":  "🧠",
	"temp": "🌡",
	"ram":  "💾",
	"zram": "📦",
}

// Swap keeps its own glyph/tag pair outside the generic lookup
const (
	swapIcon = "💽"
	swapTag  = "SWP"
)

// Color state is forced on: the line is consumed by status bars that
// interpret ANSI codes without presenting a TTY.
var (
	okColor   = newColor(color.FgGreen)
	warnColor = newColor(color.FgYellow)
	critColor = newColor(color.FgRed)
)

func newColor(attr color.Attribute) *color.Color {
	c := color.New(attr)
	c.EnableColor()

	return c
}

// CPU renders the CPU utilization fragment
func CPU(pct float64, minimal bool) string {
	return icon("cpu", minimal) + " " + colorize(formatFloat(pct), pct, scales["cpu"], minimal) + "%"
}

// Temperature renders the CPU temperature fragment, truncated to whole
// degrees Celsius
func Temperature(celsius float64, minimal bool) string {
	degrees := int(celsius)

	return icon("temp", minimal) + " " + colorize(strconv.Itoa(degrees), float64(degrees), scales["temp"], minimal) + "°C"
}

// RAM renders the memory fragment. The warn and critical thresholds are
// fractions of this run's total, not fixed absolute numbers.
func RAM(usage metrics.MemoryUsage, minimal, showCache bool) string {
	usedGB := round1(float64(usage.UsedMB) / 1024)
	totalGB := round1(float64(usage.TotalMB) / 1024)

	ramScale := scale{warn: totalGB * ramWarnFraction, crit: totalGB * ramCritFraction}
	out := icon("ram", minimal) + " " + colorize(formatFloat(usedGB), usedGB, ramScale, minimal) +
		"/" + formatFloat(totalGB) + "GB"

	if showCache {
		out += " (cache " + formatFloat(round1(float64(usage.CachedMB)/1024)) + "GB)"
	}

	return out
}

// Zram renders the compressed-swap fragment with optional ratio and
// saved-percentage suffixes. Both suffixes require compressed usage > 0.
func Zram(usage metrics.CompressionUsage, minimal, showRatio, showSaved bool) string {
	out := icon("zram", minimal) + " " + formatFloat(gb(usage.CompressedKB)) +
		"/" + formatFloat(gb(usage.OriginalKB)) + "GB"

	if showRatio && usage.CompressedKB > 0 {
		ratio := round1(usage.Ratio())
		out += " (" + colorize(formatFloat(ratio), ratio, scales["ratio"], minimal) + ":1)"
	}
	if showSaved && usage.CompressedKB > 0 {
		out += " Saved " + formatFloat(round1(usage.SavedPercent())) + "%"
	}

	return out
}

// ZramAbsent renders the placeholder shown when zram display is enabled
// but no zram is active on this system
func ZramAbsent(minimal bool) string {
	return icon("zram", minimal) + " -"
}

// Swap renders the disk swap fragment. Any usage at all is rendered
// critical: a binary policy, unlike the two-threshold scales.
func Swap(usage metrics.SwapUsage, minimal bool) string {
	text := formatFloat(gb(usage.UsedKB)) + "/" + formatFloat(gb(usage.TotalKB)) + "GB"
	if usage.UsedKB > 0 && !minimal {
		text = critColor.Sprint(text)
	}

	tag := swapIcon
	if minimal {
		tag = swapTag
	}

	return tag + " " + text
}

func colorize(text string, value float64, s scale, minimal bool) string {
	if minimal {
		return text
	}

	if s.inverted {
		switch {
		case value < s.crit:
			return critColor.Sprint(text)
		case value < s.warn:
			return warnColor.Sprint(text)
		default:
			return okColor.Sprint(text)
		}
	}

	switch {
	case value >= s.crit:
		return critColor.Sprint(text)
	case value >= s.warn:
		return warnColor.Sprint(text)
	default:
		return okColor.Sprint(text)
	}
}

func icon(label string, minimal bool) string {
	if minimal {
		return label
	}

	return icons[label]
}

// gb scales kilobytes to gigabytes with one decimal, binary units
func gb(kb int64) float64 {
	return round1(float64(kb) / kbPerGB)
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', 1, 64)
}
