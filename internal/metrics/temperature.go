package metrics

import (
	"regexp"
	"strconv"

	"codeberg.org/mutker/sysline/internal/logger"
)

// Matches the CPU channels lm-sensors reports across AMD (Tctl, Tdie),
// Intel (Package id N, Core N) and generic hwmon (tempN) drivers.
var cpuTempPattern = regexp.MustCompile(`(Tctl|Tdie|Package id \d+|Core \d+|temp\d+):\s+\+?([\d.]+)°C`)

// CPUTemperature runs the sensors tool and returns the first CPU channel
// reading in degrees Celsius. A missing tool, non-zero exit or unmatched
// output all report absence, never an error.
func (c *Collector) CPUTemperature() (float64, bool) {
	out, err := c.runSensors()
	if err != nil {
		logger.Debug().Err(err).Msg("sensors tool unavailable")
		return 0, false
	}

	match := cpuTempPattern.FindSubmatch(out)
	if match == nil {
		logger.Debug().Msg("no CPU temperature channel in sensors output")
		return 0, false
	}

	value, err := strconv.ParseFloat(string(match[2]), 64)
	if err != nil {
		return 0, false
	}

	return value, true
}
