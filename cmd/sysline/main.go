package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"codeberg.org/mutker/sysline/internal/config"
	"codeberg.org/mutker/sysline/internal/errors"
	"codeberg.org/mutker/sysline/internal/format"
	"codeberg.org/mutker/sysline/internal/logger"
	"codeberg.org/mutker/sysline/internal/metrics"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.LogLevel, logger.IsService())
	logger.Debug().Msg("Config loaded")

	fmt.Println(statusLine(context.Background(), cfg, metrics.New()))
}

// statusLine runs the enabled readers and assembles their fragments.
// Output order is fixed (CPU, temperature, RAM, zram, swap) regardless of
// reader invocation order. Absent metrics drop their fragment, except
// zram which shows a dash placeholder when enabled but not present.
func statusLine(ctx context.Context, cfg *config.Config, collector *metrics.Collector) string {
	parts := make([]string, 0, 5)

	if !cfg.NoCPU {
		parts = append(parts, format.CPU(sampleCPU(ctx, collector), cfg.Minimal))
	}

	if !cfg.NoCPUTemp {
		if celsius, ok := collector.CPUTemperature(); ok {
			parts = append(parts, format.Temperature(celsius, cfg.Minimal))
		}
	}

	var swapUsage metrics.SwapUsage
	swapOK := false
	if !cfg.NoSwap {
		swapUsage, swapOK = collector.Swap()
	}

	if !cfg.NoRAM {
		parts = append(parts, format.RAM(collector.Memory(), cfg.Minimal, !cfg.NoRAMCache))
	}

	if !cfg.NoZram {
		if usage, ok := collector.Zram(); ok {
			parts = append(parts, format.Zram(usage, cfg.Minimal, cfg.Ratio, cfg.Saved))
		} else {
			parts = append(parts, format.ZramAbsent(cfg.Minimal))
		}
	}

	if swapOK {
		parts = append(parts, format.Swap(swapUsage, cfg.Minimal))
	}

	return strings.Join(parts, " ")
}

// sampleCPU terminates the process on sampler failure; CPU load is the
// one metric where a wrong number is worse than no output.
func sampleCPU(ctx context.Context, collector *metrics.Collector) float64 {
	pct, err := collector.CPUPercent(ctx)
	if err != nil {
		var coded errors.Error
		if errors.As(err, &coded) {
			logger.FatalWithCode(coded).Send()
		}
		logger.Fatal().Err(err).Msg("failed to sample CPU utilization")
	}

	return pct
}
