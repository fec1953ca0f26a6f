package metrics

import (
	"context"

	"codeberg.org/mutker/sysline/internal/errors"
)

// CPUPercent returns aggregate CPU utilization as a percentage, averaged
// over a 0.5s window. It blocks the caller for that window. Unlike the
// other readers it propagates failure: a broken sampling primitive must
// surface instead of reporting a wrong number.
func (c *Collector) CPUPercent(ctx context.Context) (float64, error) {
	errFactory := errors.New()

	values, err := c.cpuSample(ctx, cpuSampleWindow)
	if err != nil {
		return 0, errFactory.Wrap(errors.ErrCPUSample, err)
	}
	if len(values) == 0 {
		return 0, errFactory.WithMessage(errors.ErrCPUSample, "sampler returned no values")
	}

	return values[0], nil
}
