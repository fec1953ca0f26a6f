package metrics

// MemoryUsage reports physical memory accounting in megabytes. Used is
// derived from total minus available, so Used <= Total by construction.
type MemoryUsage struct {
	UsedMB   int64
	TotalMB  int64
	CachedMB int64
}

// CompressionUsage reports compressed-swap accounting in kilobytes.
// CompressedKB is the on-device size, OriginalKB the uncompressed size.
type CompressionUsage struct {
	CompressedKB int64
	OriginalKB   int64
}

// Ratio returns the compression ratio (original over compressed).
// Only meaningful when CompressedKB > 0.
func (u CompressionUsage) Ratio() float64 {
	return float64(u.OriginalKB) / float64(u.CompressedKB)
}

// SavedPercent returns the space saved by compression as a percentage.
// Only meaningful when CompressedKB > 0.
func (u CompressionUsage) SavedPercent() float64 {
	return 100 * (1 - float64(u.CompressedKB)/float64(u.OriginalKB))
}

// SwapUsage reports disk-backed swap accounting in kilobytes.
type SwapUsage struct {
	UsedKB  int64
	TotalKB int64
}
