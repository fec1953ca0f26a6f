package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrUnavailable     ErrorCode = "source_unavailable"

	// Configuration errors
	ErrInvalidConfig   ErrorCode = "invalid_configuration"
	ErrBindFlags       ErrorCode = "bind_flags_failed"
	ErrReadConfig      ErrorCode = "read_config_failed"
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Sampling errors
	ErrCPUSample     ErrorCode = "cpu_sample_failed"
	ErrParseFailed   ErrorCode = "parse_failed"
	ErrReadProcFile  ErrorCode = "read_proc_file_failed"
	ErrReadSysBlock  ErrorCode = "read_sys_block_failed"
	ErrSensorCommand ErrorCode = "sensor_command_failed"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:        "Internal error occurred",
	ErrInvalidArgument: "Invalid argument provided",
	ErrUnavailable:     "Metric source unavailable",
	ErrInvalidConfig:   "Invalid configuration",
	ErrBindFlags:       "Failed to bind flags",
	ErrReadConfig:      "Failed to read config file",
	ErrInvalidLogLevel: "Invalid log level",
	ErrCPUSample:       "Failed to sample CPU utilization",
	ErrParseFailed:     "Failed to parse metric source",
	ErrReadProcFile:    "Failed to read proc file",
	ErrReadSysBlock:    "Failed to read sysfs block device",
	ErrSensorCommand:   "Sensor command failed",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
