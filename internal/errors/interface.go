package errors

// ErrorCode identifies an error class. Most readers in this tool swallow
// failures and report absence instead, so codes mainly surface from
// configuration loading and the CPU sampler, the two paths allowed to
// fail outward.
type ErrorCode string

// Error is a coded error with optional message, cause, and payload
type Error interface {
	error
	Code() ErrorCode
	WithMessage(msg string) Error
	WithData(data any) Error
	GetData() any
	Unwrap() error
}

// Factory creates coded errors
type Factory interface {
	New(code ErrorCode) Error
	Wrap(code ErrorCode, err error) Error
	WithMessage(code ErrorCode, msg string) Error
	WithData(code ErrorCode, data any) Error
}
