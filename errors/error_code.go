package errors

// ErrorCode identifies an application-level error class in responses.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK            ErrorCode = 0
	ErrorCode_INTERNAL           ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT   ErrorCode = 1001
	ErrorCode_NOT_FOUND          ErrorCode = 1002
	ErrorCode_SOURCE_UNAVAILABLE ErrorCode = 2000
	ErrorCode_CACHE_FAILED       ErrorCode = 2001
)

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_HTTP_OK:
		return "HTTP_OK"
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_INVALID_ARGUMENT:
		return "INVALID_ARGUMENT"
	case ErrorCode_NOT_FOUND:
		return "NOT_FOUND"
	case ErrorCode_SOURCE_UNAVAILABLE:
		return "SOURCE_UNAVAILABLE"
	case ErrorCode_CACHE_FAILED:
		return "CACHE_FAILED"
	default:
		return "UNKNOWN"
	}
}
