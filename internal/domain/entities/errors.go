package entities

import "errors"

// Per-record validation rejections. These are recovered locally by the
// reconciler: the offending candidate is dropped and logged, never raised
// to a caller.
var (
	ErrMalformedRecord        = errors.New("malformed record")
	ErrOwnershipMismatch      = errors.New("record owner does not match requesting user")
	ErrMissingProjectIdentity = errors.New("record has no project label or project id")
	ErrMissingTimestamp       = errors.New("record has no parseable creation timestamp")
)

// Source-level errors.
var (
	// ErrAdapterUnavailable wraps a failed or timed-out source fetch.
	ErrAdapterUnavailable = errors.New("meeting source unavailable")
	// ErrAllSourcesFailed is returned by the reconciler when neither source
	// produced data. The cache layer resolves it by serving the last
	// known-good result.
	ErrAllSourcesFailed = errors.New("all meeting sources failed")
)
