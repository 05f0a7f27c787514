package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	TooManyRequests     failure.ErrorCode = "TooManyRequests"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	InvalidKeyword      failure.ErrorCode = "InvalidKeyword"
	InvalidPaging       failure.ErrorCode = "InvalidPaging"
	HistoryDisabled     failure.ErrorCode = "HistoryDisabled"
	UpstreamUnavailable failure.ErrorCode = "UpstreamUnavailable" // transport error or non-2xx status
	UpstreamMalformed   failure.ErrorCode = "UpstreamMalformed"   // response body could not be decoded
)
