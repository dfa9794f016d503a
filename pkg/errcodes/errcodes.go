package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Unauthorized        failure.ErrorCode = "Unauthorized"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Deals API
	DealNotFound            failure.ErrorCode = "DealNotFound"
	InvalidDealID           failure.ErrorCode = "InvalidDealID"
	InvalidPaging           failure.ErrorCode = "InvalidPaging"
	UpstreamUnavailable     failure.ErrorCode = "UpstreamUnavailable"
	InvalidUpstreamResponse failure.ErrorCode = "InvalidUpstreamResponse"

	// Filters
	InvalidCategory   failure.ErrorCode = "InvalidCategory"
	InvalidTimeWindow failure.ErrorCode = "InvalidTimeWindow"
	InvalidSortOrder  failure.ErrorCode = "InvalidSortOrder"
	InvalidFilters    failure.ErrorCode = "InvalidFilters"
)
