package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldCategory        = "category"
	FieldDealID          = "deal-id"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldListings        = "listings"
	FieldPage            = "page"
	FieldQuery           = "query"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseStatus  = "response-status"
	FieldSkip            = "skip"
	FieldTake            = "take"
	FieldTimeWindow      = "time-window"
	FieldTotal           = "total"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
	FieldUrgency         = "urgency"
	FieldUserID          = "user-id"
)
