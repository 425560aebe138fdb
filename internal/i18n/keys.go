package i18n

// Error message keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInvalidQuery       = "error.invalid_query"
	ErrKeyOutOfRange         = "error.out_of_range"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyReportFailed       = "error.report_failed"
	ErrKeyUnauthorized       = "error.unauthorized"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
)

// Page copy keys.
const (
	PageKeySubtitle       = "page.subtitle"
	PageKeyTargetLabel    = "page.target_label"
	PageKeyTargetHelp     = "page.target_help"
	PageKeyCostLabel      = "page.cost_label"
	PageKeyCostHelp       = "page.cost_help"
	PageKeyAboutHeading   = "page.about_heading"
	PageKeyReportLink     = "page.report_link"
	PageKeyPresetsHeading = "page.presets_heading"
)
