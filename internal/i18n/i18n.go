// Package i18n holds the keyed catalog of user-facing text.
// The service ships English only; keys keep copy out of handlers and templates.
package i18n

import "sync"

// Catalog maps message keys to text.
type Catalog map[string]string

var (
	defaultCatalog     Catalog
	defaultCatalogOnce sync.Once
)

// Default returns the built-in English catalog.
func Default() Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalog = Catalog{
			ErrKeyInvalidRequest:     "Invalid request",
			ErrKeyInvalidRequestBody: "Invalid request body",
			ErrKeyInvalidQuery:       "Invalid query",
			ErrKeyOutOfRange:         "Input is outside the supported range",
			ErrKeyInternalError:      "An unexpected error occurred",
			ErrKeyReportFailed:       "Could not generate the savings report",
			ErrKeyUnauthorized:       "Unauthorized",
			ErrKeyAPIKeyRequired:     "API key is required",
			ErrKeyInvalidAPIKey:      "Invalid API key",
			ErrKeyNotFound:           "Not found",
			ErrKeyRateLimitExceeded:  "Too many requests, please try again later",

			PageKeySubtitle:       "Estimate potential savings from reducing antipsychotic drug use in nursing homes",
			PageKeyTargetLabel:    "Target AP Drug Usage Rate",
			PageKeyTargetHelp:     "Current rate is 22.6%. Clinical guidelines suggest 3% is appropriate.",
			PageKeyCostLabel:      "Average Daily Drug Cost",
			PageKeyCostHelp:       "Generic drugs cost about $3/day, brand-name drugs up to $50/day.",
			PageKeyAboutHeading:   "About the Data",
			PageKeyReportLink:     "Download PDF report",
			PageKeyPresetsHeading: "Cost tiers",
		}
	})
	return defaultCatalog
}

// Get returns the text for key, or key itself when the catalog has no entry.
func (c Catalog) Get(key string) string {
	if msg, ok := c[key]; ok {
		return msg
	}
	return key
}

// T looks key up in the default catalog.
func T(key string) string {
	return Default().Get(key)
}
