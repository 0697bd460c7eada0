package core

import "strings"

const (
	DefaultPage     = 1
	DefaultLimit    = 10
	DefaultLanguage = "en"
)

// NormalizePage applies the gateway-wide pagination defaults for omitted or
// out-of-range values.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return page, limit
}

// NormalizeLanguage substitutes the default language for an absent value.
func NormalizeLanguage(language string) string {
	language = strings.TrimSpace(language)
	if language == "" {
		return DefaultLanguage
	}
	return language
}

// NormalizeSort applies the named default sort field and ascending order.
func NormalizeSort(sortBy, order, defaultField string) (string, string) {
	sortBy = strings.TrimSpace(sortBy)
	if sortBy == "" {
		sortBy = defaultField
	}
	order = strings.ToLower(strings.TrimSpace(order))
	if order != "desc" {
		order = "asc"
	}
	return sortBy, order
}
