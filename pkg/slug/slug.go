package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Generate creates a URL-friendly slug from the given name.
//
// Examples:
//   - "Food Delivery" → "food-delivery"
//   - "Pet  Sitting!" → "pet-sitting"
func Generate(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))

	// Replace any run of non-alphanumeric characters with a single hyphen.
	slug = nonAlnum.ReplaceAllString(slug, "-")

	return strings.Trim(slug, "-")
}
