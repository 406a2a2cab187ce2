package utils

import "github.com/gosimple/slug"

// Slugify converts text into a lowercase, hyphenated, URL-safe identifier.
func Slugify(text string) string {
	return slug.Make(text)
}
