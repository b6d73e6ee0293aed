package util

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var XSSPolicy = bluemonday.UGCPolicy()

// XSSSanitize sanitizes user-generated HTML and returns the unescaped result
func XSSSanitize(val string) string {
	return html.UnescapeString(XSSPolicy.Sanitize(val))
}
