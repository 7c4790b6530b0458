// internal/app/system/htmlsanitize/htmlsanitize.go
//
// Package htmlsanitize wraps bluemonday with the policy used for
// user-supplied rich text (ask/offer descriptions, profile headlines).
package htmlsanitize

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.UGCPolicy()

// Sanitize strips unsafe markup from user-supplied HTML.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}

// SanitizeHTML sanitizes and returns a template.HTML suitable for
// rendering without re-escaping.
func SanitizeHTML(s string) template.HTML {
	return template.HTML(policy.Sanitize(s))
}
