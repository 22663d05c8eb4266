// Package sanitizer cleans user-submitted text before it is embedded in HTML.
//
// SanitizeHTML keeps a small set of formatting tags (paragraphs, line
// breaks, emphasis, lists, code, links) and drops scripts, event handlers
// and unsafe URLs. The bluemonday policy is built once and is safe for
// concurrent use.
package sanitizer
