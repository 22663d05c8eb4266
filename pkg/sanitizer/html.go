package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	safePolicy *bluemonday.Policy
	initOnce   sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		safePolicy = bluemonday.NewPolicy()
		safePolicy.AllowStandardURLs()
		safePolicy.AllowElements(
			"p", "br",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		safePolicy.AllowAttrs("href").OnElements("a")
		safePolicy.RequireNoFollowOnLinks(true)
	})
}

// SanitizeHTML keeps basic formatting tags and removes everything unsafe,
// including scripts, event handler attributes and javascript: URLs.
func SanitizeHTML(s string) string {
	initPolicies()
	return safePolicy.Sanitize(s)
}
