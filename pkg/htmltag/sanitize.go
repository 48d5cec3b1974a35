package htmltag

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	inlinePolicyOnce sync.Once
	inlinePolicy     *bluemonday.Policy
)

// SanitizeInline cleans label-style markup, keeping inline formatting
// elements and dropping everything else (scripts, handlers, block elements).
// Plain text is returned HTML-escaped.
func SanitizeInline(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	return inlineSanitizer().Sanitize(raw)
}

func inlineSanitizer() *bluemonday.Policy {
	inlinePolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"span", "strong", "em", "b", "i", "u", "small", "mark",
			"abbr", "code", "sub", "sup", "br",
		)
		policy.AllowAttrs("class").Globally()
		policy.AllowAttrs("title").OnElements("abbr", "span")
		policy.AllowAttrs("aria-hidden").OnElements("span")
		inlinePolicy = policy
	})
	return inlinePolicy
}
