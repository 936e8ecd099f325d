package source

import (
	"net/url"
	"strings"
)

// CleanHref resolves href against base and strips its fragment. It returns ""
// for links that cannot point at another page: empty hrefs, bare fragments,
// javascript: and data: URLs.
func CleanHref(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return ""
	}
	lower := strings.ToLower(href)
	if strings.HasPrefix(lower, "javascript:") || strings.HasPrefix(lower, "data:") || strings.HasPrefix(lower, "mailto:") {
		return ""
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return ""
	}
	refURL, err := url.Parse(href)
	if err != nil {
		return ""
	}

	u := baseURL.ResolveReference(refURL)
	u.Fragment = ""
	return u.String()
}
