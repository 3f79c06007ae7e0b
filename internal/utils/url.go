package utils

import "strings"

// IsSafeURL reports whether a URL may be emitted into rendered output:
// absolute http(s) links or site-relative paths. Anything else
// (javascript:, data:, protocol-less hosts) is rejected.
func IsSafeURL(url string) bool {
	return strings.HasPrefix(url, "http://") ||
		strings.HasPrefix(url, "https://") ||
		strings.HasPrefix(url, "/")
}

// FilterSafeURLs returns the non-empty safe URLs in their original order.
// The result is never nil.
func FilterSafeURLs(urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u != "" && IsSafeURL(u) {
			out = append(out, u)
		}
	}
	return out
}
