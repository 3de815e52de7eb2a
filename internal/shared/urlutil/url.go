// Package urlutil classifies user input as URL or search query and prepares
// URLs for display.
package urlutil

import (
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// InternalErrorURL is loaded by the engine when an error page is shown.
const InternalErrorURL = "data:text/html;charset=utf-8;base64,"

// Normalize trims the input and adds an http scheme when none is present.
func Normalize(input string) string {
	trimmed := strings.TrimSpace(input)

	u, err := url.Parse(trimmed)
	if err != nil || u.Scheme == "" {
		return "http://" + trimmed
	}
	return u.String()
}

// IsURL reports whether the input should be loaded rather than searched for.
// Anything with a space is a query; otherwise a dot or colon marks a URL.
func IsURL(input string) bool {
	trimmed := strings.TrimSpace(input)
	if strings.Contains(trimmed, " ") {
		return false
	}
	return strings.Contains(trimmed, ".") || strings.Contains(trimmed, ":")
}

// IsHTTPOrHTTPS reports whether the URL uses a web scheme.
func IsHTTPOrHTTPS(rawURL string) bool {
	if rawURL == "" {
		return false
	}
	return strings.HasPrefix(rawURL, "http:") || strings.HasPrefix(rawURL, "https:")
}

// StripUserInfo removes credentials from the URL to limit spoofing in the
// URL bar. Unparseable input is returned unchanged.
func StripUserInfo(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.User == nil {
		return rawURL
	}

	u.User = nil
	return u.String()
}

// IsPermittedResourceProtocol reports whether pages may load resources with
// the given scheme.
func IsPermittedResourceProtocol(scheme string) bool {
	if scheme == "" {
		return false
	}
	return strings.HasPrefix(scheme, "http") ||
		strings.HasPrefix(scheme, "file") ||
		strings.HasPrefix(scheme, "data")
}

// IsSupportedProtocol reports whether the browser handles the scheme itself.
func IsSupportedProtocol(scheme string) bool {
	return IsPermittedResourceProtocol(scheme) || strings.HasPrefix(scheme, "error")
}

// IsInternalErrorURL reports whether the URL is the internal error page.
func IsInternalErrorURL(rawURL string) bool {
	return rawURL == InternalErrorURL
}

// URLsMatchExceptForTrailingSlash compares two URLs case-insensitively,
// tolerating a single trailing slash on either side.
func URLsMatchExceptForTrailingSlash(url1, url2 string) bool {
	switch len(url1) - len(url2) {
	case 0:
		return strings.EqualFold(url1, url2)
	case 1:
		return url1[len(url1)-1] == '/' && strings.EqualFold(url1[:len(url2)], url2)
	case -1:
		return url2[len(url2)-1] == '/' && strings.EqualFold(url2[:len(url1)], url1)
	default:
		return false
	}
}

// StripCommonSubdomains drops a leading www., mobile. or m. label.
// Mobile prefixes are stripped too since users rarely type them.
func StripCommonSubdomains(host string) string {
	for _, prefix := range []string{"www.", "mobile.", "m."} {
		if strings.HasPrefix(host, prefix) {
			return host[len(prefix):]
		}
	}
	return host
}

// RepresentativeSnippet returns the part of a URL shown to identify it:
// the host without common subdomains, else the path, else "?".
func RepresentativeSnippet(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "?"
	}

	snippet := u.Hostname()
	if snippet != "" {
		if unicodeHost, err := idna.Display.ToUnicode(snippet); err == nil {
			snippet = unicodeHost
		}
	} else {
		snippet = u.Path
	}

	if snippet == "" {
		return "?"
	}

	return StripCommonSubdomains(snippet)
}
