package dsdoc

import (
	"net/url"
	"strings"
)

// NormalizeBaseURL canonicalizes a documentation site base URL. It accepts
// the forms users paste: with or without a scheme, with a trailing slash,
// or pointing at index.html or iframe.html directly. Only scheme, host and
// path survive; query and fragment are dropped. Normalization never fails;
// on unparsable input it falls back to trimming. Callers still need to
// validate reachability separately.
func NormalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return strings.TrimRight(raw, "/")
	}
	p := u.Path
	for _, suffix := range []string{"/index.html", "/iframe.html", "/index.json"} {
		p = strings.TrimSuffix(p, suffix)
	}
	normalized := url.URL{
		Scheme: u.Scheme,
		Host:   strings.ToLower(u.Host),
		Path:   strings.TrimRight(p, "/"),
	}
	return normalized.String()
}

// IndexURL returns the URL of the story index document for a normalized
// base URL.
func IndexURL(base string) string {
	return base + "/index.json"
}

// DocsPageURL returns the renderable documentation page URL for a docs
// entry id under a normalized base URL.
func DocsPageURL(base, docsID string) string {
	return base + "/iframe.html?id=" + url.QueryEscape(docsID) + "&viewMode=docs"
}
