package store

import (
	"fmt"
	"net/url"
	"strings"
)

// ScopeMode selects how a page URL collapses into a page scope key.
type ScopeMode string

const (
	// ScopeBucket shares one bucket across every page of an origin.
	ScopeBucket ScopeMode = "bucket"
	// ScopePage keys buckets by origin and path.
	ScopePage ScopeMode = "page"
)

// ScopeModes lists the accepted modes.
func ScopeModes() []string {
	return []string{string(ScopeBucket), string(ScopePage)}
}

// ParseScopeMode validates a configured mode.
func ParseScopeMode(s string) (ScopeMode, error) {
	switch mode := ScopeMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ScopeBucket, ScopePage:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown scope mode %q", s)
	}
}

// ScopeKey derives the page scope key for rawURL.
// Query and fragment never participate; unparseable input is used verbatim.
func ScopeKey(rawURL string, mode ScopeMode) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return rawURL
	}

	origin := strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host)
	if mode == ScopeBucket {
		return origin
	}

	path := strings.TrimRight(u.EscapedPath(), "/")
	return origin + path
}
