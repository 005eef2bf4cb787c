package domain

import (
	"net"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

// NormalizeHost validates and canonicalizes a raw input token into a bare
// hostname: surrounding whitespace and quotes removed, scheme stripped, a
// lone trailing slash tolerated, host lowercased. A "www." prefix is kept as
// given. Anything after the host (path, query, fragment) rejects the token
// with ErrInvalidDomain. Normalizing an already-canonical hostname returns
// it unchanged.
func NormalizeHost(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, `"'`)
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalidDomain
	}

	if i := strings.Index(s, "://"); i != -1 {
		s = s[i+3:]
	}

	// A lone trailing slash is tolerated; a real path, query or fragment is not.
	if i := strings.IndexAny(s, "/?#"); i != -1 {
		if s[i] != '/' || i != len(s)-1 {
			return "", ErrInvalidDomain
		}
		s = s[:i]
	}

	return normalizeHost(s)
}

func normalizeHost(hostport string) (string, error) {
	host := hostport

	// Best-effort host:port split.
	if strings.Contains(hostport, ":") {
		if h, _, err := net.SplitHostPort(hostport); err == nil {
			host = h
		}
	}

	// Drop trailing dot: "example.com." → "example.com".
	host = strings.TrimSuffix(host, ".")
	if host == "" {
		return "", ErrInvalidDomain
	}

	// If it's an IP, let the stdlib normalize it.
	if ip := net.ParseIP(host); ip != nil {
		return ip.String(), nil
	}

	// ASCII-only host: lowercase and skip IDNA.
	if isASCII(host) {
		return strings.ToLower(host), nil
	}

	asciiHost, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", ErrInvalidDomain
	}
	return strings.ToLower(asciiHost), nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
