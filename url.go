package clipvault

import (
	"net/netip"
	"net/url"
	"strings"
)

// Policy holds the URL acceptance and canonicalization rules: hostnames that
// must never be fetched and query parameters that carry no content.
// Construct once with DefaultPolicy and pass explicitly; a zero Policy
// blocks nothing and strips nothing.
type Policy struct {
	// BlockedHosts are exact hostnames that are never fetched.
	BlockedHosts map[string]struct{}

	// BlockedSuffixes are hostname suffixes reserved for internal networks.
	BlockedSuffixes []string

	// TrackingParams are query parameters removed during normalization.
	// Any parameter with the "utm_" prefix is removed regardless.
	TrackingParams map[string]struct{}
}

// DefaultPolicy returns the standard policy: loopback and internal hostnames
// blocked, common click/campaign tracking parameters stripped.
func DefaultPolicy() Policy {
	return Policy{
		BlockedHosts: map[string]struct{}{
			"localhost": {},
			"127.0.0.1": {},
			"0.0.0.0":   {},
			"::1":       {},
		},
		BlockedSuffixes: []string{".local", ".internal", ".localhost", ".arpa"},
		TrackingParams: map[string]struct{}{
			"fbclid":  {},
			"gclid":   {},
			"dclid":   {},
			"msclkid": {},
			"yclid":   {},
			"igshid":  {},
			"mc_cid":  {},
			"mc_eid":  {},
			"ref":     {},
			"ref_src": {},
			"_hsenc":  {},
			"_hsmi":   {},
		},
	}
}

// Validate rejects URLs that must not be fetched: malformed input,
// non-HTTP(S) schemes, and anything resolving to a loopback, private, or
// otherwise internal network target. It runs before any network activity,
// so a hostile URL never reaches the fetcher.
//
// Returns nil if the URL is safe to fetch, or an EINVALID error naming the
// rule that rejected it.
func (p Policy) Validate(rawURL string) error {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return Errorf(EINVALID, "malformed URL %q", rawURL)
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return Errorf(EINVALID, "unsupported scheme %q", u.Scheme)
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return Errorf(EINVALID, "URL %q has no host", rawURL)
	}

	if _, ok := p.BlockedHosts[host]; ok {
		return Errorf(EINVALID, "host %q is blocked", host)
	}

	for _, suffix := range p.BlockedSuffixes {
		if strings.HasSuffix(host, suffix) {
			return Errorf(EINVALID, "host %q is in a reserved domain", host)
		}
	}

	if addr, ok := parseAddr(host); ok {
		if isInternalAddr(addr) {
			return Errorf(EINVALID, "host %q is a private or local address", host)
		}
		return nil
	}

	// A host whose every label is numeric or hex is an IP literal in
	// disguise (e.g. 2130706433 or 0x7f.0.0.1). Such forms bypass the
	// checks above once the OS resolver decodes them, so reject outright.
	if isObfuscatedIP(host) {
		return Errorf(EINVALID, "host %q looks like an encoded IP address", host)
	}

	return nil
}

// Normalize returns the canonical form of rawURL: https scheme, lowercased
// host without a leading "www.", tracking parameters and fragment removed,
// and no trailing slash outside the root path. It is a pure function and
// idempotent: normalizing an already-normalized URL returns it unchanged.
func (p Policy) Normalize(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return "", Errorf(EINVALID, "cannot parse URL %q", rawURL)
	}

	u.Scheme = "https"

	host := strings.ToLower(u.Host)
	host = strings.TrimPrefix(host, "www.")
	u.Host = host

	if u.RawQuery != "" {
		q := u.Query()
		for param := range q {
			if _, ok := p.TrackingParams[strings.ToLower(param)]; ok {
				q.Del(param)
				continue
			}
			if strings.HasPrefix(strings.ToLower(param), "utm_") {
				q.Del(param)
			}
		}
		u.RawQuery = q.Encode()
	}

	u.Fragment = ""
	u.RawFragment = ""

	// Trim both forms in step so RawPath stays a valid encoding of Path and
	// escaped separators (e.g. %2F) survive unchanged.
	if u.Path != "/" {
		u.Path = strings.TrimSuffix(u.Path, "/")
		u.RawPath = strings.TrimSuffix(u.RawPath, "/")
	}

	return u.String(), nil
}

// ExtractDomain returns the lowercased host without a leading "www." label,
// or "" if the URL cannot be parsed. Intended for display and fallback
// naming only; security decisions go through Validate.
func ExtractDomain(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}

// parseAddr parses host as an IP address literal, unwrapping IPv6 brackets.
func parseAddr(host string) (netip.Addr, bool) {
	host = strings.TrimPrefix(host, "[")
	host = strings.TrimSuffix(host, "]")
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr, true
}

// isInternalAddr reports whether addr belongs to a range that must never be
// fetched: loopback, RFC1918 private, link-local, unique-local, unspecified.
func isInternalAddr(addr netip.Addr) bool {
	return addr.IsLoopback() ||
		addr.IsPrivate() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() ||
		addr.IsUnspecified()
}

// isObfuscatedIP reports whether every dot-separated label of host is a
// decimal, hex (0x), or octal (leading 0) number.
func isObfuscatedIP(host string) bool {
	labels := strings.Split(host, ".")
	for _, label := range labels {
		if label == "" || !isNumericLabel(label) {
			return false
		}
	}
	return true
}

func isNumericLabel(label string) bool {
	if strings.HasPrefix(label, "0x") || strings.HasPrefix(label, "0X") {
		label = label[2:]
		if label == "" {
			return false
		}
		for _, r := range label {
			if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
				return false
			}
		}
		return true
	}
	for _, r := range label {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(label) > 0
}
